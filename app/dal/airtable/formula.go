package airtable

import (
	"fmt"
	"strings"
)

// orChunkSize bounds how many record ids go into a single OR clause; the
// store rejects formulas past a practical length, so multi-id lookups are
// split into chunks this size and run as separate queries.
const orChunkSize = 10

// Expr is a boolean filter serializable to the store's formula language.
// Escaping happens only inside quote(); everything else composes strings.
type Expr interface {
	Formula() string
}

type rawExpr string

func (e rawExpr) Formula() string {
	return string(e)
}

// Eq matches exact field equality.
func Eq(field, value string) Expr {
	return rawExpr(fmt.Sprintf("{%s} = %s", field, quote(value)))
}

// Blank matches records where the field is empty.
func Blank(field string) Expr {
	return rawExpr(fmt.Sprintf("{%s} = BLANK()", field))
}

// ContainsFold matches a case-insensitive substring of the field.
func ContainsFold(field, needle string) Expr {
	return rawExpr(fmt.Sprintf("SEARCH(%s, LOWER({%s}))", quote(strings.ToLower(needle)), field))
}

// RecordID matches a record by its store-assigned id.
func RecordID(id string) Expr {
	return rawExpr(fmt.Sprintf("RECORD_ID() = %s", quote(id)))
}

// And composes expressions conjunctively. Zero expressions yield TRUE().
func And(exprs ...Expr) Expr {
	return compose("AND", exprs)
}

// Or composes expressions disjunctively. Zero expressions yield TRUE().
func Or(exprs ...Expr) Expr {
	return compose("OR", exprs)
}

// OrRecordIDs expands a multi-id lookup into OR clauses of at most
// orChunkSize ids each. Callers run the chunks as separate queries and
// concatenate; result order across chunks is not the input order.
func OrRecordIDs(ids []string) []Expr {
	var chunks []Expr
	for start := 0; start < len(ids); start += orChunkSize {
		end := start + orChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		part := make([]Expr, 0, end-start)
		for _, id := range ids[start:end] {
			part = append(part, RecordID(id))
		}
		chunks = append(chunks, Or(part...))
	}
	return chunks
}

func compose(op string, exprs []Expr) Expr {
	switch len(exprs) {
	case 0:
		return rawExpr("TRUE()")
	case 1:
		return exprs[0]
	}
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.Formula())
	}
	return rawExpr(fmt.Sprintf("%s(%s)", op, strings.Join(parts, ", ")))
}

// quote single-quotes a string value for formula interpolation. Backslashes
// are doubled before quotes are escaped so a crafted value cannot break out
// of the literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
