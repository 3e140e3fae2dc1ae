package airtable

import (
	"fmt"
	"strings"
)

// Field readers resolve a logical field against an ordered candidate list,
// so the service tolerates column renames in the underlying store without
// code changes. The first candidate that exists wins.

// StringField returns the first non-empty string value among the candidate
// field names.
func StringField(rec *Record, names ...string) string {
	v, ok := fieldValue(rec, names...)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// StringsField returns a string slice value; scalar values become a
// single-element slice, empty entries are dropped.
func StringsField(rec *Record, names ...string) []string {
	v, ok := fieldValue(rec, names...)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case []string:
		return compact(val)
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, strings.TrimSpace(fmt.Sprint(item)))
		}
		return compact(out)
	case string:
		return compact([]string{strings.TrimSpace(val)})
	default:
		return nil
	}
}

// AttachmentURL returns a URL stored either as a bare string or as an
// attachment-style list of {url, ...} objects.
func AttachmentURL(rec *Record, names ...string) string {
	v, ok := fieldValue(rec, names...)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []interface{}:
		for _, item := range val {
			obj, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if u, ok := obj["url"].(string); ok && u != "" {
				return u
			}
		}
		return ""
	case map[string]interface{}:
		if u, ok := val["url"].(string); ok {
			return u
		}
		return ""
	default:
		return ""
	}
}

// Candidates returns the configured alias list for a logical field, or the
// built-in defaults when no override is present.
func (c Conf) Candidates(logical string, defaults ...string) []string {
	if names, ok := c.Fields[logical]; ok && len(names) > 0 {
		return names
	}
	return defaults
}

func fieldValue(rec *Record, names ...string) (interface{}, bool) {
	if rec == nil || rec.Fields == nil {
		return nil, false
	}
	for _, name := range names {
		if v, ok := rec.Fields[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func compact(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
