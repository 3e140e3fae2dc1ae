package airtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqQuoting(t *testing.T) {
	assert.Equal(t, "{Owner} = 'u1'", Eq("Owner", "u1").Formula())
	assert.Equal(t, `{Name} = 'O\'Neill'`, Eq("Name", "O'Neill").Formula())
	assert.Equal(t, `{Name} = 'a\\\'b'`, Eq("Name", `a\'b`).Formula())
}

func TestBlank(t *testing.T) {
	assert.Equal(t, "{Owner} = BLANK()", Blank("Owner").Formula())
}

func TestContainsFoldLowersNeedle(t *testing.T) {
	assert.Equal(t, "SEARCH('shirt', LOWER({Name}))", ContainsFold("Name", "SHIRT").Formula())
}

func TestAndOrCompose(t *testing.T) {
	assert.Equal(t, "TRUE()", And().Formula())
	assert.Equal(t, "TRUE()", Or().Formula())

	single := Eq("A", "1")
	assert.Equal(t, single.Formula(), And(single).Formula())

	got := And(
		ContainsFold("Name", "shirt"),
		Or(Eq("Owner", "u1"), Blank("Owner")),
	).Formula()
	assert.Equal(t,
		"AND(SEARCH('shirt', LOWER({Name})), OR({Owner} = 'u1', {Owner} = BLANK()))",
		got)
}

func TestOrRecordIDsChunking(t *testing.T) {
	assert.Empty(t, OrRecordIDs(nil))

	ids := make([]string, 25)
	for i := range ids {
		ids[i] = fmt.Sprintf("rec%02d", i)
	}
	chunks := OrRecordIDs(ids)
	require.Len(t, chunks, 3)

	assert.Contains(t, chunks[0].Formula(), "rec00")
	assert.Contains(t, chunks[0].Formula(), "rec09")
	assert.NotContains(t, chunks[0].Formula(), "rec10")
	assert.Contains(t, chunks[2].Formula(), "rec24")

	// a final chunk of one id collapses to a bare RECORD_ID clause
	one := OrRecordIDs([]string{"rec1"})
	require.Len(t, one, 1)
	assert.Equal(t, "RECORD_ID() = 'rec1'", one[0].Formula())
}
