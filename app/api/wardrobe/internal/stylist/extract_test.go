package stylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFenced(t *testing.T) {
	doc, err := extractJSON("```json\n{\"outfits\": []}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"outfits": []}`, doc)
}

func TestExtractJSONProsePadded(t *testing.T) {
	doc, err := extractJSON("Sure! Here are your outfits: {\"outfits\": [{\"name\": \"a\"}]} Hope you like them.")
	require.NoError(t, err)
	assert.Equal(t, `{"outfits": [{"name": "a"}]}`, doc)
}

func TestExtractJSONNoBraces(t *testing.T) {
	_, err := extractJSON("I cannot help with that.")
	assert.ErrorIs(t, err, errNoJSON)

	_, err = extractJSON("} backwards {")
	assert.ErrorIs(t, err, errNoJSON)
}

func TestSnippetTruncates(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, snippet(string(long)), 400)
	assert.Equal(t, "short", snippet("  short  "))
}
