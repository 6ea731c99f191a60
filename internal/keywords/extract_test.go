package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_RanksByFrequency(t *testing.T) {
	text := "The Quick brown FOX jumps over the lazy dog the dog barks"

	result := ExtractWithMinLength(text, 3, 3)

	// "dog" appears twice so it must rank first; single-occurrence tokens
	// keep their source order.
	assert.Equal(t, []string{"dog", "quick", "brown"}, result)
}

func TestExtract_EmptyInput(t *testing.T) {
	assert.Empty(t, Extract("", 10))
	assert.Empty(t, Extract("some text here", 0))
}

func TestExtract_RespectsLimit(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel"

	result := Extract(text, 4)

	assert.Len(t, result, 4)
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, result)
}

func TestExtract_StripsStopwordsAndShortTokens(t *testing.T) {
	text := "We are looking for an engineer with experience and a B S degree"

	result := Extract(text, 10)

	assert.NotContains(t, result, "with")
	assert.NotContains(t, result, "and")
	assert.NotContains(t, result, "are")
	assert.Contains(t, result, "engineer")
}

func TestExtract_Idempotent(t *testing.T) {
	text := "quality engineer quality systems process validation process"

	first := Extract(text, 5)
	second := Extract(text, 5)

	assert.Equal(t, first, second)
}

func TestExtract_Lowercases(t *testing.T) {
	result := Extract("SOLIDWORKS Solidworks solidworks", 1)

	assert.Equal(t, []string{"solidworks"}, result)
}

func TestExpand_UnionsSynonyms(t *testing.T) {
	table := map[string][]string{
		"lean": {"kaizen", "continuous improvement"},
	}

	expanded := Expand([]string{"Lean", "minitab"}, table)

	assert.True(t, expanded["lean"])
	assert.True(t, expanded["kaizen"])
	assert.True(t, expanded["continuous improvement"])
	assert.True(t, expanded["minitab"])
	assert.Len(t, expanded, 4)
}

func TestExpand_NoTableEntries(t *testing.T) {
	expanded := Expand([]string{"python"}, nil)

	assert.Equal(t, map[string]bool{"python": true}, expanded)
}
