package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalGroups_AllSevenPresent(t *testing.T) {
	groups := CanonicalGroups()

	assert.Len(t, GroupNames, 7)
	for _, name := range GroupNames {
		assert.True(t, groups.Has(name), "missing group %s", name)
		assert.NotEmpty(t, groups[name])
	}
}

func TestCanonicalGroups_PhrasesAreLowercase(t *testing.T) {
	for name, phrases := range CanonicalGroups() {
		for _, phrase := range phrases {
			assert.Equal(t, strings.ToLower(phrase), phrase,
				"group %s phrase %q is not lower-cased", name, phrase)
		}
	}
}

func TestAllPhrases_UnionCoversEveryGroup(t *testing.T) {
	groups := CanonicalGroups()
	union := groups.AllPhrases()

	for _, phrases := range groups {
		for _, phrase := range phrases {
			assert.True(t, union[phrase])
		}
	}
}
