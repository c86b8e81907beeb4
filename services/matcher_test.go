package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "deluxe king", normalizeName("  Deluxe King "))
	assert.Equal(t, "suite royale", normalizeName("Suite Royalé"))
	assert.Equal(t, "", normalizeName("   "))
}

func TestNameSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, nameSimilarity("deluxe", "deluxe"))
	assert.Equal(t, 1.0, nameSimilarity("", ""))
	assert.Greater(t, nameSimilarity("deluxe king", "delux king"), 0.8)
	assert.Less(t, nameSimilarity("deluxe", "penthouse"), 0.4)
}

func TestNameMatcherExact(t *testing.T) {
	m := NewNameMatcher([]string{"Deluxe King", "Executive Suite", "Standard Twin"})

	name, ok := m.Match("deluxe king")
	assert.True(t, ok)
	assert.Equal(t, "Deluxe King", name)

	name, ok = m.Match("  DELUXE KING  ")
	assert.True(t, ok)
	assert.Equal(t, "Deluxe King", name)
}

func TestNameMatcherFuzzy(t *testing.T) {
	m := NewNameMatcher([]string{"Deluxe King", "Executive Suite", "Standard Twin"})

	name, ok := m.Match("delux king")
	assert.True(t, ok)
	assert.Equal(t, "Deluxe King", name)

	name, ok = m.Match("the deluxe king room")
	assert.True(t, ok)
	assert.Equal(t, "Deluxe King", name)
}

func TestNameMatcherRejectsUnrelated(t *testing.T) {
	m := NewNameMatcher([]string{"Deluxe King", "Executive Suite"})

	_, ok := m.Match("swimming pool")
	assert.False(t, ok)

	_, ok = m.Match("")
	assert.False(t, ok)
}

func TestNameMatcherEmptyIndex(t *testing.T) {
	m := NewNameMatcher(nil)
	_, ok := m.Match("anything")
	assert.False(t, ok)
}
