package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NameMatcher resolves free-text names ("the delux king room") to canonical
// entity names. Used by the agent tools and by competitor rate mapping, where
// inputs are typed by people and never match exactly.
type NameMatcher struct {
	cm        *closestmatch.ClosestMatch
	canonical map[string]string
}

func normalizeName(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

// nameSimilarity returns 1 for identical strings and 0 for fully distinct
// ones, based on edit distance over the longer string.
func nameSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// NewNameMatcher indexes the given names. Lookup returns the original
// (non-normalized) spelling.
func NewNameMatcher(names []string) *NameMatcher {
	canonical := make(map[string]string, len(names))
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		key := normalizeName(name)
		if key == "" {
			continue
		}
		if _, seen := canonical[key]; !seen {
			normalized = append(normalized, key)
		}
		canonical[key] = name
	}
	return &NameMatcher{
		cm:        closestmatch.New(normalized, []int{2, 3}),
		canonical: canonical,
	}
}

// Match returns the closest indexed name and whether the match is trustworthy.
// A candidate survives when the bag-of-substrings match is backed by either
// containment or enough edit-distance similarity.
func (m *NameMatcher) Match(query string) (string, bool) {
	q := normalizeName(query)
	if q == "" {
		return "", false
	}
	if original, ok := m.canonical[q]; ok {
		return original, true
	}

	closest := m.cm.Closest(q)
	if closest == "" {
		return "", false
	}
	if strings.Contains(q, closest) || strings.Contains(closest, q) {
		return m.canonical[closest], true
	}
	if nameSimilarity(q, closest) > 0.6 {
		return m.canonical[closest], true
	}
	return "", false
}
