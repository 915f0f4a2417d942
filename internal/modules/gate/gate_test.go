package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInDomainFlightQueries(t *testing.T) {
	c := NewClassifier()

	queries := []string{
		"cheapest flight from Delhi to Hanoi in December",
		"one way ticket to Bangkok",
		"how much does a round trip cost?",
		"book airline tickets for tomorrow morning",
		"direct flights Mumbai Singapore",
	}
	for _, q := range queries {
		assert.True(t, c.IsInDomain(q), q)
	}
}

func TestIsInDomainRejectsOffTopic(t *testing.T) {
	c := NewClassifier()

	queries := []string{
		"what's a good pasta recipe?",
		"tell me a joke",
		"who won the cricket match yesterday",
		"",
		"   ",
	}
	for _, q := range queries {
		assert.False(t, c.IsInDomain(q), q)
	}
}

func TestIsInDomainToleratesTypos(t *testing.T) {
	c := NewClassifier()

	assert.True(t, c.IsInDomain("flght delhi hanoi"))
	assert.True(t, c.IsInDomain("airpot transfer options"))
}

func TestIsInDomainBareRoutePattern(t *testing.T) {
	c := NewClassifier()

	assert.True(t, c.IsInDomain("delhi to hanoi"))
	// "to" needs words on both sides.
	assert.False(t, c.IsInDomain("to hanoi"))
	assert.False(t, c.IsInDomain("delhi to"))
}

func TestIsInDomainCurrencyPath(t *testing.T) {
	c := NewClassifier()

	// A price symbol plus time context passes even without flight words.
	assert.True(t, c.IsInDomain("anything under ₹5000 tomorrow?"))
	// A bare price question does not.
	assert.False(t, c.IsInDomain("₹5000"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("flight", "flight"))
	assert.InDelta(t, 1.0-1.0/6.0, similarity("flght", "flight"), 1e-9)
	assert.Less(t, similarity("pasta", "flight"), DefaultThreshold)
	assert.Equal(t, 1.0, similarity("", ""))
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("abc", "abc"))
	assert.Equal(t, 3, levenshtein("", "abc"))
	assert.Equal(t, 1, levenshtein("kitten", "sitten"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}
