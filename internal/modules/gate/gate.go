// README: Domain gate — keyword/fuzzy classifier that decides whether a query
// is about flights before any extraction work happens.
package gate

import "strings"

// DefaultThreshold is the minimum similarity for a fuzzy keyword hit.
const DefaultThreshold = 0.75

// currencyThreshold is the stricter score used on the currency-symbol path,
// where a price sign alone is weak evidence of a flight query.
const currencyThreshold = 0.8

// flightKeywords are fuzzy-matched so common typos ("flihgt") still pass.
var flightKeywords = []string{
	"flight", "flights", "fly", "flying",
	"air", "airline", "airlines", "airport", "airports", "airways",
	"travel", "travels", "trip", "trips", "journey", "journeys",
	"destination", "destinations", "dest",
	"origin", "origins", "route", "routes", "path", "paths", "connection", "connections",
	"price", "prices", "fare", "fares", "cost", "costs", "expensive", "cheap", "cheaper", "cheapest",
	"direct", "nonstop", "connecting", "connect",
	"departure", "depart", "departing", "arrive", "arrives", "arriving", "arrival",
	"domestic", "international", "book", "booking", "reserve", "reservation",
	"ticket", "tickets", "seat", "seats", "class", "economy", "business", "first",
}

// locationIndicators are matched exactly: they are too short to fuzzy-match
// without drowning in false positives.
var locationIndicators = map[string]bool{
	"from": true, "to": true, "between": true, "via": true, "through": true,
}

// timeKeywords only count in combination with a currency symbol.
var timeKeywords = []string{
	"today", "tomorrow", "next", "week", "month", "morning", "evening", "night",
}

var currencySymbols = []rune{'₹', '$', '€', '£', '¥'}

// Classifier is the pluggable domain predicate consulted once per request.
// Pure and stateless; thresholds are fixed at construction and never fed back
// from planner behavior.
type Classifier struct {
	threshold float64
}

func NewClassifier() *Classifier {
	return &Classifier{threshold: DefaultThreshold}
}

// IsInDomain reports whether the query looks flight-related.
func (c *Classifier) IsInDomain(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	words := strings.Fields(query)

	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		cleaned = append(cleaned, stripNonAlnum(w))
	}

	for _, w := range cleaned {
		if locationIndicators[w] {
			return true
		}
		if fuzzyMatchAny(w, flightKeywords, c.threshold) {
			return true
		}
	}

	// A price symbol counts when the rest of the query carries travel or
	// time context.
	if containsCurrencySymbol(query) {
		for _, w := range cleaned {
			if locationIndicators[w] ||
				fuzzyMatchAny(w, flightKeywords, currencyThreshold) ||
				fuzzyMatchAny(w, timeKeywords, currencyThreshold) {
				return true
			}
		}
	}

	// Bare "city1 to city2" pattern, with words on both sides of "to".
	for i, w := range words {
		if w == "to" && i > 0 && i < len(words)-1 {
			return true
		}
	}

	return false
}

func containsCurrencySymbol(query string) bool {
	for _, sym := range currencySymbols {
		if strings.ContainsRune(query, sym) {
			return true
		}
	}
	return false
}

func stripNonAlnum(w string) string {
	var b strings.Builder
	for _, r := range w {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fuzzyMatchAny reports whether word scores at or above threshold against any
// keyword.
func fuzzyMatchAny(word string, keywords []string, threshold float64) bool {
	if word == "" {
		return false
	}
	for _, kw := range keywords {
		if similarity(word, kw) >= threshold {
			return true
		}
	}
	return false
}

// similarity is a normalized edit-distance ratio in [0, 1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes the edit distance between two strings with a rolling
// single-row table.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur := make([]int, len(rb)+1)
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev = cur
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
