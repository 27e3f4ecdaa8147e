package sectioned

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// Matcher reports whether text satisfies a non-empty search query.
type Matcher func(text, query string) bool

// Matcher modes accepted by MatcherFor.
const (
	MatchSubstring = "substring"
	MatchFuzzy     = "fuzzy"
)

// ErrUnknownMatcher is returned for an unsupported matcher mode.
var ErrUnknownMatcher = errors.New("unknown matcher")

// SubstringMatcher matches when query occurs in text, ignoring case.
func SubstringMatcher(text, query string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(text), fold.String(query))
}

// FuzzyMatcher matches when the characters of query appear in text in order.
func FuzzyMatcher(text, query string) bool {
	fold := cases.Fold()
	return len(fuzzy.Find(fold.String(query), []string{fold.String(text)})) > 0
}

// MatcherFor returns the matcher for a configured mode. An empty mode selects
// substring matching.
func MatcherFor(mode string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", MatchSubstring:
		return SubstringMatcher, nil
	case MatchFuzzy:
		return FuzzyMatcher, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, mode)
	}
}
