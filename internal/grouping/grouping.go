// Package grouping holds the per-entity section policies: transactions are
// grouped by day, newest first; categories and people by initial letter.
package grouping

import (
	"cmp"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Veraticus/financer/internal/model"
	"github.com/Veraticus/financer/internal/sectioned"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DayKeyLayout is the layout of transaction section keys.
const DayKeyLayout = "2006-01-02"

// Section keys for names that do not start with a letter.
const (
	KeyNonLetter = "#"
	KeyEmpty     = "?"
)

// DayKey returns the section key of a timestamp: its calendar day.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// InitialKey returns the upper-cased first letter of name.
func InitialKey(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	switch {
	case size == 0:
		return KeyEmpty
	case unicode.IsLetter(r):
		return string(unicode.ToUpper(r))
	default:
		return KeyNonLetter
	}
}

// SectionLabel renders a section key for display. Day keys become
// "Mon, Jan 2 2006"; other keys are returned unchanged.
func SectionLabel(key string) string {
	day, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return key
	}
	return day.Format("Mon, Jan 2 2006")
}

// NameCompare orders names alphabetically, ignoring case, with byte order as
// a tie-breaker so the result is total.
func NameCompare() func(a, b string) int {
	collator := collate.New(language.English, collate.IgnoreCase)
	return func(a, b string) int {
		if c := collator.CompareString(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}
}

// Transactions groups by day, newest day first, newest transaction first.
func Transactions() sectioned.Policy[string, model.Transaction] {
	return sectioned.Policy[string, model.Transaction]{
		KeyOf: func(t model.Transaction) string {
			return DayKey(t.Date)
		},
		CompareKeys: sectioned.Descending(sectioned.Ascending[string]()),
		CompareItems: func(a, b model.Transaction) int {
			if c := b.Date.Compare(a.Date); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		},
	}
}

// Categories groups by initial letter, A to Z, then by name.
func Categories() sectioned.Policy[string, model.Category] {
	byName := NameCompare()
	return sectioned.Policy[string, model.Category]{
		KeyOf:       func(c model.Category) string { return InitialKey(c.Name) },
		CompareKeys: NameCompare(),
		CompareItems: sectioned.By(func(c model.Category) string {
			return c.Name
		}, byName),
	}
}

// People groups by initial letter, A to Z, then by name.
func People() sectioned.Policy[string, model.Person] {
	byName := NameCompare()
	return sectioned.Policy[string, model.Person]{
		KeyOf:       func(p model.Person) string { return InitialKey(p.Name) },
		CompareKeys: NameCompare(),
		CompareItems: sectioned.By(func(p model.Person) string {
			return p.Name
		}, byName),
	}
}
