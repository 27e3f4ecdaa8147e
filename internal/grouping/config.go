package grouping

import (
	"time"

	"github.com/Veraticus/financer/internal/model"
	"github.com/Veraticus/financer/internal/sectioned"
)

// Options are the shared list settings applied to every entity config.
type Options struct {
	Matcher sectioned.Matcher
	Delay   time.Duration
	// Keywords extends search beyond the display text to secondary fields.
	Keywords bool
}

// TransactionConfig binds transactions to their grouping and search fields.
// Search matches the merchant; with Keywords also the raw name, category and
// notes.
func TransactionConfig(opts Options) sectioned.Config[string, model.Transaction] {
	cfg := sectioned.Config[string, model.Transaction]{
		Policy:      Transactions(),
		DisplayText: model.Transaction.DisplayName,
		Matcher:     opts.Matcher,
		Delay:       opts.Delay,
	}
	if opts.Keywords {
		cfg.Keywords = func(t model.Transaction) []string {
			return []string{t.Name, t.Category, t.Notes}
		}
	}
	return cfg
}

// CategoryConfig binds categories to their grouping and search fields.
// Search matches the name; with Keywords also the description.
func CategoryConfig(opts Options) sectioned.Config[string, model.Category] {
	cfg := sectioned.Config[string, model.Category]{
		Policy:      Categories(),
		DisplayText: func(c model.Category) string { return c.Name },
		Matcher:     opts.Matcher,
		Delay:       opts.Delay,
	}
	if opts.Keywords {
		cfg.Keywords = func(c model.Category) []string {
			return []string{c.Description}
		}
	}
	return cfg
}

// PersonConfig binds people to their grouping and search fields.
// Search matches the name; with Keywords also email and notes.
func PersonConfig(opts Options) sectioned.Config[string, model.Person] {
	cfg := sectioned.Config[string, model.Person]{
		Policy:      People(),
		DisplayText: func(p model.Person) string { return p.Name },
		Matcher:     opts.Matcher,
		Delay:       opts.Delay,
	}
	if opts.Keywords {
		cfg.Keywords = func(p model.Person) []string {
			return []string{p.Email, p.Notes}
		}
	}
	return cfg
}
