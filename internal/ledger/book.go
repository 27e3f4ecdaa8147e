// Package ledger loads the read-only item sets the lists browse: YAML
// ledger files, OFX/QFX statements and generated demo data.
package ledger

import (
	"strings"

	"github.com/Veraticus/financer/internal/model"
)

// Book is an in-memory collection of transactions, categories and people.
// Nothing in a Book is ever written back to its source.
type Book struct {
	Transactions []model.Transaction
	Categories   []model.Category
	People       []model.Person
}

// Merge combines books in order. Transactions are deduplicated by hash,
// categories and people by case-insensitive name; the first occurrence wins.
func Merge(books ...Book) Book {
	var out Book
	seenTx := make(map[string]bool)
	seenCat := make(map[string]bool)
	seenPerson := make(map[string]bool)

	for _, b := range books {
		for _, tx := range b.Transactions {
			if tx.Hash == "" {
				tx.Hash = tx.GenerateHash()
			}
			if seenTx[tx.Hash] {
				continue
			}
			seenTx[tx.Hash] = true
			out.Transactions = append(out.Transactions, tx)
		}
		for _, c := range b.Categories {
			key := normalizeName(c.Name)
			if seenCat[key] {
				continue
			}
			seenCat[key] = true
			out.Categories = append(out.Categories, c)
		}
		for _, p := range b.People {
			key := normalizeName(p.Name)
			if seenPerson[key] {
				continue
			}
			seenPerson[key] = true
			out.People = append(out.People, p)
		}
	}
	return out
}

// Category returns the category with the given name, ignoring case.
func (b *Book) Category(name string) (model.Category, bool) {
	key := normalizeName(name)
	for _, c := range b.Categories {
		if normalizeName(c.Name) == key {
			return c, true
		}
	}
	return model.Category{}, false
}

// Person returns the person with the given ID.
func (b *Book) Person(id string) (model.Person, bool) {
	for _, p := range b.People {
		if p.ID == id {
			return p, true
		}
	}
	return model.Person{}, false
}

// Transaction returns the transaction with the given ID.
func (b *Book) Transaction(id string) (model.Transaction, bool) {
	for _, tx := range b.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

// UpdateTransaction replaces the transaction with the same ID. It reports
// whether one was found.
func (b *Book) UpdateTransaction(tx model.Transaction) bool {
	for i := range b.Transactions {
		if b.Transactions[i].ID == tx.ID {
			b.Transactions[i] = tx
			return true
		}
	}
	return false
}

// AddTransaction appends tx, generating its hash when missing.
func (b *Book) AddTransaction(tx model.Transaction) {
	if tx.Hash == "" {
		tx.Hash = tx.GenerateHash()
	}
	b.Transactions = append(b.Transactions, tx)
}

// AddCategory appends c unless a category with the same name exists.
func (b *Book) AddCategory(c model.Category) bool {
	if _, exists := b.Category(c.Name); exists {
		return false
	}
	b.Categories = append(b.Categories, c)
	return true
}

// AddPerson appends p unless a person with the same name exists.
func (b *Book) AddPerson(p model.Person) bool {
	key := normalizeName(p.Name)
	for _, existing := range b.People {
		if normalizeName(existing.Name) == key {
			return false
		}
	}
	b.People = append(b.People, p)
	return true
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
