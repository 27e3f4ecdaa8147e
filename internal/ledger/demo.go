package ledger

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Veraticus/financer/internal/model"
	"github.com/Veraticus/financer/internal/palette"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type demoMerchant struct {
	name     string
	category string
	min, max float64
}

var demoMerchants = []demoMerchant{
	{"Whole Foods Market", "Groceries", 20, 200},
	{"Shell Oil", "Transportation", 30, 80},
	{"Netflix.com", "Entertainment", 15.99, 15.99},
	{"Amazon.com", "Shopping", 10, 500},
	{"Starbucks", "Dining Out", 3, 12},
	{"Target", "Shopping", 15, 300},
	{"Uber", "Transportation", 8, 45},
	{"CVS Pharmacy", "Healthcare", 10, 150},
	{"Home Depot", "Home Supplies", 25, 400},
	{"Chipotle", "Dining Out", 8, 25},
	{"Delta Airlines", "Travel", 150, 800},
	{"Trader Joe's", "Groceries", 25, 150},
	{"City Power & Light", "Utilities", 60, 140},
}

var demoCategories = []struct {
	name, description, color string
	kind                     model.CategoryType
}{
	{"Groceries", "Supermarkets and food shopping", "#4caf50", model.CategoryTypeExpense},
	{"Dining Out", "Restaurants, cafes and takeout", "#ff9800", model.CategoryTypeExpense},
	{"Transportation", "Fuel, rides and transit", "#2196f3", model.CategoryTypeExpense},
	{"Entertainment", "Streaming and events", "#9c27b0", model.CategoryTypeExpense},
	{"Shopping", "General merchandise", "#e91e63", model.CategoryTypeExpense},
	{"Healthcare", "Pharmacy and doctors", "#f44336", model.CategoryTypeExpense},
	{"Home Supplies", "Hardware and household goods", "#795548", model.CategoryTypeExpense},
	{"Travel", "Flights and hotels", "#00bcd4", model.CategoryTypeExpense},
	{"Utilities", "Power, water and internet", "#607d8b", model.CategoryTypeExpense},
	{"Salary", "Payroll deposits", "#8bc34a", model.CategoryTypeIncome},
	{"Transfers", "Moves between own accounts", "#9e9e9e", model.CategoryTypeSystem},
}

var demoPeople = []struct{ name, email string }{
	{"Alice Moreau", "alice@example.com"},
	{"Bob Okafor", "bob@example.com"},
	{"Chen Wei", "chen@example.com"},
	{"Dana Whitfield", "dana@example.com"},
	{"Émile Roux", "emile@example.com"},
	{"Farah Haddad", "farah@example.com"},
	{"8-Bit Club", "club@example.com"},
}

// Demo generates a deterministic sample book. The same seed and now always
// produce the same book; transactions go back count/3 days from now.
func Demo(seed int64, count int, now time.Time) Book {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed)) //nolint:gosec // seed bits, sign irrelevant
	src := rand.NewChaCha8(key)
	rng := rand.New(src)
	newID := func() string {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return uuid.NewString()
		}
		return id.String()
	}

	var book Book
	created := now.AddDate(-1, 0, 0)
	for _, c := range demoCategories {
		color, _ := palette.PackedFromHex(c.color)
		book.AddCategory(model.Category{
			ID:          newID(),
			Name:        c.name,
			Description: c.description,
			Type:        c.kind,
			Color:       color,
			IsActive:    true,
			CreatedAt:   created,
		})
	}
	for _, p := range demoPeople {
		book.AddPerson(model.Person{ID: newID(), Name: p.name, Email: p.email})
	}

	for i := 0; i < count; i++ {
		day := now.AddDate(0, 0, -(i / 3)).Add(-time.Duration(i%3) * time.Hour)
		tx := model.Transaction{
			ID:        newID(),
			Date:      day,
			AccountID: "demo-checking",
			Type:      "DEBIT",
		}

		if rng.Float64() < 0.05 {
			tx.MerchantName = "Acme Corp Payroll"
			tx.Amount = decimal.NewFromFloat(1500 + rng.Float64()*3500).Round(2)
			tx.Category = "Salary"
			tx.Type = "CREDIT"
		} else {
			m := demoMerchants[rng.IntN(len(demoMerchants))]
			tx.MerchantName = m.name
			if rng.Float64() < 0.3 {
				tx.MerchantName = fmt.Sprintf("%s #%04d", m.name, rng.IntN(9999))
			}
			tx.Amount = decimal.NewFromFloat(m.min + rng.Float64()*(m.max-m.min)).Round(2).Neg()
			if rng.Float64() < 0.6 {
				tx.Category = m.category
			}
			if rng.Float64() < 0.15 {
				tx.PersonID = book.People[rng.IntN(len(book.People))].ID
			}
		}
		tx.Name = fmt.Sprintf("%s %s", tx.MerchantName, day.Format("01/02"))
		book.AddTransaction(tx)
	}
	return book
}
