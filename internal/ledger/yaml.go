package ledger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/financer/internal/common"
	"github.com/Veraticus/financer/internal/model"
	"github.com/Veraticus/financer/internal/palette"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// idNamespace seeds the deterministic IDs of entries that have none.
var idNamespace = uuid.MustParse("6f1c0c5e-3d0a-4c53-9d5e-5e1b7d0f2a41")

type yamlBook struct {
	Categories   []yamlCategory    `yaml:"categories"`
	People       []yamlPerson      `yaml:"people"`
	Transactions []yamlTransaction `yaml:"transactions"`
}

type yamlCategory struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Color       string `yaml:"color"`
	Inactive    bool   `yaml:"inactive"`
}

type yamlPerson struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Notes string `yaml:"notes"`
}

type yamlTransaction struct {
	ID       string `yaml:"id"`
	Date     string `yaml:"date"`
	Name     string `yaml:"name"`
	Merchant string `yaml:"merchant"`
	Amount   string `yaml:"amount"`
	Account  string `yaml:"account"`
	Category string `yaml:"category"`
	Person   string `yaml:"person"`
	Notes    string `yaml:"notes"`
	Type     string `yaml:"type"`
	Check    string `yaml:"check"`
}

// LoadFile reads a YAML ledger from path.
func LoadFile(path string) (Book, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided ledger path
	if err != nil {
		return Book{}, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	book, err := LoadYAML(f)
	if err != nil {
		return Book{}, fmt.Errorf("%s: %w", path, err)
	}
	return book, nil
}

// LoadYAML decodes a YAML ledger. Transactions must reference categories by
// name and people by ID or name; unknown references are errors.
func LoadYAML(r io.Reader) (Book, error) {
	var raw yamlBook
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Book{}, fmt.Errorf("failed to decode ledger: %w", err)
	}

	var book Book
	for i, yc := range raw.Categories {
		c, err := yc.toModel()
		if err != nil {
			return Book{}, fmt.Errorf("category %d: %w", i+1, err)
		}
		if !book.AddCategory(c) {
			return Book{}, fmt.Errorf("%w: category %q", common.ErrDuplicateEntry, c.Name)
		}
	}
	for i, yp := range raw.People {
		p, err := yp.toModel()
		if err != nil {
			return Book{}, fmt.Errorf("person %d: %w", i+1, err)
		}
		if !book.AddPerson(p) {
			return Book{}, fmt.Errorf("%w: person %q", common.ErrDuplicateEntry, p.Name)
		}
	}
	for i, yt := range raw.Transactions {
		tx, err := yt.toModel(&book)
		if err != nil {
			return Book{}, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		book.AddTransaction(tx)
	}
	return book, nil
}

func (yc yamlCategory) toModel() (model.Category, error) {
	name := strings.TrimSpace(yc.Name)
	if name == "" {
		return model.Category{}, errors.New("name is required")
	}

	c := model.Category{
		ID:          yc.ID,
		Name:        name,
		Description: yc.Description,
		Type:        model.CategoryType(strings.ToLower(yc.Type)),
		IsActive:    !yc.Inactive,
	}
	if c.ID == "" {
		c.ID = deterministicID("category", name)
	}
	if c.Type == "" {
		c.Type = model.CategoryTypeExpense
	}
	if !c.Type.Valid() {
		return model.Category{}, fmt.Errorf("invalid category type %q", yc.Type)
	}
	if yc.Color != "" {
		packed, err := palette.PackedFromHex(yc.Color)
		if err != nil {
			return model.Category{}, fmt.Errorf("category %q: %w", name, err)
		}
		c.Color = packed
	}
	return c, nil
}

func (yp yamlPerson) toModel() (model.Person, error) {
	name := strings.TrimSpace(yp.Name)
	if name == "" {
		return model.Person{}, errors.New("name is required")
	}
	p := model.Person{ID: yp.ID, Name: name, Email: yp.Email, Notes: yp.Notes}
	if p.ID == "" {
		p.ID = deterministicID("person", name)
	}
	return p, nil
}

func (yt yamlTransaction) toModel(book *Book) (model.Transaction, error) {
	date, err := parseDate(yt.Date)
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(yt.Amount))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q: %w", yt.Amount, err)
	}
	if yt.Name == "" && yt.Merchant == "" {
		return model.Transaction{}, errors.New("name or merchant is required")
	}

	tx := model.Transaction{
		ID:           yt.ID,
		Date:         date,
		Name:         yt.Name,
		MerchantName: yt.Merchant,
		Amount:       amount,
		AccountID:    yt.Account,
		Notes:        yt.Notes,
		Type:         strings.ToUpper(yt.Type),
		CheckNumber:  yt.Check,
	}
	if tx.Name == "" {
		tx.Name = tx.MerchantName
	}

	if yt.Category != "" {
		c, ok := book.Category(yt.Category)
		if !ok {
			return model.Transaction{}, fmt.Errorf("%w: unknown category %q", common.ErrInvalidReference, yt.Category)
		}
		tx.Category = c.Name
	}
	if yt.Person != "" {
		p, ok := resolvePerson(book, yt.Person)
		if !ok {
			return model.Transaction{}, fmt.Errorf("%w: unknown person %q", common.ErrInvalidReference, yt.Person)
		}
		tx.PersonID = p.ID
	}

	tx.Hash = tx.GenerateHash()
	if tx.ID == "" {
		tx.ID = deterministicID("transaction", tx.Hash)
	}
	return tx, nil
}

func resolvePerson(book *Book, ref string) (model.Person, bool) {
	if p, ok := book.Person(ref); ok {
		return p, true
	}
	key := normalizeName(ref)
	for _, p := range book.People {
		if normalizeName(p.Name) == key {
			return p, true
		}
	}
	return model.Person{}, false
}

// parseDate accepts a calendar day in local time or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

func deterministicID(kind, name string) string {
	return uuid.NewSHA1(idNamespace, []byte(kind+":"+normalizeName(name))).String()
}
