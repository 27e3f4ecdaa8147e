package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_GenerateHash(t *testing.T) {
	base := Transaction{
		Date:         time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		Amount:       decimal.RequireFromString("-25.5"),
		MerchantName: "Starbucks",
		AccountID:    "acct-1",
	}

	same := base
	same.Date = time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
	same.Amount = decimal.RequireFromString("-25.50")
	same.Notes = "latte"

	other := base
	other.AccountID = "acct-2"

	assert.Len(t, base.GenerateHash(), 64)
	assert.Equal(t, base.GenerateHash(), same.GenerateHash())
	assert.NotEqual(t, base.GenerateHash(), other.GenerateHash())
}

func TestTransaction_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		txn  Transaction
		want string
	}{
		{name: "merchant", txn: Transaction{Name: "POS 1234 STARBUCKS", MerchantName: "Starbucks"}, want: "Starbucks"},
		{name: "raw fallback", txn: Transaction{Name: "CHECK 1001"}, want: "CHECK 1001"},
		{name: "empty", txn: Transaction{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.DisplayName())
		})
	}
}

func TestTransaction_Flags(t *testing.T) {
	expense := Transaction{Amount: decimal.NewFromInt(-10)}
	income := Transaction{Amount: decimal.NewFromInt(10), Category: "Salary"}

	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsCategorized())
	assert.False(t, income.IsExpense())
	assert.True(t, income.IsCategorized())
}

func TestCategoryType_Valid(t *testing.T) {
	assert.True(t, CategoryTypeExpense.Valid())
	assert.True(t, CategoryTypeIncome.Valid())
	assert.True(t, CategoryTypeSystem.Valid())
	assert.False(t, CategoryType("other").Valid())
	assert.False(t, CategoryType("").Valid())
}
