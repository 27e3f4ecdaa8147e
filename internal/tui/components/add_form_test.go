package components

import (
	"testing"

	tuitest "github.com/Veraticus/financer/internal/tui/testing"
	"github.com/Veraticus/financer/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(f AddForm, msgs ...tea.Msg) (AddForm, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		f, cmd = f.Update(msg)
	}
	return f, cmd
}

func keys(text string, then ...tea.Msg) []tea.Msg {
	return append(tuitest.Typed(text), then...)
}

func TestAddForm_SubmitPerson(t *testing.T) {
	f := NewAddForm(FormPerson, themes.Default)

	msgs := keys("  Zed ", tuitest.KeyEnter())
	msgs = append(msgs, keys("zed@example.com", tuitest.KeyEnter())...)
	f, cmd := fill(f, msgs...)

	require.NotNil(t, cmd)
	submitted, ok := cmd().(FormSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, FormPerson, submitted.Kind)
	assert.Equal(t, map[string]string{FieldName: "Zed", FieldEmail: "zed@example.com"}, submitted.Values)
	assert.NoError(t, f.Err())
}

func TestAddForm_Validation(t *testing.T) {
	tests := []struct {
		name    string
		wantErr string
		kind    FormKind
		msgs    []tea.Msg
	}{
		{
			name:    "missing merchant",
			kind:    FormTransaction,
			msgs:    []tea.Msg{tuitest.KeyTab(), tuitest.KeyPress("5"), tuitest.KeyEnter()},
			wantErr: "merchant is required",
		},
		{
			name:    "bad amount",
			kind:    FormTransaction,
			msgs:    keys("Bakery", tuitest.KeyEnter(), tuitest.KeyPress("x"), tuitest.KeyEnter()),
			wantErr: "amount must be a number",
		},
		{
			name: "bad colour",
			kind: FormCategory,
			msgs: append(keys("Dining", tuitest.KeyEnter(), tuitest.KeyEnter()),
				keys("#zzz", tuitest.KeyEnter())...),
			wantErr: "colour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, cmd := fill(NewAddForm(tt.kind, themes.Default), tt.msgs...)

			assert.Nil(t, cmd)
			require.Error(t, f.Err())
			assert.Contains(t, f.Err().Error(), tt.wantErr)
			assert.Contains(t, tuitest.StripANSI(f.View()), tt.wantErr)
		})
	}
}

func TestAddForm_OptionalColour(t *testing.T) {
	f, cmd := fill(NewAddForm(FormCategory, themes.Default),
		keys("Dining", tuitest.KeyEnter(), tuitest.KeyEnter(), tuitest.KeyEnter())...)

	require.NotNil(t, cmd)
	submitted, ok := cmd().(FormSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "Dining", submitted.Values[FieldName])
	assert.Empty(t, submitted.Values[FieldColor])
	assert.Equal(t, FormCategory, f.Kind())
}

func TestAddForm_Cancel(t *testing.T) {
	_, cmd := fill(NewAddForm(FormCategory, themes.Default), keys("Din", tuitest.KeyEsc())...)

	require.NotNil(t, cmd)
	assert.Equal(t, FormCancelledMsg{Kind: FormCategory}, cmd())
}

func TestAddForm_FocusWraps(t *testing.T) {
	f := NewAddForm(FormPerson, themes.Default)

	f, _ = fill(f, tuitest.KeyShiftTab())
	assert.Equal(t, 1, f.focus)

	f, _ = fill(f, tuitest.KeyTab())
	assert.Equal(t, 0, f.focus)

	f, _ = fill(f, tuitest.KeyDown(), tuitest.KeyUp())
	assert.Equal(t, 0, f.focus)
}

func TestAddForm_TypingClearsError(t *testing.T) {
	f, _ := fill(NewAddForm(FormPerson, themes.Default), tuitest.KeyEnter(), tuitest.KeyEnter())
	require.Error(t, f.Err())

	f, _ = fill(f, tuitest.KeyShiftTab(), tuitest.KeyPress("A"))

	assert.NoError(t, f.Err())
	assert.Equal(t, "A", f.Values()[FieldName])
}

func TestAddForm_View(t *testing.T) {
	view := tuitest.StripANSI(NewAddForm(FormTransaction, themes.Default).View())

	assert.True(t, tuitest.ContainsInOrder(view, "New transaction", "Merchant", "Amount", "esc cancel"))
}

func TestFormKind_String(t *testing.T) {
	assert.Equal(t, "transaction", FormTransaction.String())
	assert.Equal(t, "category", FormCategory.String())
	assert.Equal(t, "person", FormPerson.String())
	assert.Equal(t, "FormKind(9)", FormKind(9).String())
}
