package core

import (
	"strings"
	"testing"
)

func TestExpenseValidate(t *testing.T) {
	valid := Expense{
		Description: "Groceries",
		Amount:      23.10,
		Category:    "Food",
		Date:        NewDate(2024, 3, 1),
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Expense)
	}{
		{"empty description", func(e *Expense) { e.Description = "  " }},
		{"empty category", func(e *Expense) { e.Category = "" }},
		{"zero amount", func(e *Expense) { e.Amount = 0 }},
		{"negative amount", func(e *Expense) { e.Amount = -1 }},
		{"zero date", func(e *Expense) { e.Date = Date{} }},
		{"oversized description", func(e *Expense) { e.Description = strings.Repeat("x", MaxDescriptionLen+1) }},
		{"oversized multibyte description", func(e *Expense) { e.Description = strings.Repeat("é", MaxDescriptionLen+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			if err := e.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestDescriptionLengthCountsRunes(t *testing.T) {
	e := Expense{
		Description: strings.Repeat("é", MaxDescriptionLen),
		Amount:      5,
		Category:    "Food",
		Date:        NewDate(2024, 3, 1),
	}

	if err := e.Validate(); err != nil {
		t.Errorf("description of %d multibyte runes rejected: %v", MaxDescriptionLen, err)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, 1, 1)
	b := NewDate(2024, 2, 1)

	if !a.Before(b) {
		t.Error("2024-01-01 should sort before 2024-02-01")
	}
	if b.Before(a) {
		t.Error("2024-02-01 should not sort before 2024-01-01")
	}
	if a.Before(a) {
		t.Error("a date should not sort before itself")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d.String() != "2024-03-01" {
		t.Errorf("String() = %s, want 2024-03-01", d.String())
	}

	for _, bad := range []string{"", "2024-13-01", "03/01/2024", "not a date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}
