// Package core holds the expense domain model and the form validation rules
// shared by the create and edit paths.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseExpenseForm turns raw form inputs into a validated expense.
//
// Description, amount and category must be non-empty after trimming, and the
// amount must parse as a strictly positive number. The date is deliberately
// more forgiving: an empty or unparseable date string falls back to today
// instead of rejecting, matching the entry form's behavior since day one.
func ParseExpenseForm(description, amount, category, date string) (Expense, error) {
	description = strings.TrimSpace(description)
	amount = strings.TrimSpace(amount)
	category = strings.TrimSpace(category)
	date = strings.TrimSpace(date)

	if description == "" || amount == "" || category == "" {
		return Expense{}, ErrFieldsRequired
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return Expense{}, ErrInvalidAmount
	}

	d := Today()
	if date != "" {
		if parsed, err := ParseDate(date); err == nil {
			d = parsed
		}
	}

	e := Expense{
		Description: description,
		Amount:      value,
		Category:    category,
		Date:        d,
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
