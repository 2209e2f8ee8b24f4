package core

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Categories is the fixed set offered by the entry form, in display order.
// It only drives the form select: the stored column is free text and
// membership is not re-checked on submit.
var Categories = []string{"Food", "Transport", "Utilities", "Entertainment", "Rent", "Other"}

const MaxDescriptionLen = 120

type (
	Date struct {
		time.Time
	}

	Expense struct {
		ID          int64
		Description string
		Amount      float64
		Category    string
		Date        Date
	}

	// CategoryTotal is one row of an amount-by-category aggregation.
	CategoryTotal struct {
		Category string
		Total    float64
	}
)

var (
	ErrFieldsRequired = errors.New("all fields are required")
	ErrInvalidAmount  = errors.New("invalid amount")
)

const dateLayout = "2006-01-02"

// ParseDate parses an ISO YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Today returns the current calendar date, truncated to midnight UTC so that
// two dates on the same day always compare equal.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.String() < other.String()
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" || strings.TrimSpace(e.Category) == "" {
		return ErrFieldsRequired
	}
	if utf8.RuneCountInString(e.Description) > MaxDescriptionLen {
		return errors.New("description too long (max 120 characters)")
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}
