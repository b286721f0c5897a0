package expense

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-granularity form expenses are attributed and
// serialized with. It sorts lexicographically.
const DateLayout = "2006-01-02"

// Expense is a single recorded spending event. Amount is held in cents to
// keep sums and averages exact.
type Expense struct {
	ID        int64
	Name      string
	Amount    int64
	Category  string
	Date      time.Time
	Timestamp time.Time
}

// ValidationError reports a rejected field on Add.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseAmount converts a decimal amount string to cents. The amount must be
// strictly positive and carry at most two decimal places.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: "amount", Reason: "cannot be empty"}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", s)}
	}

	if !d.IsPositive() {
		return 0, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}

	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, &ValidationError{Field: "amount", Reason: "more than two decimal places"}
	}

	return cents.IntPart(), nil
}

// FormatAmount renders cents back as a plain decimal string, the inverse of
// ParseAmount.
func FormatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// DayOf truncates an instant to its calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether two times fall in the same year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
