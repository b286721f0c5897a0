// Package insight derives views over the expense collection: period
// filters, totals, averages, projections, category breakdowns and a small
// set of rule-based observations. Everything here is a pure function of its
// inputs; the reference date is always passed in, never read from a clock.
package insight

import (
	"fmt"
	"sort"
	"time"

	"dailyspend/internal/expense"
)

const (
	// highSpendThreshold is the absolute daily amount, in cents, above
	// which spending is flagged regardless of history.
	highSpendThreshold = 50000
	// highDayMultiplier marks a day as a spike when its total exceeds this
	// many times the daily average.
	highDayMultiplier = 1.5
	// highDayCount is how many spike days trigger the multi-day warning.
	highDayCount = 3
)

// CategoryTotal is an amount aggregated under one category.
type CategoryTotal struct {
	Name   string
	Amount int64
}

// FilterByDay returns the expenses attributed to the same calendar day as
// day, preserving order.
func FilterByDay(expenses []expense.Expense, day time.Time) []expense.Expense {
	var matched []expense.Expense
	for _, exp := range expenses {
		if expense.SameDay(exp.Date, day) {
			matched = append(matched, exp)
		}
	}
	return matched
}

// FilterByMonth returns the expenses attributed to the same year and month
// as month, preserving order.
func FilterByMonth(expenses []expense.Expense, month time.Time) []expense.Expense {
	var matched []expense.Expense
	for _, exp := range expenses {
		if expense.SameMonth(exp.Date, month) {
			matched = append(matched, exp)
		}
	}
	return matched
}

// Total sums the amounts of the given expenses.
func Total(expenses []expense.Expense) int64 {
	var total int64
	for _, exp := range expenses {
		total += exp.Amount
	}
	return total
}

// DailyAverage is the average spend per elapsed day of the month.
// dayOfMonth is the ordinal day of the reference date, counting today.
func DailyAverage(monthExpenses []expense.Expense, dayOfMonth int) int64 {
	if dayOfMonth <= 0 {
		return 0
	}
	return Total(monthExpenses) / int64(dayOfMonth)
}

// ProjectedMonthlyTotal extrapolates the daily average across the whole
// month.
func ProjectedMonthlyTotal(dailyAverage int64, daysInMonth int) int64 {
	return dailyAverage * int64(daysInMonth)
}

// CategoryBreakdown groups expenses by category and sums each group,
// sorted by total descending. Ties keep the order categories were first
// seen in the input.
func CategoryBreakdown(expenses []expense.Expense) []CategoryTotal {
	totals := []CategoryTotal{}
	index := map[string]int{}

	for _, exp := range expenses {
		i, ok := index[exp.Category]
		if !ok {
			index[exp.Category] = len(totals)
			totals = append(totals, CategoryTotal{Name: exp.Category, Amount: exp.Amount})
			continue
		}
		totals[i].Amount += exp.Amount
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})

	return totals
}

// HighestCategory returns the top entry of a breakdown.
func HighestCategory(breakdown []CategoryTotal) (string, bool) {
	if len(breakdown) == 0 {
		return "", false
	}
	return breakdown[0].Name, true
}

// Derive evaluates the insight rules in order against today's and this
// month's expenses. Rules are independent; each contributes at most one
// message. With no spending this month the single "no data" message is
// returned, and when no rule fires the "under control" message closes the
// list.
func Derive(todayExpenses, monthExpenses []expense.Expense, referenceDate time.Time) []string {
	if len(monthExpenses) == 0 {
		return []string{"No spending recorded this month yet."}
	}

	var insights []string

	avgDaily := DailyAverage(monthExpenses, referenceDate.Day())
	todayTotal := Total(todayExpenses)

	if avgDaily > 0 && todayTotal > avgDaily {
		insights = append(insights, "Today's spending is above your daily average for this month.")
	}

	if highest, ok := HighestCategory(CategoryBreakdown(monthExpenses)); ok {
		insights = append(insights, fmt.Sprintf("%s is your highest spending category this month.", highest))
	}

	if countHighDays(monthExpenses, avgDaily) >= highDayCount {
		insights = append(insights, "Spending spiked on several days this month.")
	}

	if todayTotal > highSpendThreshold {
		insights = append(insights, fmt.Sprintf("Today's spending crossed %s.", expense.FormatAmount(highSpendThreshold)))
	}

	if len(insights) == 0 {
		insights = append(insights, "Spending is under control.")
	}

	return insights
}

// countHighDays counts the days whose total exceeds the daily average by
// the spike multiplier.
func countHighDays(monthExpenses []expense.Expense, avgDaily int64) int {
	dayTotals := map[string]int64{}
	for _, exp := range monthExpenses {
		dayTotals[exp.Date.Format(expense.DateLayout)] += exp.Amount
	}

	count := 0
	limit := float64(avgDaily) * highDayMultiplier
	for _, total := range dayTotals {
		if float64(total) > limit {
			count++
		}
	}
	return count
}
