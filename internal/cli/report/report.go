package report

import (
	"embed"
	"flag"
	"fmt"
	"io"
	"path"
	"sort"
	"text/template"
	"time"

	"golang.org/x/exp/maps"

	"dailyspend/internal/cli"
	"dailyspend/internal/expense"
	"dailyspend/internal/insight"
	"dailyspend/internal/logger"
	"dailyspend/internal/store"
	"dailyspend/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type reportCommand struct {
	date string
}

func NewCommand() cli.Command {
	return &reportCommand{}
}

func (c *reportCommand) Description() string {
	return "Displays today's and this month's spending summary with insights"
}

func (c *reportCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.date, "date", "", "reference date in YYYY-MM-DD form (defaults to today)")
}

type categoryView struct {
	Name       string
	Amount     int64
	Percentage float64
}

type reportData struct {
	Date            string
	TodayTotal      int64
	MonthTotal      int64
	DailyAverage    int64
	Projected       int64
	ActiveDays      int
	HighestDay      string
	HighestDayTotal int64
	Categories      []categoryView
	Insights        []string
}

func (c *reportCommand) Run(out io.Writer, s *store.Store, log *logger.Logger) error {
	referenceDate := time.Now()
	if c.date != "" {
		parsed, err := time.Parse(expense.DateLayout, c.date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", c.date, err)
		}
		referenceDate = parsed
	}

	expenses := s.List()
	log.Debug("generating report", "expenses", len(expenses), "date", referenceDate.Format(expense.DateLayout))

	data := build(expenses, referenceDate)

	return renderTemplate(out, "report.tmpl", data)
}

func build(expenses []expense.Expense, referenceDate time.Time) reportData {
	todayExpenses := insight.FilterByDay(expenses, referenceDate)
	monthExpenses := insight.FilterByMonth(expenses, referenceDate)

	monthTotal := insight.Total(monthExpenses)
	avgDaily := insight.DailyAverage(monthExpenses, referenceDate.Day())

	data := reportData{
		Date:         referenceDate.Format(expense.DateLayout),
		TodayTotal:   insight.Total(todayExpenses),
		MonthTotal:   monthTotal,
		DailyAverage: avgDaily,
		Projected:    insight.ProjectedMonthlyTotal(avgDaily, util.DaysInMonth(referenceDate)),
		Insights:     insight.Derive(todayExpenses, monthExpenses, referenceDate),
	}

	breakdown := insight.CategoryBreakdown(monthExpenses)
	for _, ct := range breakdown {
		view := categoryView{Name: ct.Name, Amount: ct.Amount}
		if monthTotal > 0 {
			view.Percentage = float64(ct.Amount) * 100 / float64(monthTotal)
		}
		data.Categories = append(data.Categories, view)
	}

	dayTotals := map[string]int64{}
	for _, exp := range monthExpenses {
		dayTotals[exp.Date.Format(expense.DateLayout)] += exp.Amount
	}
	days := maps.Keys(dayTotals)
	sort.Strings(days)
	data.ActiveDays = len(days)
	for _, day := range days {
		if dayTotals[day] > data.HighestDayTotal {
			data.HighestDay = day
			data.HighestDayTotal = dayTotals[day]
		}
	}

	return data
}

var templateFuncs = template.FuncMap{
	"formatMoney": util.FormatMoney,
	"colorOutput": util.ColorOutput,
}

func renderTemplate(out io.Writer, templateName string, value interface{}) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}
	t := template.Must(template.New(templateName).Funcs(templateFuncs).Parse(string(tmpl)))
	return t.Execute(out, value)
}
