package export

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"dailyspend/internal/cli"
	"dailyspend/internal/expense"
	"dailyspend/internal/logger"
	"dailyspend/internal/store"
)

type exportCommand struct {
	output string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Exports all expenses to CSV"
}

func (c *exportCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.output, "o", "", "output file (defaults to stdout)")
}

func (c *exportCommand) Run(out io.Writer, s *store.Store, log *logger.Logger) error {
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	expenses := s.List()
	log.Debug("exporting expenses", "count", len(expenses))

	return CSV(out, expenses)
}

// CSV writes the expenses as CSV: header first, one row per expense,
// amounts as plain decimal strings.
func CSV(writer io.Writer, expenses []expense.Expense) error {
	w := csv.NewWriter(writer)
	defer w.Flush()

	records := make([][]string, 0, len(expenses)+1)
	records = append(records, []string{"ID", "Date", "Name", "Category", "Amount", "Timestamp"})

	for _, exp := range expenses {
		records = append(records, []string{
			strconv.FormatInt(exp.ID, 10),
			exp.Date.Format(expense.DateLayout),
			exp.Name,
			exp.Category,
			expense.FormatAmount(exp.Amount),
			exp.Timestamp.Format(time.RFC3339Nano),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}
