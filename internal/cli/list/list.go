package list

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"dailyspend/internal/cli"
	"dailyspend/internal/expense"
	"dailyspend/internal/insight"
	"dailyspend/internal/logger"
	"dailyspend/internal/store"
	"dailyspend/internal/util"
)

type listCommand struct {
}

func NewCommand() cli.Command {
	return listCommand{}
}

func (c listCommand) Description() string {
	return "Lists all recorded expenses"
}

func (c listCommand) SetFlags(*flag.FlagSet) {
}

func (c listCommand) Run(out io.Writer, s *store.Store, _ *logger.Logger) error {
	expenses := s.List()
	if len(expenses) == 0 {
		fmt.Fprintln(out, "No expenses recorded")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		util.ColorOutput("ID", "bold"),
		util.ColorOutput("Date", "bold"),
		util.ColorOutput("Name", "bold"),
		util.ColorOutput("Category", "bold"),
		util.ColorOutput("Amount", "bold"),
	)

	for _, exp := range expenses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			exp.ID,
			exp.Date.Format(expense.DateLayout),
			exp.Name,
			exp.Category,
			util.ColorOutput(util.FormatMoney(exp.Amount, ".", ","), "red"),
		)
	}

	fmt.Fprintf(w, "\nTotal\t%s\n", util.FormatMoney(insight.Total(expenses), ".", ","))

	return w.Flush()
}
