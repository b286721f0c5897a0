package add

import (
	"flag"
	"fmt"
	"io"

	"dailyspend/internal/cli"
	"dailyspend/internal/expense"
	"dailyspend/internal/logger"
	"dailyspend/internal/store"
)

type addCommand struct {
	name     string
	amount   string
	category string
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Records a new expense for today"
}

func (c *addCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.name, "name", "", "what the money was spent on")
	fset.StringVar(&c.amount, "amount", "", "amount spent, e.g. 12.50")
	fset.StringVar(&c.category, "category", "", "expense category")
}

func (c *addCommand) Run(out io.Writer, s *store.Store, log *logger.Logger) error {
	exp, err := s.Add(c.name, c.amount, c.category)
	if err != nil {
		return err
	}

	log.Debug("expense recorded", "id", exp.ID, "amount", exp.Amount)

	fmt.Fprintf(out, "Recorded %s (%s) under %s with id %d\n",
		exp.Name, expense.FormatAmount(exp.Amount), exp.Category, exp.ID)

	return nil
}
