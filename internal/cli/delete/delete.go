package delete

import (
	"flag"
	"fmt"
	"io"

	"dailyspend/internal/cli"
	"dailyspend/internal/logger"
	"dailyspend/internal/store"
)

type deleteCommand struct {
	id int64
}

func NewCommand() cli.Command {
	return &deleteCommand{}
}

func (c *deleteCommand) Description() string {
	return "Deletes the expense with the given id"
}

func (c *deleteCommand) SetFlags(fset *flag.FlagSet) {
	fset.Int64Var(&c.id, "id", 0, "id of the expense to delete")
}

func (c *deleteCommand) Run(out io.Writer, s *store.Store, log *logger.Logger) error {
	if err := s.Delete(c.id); err != nil {
		return err
	}

	log.Debug("expense deleted", "id", c.id)

	fmt.Fprintf(out, "Deleted expense %d\n", c.id)

	return nil
}
