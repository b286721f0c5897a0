package cli

import (
	"flag"
	"io"

	"dailyspend/internal/logger"
	"dailyspend/internal/store"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(out io.Writer, s *store.Store, log *logger.Logger) error
}
