package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"dailyspend/internal/cli"
	"dailyspend/internal/cli/add"
	"dailyspend/internal/cli/delete"
	"dailyspend/internal/cli/export"
	"dailyspend/internal/cli/list"
	"dailyspend/internal/cli/report"
	"dailyspend/internal/clock"
	"dailyspend/internal/config"
	"dailyspend/internal/logger"
	"dailyspend/internal/storage"
	"dailyspend/internal/storage/file"
	"dailyspend/internal/storage/sqlite"
	"dailyspend/internal/store"
)

var configPath string

var subcommands = map[string]cli.Command{
	"add":    add.NewCommand(),
	"delete": delete.NewCommand(),
	"list":   list.NewCommand(),
	"report": report.NewCommand(),
	"export": export.NewCommand(),
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("subcommand is required")
		printUsage()

		os.Exit(1)
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if commandName == "help" || commandName == "-h" || commandName == "--help" {
			printHelp()

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	fset := flag.NewFlagSet(commandName, flag.ExitOnError)
	fset.StringVar(&configPath, "c", "dailyspend.toml", "Configuration file")
	command.SetFlags(fset)
	if err := fset.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	// A .env next to the binary can override the environment; its absence
	// is fine.
	_ = godotenv.Load()

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	log := logger.New(conf.Logger)

	backend, err := newStorage(conf)
	if err != nil {
		log.Fatal("unable to open storage", "backend", conf.Storage, "error", err.Error())
	}
	defer backend.Close()

	s, err := store.New(backend, clock.New(), conf.Categories)
	if err != nil {
		log.Fatal("unable to load expenses", "error", err.Error())
	}

	if err = command.Run(os.Stdout, s, log); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newStorage(conf *config.Config) (storage.Storage, error) {
	switch conf.Storage {
	case config.StorageSQLite:
		return sqlite.New(conf.DataFile)
	default:
		return file.New(conf.DataFile), nil
	}
}

func printHelp() {
	printUsage()

	for name, command := range subcommands {
		fmt.Printf("  %s: %s\n", name, command.Description())
	}
}

func printUsage() {
	fmt.Println("usage: dailyspend <command> [flags]")
}
