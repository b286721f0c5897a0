package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"dailyspend/internal/logger"
)

type Config struct {
	// Storage selects the persistence backend: "file" or "sqlite".
	Storage string `toml:"storage"`
	// DataFile is the path of the ledger blob (JSON file or sqlite db).
	DataFile string `toml:"data_file"`
	// Categories is the closed set of labels Add accepts. Empty disables
	// the check.
	Categories []string      `toml:"categories"`
	Logger     logger.Config `toml:"logger"`
}

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

const (
	defaultStorage   = StorageFile
	defaultDataFile  = "dailyspend.json"
	defaultLogLevel  = logger.LevelInfo
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "stderr"
)

var defaultCategories = []string{
	"food",
	"transport",
	"entertainment",
	"shopping",
	"bills",
	"health",
	"other",
}

// Parse reads the TOML config file and applies DAILYSPEND_* environment
// overrides on top. A missing file is not an error; defaults apply.
func Parse(file string) (*Config, error) {
	conf := &Config{
		Storage:  defaultStorage,
		DataFile: defaultDataFile,
		Logger: logger.Config{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Output: defaultLogOutput,
		},
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else if err = toml.Unmarshal(data, conf); err != nil {
		return nil, err
	}

	conf.parseEnv()

	if len(conf.Categories) == 0 {
		conf.Categories = defaultCategories
	}

	if conf.Storage != StorageFile && conf.Storage != StorageSQLite {
		return nil, fmt.Errorf("unsupported storage backend %q", conf.Storage)
	}

	return conf, nil
}

func (c *Config) parseEnv() {
	if backend := os.Getenv("DAILYSPEND_STORAGE"); backend != "" {
		c.Storage = backend
	}

	if dataFile := os.Getenv("DAILYSPEND_DATA_FILE"); dataFile != "" {
		c.DataFile = dataFile
	}

	if categories := os.Getenv("DAILYSPEND_CATEGORIES"); categories != "" {
		parts := strings.Split(categories, ",")
		c.Categories = c.Categories[:0]
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				c.Categories = append(c.Categories, part)
			}
		}
	}

	if level := os.Getenv("DAILYSPEND_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("DAILYSPEND_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("DAILYSPEND_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}
