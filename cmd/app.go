// Package cmd implements the edge command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/internal/config"
	"github.com/etnz/advisor/internal/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&chartCmd{}, "analysis")
	c.Register(&assistCmd{}, "analysis")
	c.Register(&serveCmd{}, "server")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file. Defaults to advisor.yaml in the working directory or ~/.advisor")

var (
	cfg *config.Config
	log = zerolog.Nop()
)

// initApp loads the configuration and sets up the logger. It must be called
// by every command before using cfg or log.
func initApp() error {
	if cfg != nil {
		return nil
	}
	c, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	cfg = c
	log = logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)
	return nil
}

// newAnalyzer returns an analyzer over the configured tables.
func newAnalyzer() *advisor.Analyzer {
	return advisor.NewAnalyzer(cfg.Tables())
}

// loadInput reads and validates a portfolio file, applying the configured
// currency when the file has none.
func loadInput(file string) (*advisor.PortfolioInput, error) {
	p, err := advisor.LoadInput(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if p.Currency == "" && cfg != nil {
		p.Currency = cfg.Currency
	}
	return p, nil
}

func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
