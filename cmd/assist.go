package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/advisor/agent"
	"github.com/google/subcommands"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

// Name returns the name of the command.
func (*assistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*assistCmd) Synopsis() string {
	return "Start an interactive session with the AI assistant about a portfolio."
}

// Usage returns a long-form usage string.
func (*assistCmd) Usage() string {
	return `edge assist <portfolio.json> [question...]

  Start an interactive session with the AI assistant, grounded on the
  analysis of the portfolio. The question, if any, is asked first.
`
}

// SetFlags sets the flags for the command.
func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

// Execute executes the command.
func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	if err := initApp(); err != nil {
		return fail("Error: %v", err)
	}
	initialPrompt := strings.Join(f.Args()[1:], " ")

	p, err := loadInput(f.Arg(0))
	if err != nil {
		return fail("Error: %v", err)
	}
	analysis := newAnalyzer().Analyze(p)

	a := agent.New(os.Stdout, os.Stdin, newChat(ctx, cfg, log), analysis, p)
	a.Print = func(w io.Writer, reply string) {
		fmt.Fprint(w, renderTerminal(reply))
	}
	a.Log = log
	if err := a.Run(ctx, initialPrompt); err != nil {
		return fail("Agent failed: %v", err)
	}
	return subcommands.ExitSuccess
}
