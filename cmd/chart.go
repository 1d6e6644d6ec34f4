package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the scenario projections of a portfolio" }
func (*chartCmd) Usage() string {
	return `edge chart [-o <file.png>] <portfolio.json>

  Draw the year by year value of the portfolio under each market regime,
  against its goal, as a PNG image.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "scenarios.png", "output image file")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	if err := initApp(); err != nil {
		return fail("Error: %v", err)
	}
	p, err := loadInput(f.Arg(0))
	if err != nil {
		return fail("Error: %v", err)
	}
	png, err := renderer.ScenarioChart(newAnalyzer().Analyze(p))
	if err != nil {
		return fail("Error drawing chart: %v", err)
	}
	if err := os.WriteFile(c.output, png, 0644); err != nil {
		return fail("Error: %v", err)
	}
	fmt.Printf("Chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}
