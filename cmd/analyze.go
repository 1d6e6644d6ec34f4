package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/agent"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

// maxParallelAnalyses bounds the portfolios analyzed, and narrated,
// concurrently.
const maxParallelAnalyses = 4

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	json    bool
	html    bool
	output  string
	narrate bool
}

func (*analyzeCmd) Name() string { return "analyze" }

func (*analyzeCmd) Synopsis() string { return "analyze portfolio snapshots" }
func (*analyzeCmd) Usage() string {
	return `edge analyze [-json|-html] [-o <file>] [-narrate] <portfolio.json>...

  Compute the metrics of each portfolio, rank the actions that would improve
  it and project its value toward its goal. See 'edge topic input' for the
  file format.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the analysis as JSON")
	f.BoolVar(&c.html, "html", false, "print the analysis as an HTML page")
	f.StringVar(&c.output, "o", "", "write the output to this file instead of the standard output")
	f.BoolVar(&c.narrate, "narrate", false, "explain the top action using the configured AI provider")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 || (c.json && c.html) {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	if err := initApp(); err != nil {
		return fail("Error: %v", err)
	}

	var narrator agent.Narrator
	if c.narrate {
		narrator = newNarrator(ctx, cfg, log)
	}
	results, err := analyzeFiles(ctx, newAnalyzer(), narrator, f.Args())
	if err != nil {
		return fail("Error: %v", err)
	}

	var out string
	switch {
	case c.json:
		out, err = formatJSON(results)
	case c.html:
		out, err = markdownToHTML("Portfolio Analysis", formatMarkdown(results))
	default:
		md := formatMarkdown(results)
		if c.output == "" {
			printMarkdown(md)
			return subcommands.ExitSuccess
		}
		out = md
	}
	if err != nil {
		return fail("Error: %v", err)
	}

	if err := writeOutput(c.output, out); err != nil {
		return fail("Error: %v", err)
	}
	return subcommands.ExitSuccess
}

// result is the analysis of one portfolio file.
type result struct {
	File     string
	Analysis *advisor.Analysis
	Insight  *agent.Insight
}

// analyzeFiles loads and analyzes files concurrently. The results are in the
// order of files. n may be nil to skip the narration.
func analyzeFiles(ctx context.Context, a *advisor.Analyzer, n agent.Narrator, files []string) ([]result, error) {
	results := make([]result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelAnalyses)
	for i, file := range files {
		g.Go(func() error {
			p, err := loadInput(file)
			if err != nil {
				return err
			}
			res := result{File: file, Analysis: a.Analyze(p)}
			if n != nil {
				ins, err := n.Narrate(ctx, res.Analysis)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				res.Insight = &ins
			}
			log.Debug().Str("file", file).Str("analysis", res.Analysis.ID).Msg("portfolio analyzed")
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type jsonResult struct {
	File string `json:"file"`
	*advisor.Analysis
	AIInsight *agent.Insight `json:"aiInsight,omitempty"`
}

// formatJSON encodes a single result as an object, several as an array.
func formatJSON(results []result) (string, error) {
	list := make([]jsonResult, len(results))
	for i, r := range results {
		list[i] = jsonResult{File: r.File, Analysis: r.Analysis, AIInsight: r.Insight}
	}
	var v any = list
	if len(list) == 1 {
		v = list[0]
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func formatMarkdown(results []result) string {
	parts := make([]string, len(results))
	for i, r := range results {
		md := renderer.AnalysisMarkdown(r.Analysis, r.Insight)
		if len(results) > 1 {
			md = fmt.Sprintf("<!-- %s -->\n\n%s", r.File, md)
		}
		parts[i] = md
	}
	return strings.Join(parts, "\n---\n\n")
}

// writeOutput writes s to file, or to the standard output when file is empty.
func writeOutput(file, s string) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := io.WriteString(w, s)
	return err
}
