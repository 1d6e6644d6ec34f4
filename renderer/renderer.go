package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/agent"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// AnalysisMarkdown renders the analysis, and the insight when not nil, to a
// markdown string.
func AnalysisMarkdown(a *advisor.Analysis, ins *agent.Insight) string {
	return renderReport(NewReport(a, ins))
}

func renderReport(r *Report) string {
	partials := map[string]string{
		"analysis_title":     "analysis_title.md",
		"analysis_summary":   "analysis_summary.md",
		"analysis_insight":   "analysis_insight.md",
		"analysis_actions":   "analysis_actions.md",
		"analysis_scenarios": "analysis_scenarios.md",
	}
	return renderTemplate("analysis", "analysis.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
