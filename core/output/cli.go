package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"goalgraph/core/types"
	"goalgraph/core/ui"
	"goalgraph/core/validation"
)

// CLIFormatter renders a styled terminal report
type CLIFormatter struct {
	opts Options
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(opts Options) *CLIFormatter {
	return &CLIFormatter{opts: opts}
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the full validation report
func (f *CLIFormatter) Render(w io.Writer, result *ValidationResult) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	report := result.Report

	out.Header("Goal Dependency Report")
	out.Box(
		fmt.Sprintf("Goals:        %d", result.Graph.Size()),
		fmt.Sprintf("Dependencies: %d", result.Graph.EdgeCount()),
		"Status:       "+string(report.Status()),
	)
	out.Line("")

	findings := report.Findings()
	if len(findings) == 0 {
		out.Success("No issues found")
	}
	for _, finding := range findings {
		if finding.Severity == validation.StatusInvalid {
			out.Error("%s", finding.Message)
		} else {
			out.Warning("%s", finding.Message)
		}
	}

	if report.IsCyclic() {
		out.Line("")
		out.Line(out.Muted("Critical path and stages are unavailable while cycles remain."))
		return nil
	}

	f.renderPlan(out, result)
	return nil
}

// RenderPlan writes only the ordering analyses
func (f *CLIFormatter) RenderPlan(w io.Writer, result *ValidationResult) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	if result.Report.IsCyclic() {
		out.Error("goal graph has %d cycle(s); no plan can be computed", len(result.Report.Cycles))
		for _, c := range result.Report.Cycles {
			out.Line("  " + joinIDs(c, " → "))
		}
		return nil
	}
	f.renderPlan(out, result)
	return nil
}

func (f *CLIFormatter) renderPlan(out *ui.Writer, result *ValidationResult) {
	report := result.Report

	out.Header("Critical Path")
	if len(report.CriticalPath) == 0 {
		out.Line(out.Muted("no goals"))
	} else {
		out.Line(out.Bold(joinIDs(report.CriticalPath, " → ")))
		if report.CriticalPathShortfall != nil {
			out.Line("Still to save along the path: " + report.CriticalPathShortfall.String())
		}
	}

	if len(report.Stages) == 0 {
		return
	}

	out.Header("Execution Stages")
	headers := []string{"Stage", "Goal", "Priority", "Category"}
	if f.opts.ShowDepths {
		headers = append(headers, "Depth")
	}
	table := out.NewTable(headers...)
	for i, stage := range report.Stages {
		for _, id := range stage {
			n, ok := result.Graph.Node(id)
			if !ok {
				continue
			}
			row := []string{strconv.Itoa(i + 1), goalLabel(n.Goal), string(n.Goal.Priority), categoryLabel(n.Goal.Category)}
			if f.opts.ShowDepths {
				row = append(row, strconv.Itoa(n.Depth))
			}
			table.AddRow(row...)
		}
	}
	table.Render()
}

func goalLabel(g types.Goal) string {
	if g.Title == "" || g.Title == string(g.ID) {
		return string(g.ID)
	}
	return fmt.Sprintf("%s (%s)", g.ID, g.Title)
}

func categoryLabel(c types.Category) string {
	if icon, ok := c.Icon(); ok {
		return icon + " " + string(c)
	}
	return string(c) + " (unknown)"
}

func joinIDs(ids []types.GoalID, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, sep)
}
