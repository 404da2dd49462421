package output

import (
	"fmt"
	"io"
	"strings"

	"goalgraph/core/types"
)

// MarkdownFormatter renders a markdown report with a mermaid diagram
type MarkdownFormatter struct {
	opts Options
}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, result *ValidationResult) error {
	var b strings.Builder
	report := result.Report

	b.WriteString("# Goal Dependency Report\n\n")
	fmt.Fprintf(&b, "**Status:** %s  \n", report.Status())
	fmt.Fprintf(&b, "**Goals:** %d  \n", result.Graph.Size())
	fmt.Fprintf(&b, "**Dependencies:** %d\n\n", result.Graph.EdgeCount())

	b.WriteString("## Findings\n\n")
	findings := report.Findings()
	if len(findings) == 0 {
		b.WriteString("No issues found.\n")
	}
	for _, finding := range findings {
		fmt.Fprintf(&b, "- **%s** `%s`: %s\n", finding.Severity, finding.Kind, finding.Message)
	}
	b.WriteString("\n")

	if !report.IsCyclic() && len(report.CriticalPath) > 0 {
		b.WriteString("## Critical Path\n\n")
		b.WriteString(joinIDs(report.CriticalPath, " → "))
		b.WriteString("\n\n")
		if report.CriticalPathShortfall != nil {
			fmt.Fprintf(&b, "Remaining to fund: %s\n\n", report.CriticalPathShortfall)
		}

		b.WriteString("## Goals\n\n")
		if f.opts.ShowDepths {
			b.WriteString("| Stage | Goal | Priority | Depth |\n|---|---|---|---|\n")
		} else {
			b.WriteString("| Stage | Goal | Priority |\n|---|---|---|\n")
		}
		for i, stage := range report.Stages {
			for _, id := range stage {
				n, ok := result.Graph.Node(id)
				if !ok {
					continue
				}
				fmt.Fprintf(&b, "| %d | %s | %s |", i+1, escapeCell(goalLabel(n.Goal)), n.Goal.Priority)
				if f.opts.ShowDepths {
					fmt.Fprintf(&b, " %d |", n.Depth)
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if len(result.Graph.Links) > 0 {
		b.WriteString("## Diagram\n\n```mermaid\ngraph LR\n")
		nodeIDs := make(map[types.GoalID]string, len(result.Graph.Nodes))
		for i, n := range result.Graph.Nodes {
			nodeIDs[n.ID] = fmt.Sprintf("n%d", i)
			fmt.Fprintf(&b, "  n%d[\"%s\"]\n", i, mermaidLabel(string(n.ID)))
		}
		for _, l := range result.Graph.Links {
			label, ok := l.Type.Label()
			if !ok {
				label = string(l.Type) + "?"
			}
			fmt.Fprintf(&b, "  %s -->|%s| %s\n", nodeIDs[l.Source], mermaidLabel(label), nodeIDs[l.Target])
		}
		for i, l := range result.Graph.Links {
			if color, ok := l.Type.Color(); ok {
				fmt.Fprintf(&b, "  linkStyle %d stroke:%s\n", i, color)
			}
		}
		b.WriteString("```\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// mermaidLabel escapes characters mermaid treats as syntax inside labels
func mermaidLabel(s string) string {
	return strings.NewReplacer(`"`, "#quot;", "|", "#124;").Replace(s)
}
