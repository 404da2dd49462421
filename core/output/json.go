package output

import (
	"encoding/json"
	"io"

	"goalgraph/core/types"
	"goalgraph/core/validation"
	goalerrors "goalgraph/internal/errors"
)

// JSONFormatter renders the report as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

type jsonDocument struct {
	Metadata Metadata             `json:"metadata"`
	Status   validation.Status    `json:"status"`
	Findings []validation.Finding `json:"findings"`
	Goals    []jsonGoal           `json:"goals"`
	Report   *validation.Report   `json:"report"`
}

type jsonGoal struct {
	ID       types.GoalID   `json:"id"`
	Title    string         `json:"title"`
	Priority types.Priority `json:"priority"`
	Depth    *int           `json:"depth,omitempty"`
	Depends  []types.GoalID `json:"depends_on,omitempty"`
}

// Render writes the document
func (f *JSONFormatter) Render(w io.Writer, result *ValidationResult) error {
	doc := jsonDocument{
		Metadata: result.Metadata,
		Status:   result.Report.Status(),
		Findings: result.Report.Findings(),
		Goals:    []jsonGoal{},
		Report:   result.Report,
	}
	if doc.Findings == nil {
		doc.Findings = []validation.Finding{}
	}

	for _, n := range result.Graph.Nodes {
		g := jsonGoal{
			ID:       n.ID,
			Title:    n.Goal.Title,
			Priority: n.Goal.Priority,
			Depends:  result.Graph.Dependencies(n.ID),
		}
		if n.Depth >= 0 {
			depth := n.Depth
			g.Depth = &depth
		}
		doc.Goals = append(doc.Goals, g)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return goalerrors.Internal("failed to encode report", err)
	}
	return nil
}
