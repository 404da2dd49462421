package goalfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"goalgraph/core/types"
	goalerrors "goalgraph/internal/errors"
)

// fileBody is the shared on-disk shape of HCL and YAML goal files
type fileBody struct {
	Goals        []*goalRecord       `hcl:"goal,block" yaml:"goals"`
	Dependencies []*dependencyRecord `hcl:"dependency,block" yaml:"dependencies"`
}

type goalRecord struct {
	ID            string `hcl:"id,label" yaml:"id"`
	Title         string `hcl:"title,optional" yaml:"title"`
	Category      string `hcl:"category,optional" yaml:"category"`
	Priority      string `hcl:"priority,optional" yaml:"priority"`
	TargetAmount  string `hcl:"target_amount,optional" yaml:"target_amount"`
	CurrentAmount string `hcl:"current_amount,optional" yaml:"current_amount"`
	TargetDate    string `hcl:"target_date,optional" yaml:"target_date"`

	line int
}

type dependencyRecord struct {
	Source      string `hcl:"source,optional" yaml:"source"`
	Target      string `hcl:"target,optional" yaml:"target"`
	Type        string `hcl:"type,optional" yaml:"type"`
	Description string `hcl:"description,optional" yaml:"description"`
}

// toDocument converts decoded records, collecting every conversion error.
// Dependency records pass through untouched: unknown ids and types are
// findings for the validator, not load failures.
func (b *fileBody) toDocument(filename string) (*Document, error) {
	doc := &Document{
		Goals:        make([]types.Goal, 0, len(b.Goals)),
		Dependencies: make([]types.Dependency, 0, len(b.Dependencies)),
	}

	var errs error
	for _, rec := range b.Goals {
		goal, err := rec.toGoal()
		if err != nil {
			perr := goalerrors.Parsing(fmt.Sprintf("goal %q", rec.ID), err).WithContext("file", filename)
			if rec.line > 0 {
				perr = perr.WithContext("line", rec.line)
			}
			errs = multierr.Append(errs, perr)
			continue
		}
		doc.Goals = append(doc.Goals, goal)
	}

	for _, rec := range b.Dependencies {
		doc.Dependencies = append(doc.Dependencies, types.Dependency{
			SourceGoalID: types.GoalID(strings.TrimSpace(rec.Source)),
			TargetGoalID: types.GoalID(strings.TrimSpace(rec.Target)),
			Type:         types.DependencyType(strings.ToLower(strings.TrimSpace(rec.Type))),
			Description:  rec.Description,
		})
	}

	if errs != nil {
		return nil, errs
	}
	return doc, nil
}

func (r *goalRecord) toGoal() (types.Goal, error) {
	target, err := parseAmount("target_amount", r.TargetAmount)
	if err != nil {
		return types.Goal{}, err
	}
	current, err := parseAmount("current_amount", r.CurrentAmount)
	if err != nil {
		return types.Goal{}, err
	}
	due, err := parseDate(r.TargetDate)
	if err != nil {
		return types.Goal{}, err
	}

	return types.Goal{
		ID:            types.GoalID(strings.TrimSpace(r.ID)),
		Title:         r.Title,
		Category:      types.Category(strings.TrimSpace(r.Category)),
		Priority:      types.Priority(strings.ToLower(strings.TrimSpace(r.Priority))),
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    due,
	}, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	raw = strings.ReplaceAll(strings.TrimPrefix(raw, "$"), ",", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	return d, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339; empty means no deadline
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid target_date %q: want YYYY-MM-DD or RFC 3339", raw)
	}
	return t, nil
}
