// Package validation - Validation report
package validation

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"goalgraph/core/types"
	goalerrors "goalgraph/internal/errors"
)

// Status classifies a dependency configuration
type Status string

const (
	StatusAcceptable Status = "acceptable"
	StatusWarning    Status = "warning"
	StatusInvalid    Status = "invalid"
)

// Kind identifies a class of finding
type Kind string

const (
	KindCyclicDependency          Kind = "cyclic_dependency"
	KindDanglingReference         Kind = "dangling_reference"
	KindSelfDependency            Kind = "self_dependency"
	KindUnsupportedDependencyType Kind = "unsupported_dependency_type"
	KindDuplicateGoal             Kind = "duplicate_goal"
	KindInvalidGoal               Kind = "invalid_goal"
	KindTemporalViolation         Kind = "temporal_violation"
	KindDuplicateDependency       Kind = "duplicate_dependency"
	KindUnknownCategory           Kind = "unknown_category"
)

// Severity returns the status a finding of this kind forces
func (k Kind) Severity() Status {
	switch k {
	case KindTemporalViolation, KindDuplicateDependency, KindUnknownCategory:
		return StatusWarning
	default:
		return StatusInvalid
	}
}

// DanglingReference is a dependency naming a goal absent from the collection
type DanglingReference struct {
	Index         int              `json:"index"`
	Dependency    types.Dependency `json:"dependency"`
	MissingSource bool             `json:"missing_source"`
	MissingTarget bool             `json:"missing_target"`
}

// TemporalViolation is a date-ordered dependency whose target is due
// before its source
type TemporalViolation struct {
	Index      int              `json:"index"`
	Dependency types.Dependency `json:"dependency"`
	SourceDate time.Time        `json:"source_date"`
	TargetDate time.Time        `json:"target_date"`
}

// DependencyIssue points at one offending input dependency
type DependencyIssue struct {
	Index      int              `json:"index"`
	Dependency types.Dependency `json:"dependency"`
}

// DuplicateDependency repeats an ordered goal pair seen earlier
type DuplicateDependency struct {
	Index      int              `json:"index"`
	FirstIndex int              `json:"first_index"`
	Dependency types.Dependency `json:"dependency"`
}

// InvalidGoal is a goal record with shape problems
type InvalidGoal struct {
	GoalID   types.GoalID `json:"goal_id"`
	Problems []string     `json:"problems"`
}

// Report is the complete result of one validation pass.
// Every field is computed independently; a finding in one never hides
// findings in another, except that graph-order results (CriticalPath,
// Depths, Stages, CriticalPathShortfall) are only computed without cycles.
type Report struct {
	Cycles             [][]types.GoalID    `json:"cycles"`
	DanglingReferences []DanglingReference `json:"dangling_references"`
	TemporalViolations []TemporalViolation `json:"temporal_violations"`
	CriticalPath       []types.GoalID      `json:"critical_path"`

	SelfDependencies      []DependencyIssue     `json:"self_dependencies,omitempty"`
	UnsupportedTypes      []DependencyIssue     `json:"unsupported_types,omitempty"`
	DuplicateDependencies []DuplicateDependency `json:"duplicate_dependencies,omitempty"`
	DuplicateGoals        []types.GoalID        `json:"duplicate_goals,omitempty"`
	InvalidGoals          []InvalidGoal         `json:"invalid_goals,omitempty"`
	UnknownCategories     []types.GoalID        `json:"unknown_categories,omitempty"`

	Depths                map[types.GoalID]int `json:"depths,omitempty"`
	Stages                [][]types.GoalID     `json:"stages,omitempty"`
	CriticalPathShortfall *types.Money         `json:"critical_path_shortfall,omitempty"`
}

// IsCyclic reports whether any cycle was found
func (r *Report) IsCyclic() bool {
	return len(r.Cycles) > 0
}

// Status classifies the configuration as acceptable, warning or invalid
func (r *Report) Status() Status {
	status := StatusAcceptable
	for _, f := range r.Findings() {
		if f.Severity == StatusInvalid {
			return StatusInvalid
		}
		status = StatusWarning
	}
	return status
}

// Finding is one flattened report entry for presentation
type Finding struct {
	Kind     Kind           `json:"kind"`
	Severity Status         `json:"severity"`
	Message  string         `json:"message"`
	Goals    []types.GoalID `json:"goals,omitempty"`
}

// Findings flattens every issue, invalid kinds first, each kind in input order
func (r *Report) Findings() []Finding {
	var out []Finding
	add := func(kind Kind, msg string, goals ...types.GoalID) {
		out = append(out, Finding{Kind: kind, Severity: kind.Severity(), Message: msg, Goals: goals})
	}

	for _, c := range r.Cycles {
		add(KindCyclicDependency, "circular dependency: "+joinIDs(c, " → "), c...)
	}
	for _, d := range r.DanglingReferences {
		add(KindDanglingReference, danglingMessage(d), d.Dependency.SourceGoalID, d.Dependency.TargetGoalID)
	}
	for _, d := range r.SelfDependencies {
		add(KindSelfDependency, fmt.Sprintf("dependency #%d: goal %s depends on itself", d.Index, d.Dependency.SourceGoalID), d.Dependency.SourceGoalID)
	}
	for _, d := range r.UnsupportedTypes {
		add(KindUnsupportedDependencyType, fmt.Sprintf("dependency #%d (%s): unsupported dependency type %q", d.Index, d.Dependency, d.Dependency.Type),
			d.Dependency.SourceGoalID, d.Dependency.TargetGoalID)
	}
	for _, id := range r.DuplicateGoals {
		add(KindDuplicateGoal, fmt.Sprintf("goal id %s appears more than once", id), id)
	}
	for _, g := range r.InvalidGoals {
		add(KindInvalidGoal, fmt.Sprintf("goal %s: %s", g.GoalID, strings.Join(g.Problems, "; ")), g.GoalID)
	}
	for _, v := range r.TemporalViolations {
		add(KindTemporalViolation, fmt.Sprintf("dependency #%d (%s): target is due %s, before source due %s",
			v.Index, v.Dependency, v.TargetDate.Format(time.DateOnly), v.SourceDate.Format(time.DateOnly)),
			v.Dependency.SourceGoalID, v.Dependency.TargetGoalID)
	}
	for _, d := range r.DuplicateDependencies {
		add(KindDuplicateDependency, fmt.Sprintf("dependency #%d (%s) repeats dependency #%d", d.Index, d.Dependency, d.FirstIndex),
			d.Dependency.SourceGoalID, d.Dependency.TargetGoalID)
	}
	for _, id := range r.UnknownCategories {
		add(KindUnknownCategory, fmt.Sprintf("goal %s has an unknown category", id), id)
	}

	return out
}

// Err joins every invalid finding into one error, nil when none
func (r *Report) Err() error {
	var err error
	for _, f := range r.Findings() {
		if f.Severity != StatusInvalid {
			continue
		}
		err = multierr.Append(err, goalerrors.New(goalerrors.TypeValidation, f.Message).WithContext("kind", string(f.Kind)))
	}
	return err
}

func danglingMessage(d DanglingReference) string {
	var missing []string
	if d.MissingSource {
		missing = append(missing, "source "+string(d.Dependency.SourceGoalID))
	}
	if d.MissingTarget {
		missing = append(missing, "target "+string(d.Dependency.TargetGoalID))
	}
	return fmt.Sprintf("dependency #%d (%s): unknown %s", d.Index, d.Dependency, strings.Join(missing, " and "))
}

func joinIDs(ids []types.GoalID, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, sep)
}
