// Package types - Goal dependencies
package types

import "fmt"

// DependencyType classifies a precedence relationship between goals
type DependencyType string

const (
	// DependencySequential means the source must complete before the target
	DependencySequential DependencyType = "sequential"

	// DependencyConditional applies only under a condition
	DependencyConditional DependencyType = "conditional"

	// DependencyBlocking is a hard prerequisite
	DependencyBlocking DependencyType = "blocking"

	// DependencyLinked is a soft, informational relation
	DependencyLinked DependencyType = "linked"
)

// DependencyTypes lists every supported dependency type in display order
var DependencyTypes = []DependencyType{
	DependencySequential,
	DependencyConditional,
	DependencyBlocking,
	DependencyLinked,
}

// ParseDependencyType converts a raw string to a DependencyType
func ParseDependencyType(s string) (DependencyType, error) {
	t := DependencyType(s)
	if !t.Valid() {
		return t, fmt.Errorf("unsupported dependency type %q", s)
	}
	return t, nil
}

// String returns the string representation
func (t DependencyType) String() string {
	return string(t)
}

// Valid checks if the type is in the supported set
func (t DependencyType) Valid() bool {
	_, ok := t.Label()
	return ok
}

// DateOrdered reports whether the type requires the target's deadline
// to fall on or after the source's deadline
func (t DependencyType) DateOrdered() bool {
	switch t {
	case DependencySequential, DependencyBlocking:
		return true
	default:
		return false
	}
}

// Label returns a human-readable label, ok=false for unsupported types
func (t DependencyType) Label() (string, bool) {
	switch t {
	case DependencySequential:
		return "Sequential", true
	case DependencyConditional:
		return "Conditional", true
	case DependencyBlocking:
		return "Blocking", true
	case DependencyLinked:
		return "Linked", true
	default:
		return "", false
	}
}

// Color returns the hex display colour, ok=false for unsupported types
func (t DependencyType) Color() (string, bool) {
	switch t {
	case DependencySequential:
		return "#3B82F6", true
	case DependencyConditional:
		return "#F59E0B", true
	case DependencyBlocking:
		return "#EF4444", true
	case DependencyLinked:
		return "#10B981", true
	default:
		return "", false
	}
}

// Dependency is a directed relationship: TargetGoalID depends on SourceGoalID
type Dependency struct {
	SourceGoalID GoalID         `json:"source_goal_id" yaml:"source_goal_id"`
	TargetGoalID GoalID         `json:"target_goal_id" yaml:"target_goal_id"`
	Type         DependencyType `json:"dependency_type" yaml:"dependency_type"`
	Description  string         `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsSelf reports whether the dependency points at its own source
func (d Dependency) IsSelf() bool {
	return d.SourceGoalID == d.TargetGoalID
}

// String returns "source -[type]-> target"
func (d Dependency) String() string {
	return fmt.Sprintf("%s -[%s]-> %s", d.SourceGoalID, d.Type, d.TargetGoalID)
}
