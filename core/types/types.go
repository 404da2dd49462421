// Package types defines core domain types shared across all layers.
// This package contains NO graph logic - only goal and dependency definitions.
package types

// GoalID uniquely identifies a financial goal
type GoalID string

// String returns the string representation
func (id GoalID) String() string {
	return string(id)
}

// Priority is the priority tier of a goal
type Priority string

const (
	PriorityEssential    Priority = "essential"
	PriorityImportant    Priority = "important"
	PriorityAspirational Priority = "aspirational"
)

// String returns the string representation of the priority
func (p Priority) String() string {
	return string(p)
}

// Valid checks if the priority is one of the known tiers
func (p Priority) Valid() bool {
	switch p {
	case PriorityEssential, PriorityImportant, PriorityAspirational:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sequencing (lower first).
// Unknown priorities sort after every known tier.
func (p Priority) Rank() int {
	switch p {
	case PriorityEssential:
		return 0
	case PriorityImportant:
		return 1
	case PriorityAspirational:
		return 2
	default:
		return 3
	}
}

// Category groups goals by the financial need they serve
type Category string

const (
	CategoryEmergencyFund Category = "emergency_fund"
	CategoryRetirement    Category = "retirement"
	CategoryDebtPayoff    Category = "debt_payoff"
	CategoryEducation     Category = "education"
	CategoryHome          Category = "home"
	CategoryVehicle       Category = "vehicle"
	CategoryTravel        Category = "travel"
	CategoryInvestment    Category = "investment"
	CategoryInsurance     Category = "insurance"
	CategoryOther         Category = "other"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// Known reports whether the category belongs to the known set
func (c Category) Known() bool {
	_, ok := c.Icon()
	return ok
}

// Icon returns the display glyph for a category.
// Unknown categories return ok=false; callers surface them instead of
// substituting a generic glyph.
func (c Category) Icon() (string, bool) {
	switch c {
	case CategoryEmergencyFund:
		return "🛟", true
	case CategoryRetirement:
		return "🏖", true
	case CategoryDebtPayoff:
		return "💳", true
	case CategoryEducation:
		return "🎓", true
	case CategoryHome:
		return "🏠", true
	case CategoryVehicle:
		return "🚗", true
	case CategoryTravel:
		return "✈", true
	case CategoryInvestment:
		return "📈", true
	case CategoryInsurance:
		return "🛡", true
	case CategoryOther:
		return "•", true
	default:
		return "", false
	}
}
