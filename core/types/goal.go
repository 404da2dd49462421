// Package types - Goal records
package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var goalValidate = validator.New()

// Goal is a financial objective supplied by the goal-management layer.
// The graph engine treats goals as read-only for the duration of a computation.
type Goal struct {
	// ID is the stable goal identifier
	ID GoalID `json:"id" yaml:"id" validate:"required"`

	// Title is a human-readable name
	Title string `json:"title" yaml:"title" validate:"required"`

	// Category is the financial need this goal serves
	Category Category `json:"category" yaml:"category" validate:"required"`

	// Priority is the priority tier
	Priority Priority `json:"priority" yaml:"priority" validate:"required,oneof=essential important aspirational"`

	// TargetAmount is the amount the goal must reach
	TargetAmount decimal.Decimal `json:"target_amount" yaml:"target_amount"`

	// CurrentAmount is the amount already saved
	CurrentAmount decimal.Decimal `json:"current_amount" yaml:"current_amount"`

	// TargetDate is the deadline; the zero time means no deadline
	TargetDate time.Time `json:"target_date,omitempty" yaml:"target_date,omitempty"`
}

// Remaining returns the amount still to be funded, never negative
func (g Goal) Remaining() decimal.Decimal {
	rem := g.TargetAmount.Sub(g.CurrentAmount)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// HasDeadline reports whether a target date is set
func (g Goal) HasDeadline() bool {
	return !g.TargetDate.IsZero()
}

// Problems returns every shape problem with the goal record.
// An empty result means the record is well formed.
func (g Goal) Problems() []string {
	var problems []string

	if err := goalValidate.Struct(g); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				problems = append(problems, describeFieldError(fe))
			}
		} else {
			problems = append(problems, err.Error())
		}
	}

	if g.TargetAmount.IsNegative() {
		problems = append(problems, "target_amount must not be negative")
	}
	if g.CurrentAmount.IsNegative() {
		problems = append(problems, "current_amount must not be negative")
	}

	return problems
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
