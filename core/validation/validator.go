// Package validation composes the goal graph analyses into one report.
// Validation never fails: every anomaly is returned as a finding so callers
// can show all of them at once.
package validation

import (
	"go.uber.org/zap"

	"goalgraph/core/graph"
	"goalgraph/core/types"
)

// Option configures a Validator
type Option func(*Validator)

// WithLogger sets the logger used for debug traces
func WithLogger(logger *zap.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithDuplicateCheck toggles duplicate dependency warnings
func WithDuplicateCheck(enabled bool) Option {
	return func(v *Validator) {
		v.checkDuplicates = enabled
	}
}

// WithCurrency sets the currency of the critical path shortfall
func WithCurrency(currency types.Currency) Option {
	return func(v *Validator) {
		v.currency = currency
	}
}

// Validator validates goal dependency configurations.
// A Validator holds no state between calls and is safe for concurrent use
// as long as callers do not mutate the slices they pass in during a call.
type Validator struct {
	logger          *zap.Logger
	checkDuplicates bool
	currency        types.Currency
}

// New creates a validator
func New(opts ...Option) *Validator {
	v := &Validator{
		logger:          zap.NewNop(),
		checkDuplicates: true,
		currency:        types.CurrencyUSD,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Result pairs a report with the graph it was computed from
type Result struct {
	Graph  *graph.Graph
	Report *Report
}

// Validate runs a default validator
func Validate(goals []types.Goal, dependencies []types.Dependency) *Report {
	return New().Validate(goals, dependencies)
}

// Validate returns the validation report for the given collections
func (v *Validator) Validate(goals []types.Goal, dependencies []types.Dependency) *Report {
	return v.Analyze(goals, dependencies).Report
}

// Analyze builds the graph, detects cycles, and on an acyclic graph computes
// the critical path, depths and execution stages. The raw dependency scans
// run regardless of the graph outcome.
func (v *Validator) Analyze(goals []types.Goal, dependencies []types.Dependency) *Result {
	g := graph.Build(goals, dependencies)
	v.logger.Debug("goal graph built",
		zap.Int("nodes", g.Size()),
		zap.Int("links", g.EdgeCount()),
		zap.Int("excluded", len(g.Excluded)))

	report := &Report{}

	g.Cycles = graph.DetectCycles(g)
	report.Cycles = g.Cycles

	if len(g.Cycles) == 0 {
		g.CriticalPath = graph.FindCriticalPath(g)
		report.CriticalPath = g.CriticalPath
		report.Depths = graph.AssignDepths(g)
		report.Stages = graph.ExecutionStages(g)
		if len(g.CriticalPath) > 0 {
			report.CriticalPathShortfall = v.shortfall(g)
		}
	} else {
		v.logger.Debug("goal graph is cyclic, skipping ordering analyses", zap.Int("cycles", len(g.Cycles)))
	}

	v.scanExcluded(g, report)
	v.scanDependencies(g, dependencies, report)
	v.scanGoals(g, report)

	v.logger.Debug("goal graph validated",
		zap.String("status", string(report.Status())),
		zap.Int("critical_path_length", len(report.CriticalPath)))

	return &Result{Graph: g, Report: report}
}

// scanExcluded reports dependencies the graph kept out of its links
func (v *Validator) scanExcluded(g *graph.Graph, report *Report) {
	for _, ex := range g.Excluded {
		if ex.Reason == graph.ExcludedSelfReference {
			report.SelfDependencies = append(report.SelfDependencies, DependencyIssue{Index: ex.Index, Dependency: ex.Dependency})
			continue
		}
		report.DanglingReferences = append(report.DanglingReferences, DanglingReference{
			Index:         ex.Index,
			Dependency:    ex.Dependency,
			MissingSource: ex.Reason == graph.ExcludedDanglingSource || ex.Reason == graph.ExcludedDanglingBoth,
			MissingTarget: ex.Reason == graph.ExcludedDanglingTarget || ex.Reason == graph.ExcludedDanglingBoth,
		})
	}
}

// scanDependencies checks types, deadlines and duplicates on the raw input
func (v *Validator) scanDependencies(g *graph.Graph, dependencies []types.Dependency, report *Report) {
	type pair struct{ source, target types.GoalID }
	seen := make(map[pair]int, len(dependencies))

	for i, dep := range dependencies {
		if !dep.Type.Valid() {
			report.UnsupportedTypes = append(report.UnsupportedTypes, DependencyIssue{Index: i, Dependency: dep})
		}

		if dep.IsSelf() {
			continue
		}

		if v.checkDuplicates {
			key := pair{dep.SourceGoalID, dep.TargetGoalID}
			if first, ok := seen[key]; ok {
				report.DuplicateDependencies = append(report.DuplicateDependencies, DuplicateDependency{
					Index:      i,
					FirstIndex: first,
					Dependency: dep,
				})
			} else {
				seen[key] = i
			}
		}

		if !dep.Type.DateOrdered() {
			continue
		}
		source, srcOK := g.Node(dep.SourceGoalID)
		target, dstOK := g.Node(dep.TargetGoalID)
		if !srcOK || !dstOK || !source.Goal.HasDeadline() || !target.Goal.HasDeadline() {
			continue
		}
		if target.Goal.TargetDate.Before(source.Goal.TargetDate) {
			report.TemporalViolations = append(report.TemporalViolations, TemporalViolation{
				Index:      i,
				Dependency: dep,
				SourceDate: source.Goal.TargetDate,
				TargetDate: target.Goal.TargetDate,
			})
		}
	}
}

// scanGoals checks goal records and categories
func (v *Validator) scanGoals(g *graph.Graph, report *Report) {
	report.DuplicateGoals = append(report.DuplicateGoals, g.DuplicateGoals...)

	for _, n := range g.Nodes {
		if problems := n.Goal.Problems(); len(problems) > 0 {
			report.InvalidGoals = append(report.InvalidGoals, InvalidGoal{GoalID: n.ID, Problems: problems})
		}
		if n.Goal.Category != "" && !n.Goal.Category.Known() {
			report.UnknownCategories = append(report.UnknownCategories, n.ID)
		}
	}
}

// shortfall sums the unfunded amount of every goal on the critical path
func (v *Validator) shortfall(g *graph.Graph) *types.Money {
	total := types.ZeroMoney(v.currency)
	for _, id := range g.CriticalPath {
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		total = total.Add(types.NewMoneyFromDecimal(n.Goal.Remaining(), v.currency))
	}
	return &total
}
