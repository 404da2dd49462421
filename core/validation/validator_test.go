package validation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"goalgraph/core/types"
	"goalgraph/core/validation"
	goalerrors "goalgraph/internal/errors"
)

func goal(id string) types.Goal {
	return types.Goal{
		ID:            types.GoalID(id),
		Title:         "Goal " + id,
		Category:      types.CategoryOther,
		Priority:      types.PriorityImportant,
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(250),
	}
}

func goals(ids ...string) []types.Goal {
	out := make([]types.Goal, 0, len(ids))
	for _, id := range ids {
		out = append(out, goal(id))
	}
	return out
}

func dep(src, dst string, t types.DependencyType) types.Dependency {
	return types.Dependency{SourceGoalID: types.GoalID(src), TargetGoalID: types.GoalID(dst), Type: t}
}

func seq(src, dst string) types.Dependency {
	return dep(src, dst, types.DependencySequential)
}

func ids(s ...string) []types.GoalID {
	out := make([]types.GoalID, 0, len(s))
	for _, v := range s {
		out = append(out, types.GoalID(v))
	}
	return out
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidateEmpty(t *testing.T) {
	report := validation.Validate(nil, nil)

	assert.Empty(t, report.Cycles)
	assert.Empty(t, report.CriticalPath)
	assert.Empty(t, report.DanglingReferences)
	assert.Empty(t, report.TemporalViolations)
	assert.Empty(t, report.Findings())
	assert.Nil(t, report.CriticalPathShortfall)
	assert.Equal(t, validation.StatusAcceptable, report.Status())
	assert.NoError(t, report.Err())
}

func TestValidateLinearChain(t *testing.T) {
	result := validation.New().Analyze(goals("a", "b", "c", "d"), []types.Dependency{
		seq("a", "b"), seq("b", "c"), seq("c", "d"),
	})
	report := result.Report

	assert.Empty(t, report.Cycles)
	assert.Equal(t, ids("a", "b", "c", "d"), report.CriticalPath)
	assert.Equal(t, 3, report.Depths["d"])
	assert.Equal(t, [][]types.GoalID{ids("a"), ids("b"), ids("c"), ids("d")}, report.Stages)
	assert.True(t, result.Graph.IsPath(report.CriticalPath))
	assert.Equal(t, report.CriticalPath, result.Graph.CriticalPath)
	assert.Equal(t, validation.StatusAcceptable, report.Status())
}

func TestValidateDiamond(t *testing.T) {
	report := validation.Validate(goals("a", "b", "c", "d"), []types.Dependency{
		seq("a", "b"), seq("a", "c"), seq("b", "d"), seq("c", "d"),
	})

	assert.Equal(t, 2, report.Depths["d"])
	require.Len(t, report.CriticalPath, 3)
	assert.Equal(t, types.GoalID("a"), report.CriticalPath[0])
	assert.Contains(t, ids("b", "c"), report.CriticalPath[1])
	assert.Equal(t, types.GoalID("d"), report.CriticalPath[2])
}

func TestValidateAcyclicHasPath(t *testing.T) {
	report := validation.Validate(goals("solo", "other"), nil)

	assert.Empty(t, report.Cycles)
	assert.NotEmpty(t, report.CriticalPath)
}

func TestValidateCycle(t *testing.T) {
	result := validation.New().Analyze(goals("a", "b", "c"), []types.Dependency{
		seq("a", "b"), seq("b", "c"), seq("c", "a"),
	})
	report := result.Report

	require.Len(t, report.Cycles, 1)
	cycle := report.Cycles[0]
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
	assert.ElementsMatch(t, ids("a", "b", "c"), cycle[:len(cycle)-1])

	assert.True(t, report.IsCyclic())
	assert.Empty(t, report.CriticalPath)
	assert.Nil(t, report.Depths)
	assert.Nil(t, report.Stages)
	assert.Nil(t, report.CriticalPathShortfall)
	assert.Equal(t, validation.StatusInvalid, report.Status())

	for _, n := range result.Graph.Nodes {
		assert.Equal(t, -1, n.Depth, "depth of %s must stay unassigned", n.ID)
	}
}

func TestValidateDanglingReference(t *testing.T) {
	deps := []types.Dependency{seq("a", "b"), seq("b", "ghost"), seq("b", "c")}
	result := validation.New().Analyze(goals("a", "b", "c"), deps)
	report := result.Report

	require.Len(t, report.DanglingReferences, 1)
	d := report.DanglingReferences[0]
	assert.Equal(t, 1, d.Index)
	assert.Equal(t, deps[1], d.Dependency)
	assert.False(t, d.MissingSource)
	assert.True(t, d.MissingTarget)

	for _, l := range result.Graph.Links {
		assert.NotEqual(t, types.GoalID("ghost"), l.Target)
	}

	clean := validation.Validate(goals("a", "b", "c"), []types.Dependency{seq("a", "b"), seq("b", "c")})
	assert.Equal(t, clean.CriticalPath, report.CriticalPath)
	assert.Equal(t, clean.Cycles, report.Cycles)
	assert.Equal(t, validation.StatusInvalid, report.Status())
}

func TestDanglingAndCycleAreIndependent(t *testing.T) {
	report := validation.Validate(goals("a", "b"), []types.Dependency{
		seq("a", "b"), seq("b", "a"), seq("ghost", "a"),
	})

	assert.Len(t, report.Cycles, 1)
	require.Len(t, report.DanglingReferences, 1)
	assert.True(t, report.DanglingReferences[0].MissingSource)
}

func TestValidateTemporalViolations(t *testing.T) {
	early := goal("early")
	early.TargetDate = date("2026-01-01")
	late := goal("late")
	late.TargetDate = date("2030-01-01")
	undated := goal("undated")

	tests := []struct {
		name     string
		dep      types.Dependency
		expected int
	}{
		{"sequential pointing at earlier goal", dep("late", "early", types.DependencySequential), 1},
		{"blocking pointing at earlier goal", dep("late", "early", types.DependencyBlocking), 1},
		{"linked pointing at earlier goal", dep("late", "early", types.DependencyLinked), 0},
		{"conditional pointing at earlier goal", dep("late", "early", types.DependencyConditional), 0},
		{"sequential in date order", dep("early", "late", types.DependencySequential), 0},
		{"sequential with undated goal", dep("late", "undated", types.DependencySequential), 0},
		{"sequential with dangling target", dep("late", "ghost", types.DependencySequential), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := validation.Validate([]types.Goal{early, late, undated}, []types.Dependency{tt.dep})
			require.Len(t, report.TemporalViolations, tt.expected)
			if tt.expected == 1 {
				v := report.TemporalViolations[0]
				assert.Equal(t, late.TargetDate, v.SourceDate)
				assert.Equal(t, early.TargetDate, v.TargetDate)
				assert.Equal(t, validation.StatusWarning, report.Status())
			}
		})
	}
}

func TestValidateSelfDependency(t *testing.T) {
	report := validation.Validate(goals("a", "b"), []types.Dependency{seq("a", "b"), seq("b", "b")})

	require.Len(t, report.SelfDependencies, 1)
	assert.Equal(t, 1, report.SelfDependencies[0].Index)
	assert.Empty(t, report.Cycles)
	assert.Empty(t, report.DanglingReferences)
	assert.Equal(t, ids("a", "b"), report.CriticalPath)
	assert.Equal(t, validation.StatusInvalid, report.Status())
}

func TestValidateSelfDependencyOnUnknownGoal(t *testing.T) {
	report := validation.Validate(nil, []types.Dependency{seq("x", "x")})

	require.Len(t, report.SelfDependencies, 1)
	assert.Equal(t, types.GoalID("x"), report.SelfDependencies[0].Dependency.SourceGoalID)
	assert.Empty(t, report.DanglingReferences)
	assert.Equal(t, validation.StatusInvalid, report.Status())

	var kinds []validation.Kind
	for _, f := range report.Findings() {
		kinds = append(kinds, f.Kind)
	}
	assert.Equal(t, []validation.Kind{validation.KindSelfDependency}, kinds)
}

func TestValidateUnsupportedType(t *testing.T) {
	result := validation.New().Analyze(goals("a", "b"), []types.Dependency{dep("a", "b", "eventually")})
	report := result.Report

	require.Len(t, report.UnsupportedTypes, 1)
	assert.Equal(t, types.DependencyType("eventually"), report.UnsupportedTypes[0].Dependency.Type)
	assert.Equal(t, 1, result.Graph.EdgeCount())
	assert.Equal(t, ids("a", "b"), report.CriticalPath)
	assert.Equal(t, validation.StatusInvalid, report.Status())
}

func TestValidateDuplicateDependencies(t *testing.T) {
	deps := []types.Dependency{
		seq("a", "b"),
		dep("a", "b", types.DependencyLinked),
		seq("b", "a"),
	}

	report := validation.Validate(goals("a", "b"), deps[:2])
	require.Len(t, report.DuplicateDependencies, 1)
	assert.Equal(t, 1, report.DuplicateDependencies[0].Index)
	assert.Equal(t, 0, report.DuplicateDependencies[0].FirstIndex)
	assert.Equal(t, validation.StatusWarning, report.Status())

	off := validation.New(validation.WithDuplicateCheck(false)).Validate(goals("a", "b"), deps[:2])
	assert.Empty(t, off.DuplicateDependencies)
	assert.Equal(t, validation.StatusAcceptable, off.Status())

	reversed := validation.Validate(goals("a", "b"), []types.Dependency{deps[0], deps[2]})
	assert.Empty(t, reversed.DuplicateDependencies)
}

func TestValidateGoalRecords(t *testing.T) {
	bad := goal("bad")
	bad.Title = ""
	bad.Priority = "urgent"
	bad.CurrentAmount = decimal.NewFromInt(-5)

	odd := goal("odd")
	odd.Category = "yacht"

	report := validation.Validate([]types.Goal{bad, odd, goal("odd")}, nil)

	require.Len(t, report.InvalidGoals, 1)
	assert.Equal(t, types.GoalID("bad"), report.InvalidGoals[0].GoalID)
	assert.Len(t, report.InvalidGoals[0].Problems, 3)
	assert.Equal(t, ids("odd"), report.UnknownCategories)
	assert.Equal(t, ids("odd"), report.DuplicateGoals)
	assert.Equal(t, validation.StatusInvalid, report.Status())
}

func TestCriticalPathShortfall(t *testing.T) {
	a := goal("a")
	a.TargetAmount = decimal.NewFromInt(10000)
	a.CurrentAmount = decimal.NewFromInt(2500)
	b := goal("b")
	b.TargetAmount = decimal.RequireFromString("500.50")
	b.CurrentAmount = decimal.NewFromInt(900)
	c := goal("c")

	report := validation.New(validation.WithCurrency(types.CurrencyEUR)).
		Validate([]types.Goal{a, b, c}, []types.Dependency{seq("a", "b")})

	require.NotNil(t, report.CriticalPathShortfall)
	expected := types.NewMoneyFromDecimal(decimal.NewFromInt(7500), types.CurrencyEUR)
	assert.True(t, expected.Equal(*report.CriticalPathShortfall), "got %s", report.CriticalPathShortfall)
}

func TestValidateIdempotent(t *testing.T) {
	in := goals("a", "b", "c", "d")
	in[0].TargetDate = date("2030-01-01")
	in[1].TargetDate = date("2029-01-01")
	deps := []types.Dependency{
		seq("a", "b"), seq("b", "c"), seq("c", "d"), seq("d", "ghost"), seq("a", "b"),
	}

	v := validation.New()
	first := v.Validate(in, deps)
	second := v.Validate(in, deps)

	assert.Equal(t, first, second)
}

func TestFindingsAndErr(t *testing.T) {
	odd := goal("odd")
	odd.Category = "yacht"

	report := validation.Validate([]types.Goal{goal("a"), goal("b"), odd}, []types.Dependency{
		seq("a", "b"), seq("b", "a"), seq("a", "ghost"),
	})

	findings := report.Findings()
	require.Len(t, findings, 3)
	assert.Equal(t, validation.KindCyclicDependency, findings[0].Kind)
	assert.Equal(t, validation.KindDanglingReference, findings[1].Kind)
	assert.Equal(t, validation.KindUnknownCategory, findings[2].Kind)
	assert.Equal(t, validation.StatusWarning, findings[2].Severity)
	assert.Contains(t, findings[1].Message, "unknown target ghost")

	err := report.Err()
	require.Error(t, err)
	errs := multierr.Errors(err)
	assert.Len(t, errs, 2)
	for _, e := range errs {
		assert.True(t, goalerrors.IsType(e, goalerrors.TypeValidation))
	}
}

func TestValidatorLogsDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	v := validation.New(validation.WithLogger(zap.New(core)))

	v.Validate(goals("a", "b"), []types.Dependency{seq("a", "b"), seq("b", "a")})

	assert.Equal(t, 1, logs.FilterMessage("goal graph built").Len())
	assert.Equal(t, 1, logs.FilterMessage("goal graph is cyclic, skipping ordering analyses").Len())
	validated := logs.FilterMessage("goal graph validated").All()
	require.Len(t, validated, 1)
	assert.Equal(t, "invalid", validated[0].ContextMap()["status"])
}
