// Package graph - Goal dependency graph
// Nodes and links live in flat slices and refer to each other by index.
// A Graph is built fresh for every validation pass and never mutates its inputs.
package graph

import (
	"goalgraph/core/types"
)

// ExclusionReason explains why a dependency did not become a link
type ExclusionReason int

const (
	ExcludedDanglingSource ExclusionReason = iota // source goal unknown
	ExcludedDanglingTarget                        // target goal unknown
	ExcludedDanglingBoth                          // neither goal known
	ExcludedSelfReference                         // source == target
)

// String returns the reason name
func (r ExclusionReason) String() string {
	switch r {
	case ExcludedDanglingSource:
		return "dangling_source"
	case ExcludedDanglingTarget:
		return "dangling_target"
	case ExcludedDanglingBoth:
		return "dangling_both"
	case ExcludedSelfReference:
		return "self_reference"
	default:
		return "unknown"
	}
}

// IsDangling reports whether the reason is a missing endpoint
func (r ExclusionReason) IsDangling() bool {
	return r != ExcludedSelfReference
}

// Node is one goal in the graph
type Node struct {
	ID   types.GoalID
	Goal types.Goal

	// Incoming holds indices into Graph.Links whose target is this node
	Incoming []int

	// Outgoing holds indices into Graph.Links whose source is this node
	Outgoing []int

	// Depth is -1 until assigned on an acyclic graph
	Depth int
}

// Link is a dependency whose endpoints both resolved to nodes
type Link struct {
	// Index is the position of the dependency in the input slice
	Index       int
	Source      types.GoalID
	Target      types.GoalID
	Type        types.DependencyType
	Description string
}

// Excluded is a dependency that was kept out of Links
type Excluded struct {
	Index      int
	Dependency types.Dependency
	Reason     ExclusionReason
}

// Graph is the derived dependency structure for one computation
type Graph struct {
	Nodes []Node
	Links []Link

	// Excluded dependencies, in input order
	Excluded []Excluded

	// DuplicateGoals lists ids that appeared more than once; the first wins
	DuplicateGoals []types.GoalID

	// Cycles and CriticalPath are filled in by the validator
	Cycles       [][]types.GoalID
	CriticalPath []types.GoalID

	index map[types.GoalID]int
}

// Build creates the graph from goal and dependency collections.
// Every goal becomes a node; only dependencies with two distinct known
// endpoints become links. Duplicate links are kept.
func Build(goals []types.Goal, dependencies []types.Dependency) *Graph {
	g := &Graph{
		Nodes: make([]Node, 0, len(goals)),
		Links: make([]Link, 0, len(dependencies)),
		index: make(map[types.GoalID]int, len(goals)),
	}

	for _, goal := range goals {
		if _, exists := g.index[goal.ID]; exists {
			g.DuplicateGoals = append(g.DuplicateGoals, goal.ID)
			continue
		}
		g.index[goal.ID] = len(g.Nodes)
		g.Nodes = append(g.Nodes, Node{
			ID:    goal.ID,
			Goal:  goal,
			Depth: -1,
		})
	}

	for i, dep := range dependencies {
		src, srcOK := g.index[dep.SourceGoalID]
		dst, dstOK := g.index[dep.TargetGoalID]

		// A self reference is reported as such even when the goal is unknown.
		switch {
		case dep.IsSelf():
			g.exclude(i, dep, ExcludedSelfReference)
			continue
		case !srcOK && !dstOK:
			g.exclude(i, dep, ExcludedDanglingBoth)
			continue
		case !srcOK:
			g.exclude(i, dep, ExcludedDanglingSource)
			continue
		case !dstOK:
			g.exclude(i, dep, ExcludedDanglingTarget)
			continue
		}

		linkIdx := len(g.Links)
		g.Links = append(g.Links, Link{
			Index:       i,
			Source:      dep.SourceGoalID,
			Target:      dep.TargetGoalID,
			Type:        dep.Type,
			Description: dep.Description,
		})
		g.Nodes[src].Outgoing = append(g.Nodes[src].Outgoing, linkIdx)
		g.Nodes[dst].Incoming = append(g.Nodes[dst].Incoming, linkIdx)
	}

	return g
}

func (g *Graph) exclude(i int, dep types.Dependency, reason ExclusionReason) {
	g.Excluded = append(g.Excluded, Excluded{Index: i, Dependency: dep, Reason: reason})
}

// Has reports whether a goal is a node
func (g *Graph) Has(id types.GoalID) bool {
	_, ok := g.index[id]
	return ok
}

// Node returns a node by id
func (g *Graph) Node(id types.GoalID) (*Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.Nodes[i], true
}

// Dependencies returns the ids this goal depends on, in link order
func (g *Graph) Dependencies(id types.GoalID) []types.GoalID {
	n, ok := g.Node(id)
	if !ok {
		return nil
	}
	out := make([]types.GoalID, 0, len(n.Incoming))
	for _, li := range n.Incoming {
		out = append(out, g.Links[li].Source)
	}
	return out
}

// Dependents returns the ids that depend on this goal, in link order
func (g *Graph) Dependents(id types.GoalID) []types.GoalID {
	n, ok := g.Node(id)
	if !ok {
		return nil
	}
	out := make([]types.GoalID, 0, len(n.Outgoing))
	for _, li := range n.Outgoing {
		out = append(out, g.Links[li].Target)
	}
	return out
}

// Roots returns nodes without incoming links, in node order
func (g *Graph) Roots() []types.GoalID {
	var roots []types.GoalID
	for _, n := range g.Nodes {
		if len(n.Incoming) == 0 {
			roots = append(roots, n.ID)
		}
	}
	return roots
}

// Size returns node count
func (g *Graph) Size() int {
	return len(g.Nodes)
}

// EdgeCount returns link count
func (g *Graph) EdgeCount() int {
	return len(g.Links)
}

// IsPath reports whether consecutive ids are joined by a link
func (g *Graph) IsPath(path []types.GoalID) bool {
	for i := 0; i+1 < len(path); i++ {
		n, ok := g.Node(path[i])
		if !ok {
			return false
		}
		found := false
		for _, li := range n.Outgoing {
			if g.Links[li].Target == path[i+1] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(path) == 1 {
		return g.Has(path[0])
	}
	return true
}
