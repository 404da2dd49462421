// Package graph - Node depth
package graph

import "goalgraph/core/types"

// DepthCalculator computes longest incoming chain lengths.
// Results are memoized for the lifetime of the calculator, which should
// match one full-graph computation.
type DepthCalculator struct {
	g    *Graph
	memo map[types.GoalID]int
}

// NewDepthCalculator creates a calculator for g
func NewDepthCalculator(g *Graph) *DepthCalculator {
	return &DepthCalculator{
		g:    g,
		memo: make(map[types.GoalID]int, len(g.Nodes)),
	}
}

// ComputeDepth computes the depth of one goal with a fresh calculator
func ComputeDepth(id types.GoalID, g *Graph, visited map[types.GoalID]bool) int {
	return NewDepthCalculator(g).ComputeDepth(id, visited)
}

// Depth returns the depth of id, 0 for unknown ids
func (c *DepthCalculator) Depth(id types.GoalID) int {
	return c.ComputeDepth(id, make(map[types.GoalID]bool))
}

// ComputeDepth returns 0 for a node without incoming links, otherwise
// 1 + the largest depth among its sources. visited holds the ids on the
// current resolution path; meeting one of them again means the node sits
// on a cycle and the sentinel 0 is returned instead of recursing.
func (c *DepthCalculator) ComputeDepth(id types.GoalID, visited map[types.GoalID]bool) int {
	if d, ok := c.memo[id]; ok {
		return d
	}
	if visited[id] {
		return 0
	}

	n, ok := c.g.Node(id)
	if !ok {
		return 0
	}

	visited[id] = true
	depth := 0
	for _, li := range n.Incoming {
		if d := c.ComputeDepth(c.g.Links[li].Source, visited) + 1; d > depth {
			depth = d
		}
	}
	delete(visited, id)

	c.memo[id] = depth
	return depth
}

// AssignDepths sets Node.Depth for every node and returns the depth map.
// Only meaningful on an acyclic graph.
func AssignDepths(g *Graph) map[types.GoalID]int {
	calc := NewDepthCalculator(g)
	depths := make(map[types.GoalID]int, len(g.Nodes))
	for i := range g.Nodes {
		d := calc.Depth(g.Nodes[i].ID)
		g.Nodes[i].Depth = d
		depths[g.Nodes[i].ID] = d
	}
	return depths
}
