// Package graph - Cycle detection
package graph

import "goalgraph/core/types"

// frame is one level of the explicit DFS stack: the node being expanded
// and the position of the next outgoing link to follow.
type frame struct {
	node int
	next int
}

// recursionStack is the DFS path with O(1) membership checks
type recursionStack struct {
	frames  []frame
	onStack []bool
}

func newRecursionStack(size int) *recursionStack {
	return &recursionStack{onStack: make([]bool, size)}
}

func (s *recursionStack) push(node int) {
	s.frames = append(s.frames, frame{node: node})
	s.onStack[node] = true
}

func (s *recursionStack) pop() {
	top := s.frames[len(s.frames)-1]
	s.onStack[top.node] = false
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *recursionStack) top() *frame {
	return &s.frames[len(s.frames)-1]
}

func (s *recursionStack) empty() bool {
	return len(s.frames) == 0
}

func (s *recursionStack) contains(node int) bool {
	return s.onStack[node]
}

// cycleTo returns the path suffix starting at node, closed with node again
func (s *recursionStack) cycleTo(g *Graph, node int) []types.GoalID {
	start := len(s.frames) - 1
	for start > 0 && s.frames[start].node != node {
		start--
	}
	cycle := make([]types.GoalID, 0, len(s.frames)-start+1)
	for _, f := range s.frames[start:] {
		cycle = append(cycle, g.Nodes[f.node].ID)
	}
	return append(cycle, g.Nodes[node].ID)
}

// DetectCycles returns one cycle per back edge found by a depth-first
// traversal started from every unvisited node in node order.
// Each cycle starts and ends with the same id. The graph is cyclic iff
// the result is non-empty. Runs in O(V+E).
func DetectCycles(g *Graph) [][]types.GoalID {
	var cycles [][]types.GoalID

	visited := make([]bool, len(g.Nodes))
	stack := newRecursionStack(len(g.Nodes))

	// Parallel links close the same cycle; report it once.
	type backEdge struct{ from, to int }
	closed := make(map[backEdge]bool)

	for root := range g.Nodes {
		if visited[root] {
			continue
		}
		visited[root] = true
		stack.push(root)

		for !stack.empty() {
			top := stack.top()
			out := g.Nodes[top.node].Outgoing
			if top.next >= len(out) {
				stack.pop()
				continue
			}

			next := g.index[g.Links[out[top.next]].Target]
			top.next++

			switch {
			case stack.contains(next):
				key := backEdge{top.node, next}
				if !closed[key] {
					closed[key] = true
					cycles = append(cycles, stack.cycleTo(g, next))
				}
			case !visited[next]:
				visited[next] = true
				stack.push(next)
			}
		}
	}

	return cycles
}
