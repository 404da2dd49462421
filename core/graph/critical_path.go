// Package graph - Critical path
package graph

import (
	"sort"

	"goalgraph/core/types"
)

// FindCriticalPath returns the longest chain of links in an acyclic graph,
// measured by edge count, from its origin to its end.
//
// Nodes are processed in topological order (Kahn's algorithm) with the
// ready queue seeded in node order. When several chains share the maximum
// length the first end node reached in that order wins; the choice between
// equal-length chains is discovery order, not a ranking.
//
// The graph must be acyclic. On a cyclic graph nodes on a cycle are never
// released from the queue and the result covers the acyclic part only.
func FindCriticalPath(g *Graph) []types.GoalID {
	if len(g.Nodes) == 0 {
		return []types.GoalID{}
	}

	inDegree := make([]int, len(g.Nodes))
	for i, n := range g.Nodes {
		inDegree[i] = len(n.Incoming)
	}

	distance := make([]int, len(g.Nodes))
	predecessor := make([]int, len(g.Nodes))
	queue := make([]int, 0, len(g.Nodes))
	for i := range g.Nodes {
		predecessor[i] = -1
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	best := -1
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		if best == -1 || distance[current] > distance[best] {
			best = current
		}

		for _, li := range g.Nodes[current].Outgoing {
			next := g.index[g.Links[li].Target]
			if distance[current]+1 > distance[next] {
				distance[next] = distance[current] + 1
				predecessor[next] = current
			}
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if best == -1 {
		return []types.GoalID{}
	}

	var path []types.GoalID
	for at := best; at != -1; at = predecessor[at] {
		path = append(path, g.Nodes[at].ID)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ExecutionStages groups goals by depth so that every goal appears after
// all of its dependencies. Within a stage goals are ordered by priority
// tier, then node order. AssignDepths must have run first.
func ExecutionStages(g *Graph) [][]types.GoalID {
	maxDepth := -1
	for _, n := range g.Nodes {
		if n.Depth > maxDepth {
			maxDepth = n.Depth
		}
	}
	if maxDepth < 0 {
		return nil
	}

	buckets := make([][]int, maxDepth+1)
	for i, n := range g.Nodes {
		if n.Depth < 0 {
			continue
		}
		buckets[n.Depth] = append(buckets[n.Depth], i)
	}

	stages := make([][]types.GoalID, 0, len(buckets))
	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(a, b int) bool {
			return g.Nodes[bucket[a]].Goal.Priority.Rank() < g.Nodes[bucket[b]].Goal.Priority.Rank()
		})
		stage := make([]types.GoalID, 0, len(bucket))
		for _, i := range bucket {
			stage = append(stage, g.Nodes[i].ID)
		}
		stages = append(stages, stage)
	}
	return stages
}
