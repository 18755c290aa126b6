// Package hin implements construction and read-only access for the
// immutable HIN graph store.
package hin

import (
	"fmt"
	"sort"
)

// New builds a HIN from a node-type list and an edge list.
//
// types[v] is the type label of node v; the node id is the slice index.
// Each edge is an unordered pair of node ids and must appear exactly once.
//
// Validation (in order, fail fast):
//  1. types must be non-empty (ErrNoNodes).
//  2. Every endpoint must lie in [0, len(types)) (ErrNodeOutOfRange).
//  3. No self-loops (ErrSelfLoop).
//  4. No duplicate edges in either orientation (ErrDuplicateEdge).
//
// Complexity: O(V + E log E); the per-node neighbor slices are sorted once
// so later enumeration can iterate them without copying.
func New(types []string, edges [][2]int) (*HIN, error) {
	if len(types) == 0 {
		return nil, ErrNoNodes
	}

	n := len(types)
	g := &HIN{
		types: make([]string, n),
		edges: make([]Edge, 0, len(edges)),
		adj:   make([]map[int]struct{}, n),
		nbr:   make([][]int, n),
	}
	copy(g.types, types)

	// Collect distinct labels in first-seen order.
	seen := make(map[string]struct{}, 8)
	for _, t := range types {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			g.typeList = append(g.typeList, t)
		}
	}

	for v := 0; v < n; v++ {
		g.adj[v] = make(map[int]struct{})
	}

	for _, pair := range edges {
		i, j := pair[0], pair[1]
		if i < 0 || i >= n || j < 0 || j >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) with %d nodes", ErrNodeOutOfRange, i, j, n)
		}
		if i == j {
			return nil, fmt.Errorf("%w: edge (%d,%d)", ErrSelfLoop, i, j)
		}
		if _, dup := g.adj[i][j]; dup {
			return nil, fmt.Errorf("%w: edge (%d,%d)", ErrDuplicateEdge, i, j)
		}
		g.edges = append(g.edges, Edge{i, j})
		g.adj[i][j] = struct{}{}
		g.adj[j][i] = struct{}{}
	}

	for v := 0; v < n; v++ {
		nb := make([]int, 0, len(g.adj[v]))
		for u := range g.adj[v] {
			nb = append(nb, u)
		}
		sort.Ints(nb)
		g.nbr[v] = nb
	}

	return g, nil
}

// NodeCount returns the number of nodes.
func (g *HIN) NodeCount() int { return len(g.types) }

// EdgeCount returns the number of edges.
func (g *HIN) EdgeCount() int { return len(g.edges) }

// Edge returns the endpoints of edge e.
func (g *HIN) Edge(e int) (i, j int, err error) {
	if e < 0 || e >= len(g.edges) {
		return 0, 0, fmt.Errorf("%w: edge id %d with %d edges", ErrEdgeOutOfRange, e, len(g.edges))
	}

	return g.edges[e][0], g.edges[e][1], nil
}

// TypeOf returns the type label of node v.
func (g *HIN) TypeOf(v int) (string, error) {
	if v < 0 || v >= len(g.types) {
		return "", fmt.Errorf("%w: node id %d with %d nodes", ErrNodeOutOfRange, v, len(g.types))
	}

	return g.types[v], nil
}

// Neighbors returns the neighbors of v in ascending id order.
//
// The returned slice is the graph's internal storage: callers must treat
// it as read-only. Out-of-range ids yield a nil slice.
func (g *HIN) Neighbors(v int) []int {
	if v < 0 || v >= len(g.nbr) {
		return nil
	}

	return g.nbr[v]
}

// Degree returns the number of neighbors of v, or 0 for out-of-range ids.
func (g *HIN) Degree(v int) int {
	if v < 0 || v >= len(g.adj) {
		return 0
	}

	return len(g.adj[v])
}

// Connected reports whether nodes u and v share an edge. O(1) expected.
func (g *HIN) Connected(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// NodeTypes returns the distinct type labels in first-seen order.
//
// The slice is shared internal storage; treat it as read-only.
func (g *HIN) NodeTypes() []string { return g.typeList }
