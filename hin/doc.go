// Package hin provides the immutable in-memory representation of a
// Heterogeneous Information Network (HIN): an undirected simple graph in
// which every node carries a discrete type label.
//
// Overview:
//
//   - Nodes are identified by dense integer ids in [0, NodeCount).
//   - Edges are unordered pairs, identified by their position in the edge
//     list; the graph stores each edge once and keeps adjacency symmetric.
//   - Type labels are short opaque strings; the distinct label set is
//     exposed in first-seen order so downstream encodings stay stable.
//
// Adjacency is kept in two forms per node: a hashed set for O(1)
// Connected(u, v) membership tests, and a sorted neighbor slice for cheap
// allocation-free iteration. Both are built once by New and never mutated,
// so every accessor is safe for concurrent readers.
//
// Validation:
//
// New rejects inputs that would corrupt motif enumeration downstream —
// self-loops, duplicate edges (in either orientation), and edge endpoints
// outside the node range. See the sentinel errors in types.go.
//
// Complexity:
//
//   - New:        O(V + E log E) (neighbor slices sorted once)
//   - Connected:  O(1) expected
//   - Neighbors:  O(1) (returns the shared internal slice)
//   - Space:      O(V + E)
//
// Example usage:
//
//	g, err := hin.New(
//	    []string{"author", "paper", "venue"},
//	    [][2]int{{0, 1}, {1, 2}},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Connected(0, 1)) // true
package hin
