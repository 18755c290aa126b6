// Package motif counts all connected induced 3- and 4-node subgraph
// patterns ("motifs") of a Heterogeneous Information Network, reporting
// for each edge and each orbit position how many type-distinguished
// instances that edge participates in, and aggregating to global
// per-motif totals.
//
// Overview:
//
//   - For each edge (i, j), the engine partitions the 2-neighborhood into
//     si (neighbors of i only), sj (neighbors of j only) and tij (common
//     neighbors), emitting 3-node motifs along the way, then enumerates
//     4-node motifs path-based (walking from si/sj) and triangle-based
//     (walking from tij).
//   - In combinatorial mode (the default), orbits 4, 5, 9 and 11 are not
//     traversed: they follow algebraically from the typed counts of
//     orbits 6, 7, 10 and 12 via the closed-form identities of Rossi et
//     al., "Heterogeneous Graphlets" (TKDD'2020), eqs. 19/23/26/30.
//     Both modes produce bit-identical counts.
//   - Every occurrence is keyed by a canonical fixed-width decimal hash
//     encoding (orbit or motif id, sorted type indices); see Hasher.
//
// Orbit and motif taxonomy (ids follow Rossi et al.):
//
//	orbit  motif  pattern
//	  1      1    3-path, end orbit
//	  2      2    triangle
//	  3      3    4-path, edge orbit
//	  4      3    4-path, center orbit
//	  5      4    4-star
//	  6      5    4-cycle
//	  7      6    tailed triangle, tail orbit
//	  8      6    tailed triangle, center orbit
//	  9      6    tailed triangle, triangle-edge orbit
//	 10      7    chordal cycle, cycle-edge orbit
//	 11      7    chordal cycle, chord orbit
//	 12      8    4-clique
//
// Symmetry breaking:
//
// Whenever two enumerated nodes occupy the same orbit of a motif,
// swapping them yields the same instance; a strict r < k guard keeps
// exactly one of the pair. These guards are load-bearing — without them
// orbits 5, 7, 11 and 12 would be double-counted.
//
// Global counts:
//
// During enumeration each instance is counted once per participating
// edge; CorrectGlobalCounts divides every global entry by the motif's
// edge count (2, 3, 3, 3, 4, 4, 5, 6 for motifs 1..8) to collapse this
// to one count per instance. A non-zero remainder is an invariant
// violation and aborts the run.
//
// Errors (sentinel):
//
//   - ErrNilGraph            if Count receives a nil graph.
//   - ErrInvalidOrbit        if an orbit id outside [1, 12] reaches Hash.
//   - ErrTooManyTypes        if the schema exceeds two-digit type indices.
//   - ErrTypeIndexCollision  if two labels collide on one index.
//   - ErrUnknownType         if a label is absent from the schema.
//   - ErrBadHashKey          if a malformed key is decoded or corrected.
//   - ErrCountRemainder      if global correction finds a remainder.
//   - ErrOptionViolation     if an invalid Option is supplied.
//
// Example usage:
//
//	g, _ := hin.New(
//	    []string{"A", "A", "B", "B"},
//	    [][2]int{{0, 1}, {1, 2}, {2, 3}},
//	)
//	counts, err := motif.Count(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(counts.TotalGlobalCount())
//
// Complexity: the hot path is set membership over the per-edge
// neighborhood partitions; combinatorial mode trades four inner loops for
// O(T²) arithmetic per edge (T = number of node types).
package motif
