// Package hinmotif counts typed 3- and 4-node motifs in Heterogeneous
// Information Networks.
//
// 🚀 What is hinmotif?
//
//	A per-edge motif enumeration engine for undirected graphs whose nodes
//	carry type labels, following the graphlet taxonomy of Rossi et al.
//	("Heterogeneous Graphlets", TKDD'2020):
//
//	  • For every edge: how many type-distinguished instances of each
//	    orbit (the role an edge plays in a motif) it participates in.
//	  • For the whole graph: corrected global totals per typed motif.
//
// Everything is organized under four packages:
//
//	hin/      — immutable typed graph store with O(1) adjacency tests
//	motif/    — hashing, count store, enumeration engine, comb shortcut
//	dataset/  — nodes.csv / edges.csv ingestion
//	cmd/      — the hinmotif command-line frontend
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	a chordal 4-cycle: two triangles, one chordal-cycle instance.
//
// Counting modes: by default orbits 4, 5, 9 and 11 are derived from
// closed-form combinatorial identities; --no-comb (WithoutCombinatorial)
// enumerates them explicitly. Both modes produce identical counts.
//
//	go get github.com/katalvlaran/hinmotif
package hinmotif
