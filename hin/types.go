// Package hin defines the core HIN type, its node representation,
// and the sentinel errors returned during graph construction and access.
package hin

import "errors"

// Sentinel errors for HIN construction and access.
var (
	// ErrNoNodes indicates that an empty node list was passed to New.
	ErrNoNodes = errors.New("hin: node list is empty")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("hin: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge already present in either orientation.
	ErrDuplicateEdge = errors.New("hin: duplicate edge not allowed")

	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("hin: node id out of range")

	// ErrEdgeOutOfRange indicates an edge id outside [0, EdgeCount).
	ErrEdgeOutOfRange = errors.New("hin: edge id out of range")
)

// Node is a single typed node of a HIN.
//
// ID is the dense integer identifier; Type is the node's type label
// (e.g. "author", "paper", or a numeric label such as "3").
type Node struct {
	ID   int
	Type string
}

// Edge is an unordered node pair. The pair is stored as loaded; callers
// must not rely on any particular endpoint order.
type Edge [2]int

// HIN is an immutable Heterogeneous Information Network.
//
// All fields are populated by New and never mutated afterwards, so the
// accessors in hin.go are safe for concurrent use without locking.
type HIN struct {
	// types[v] is the type label of node v.
	types []string

	// edges[e] is the unordered endpoint pair of edge e.
	edges []Edge

	// adj[v] is the hashed neighbor set of node v.
	adj []map[int]struct{}

	// nbr[v] is the sorted neighbor slice of node v (same contents as adj[v]).
	nbr [][]int

	// typeList holds the distinct type labels in first-seen order.
	typeList []string
}
