// Package dataset defines error values for HIN dataset ingestion.
package dataset

import "errors"

// File names expected inside a dataset directory.
const (
	// NodesFile lists one node type label per line.
	NodesFile = "nodes.csv"

	// EdgesFile lists one edge per line (fields 0 and 2 are the endpoints).
	EdgesFile = "edges.csv"
)

// Sentinel errors for dataset loading.
var (
	// ErrMissingFile indicates an absent or unreadable dataset file.
	ErrMissingFile = errors.New("dataset: missing or unreadable file")

	// ErrBadNodeLine indicates an empty node type label.
	ErrBadNodeLine = errors.New("dataset: malformed node line")

	// ErrBadEdgeLine indicates an edge line with fewer than three fields
	// or non-integer endpoint ids.
	ErrBadEdgeLine = errors.New("dataset: malformed edge line")
)
