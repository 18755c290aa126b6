// Package dataset loads HIN datasets from the two-file CSV layout used
// by the motif-counting pipeline.
//
// Layout (a dataset is a directory):
//
//	nodes.csv — one line per node; the trimmed line content is the node's
//	            type label, and the zero-based line index is the node id.
//	edges.csv — one line per edge with at least three comma-separated
//	            fields; field 0 is the source id and field 2 the
//	            destination id, both decimal integers. Field 1 is ignored:
//	            the format descends from a historical three-column export,
//	            and the middle column carries no meaning here. Rows with
//	            fewer than three fields are rejected, keeping loads
//	            bit-compatible with baselines produced by older tooling.
//
// The graph is undirected and each edge must appear once; self-loops,
// duplicate edges and out-of-range endpoints are rejected via hin.New,
// since motif enumeration correctness depends on their absence.
//
// Errors (sentinel): ErrMissingFile, ErrBadNodeLine, ErrBadEdgeLine,
// plus the hin construction errors wrapped through Load.
package dataset
