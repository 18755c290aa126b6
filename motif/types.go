// Package motif defines the orbit/motif taxonomy constants, tunable
// options, and error definitions for typed motif counting over a hin.HIN.
package motif

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Orbit ids of the 3- and 4-node connected graphlet taxonomy
// (Rossi et al., "Heterogeneous Graphlets", TKDD'2020).
const (
	// OrbitPath3End is the end orbit of the 3-path (3-star).
	OrbitPath3End = 1
	// OrbitTriangle is the triangle (3-clique) orbit.
	OrbitTriangle = 2
	// OrbitPath4Edge is the edge orbit of the 4-path.
	OrbitPath4Edge = 3
	// OrbitPath4Center is the center orbit of the 4-path.
	OrbitPath4Center = 4
	// OrbitStar4 is the 4-star orbit.
	OrbitStar4 = 5
	// OrbitCycle4 is the 4-cycle orbit.
	OrbitCycle4 = 6
	// OrbitTailedTriTail is the tail orbit of the tailed triangle.
	OrbitTailedTriTail = 7
	// OrbitTailedTriCenter is the center orbit of the tailed triangle.
	OrbitTailedTriCenter = 8
	// OrbitTailedTriEdge is the triangle-edge orbit of the tailed triangle.
	OrbitTailedTriEdge = 9
	// OrbitChordalCycleEdge is the cycle-edge orbit of the chordal cycle.
	OrbitChordalCycleEdge = 10
	// OrbitChordalCycleCenter is the chord orbit of the chordal cycle.
	OrbitChordalCycleCenter = 11
	// OrbitClique4 is the 4-clique orbit.
	OrbitClique4 = 12
)

// Motif ids derived from orbit ids; see MotifOf.
const (
	MotifPath3        = 1
	MotifTriangle     = 2
	MotifPath4        = 3
	MotifStar4        = 4
	MotifCycle4       = 5
	MotifTailedTri    = 6
	MotifChordalCycle = 7
	MotifClique4      = 8
)

// NoType is the sentinel type label for the absent fourth node of a
// 3-node motif. The Hasher maps it to index -1.
const NoType = "--"

// maxTypes bounds the HIN schema: type indices must fit two decimal
// digits of the hash key.
const maxTypes = 100

// Sentinel errors for motif counting.
var (
	// ErrNilGraph is returned if a nil *hin.HIN is passed to Count.
	ErrNilGraph = errors.New("motif: graph is nil")

	// ErrInvalidOrbit indicates an orbit id outside [1, 12].
	ErrInvalidOrbit = errors.New("motif: orbit id must be between 1 and 12")

	// ErrTooManyTypes indicates a schema whose type indices cannot be
	// encoded in two decimal digits.
	ErrTooManyTypes = errors.New("motif: too many node types for two-digit hash fields")

	// ErrTypeIndexCollision indicates two distinct labels mapping to the
	// same index under the numeric-label override, which would break the
	// bijectivity of the hash encoding.
	ErrTypeIndexCollision = errors.New("motif: type labels collide on one index")

	// ErrUnknownType indicates a type label absent from the Hasher schema.
	ErrUnknownType = errors.New("motif: unknown type label")

	// ErrBadHashKey indicates a malformed motif/orbit hash key.
	ErrBadHashKey = errors.New("motif: malformed hash key")

	// ErrCountRemainder indicates that a global motif count was not
	// divisible by the motif's edge count during correction. This signals
	// an enumeration bug and aborts the run.
	ErrCountRemainder = errors.New("motif: global count not divisible by motif edge count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("motif: invalid option supplied")
)

// MotifOf derives the motif id from an orbit id, or ErrInvalidOrbit for
// ids outside [1, 12].
func MotifOf(orbit int) (int, error) {
	switch orbit {
	case OrbitPath3End:
		return MotifPath3, nil
	case OrbitTriangle:
		return MotifTriangle, nil
	case OrbitPath4Edge, OrbitPath4Center:
		return MotifPath4, nil
	case OrbitStar4:
		return MotifStar4, nil
	case OrbitCycle4:
		return MotifCycle4, nil
	case OrbitTailedTriTail, OrbitTailedTriCenter, OrbitTailedTriEdge:
		return MotifTailedTri, nil
	case OrbitChordalCycleEdge, OrbitChordalCycleCenter:
		return MotifChordalCycle, nil
	case OrbitClique4:
		return MotifClique4, nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidOrbit, orbit)
	}
}

// motifEdges returns the number of edges in motif m, or 0 for unknown ids.
// Used by CorrectGlobalCounts: each motif instance is emitted once per
// participating edge, so the raw global count is divided by this value.
func motifEdges(m int) int64 {
	switch m {
	case MotifPath3:
		return 2
	case MotifTriangle, MotifPath4, MotifStar4:
		return 3
	case MotifCycle4, MotifTailedTri:
		return 4
	case MotifChordalCycle:
		return 5
	case MotifClique4:
		return 6
	default:
		return 0
	}
}

// Option configures motif counting via functional arguments.
// An invalid Option (e.g. negative worker count) is recorded internally
// and surfaced as ErrOptionViolation when Count is invoked.
type Option func(*Options)

// Options holds parameters that customize Count execution.
type Options struct {
	// Combinatorial derives orbits 4, 5, 9 and 11 algebraically from the
	// already-enumerated orbits 6, 7, 10 and 12 instead of traversing
	// them. Both modes produce identical counts.
	Combinatorial bool

	// Workers is the number of goroutines that process edges in parallel,
	// each with a private CountDict merged at the end.
	// 1 runs fully sequentially; 0 selects runtime.NumCPU().
	Workers int

	// Logger receives progress and timing events. Defaults to a no-op.
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// combinatorial mode on, a single worker, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Combinatorial: true,
		Workers:       1,
		Logger:        zerolog.Nop(),
	}
}

// WithoutCombinatorial disables the combinatorial shortcut so that
// orbits 4, 5, 9 and 11 are enumerated explicitly.
func WithoutCombinatorial() Option {
	return func(o *Options) { o.Combinatorial = false }
}

// WithWorkers sets the number of parallel edge workers.
//
//	n > 0:  use exactly n workers
//	n == 0: use runtime.NumCPU()
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes progress and timing events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
