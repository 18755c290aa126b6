// Package motif implements the canonical type-aware motif/orbit hashing.
package motif

import (
	"fmt"
	"sort"
	"strconv"
)

// Hasher encodes (orbit id, node types) into fixed-width decimal string
// keys that are invariant under automorphisms of the motif.
//
// Key layout (two decimal digits per field, at most 100 types):
//
//	3-node: "GGIIIIII--" / "MMIIIIII--"  with IIIIII = t0·10⁴ + t1·10² + t2
//	4-node: "GGTTTTTTTT" / "MMTTTTTTTT"  with TTTTTTTT = t0·10⁶ + t1·10⁴ + t2·10² + t3
//
// where GG/MM is the zero-padded orbit/motif id and the type indices are
// sorted ascending. Sorting makes the key canonical: any permutation of
// same-orbit slots yields the same key, while the orbit id itself keeps
// the role information.
type Hasher struct {
	// idx maps a type label to its two-digit index; NoType maps to -1.
	idx map[string]int

	// label is the inverse of idx.
	label map[int]string
}

// NewHasher builds the label↔index tables from the schema's type labels,
// in first-seen order.
//
// Numeric-label override: a label whose characters form a decimal number
// takes that number as its index, keeping hashes stable across runs where
// labels are numeric. Indices must fit two digits; schemas with more than
// 100 labels, numeric labels outside [0, 99], or two labels colliding on
// one index are rejected.
func NewHasher(types []string) (*Hasher, error) {
	if len(types) > maxTypes {
		return nil, fmt.Errorf("%w: %d labels", ErrTooManyTypes, len(types))
	}

	h := &Hasher{
		idx:   map[string]int{NoType: -1},
		label: map[int]string{-1: NoType},
	}
	for i, t := range types {
		if _, ok := h.idx[t]; ok {
			continue // duplicate label in input, first occurrence wins
		}
		id := i
		if n, numeric := numericLabel(t); numeric {
			id = n
		}
		if id < 0 || id >= maxTypes {
			return nil, fmt.Errorf("%w: label %q maps to index %d", ErrTooManyTypes, t, id)
		}
		if prev, ok := h.label[id]; ok {
			return nil, fmt.Errorf("%w: %q and %q both map to %d", ErrTypeIndexCollision, prev, t, id)
		}
		h.idx[t] = id
		h.label[id] = t
	}

	return h, nil
}

// numericLabel reports whether s consists solely of decimal digits and,
// if so, returns its value.
func numericLabel(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

// Hash encodes one motif occurrence into its motif and orbit keys.
//
// orbit must be in [1, 12] (ErrInvalidOrbit otherwise); tI, tJ, tK are the
// types of the edge endpoints and the third node; tR is the type of the
// fourth node, or NoType for 3-node motifs. Unknown labels yield
// ErrUnknownType.
func (h *Hasher) Hash(orbit int, tI, tJ, tK, tR string) (motifHash, orbitHash string, err error) {
	m, err := MotifOf(orbit)
	if err != nil {
		return "", "", err
	}

	xI, ok := h.idx[tI]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownType, tI)
	}
	xJ, ok := h.idx[tJ]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownType, tJ)
	}
	xK, ok := h.idx[tK]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownType, tK)
	}

	if tR == NoType {
		t := [3]int{xI, xJ, xK}
		sort.Ints(t[:])
		sum := t[0]*10000 + t[1]*100 + t[2]
		orbitHash = fmt.Sprintf("%08d--", orbit*1000000+sum)
		motifHash = fmt.Sprintf("%08d--", m*1000000+sum)

		return motifHash, orbitHash, nil
	}

	xR, ok := h.idx[tR]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownType, tR)
	}
	t := [4]int{xI, xJ, xK, xR}
	sort.Ints(t[:])
	sum := t[0]*1000000 + t[1]*10000 + t[2]*100 + t[3]
	orbitHash = fmt.Sprintf("%010d", orbit*100000000+sum)
	motifHash = fmt.Sprintf("%010d", m*100000000+sum)

	return motifHash, orbitHash, nil
}

// Decoded is the readable form of a hash key: the leading orbit or motif
// id and the type label of each sorted slot (TR == NoType for 3-node keys).
type Decoded struct {
	ID             int
	TI, TJ, TK, TR string
}

// Decode parses a 10-character hash key back into its id and type labels.
// The id is an orbit id for orbit keys and a motif id for motif keys;
// the caller knows which map the key came from.
func (h *Hasher) Decode(key string) (Decoded, error) {
	if len(key) != 10 {
		return Decoded{}, fmt.Errorf("%w: %q", ErrBadHashKey, key)
	}

	var d Decoded
	var err error
	if d.ID, err = strconv.Atoi(key[0:2]); err != nil {
		return Decoded{}, fmt.Errorf("%w: %q", ErrBadHashKey, key)
	}
	if d.TI, err = h.slotLabel(key[2:4]); err != nil {
		return Decoded{}, err
	}
	if d.TJ, err = h.slotLabel(key[4:6]); err != nil {
		return Decoded{}, err
	}
	if d.TK, err = h.slotLabel(key[6:8]); err != nil {
		return Decoded{}, err
	}
	if key[8:10] == NoType {
		d.TR = NoType
		return d, nil
	}
	if d.TR, err = h.slotLabel(key[8:10]); err != nil {
		return Decoded{}, err
	}

	return d, nil
}

// slotLabel resolves one two-digit type field to its label.
func (h *Hasher) slotLabel(field string) (string, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return "", fmt.Errorf("%w: type field %q", ErrBadHashKey, field)
	}
	label, ok := h.label[n]
	if !ok {
		return "", fmt.Errorf("%w: index %d", ErrUnknownType, n)
	}

	return label, nil
}
