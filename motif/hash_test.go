// File: motif/hash_test.go
package motif

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMotifOf covers the full orbit→motif table and the invalid range.
func TestMotifOf(t *testing.T) {
	want := map[int]int{
		1: 1, 2: 2,
		3: 3, 4: 3,
		5: 4,
		6: 5,
		7: 6, 8: 6, 9: 6,
		10: 7, 11: 7,
		12: 8,
	}
	for orbit, motif := range want {
		got, err := MotifOf(orbit)
		require.NoError(t, err)
		require.Equal(t, motif, got, "orbit %d", orbit)
	}

	for _, bad := range []int{0, -1, 13, 100} {
		_, err := MotifOf(bad)
		require.ErrorIs(t, err, ErrInvalidOrbit, "orbit %d", bad)
	}
}

// TestHash_KeyLayout pins down the exact key format for both widths.
func TestHash_KeyLayout(t *testing.T) {
	hf, err := NewHasher([]string{"A", "B"}) // A→0, B→1
	require.NoError(t, err)

	// 3-node: triangle of (A, B, A): sorted indices 0,0,1 → sum 1
	mh, oh, err := hf.Hash(OrbitTriangle, "A", "B", "A", NoType)
	require.NoError(t, err)
	require.Equal(t, "02000001--", oh)
	require.Equal(t, "02000001--", mh)

	// 4-node: clique of (A, B, B, A): sorted indices 0,0,1,1 → sum 101
	mh, oh, err = hf.Hash(OrbitClique4, "A", "B", "B", "A")
	require.NoError(t, err)
	require.Equal(t, "1200000101", oh)
	require.Equal(t, "0800000101", mh)

	// orbit and motif ids differ for non-fixed-point orbits
	mh, oh, err = hf.Hash(OrbitPath4Center, "A", "A", "A", "A")
	require.NoError(t, err)
	require.Equal(t, "0400000000", oh)
	require.Equal(t, "0300000000", mh)
}

// TestHash_Canonicality verifies invariance under type permutations:
// any role-preserving relabeling of the slots yields the same key pair.
func TestHash_Canonicality(t *testing.T) {
	hf, err := NewHasher([]string{"A", "B", "C", "D"})
	require.NoError(t, err)

	perms := [][4]string{
		{"A", "B", "C", "D"},
		{"D", "C", "B", "A"},
		{"B", "D", "A", "C"},
		{"C", "A", "D", "B"},
	}
	refM, refO, err := hf.Hash(OrbitCycle4, perms[0][0], perms[0][1], perms[0][2], perms[0][3])
	require.NoError(t, err)
	for _, p := range perms[1:] {
		mh, oh, err := hf.Hash(OrbitCycle4, p[0], p[1], p[2], p[3])
		require.NoError(t, err)
		require.Equal(t, refO, oh, "permutation %v", p)
		require.Equal(t, refM, mh, "permutation %v", p)
	}

	// 3-node variant
	refM, refO, err = hf.Hash(OrbitTriangle, "A", "B", "C", NoType)
	require.NoError(t, err)
	mh, oh, err := hf.Hash(OrbitTriangle, "C", "A", "B", NoType)
	require.NoError(t, err)
	require.Equal(t, refO, oh)
	require.Equal(t, refM, mh)
}

// TestNewHasher_NumericOverride verifies that all-digit labels take their
// own value as index, keeping hashes stable across runs.
func TestNewHasher_NumericOverride(t *testing.T) {
	hf, err := NewHasher([]string{"7", "3"})
	require.NoError(t, err)

	// types (7, 3, 3): sorted indices 3,3,7 → sum 30307
	_, oh, err := hf.Hash(OrbitPath3End, "7", "3", "3", NoType)
	require.NoError(t, err)
	require.Equal(t, "01030307--", oh)
}

// TestNewHasher_Errors covers schema validation failures.
func TestNewHasher_Errors(t *testing.T) {
	many := make([]string, 101)
	for i := range many {
		many[i] = string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	_, err := NewHasher(many)
	require.ErrorIs(t, err, ErrTooManyTypes)

	_, err = NewHasher([]string{"250"})
	require.ErrorIs(t, err, ErrTooManyTypes)

	// "A" takes first-seen index 0; literal "0" then collides with it.
	_, err = NewHasher([]string{"A", "B", "0"})
	require.ErrorIs(t, err, ErrTypeIndexCollision)
}

// TestHash_UnknownTypeAndOrbit covers per-call validation.
func TestHash_UnknownTypeAndOrbit(t *testing.T) {
	hf, err := NewHasher([]string{"A"})
	require.NoError(t, err)

	_, _, err = hf.Hash(0, "A", "A", "A", NoType)
	require.ErrorIs(t, err, ErrInvalidOrbit)

	_, _, err = hf.Hash(OrbitTriangle, "A", "Z", "A", NoType)
	require.ErrorIs(t, err, ErrUnknownType)

	_, _, err = hf.Hash(OrbitClique4, "A", "A", "A", "Z")
	require.ErrorIs(t, err, ErrUnknownType)
}

// TestDecode round-trips both key widths back into readable labels.
func TestDecode(t *testing.T) {
	hf, err := NewHasher([]string{"A", "B"})
	require.NoError(t, err)

	_, oh, err := hf.Hash(OrbitTriangle, "A", "B", "A", NoType)
	require.NoError(t, err)
	d, err := hf.Decode(oh)
	require.NoError(t, err)
	require.Equal(t, OrbitTriangle, d.ID)
	require.Equal(t, []string{"A", "A", "B"}, []string{d.TI, d.TJ, d.TK})
	require.Equal(t, NoType, d.TR)

	_, oh, err = hf.Hash(OrbitClique4, "B", "A", "B", "A")
	require.NoError(t, err)
	d, err = hf.Decode(oh)
	require.NoError(t, err)
	require.Equal(t, OrbitClique4, d.ID)
	require.Equal(t, []string{"A", "A", "B", "B"}, []string{d.TI, d.TJ, d.TK, d.TR})

	_, err = hf.Decode("123")
	require.ErrorIs(t, err, ErrBadHashKey)
	_, err = hf.Decode("xx000000--")
	require.ErrorIs(t, err, ErrBadHashKey)
	_, err = hf.Decode("0200990099")
	require.ErrorIs(t, err, ErrUnknownType)
}
