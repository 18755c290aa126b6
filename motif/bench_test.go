// File: motif/bench_test.go
package motif_test

import (
	"testing"

	"github.com/katalvlaran/hinmotif/hin"
	"github.com/katalvlaran/hinmotif/motif"
)

// gridHIN builds an n×n king-less grid with one diagonal per cell, which
// is rich in triangles, 4-cycles and chordal cycles. Types cycle A/B/C.
func gridHIN(b *testing.B, n int) *hin.HIN {
	b.Helper()
	labels := [3]string{"A", "B", "C"}
	types := make([]string, n*n)
	for v := range types {
		types[v] = labels[v%3]
	}

	var edges [][2]int
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := row*n + col
			if col+1 < n {
				edges = append(edges, [2]int{v, v + 1})
			}
			if row+1 < n {
				edges = append(edges, [2]int{v, v + n})
			}
			if col+1 < n && row+1 < n {
				edges = append(edges, [2]int{v, v + n + 1})
			}
		}
	}

	g, err := hin.New(types, edges)
	if err != nil {
		b.Fatalf("grid construction failed: %v", err)
	}

	return g
}

// BenchmarkCount_Combinatorial measures the default (algebraic) mode.
func BenchmarkCount_Combinatorial(b *testing.B) {
	g := gridHIN(b, 24)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := motif.Count(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCount_Explicit measures full traversal of orbits 4/5/9/11.
func BenchmarkCount_Explicit(b *testing.B) {
	g := gridHIN(b, 24)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := motif.Count(g, motif.WithoutCombinatorial()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCount_Parallel measures the worker fan-out on all CPUs.
func BenchmarkCount_Parallel(b *testing.B) {
	g := gridHIN(b, 24)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := motif.Count(g, motif.WithWorkers(0)); err != nil {
			b.Fatal(err)
		}
	}
}
