package motif_test

import (
	"fmt"

	"github.com/katalvlaran/hinmotif/hin"
	"github.com/katalvlaran/hinmotif/motif"
)

// ExampleCount counts the motifs of a typed triangle with a tail and
// prints the type-agnostic global totals.
func ExampleCount() {
	//	A(0)───B(1)
	//	  \    /
	//	   A(2)───C(3)
	g, err := hin.New(
		[]string{"A", "B", "A", "C"},
		[][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}},
	)
	if err != nil {
		panic(err)
	}

	counts, err := motif.Count(g)
	if err != nil {
		panic(err)
	}

	untyped := counts.DeriveUntyped()
	fmt.Println("triangles:", untyped.GlobalCount["02"])
	fmt.Println("3-paths:  ", untyped.GlobalCount["01"])
	fmt.Println("tailed:   ", untyped.GlobalCount["06"])
	// Output:
	// triangles: 1
	// 3-paths:   2
	// tailed:    1
}
