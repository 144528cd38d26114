// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd_test

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/guddlib/gudd"
)

// This example shows the basic usage of the package: create a BDD, compute
// some expressions and output the result.
func Example_basic() {
	// Create a new BDD with 6 variables, 10 000 nodes and a cache size of
	// 3 000 (initially). Kernel events go to stderr.
	bdd, _ := gudd.New(6, gudd.Nodesize(10000), gudd.Cachesize(3000), gudd.Logger(log.New(os.Stderr)))
	// n1 is a set comprising the three variables {x2, x3, x5}. It can also be
	// interpreted as the Boolean expression: x2 & x3 & x5
	n1 := bdd.AddRef(bdd.Makeset([]int{2, 3, 5}))
	// n2 == x1 | !x3 | x4
	n2 := bdd.AddRef(bdd.Or(bdd.Ithvar(1), bdd.NIthvar(3), bdd.Ithvar(4)))
	// n3 == ∃ x2,x3,x5 . (n2 & x3)
	n3 := bdd.AndExist(n1, n2, bdd.Ithvar(3))
	fmt.Printf("Number of sat. assignments: %s\n", bdd.Satcount(n3))
	// Output:
	// Number of sat. assignments: 48
}

// This example shows the use of the reference counting API: a Node that must
// survive past the operation that produced it is protected with AddRef and
// released with DelRef once it is no longer needed.
func Example_references() {
	bdd, _ := gudd.New(3, gudd.Nodesize(10000))
	f := bdd.AddRef(bdd.Or(bdd.And(bdd.Ithvar(0), bdd.Ithvar(1)), bdd.Ithvar(2)))
	// temporary results are created and dropped; f stays valid even if one
	// of these operations runs a garbage collection
	for i := 0; i < 3; i++ {
		bdd.Apply(f, bdd.Ithvar(i), gudd.OPxor)
	}
	bdd.GC()
	fmt.Printf("Number of sat. assignments: %s\n", bdd.Satcount(f))
	bdd.DelRef(f)
	fmt.Printf("Leaked references: %d\n", bdd.CheckZeroRef())
	// Output:
	// Number of sat. assignments: 5
	// Leaked references: 0
}
