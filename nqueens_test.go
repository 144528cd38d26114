// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"math/big"
	"testing"
)

// nqueens computes solutions for the N-Queen chess problem and returns the
// number of solutions. It builds a BDD with NxN variables corresponding to
// the squares in the chess board like:
//
//	0 4  8 12
//	1 5  9 13
//	2 6 10 14
//	3 7 11 15
//
// One solution is then that 2,4,11,13 should be true, meaning a queen should
// be placed there:
//
//	. X . .
//	. . . X
//	X . . .
//	. . X .
func nqueens(t *testing.T, N int) *big.Int {
	bdd, err := New(N*N, Nodesize(N*N*256), Cachesize(N*N*64), Cacheratio(30))
	if err != nil {
		t.Fatal(err)
	}
	queen := bdd.True()
	X := make([][]Node, N)
	for i := range X {
		X[i] = make([]Node, N)
		for j := range X[i] {
			X[i][j] = bdd.Ithvar(i*N + j)
		}
	}
	// Place a queen in each row
	for i := 0; i < N; i++ {
		e := bdd.False()
		for j := 0; j < N; j++ {
			e = keep(bdd, bdd.Or(e, X[i][j]), e)
		}
		queen = keep(bdd, bdd.And(queen, e), queen)
		bdd.DelRef(e)
	}

	// Build requirements for each variable (field)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			// No one in the same column
			a := bdd.True()
			for k := 0; k < N; k++ {
				if k != j {
					a = keep(bdd, bdd.And(a, bdd.Imp(X[i][j], bdd.Not(X[i][k]))), a)
				}
			}
			// No one in the same row
			b := bdd.True()
			for k := 0; k < N; k++ {
				if k != i {
					b = keep(bdd, bdd.And(b, bdd.Imp(X[i][j], bdd.Not(X[k][j]))), b)
				}
			}
			// No one in the same up-right diagonal
			c := bdd.True()
			for k := 0; k < N; k++ {
				ll := k - i + j
				if ll >= 0 && ll < N {
					if k != i {
						c = keep(bdd, bdd.And(c, bdd.Imp(X[i][j], bdd.Not(X[k][ll]))), c)
					}
				}
			}
			// No one in the same down-right diagonal
			d := bdd.True()
			for k := 0; k < N; k++ {
				ll := i + j - k
				if ll >= 0 && ll < N {
					if k != i {
						d = keep(bdd, bdd.And(d, bdd.Imp(X[i][j], bdd.Not(X[k][ll]))), d)
					}
				}
			}
			queen = keep(bdd, bdd.And(queen, a, b, c, d), queen)
			bdd.DelRef(a)
			bdd.DelRef(b)
			bdd.DelRef(c)
			bdd.DelRef(d)
		}
	}
	if bdd.Errored() {
		t.Fatalf("error while building the constraints: %s", bdd.Error())
	}
	count := bdd.Satcount(queen)
	bdd.DelRef(queen)
	if c := bdd.CheckZeroRef(); c != 0 {
		t.Errorf("expected no referenced nodes left after NQueens(%d), found %d", N, c)
	}
	if err := bdd.Audit(); err != nil {
		t.Errorf("inconsistent state after NQueens(%d): %s", N, err)
	}
	return count
}

func TestNQueens(t *testing.T) {
	var nqueensTests = []struct {
		N        int
		expected int64
	}{
		{4, 2},
		{5, 10},
		{6, 4},
		{7, 40},
	}
	for _, tt := range nqueensTests {
		actual := nqueens(t, tt.N)
		if actual.Cmp(big.NewInt(tt.expected)) != 0 {
			t.Errorf("error in NQueens(%d), expected %d, actual %s", tt.N, tt.expected, actual)
		}
	}
}
