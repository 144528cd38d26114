// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nodecount returns the number of internal nodes in the representation of n,
// not counting the two terminals that Allnodes always reports.
func nodecount(t *testing.T, b *BDD, n Node) int {
	t.Helper()
	acc := 0
	require.NoError(t, b.Allnodes(func(id, level, low, high int) error {
		if level < b.Varnum() {
			acc++
		}
		return nil
	}, n))
	return acc
}

func TestHashConsing(t *testing.T) {
	bdd, err := New(4, Nodesize(10000))
	require.NoError(t, err)
	x0, x1 := bdd.Ithvar(0), bdd.Ithvar(1)

	// the same function always comes back as the same edge
	n1 := bdd.And(x0, x1)
	n2 := bdd.And(x1, x0)
	assert.True(t, bdd.Equal(n1, n2), "conjunction must not depend on the order of its operands")
	n3 := bdd.And(x0, x1)
	assert.True(t, bdd.Equal(n1, n3), "rebuilding a function must reuse its nodes")

	// neutral elements do not build anything
	assert.True(t, bdd.Equal(bdd.And(n1, bdd.True()), n1))
	assert.True(t, bdd.Equal(bdd.Or(n1, bdd.False()), n1))
	assert.True(t, bdd.Equal(bdd.And(n1, n1), n1))
	assert.True(t, bdd.Equal(bdd.And(n1, bdd.False()), bdd.False()))

	// structure sharing: x0 & x1 takes two internal nodes, and building it
	// twice over does not add any
	assert.Equal(t, 2, nodecount(t, bdd, n1))
	assert.Equal(t, 2, nodecount(t, bdd, bdd.And(x1, x0)))
	require.NoError(t, bdd.Audit())
}

func TestComplementEdges(t *testing.T) {
	bdd, err := New(3, Nodesize(10000))
	require.NoError(t, err)
	x0 := bdd.Ithvar(0)
	f := bdd.Or(x0, bdd.Ithvar(1))

	// negation must cost nothing and be involutive
	before := bdd.produced
	g := bdd.Not(f)
	assert.Equal(t, before, bdd.produced, "negation must not create nodes")
	assert.True(t, bdd.Equal(bdd.Not(g), f))
	assert.False(t, bdd.Equal(f, g))

	// a function and its negation share their internal nodes
	assert.Equal(t, nodecount(t, bdd, f), nodecount(t, bdd, g))

	assert.True(t, bdd.Equal(bdd.And(f, g), bdd.False()))
	assert.True(t, bdd.Equal(bdd.Or(f, g), bdd.True()))
	assert.True(t, bdd.Equal(bdd.Not(bdd.True()), bdd.False()))
}

func TestIteIdentities(t *testing.T) {
	bdd, err := New(4, Nodesize(10000))
	require.NoError(t, err)
	x0, x1, x2 := bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2)
	f := bdd.Or(bdd.And(x0, x1), x2)

	assert.True(t, bdd.Equal(bdd.Ite(f, bdd.True(), bdd.False()), f))
	assert.True(t, bdd.Equal(bdd.Ite(f, bdd.False(), bdd.True()), bdd.Not(f)))
	assert.True(t, bdd.Equal(bdd.Ite(bdd.True(), f, x2), f))
	assert.True(t, bdd.Equal(bdd.Ite(bdd.False(), f, x2), x2))
	assert.True(t, bdd.Equal(bdd.Ite(f, f, x2), bdd.Or(f, x2)))
	assert.True(t, bdd.Equal(bdd.Ite(f, x2, f), bdd.And(f, x2)))
	assert.True(t, bdd.Equal(bdd.Ite(x0, x1, x2), bdd.Or(bdd.And(x0, x1), bdd.And(bdd.Not(x0), x2))))
}

func TestCofactors(t *testing.T) {
	bdd, err := New(3, Nodesize(10000))
	require.NoError(t, err)
	x0, x1, x2 := bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2)
	f := bdd.Or(bdd.And(x0, x1), bdd.And(bdd.Not(x0), x2))

	assert.Equal(t, 0, bdd.Label(f))
	assert.True(t, bdd.Equal(bdd.High(f), x1))
	assert.True(t, bdd.Equal(bdd.Low(f), x2))

	// the same cofactors through Restrict
	assert.True(t, bdd.Equal(bdd.Restrict(f, x0), x1))
	assert.True(t, bdd.Equal(bdd.Restrict(f, bdd.NIthvar(0)), x2))
	assert.True(t, bdd.Equal(bdd.Restrict(f, bdd.Makeset([]int{0, 1})), bdd.True()))
	assert.True(t, bdd.Equal(bdd.Restrict(f, bdd.True()), f))
}

func TestQuantification(t *testing.T) {
	bdd, err := New(4, Nodesize(10000))
	require.NoError(t, err)
	x0, x1 := bdd.Ithvar(0), bdd.Ithvar(1)

	assert.True(t, bdd.Equal(bdd.Exist(bdd.And(x0, x1), x0), x1))
	assert.True(t, bdd.Equal(bdd.Forall(bdd.Or(x0, x1), x0), x1))
	assert.True(t, bdd.Equal(bdd.Exist(bdd.Or(x0, x1), x0), bdd.True()))
	assert.True(t, bdd.Equal(bdd.Forall(bdd.And(x0, x1), x0), bdd.False()))

	// forall is the dual of exist
	f := bdd.Or(bdd.And(x0, x1), bdd.And(bdd.Ithvar(2), bdd.Ithvar(3)))
	set := bdd.Makeset([]int{0, 2})
	assert.True(t, bdd.Equal(bdd.Forall(f, set), bdd.Not(bdd.Exist(bdd.Not(f), set))))

	// the relational product agrees with its two-step form
	assert.True(t, bdd.Equal(
		bdd.AndExist(set, f, bdd.Or(x1, bdd.Ithvar(3))),
		bdd.Exist(bdd.And(f, bdd.Or(x1, bdd.Ithvar(3))), set)))

	// quantifying over an empty set changes nothing
	assert.True(t, bdd.Equal(bdd.Exist(f, bdd.True()), f))
}

func TestAppExOperators(t *testing.T) {
	bdd, err := New(4, Nodesize(10000))
	require.NoError(t, err)
	x0, x1, x2 := bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2)
	f := bdd.AddRef(bdd.Or(x0, x1))
	g := bdd.AddRef(bdd.Or(x0, x2))
	set := bdd.Ithvar(0)

	for op := OPand; op <= OPnor; op++ {
		assert.True(t, bdd.Equal(bdd.AppEx(f, g, op, set), bdd.Exist(bdd.Apply(f, g, op), set)),
			"AppEx must agree with Exist after Apply for %s", op)
	}

	// back-to-back calls that differ only in the operator must not share
	// memoized results
	nor := bdd.AddRef(bdd.AppEx(f, g, OPnor, set))
	and := bdd.AppEx(f, g, OPand, set)
	assert.True(t, bdd.Equal(and, bdd.Exist(bdd.And(f, g), set)))
	assert.False(t, bdd.Equal(nor, and))
	bdd.DelRef(nor)

	_ = bdd.AppEx(f, g, OPimp, set)
	assert.True(t, bdd.Errored(), "operators above OPnor are rejected in AppEx")
	bdd.Reset()
	bdd.DelRef(f)
	bdd.DelRef(g)
	assert.Equal(t, 0, bdd.CheckZeroRef())
}

func TestSwappedOperandsShareCache(t *testing.T) {
	bdd, err := New(3, Nodesize(10000))
	require.NoError(t, err)
	x0, x1, x2 := bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2)

	// two distinct functions with the same top variable
	f := bdd.Or(x0, x1)
	g := bdd.Or(x0, x2)
	require.Equal(t, bdd.Label(f), bdd.Label(g))

	n1 := bdd.And(f, g)
	misses := bdd.opMiss
	assert.True(t, bdd.Equal(bdd.And(g, f), n1))
	assert.Equal(t, misses, bdd.opMiss, "swapped conjunction must reuse the cache entry")

	n2 := bdd.Or(f, g)
	misses = bdd.opMiss
	assert.True(t, bdd.Equal(bdd.Or(g, f), n2))
	assert.Equal(t, misses, bdd.opMiss, "swapped disjunction must reuse the cache entry")

	n3 := bdd.Apply(f, g, OPxor)
	misses = bdd.opMiss
	assert.True(t, bdd.Equal(bdd.Apply(g, f, OPxor), n3))
	assert.Equal(t, misses, bdd.opMiss, "swapped xor must reuse the cache entry")
}

func TestReplaceAndCompose(t *testing.T) {
	bdd, err := New(4, Nodesize(10000))
	require.NoError(t, err)
	x0, x1, x2, x3 := bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2), bdd.Ithvar(3)

	r, err := bdd.NewReplacer([]int{0, 1}, []int{2, 3})
	require.NoError(t, err)
	assert.True(t, bdd.Equal(bdd.Replace(bdd.And(x0, x1), r), bdd.And(x2, x3)))
	assert.True(t, bdd.Equal(bdd.Replace(bdd.Not(bdd.And(x0, x1)), r), bdd.Not(bdd.And(x2, x3))))

	_, err = bdd.NewReplacer([]int{0, 0}, []int{2, 3})
	assert.Error(t, err, "duplicate variables must be rejected")
	_, err = bdd.NewReplacer([]int{0}, []int{2, 3})
	assert.Error(t, err, "mismatched slice lengths must be rejected")

	g := bdd.Or(x2, x3)
	assert.True(t, bdd.Equal(bdd.Compose(bdd.And(x0, x1), g, 1), bdd.And(x0, g)))
	assert.True(t, bdd.Equal(bdd.Compose(x0, g, 0), g))
	// composing on an absent variable changes nothing
	assert.True(t, bdd.Equal(bdd.Compose(bdd.And(x0, x1), g, 3), bdd.And(x0, x1)))
}

func TestMakesetScanset(t *testing.T) {
	bdd, err := New(6, Nodesize(10000))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 3}, bdd.Scanset(bdd.Makeset([]int{0, 2, 3})))
	assert.Equal(t, []int{1}, bdd.Scanset(bdd.Ithvar(1)))
	assert.Nil(t, bdd.Scanset(bdd.True()))

	f := bdd.And(bdd.Ithvar(0), bdd.Or(bdd.Ithvar(1), bdd.Ithvar(4)))
	assert.Equal(t, []int{0, 1, 4}, bdd.Scanset(bdd.Support(f)))
	assert.Nil(t, bdd.Scanset(bdd.Support(bdd.True())))
}

func TestSatcount(t *testing.T) {
	bdd, err := New(4, Nodesize(10000))
	require.NoError(t, err)
	x0, x1 := bdd.Ithvar(0), bdd.Ithvar(1)

	assert.Equal(t, "16", bdd.Satcount(bdd.True()).String())
	assert.Equal(t, "0", bdd.Satcount(bdd.False()).String())
	assert.Equal(t, "8", bdd.Satcount(x0).String())
	assert.Equal(t, "8", bdd.Satcount(bdd.Ithvar(3)).String())
	assert.Equal(t, "4", bdd.Satcount(bdd.And(x0, x1)).String())
	assert.Equal(t, "12", bdd.Satcount(bdd.Or(x0, x1)).String())
	assert.Equal(t, "8", bdd.Satcount(bdd.Apply(x0, x1, OPxor)).String())
	assert.Equal(t, "1", bdd.Satcount(bdd.Makeset([]int{0, 1, 2, 3})).String())
}
