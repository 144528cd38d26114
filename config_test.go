// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationOptions(t *testing.T) {
	bdd, err := New(4, Nodesize(5000), Cachesize(1000), Minfreenodes(30), Deadratio(10))
	require.NoError(t, err)
	assert.Equal(t, 5000, len(bdd.nodes))
	assert.Equal(t, 30, bdd.minfreenodes)
	assert.Equal(t, 10, bdd.deadratio)
	assert.Equal(t, 4, bdd.Varnum())

	// a node table too small for the variables is silently corrected
	bdd, err = New(100, Nodesize(10))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(bdd.nodes), 108)

	_, err = New(0)
	assert.Error(t, err, "a manager needs at least one variable")
	_, err = New(-3)
	assert.Error(t, err)
}

func TestSetVarnumGrowsOnly(t *testing.T) {
	bdd, err := New(2, Nodesize(1000))
	require.NoError(t, err)
	f := bdd.And(bdd.Ithvar(0), bdd.Ithvar(1))

	require.NoError(t, bdd.SetVarnum(5))
	assert.Equal(t, 5, bdd.Varnum())
	// nodes built before the extension are untouched
	assert.True(t, bdd.Equal(f, bdd.And(bdd.Ithvar(0), bdd.Ithvar(1))))
	assert.True(t, bdd.Equal(bdd.Exist(bdd.And(f, bdd.Ithvar(4)), bdd.Ithvar(4)), f))

	assert.Error(t, bdd.SetVarnum(3), "the set of variables cannot shrink")
	bdd.Reset()
	require.NoError(t, bdd.SetVarnum(5))
}

func TestReadTuning(t *testing.T) {
	doc := `
nodesize = 100000
cachesize = 25000
cacheratio = 25
minfreenodes = 25
deadratio = 30
`
	tuning, err := ReadTuning(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 100000, tuning.Nodesize)
	assert.Equal(t, 25000, tuning.Cachesize)
	assert.Equal(t, 25, tuning.Cacheratio)
	assert.Equal(t, 0, tuning.Maxnodesize)

	bdd, err := New(8, tuning.Options()...)
	require.NoError(t, err)
	assert.Equal(t, 100000, len(bdd.nodes))
	assert.Equal(t, 25, bdd.minfreenodes)
	assert.Equal(t, 30, bdd.deadratio)

	_, err = ReadTuning(strings.NewReader("nodesize = \"a lot\""))
	assert.Error(t, err, "malformed documents must be rejected")
	_, err = ReadTuning(strings.NewReader("deadratio = 150"))
	assert.Error(t, err, "collection ratios are percentages")
	_, err = ReadTuning(strings.NewReader("cachesize = -4"))
	assert.Error(t, err, "negative parameters must be rejected")
}

func TestSetCacheratio(t *testing.T) {
	bdd, err := New(4, Nodesize(1000), Cachesize(100))
	require.NoError(t, err)
	require.NoError(t, bdd.SetCacheratio(50))
	for _, c := range bdd.allcaches() {
		assert.Equal(t, primeGte(500), len(c.table))
	}
	assert.Error(t, bdd.SetCacheratio(0))
}
