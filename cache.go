// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"fmt"
	"math"
)

// ************************************************************

// cache is a direct-mapped table memoizing the results of recursive
// operations. Entries are overwritten on collision and the whole table is
// invalidated by every garbage collection, so a cache miss can change the
// cost of an operation but never its result.
type cache struct {
	cacheratio int // grow the cache as a percentage of the node table, 0 for a fixed size
	table      []cacheData
}

// cacheData is a unit of information stored in the operation caches.
type cacheData struct {
	res int
	a   int
	b   int
	c   int
}

// cacheStat stores counters about the unique table and cache usage.
type cacheStat struct {
	uniqueAccess int // accesses to the unique node table
	uniqueChain  int // iterations through the chains of the unique node table
	uniqueHit    int // entries found in the unique node table
	uniqueMiss   int // entries not found in the unique node table
	opHit        int // entries found in the operation caches
	opMiss       int // entries not found in the operation caches
}

// ************************************************************

// Different kinds of caches used by the manager

type itecache struct {
	cache // used for both Ite and AddIte results
}

type quantcache struct {
	cache     // cache for Exist results
	id    int // current id, derived from the quantified variable set
}

type appexcache struct {
	cache          // cache for AppEx results
	id    int      // current id, derived from the variable set and operator
	op    Operator // current operator
}

type replacecache struct {
	cache     // cache for Replace, Compose and Restrict results
	id    int // current id, see cacheid modifiers below
}

type addcache struct {
	cache // cache for arithmetic Apply and for ADD/BDD conversions
}

// ************************************************************

// Hash value modifiers for the replacecache
const cacheid_REPLACE int = 0x0
const cacheid_COMPOSE int = 0x1
const cacheid_RESTRICT int = 0x2

// Hash value modifiers for quantification
const cacheid_EXIST int = 0x0
const cacheid_APPEX int = 0x3

// Operation tags for the addcache, offset so they can never collide with an
// AddOperator value in the c field of an entry
const cacheop_TOADD int = 0x100
const cacheop_TOBDD int = 0x101

// ************************************************************

// Basic functions shared by all caches

func (bc *cache) cacheinit(size int) {
	size = primeGte(size)
	bc.table = make([]cacheData, size)
	bc.cachereset()
}

func (bc *cache) cacheresize(nodesize int) {
	if bc.cacheratio > 0 {
		bc.cacheinit(nodesize * bc.cacheratio / 100)
		return
	}
	bc.cachereset()
}

func (bc *cache) cachereset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// *************************************************************************
// Setup and shutdown

func (b *BDD) cacheinit(cachesize, cacheratio int) {
	b.quantset = make([]int32, 0)
	if cachesize <= 0 {
		cachesize = len(b.nodes)/5 + 1
	}
	cachesize = primeGte(cachesize)
	for _, c := range b.allcaches() {
		c.cacheratio = cacheratio
		c.cacheinit(cachesize)
	}
}

func (b *BDD) cachereset() {
	for _, c := range b.allcaches() {
		c.cachereset()
	}
}

func (b *BDD) cacheresize(nodesize int) {
	for _, c := range b.allcaches() {
		c.cacheresize(nodesize)
	}
}

func (b *BDD) allcaches() []*cache {
	return []*cache{
		&b.itecache.cache,
		&b.additecache.cache,
		&b.quantcache.cache,
		&b.appexcache.cache,
		&b.replacecache.cache,
		&b.addcache.cache,
	}
}

// *************************************************************************

// SetCacheratio sets the cache ratio for the operation caches.
//
// The ratio between the number of slots in the node table and the number of
// entries in the operation caches is called the cache ratio. With a ratio of,
// say 25, we keep one cache entry for every four slots in the node table.
// When this is done the caches are resized instantly to fit the new ratio.
// The default is a fixed cache size determined at initialization time.
func (b *BDD) SetCacheratio(r int) error {
	if r <= 0 {
		b.seterror("nonpositive ratio (%d) in call to SetCacheratio", r)
		return b.error
	}
	for _, c := range b.allcaches() {
		c.cacheratio = r
	}
	b.cacheresize(len(b.nodes))
	return nil
}

// ************************************************************
//
// Quantification set
//

// quantset2cache takes a variable set, a cube built with an operation such as
// Makeset, and installs its variables in the quantification set. Both
// positive and negative literals are accepted.
func (b *BDD) quantset2cache(e int) error {
	if b.isconst(e) {
		b.seterror("illegal variable set in quantification")
		return b.error
	}
	if len(b.quantset) < int(b.varnum) {
		b.quantset = make([]int32, b.varnum)
		b.quantsetID = 0
	}
	b.quantsetID++
	if b.quantsetID == math.MaxInt32 {
		b.quantset = make([]int32, b.varnum)
		b.quantsetID = 1
	}
	b.quantlast = 0
	for !b.isconst(e) {
		b.quantset[b.level(e)] = b.quantsetID
		b.quantlast = b.level(e)
		next, err := b.cubenext(e)
		if err != nil {
			b.seterror("illegal variable set in quantification: %s", err)
			return b.error
		}
		e = next
	}
	if e != bddone {
		b.seterror("variable set in quantification is not a cube")
		return b.error
	}
	return nil
}

// ************************************************************

// String prints information about the cache performance: the number of
// accesses to the unique node table, the number of times a node was (not)
// found there and how many times a hash chain had to be traversed. Hit and
// miss counts are also given for the operation caches.
func (c cacheStat) String() string {
	res := fmt.Sprintf("Unique Access:  %d\n", c.uniqueAccess)
	res += fmt.Sprintf("Unique Chain:   %d\n", c.uniqueChain)
	res += fmt.Sprintf("Unique Hit:     %d\n", c.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", c.uniqueMiss)
	res += fmt.Sprintf("Operator Hits:  %d\n", c.opHit)
	res += fmt.Sprintf("Operator Miss:  %d", c.opMiss)
	return res
}
