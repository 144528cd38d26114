// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import "math"

// subtable is the unique table of one level: a bucket array over the
// (low, high) pairs of the nodes at that level, chained through the next
// field of the nodes. Bucket heads use 0 as the empty marker, which is why
// slot 0 of the node table is reserved.
type subtable struct {
	buckets []int
	keys    int // number of live entries at this level
}

func makesubtable() subtable {
	return subtable{buckets: make([]int, primeGte(_SUBTABLEDENSITY+1))}
}

// makenode is the get-or-create entry point of the unique table; every
// internal node of the graph is produced here. Edges low and high must be
// alive and protected (on the refstack or referenced) since allocating may
// trigger a collection. A node with two equal branches is never built, and a
// complemented low edge is normalized away by complementing the result, so
// that the stored low edge is always regular. Returns -1 when the node table
// cannot grow anymore.
func (b *BDD) makenode(level int32, low, high int) int {
	if low < 0 || high < 0 {
		// a failed allocation below us; the error is already latched
		return -1
	}
	b.uniqueAccess++
	if low == high {
		return low
	}
	out := 0
	if isneg(low) {
		low = neg(low)
		high = neg(high)
		out = 1
	}
	st := &b.subtables[level]
	hash := _PAIR(low, high, len(st.buckets))
	for res := st.buckets[hash]; res != 0; res = b.nodes[res].next {
		if b.nodes[res].low == low && b.nodes[res].high == high {
			b.uniqueHit++
			return res<<1 | out
		}
		b.uniqueChain++
	}
	b.uniqueMiss++
	res, err := b.allocnode()
	if err != nil {
		b.seterror("cannot allocate node at level %d: %s", level, err)
		return -1
	}
	if st.keys >= _SUBTABLEDENSITY*len(st.buckets) {
		b.growsubtable(level)
	}
	// the collector and the subtable growth rehash chains, so the bucket is
	// recomputed after any allocation
	hash = _PAIR(low, high, len(st.buckets))
	b.produced++
	st.keys++
	b.nodes[res] = ddnode{level: level, low: low, high: high, next: st.buckets[hash]}
	st.buckets[hash] = res
	return res<<1 | out
}

// allocnode takes a slot from the free list, running the collector and
// resizing the node table when needed. The death-row trigger also fires
// here, so that collections happen at allocation boundaries only.
func (b *BDD) allocnode() (int, error) {
	if b.deadratio > 0 && b.freepos != 0 && b.dead*100 >= len(b.nodes)*b.deadratio {
		b.gbc()
	}
	if b.freepos == 0 {
		// We garbage collect unused nodes to try and find spare space.
		b.gbc()
		// We also test if we are under the threshold for resizing.
		if (b.freenum*100)/len(b.nodes) <= b.minfreenodes {
			if err := b.noderesize(); err != nil && b.freepos == 0 {
				return 0, err
			}
		}
		if b.freepos == 0 {
			return 0, errMemory
		}
	}
	res := b.freepos
	b.freepos = b.nodes[res].next
	b.freenum--
	return res, nil
}

// noderesize grows the node table geometrically, bounded by Maxnodeincrease
// and Maxnodesize. Hash chains are per level and do not depend on the table
// capacity, so existing nodes are not rehashed.
func (b *BDD) noderesize() error {
	oldsize := len(b.nodes)
	if (b.maxnodesize > 0) && (oldsize >= b.maxnodesize) {
		return errMemory
	}
	nodesize := oldsize
	if oldsize > (math.MaxInt32 >> 1) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize << 1
	}
	if b.maxnodeincrease > 0 && nodesize > (oldsize+b.maxnodeincrease) {
		nodesize = oldsize + b.maxnodeincrease
	}
	if (b.maxnodesize > 0) && (nodesize > b.maxnodesize) {
		nodesize = b.maxnodesize
	}
	if nodesize <= oldsize {
		return errMemory
	}
	b.logger.Debug("resizing node table", "from", oldsize, "to", nodesize)

	tmp := b.nodes
	b.nodes = make([]ddnode, nodesize)
	copy(b.nodes, tmp)

	for n := oldsize; n < nodesize; n++ {
		b.nodes[n] = ddnode{low: -1, next: n + 1}
	}
	b.nodes[nodesize-1].next = b.freepos
	b.freepos = oldsize
	b.freenum += nodesize - oldsize

	b.cacheresize(nodesize)
	return nil
}

// growsubtable doubles the bucket array of one level and rehashes its chains.
func (b *BDD) growsubtable(level int32) {
	st := &b.subtables[level]
	old := st.buckets
	st.buckets = make([]int, primeGte(2*len(old)))
	for _, head := range old {
		for n := head; n != 0; {
			next := b.nodes[n].next
			hash := _PAIR(b.nodes[n].low, b.nodes[n].high, len(st.buckets))
			b.nodes[n].next = st.buckets[hash]
			st.buckets[hash] = n
			n = next
		}
	}
	b.logger.Debug("rehashed level", "level", level, "buckets", len(st.buckets), "keys", st.keys)
}
