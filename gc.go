// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

// gcstat stores status information about garbage collections. We use a stack
// (slice) of objects to record the sequence of collections during a
// computation.
type gcstat struct {
	history []gcpoint
}

type gcpoint struct {
	nodes     int // total number of slots in the node table
	freenodes int // number of free slots after the sweep
	dead      int // death-row count when the sweep started
	reclaimed int // number of nodes actually freed by the sweep
}

// *************************************************************************

// AddRef increases the reference count on node n, protecting it from the
// garbage collector, and returns n so that calls can be easily chained
// together. A call to AddRef never raises an error, even on an unused node or
// a value outside the range of the manager.
//
// Reference counting is done on externally referenced nodes only: a result
// that is retained past the operation that produced it must be counted with
// AddRef, and released with exactly one DelRef, to avoid losing it during a
// collection. Constants and variables are permanently stuck and need no
// counting.
func (b *BDD) AddRef(n Node) Node {
	if n == nil {
		return n
	}
	k := *n >> 1
	if k < 0 || k >= len(b.nodes) {
		return n
	}
	if b.nodes[k].low == -1 {
		return n
	}
	if b.nodes[k].refcou < _MAXREFCOUNT {
		if b.ondeathrow(k) {
			// the node comes back from death row
			b.cleardeathrow(k)
			b.dead--
		}
		b.nodes[k].refcou++
	}
	return n
}

// DelRef decreases the reference count on a node and returns n so that calls
// can be easily chained together. A call to DelRef never raises an error.
// When the count returns to zero the node goes on death row: it stays intact
// and resurrectable until the next collection sweeps it. Releasing an already
// released node is a caller bug; the count is clamped at zero and the
// underflow is reported through CheckZeroRef and Stats.
func (b *BDD) DelRef(n Node) Node {
	if n == nil {
		return n
	}
	k := *n >> 1
	if k < 0 || k >= len(b.nodes) {
		return n
	}
	if b.nodes[k].low == -1 {
		return n
	}
	if b.nodes[k].refcou == 0 {
		b.underflows++
		return n
	}
	if b.nodes[k].refcou < _MAXREFCOUNT {
		b.nodes[k].refcou--
		if b.nodes[k].refcou == 0 {
			b.setdeathrow(k)
			b.dead++
		}
	}
	return n
}

// CheckZeroRef returns the number of nodes that still carry a nonzero
// reference count, not counting the constants and variables that are stuck in
// the table. After a sequence of operations whose AddRef and DelRef calls
// net to zero this must report zero; it is intended for leak detection at
// shutdown.
func (b *BDD) CheckZeroRef() int {
	count := 0
	for k := range b.nodes {
		if k <= oneterm || b.nodes[k].low == -1 {
			continue
		}
		if c := b.nodes[k].refcou; c > 0 && c < _MAXREFCOUNT {
			count++
		}
	}
	if b.underflows > 0 {
		b.logger.Warn("reference count underflows detected", "underflows", b.underflows)
	}
	return count
}

// GC explicitly starts a garbage collection of unused nodes. While an error
// is latched on the manager the internal state may be inconsistent, so the
// collection is skipped; call Reset first to collect after a failure.
func (b *BDD) GC() {
	b.gbc()
}

// *************************************************************************

// gbc is the garbage collector, called from an allocation boundary when there
// are no free slots or when the death-row trigger fires, or explicitly
// through GC. Nodes that are not reclaimed do not move. The operation caches
// are invalidated since cached results may reference the nodes being freed.
func (b *BDD) gbc() {
	b.logger.Debug("starting GC", "nodes", len(b.nodes), "free", b.freenum, "dead", b.dead)
	if b.error != nil {
		return
	}
	predead := b.dead
	// we mark the nodes on the refstack to avoid collecting results that are
	// still under construction
	for _, r := range b.refstack {
		b.markrec(r >> 1)
	}
	// we also protect nodes with a positive reference count, and therefore
	// also the ones stuck at _MAXREFCOUNT, such as variables
	for k := range b.nodes {
		if b.nodes[k].refcou > 0 && b.nodes[k].low != -1 {
			b.markrec(k)
		}
	}
	for k := range b.subtables {
		st := &b.subtables[k]
		for i := range st.buckets {
			st.buckets[i] = 0
		}
		st.keys = 0
	}
	b.freepos = 0
	b.freenum = 0
	reclaimed := 0
	// one pass through the node table to void unmarked nodes and rebuild the
	// hash chains of the survivors. After this pass b.freepos points to the
	// first free slot, or 0 if there is none.
	for n := len(b.nodes) - 1; n > oneterm; n-- {
		if b.ismarked(n) && b.nodes[n].low != -1 {
			b.unmarknode(n)
			// a death-row node can survive when a referenced node points at
			// it; the sweep resets the row, so the flag goes too
			b.cleardeathrow(n)
			if b.nodes[n].level&_MAXVAR == _MAXVAR {
				// terminals are interned through the constant table, not the
				// level subtables
				continue
			}
			st := &b.subtables[b.nodes[n].level]
			hash := _PAIR(b.nodes[n].low, b.nodes[n].high, len(st.buckets))
			b.nodes[n].next = st.buckets[hash]
			st.buckets[hash] = n
			st.keys++
		} else {
			if b.nodes[n].low != -1 {
				reclaimed++
				if b.nodes[n].level&_MAXVAR == _MAXVAR {
					delete(b.consts, b.nodes[n].value)
				}
			}
			b.nodes[n].low = -1
			b.nodes[n].next = b.freepos
			b.freepos = n
			b.freenum++
		}
	}
	b.dead = 0
	// we also invalidate the caches
	b.cachereset()
	b.gcstat.history = append(b.gcstat.history, gcpoint{
		nodes:     len(b.nodes),
		freenodes: b.freenum,
		dead:      predead,
		reclaimed: reclaimed,
	})
	b.logger.Debug("end GC", "free", b.freenum, "reclaimed", reclaimed)
}

// *************************************************************************
// RECURSIVE MARK / UNMARK

func (b *BDD) markrec(n int) {
	if n <= oneterm || b.ismarked(n) || b.nodes[n].low == -1 {
		return
	}
	b.marknode(n)
	if b.nodes[n].level&_MAXVAR == _MAXVAR {
		return
	}
	b.markrec(b.nodes[n].low >> 1)
	b.markrec(b.nodes[n].high >> 1)
}

func (b *BDD) unmarkall() {
	for k, v := range b.nodes {
		if k <= oneterm || v.low == -1 || !b.ismarked(k) {
			continue
		}
		b.unmarknode(k)
	}
}

// *************************************************************************
// private functions to manipulate the refstack; used to prevent nodes that
// are currently being built (e.g. transient results inside an Ite) from being
// reclaimed during a collection.

func (b *BDD) initref() {
	b.refstack = b.refstack[:0]
}

func (b *BDD) pushref(e int) int {
	b.refstack = append(b.refstack, e)
	return e
}

func (b *BDD) popref(a int) {
	b.refstack = b.refstack[:len(b.refstack)-a]
}
