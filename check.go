// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import "github.com/pkg/errors"

// Audit runs a consistency check over the internal state of the manager and
// returns the first defect found, or nil. It verifies that the hash chains of
// every level contain exactly the live nodes of that level, that stored low
// edges are regular, that no node has two equal branches, that no two nodes
// share the same triple, and that the intern table of terminals is coherent.
// The check walks the whole table; it is meant for tests and debugging, not
// for production paths.
func (b *BDD) Audit() error {
	seen := make(map[[3]int]bool)
	chained := 0
	for k := range b.subtables {
		st := &b.subtables[k]
		count := 0
		for i, head := range st.buckets {
			for n := head; n != 0; n = b.nodes[n].next {
				count++
				chained++
				if chained > len(b.nodes) {
					return errors.Errorf("cycle in the hash chains at level %d", k)
				}
				v := b.nodes[n]
				if v.low == -1 {
					return errors.Errorf("freed node %d in the chain of level %d", n, k)
				}
				if int(v.level&_MAXVAR) != k {
					return errors.Errorf("node %d has level %d but chains at level %d", n, v.level&_MAXVAR, k)
				}
				if isneg(v.low) {
					return errors.Errorf("node %d has a complemented low edge", n)
				}
				if v.low == v.high {
					return errors.Errorf("node %d has two equal branches", n)
				}
				if v.low>>1 >= len(b.nodes) || v.high>>1 >= len(b.nodes) {
					return errors.Errorf("node %d has a branch outside the table", n)
				}
				if b.nodes[v.low>>1].low == -1 || b.nodes[v.high>>1].low == -1 {
					return errors.Errorf("node %d has a freed branch", n)
				}
				triple := [3]int{k, v.low, v.high}
				if seen[triple] {
					return errors.Errorf("node %d duplicates a triple at level %d", n, k)
				}
				seen[triple] = true
				if hash := _PAIR(v.low, v.high, len(st.buckets)); int(hash) != i {
					return errors.Errorf("node %d sits in the wrong bucket of level %d", n, k)
				}
			}
		}
		if count != st.keys {
			return errors.Errorf("level %d reports %d keys but chains %d nodes", k, st.keys, count)
		}
	}
	// every live internal node must be reachable from its chain
	live := 0
	for k := range b.nodes {
		if k == 0 || b.nodes[k].low == -1 {
			continue
		}
		if b.nodes[k].level&_MAXVAR == _MAXVAR {
			if interned, ok := b.consts[b.nodes[k].value]; !ok || interned != k {
				return errors.Errorf("terminal %d (value %v) is not interned", k, b.nodes[k].value)
			}
			continue
		}
		live++
	}
	if live != len(seen) {
		return errors.Errorf("%d live internal nodes but %d chained", live, len(seen))
	}
	free := 0
	for n := b.freepos; n != 0; n = b.nodes[n].next {
		if b.nodes[n].low != -1 {
			return errors.Errorf("live node %d on the free list", n)
		}
		free++
		if free > len(b.nodes) {
			return errors.New("cycle in the free list")
		}
	}
	if free != b.freenum {
		return errors.Errorf("free list holds %d slots but freenum is %d", free, b.freenum)
	}
	return nil
}
