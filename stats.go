// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"fmt"
	"unsafe"
)

// Stats returns information about the state of the manager: the size and
// occupancy of the node table, the number of nodes on death row, the count of
// reference underflows, and the counters of the unique table and operation
// caches.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	r := (float64(b.freenum) / float64(len(b.nodes))) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", b.freenum, r)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", len(b.nodes)-b.freenum, 100.0-r)
	res += fmt.Sprintf("Dead:       %d\n", b.dead)
	res += fmt.Sprintf("Underflows: %d\n", b.underflows)
	res += fmt.Sprintf("Size:       %s\n", humanSize(len(b.nodes), unsafe.Sizeof(ddnode{})))
	res += "==============\n"
	res += fmt.Sprintf("# of GC:    %d\n", len(b.gcstat.history))
	reclaimed := 0
	for _, g := range b.gcstat.history {
		reclaimed += g.reclaimed
	}
	res += fmt.Sprintf("Reclaimed:  %d\n", reclaimed)
	res += "==============\n"
	res += b.cacheStat.String()
	return res
}

// GCStats returns one line per garbage collection since the manager was
// initialized, reporting the size of the table, the free slots left by the
// sweep, the death-row count when it started, and the number of nodes
// reclaimed.
func (b *BDD) GCStats() string {
	res := ""
	for k, g := range b.gcstat.history {
		if k != 0 {
			res += "\n"
		}
		res += fmt.Sprintf("GC #%d: nodes %d, free %d, dead %d, reclaimed %d", k+1, g.nodes, g.freenodes, g.dead, g.reclaimed)
	}
	return res
}

// CacheStats returns the counters of the unique table and of the operation
// caches, also included at the end of Stats.
func (b *BDD) CacheStats() string {
	return b.cacheStat.String()
}

func humanSize(count int, size uintptr) string {
	total := float64(count) * float64(size)
	switch {
	case total >= 1<<30:
		return fmt.Sprintf("%.2f GB", total/(1<<30))
	case total >= 1<<20:
		return fmt.Sprintf("%.2f MB", total/(1<<20))
	case total >= 1<<10:
		return fmt.Sprintf("%.2f kB", total/(1<<10))
	}
	return fmt.Sprintf("%.0f B", total)
}
