// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

// ddnode is the fixed-shape record for one vertex of the shared graph. The
// low edge of a live internal node is always regular (the complement bit of
// an else branch is normalized away by makenode). A free slot is marked by
// low == -1 and its next field threads the free list. Terminal nodes point
// low and high at themselves and carry their payload in value.
type ddnode struct {
	refcou int32   // number of external references
	level  int32   // position of the variable in the order; bits 0x200000 and 0x400000 are the GC mark and the death-row flag
	low    int     // else edge
	high   int     // then edge
	next   int     // hash chain in the subtable of this level, 0 if last
	value  float64 // payload of terminal nodes
}

// Node is a reference to an element of a decision diagram, the atomic unit of
// interaction with a manager. A nil Node is the result of an operation that
// could not complete.
type Node *int

// Edges are represented by integers: the index of a ddnode shifted left by
// one, with the complementation mark in the lowest bit. Slot 0 of the node
// table is reserved (it terminates hash chains and free lists), slot 1 holds
// the arithmetic zero terminal and slot 2 the one terminal, shared by the
// Boolean constants: True is the regular edge to slot 2 and False the
// complemented one.

const (
	zeroterm = 1            // slot of the arithmetic zero terminal
	oneterm  = 2            // slot of the one terminal
	addzero  = zeroterm << 1 // edge for the ADD constant 0
	addone   = oneterm << 1  // edge for the ADD constant 1
	bddone   = oneterm << 1  // edge for the constant true, same terminal as addone
	bddzero  = bddone ^ 1    // edge for the constant false
)

func reg(e int) int    { return e &^ 1 }
func neg(e int) int    { return e ^ 1 }
func isneg(e int) bool { return e&1 == 1 }

// inode returns a Node for known edges, such as variables and constants, that
// need no protection against garbage collection.
func inode(e int) Node {
	x := e
	return &x
}

var bddtrue Node = inode(bddone)

var bddfalse Node = inode(bddzero)

// ************************************************************

// level, low and high give the decomposition of an edge; complementation
// distributes over the cofactors, so the low and high of a complemented edge
// come back complemented.

func (b *BDD) level(e int) int32 {
	return b.nodes[e>>1].level & _MAXVAR
}

func (b *BDD) low(e int) int {
	return b.nodes[e>>1].low ^ (e & 1)
}

func (b *BDD) high(e int) int {
	return b.nodes[e>>1].high ^ (e & 1)
}

// isconst reports whether e points at a terminal node. Terminals sit at the
// fixed level _MAXVAR, below every possible variable.
func (b *BDD) isconst(e int) bool {
	return b.nodes[e>>1].level&_MAXVAR == _MAXVAR
}

// value returns the payload of a terminal edge.
func (b *BDD) value(e int) float64 {
	return b.nodes[e>>1].value
}

// varlevel is the level of an edge clamped to varnum, for minterm-counting
// arithmetic where terminals must sit just below the last variable.
func (b *BDD) varlevel(e int) int32 {
	if l := b.level(e); l < b.varnum {
		return l
	}
	return b.varnum
}

// ************************************************************

func (b *BDD) ismarked(n int) bool {
	return (b.nodes[n].level & 0x200000) != 0
}

func (b *BDD) marknode(n int) {
	b.nodes[n].level = b.nodes[n].level | 0x200000
}

func (b *BDD) unmarknode(n int) {
	b.nodes[n].level = b.nodes[n].level &^ 0x200000
}

// Death-row membership is tracked with a second bit in the level word, so
// that a reference on a node that was never released cannot be confused with
// a resurrection.

func (b *BDD) ondeathrow(n int) bool {
	return (b.nodes[n].level & 0x400000) != 0
}

func (b *BDD) setdeathrow(n int) {
	b.nodes[n].level = b.nodes[n].level | 0x400000
}

func (b *BDD) cleardeathrow(n int) {
	b.nodes[n].level = b.nodes[n].level &^ 0x400000
}
