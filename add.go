// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

// An ADD, for Algebraic Decision Diagram, generalizes a BDD from Boolean to
// numeric terminals: the same shared graph represents a function from
// valuations to float64 values. ADD nodes live in the node table next to the
// BDD nodes and are collected the same way; terminal nodes are interned, so
// two terminals never carry the same value. ADD edges never carry a
// complementation mark.

// AddOperator describes the pointwise operations available on an AddApply.
type AddOperator int

const (
	AddPlus  AddOperator = iota // Addition
	AddMinus                    // Subtraction
	AddTimes                    // Multiplication
	AddMin                      // Minimum
	AddMax                      // Maximum
)

var addopnames = [5]string{
	AddPlus:  "plus",
	AddMinus: "minus",
	AddTimes: "times",
	AddMin:   "min",
	AddMax:   "max",
}

func (op AddOperator) String() string {
	return addopnames[op]
}

func addopres(op AddOperator, x, y float64) float64 {
	switch op {
	case AddPlus:
		return x + y
	case AddMinus:
		return x - y
	case AddTimes:
		return x * y
	case AddMin:
		if x < y {
			return x
		}
		return y
	default:
		if x > y {
			return x
		}
		return y
	}
}

// ************************************************************

// constant returns the edge of the terminal node carrying value v, creating
// and interning it on first use. Terminals are not stuck in the table: an
// unreferenced terminal is reclaimed like any other node, and dropped from
// the intern table by the collector.
func (b *BDD) constant(v float64) int {
	if k, ok := b.consts[v]; ok {
		return k << 1
	}
	res, err := b.allocnode()
	if err != nil {
		b.seterror("cannot allocate terminal for value %v: %s", v, err)
		return -1
	}
	b.produced++
	b.nodes[res] = ddnode{level: _MAXVAR, low: res << 1, high: res << 1, value: v}
	b.consts[v] = res
	return res << 1
}

// AddConst returns the terminal node carrying value v.
func (b *BDD) AddConst(v float64) Node {
	return b.retnode(b.constant(v))
}

// AddVal returns the value of a terminal node. We latch the error status and
// return 0 on internal or invalid nodes.
func (b *BDD) AddVal(n Node) float64 {
	if b.checkptr(n) != nil {
		b.seterror("wrong operand in call to AddVal")
		return 0
	}
	if !b.isconst(*n) {
		b.seterror("try to access the value of an internal node")
		return 0
	}
	return b.value(*n)
}

// IsConst reports whether n is a terminal node, which covers the constants
// True and False as well as ADD terminals.
func (b *BDD) IsConst(n Node) bool {
	if b.checkptr(n) != nil {
		return false
	}
	return b.isconst(*n)
}

// AddIthvar returns the ADD for the i'th variable: the function worth 1 when
// the variable is true and 0 otherwise. Unlike Ithvar, the result is not
// stuck in the table and must be referenced to be retained.
func (b *BDD) AddIthvar(i int) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		return b.seterror("unknown variable (%d) in call to AddIthvar", i)
	}
	b.initref()
	return b.retnode(b.makenode(int32(i), addzero, addone))
}

// ************************************************************

// AddApply performs a pointwise arithmetic operation on two ADDs, such as
// their sum or their pointwise minimum.
func (b *BDD) AddApply(left Node, right Node, op AddOperator) Node {
	if op < AddPlus || op > AddMax {
		return b.seterror("unauthorized operation (%d) in AddApply", op)
	}
	if b.checkptr(left) != nil {
		return b.seterror("wrong operand in call to AddApply %s (left)", op)
	}
	if b.checkptr(right) != nil {
		return b.seterror("wrong operand in call to AddApply %s (right)", op)
	}
	b.initref()
	b.pushref(*left)
	b.pushref(*right)
	res := b.addapply(*left, *right, op)
	b.popref(2)
	return b.retnode(res)
}

func (b *BDD) addapply(left, right int, op AddOperator) int {
	if left < 0 || right < 0 {
		return -1
	}
	// commutative operators are normalized so that both operand orders meet
	// in the same cache entry
	switch op {
	case AddPlus, AddTimes, AddMin, AddMax:
		if left > right {
			left, right = right, left
		}
	}
	switch op {
	case AddPlus:
		if left == addzero {
			return right
		}
	case AddMinus:
		if right == addzero {
			return left
		}
		if left == right {
			return addzero
		}
	case AddTimes:
		if left == addzero {
			return addzero
		}
		if left == addone {
			return right
		}
	case AddMin, AddMax:
		if left == right {
			return left
		}
	}
	if b.isconst(left) && b.isconst(right) {
		return b.constant(addopres(op, b.value(left), b.value(right)))
	}
	if res := b.matchadd(left, right, int(op)); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var low, high int
	var lvl int32
	switch {
	case leftlvl == rightlvl:
		low = b.pushref(b.addapply(b.low(left), b.low(right), op))
		high = b.pushref(b.addapply(b.high(left), b.high(right), op))
		lvl = leftlvl
	case leftlvl < rightlvl:
		low = b.pushref(b.addapply(b.low(left), right, op))
		high = b.pushref(b.addapply(b.high(left), right, op))
		lvl = leftlvl
	default:
		low = b.pushref(b.addapply(left, b.low(right), op))
		high = b.pushref(b.addapply(left, b.high(right), op))
		lvl = rightlvl
	}
	res := b.makenode(lvl, low, high)
	b.popref(2)
	if res < 0 {
		return -1
	}
	return b.setadd(left, right, int(op), res)
}

// ************************************************************

// AddIte selects between two ADDs with a BDD: the result maps a valuation to
// the value of g when f is true on it, and to the value of h otherwise.
func (b *BDD) AddIte(f, g, h Node) Node {
	if b.checkptr(f) != nil {
		return b.seterror("wrong operand in call to AddIte (f)")
	}
	if b.checkptr(g) != nil {
		return b.seterror("wrong operand in call to AddIte (g)")
	}
	if b.checkptr(h) != nil {
		return b.seterror("wrong operand in call to AddIte (h)")
	}
	b.initref()
	b.pushref(*f)
	b.pushref(*g)
	b.pushref(*h)
	res := b.addite(*f, *g, *h)
	b.popref(3)
	return b.retnode(res)
}

func (b *BDD) addite(f, g, h int) int {
	switch {
	case f == bddone:
		return g
	case f == bddzero:
		return h
	case g == h:
		return g
	}
	if f < 0 || g < 0 || h < 0 {
		return -1
	}
	if b.isconst(f) {
		// an arithmetic terminal cannot select a branch
		b.seterror("wrong condition in call to AddIte")
		return -1
	}
	if res := b.matchite(&b.additecache, f, g, h); res >= 0 {
		return res
	}
	p := b.level(f)
	q := b.level(g)
	r := b.level(h)
	low := b.pushref(b.addite(b.ite_low(p, q, r, f), b.ite_low(q, p, r, g), b.ite_low(r, p, q, h)))
	high := b.pushref(b.addite(b.ite_high(p, q, r, f), b.ite_high(q, p, r, g), b.ite_high(r, p, q, h)))
	res := b.makenode(min3(p, q, r), low, high)
	b.popref(2)
	if res < 0 {
		return -1
	}
	return b.setite(&b.additecache, f, g, h, res)
}

// ************************************************************

// BddToAdd converts a BDD to the 0/1 ADD of the same function.
func (b *BDD) BddToAdd(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to BddToAdd")
	}
	b.initref()
	b.pushref(*n)
	res := b.toadd(*n)
	b.popref(1)
	return b.retnode(res)
}

func (b *BDD) toadd(n int) int {
	// the 1 terminal is shared between the two kinds of diagrams
	if n == bddone {
		return addone
	}
	if n == bddzero {
		return addzero
	}
	if n < 0 {
		return -1
	}
	if res := b.matchadd(n, 0, cacheop_TOADD); res >= 0 {
		return res
	}
	low := b.pushref(b.toadd(b.low(n)))
	high := b.pushref(b.toadd(b.high(n)))
	res := b.makenode(b.level(n), low, high)
	b.popref(2)
	if res < 0 {
		return -1
	}
	return b.setadd(n, 0, cacheop_TOADD, res)
}

// AddToBdd converts an ADD back to a BDD: the result is true exactly on the
// valuations whose value is greater than or equal to the threshold.
func (b *BDD) AddToBdd(n Node, threshold float64) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to AddToBdd")
	}
	// the threshold is interned as a terminal, which both keys the cache and
	// keeps the value stable across collections
	t := b.constant(threshold)
	if t < 0 {
		return nil
	}
	b.initref()
	b.pushref(*n)
	b.pushref(t)
	res := b.tobdd(*n, t, threshold)
	b.popref(2)
	return b.retnode(res)
}

func (b *BDD) tobdd(n, t int, threshold float64) int {
	if n < 0 {
		return -1
	}
	if b.isconst(n) {
		if b.value(n) >= threshold {
			return bddone
		}
		return bddzero
	}
	if res := b.matchadd(n, t, cacheop_TOBDD); res >= 0 {
		return res
	}
	low := b.pushref(b.tobdd(b.low(n), t, threshold))
	high := b.pushref(b.tobdd(b.high(n), t, threshold))
	res := b.makenode(b.level(n), low, high)
	b.popref(2)
	if res < 0 {
		return -1
	}
	return b.setadd(n, t, cacheop_TOBDD, res)
}
