// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

// Not returns the negation of the expression corresponding to node n. With
// complemented edges this is a constant-time operation: we flip the
// complementation mark on the edge, and no node is created.
func (b *BDD) Not(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Not")
	}
	return b.retnode(neg(*n))
}

// Ite, short for if-then-else operator, computes the BDD for the expression
// [(f /\ g) \/ (not f /\ h)] more efficiently than doing the three operations
// separately.
func (b *BDD) Ite(f, g, h Node) Node {
	if b.checkptr(f) != nil {
		return b.seterror("wrong operand in call to Ite (f)")
	}
	if b.checkptr(g) != nil {
		return b.seterror("wrong operand in call to Ite (g)")
	}
	if b.checkptr(h) != nil {
		return b.seterror("wrong operand in call to Ite (h)")
	}
	if b.checkbool(f) != nil || b.checkbool(g) != nil || b.checkbool(h) != nil {
		return b.seterror("arithmetic terminal in call to Ite")
	}
	b.initref()
	b.pushref(*f)
	b.pushref(*g)
	b.pushref(*h)
	res := b.ite(*f, *g, *h)
	b.popref(3)
	return b.retnode(res)
}

// Apply performs all of the basic bdd operations with two operands, such as
// AND, OR etc. Left and right are the operands and op is the requested
// operation, one of the following:
//
//	Identifier    Description            Truth table
//
//	OPand         logical and            [0,0,0,1]
//	OPxor         logical xor            [0,1,1,0]
//	OPor          logical or             [0,1,1,1]
//	OPnand        logical not-and        [1,1,1,0]
//	OPnor         logical not-or         [1,0,0,0]
//	OPimp         implication            [1,1,0,1]
//	OPbiimp       equivalence            [1,0,0,1]
//	OPdiff        set difference         [0,0,1,0]
//	OPless        less than              [0,1,0,0]
//	OPinvimp      reverse implication    [1,0,1,1]
//
// Every operation is computed as an instance of Ite, so all of them share the
// same operation cache.
func (b *BDD) Apply(left Node, right Node, op Operator) Node {
	if b.checkptr(left) != nil {
		return b.seterror("wrong operand in call to Apply %s (left)", op)
	}
	if b.checkptr(right) != nil {
		return b.seterror("wrong operand in call to Apply %s (right)", op)
	}
	if b.checkbool(left) != nil || b.checkbool(right) != nil {
		return b.seterror("arithmetic terminal in call to Apply %s", op)
	}
	b.initref()
	b.pushref(*left)
	b.pushref(*right)
	res := b.applyop(*left, *right, op)
	b.popref(2)
	return b.retnode(res)
}

// applyop reduces a binary operation to an if-then-else. Negated operations
// complement the result edge, which is free.
func (b *BDD) applyop(left, right int, op Operator) int {
	switch op {
	case OPand:
		return b.ite(left, right, bddzero)
	case OPor:
		return b.ite(left, bddone, right)
	case OPxor:
		return b.ite(left, neg(right), right)
	case OPnand:
		if res := b.ite(left, right, bddzero); res >= 0 {
			return neg(res)
		}
	case OPnor:
		if res := b.ite(left, bddone, right); res >= 0 {
			return neg(res)
		}
	case OPimp:
		return b.ite(left, right, bddone)
	case OPbiimp:
		return b.ite(left, right, neg(right))
	case OPdiff:
		return b.ite(left, neg(right), bddzero)
	case OPless:
		return b.ite(left, bddzero, right)
	case OPinvimp:
		return b.ite(left, bddone, neg(right))
	default:
		b.seterror("unauthorized operation (%d) in apply", op)
	}
	return -1
}

// ite_low returns n if the level p of n is strictly higher than q or r,
// otherwise it returns n.low. This is used in function ite to know which node
// to follow: we always follow the smallest(s) nodes.
func (b *BDD) ite_low(p, q, r int32, n int) int {
	if (p > q) || (p > r) {
		return n
	}
	return b.low(n)
}

func (b *BDD) ite_high(p, q, r int32, n int) int {
	if (p > q) || (p > r) {
		return n
	}
	return b.high(n)
}

// before orders edges by level, then by node index, so that commutative
// canonicalization in ite has a total order to pick from even when both
// operands share their top variable.
func (b *BDD) before(x, y int) bool {
	if b.level(x) != b.level(y) {
		return b.level(x) < b.level(y)
	}
	return reg(x) < reg(y)
}

// min3 returns the smallest value between p, q and r. This is used in function
// ite to compute the smallest level.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

// ite computes the triple (f, g, h) after rewriting it to its canonical form:
// equivalent triples all reach the cache under the same key, so for instance
// (f AND g) and (g AND f) do not compute twice. The rewriting rules are the
// standard ones: arguments equal (or complementary) to f collapse to a
// constant, commutative forms put the lowest level first, and complement
// marks are pushed off f and g, onto the result for the latter.
func (b *BDD) ite(f, g, h int) int {
	switch {
	case f == bddone:
		return g
	case f == bddzero:
		return h
	case g == h:
		return g
	}
	if f == g {
		g = bddone
	} else if f == neg(g) {
		g = bddzero
	}
	if f == h {
		h = bddzero
	} else if f == neg(h) {
		h = bddone
	}
	switch {
	case g == h:
		return g
	case g == bddone && h == bddzero:
		return f
	case g == bddzero && h == bddone:
		return neg(f)
	}
	// we check for errors coming from a failed allocation below us
	if f < 0 || g < 0 || h < 0 {
		return -1
	}
	// commutative forms expose a choice of top variable; we pin the lowest
	// level in first position, breaking level ties on the node index so that
	// swapped operands reach the same cache entry
	switch {
	case g == bddone: // f OR h
		if b.before(h, f) {
			f, h = h, f
		}
	case h == bddzero: // f AND g
		if b.before(g, f) {
			f, g = g, f
		}
	case h == bddone: // f IMP g
		if b.before(g, f) {
			f, g = neg(g), neg(f)
		}
	case g == bddzero: // NOT f AND h
		if b.before(h, f) {
			f, h = neg(h), neg(f)
		}
	case g == neg(h): // f XOR h
		if b.before(g, f) {
			f, g, h = g, f, neg(f)
		}
	}
	// the first argument is made regular by swapping the branches, and the
	// second one by complementing the result
	if isneg(f) {
		f = neg(f)
		g, h = h, g
	}
	out := 0
	if isneg(g) {
		out = 1
		g = neg(g)
		h = neg(h)
	}
	if res := b.matchite(&b.itecache, f, g, h); res >= 0 {
		return res ^ out
	}
	p := b.level(f)
	q := b.level(g)
	r := b.level(h)
	low := b.pushref(b.ite(b.ite_low(p, q, r, f), b.ite_low(q, p, r, g), b.ite_low(r, p, q, h)))
	high := b.pushref(b.ite(b.ite_high(p, q, r, f), b.ite_high(q, p, r, g), b.ite_high(r, p, q, h)))
	res := b.makenode(min3(p, q, r), low, high)
	b.popref(2)
	if res < 0 {
		return -1
	}
	return b.setite(&b.itecache, f, g, h, res) ^ out
}
