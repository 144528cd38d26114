// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

// Exist returns the existential quantification of n for the variables in
// varset, where varset is a node built with a method such as Makeset. We
// return nil and set the error flag in b if there is an error.
func (b *BDD) Exist(n, varset Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong node in call to Exist")
	}
	if b.checkptr(varset) != nil {
		return b.seterror("wrong varset in call to Exist")
	}
	if b.checkbool(n) != nil {
		return b.seterror("arithmetic terminal in call to Exist")
	}
	if *varset == bddone { // empty set
		return n
	}
	if err := b.quantset2cache(*varset); err != nil {
		return nil
	}
	// the id embeds the variable set, so entries from a previous
	// quantification can never be mistaken for current ones
	b.quantcache.id = (*varset << 3) | cacheid_EXIST
	b.initref()
	b.pushref(*n)
	b.pushref(*varset)
	res := b.quant(*n)
	b.popref(2)
	return b.retnode(res)
}

// Forall returns the universal quantification of n for the variables in
// varset: the result is true for the valuations that map to true for every
// assignment of the variables in the set. It is computed as the negated
// existential quantification of the negation of n, with both negations free.
func (b *BDD) Forall(n, varset Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong node in call to Forall")
	}
	if b.checkptr(varset) != nil {
		return b.seterror("wrong varset in call to Forall")
	}
	if b.checkbool(n) != nil {
		return b.seterror("arithmetic terminal in call to Forall")
	}
	if *varset == bddone {
		return n
	}
	if err := b.quantset2cache(*varset); err != nil {
		return nil
	}
	b.quantcache.id = (*varset << 3) | cacheid_EXIST
	b.initref()
	b.pushref(neg(*n))
	b.pushref(*varset)
	res := b.quant(neg(*n))
	b.popref(2)
	if res < 0 {
		return nil
	}
	return b.retnode(neg(res))
}

func (b *BDD) quant(n int) int {
	if n < 0 {
		return -1
	}
	if b.isconst(n) || b.level(n) > b.quantlast {
		return n
	}
	// the hash for a quantification operation is simply n
	if res := b.matchquant(n); res >= 0 {
		return res
	}
	low := b.pushref(b.quant(b.low(n)))
	high := b.pushref(b.quant(b.high(n)))
	var res int
	if b.quantset[b.level(n)] == b.quantsetID {
		res = b.ite(high, bddone, low)
	} else {
		res = b.makenode(b.level(n), low, high)
	}
	b.popref(2)
	if res < 0 {
		return -1
	}
	return b.setquant(n, res)
}

// AppEx applies the binary operator op on the two operands left and right
// then performs an existential quantification over the variables in varset.
// This is done in a bottom up manner such that both the apply and
// quantification is done on the lower nodes before stepping up to the higher
// nodes. This makes AppEx much more efficient than an apply operation
// followed by a quantification. Note that, when op is a conjunction, this
// operation returns the relational product of two BDDs.
//
// Only the operators OPand to OPnor can be used in AppEx.
func (b *BDD) AppEx(left Node, right Node, op Operator, varset Node) Node {
	if op > OPnor {
		return b.seterror("operator %s not supported in call to AppEx", op)
	}
	if b.checkptr(varset) != nil {
		return b.seterror("wrong varset in call to AppEx")
	}
	if b.checkptr(left) != nil {
		return b.seterror("wrong operand in call to AppEx %s (left)", op)
	}
	if b.checkptr(right) != nil {
		return b.seterror("wrong operand in call to AppEx %s (right)", op)
	}
	if b.checkbool(left) != nil || b.checkbool(right) != nil {
		return b.seterror("arithmetic terminal in call to AppEx %s", op)
	}
	if *varset == bddone { // empty set
		return b.Apply(left, right, op)
	}
	if err := b.quantset2cache(*varset); err != nil {
		return nil
	}
	b.appexcache.op = op
	// the operator takes three bits so that it can never bleed into the
	// shifted variable set
	b.appexcache.id = (*varset << 3) | int(op)
	b.quantcache.id = (b.appexcache.id << 3) | cacheid_APPEX
	b.initref()
	b.pushref(*left)
	b.pushref(*right)
	b.pushref(*varset)
	res := b.appquant(*left, *right)
	b.popref(3)
	return b.retnode(res)
}

// constbit maps the constants true and false to 1 and 0, for indexing the
// truth tables in opres.
func constbit(e int) int {
	return (e & 1) ^ 1
}

func (b *BDD) appquant(left, right int) int {
	switch b.appexcache.op {
	case OPand:
		if left == bddzero || right == bddzero || left == neg(right) {
			return bddzero
		}
		if left == right {
			return b.quant(left)
		}
		if left == bddone {
			return b.quant(right)
		}
		if right == bddone {
			return b.quant(left)
		}
	case OPor:
		if left == bddone || right == bddone || left == neg(right) {
			return bddone
		}
		if left == right {
			return b.quant(left)
		}
		if left == bddzero {
			return b.quant(right)
		}
		if right == bddzero {
			return b.quant(left)
		}
	case OPxor:
		if left == right {
			return bddzero
		}
		if left == neg(right) {
			return bddone
		}
		if left == bddzero {
			return b.quant(right)
		}
		if right == bddzero {
			return b.quant(left)
		}
		if left == bddone {
			return b.quant(neg(right))
		}
		if right == bddone {
			return b.quant(neg(left))
		}
	case OPnand:
		if left == bddzero || right == bddzero || left == neg(right) {
			return bddone
		}
		if left == right {
			return b.quant(neg(left))
		}
		if left == bddone {
			return b.quant(neg(right))
		}
		if right == bddone {
			return b.quant(neg(left))
		}
	case OPnor:
		if left == bddone || right == bddone || left == neg(right) {
			return bddzero
		}
		if left == right {
			return b.quant(neg(left))
		}
		if left == bddzero {
			return b.quant(neg(right))
		}
		if right == bddzero {
			return b.quant(neg(left))
		}
	default:
		b.seterror("unauthorized operation (%s) in AppEx", b.appexcache.op)
		return -1
	}

	// we check for errors
	if left < 0 || right < 0 {
		return -1
	}

	// the case where the two operands are constants
	if b.isconst(left) && b.isconst(right) {
		if opres[b.appexcache.op][constbit(left)][constbit(right)] == 1 {
			return bddone
		}
		return bddzero
	}

	// and the case where we have no more variables to quantify
	if (b.level(left) > b.quantlast) && (b.level(right) > b.quantlast) {
		return b.applyop(left, right, b.appexcache.op)
	}

	// next we check if the operation is already in our cache
	if res := b.matchappex(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var low, high int
	var lvl int32
	switch {
	case leftlvl == rightlvl:
		low = b.pushref(b.appquant(b.low(left), b.low(right)))
		high = b.pushref(b.appquant(b.high(left), b.high(right)))
		lvl = leftlvl
	case leftlvl < rightlvl:
		low = b.pushref(b.appquant(b.low(left), right))
		high = b.pushref(b.appquant(b.high(left), right))
		lvl = leftlvl
	default:
		low = b.pushref(b.appquant(left, b.low(right)))
		high = b.pushref(b.appquant(left, b.high(right)))
		lvl = rightlvl
	}
	var res int
	if b.quantset[lvl] == b.quantsetID {
		res = b.ite(high, bddone, low)
	} else {
		res = b.makenode(lvl, low, high)
	}
	b.popref(2)
	if res < 0 {
		return -1
	}
	return b.setappex(left, right, res)
}
