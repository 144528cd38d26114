// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"math/big"

	"github.com/pkg/errors"
)

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n. We return a result using arbitrary-precision
// arithmetic to avoid possible overflows. The result is zero (and we set the
// error flag of b) if there is an error.
func (b *BDD) Satcount(n Node) *big.Int {
	res := big.NewInt(0)
	if b.checkptr(n) != nil {
		b.seterror("wrong operand in call to Satcount")
		return res
	}
	if b.checkbool(n) != nil {
		b.seterror("arithmetic terminal in call to Satcount")
		return res
	}
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, int(b.varlevel(*n)), 1)
	satc := make(map[int]*big.Int)
	return res.Mul(res, b.satcount(*n, satc))
}

// satcount memoizes on edges, not nodes, so the two polarities of a node are
// counted independently and the complement marks need no special casing.
func (b *BDD) satcount(n int, satc map[int]*big.Int) *big.Int {
	if n == bddone {
		return big.NewInt(1)
	}
	if n == bddzero {
		return big.NewInt(0)
	}
	res, ok := satc[n]
	if ok {
		return res
	}
	level := b.level(n)
	low := b.low(n)
	high := b.high(n)

	res = big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(b.varlevel(low)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(low, satc)))
	two = big.NewInt(0)
	two.SetBit(two, int(b.varlevel(high)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(high, satc)))
	satc[n] = res
	return res
}

// Allsat iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length varnum to f
// where each entry is either 0 if the variable is false, 1 if it is true, and
// -1 if it is a don't care. We stop and return an error if f returns an error
// at some point.
//
// The following is an example of a callback handler that counts the number of
// possible assignments (such that we do not count don't care twice):
//
//	acc := new(int)
//	b.Allsat(n, func(varset []int) error {
//	  *acc++
//	   return nil
//	 })
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	if b.checkptr(n) != nil {
		return errors.New("wrong node in call to Allsat")
	}
	if err := b.checkbool(n); err != nil {
		return errors.Wrap(err, "wrong node in call to Allsat")
	}
	prof := make([]int, b.varnum)
	for k := range prof {
		prof[k] = -1
	}
	// the function does not create new nodes, so we do not need to take care
	// of possible resizing
	return b.allsat(*n, prof, f)
}

func (b *BDD) allsat(n int, prof []int, f func([]int) error) error {
	if n == bddone {
		return f(prof)
	}
	if n == bddzero {
		return nil
	}

	if low := b.low(n); low != bddzero {
		prof[b.level(n)] = 0
		for v := b.varlevel(low) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(low, prof, f); err != nil {
			return err
		}
	}

	if high := b.high(n); high != bddzero {
		prof[b.level(n)] = 1
		for v := b.varlevel(high) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Allnodes applies function f over all the nodes accessible from the nodes in
// the sequence n..., or all the live nodes of the table if n is absent. The
// parameters to f are the slot of the node in the table, its level, and the
// edges to its low and high successors. An edge is twice the slot of its
// target, plus one when the edge is complemented; terminal nodes carry an
// edge to themselves and are reported at level Varnum. When starting from a
// sequence of roots, the two base terminals are always reported first. The
// order in which the other nodes are visited is not specified;
// we stop the computation and return an error if f returns an error at some
// point.
//
// The following is an example of a callback handler that counts the number of
// nodes in the representation of a function:
//
//	acc := new(int)
//	b.Allnodes(func(id, level, low, high int) error {
//	  *acc++
//	   return nil
//	 }, n)
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Node) error {
	for _, v := range n {
		if b.checkptr(v) != nil {
			return errors.New("wrong node in call to Allnodes")
		}
	}
	// the function does not create new nodes, so we do not need to take care
	// of possible resizing.
	if len(n) == 0 {
		return b.allnodes(f)
	}
	return b.allnodesfrom(f, n)
}

func (b *BDD) allnodes(f func(id, level, low, high int) error) error {
	for k := zeroterm; k < len(b.nodes); k++ {
		v := b.nodes[k]
		if v.low == -1 {
			continue
		}
		if err := f(k, int(b.varlevel(k<<1)), v.low, v.high); err != nil {
			return err
		}
	}
	return nil
}

func (b *BDD) allnodesfrom(f func(id, level, low, high int) error, n []Node) error {
	for _, v := range n {
		b.markrec(*v >> 1)
	}
	// the two base terminals are always reported, whether or not they are
	// reachable from the roots
	if err := f(zeroterm, int(b.varnum), addzero, addzero); err != nil {
		b.unmarkall()
		return err
	}
	if err := f(oneterm, int(b.varnum), bddone, bddone); err != nil {
		b.unmarkall()
		return err
	}
	for k := oneterm + 1; k < len(b.nodes); k++ {
		if !b.ismarked(k) {
			continue
		}
		b.unmarknode(k)
		v := b.nodes[k]
		if err := f(k, int(b.varlevel(k<<1)), v.low, v.high); err != nil {
			b.unmarkall()
			return err
		}
	}
	return nil
}

// ************************************************************

// Makeset returns a node corresponding to the conjunction (the cube) of all
// the variables in varset, in their positive form. It is such that
// Scanset(Makeset(a)) == a. It returns False and sets the error condition in
// b if one of the variables is outside the scope of the manager (see
// documentation for function Ithvar).
func (b *BDD) Makeset(varset []int) Node {
	res := bddtrue
	for _, level := range varset {
		tmp := b.Apply(res, b.Ithvar(level), OPand)
		if b.error != nil || tmp == nil {
			if res != bddtrue {
				b.DelRef(res)
			}
			return bddfalse
		}
		// the intermediate cube is referenced so that building the next
		// literal cannot collect it
		b.AddRef(tmp)
		if res != bddtrue {
			b.DelRef(res)
		}
		res = tmp
	}
	if res != bddtrue {
		b.DelRef(res)
	}
	return res
}

// Scanset returns the set of variables (levels) found when following the cube
// rooted at node n. This is the dual of function Makeset. The result may be
// nil if there is an error, and follows the level order.
func (b *BDD) Scanset(n Node) []int {
	if b.checkptr(n) != nil {
		return nil
	}
	if b.isconst(*n) {
		return nil
	}
	res := []int{}
	for i := *n; !b.isconst(i); {
		res = append(res, int(b.level(i)))
		next, err := b.cubenext(i)
		if err != nil {
			b.seterror("invalid cube in call to Scanset: %s", err)
			return nil
		}
		i = next
	}
	return res
}

// Support returns the cube of all the variables the function denoted by n
// depends on.
func (b *BDD) Support(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Support")
	}
	support := make([]bool, b.varnum)
	b.supportrec(*n>>1, support)
	b.unmarkall()
	varset := []int{}
	for k, v := range support {
		if v {
			varset = append(varset, k)
		}
	}
	return b.Makeset(varset)
}

func (b *BDD) supportrec(n int, support []bool) {
	if n <= oneterm || b.ismarked(n) || b.nodes[n].low == -1 {
		return
	}
	lvl := b.nodes[n].level & _MAXVAR
	if lvl == _MAXVAR {
		return
	}
	b.marknode(n)
	support[lvl] = true
	b.supportrec(b.nodes[n].low>>1, support)
	b.supportrec(b.nodes[n].high>>1, support)
}
