// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var _REPLACEID = 1

// Replacer is the type of association lists used to replace variables in a
// BDD node.
type Replacer interface {
	Replace(int32) (int32, bool)
	Id() int
}

type replacer struct {
	id    int     // unique identifier used for caching intermediate results
	image []int32 // map the level of old variables to the level of new variables
	last  int32   // last index in the Replacer, to speed up computations
}

func (r *replacer) String() string {
	res := fmt.Sprintf("replacer(last: %d)[", r.last)
	first := true
	for k, v := range r.image {
		if k != int(v) {
			if !first {
				res += ", "
			}
			first = false
			res += fmt.Sprintf("%d<-%d", k, v)
		}
	}
	return res + "]"
}

func (r *replacer) Replace(level int32) (int32, bool) {
	if level > r.last {
		return level, false
	}
	return r.image[level], true
}

func (r *replacer) Id() int {
	return r.id
}

// NewReplacer returns a Replacer for substituting variable oldvars[k] with
// newvars[k]. We return an error if the two slices do not have the same
// length or if we find the same index twice in either of them. All values
// must be in [0..Varnum).
func (b *BDD) NewReplacer(oldvars []int, newvars []int) (Replacer, error) {
	res := &replacer{}
	if len(oldvars) != len(newvars) {
		return nil, errors.New("unmatched length of slices")
	}
	if _REPLACEID == (math.MaxInt32 >> 2) {
		return nil, errors.New("too many replacers created")
	}
	res.id = (_REPLACEID << 2) | cacheid_REPLACE
	_REPLACEID++
	varnum := b.Varnum()
	support := make([]bool, varnum)
	res.image = make([]int32, varnum)
	for k := range res.image {
		res.image[k] = int32(k)
	}
	for k, v := range oldvars {
		if v < 0 || v >= varnum {
			return nil, errors.Errorf("invalid variable in oldvars (%d)", v)
		}
		if support[v] {
			return nil, errors.Errorf("duplicate variable (%d) in oldvars", v)
		}
		if newvars[k] < 0 || newvars[k] >= varnum {
			return nil, errors.Errorf("invalid variable in newvars (%d)", newvars[k])
		}
		support[v] = true
		res.image[v] = int32(newvars[k])
		if int32(v) > res.last {
			res.last = int32(v)
		}
	}
	for _, v := range newvars {
		if int(res.image[v]) != v {
			return nil, errors.Errorf("variable in newvars (%d) also occur in oldvars", v)
		}
	}
	return res, nil
}

// ************************************************************

// Replace takes a Replacer and computes the result of n after replacing old
// variables with new ones. See type Replacer.
func (b *BDD) Replace(n Node, r Replacer) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Replace")
	}
	b.initref()
	b.pushref(*n)
	b.replacecache.id = r.Id()
	res := b.retnode(b.replace(*n, r))
	b.popref(1)
	return res
}

// replace commutes with complementation, so we factor the mark out of the
// edge and put it back on the result; the cache only ever holds regular keys.
func (b *BDD) replace(n int, r Replacer) int {
	if n < 0 {
		return -1
	}
	s := n & 1
	n = reg(n)
	image, ok := r.Replace(b.level(n))
	if !ok {
		return n ^ s
	}
	if res := b.matchreplace(n); res >= 0 {
		return res ^ s
	}
	low := b.pushref(b.replace(b.low(n), r))
	high := b.pushref(b.replace(b.high(n), r))
	res := b.correctify(image, low, high)
	b.popref(2)
	if res < 0 {
		return -1
	}
	return b.setreplace(n, res) ^ s
}

func (b *BDD) correctify(level int32, low, high int) int {
	if low < 0 || high < 0 {
		return -1
	}
	if (level < b.level(low)) && (level < b.level(high)) {
		return b.makenode(level, low, high)
	}

	if (level == b.level(low)) || (level == b.level(high)) {
		b.seterror("error in replace; level %d occurs below its image", level)
		return -1
	}

	if b.level(low) == b.level(high) {
		left := b.pushref(b.correctify(level, b.low(low), b.low(high)))
		right := b.pushref(b.correctify(level, b.high(low), b.high(high)))
		res := b.makenode(b.level(low), left, right)
		b.popref(2)
		return res
	}

	if b.level(low) < b.level(high) {
		left := b.pushref(b.correctify(level, b.low(low), high))
		right := b.pushref(b.correctify(level, b.high(low), high))
		res := b.makenode(b.level(low), left, right)
		b.popref(2)
		return res
	}

	left := b.pushref(b.correctify(level, low, b.low(high)))
	right := b.pushref(b.correctify(level, low, b.high(high)))
	res := b.makenode(b.level(high), left, right)
	b.popref(2)
	return res
}

// ************************************************************

// Compose substitutes the function g for the variable v inside f. This is a
// functional composition, not a renaming: the result is f[v := g].
func (b *BDD) Compose(f, g Node, v int) Node {
	if b.checkptr(f) != nil {
		return b.seterror("wrong operand in call to Compose (f)")
	}
	if b.checkptr(g) != nil {
		return b.seterror("wrong operand in call to Compose (g)")
	}
	if v < 0 || int32(v) >= b.varnum {
		return b.seterror("unknown variable (%d) in call to Compose", v)
	}
	if b.checkbool(f) != nil || b.checkbool(g) != nil {
		return b.seterror("arithmetic terminal in call to Compose")
	}
	b.replacecache.id = (v << 2) | cacheid_COMPOSE
	b.initref()
	b.pushref(*f)
	b.pushref(*g)
	res := b.compose(*f, *g, int32(v))
	b.popref(2)
	return b.retnode(res)
}

func (b *BDD) compose(f, g int, v int32) int {
	if f < 0 || g < 0 {
		return -1
	}
	if b.level(f) > v {
		return f
	}
	if b.level(f) == v {
		return b.ite(g, b.high(f), b.low(f))
	}
	if res := b.matchpair(f, g); res >= 0 {
		return res
	}
	low := b.pushref(b.compose(b.low(f), g, v))
	high := b.pushref(b.compose(b.high(f), g, v))
	// since g can contain variables above the level of f, we rebuild the
	// node with an if-then-else on the root variable instead of makenode
	res := b.ite(b.varset[b.level(f)], high, low)
	b.popref(2)
	if res < 0 {
		return -1
	}
	return b.setpair(f, g, res)
}

// ************************************************************

// Restrict computes the cofactor of n by a cube: every variable of the cube
// is fixed to the polarity of its literal and disappears from the result.
// The cube must be a conjunction of literals, such as built with Makeset.
func (b *BDD) Restrict(n, cube Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Restrict")
	}
	if b.checkptr(cube) != nil {
		return b.seterror("wrong cube in call to Restrict")
	}
	for e := *cube; e != bddone; {
		if b.isconst(e) {
			return b.seterror("invalid cube in call to Restrict")
		}
		next, err := b.cubenext(e)
		if err != nil {
			return b.seterror("invalid cube in call to Restrict: %s", err)
		}
		e = next
	}
	if *cube == bddone {
		return n
	}
	b.replacecache.id = cacheid_RESTRICT
	b.initref()
	b.pushref(*n)
	b.pushref(*cube)
	res := b.restrict(*n, *cube)
	b.popref(2)
	return b.retnode(res)
}

func (b *BDD) restrict(n, cube int) int {
	if n < 0 || cube < 0 {
		return -1
	}
	if b.isconst(n) {
		return n
	}
	// literals above the top variable of n restrict nothing
	for !b.isconst(cube) && b.level(cube) < b.level(n) {
		cube, _ = b.cubenext(cube)
	}
	if b.isconst(cube) {
		return n
	}
	if res := b.matchpair(n, cube); res >= 0 {
		return res
	}
	var res int
	if b.level(cube) == b.level(n) {
		rest, _ := b.cubenext(cube)
		if b.low(cube) == bddzero {
			// positive literal, keep the then branch
			res = b.restrict(b.high(n), rest)
		} else {
			res = b.restrict(b.low(n), rest)
		}
	} else {
		low := b.pushref(b.restrict(b.low(n), cube))
		high := b.pushref(b.restrict(b.high(n), cube))
		res = b.makenode(b.level(n), low, high)
		b.popref(2)
	}
	if res < 0 {
		return -1
	}
	return b.setpair(n, cube, res)
}

// cubenext returns the continuation of a cube below its top literal. In a
// cube exactly one branch of every internal node is the constant false.
func (b *BDD) cubenext(e int) (int, error) {
	if b.low(e) == bddzero {
		return b.high(e), nil
	}
	if b.high(e) == bddzero {
		return b.low(e), nil
	}
	return -1, errors.Errorf("node is not part of a cube")
}
