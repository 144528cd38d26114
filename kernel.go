// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// _MINFREENODES is the minimal percentage of nodes that has to be left free
// after a garbage collection, unless a resize should be done.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of levels in a manager. We use only the first
// 21 bits of the level field for encoding levels; bit 22 is the GC mark, bit
// 23 the death-row flag, and the value _MAXVAR itself is the level of
// terminal nodes.
const _MAXVAR int32 = 0x1FFFFF

// _MAXREFCOUNT is the maximal value of the reference counter, also used to
// stick nodes (constants and variables) in the table forever.
const _MAXREFCOUNT int32 = 0x3FF

// _DEFAULTMAXNODEINC is the default limit on the growth of the node table
// during a single resize, about one million nodes.
const _DEFAULTMAXNODEINC int = 1 << 20

// _SUBTABLEDENSITY is the number of entries tolerated per bucket in a level
// subtable before its bucket array is grown and rehashed.
const _SUBTABLEDENSITY int = 4

// BDD is a manager for Binary and Algebraic Decision Diagrams. It owns the
// node table, the unique (hash-consing) tables, the operation caches and the
// garbage collector. All operations on Nodes go through the manager that
// produced them; distinct managers are fully independent.
type BDD struct {
	varnum   int32 // number of variables
	varset   []int // edge of the positive literal for each variable
	refstack []int // protects nodes under construction from the collector
	error          // first error encountered, latched until Reset
	nodes      []ddnode        // all the nodes; slots 0 to 2 are reserved
	subtables  []subtable      // one unique table per level
	consts     map[float64]int // interned terminal nodes, by value
	freepos    int             // first free slot, 0 if none
	freenum    int             // number of free slots
	dead       int             // death row: external releases since the last sweep
	underflows int             // DelRef calls on an already released node
	produced   int             // total number of nodes ever produced
	logger     *log.Logger

	// tuning parameters, see config.go
	maxnodesize     int
	maxnodeincrease int
	minfreenodes    int
	deadratio       int

	gcstat    // history of garbage collections
	cacheStat // unique table and cache counters

	itecache     itecache     // cache for Ite results
	additecache  itecache     // cache for AddIte results
	quantcache   quantcache   // cache for Exist results
	appexcache   appexcache   // cache for AppEx results
	replacecache replacecache // cache for Replace, Compose and Restrict results
	addcache     addcache     // cache for arithmetic Apply and conversions

	quantset   []int32 // current variable set for quantifications
	quantsetID int32   // current id used in quantset
	quantlast  int32   // last variable in the current quantification set
}

// New initializes a manager with varnum variables. Typical initial table
// sizes (see Nodesize and Cachesize) are 10 000 nodes for small examples and
// up to 1 000 000 nodes for large ones; the initial size is not critical
// since tables are resized whenever a collection leaves too few free nodes.
func New(varnum int, options ...func(*configs)) (*BDD, error) {
	c := makeconfigs(varnum)
	for _, f := range options {
		f(c)
	}
	if varnum < 1 || int32(varnum) >= _MAXVAR {
		return nil, errors.Errorf("bad number of variables (%d)", varnum)
	}
	b := &BDD{}
	b.logger = c.logger
	if b.logger == nil {
		b.logger = log.New(io.Discard)
	}
	b.maxnodesize = c.maxnodesize
	b.maxnodeincrease = c.maxnodeincrease
	b.minfreenodes = c.minfreenodes
	b.deadratio = c.deadratio
	nodesize := c.nodesize
	if nodesize < varnum+8 {
		nodesize = varnum + 8
	}
	b.nodes = make([]ddnode, nodesize)
	b.nodes[0] = ddnode{low: -1}
	b.nodes[zeroterm] = ddnode{level: _MAXVAR, low: addzero, high: addzero, refcou: _MAXREFCOUNT, value: 0}
	b.nodes[oneterm] = ddnode{level: _MAXVAR, low: bddone, high: bddone, refcou: _MAXREFCOUNT, value: 1}
	for k := oneterm + 1; k < nodesize; k++ {
		b.nodes[k] = ddnode{low: -1, next: k + 1}
	}
	b.nodes[nodesize-1].next = 0
	b.freepos = oneterm + 1
	b.freenum = nodesize - oneterm - 1
	b.consts = map[float64]int{0: zeroterm, 1: oneterm}
	b.refstack = make([]int, 0, 2*varnum+4)
	b.gcstat.history = make([]gcpoint, 0)
	b.cacheinit(c.cachesize, c.cacheratio)
	if err := b.setVarnum(varnum); err != nil {
		return nil, errors.Wrap(err, "cannot initialize variables")
	}
	return b, nil
}

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// True returns the Node for the constant true.
func (b *BDD) True() Node {
	return bddtrue
}

// False returns the Node for the constant false.
func (b *BDD) False() Node {
	return bddfalse
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return bddtrue
	}
	return bddfalse
}

// Ithvar returns a Node for the i'th variable on success, otherwise we latch
// the error status of the manager and return the constant false. The
// requested variable must be in the range [0..Varnum).
func (b *BDD) Ithvar(i int) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		b.seterror("unknown variable (%d) in call to Ithvar", i)
		return bddfalse
	}
	// variables are stuck in the table, no need to reference count them
	return inode(b.varset[i])
}

// NIthvar returns a Node for the negation of the i'th variable, otherwise the
// constant false. See Ithvar for further info.
func (b *BDD) NIthvar(i int) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		b.seterror("unknown variable (%d) in call to NIthvar", i)
		return bddfalse
	}
	return inode(neg(b.varset[i]))
}

// Label returns the variable index of the root of n. We latch the error
// status and return -1 on constant or invalid nodes.
func (b *BDD) Label(n Node) int {
	if b.checkptr(n) != nil {
		b.seterror("illegal access to node in call to Label")
		return -1
	}
	if b.isconst(*n) {
		b.seterror("try to access label of constant node")
		return -1
	}
	return int(b.level(*n))
}

// Low returns the else branch of n, the cofactor by the negation of its root
// variable. We return nil if there is an error.
func (b *BDD) Low(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("illegal access to node in call to Low")
	}
	if b.isconst(*n) {
		return b.seterror("try to access a branch of a constant node")
	}
	return inode(b.low(*n))
}

// High returns the then branch of n. See Low.
func (b *BDD) High(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("illegal access to node in call to High")
	}
	if b.isconst(*n) {
		return b.seterror("try to access a branch of a constant node")
	}
	return inode(b.high(*n))
}

// Equal tests equivalence between nodes. Because of hash consing, two nodes
// of the same manager are equal exactly when they denote the same function.
func (b *BDD) Equal(low, high Node) bool {
	if low == high {
		return true
	}
	if low == nil || high == nil {
		return false
	}
	return *low == *high
}

// And returns the conjunction of a sequence of nodes.
func (b *BDD) And(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddtrue
	}
	return b.Apply(n[0], b.And(n[1:]...), OPand)
}

// Or returns the disjunction of a sequence of nodes.
func (b *BDD) Or(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddfalse
	}
	return b.Apply(n[0], b.Or(n[1:]...), OPor)
}

// Imp returns the logical implication between two nodes.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the logical bi-implication between two nodes.
func (b *BDD) Equiv(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPbiimp)
}

// AndExist returns the relational product of n1 and n2 with respect to
// varset, meaning the result of (Exist varset . n1 & n2).
func (b *BDD) AndExist(varset, n1, n2 Node) Node {
	return b.AppEx(n1, n2, OPand, varset)
}

// ************************************************************

// checkptr checks that n is a valid handle into the node table of b.
func (b *BDD) checkptr(n Node) error {
	if n == nil {
		return errors.New("nil node")
	}
	e := *n
	if e < 0 || (e>>1) >= len(b.nodes) {
		return errors.Errorf("node out of range (%d)", e)
	}
	if b.nodes[e>>1].low == -1 {
		return errors.Errorf("access to a freed node (%d)", e)
	}
	return nil
}

// checkbool checks that n does not point at an arithmetic terminal, which
// carries no Boolean branches to follow.
func (b *BDD) checkbool(n Node) error {
	if e := *n; b.isconst(e) && reg(e) != bddone {
		return errors.Errorf("arithmetic terminal (%v) in a Boolean operation", b.value(e))
	}
	return nil
}

// retnode creates a Node for external use. The result is only protected until
// the next operation on b; callers that retain it must AddRef it.
func (b *BDD) retnode(e int) Node {
	if e < 0 {
		return nil
	}
	if e == bddzero {
		return bddfalse
	}
	if e == bddone {
		return bddtrue
	}
	return inode(e)
}
