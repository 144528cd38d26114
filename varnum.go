// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

// SetVarnum extends the number of variables of the manager to num. The set of
// variables can only grow: levels already in use keep their nodes and their
// order, and the new variables are appended below them. We return an error,
// also latched on the manager, if num is not in the range [1..MAXVAR).
func (b *BDD) SetVarnum(num int) error {
	return b.setVarnum(num)
}

func (b *BDD) setVarnum(num int) error {
	if num < 1 || int32(num) >= _MAXVAR {
		b.seterror("bad number of variables (%d) in call to SetVarnum", num)
		return b.error
	}
	oldvarnum := b.varnum
	if int32(num) < oldvarnum {
		b.seterror("cannot shrink the number of variables (%d < %d)", num, oldvarnum)
		return b.error
	}
	if int32(num) == oldvarnum {
		return nil
	}
	for k := int(oldvarnum); k < num; k++ {
		b.subtables = append(b.subtables, makesubtable())
	}
	b.varnum = int32(num)
	b.initref()
	for k := int(oldvarnum); k < num; k++ {
		v := b.makenode(int32(k), bddzero, bddone)
		if v < 0 {
			b.varnum = oldvarnum
			b.seterror("cannot build variable %d in call to SetVarnum", k)
			return b.error
		}
		// variables are stuck in the table and never collected
		b.nodes[v>>1].refcou = _MAXREFCOUNT
		b.varset = append(b.varset, v)
	}
	// the quantification set is indexed by level, so it has to follow
	b.quantset = make([]int32, b.varnum)
	b.quantsetID = 0
	return nil
}
