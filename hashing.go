// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

// Hash functions

func _TRIPLE(a, b, c, len int) int {
	return int(_PAIR64(uint64(c), _PAIR(a, b, len), uint64(len)))
}

// _PAIR is a mapping function that maps (bijectively) a pair of integers
// (a, b) into a unique integer. It is therefore a perfect hash: no collisions.
func _PAIR(a, b, len int) uint64 {
	return (((uint64(a+b) * uint64(a+b+1)) / 2) + uint64(a)) % uint64(len)
}

func _PAIR64(a, b, len uint64) uint64 {
	return (((((a + b) % len) * ((a + b + 1) % len)) / 2) + a) % len
}

// ************************************************************

// The hash key for Ite is the triple (f, g, h), with f and g regular per the
// canonicalization in ite. The same table shape serves AddIte.

func (b *BDD) matchite(bc *itecache, f, g, h int) int {
	entry := bc.table[_TRIPLE(f, g, h, len(bc.table))]
	if entry.a == f && entry.b == g && entry.c == h {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setite(bc *itecache, f, g, h, res int) int {
	bc.table[_TRIPLE(f, g, h, len(bc.table))] = cacheData{
		a:   f,
		b:   g,
		c:   h,
		res: res,
	}
	return res
}

// ************************************************************

// The hash key for a quantification is simply n; the id of the current
// variable set discriminates entries from older calls.

func (b *BDD) matchquant(n int) int {
	entry := b.quantcache.table[uint64(n)%uint64(len(b.quantcache.table))]
	if entry.a == n && entry.c == b.quantcache.id {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setquant(n int, res int) int {
	b.quantcache.table[uint64(n)%uint64(len(b.quantcache.table))] = cacheData{
		a:   n,
		c:   b.quantcache.id,
		res: res,
	}
	return res
}

// ************************************************************

// The hash key for AppEx is the pair (left, right); the id encodes both the
// variable set and the operator.

func (b *BDD) matchappex(left, right int) int {
	entry := b.appexcache.table[_PAIR(left, right, len(b.appexcache.table))]
	if entry.a == left && entry.b == right && entry.c == b.appexcache.id {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setappex(left, right, res int) int {
	b.appexcache.table[_PAIR(left, right, len(b.appexcache.table))] = cacheData{
		a:   left,
		b:   right,
		c:   b.appexcache.id,
		res: res,
	}
	return res
}

// ************************************************************

// The hash key for Replace is simply n; the replacer carries the id.

func (b *BDD) matchreplace(n int) int {
	entry := b.replacecache.table[uint64(n)%uint64(len(b.replacecache.table))]
	if entry.a == n && entry.c == b.replacecache.id {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setreplace(n int, res int) int {
	b.replacecache.table[uint64(n)%uint64(len(b.replacecache.table))] = cacheData{
		a:   n,
		c:   b.replacecache.id,
		res: res,
	}
	return res
}

// ************************************************************

// Compose and Restrict share the replacecache with two-operand keys; the id
// distinguishes them from Replace entries and carries the composed level.

func (b *BDD) matchpair(left, right int) int {
	entry := b.replacecache.table[_TRIPLE(left, right, b.replacecache.id, len(b.replacecache.table))]
	if entry.a == left && entry.b == right && entry.c == b.replacecache.id {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setpair(left, right, res int) int {
	b.replacecache.table[_TRIPLE(left, right, b.replacecache.id, len(b.replacecache.table))] = cacheData{
		a:   left,
		b:   right,
		c:   b.replacecache.id,
		res: res,
	}
	return res
}

// ************************************************************

// The hash key for arithmetic operations is the triple (left, right, op);
// conversions use the cacheop tags, which never collide with an operator.

func (b *BDD) matchadd(left, right, op int) int {
	entry := b.addcache.table[_TRIPLE(left, right, op, len(b.addcache.table))]
	if entry.a == left && entry.b == right && entry.c == op {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setadd(left, right, op, res int) int {
	b.addcache.table[_TRIPLE(left, right, op, len(b.addcache.table))] = cacheData{
		a:   left,
		b:   right,
		c:   op,
		res: res,
	}
	return res
}
