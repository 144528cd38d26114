// Copyright (c) 2026 the gudd authors
//
// MIT License

/*
Package gudd implements the kernel of a decision-diagram package in the style
of the CUDD library: Binary Decision Diagrams (BDD) with complemented edges,
together with the algebraic (ADD) terminals needed to represent functions
from Boolean vectors to numbers.

# Basics

A manager is created with New and owns every node it ever produces. Each
manager has a fixed number of variables, declared at creation time (it can
only grow afterwards, see SetVarnum), and each variable is identified by an
integer position in the interval [0..Varnum), called a level.

Operations return a Node, a handle to an edge of the shared graph: the
address of a vertex plus a complementation mark meaning "the negation of the
function rooted here". Negation is therefore a constant-time operation, and
the two Boolean constants share a single vertex: True and False are the
regular and complemented edges to the same terminal. Nodes are hash-consed
through a unique table with one bucket array per level, so two Nodes obtained
from the same manager denote the same function exactly when Equal reports
them equal. A nil Node signals an operation that could not complete; the
manager keeps the first error (see Error) so that calls can be chained
without checking every intermediate result.

# Reference counting

The manager reclaims memory with an explicit mark-and-sweep collector, not
with Go finalizers. A Node that must survive past the call that produced it
has to be protected with AddRef and released with exactly one DelRef;
anything else may be reclaimed by a collection triggered inside a later
operation. Releasing a node does not free it: the node goes on death row and
is either resurrected by the unique table or swept by the next collection.
CheckZeroRef reports the number of still-referenced nodes and is intended for
leak detection in tests.

# Tuning

Table sizes, cache sizes and collection thresholds are configuration
parameters, not semantics: any setting gives the same results, only at a
different cost. They can be set with the functional options accepted by New
(Nodesize, Cachesize, Cacheratio, Maxnodesize, Maxnodeincrease, Minfreenodes,
Deadratio) or loaded from a TOML document with ReadTuning. Kernel events
(collections, resizes, audit failures) can be observed by installing a
charmbracelet/log logger with the Logger option; by default the manager is
silent.

# Scope

The kernel is single threaded: a manager must not be shared between
goroutines without external synchronization. Dynamic variable reordering,
import/export formats and extended-precision minterm counting are outside of
this package.
*/
package gudd
