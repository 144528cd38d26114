// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// configs stores the values of the tuning parameters of a manager.
type configs struct {
	varnum          int // number of variables
	nodesize        int // initial number of slots in the node table
	cachesize       int // initial size of the operation caches
	cacheratio      int // ratio (%) between cache sizes and the node table, 0 if the caches have a fixed size
	maxnodesize     int // maximum total number of nodes (0 if no limit)
	maxnodeincrease int // maximum number of nodes added by one resize (0 if no limit)
	minfreenodes    int // minimum percentage of free nodes after a collection before a resize is triggered
	deadratio       int // percentage of released nodes that triggers a collection at an allocation boundary (0 to disable)
	logger          *log.Logger
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.minfreenodes = _MINFREENODES
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	// we build enough slots for the two terminals and one node per variable
	c.nodesize = 2*varnum + 8
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New
// it sets a preferred initial size for the node table. The table grows during
// computation whenever a collection leaves too few free slots; by default we
// only create enough room for the constants and the variables.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+8 {
			c.nodesize = size
		}
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in
// New it sets a limit on the number of nodes in the manager. An operation
// trying to raise the number of nodes above this limit fails and returns a
// nil Node. The default value (0) means that there is no limit, in which case
// allocation can panic if we exhaust all the available memory.
func Maxnodesize(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxnodeincrease is a configuration option (function). Used as a parameter
// in New it sets a limit on the increase in size of the node table. Below
// this limit we typically double the size of the table each time we need to
// resize it. The default value is about a million nodes. Set the value to
// zero to avoid imposing a limit.
func Maxnodeincrease(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodeincrease = size
	}
}

// Minfreenodes is a configuration option (function). Used as a parameter in
// New it sets the percentage of free nodes that has to be left after a
// garbage collection before the node table is resized. With a ratio of, say
// 25, we grow the table if a collection reclaims less than 25% of its
// capacity. The default value is 20%.
func Minfreenodes(ratio int) func(*configs) {
	return func(c *configs) {
		c.minfreenodes = ratio
	}
}

// Deadratio is a configuration option (function). Used as a parameter in New
// it arms the death-row trigger of the collector: when the number of released
// nodes exceeds this percentage of the table capacity, the next allocation
// runs a collection even if free slots remain. The default value (0) disables
// the trigger, so collections happen only on allocation failure or on
// explicit calls to GC.
func Deadratio(ratio int) func(*configs) {
	return func(c *configs) {
		c.deadratio = ratio
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the initial number of entries in the operation caches. The default
// is one entry for every five slots in the node table. See also Cacheratio.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Cacheratio is a configuration option (function). Used as a parameter in New
// it sets a cache ratio (%) so that caches grow each time the node table is
// resized. With a cache ratio of r, we keep r available entries in each cache
// for every 100 slots in the node table. The default value (0) means that the
// cache size never changes.
func Cacheratio(ratio int) func(*configs) {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// installs a logger for kernel events: garbage collections, table resizes and
// audit failures. The default logger discards everything.
func Logger(l *log.Logger) func(*configs) {
	return func(c *configs) {
		c.logger = l
	}
}

// ************************************************************

// Tuning is the serializable form of the configuration surface of a manager.
// Zero values leave the corresponding parameter at its default. It decodes
// from TOML documents such as:
//
//	nodesize = 100000
//	cachesize = 25000
//	cacheratio = 25
//	minfreenodes = 20
//	deadratio = 30
type Tuning struct {
	Nodesize        int `toml:"nodesize"`
	Cachesize       int `toml:"cachesize"`
	Cacheratio      int `toml:"cacheratio"`
	Maxnodesize     int `toml:"maxnodesize"`
	Maxnodeincrease int `toml:"maxnodeincrease"`
	Minfreenodes    int `toml:"minfreenodes"`
	Deadratio       int `toml:"deadratio"`
}

// ReadTuning decodes a TOML document describing tuning parameters.
func ReadTuning(r io.Reader) (*Tuning, error) {
	t := &Tuning{}
	if _, err := toml.NewDecoder(r).Decode(t); err != nil {
		return nil, errors.Wrap(err, "cannot decode tuning parameters")
	}
	for _, v := range []int{t.Nodesize, t.Cachesize, t.Cacheratio, t.Maxnodesize, t.Maxnodeincrease, t.Minfreenodes, t.Deadratio} {
		if v < 0 {
			return nil, errors.New("tuning parameters must be nonnegative")
		}
	}
	if t.Minfreenodes > 100 || t.Deadratio > 100 {
		return nil, errors.New("collection ratios are percentages and cannot exceed 100")
	}
	return t, nil
}

// Options turns the tuning parameters into the corresponding configuration
// options for New. Zero values contribute nothing.
func (t *Tuning) Options() []func(*configs) {
	opts := []func(*configs){}
	if t.Nodesize > 0 {
		opts = append(opts, Nodesize(t.Nodesize))
	}
	if t.Cachesize > 0 {
		opts = append(opts, Cachesize(t.Cachesize))
	}
	if t.Cacheratio > 0 {
		opts = append(opts, Cacheratio(t.Cacheratio))
	}
	if t.Maxnodesize > 0 {
		opts = append(opts, Maxnodesize(t.Maxnodesize))
	}
	if t.Maxnodeincrease > 0 {
		opts = append(opts, Maxnodeincrease(t.Maxnodeincrease))
	}
	if t.Minfreenodes > 0 {
		opts = append(opts, Minfreenodes(t.Minfreenodes))
	}
	if t.Deadratio > 0 {
		opts = append(opts, Deadratio(t.Deadratio))
	}
	return opts
}
