// Copyright (c) 2026 the gudd authors
//
// MIT License

package gudd

import (
	"github.com/pkg/errors"
)

// errMemory reports that an allocation could not be satisfied even after a
// garbage collection and a resize attempt. It propagates up through every
// recursive frame of the operation that hit it.
var errMemory = errors.New("unable to free memory or resize the node table")

// Error returns the error status of the manager. We return an empty string if
// there are no errors.
func (b *BDD) Error() string {
	if b.error == nil {
		return ""
	}
	return b.error.Error()
}

// Errored reports whether an error occurred during a previous computation.
func (b *BDD) Errored() bool {
	return b.error != nil
}

// Reset clears the error status of the manager. Nodes obtained before the
// error are still valid.
func (b *BDD) Reset() {
	b.error = nil
}

// seterror latches an error on the manager and returns a nil Node, so that
// error paths in operations can return b.seterror(...) directly. When several
// errors accumulate, later ones wrap the first.
func (b *BDD) seterror(format string, a ...interface{}) Node {
	if b.error != nil {
		b.error = errors.Wrapf(b.error, format, a...)
		return nil
	}
	b.error = errors.Errorf(format, a...)
	b.logger.Debug("error latched on manager", "err", b.error)
	return nil
}
