// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file is adapted from https://github.com/robpike/ivy/blob/master/value/loop.go.

package int10

import "github.com/pkg/errors"

// loop bounds an iteration that is known to finish within a fixed number of
// steps. Going past the bound means the caller broke its own precondition.
type loop struct {
	name          string // The name of the function we are evaluating.
	i             uint64 // Loop count.
	maxIterations uint64 // When to give up.
	a, b          Int    // Arguments to the function; only used for diagnostic.
}

// newLoop returns a new loop checker. The arguments are the name of the
// function being evaluated, its arguments, and the maximum number of
// iterations to allow.
func newLoop(name string, a, b Int, maxIterations uint64) *loop {
	return &loop{
		name:          name,
		maxIterations: maxIterations,
		a:             a,
		b:             b,
	}
}

// next records one more iteration. It returns an error once the maximum
// number of iterations has been exceeded.
func (l *loop) next() error {
	l.i++
	if l.i > l.maxIterations {
		return errors.Errorf("%s(%s, %s): did not finish after %d iterations", l.name, l.a, l.b, l.maxIterations)
	}
	return nil
}
