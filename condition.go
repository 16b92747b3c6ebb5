// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package largeint

import (
	"strings"

	"github.com/pkg/errors"
)

// Condition holds condition flags.
type Condition uint32

const (
	// ConversionSyntax is raised when a string is empty or holds a character
	// other than 0-9.
	ConversionSyntax Condition = 1 << iota
	// DivisionByZero is raised for a zero divisor.
	DivisionByZero
	// InvalidOperation is raised for input outside the non-negative integers,
	// such as a negative big.Int.
	InvalidOperation
	// Overflow is raised when a result has more digits than the Context's
	// MaxDigits.
	Overflow
	// Clamped is raised when a subtraction would go below zero and the result
	// was set to zero instead.
	Clamped
)

// Errors returned by Condition.GoError. Use errors.Cause to compare an error
// returned from this package against them.
var (
	ErrSyntax           = errors.New("invalid syntax")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrOverflow         = errors.New("overflow")
	ErrClamped          = errors.New("clamped")
)

// Any returns true if any flag is true.
func (r Condition) Any() bool { return r != 0 }

// ConversionSyntax returns true if the ConversionSyntax flag is set.
func (r Condition) ConversionSyntax() bool { return r&ConversionSyntax != 0 }

// DivisionByZero returns true if the DivisionByZero flag is set.
func (r Condition) DivisionByZero() bool { return r&DivisionByZero != 0 }

// InvalidOperation returns true if the InvalidOperation flag is set.
func (r Condition) InvalidOperation() bool { return r&InvalidOperation != 0 }

// Overflow returns true if the Overflow flag is set.
func (r Condition) Overflow() bool { return r&Overflow != 0 }

// Clamped returns true if the Clamped flag is set.
func (r Condition) Clamped() bool { return r&Clamped != 0 }

// GoError converts r to an error based on the given traps and returns r.
// DivisionByZero is always an error, whether trapped or not. When several
// trapped flags are set, the first in declaration order wins.
func (r Condition) GoError(traps Condition) (Condition, error) {
	set := r & (traps | DivisionByZero)
	switch {
	case set.ConversionSyntax():
		return r, ErrSyntax
	case set.DivisionByZero():
		return r, ErrDivisionByZero
	case set.InvalidOperation():
		return r, ErrInvalidOperation
	case set.Overflow():
		return r, ErrOverflow
	case set.Clamped():
		return r, ErrClamped
	}
	return r, nil
}

func (r Condition) String() string {
	var names []string
	for i := Condition(1); r != 0; i <<= 1 {
		if r&i == 0 {
			continue
		}
		r ^= i
		var s string
		switch i {
		case ConversionSyntax:
			s = "conversion syntax"
		case DivisionByZero:
			s = "division by zero"
		case InvalidOperation:
			s = "invalid operation"
		case Overflow:
			s = "overflow"
		case Clamped:
			s = "clamped"
		default:
			panic(errors.Errorf("unknown condition %d", i))
		}
		names = append(names, s)
	}
	return strings.Join(names, ", ")
}
