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

// Package largeint implements an arbitrary-precision, non-negative decimal
// integer.
//
// An Int holds one base-10 digit per element with the ones place first, and
// all arithmetic is done digit by digit with the schoolbook algorithms. Values
// are immutable: every operation returns a new Int and leaves its operands
// alone. There are no negative numbers; a subtraction that would go below zero
// yields zero.
//
// The methods on Int never fail except for division by zero. A Context adds
// a digit limit and turns conditions such as malformed input into errors, in
// the style of the General Decimal Arithmetic specification.
package largeint

import (
	"fmt"

	"github.com/cockroachdb/largeint/int10"
	"github.com/pkg/errors"
)

// Int is an arbitrary-precision, non-negative integer. The zero value is 0
// and ready to use. Int values may be copied freely.
type Int struct {
	// digits is normalized, or nil for the zero value. Methods must access it
	// through abs.
	digits int10.Int
}

var (
	zero = int10.NewInt(0)
	one  = int10.NewInt(1)
)

// abs returns the normalized digits of x.
func (x Int) abs() int10.Int {
	if len(x.digits) == 0 {
		return zero
	}
	return x.digits
}

// makeInt wraps normalized digits. It panics if d is not normalized, which
// can only happen if the digit arithmetic is broken.
func makeInt(d int10.Int) Int {
	if !d.Valid() {
		panic(errors.Errorf("largeint: invalid digits %v", []int10.Word(d)))
	}
	return Int{digits: d}
}

// New returns a new Int with value x.
func New(x uint64) Int {
	return Int{digits: int10.NewInt(x)}
}

// NewFromString parses s, which must be a non-empty string of the ASCII digits
// 0-9, into an Int. Leading zeros are allowed and dropped. Any other input
// returns an error whose cause is ErrSyntax. Use LegacyContext.NewFromString to
// get zero back for malformed input instead.
func NewFromString(s string) (Int, error) {
	d, _, err := BaseContext.NewFromString(s)
	return d, err
}

// String returns the canonical decimal representation of x: the digits from
// most to least significant with no leading zeros.
func (x Int) String() string {
	return x.abs().String()
}

// GoString returns x in a form suitable for %#v.
func (x Int) GoString() string {
	return fmt.Sprintf("largeint.Int{%s}", x.abs())
}

// NumDigits returns the number of decimal digits of x. It is 1 for 0.
func (x Int) NumDigits() int {
	return len(x.abs())
}

// IsZero returns whether x is 0.
func (x Int) IsZero() bool {
	return x.abs().Zero()
}

// Uint64 returns x as a uint64. If x cannot be represented in a uint64, an
// error is returned.
func (x Int) Uint64() (uint64, error) {
	v, ok := x.abs().Uint64()
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%s does not fit in a uint64", x)
	}
	return v, nil
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x Int) Cmp(y Int) int {
	return x.abs().Cmp(y.abs())
}

// Equal returns whether x == y.
func (x Int) Equal(y Int) bool {
	return x.abs().Equal(y.abs())
}

// Less returns whether x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// Greater returns whether x > y.
func (x Int) Greater(y Int) bool {
	return y.Less(x)
}

// LessOrEqual returns whether x <= y.
func (x Int) LessOrEqual(y Int) bool {
	return !y.Less(x)
}

// GreaterOrEqual returns whether x >= y.
func (x Int) GreaterOrEqual(y Int) bool {
	return !x.Less(y)
}
