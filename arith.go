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

import "github.com/cockroachdb/largeint/int10"

// Add returns x+y.
func (x Int) Add(y Int) Int {
	var z int10.Int
	z.Add(x.abs(), y.abs())
	return makeInt(z)
}

// Sub returns x-y, or 0 if y > x.
func (x Int) Sub(y Int) Int {
	d, _ := x.sub(y)
	return d
}

// sub returns x-y and whether the result was clamped to zero.
func (x Int) sub(y Int) (Int, bool) {
	var z int10.Int
	clamped := z.Sub(x.abs(), y.abs())
	return makeInt(z), clamped
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return makeInt(x.abs().Mul(y.abs()))
}

// Quo returns x/y rounded toward zero. An error whose cause is
// ErrDivisionByZero is returned if y is 0.
func (x Int) Quo(y Int) (Int, error) {
	var d Int
	_, err := BaseContext.Quo(&d, x, y)
	return d, err
}

// QuoRem returns the quotient x/y rounded toward zero and the remainder
// x-q*y. An error whose cause is ErrDivisionByZero is returned if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	var d, m Int
	_, err = BaseContext.QuoRem(&d, &m, x, y)
	return d, m, err
}

// Pow returns x**y. 0**0 is 1.
func (x Int) Pow(y Int) Int {
	d, _ := x.pow(y, 0)
	return d
}

// pow computes x**y by squaring, halving the exponent one bit at a time. If
// maxDigits is not 0 and an intermediate result needed for the answer grows
// past it, pow stops and returns false.
func (x Int) pow(y Int, maxDigits int) (Int, bool) {
	base := x.abs()
	e := y.abs()
	z := one
	for {
		var bit int10.Word
		e, bit = e.QuoWord(2)
		if bit == 1 {
			z = z.Mul(base)
			if maxDigits > 0 && len(z) > maxDigits {
				return Int{}, false
			}
		}
		if e.Zero() {
			break
		}
		base = base.Mul(base)
		if maxDigits > 0 && len(base) > maxDigits {
			return Int{}, false
		}
	}
	return makeInt(z), true
}

// Inc sets z to z+1 and returns the new value.
func (z *Int) Inc() Int {
	*z = z.Add(New(1))
	return *z
}

// PostInc sets z to z+1 and returns the previous value.
func (z *Int) PostInc() Int {
	v := *z
	*z = z.Add(New(1))
	return v
}

// Dec sets z to z-1 and returns the new value. Decrementing 0 leaves it at 0.
func (z *Int) Dec() Int {
	*z = z.Sub(New(1))
	return *z
}

// PostDec sets z to z-1 and returns the previous value. Decrementing 0 leaves
// it at 0.
func (z *Int) PostDec() Int {
	v := *z
	*z = z.Sub(New(1))
	return v
}
