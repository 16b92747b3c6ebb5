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
	"math/big"

	"github.com/cockroachdb/largeint/int10"
	"github.com/pkg/errors"
)

// Context maintains options for Int operations.
type Context struct {
	// MaxDigits is the largest number of digits a result may have before
	// Overflow is raised, in which case the result is set to 0. Zero (0)
	// disables the check.
	MaxDigits uint32
	// Traps are the conditions which will trigger an error result if the
	// corresponding Flag condition occurred. DivisionByZero is always an
	// error.
	Traps Condition
}

// DefaultTraps is the default trap set used by BaseContext.
const DefaultTraps = ConversionSyntax | DivisionByZero | InvalidOperation | Overflow

// BaseContext is a useful default Context. It has no digit limit and traps
// DefaultTraps.
var BaseContext = Context{
	Traps: DefaultTraps,
}

// LegacyContext is BaseContext without the ConversionSyntax trap: an empty or
// malformed string parses to 0 and only sets the flag.
var LegacyContext = Context{
	Traps: DefaultTraps &^ ConversionSyntax,
}

// WithMaxDigits returns a copy of c but with the specified digit limit.
func (c *Context) WithMaxDigits(n uint32) Context {
	r := *c
	r.MaxDigits = n
	return r
}

// goError converts res to an error named after the operation.
func (c *Context) goError(op string, res Condition) (Condition, error) {
	res, err := res.GoError(c.Traps)
	if err != nil {
		return res, errors.Wrap(err, op)
	}
	return res, nil
}

// set checks the digit limit, then stores x in d.
func (c *Context) set(d *Int, x Int) Condition {
	if c.MaxDigits > 0 && x.NumDigits() > int(c.MaxDigits) {
		*d = Int{}
		return Overflow
	}
	*d = x
	return 0
}

// NewFromString creates a new Int from s. If s is empty or holds anything but
// the digits 0-9 the result is 0 and ConversionSyntax is raised.
func (c *Context) NewFromString(s string) (Int, Condition, error) {
	var d Int
	v, ok := int10.NewIntString(s)
	if !ok {
		res, err := ConversionSyntax.GoError(c.Traps)
		if err != nil {
			err = errors.Wrapf(err, "parse %q", s)
		}
		return d, res, err
	}
	res, err := c.goError("NewFromString", c.set(&d, makeInt(v)))
	return d, res, err
}

// NewFromBig creates a new Int from b. A negative b raises InvalidOperation
// and yields 0.
func (c *Context) NewFromBig(b *big.Int) (Int, Condition, error) {
	var d Int
	if b.Sign() < 0 {
		res, err := c.goError("NewFromBig", InvalidOperation)
		return d, res, err
	}
	if c.MaxDigits > 0 && numDigits(b) > int64(c.MaxDigits) {
		res, err := c.goError("NewFromBig", Overflow)
		return d, res, err
	}
	v, ok := int10.NewIntString(b.Text(10))
	if !ok {
		panic(errors.Errorf("largeint: cannot parse big.Int %s", b))
	}
	d = makeInt(v)
	return d, 0, nil
}

// Add sets d to the sum x+y.
func (c *Context) Add(d *Int, x, y Int) (Condition, error) {
	return c.goError("Add", c.set(d, x.Add(y)))
}

// Sub sets d to the difference x-y. If y > x, d is set to 0 and Clamped is
// raised.
func (c *Context) Sub(d *Int, x, y Int) (Condition, error) {
	z, clamped := x.sub(y)
	res := c.set(d, z)
	if clamped {
		res |= Clamped
	}
	return c.goError("Sub", res)
}

// Mul sets d to the product x*y.
func (c *Context) Mul(d *Int, x, y Int) (Condition, error) {
	return c.goError("Mul", c.set(d, x.Mul(y)))
}

// Quo sets d to the quotient x/y rounded toward zero. y must not be 0.
func (c *Context) Quo(d *Int, x, y Int) (Condition, error) {
	qd, _, ok := x.abs().QuoRem(y.abs())
	if !ok {
		return c.goError("Quo", DivisionByZero)
	}
	return c.goError("Quo", c.set(d, makeInt(qd)))
}

// QuoRem sets q to the quotient x/y rounded toward zero and r to the
// remainder x-q*y. y must not be 0; if it is, DivisionByZero is raised and
// q and r are left unchanged.
func (c *Context) QuoRem(q, r *Int, x, y Int) (Condition, error) {
	qd, rd, ok := x.abs().QuoRem(y.abs())
	if !ok {
		return c.goError("QuoRem", DivisionByZero)
	}
	// The remainder is never longer than x, so only the quotient is checked.
	res := c.set(q, makeInt(qd))
	*r = makeInt(rd)
	return c.goError("QuoRem", res)
}

// Pow sets d to x**y. If MaxDigits is set, the computation stops as soon as
// the result is known to be too large.
func (c *Context) Pow(d *Int, x, y Int) (Condition, error) {
	z, ok := x.pow(y, int(c.MaxDigits))
	if !ok {
		*d = Int{}
		return c.goError("Pow", Overflow)
	}
	return c.goError("Pow", c.set(d, z))
}
