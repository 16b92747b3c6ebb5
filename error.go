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

// ErrInt performs operations on Ints and collects errors during operations.
// If an error is already set, the operation is skipped. Designed to be used
// for many operations in a row, with a single error check at the end.
type ErrInt struct {
	err   error
	Ctx   *Context
	Flags Condition
}

// MakeErrInt creates a ErrInt with Context c.
func MakeErrInt(c *Context) ErrInt {
	return ErrInt{
		Ctx: c,
	}
}

// Err returns the first error encountered or nil.
func (e *ErrInt) Err() error {
	return e.err
}

func (e *ErrInt) op(f func(c *Context) (Condition, error)) {
	if e.err != nil {
		return
	}
	res, err := f(e.Ctx)
	e.Flags |= res
	e.err = err
}

// NewFromString performs e.Ctx.NewFromString(s) and returns the Int, or 0 if
// an error is already set.
func (e *ErrInt) NewFromString(s string) Int {
	var d Int
	e.op(func(c *Context) (res Condition, err error) {
		d, res, err = c.NewFromString(s)
		return res, err
	})
	return d
}

// Add performs e.Ctx.Add(d, x, y) and returns d.
func (e *ErrInt) Add(d *Int, x, y Int) *Int {
	e.op(func(c *Context) (Condition, error) { return c.Add(d, x, y) })
	return d
}

// Sub performs e.Ctx.Sub(d, x, y) and returns d.
func (e *ErrInt) Sub(d *Int, x, y Int) *Int {
	e.op(func(c *Context) (Condition, error) { return c.Sub(d, x, y) })
	return d
}

// Mul performs e.Ctx.Mul(d, x, y) and returns d.
func (e *ErrInt) Mul(d *Int, x, y Int) *Int {
	e.op(func(c *Context) (Condition, error) { return c.Mul(d, x, y) })
	return d
}

// Quo performs e.Ctx.Quo(d, x, y) and returns d.
func (e *ErrInt) Quo(d *Int, x, y Int) *Int {
	e.op(func(c *Context) (Condition, error) { return c.Quo(d, x, y) })
	return d
}

// QuoRem performs e.Ctx.QuoRem(q, r, x, y) and returns q.
func (e *ErrInt) QuoRem(q, r *Int, x, y Int) *Int {
	e.op(func(c *Context) (Condition, error) { return c.QuoRem(q, r, x, y) })
	return q
}

// Pow performs e.Ctx.Pow(d, x, y) and returns d.
func (e *ErrInt) Pow(d *Int, x, y Int) *Int {
	e.op(func(c *Context) (Condition, error) { return c.Pow(d, x, y) })
	return d
}
