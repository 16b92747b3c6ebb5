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
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
)

func TestContextNewFromString(t *testing.T) {
	tests := []struct {
		c   *Context
		s   string
		r   string
		res Condition
		err error
	}{
		{c: &BaseContext, s: "123", r: "123"},
		{c: &BaseContext, s: "", r: "0", res: ConversionSyntax, err: ErrSyntax},
		{c: &BaseContext, s: "abc", r: "0", res: ConversionSyntax, err: ErrSyntax},
		{c: &LegacyContext, s: "", r: "0", res: ConversionSyntax},
		{c: &LegacyContext, s: "12x", r: "0", res: ConversionSyntax},
		{c: &LegacyContext, s: "0012", r: "12"},
	}
	for _, tc := range tests {
		t.Run(tc.s, func(t *testing.T) {
			d, res, err := tc.c.NewFromString(tc.s)
			if errors.Cause(err) != tc.err {
				t.Fatalf("expected error %v, got %v", tc.err, err)
			}
			if res != tc.res {
				t.Fatalf("expected %s, got %s", tc.res, res)
			}
			if s := d.String(); s != tc.r {
				t.Fatalf("expected: %s, got: %s", tc.r, s)
			}
		})
	}
}

func TestContextMaxDigits(t *testing.T) {
	c := BaseContext.WithMaxDigits(3)
	tests := []struct {
		name string
		f    func(d *Int) (Condition, error)
		r    string
		res  Condition
	}{
		{
			name: "Add",
			f:    func(d *Int) (Condition, error) { return c.Add(d, New(998), New(1)) },
			r:    "999",
		},
		{
			name: "Add overflow",
			f:    func(d *Int) (Condition, error) { return c.Add(d, New(999), New(1)) },
			r:    "0",
			res:  Overflow,
		},
		{
			name: "Mul overflow",
			f:    func(d *Int) (Condition, error) { return c.Mul(d, New(32), New(32)) },
			r:    "0",
			res:  Overflow,
		},
		{
			name: "Pow",
			f:    func(d *Int) (Condition, error) { return c.Pow(d, New(2), New(9)) },
			r:    "512",
		},
		{
			name: "Pow overflow",
			f:    func(d *Int) (Condition, error) { return c.Pow(d, New(2), New(10)) },
			r:    "0",
			res:  Overflow,
		},
		{
			name: "Pow huge exponent",
			f: func(d *Int) (Condition, error) {
				return c.Pow(d, New(2), newInt(t, "1000000000000000000000000000000"))
			},
			r:   "0",
			res: Overflow,
		},
		{
			name: "NewFromString overflow",
			f: func(d *Int) (res Condition, err error) {
				*d, res, err = c.NewFromString("1000")
				return res, err
			},
			r:   "0",
			res: Overflow,
		},
		{
			name: "NewFromBig overflow",
			f: func(d *Int) (res Condition, err error) {
				*d, res, err = c.NewFromBig(big.NewInt(1000))
				return res, err
			},
			r:   "0",
			res: Overflow,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := New(7)
			res, err := tc.f(&d)
			if res != tc.res {
				t.Fatalf("expected %s, got %s", tc.res, res)
			}
			if tc.res.Any() {
				if errors.Cause(err) != ErrOverflow {
					t.Fatalf("expected overflow, got %v", err)
				}
			} else if err != nil {
				t.Fatal(err)
			}
			if s := d.String(); s != tc.r {
				t.Fatalf("expected: %s, got: %s", tc.r, s)
			}
		})
	}
}

func TestContextSubClamped(t *testing.T) {
	var d Int
	res, err := BaseContext.Sub(&d, New(3), New(5))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Clamped() {
		t.Fatalf("expected clamped, got %s", res)
	}
	if !d.IsZero() {
		t.Fatalf("expected 0, got %s", d)
	}

	c := BaseContext
	c.Traps |= Clamped
	res, err = c.Sub(&d, New(3), New(5))
	if errors.Cause(err) != ErrClamped {
		t.Fatalf("expected clamped error, got %v", err)
	}
	if err.Error() != "Sub: clamped" {
		t.Fatalf("unexpected message: %s", err)
	}
	if !res.Clamped() {
		t.Fatalf("expected clamped, got %s", res)
	}

	res, err = c.Sub(&d, New(5), New(3))
	if err != nil || res.Any() {
		t.Fatalf("got %s, %v", res, err)
	}
	if s := d.String(); s != "2" {
		t.Fatalf("expected 2, got %s", s)
	}
}

func TestContextDivisionByZero(t *testing.T) {
	// DivisionByZero is an error even when it is not trapped.
	c := Context{}
	q, r := New(5), New(6)
	res, err := c.QuoRem(&q, &r, New(10), Int{})
	if errors.Cause(err) != ErrDivisionByZero {
		t.Fatalf("expected division by zero, got %v", err)
	}
	if !res.DivisionByZero() {
		t.Fatalf("expected flag, got %s", res)
	}
	if q.String() != "5" || r.String() != "6" {
		t.Fatalf("results changed: %s, %s", q, r)
	}
	if err.Error() != "QuoRem: division by zero" {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Quo(&q, New(10), Int{}); err == nil || err.Error() != "Quo: division by zero" {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.String() != "5" {
		t.Fatalf("quotient changed: %s", q)
	}
}

func TestContextQuoOverflow(t *testing.T) {
	c := BaseContext.WithMaxDigits(2)
	d := New(7)
	res, err := c.Quo(&d, New(12345), New(5))
	if errors.Cause(err) != ErrOverflow || err.Error() != "Quo: overflow" {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Overflow() || !d.IsZero() {
		t.Fatalf("got %s (%s), expected 0 with overflow", d, res)
	}
	if _, err := c.Quo(&d, New(12345), New(500)); err != nil || d.String() != "24" {
		t.Fatalf("got %s, %v", d, err)
	}
}

func TestContextNewFromBig(t *testing.T) {
	tests := []struct {
		b   string
		r   string
		res Condition
	}{
		{b: "0", r: "0"},
		{b: "1", r: "1"},
		{b: "1234145435656745634324524536456745634", r: "1234145435656745634324524536456745634"},
		{b: "-1", r: "0", res: InvalidOperation},
	}
	for _, tc := range tests {
		t.Run(tc.b, func(t *testing.T) {
			b, ok := new(big.Int).SetString(tc.b, 10)
			if !ok {
				t.Fatal("bad string")
			}
			d, res, err := BaseContext.NewFromBig(b)
			if res != tc.res {
				t.Fatalf("expected %s, got %s", tc.res, res)
			}
			if res.InvalidOperation() != (errors.Cause(err) == ErrInvalidOperation) {
				t.Fatalf("unexpected error: %v", err)
			}
			if s := d.String(); s != tc.r {
				t.Fatalf("expected: %s, got: %s", tc.r, s)
			}
			if res == 0 && d.Big().Cmp(b) != 0 {
				t.Fatalf("Big: expected %s, got %s", b, d.Big())
			}
		})
	}
}

func TestConditionString(t *testing.T) {
	tests := []struct {
		c Condition
		s string
	}{
		{c: 0, s: ""},
		{c: Overflow, s: "overflow"},
		{c: ConversionSyntax | Clamped, s: "conversion syntax, clamped"},
		{c: DivisionByZero | InvalidOperation, s: "division by zero, invalid operation"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(uint32(tc.c)), func(t *testing.T) {
			if s := tc.c.String(); s != tc.s {
				t.Fatalf("expected %q, got %q", tc.s, s)
			}
		})
	}
}

func TestConditionGoError(t *testing.T) {
	if _, err := Overflow.GoError(0); err != nil {
		t.Fatalf("untrapped overflow: %v", err)
	}
	if _, err := DivisionByZero.GoError(0); err != ErrDivisionByZero {
		t.Fatalf("untrapped division by zero: %v", err)
	}
	if _, err := (Overflow | ConversionSyntax).GoError(DefaultTraps); err != ErrSyntax {
		t.Fatalf("expected syntax error first, got %v", err)
	}
}
