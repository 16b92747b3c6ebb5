package int10

import (
	"math"

	"github.com/pkg/errors"
)

// Int represents an unsigned, base-10, multi-precision integer. Each index is
// a single base-10 digit, in reverse order as written. That is, [0] is the 1s
// digit, [1] 10s, [2] 100s, etc.
//
// A normalized Int is never empty and never has a leading (most significant)
// zero digit, except for 0 itself, which is {0}. All functions in this package
// return normalized values and never write into the backing array of an
// operand. A nil or empty Int is accepted as input and treated as 0.
type Int []Word

// Word is a single decimal digit, 0-9.
type Word uint8

const base = 10

// NewInt makes a new Int with value x.
func NewInt(x uint64) Int {
	if x == 0 {
		return Int{0}
	}
	var arr [20]Word
	i := 0
	for ; x != 0; i++ {
		arr[i] = Word(x % base)
		x /= base
	}
	a := make(Int, i)
	copy(a, arr[:i])
	return a
}

// NewIntString makes a new Int with value s. s must be non-empty and contain
// only characters 0-9. The second return value is false otherwise, in which
// case the returned Int is nil.
func NewIntString(s string) (Int, bool) {
	if s == "" {
		return nil, false
	}
	x := make(Int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		x[len(x)-i-1] = Word(c - '0')
	}
	return x.norm(), true
}

// norm drops leading zero digits, keeping at least one.
func (z Int) norm() Int {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return Int{0}
	}
	return z[:i]
}

// sigLen returns the number of digits of a not counting leading zeros. It is 0
// for any representation of 0.
func (a Int) sigLen() int {
	i := len(a)
	for i > 0 && a[i-1] == 0 {
		i--
	}
	return i
}

// at returns the digit at position i, or 0 past the end of a.
func (a Int) at(i int) Word {
	if i < len(a) {
		return a[i]
	}
	return 0
}

// Valid reports whether a is in normalized form with every digit in 0-9.
func (a Int) Valid() bool {
	if len(a) == 0 {
		return false
	}
	for _, d := range a {
		if d >= base {
			return false
		}
	}
	return len(a) == 1 || a[len(a)-1] != 0
}

// Uint64 returns a as a uint64. The second return value is false if a does not
// fit in a uint64.
func (a Int) Uint64() (uint64, bool) {
	var x uint64
	for i := a.sigLen() - 1; i >= 0; i-- {
		d := uint64(a[i])
		if x > (math.MaxUint64-d)/base {
			return 0, false
		}
		x = x*base + d
	}
	return x, true
}

// Cmp compares a and b and returns:
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
//
// Neither operand is modified.
func (a Int) Cmp(b Int) int {
	la, lb := a.sigLen(), b.sigLen()
	if la > lb {
		return 1
	}
	if lb > la {
		return -1
	}
	for i := la - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// Zero returns whether z is 0.
func (z Int) Zero() bool {
	return z.sigLen() == 0
}

// Equal returns whether a == b, digit for digit over the significant digits.
func (a Int) Equal(b Int) bool {
	n := a.sigLen()
	if n != b.sigLen() {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (z Int) String() string {
	n := z.sigLen()
	if n == 0 {
		return "0"
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[n-i-1] = byte(z[i] + '0')
	}
	return string(b)
}

// Add sets z to x+y.
func (z *Int) Add(x, y Int) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	r := make(Int, 0, n+1)
	var carry Word
	for i := 0; i < n; i++ {
		s := x.at(i) + y.at(i) + carry
		r = append(r, s%base)
		carry = s / base
	}
	if carry != 0 {
		r = append(r, carry)
	}
	*z = r.norm()
}

// Sub sets z to x-y and returns false. If x < y, z is set to 0 and the borrow
// bit d is true.
func (z *Int) Sub(x, y Int) (d bool) {
	if x.Cmp(y) < 0 {
		*z = Int{0}
		return true
	}
	n := x.sigLen()
	if n == 0 {
		*z = Int{0}
		return false
	}
	// Digit differences can go negative; keep them signed until every borrow
	// has been applied.
	scratch := make([]int16, n)
	for i := range scratch {
		scratch[i] = int16(x[i]) - int16(y.at(i))
	}
	for i := 0; i < n-1; i++ {
		if scratch[i] < 0 {
			scratch[i] += base
			scratch[i+1]--
		}
	}
	r := make(Int, n)
	for i, s := range scratch {
		if s < 0 || s >= base {
			panic(errors.Errorf("int10: %s-%s: digit %d out of range at position %d", x, y, s, i))
		}
		r[i] = Word(s)
	}
	*z = r.norm()
	return false
}

// Mul returns a*b, computed one digit of b at a time.
func (a Int) Mul(b Int) Int {
	c := Int{0}
	for i, d := range b {
		if d == 0 {
			continue
		}
		t := a.mul(d)
		t.Mul10(i)
		c.Add(c, t)
	}
	return c
}

// Mul10 multiplies a by 10^n and returns a. n must not be negative.
func (a *Int) Mul10(n int) *Int {
	if n < 0 {
		panic(errors.Errorf("int10: Mul10 by 10^%d", n))
	}
	if a.Zero() {
		*a = Int{0}
		return a
	}
	if n > 0 {
		*a = append(make(Int, n), *a...)
	}
	return a
}

// mul returns a*b for a single digit b.
func (a Int) mul(b Word) Int {
	if b == 0 {
		return Int{0}
	}
	r := make(Int, 0, len(a)+1)
	var carry Word
	for _, d := range a {
		// At most 9*9+8, which fits in a Word.
		p := d*b + carry
		r = append(r, p%base)
		carry = p / base
	}
	if carry != 0 {
		r = append(r, carry)
	}
	return r.norm()
}

// QuoRem returns the quotient a/b, rounded toward zero, and the remainder
// a-q*b. ok is false if b is 0.
//
// This is schoolbook long division: the dividend is consumed one digit at a
// time from the most significant end into a running remainder, and each
// quotient digit is found with smallQuotient.
func (a Int) QuoRem(b Int) (q, r Int, ok bool) {
	if b.Zero() {
		return nil, nil, false
	}
	q = Int{0}
	r = Int{0}
	for i := a.sigLen() - 1; i >= 0; i-- {
		r = append(Int{a[i]}, r...).norm()
		if r.Cmp(b) < 0 {
			continue
		}
		d := smallQuotient(r, b)
		r.Sub(r, b.mul(d))
		t := Int{d}
		t.Mul10(i)
		q.Add(q, t)
	}
	return q, r, true
}

// smallQuotient returns the largest q such that q*b <= a. The caller must
// guarantee that the result is a single digit; a larger quotient is a bug in
// the caller and panics.
func smallQuotient(a, b Int) Word {
	l := newLoop("smallQuotient", a, b, base-1)
	var q Word
	next := b
	for next.Cmp(a) <= 0 {
		if err := l.next(); err != nil {
			panic(err)
		}
		q++
		next.Add(next, b)
	}
	return q
}

// QuoWord returns a/w and a%w for a single digit w. It panics if w is 0 or not
// a digit.
func (a Int) QuoWord(w Word) (q Int, r Word) {
	if w == 0 || w >= base {
		panic(errors.Errorf("int10: QuoWord by %d", w))
	}
	n := a.sigLen()
	if n == 0 {
		return Int{0}, 0
	}
	q = make(Int, n)
	for i := n - 1; i >= 0; i-- {
		// r < w <= 9, so r*base+digit < 100 fits in a Word.
		t := r*base + a[i]
		q[i] = t / w
		r = t % w
	}
	return q.norm(), r
}
