// Copyright 2022 The Cockroach Authors.
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

import "math/big"

// NewFromBig returns a new Int with the value of b. A negative b returns an
// error whose cause is ErrInvalidOperation.
func NewFromBig(b *big.Int) (Int, error) {
	d, _, err := BaseContext.NewFromBig(b)
	return d, err
}

// Big returns x as a big.Int.
func (x Int) Big() *big.Int {
	var b big.Int
	if u, err := x.Uint64(); err == nil {
		return b.SetUint64(u)
	}
	if _, ok := b.SetString(x.String(), 10); !ok {
		panic("largeint: cannot format " + x.GoString())
	}
	return &b
}
