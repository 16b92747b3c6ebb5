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
	"database/sql/driver"

	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// MarshalText implements the encoding.TextMarshaler interface.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// must be a valid decimal integer.
func (x *Int) UnmarshalText(text []byte) error {
	d, err := NewFromString(string(text))
	if err != nil {
		return err
	}
	*x = d
	return nil
}

// GetBSON implements the bson.Getter interface. Ints are stored as their
// decimal string; a Decimal128 would cap them at 34 digits.
func (x Int) GetBSON() (interface{}, error) {
	return x.String(), nil
}

// SetBSON implements the bson.Setter interface.
func (x *Int) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return errors.Wrap(err, "SetBSON")
	}
	return x.UnmarshalText([]byte(s))
}

// Value implements the database/sql/driver.Valuer interface. It sends x as
// its decimal string, which NUMERIC columns accept.
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// Scan implements the database/sql.Scanner interface. It accepts decimal
// strings, non-negative integers and NULL, which scans as 0.
func (x *Int) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*x = Int{}
		return nil
	case string:
		return x.UnmarshalText([]byte(src))
	case []byte:
		return x.UnmarshalText(src)
	case int64:
		if src < 0 {
			return errors.Wrapf(ErrInvalidOperation, "Scan: negative value %d", src)
		}
		*x = New(uint64(src))
		return nil
	default:
		return errors.Errorf("Scan: unsupported type %T", src)
	}
}
