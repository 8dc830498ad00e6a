//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package bignum

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/bits"
	"strconv"

	"github.com/pkg/errors"

	"github.com/lazyproduct/lazyproduct/internal"
)

// Fixed returns the uint64-backed binding. It is the cheaper choice for
// spaces whose total size fits in 64 bits; arithmetic that leaves that
// range sets a sticky overflow bit on the resulting value instead of
// silently truncating.
func Fixed() Arith {
	return fixedArith{}
}

type fixedArith struct{}

func (fixedArith) New(v uint64) Int {
	return fixed64{v: v}
}

func (fixedArith) Parse(s string) (Int, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q as a fixed-width integer", s)
	}
	return fixed64{v: v}, nil
}

func (fixedArith) Zero() Int {
	return fixed64{}
}

func (fixedArith) One() Int {
	return fixed64{v: 1}
}

func (fixedArith) RandRange(reader io.Reader, upper Int) (Int, error) {
	if reader == nil {
		reader = crand.Reader
	}
	u := asFixed64(upper, "RandRange")
	draw, err := internal.UniformUint64(reader, u.v)
	if err != nil {
		return nil, err
	}
	return fixed64{v: draw}, nil
}

func (fixedArith) Name() string {
	return "fixed64"
}

// fixed64 carries the value and the sticky overflow bit. Every operation
// propagates the bit from both operands.
type fixed64 struct {
	v   uint64
	ovf bool
}

func asFixed64(rhs Int, op string) fixed64 {
	f, ok := rhs.(fixed64)
	if !ok {
		panic(fmt.Sprintf("bignum: %s operand is %T, not a fixed64 value; bindings cannot be mixed", op, rhs))
	}
	return f
}

func (l fixed64) Add(rhs Int) Int {
	r := asFixed64(rhs, "Add")
	sum, carry := bits.Add64(l.v, r.v, 0)
	return fixed64{v: sum, ovf: l.ovf || r.ovf || carry != 0}
}

func (l fixed64) Sub(rhs Int) Int {
	r := asFixed64(rhs, "Sub")
	diff, borrow := bits.Sub64(l.v, r.v, 0)
	return fixed64{v: diff, ovf: l.ovf || r.ovf || borrow != 0}
}

func (l fixed64) Mul(rhs Int) Int {
	r := asFixed64(rhs, "Mul")
	hi, lo := bits.Mul64(l.v, r.v)
	return fixed64{v: lo, ovf: l.ovf || r.ovf || hi != 0}
}

func (l fixed64) Div(rhs Int) Int {
	r := asFixed64(rhs, "Div")
	return fixed64{v: l.v / r.v, ovf: l.ovf || r.ovf}
}

func (l fixed64) Mod(rhs Int) Int {
	r := asFixed64(rhs, "Mod")
	return fixed64{v: l.v % r.v, ovf: l.ovf || r.ovf}
}

func (l fixed64) Cmp(rhs Int) int {
	r := asFixed64(rhs, "Cmp")
	switch {
	case l.v < r.v:
		return -1
	case l.v > r.v:
		return 1
	default:
		return 0
	}
}

func (l fixed64) Uint64() uint64 {
	return l.v
}

func (l fixed64) IsZero() bool {
	return l.v == 0
}

func (l fixed64) Clone() Int {
	return l
}

func (l fixed64) Overflowed() bool {
	return l.ovf
}

func (l fixed64) String() string {
	return strconv.FormatUint(l.v, 10)
}
