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
	"math/big"

	"github.com/pkg/errors"
)

// Arb returns the arbitrary-precision binding backed by math/big. It is
// required whenever the total space size can exceed the 64-bit range and
// never overflows.
func Arb() Arith {
	return arbArith{}
}

type arbArith struct{}

func (arbArith) New(v uint64) Int {
	return &arb{v: new(big.Int).SetUint64(v)}
}

func (arbArith) Parse(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("parsing %q as a base-10 integer", s)
	}
	if v.Sign() < 0 {
		return nil, errors.Errorf("parsing %q: value cannot be negative", s)
	}
	return &arb{v: v}, nil
}

func (arbArith) Zero() Int {
	return &arb{v: new(big.Int)}
}

func (arbArith) One() Int {
	return &arb{v: big.NewInt(1)}
}

func (arbArith) RandRange(reader io.Reader, upper Int) (Int, error) {
	if reader == nil {
		reader = crand.Reader
	}
	u := asArb(upper, "RandRange")
	bound := new(big.Int).Add(u.v, big.NewInt(1))
	draw, err := crand.Int(reader, bound)
	if err != nil {
		return nil, errors.Wrap(err, "drawing random value")
	}
	return &arb{v: draw}, nil
}

func (arbArith) Name() string {
	return "arb"
}

type arb struct {
	v *big.Int
}

func asArb(rhs Int, op string) *arb {
	a, ok := rhs.(*arb)
	if !ok {
		panic(fmt.Sprintf("bignum: %s operand is %T, not an arbitrary-precision value; bindings cannot be mixed", op, rhs))
	}
	return a
}

func (l *arb) Add(rhs Int) Int {
	return &arb{v: new(big.Int).Add(l.v, asArb(rhs, "Add").v)}
}

func (l *arb) Sub(rhs Int) Int {
	return &arb{v: new(big.Int).Sub(l.v, asArb(rhs, "Sub").v)}
}

func (l *arb) Mul(rhs Int) Int {
	return &arb{v: new(big.Int).Mul(l.v, asArb(rhs, "Mul").v)}
}

func (l *arb) Div(rhs Int) Int {
	return &arb{v: new(big.Int).Div(l.v, asArb(rhs, "Div").v)}
}

func (l *arb) Mod(rhs Int) Int {
	return &arb{v: new(big.Int).Mod(l.v, asArb(rhs, "Mod").v)}
}

func (l *arb) Cmp(rhs Int) int {
	return l.v.Cmp(asArb(rhs, "Cmp").v)
}

func (l *arb) Uint64() uint64 {
	return l.v.Uint64()
}

func (l *arb) IsZero() bool {
	return l.v.Sign() == 0
}

func (l *arb) Clone() Int {
	return &arb{v: new(big.Int).Set(l.v)}
}

func (l *arb) Overflowed() bool {
	return false
}

func (l *arb) String() string {
	return l.v.String()
}
