//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

// Package bignum abstracts the integer arithmetic used for combination
// indexing behind a single contract, so the indexing and sampling
// algorithms are written once and run unchanged over a fixed-width
// uint64 binding or an arbitrary-precision binding.
package bignum

import "io"

// Int is a non-negative integer value produced by an Arith binding.
// Operations return new values; an Int is never mutated in place, so a
// value may be shared freely once created. Operands must come from the
// same binding; mixing bindings panics.
type Int interface {
	// Add returns the sum of the receiver and rhs.
	Add(rhs Int) Int
	// Sub returns the difference of the receiver and rhs. The result of
	// subtracting past zero is undefined for the fixed-width binding and
	// marks the value as overflowed.
	Sub(rhs Int) Int
	// Mul returns the product of the receiver and rhs.
	Mul(rhs Int) Int
	// Div returns the floor of the receiver divided by rhs. rhs must be
	// non-zero.
	Div(rhs Int) Int
	// Mod returns the receiver modulo rhs. rhs must be non-zero.
	Mod(rhs Int) Int
	// Cmp returns -1, 0, or 1 as the receiver is less than, equal to, or
	// greater than rhs.
	Cmp(rhs Int) int
	// Uint64 narrows the value to a native integer. Callers must ensure
	// the value fits; combination digits always do since each is bounded
	// by the size of an in-memory domain.
	Uint64() uint64
	// IsZero reports whether the value is zero.
	IsZero() bool
	// Clone returns an independent copy of the value.
	Clone() Int
	// Overflowed reports whether any operation along the value's history
	// exceeded the binding's range. Arbitrary-precision values never
	// overflow.
	Overflowed() bool
	// String renders the value as a base-10 numeral.
	String() string
}

// Arith constructs Int values and supplies the capabilities that depend
// on the binding rather than on an individual value.
type Arith interface {
	// New returns the binding's representation of v.
	New(v uint64) Int
	// Parse reads a base-10 numeral.
	Parse(s string) (Int, error)
	// Zero returns the binding's zero value.
	Zero() Int
	// One returns the binding's one value.
	One() Int
	// RandRange draws a uniformly distributed value from the inclusive
	// range [0, upper]. A nil reader selects crypto/rand.
	RandRange(reader io.Reader, upper Int) (Int, error)
	// Name identifies the binding in error messages.
	Name() string
}
