//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

// Package product treats the Cartesian product of ordered, finite
// domains as a virtual enumeration. A Space never materializes the
// product; it decodes any index into its combination in O(dimension)
// time, and samples distinct combinations from the whole space in memory
// proportional to the sample size.
package product

import (
	"github.com/pkg/errors"

	"github.com/lazyproduct/lazyproduct/internal"
	"github.com/lazyproduct/lazyproduct/pkg/bignum"
)

// Space is the Cartesian product of a fixed sequence of domains,
// addressed by mixed-radix indices: position 0 is the most significant
// digit, and the place value of position i is the product of the sizes
// of the domains to its right. A Space is immutable once built and may
// be shared across goroutines.
type Space[T any] struct {
	domains [][]T
	arith   bignum.Arith
	place   []bignum.Int
	modulus []bignum.Int
	size    bignum.Int
}

// NewSpace precomputes the place values and total size of the product of
// the given domains. Every domain must be non-empty, and at least one
// domain is required. With the fixed-width binding the total size must
// fit in 64 bits; NewSpace reports ErrSpaceTooLarge otherwise.
func NewSpace[T any](arith bignum.Arith, domains ...[]T) (*Space[T], error) {
	if arith == nil {
		return nil, internal.ErrNilArguments
	}
	if len(domains) == 0 {
		return nil, ErrEmptyDomainList
	}

	place := make([]bignum.Int, len(domains))
	modulus := make([]bignum.Int, len(domains))
	factor := arith.One()
	for i := len(domains) - 1; i >= 0; i-- {
		if len(domains[i]) == 0 {
			return nil, errors.Wrapf(ErrEmptyDomain, "domain %d", i)
		}
		place[i] = factor
		modulus[i] = arith.New(uint64(len(domains[i])))
		factor = factor.Mul(modulus[i])
	}
	if factor.Overflowed() {
		return nil, errors.Wrapf(ErrSpaceTooLarge, "binding %s", arith.Name())
	}

	return &Space[T]{
		domains: domains,
		arith:   arith,
		place:   place,
		modulus: modulus,
		size:    factor,
	}, nil
}

// Size returns the number of combinations in the space.
func (s *Space[T]) Size() bignum.Int {
	return s.size.Clone()
}

// Dimension returns the number of domains.
func (s *Space[T]) Dimension() int {
	return len(s.domains)
}

// EntryAt decodes an index into its combination by mixed-radix digit
// extraction: the digit at position i is (index / place[i]) % modulus[i].
// Distinct in-range indices decode to distinct combinations, and every
// combination is reachable from exactly one index.
func (s *Space[T]) EntryAt(index bignum.Int) ([]T, error) {
	if index == nil {
		return nil, internal.ErrNilArguments
	}
	if index.Cmp(s.size) >= 0 {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %s, space size %s", index, s.size)
	}

	combination := make([]T, len(s.domains))
	for i := range s.domains {
		digit := index.Div(s.place[i]).Mod(s.modulus[i])
		combination[i] = s.domains[i][digit.Uint64()]
	}
	return combination, nil
}
