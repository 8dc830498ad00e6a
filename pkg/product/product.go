//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package product

import (
	"github.com/pkg/errors"

	"github.com/lazyproduct/lazyproduct/pkg/bignum"
)

// The package-level functions are one-shot conveniences over Space for
// callers that do not reuse a precomputed space. Each picks an integer
// binding at run time: the fixed-width binding first, falling back to
// arbitrary precision when the space size does not fit 64 bits.

// EntryAt decodes a single index into its combination.
func EntryAt[T any](domains [][]T, index uint64) ([]T, error) {
	space, err := buildAuto(domains)
	if err != nil {
		return nil, err
	}
	return space.EntryAt(space.arith.New(index))
}

// EntryAtString decodes a single index given as a base-10 numeral, which
// may exceed the native integer range.
func EntryAtString[T any](domains [][]T, index string) ([]T, error) {
	space, err := buildAuto(domains)
	if err != nil {
		return nil, err
	}
	parsed, err := space.arith.Parse(index)
	if err != nil {
		return nil, err
	}
	return space.EntryAt(parsed)
}

// GenerateSamples draws count distinct combinations spread across the
// whole space, in increasing index order. Requesting the full space size
// returns every combination.
func GenerateSamples[T any](domains [][]T, count uint64) ([][]T, error) {
	space, err := buildAuto(domains)
	if err != nil {
		return nil, err
	}
	return space.Samples(space.arith.New(count), nil)
}

// GenerateSamplesString is GenerateSamples with the count given as a
// base-10 numeral.
func GenerateSamplesString[T any](domains [][]T, count string) ([][]T, error) {
	space, err := buildAuto(domains)
	if err != nil {
		return nil, err
	}
	parsed, err := space.arith.Parse(count)
	if err != nil {
		return nil, err
	}
	return space.Samples(parsed, nil)
}

// MaxSize returns the product of the domain sizes without validating the
// domains; an empty list yields 1, the vacuous product. NewSpace is the
// validating path.
func MaxSize[T any](domains [][]T) bignum.Int {
	arith := bignum.Arb()
	size := arith.One()
	for _, domain := range domains {
		size = size.Mul(arith.New(uint64(len(domain))))
	}
	return size
}

func buildAuto[T any](domains [][]T) (*Space[T], error) {
	space, err := NewSpace(bignum.Fixed(), domains...)
	if errors.Is(err, ErrSpaceTooLarge) {
		return NewSpace(bignum.Arb(), domains...)
	}
	return space, err
}
