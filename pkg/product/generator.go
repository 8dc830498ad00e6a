//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package product

import (
	"io"

	"github.com/lazyproduct/lazyproduct/internal"
	"github.com/lazyproduct/lazyproduct/pkg/bignum"
	"github.com/lazyproduct/lazyproduct/pkg/sampling"
)

// Generator yields a requested number of distinct combinations one at a
// time, in increasing index order. When the request covers the whole
// space it walks every index sequentially; otherwise each combination's
// index comes from a streaming distinct sampler, so memory stays
// proportional to a single combination regardless of the space size.
//
// A Generator is owned by a single caller; it is not safe for concurrent
// use.
type Generator[T any] struct {
	space   *Space[T]
	sampler *sampling.Sampler
	// cursor drives full-space iteration and is nil in sampler mode.
	cursor    bignum.Int
	remaining bignum.Int
}

// Generator prepares a streaming producer of count distinct combinations.
// count may equal the space size, in which case the full product is
// enumerated in index order. A nil reader selects crypto/rand.
func (s *Space[T]) Generator(count bignum.Int, reader io.Reader) (*Generator[T], error) {
	if count == nil {
		return nil, internal.ErrNilArguments
	}
	if count.Cmp(s.size) == 0 {
		return &Generator[T]{
			space:     s,
			cursor:    s.arith.Zero(),
			remaining: count.Clone(),
		}, nil
	}

	sampler, err := sampling.NewSampler(s.arith, count, s.size, reader)
	if err != nil {
		return nil, err
	}
	return &Generator[T]{
		space:     s,
		sampler:   sampler,
		remaining: count.Clone(),
	}, nil
}

// HasNext reports whether the generator can produce another combination.
func (g *Generator[T]) HasNext() bool {
	return !g.remaining.IsZero()
}

// Next produces the next combination. It returns
// sampling.ErrExhausted once the requested count has been delivered.
func (g *Generator[T]) Next() ([]T, error) {
	if !g.HasNext() {
		return nil, sampling.ErrExhausted
	}

	var index bignum.Int
	if g.sampler != nil {
		drawn, err := g.sampler.Next()
		if err != nil {
			return nil, err
		}
		index = drawn
	} else {
		index = g.cursor
		g.cursor = g.cursor.Add(g.space.arith.One())
	}
	g.remaining = g.remaining.Sub(g.space.arith.One())

	return g.space.EntryAt(index)
}

// Samples materializes the generator's full output: exactly count
// distinct combinations with strictly increasing underlying indices.
func (s *Space[T]) Samples(count bignum.Int, reader io.Reader) ([][]T, error) {
	gen, err := s.Generator(count, reader)
	if err != nil {
		return nil, err
	}

	subset := make([][]T, 0, boundedCap(count))
	for gen.HasNext() {
		combination, err := gen.Next()
		if err != nil {
			return nil, err
		}
		subset = append(subset, combination)
	}
	return subset, nil
}

// boundedCap keeps the preallocation sane when the requested count is
// attacker-controlled or simply enormous.
func boundedCap(count bignum.Int) int {
	const limit = 1 << 16
	v := count.Uint64()
	if v > limit {
		return limit
	}
	return int(v)
}
