//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

// Package sampling draws a fixed number of distinct indices from a range
// in one pass. The sampler keeps only a three-value cursor, so drawing k
// indices out of a range of size N costs O(k) time and O(1) space no
// matter how large N is; it never builds a visited-set the way a
// collect-into-a-map sampler does.
package sampling

import (
	"io"

	"github.com/pkg/errors"

	"github.com/lazyproduct/lazyproduct/internal"
	"github.com/lazyproduct/lazyproduct/pkg/bignum"
)

// ErrInvalidSampleSize is returned when the requested sample size exceeds
// the range being sampled.
var ErrInvalidSampleSize = errors.New("sample size cannot be out of range")

// ErrExhausted is returned by Next once the sampler's quota is spent.
var ErrExhausted = errors.New("sampler has no values remaining")

// Sampler yields a strictly increasing sequence of distinct indices in
// [0, bound). Each draw partitions the unvisited tail of the range into
// `remaining` equal slices and lands in the first one, which guarantees
// strict ordering and full-range coverage; the resulting distribution is
// close to, but not exactly, uniform without replacement.
//
// A Sampler is owned by a single caller; it is not safe for concurrent
// use.
type Sampler struct {
	arith     bignum.Arith
	bound     bignum.Int
	remaining bignum.Int
	// last holds the previous draw shifted up by one, so zero doubles as
	// the "nothing drawn yet" sentinel. Internal values live in
	// [1, bound]; Next shifts them back down before returning.
	last   bignum.Int
	reader io.Reader
}

// NewSampler prepares a sampler that will produce exactly count distinct
// indices in [0, bound). A nil reader selects crypto/rand.
func NewSampler(arith bignum.Arith, count, bound bignum.Int, reader io.Reader) (*Sampler, error) {
	if arith == nil || count == nil || bound == nil {
		return nil, internal.ErrNilArguments
	}
	if count.Cmp(bound) > 0 {
		return nil, errors.Wrapf(ErrInvalidSampleSize, "%s > %s", count, bound)
	}
	return &Sampler{
		arith:     arith,
		bound:     bound.Clone(),
		remaining: count.Clone(),
		last:      arith.Zero(),
		reader:    reader,
	}, nil
}

// HasNext reports whether the sampler can produce another index.
func (s *Sampler) HasNext() bool {
	return !s.remaining.IsZero()
}

// Next draws the next index. Successive calls return strictly increasing
// values, so every index a sampler produces is distinct.
func (s *Sampler) Next() (bignum.Int, error) {
	if !s.HasNext() {
		return nil, ErrExhausted
	}
	one := s.arith.One()

	// The unvisited tail [last+1, bound] always holds at least
	// `remaining` values, so width >= 1 and the draw below cannot push
	// past the bound.
	width := s.bound.Sub(s.last).Div(s.remaining)
	offset, err := s.arith.RandRange(s.reader, width.Sub(one))
	if err != nil {
		return nil, err
	}

	value := s.last.Add(offset).Add(one)
	s.last = value
	s.remaining = s.remaining.Sub(one)
	return value.Sub(one), nil
}
