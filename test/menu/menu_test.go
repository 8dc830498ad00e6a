//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

// End-to-end coverage of the public API: build a space, address single
// entries, and stream distinct samples, over both integer bindings.
package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazyproduct/lazyproduct/pkg/bignum"
	"github.com/lazyproduct/lazyproduct/pkg/product"
	"github.com/lazyproduct/lazyproduct/pkg/sampling"
)

var menu = [][]string{
	{"Thin", "Thick", "Stuffed", "GlutenFree"},
	{"Marinara", "BBQ", "Alfredo"},
	{"Mozzarella", "Cheddar", "Vegan"},
	{"Pepperoni", "Mushroom", "Onion", "Sausage"},
}

func TestMenuEndToEnd(t *testing.T) {
	require.Equal(t, "144", product.MaxSize(menu).String())

	arith := bignum.Fixed()
	space, err := product.NewSpace(arith, menu...)
	require.NoError(t, err)

	// Single lookups at both ends of the range.
	first, err := space.EntryAt(arith.Zero())
	require.NoError(t, err)
	require.Equal(t, []string{"Thin", "Marinara", "Mozzarella", "Pepperoni"}, first)

	last, err := space.EntryAt(arith.New(143))
	require.NoError(t, err)
	require.Equal(t, []string{"GlutenFree", "Alfredo", "Vegan", "Sausage"}, last)

	// A tasting menu: ten distinct pizzas spread across the full range.
	samples, err := space.Samples(arith.New(10), nil)
	require.NoError(t, err)
	require.Len(t, samples, 10)

	seen := make(map[string]bool)
	for _, sample := range samples {
		seen[strings.Join(sample, "|")] = true
	}
	require.Len(t, seen, 10)
}

func TestMenuFullEnumerationMatchesLookups(t *testing.T) {
	arith := bignum.Fixed()
	space, err := product.NewSpace(arith, menu...)
	require.NoError(t, err)

	everything, err := space.Samples(space.Size(), nil)
	require.NoError(t, err)
	require.Len(t, everything, 144)

	for i, combination := range everything {
		entry, err := space.EntryAt(arith.New(uint64(i)))
		require.NoError(t, err)
		require.Equal(t, entry, combination)
	}
}

func TestHugeSpaceEndToEnd(t *testing.T) {
	// 100 binary choices: 2^100 combinations, far past the 64-bit range.
	flags := make([][]string, 100)
	for i := range flags {
		flags[i] = []string{"off", "on"}
	}

	arith := bignum.Arb()
	space, err := product.NewSpace(arith, flags...)
	require.NoError(t, err)
	require.Equal(t, "1267650600228229401496703205376", space.Size().String())

	index, err := arith.Parse("1267650600228229401496703205375")
	require.NoError(t, err)
	entry, err := space.EntryAt(index)
	require.NoError(t, err)
	for _, symbol := range entry {
		require.Equal(t, "on", symbol)
	}

	reader := sampling.NewTranscriptReader("huge-space", []byte("integration"))
	samples, err := space.Samples(arith.New(25), reader)
	require.NoError(t, err)
	require.Len(t, samples, 25)

	seen := make(map[string]bool)
	for _, sample := range samples {
		require.Len(t, sample, 100)
		seen[strings.Join(sample, "")] = true
	}
	require.Len(t, seen, 25)
}
