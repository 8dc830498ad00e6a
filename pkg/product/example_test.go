//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package product_test

import (
	"fmt"
	"strings"

	"github.com/lazyproduct/lazyproduct/pkg/bignum"
	"github.com/lazyproduct/lazyproduct/pkg/product"
)

// Example_menu walks a small pizza menu as a virtual enumeration: the
// full product is addressable by index without ever being materialized.
func Example_menu() {
	domains := [][]string{
		{"Thin", "Thick"},
		{"Marinara", "BBQ"},
	}

	fmt.Println("size:", product.MaxSize(domains))

	arith := bignum.Fixed()
	space, _ := product.NewSpace(arith, domains...)
	for i := uint64(0); i < 4; i++ {
		entry, _ := space.EntryAt(arith.New(i))
		fmt.Println(i, strings.Join(entry, " + "))
	}

	// Output:
	// size: 4
	// 0 Thin + Marinara
	// 1 Thin + BBQ
	// 2 Thick + Marinara
	// 3 Thick + BBQ
}

// ExampleEntryAtString addresses a space too large for native integers.
func ExampleEntryAtString() {
	domains := make([][]string, 80)
	for i := range domains {
		domains[i] = []string{"0", "1"}
	}

	entry, _ := product.EntryAtString(domains, "1208925819614629174706175") // 2^80 - 1
	fmt.Println(strings.Join(entry, ""))

	// Output:
	// 11111111111111111111111111111111111111111111111111111111111111111111111111111111
}
