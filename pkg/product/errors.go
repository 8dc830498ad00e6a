//
// Copyright Coinbase, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package product

import "github.com/pkg/errors"

var (
	// ErrEmptyDomainList is returned when a space is built from zero
	// domains.
	ErrEmptyDomainList = errors.New("domain list cannot be empty")

	// ErrEmptyDomain is returned when some domain holds zero symbols; no
	// combination can draw from it.
	ErrEmptyDomain = errors.New("domain cannot be empty")

	// ErrIndexOutOfRange is returned when a requested index does not fall
	// inside [0, totalSize).
	ErrIndexOutOfRange = errors.New("index cannot be out of range")

	// ErrSpaceTooLarge is returned when a space's total size does not fit
	// the fixed-width binding; callers should rebuild with bignum.Arb.
	ErrSpaceTooLarge = errors.New("space size exceeds the fixed-width integer range")
)
