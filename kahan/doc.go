// SPDX-License-Identifier: MIT

// Package kahan provides compensated floating-point summation.
//
// Sum keeps a running total s and a running compensation c. Every Add
// captures the low-order bits lost by s+x and re-injects them in Total.
// The update is Neumaier's variant of Kahan summation, which stays exact
// when the incoming term is larger than the running sum:
//
//	var acc kahan.Sum
//	acc.Add(1e16)
//	acc.Add(1)
//	acc.Add(-1e16)
//	acc.Total() // 1, while naive addition yields 0
//
// Sum is a plain value: not safe for concurrent use, no allocations.
// The qr package uses it for the dot products of back substitution.
package kahan
