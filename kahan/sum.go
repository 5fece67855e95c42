// SPDX-License-Identifier: MIT

package kahan

import "math"

// Sum is a compensated accumulator. The zero value is an empty sum.
type Sum struct {
	s float64 // running sum
	c float64 // running compensation (lost low-order bits)
}

// Add accumulates x.
// Complexity: O(1).
func (k *Sum) Add(x float64) {
	t := k.s + x
	if math.Abs(k.s) >= math.Abs(x) {
		k.c += (k.s - t) + x
	} else {
		k.c += (x - t) + k.s
	}
	k.s = t
}

// Total returns the compensated sum s + c.
func (k *Sum) Total() float64 { return k.s + k.c }

// Reset empties the accumulator for reuse.
func (k *Sum) Reset() {
	k.s, k.c = 0, 0
}

// Of returns the compensated sum of xs in order.
func Of(xs ...float64) float64 {
	var k Sum
	for _, x := range xs {
		k.Add(x)
	}

	return k.Total()
}
