// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package calculator provides pure int32 arithmetic.
//
// The plain functions wrap around on overflow (two's-complement), which is
// how Go int32 arithmetic behaves. The Checked variants report overflow
// with ErrOverflow instead.
package calculator

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a result does not fit in an int32
var ErrOverflow = errors.New("int32 overflow")

// Add returns a + b, wrapping on overflow
func Add(a, b int32) int32 {
	return a + b
}

// AddChecked returns a + b, or ErrOverflow if the true sum is out of range
func AddChecked(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return int32(sum), nil
}

// Multiply returns a * b, wrapping on overflow
func Multiply(a, b int32) int32 {
	return a * b
}

// MultiplyChecked returns a * b, or ErrOverflow if the true product is out of range
func MultiplyChecked(a, b int32) (int32, error) {
	product := int64(a) * int64(b)
	if product > math.MaxInt32 || product < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return int32(product), nil
}
