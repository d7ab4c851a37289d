// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		want int32
	}{
		{name: "five plus three", a: 5, b: 3, want: 8},
		{name: "zeros", a: 0, b: 0, want: 0},
		{name: "negative cancels positive", a: -1, b: 1, want: 0},
		{name: "both negative", a: -20, b: -22, want: -42},
		{name: "max plus zero", a: math.MaxInt32, b: 0, want: math.MaxInt32},
		{name: "min plus max", a: math.MinInt32, b: math.MaxInt32, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.a, tt.b))
			assert.Equal(t, tt.want, Add(tt.b, tt.a), "addition should be commutative")
		})
	}
}

func TestAdd_MatchesNativeSum(t *testing.T) {
	pairs := [][2]int32{
		{1, 2}, {-7, 3}, {1 << 20, 1 << 20}, {-(1 << 30), 1 << 29}, {123456, -654321},
	}

	for _, p := range pairs {
		want := int64(p[0]) + int64(p[1])
		assert.Equal(t, want, int64(Add(p[0], p[1])), "Add(%d, %d)", p[0], p[1])
	}
}

func TestAdd_Repeatable(t *testing.T) {
	first := Add(5, 3)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Add(5, 3))
	}
}

func TestAdd_Wraps(t *testing.T) {
	assert.Equal(t, int32(math.MinInt32), Add(math.MaxInt32, 1))
	assert.Equal(t, int32(math.MaxInt32), Add(math.MinInt32, -1))
}

func TestAddChecked(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int32
		want    int32
		wantErr bool
	}{
		{name: "in range", a: 5, b: 3, want: 8},
		{name: "exactly max", a: math.MaxInt32 - 1, b: 1, want: math.MaxInt32},
		{name: "exactly min", a: math.MinInt32 + 1, b: -1, want: math.MinInt32},
		{name: "positive overflow", a: math.MaxInt32, b: 1, wantErr: true},
		{name: "negative overflow", a: math.MinInt32, b: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddChecked(tt.a, tt.b)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, int32(50), Multiply(5, 10))
	assert.Equal(t, int32(-15), Multiply(-5, 3))
	assert.Equal(t, int32(0), Multiply(0, math.MaxInt32))
}

func TestMultiplyChecked(t *testing.T) {
	got, err := MultiplyChecked(5, 10)
	require.NoError(t, err)
	assert.Equal(t, int32(50), got)

	_, err = MultiplyChecked(math.MaxInt32, 2)
	require.ErrorIs(t, err, ErrOverflow)
	assert.Contains(t, err.Error(), "2147483647 * 2")

	_, err = MultiplyChecked(math.MinInt32, -1)
	assert.ErrorIs(t, err, ErrOverflow)
}
