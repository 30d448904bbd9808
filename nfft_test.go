package algopfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidNfft(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 13, 16, 1001, 5040, MaxNfft} {
		assert.True(t, IsValidNfft(n), "n=%d", n)
	}
	for _, n := range []int{-1, 0, 17, 32, 49, 121, MaxNfft + 1} {
		assert.False(t, IsValidNfft(n), "n=%d", n)
	}
}

func TestSmallNfft(t *testing.T) {
	t.Parallel()
	tests := []struct{ n, want int }{
		{1, 1},
		{6, 6},
		{17, 18},
		{721, 728},
		{MaxNfft, MaxNfft},
	}
	for _, tt := range tests {
		got, err := SmallNfft(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "SmallNfft(%d)", tt.n)
	}
	for _, n := range []int{0, -4, MaxNfft + 1} {
		_, err := SmallNfft(n)
		require.ErrorIs(t, err, ErrInvalidLength, "SmallNfft(%d)", n)
	}
}

func TestFastNfft(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 17, 100, 1009, MaxNfft} {
		got, err := FastNfft(n)
		require.NoError(t, err)
		assert.True(t, IsValidNfft(got), "FastNfft(%d) = %d", n, got)
		assert.GreaterOrEqual(t, got, n)
		if n > 1 {
			assert.Less(t, got, 2*n)
		}
		small, err := SmallNfft(n)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, small)
	}
	_, err := FastNfft(MaxNfft + 1)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestIsValidNfftReal(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 4, 6, 10, 26, 90, 1008, 2 * MaxNfft} {
		assert.True(t, IsValidNfftReal(n), "n=%d", n)
	}
	for _, n := range []int{0, 1, 3, 7, 34, 2*MaxNfft + 2} {
		assert.False(t, IsValidNfftReal(n), "n=%d", n)
	}
}

func TestSmallAndFastNfftReal(t *testing.T) {
	t.Parallel()
	tests := []struct{ n, want int }{
		{1, 2},
		{5, 6},
		{33, 36},
		{2 * MaxNfft, 2 * MaxNfft},
	}
	for _, tt := range tests {
		got, err := SmallNfftReal(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "SmallNfftReal(%d)", tt.n)
	}
	for _, n := range []int{5, 100, 1009} {
		got, err := FastNfftReal(n)
		require.NoError(t, err)
		assert.True(t, IsValidNfftReal(got), "FastNfftReal(%d) = %d", n, got)
		assert.GreaterOrEqual(t, got, n)
	}
	for _, n := range []int{0, 2*MaxNfft + 1} {
		_, err := SmallNfftReal(n)
		require.ErrorIs(t, err, ErrInvalidLength, "SmallNfftReal(%d)", n)
		_, err = FastNfftReal(n)
		require.ErrorIs(t, err, ErrInvalidLength, "FastNfftReal(%d)", n)
	}
}
