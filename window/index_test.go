package window_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrwin/window"
)

// TestNewIndex_Bounds checks min/max are accepted and one step past either side is not,
// for every valid window over a small origin.
func TestNewIndex_Bounds(t *testing.T) {
	origin := []int{0, 1, 2, 3, 4, 5}
	for lo := range origin {
		for hi := lo; hi < len(origin); hi++ {
			w := mustWindow(t, origin, lo, hi)

			_, err := window.NewIndex(w, lo)
			assert.NoError(t, err, "%v min", w)
			_, err = window.NewIndex(w, hi)
			assert.NoError(t, err, "%v max", w)

			_, err = window.NewIndex(w, lo-1)
			assert.ErrorIs(t, err, window.ErrIndexUnderflow, "%v min-1", w)
			_, err = window.NewIndex(w, hi+1)
			assert.ErrorIs(t, err, window.ErrIndexOverflow, "%v max+1", w)
		}
	}
}

// TestNewIndex_NilWindow rejects construction without a window.
func TestNewIndex_NilWindow(t *testing.T) {
	idx, err := window.NewIndex[int](nil, 0)
	assert.ErrorIs(t, err, window.ErrInvalidIndex)
	assert.False(t, idx.Valid())
}

// TestIndex_Sub covers in-range moves and underflow.
func TestIndex_Sub(t *testing.T) {
	w := mustWindow(t, sample(), 1, 4)
	idx, err := window.NewIndex(w, 3)
	require.NoError(t, err)

	got, err := idx.Sub(2)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Position())
	assert.Same(t, w, got.Window())

	_, err = idx.Sub(3)
	assert.ErrorIs(t, err, window.ErrIndexUnderflow)

	_, err = idx.Sub(math.MaxInt)
	assert.ErrorIs(t, err, window.ErrIndexUnderflow, "huge offsets must not wrap")

	same, err := idx.Sub(0)
	require.NoError(t, err)
	assert.Equal(t, idx, same)
}

// TestIndex_Add covers in-range moves and overflow.
func TestIndex_Add(t *testing.T) {
	w := mustWindow(t, sample(), 1, 4)
	idx, err := window.NewIndex(w, 2)
	require.NoError(t, err)

	got, err := idx.Add(2)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Position())

	_, err = idx.Add(3)
	assert.ErrorIs(t, err, window.ErrIndexOverflow)

	_, err = idx.Add(math.MaxInt)
	assert.ErrorIs(t, err, window.ErrIndexOverflow, "huge offsets must not wrap")

	top, err := window.NewIndex(w, 4)
	require.NoError(t, err)
	_, err = top.Add(1)
	assert.ErrorIs(t, err, window.ErrIndexOverflow)
}

// TestIndex_ArithmeticDoesNotMutate checks Index behaves as a value.
func TestIndex_ArithmeticDoesNotMutate(t *testing.T) {
	w := mustWindow(t, sample(), 1, 4)
	idx, err := window.NewIndex(w, 2)
	require.NoError(t, err)

	_, err = idx.Add(1)
	require.NoError(t, err)
	_, err = idx.Sub(1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Position())
}

// TestIndex_InvalidArithmetic covers negative offsets and the zero Index.
func TestIndex_InvalidArithmetic(t *testing.T) {
	w := mustWindow(t, sample(), 1, 4)
	idx, err := window.NewIndex(w, 2)
	require.NoError(t, err)

	_, err = idx.Add(-1)
	assert.ErrorIs(t, err, window.ErrInvalidIndex)
	_, err = idx.Sub(-1)
	assert.ErrorIs(t, err, window.ErrInvalidIndex)

	var zero window.Index[int]
	_, err = zero.Add(0)
	assert.ErrorIs(t, err, window.ErrInvalidIndex)
	_, err = zero.Sub(0)
	assert.ErrorIs(t, err, window.ErrInvalidIndex)
	assert.Equal(t, "index(<unbound>)", zero.String())
}

// TestIndex_AddSubInverse checks Add and Sub undo each other within bounds.
func TestIndex_AddSubInverse(t *testing.T) {
	origin := make([]int, 9)
	for lo := range origin {
		for hi := lo; hi < len(origin); hi++ {
			w := mustWindow(t, origin, lo, hi)
			for pos := lo; pos <= hi; pos++ {
				idx, err := window.NewIndex(w, pos)
				require.NoError(t, err)

				for k := 0; k <= hi-pos; k++ {
					up, err := idx.Add(k)
					require.NoError(t, err)
					back, err := up.Sub(k)
					require.NoError(t, err)
					assert.Equal(t, idx, back, "%v + %d - %d", idx, k, k)
				}
				for k := 0; k <= pos-lo; k++ {
					down, err := idx.Sub(k)
					require.NoError(t, err)
					back, err := down.Add(k)
					require.NoError(t, err)
					assert.Equal(t, idx, back, "%v - %d + %d", idx, k, k)
				}
			}
		}
	}
}

// TestIndex_String checks the debug rendering.
func TestIndex_String(t *testing.T) {
	w := mustWindow(t, sample(), 1, 4)
	idx, err := window.NewIndex(w, 3)
	require.NoError(t, err)
	assert.Equal(t, "index(3)@window[1..4]/7", idx.String())
}
