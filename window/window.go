// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"iter"
)

// Window is an immutable, inclusive [Min, Max] view over a backing slice.
//
// The backing slice is held by reference: sub-windows returned by Split and
// SplitAt share it, and ToSlice is the only operation that copies.
// Invariant: len(origin) ≥ 1 and 0 ≤ Min ≤ Max < len(origin).
type Window[T any] struct {
	origin []T
	lo, hi int
}

// New validates the range and returns a Window over origin.
//
// Checks, in order:
//   - len(origin) == 0           → ErrInvalidIndex
//   - minIndex < 0, maxIndex < 0 → ErrIndexUnderflow
//   - maxIndex ≥ len(origin)     → ErrIndexOverflow
//   - maxIndex < minIndex        → ErrInvalidIndex
//
// Complexity: O(1); origin is not copied.
func New[T any](origin []T, minIndex, maxIndex int) (*Window[T], error) {
	if err := validateBounds("New", len(origin), minIndex, maxIndex); err != nil {
		return nil, err
	}

	return &Window[T]{origin: origin, lo: minIndex, hi: maxIndex}, nil
}

// Full returns a Window covering the whole of origin.
func Full[T any](origin []T) (*Window[T], error) {
	return New(origin, 0, len(origin)-1)
}

// Min returns the inclusive lower bound.
func (w *Window[T]) Min() int { return w.lo }

// Max returns the inclusive upper bound.
func (w *Window[T]) Max() int { return w.hi }

// Len returns the number of elements in the view (Max - Min + 1).
func (w *Window[T]) Len() int { return w.hi - w.lo + 1 }

// Contains reports whether pos lies within [Min, Max].
func (w *Window[T]) Contains(pos int) bool { return pos >= w.lo && pos <= w.hi }

// String renders the window as "window[min..max]/len(origin)".
func (w *Window[T]) String() string {
	return fmt.Sprintf("window[%d..%d]/%d", w.lo, w.hi, len(w.origin))
}

// All returns a restartable iterator over origin[Min..Max] in ascending order.
// Each range over it yields exactly Len() elements read from the backing slice.
func (w *Window[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := w.lo; i <= w.hi; i++ {
			if !yield(w.origin[i]) {
				return
			}
		}
	}
}

// Indexed is like All but also yields each element's position in origin.
func (w *Window[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := w.lo; i <= w.hi; i++ {
			if !yield(i, w.origin[i]) {
				return
			}
		}
	}
}

// ToSlice returns a fresh copy of the Len() elements in the view.
func (w *Window[T]) ToSlice() []T {
	out := make([]T, w.Len())
	copy(out, w.origin[w.lo:w.hi+1])

	return out
}

// At returns the element under idx.
// idx must have been validated against w itself; an Index from any other
// Window, even one with the same bounds, yields ErrForeignIndex.
func (w *Window[T]) At(idx Index[T]) (T, error) {
	var zero T
	if !idx.Valid() {
		return zero, opErrorf("At", ErrInvalidIndex, "zero Index")
	}
	if idx.w != w {
		return zero, opErrorf("At", ErrForeignIndex, "%v is not bound to %v", idx, w)
	}

	return w.origin[idx.pos], nil
}

// Pivot returns the default split point: Min + Len()/2 (floor division).
//
// For an even Len() the pivot lands one past the midpoint; for an odd Len()
// it lands on the midpoint. Either way the right half of Split gets the
// extra element.
//
// A backing slice of exactly one element short-circuits to Min. The shortcut
// is keyed on len(origin), not on Len(); a length-1 window over a longer
// slice still goes through the formula, which yields Min anyway.
func (w *Window[T]) Pivot() (Index[T], error) {
	if len(w.origin) == 1 {
		return NewIndex(w, w.lo)
	}

	return NewIndex(w, w.lo+w.Len()/2)
}

// Split partitions w at Pivot(). See SplitAt.
func (w *Window[T]) Split() (left, right *Window[T], err error) {
	p, err := w.Pivot()
	if err != nil {
		return nil, nil, fmt.Errorf("Split: %w", err)
	}

	return w.SplitAt(p)
}

// SplitAt partitions w into [Min, p-1] and [p, Max].
//
// A window of length 1 has no left part: it returns (nil, copy of w) and
// ignores p. Otherwise p-1 is computed with p.Sub(1), so a pivot sitting on
// its own window's minimum fails with ErrIndexUnderflow.
//
// p is used by position only and is not required to belong to w. Both parts
// are still built through New, so a position that makes no sense for w
// surfaces as ErrInvalidIndex or ErrIndexOverflow rather than a broken Window.
//
// On success append(left.ToSlice(), right.ToSlice()...) equals w.ToSlice(),
// and both parts share w's backing slice.
func (w *Window[T]) SplitAt(p Index[T]) (left, right *Window[T], err error) {
	if !p.Valid() {
		return nil, nil, opErrorf("SplitAt", ErrInvalidIndex, "zero Index")
	}

	if w.Len() == 1 {
		right, err = New(w.origin, w.lo, w.hi)
		if err != nil {
			return nil, nil, fmt.Errorf("SplitAt: %w", err)
		}

		return nil, right, nil
	}

	prev, err := p.Sub(1)
	if err != nil {
		return nil, nil, fmt.Errorf("SplitAt: %w", err)
	}
	if left, err = New(w.origin, w.lo, prev.pos); err != nil {
		return nil, nil, fmt.Errorf("SplitAt: left part: %w", err)
	}
	if right, err = New(w.origin, p.pos, w.hi); err != nil {
		return nil, nil, fmt.Errorf("SplitAt: right part: %w", err)
	}

	return left, right, nil
}
