package bisect

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/arrwin/window"
)

// SearchFunc locates target in w, which must be sorted ascending under compare.
//
// Algorithm:
//  1. While the current window holds more than one element, Split it at its
//     default pivot and compare target with the first element of the right part.
//  2. Descend left when target is smaller, right otherwise.
//  3. Compare the remaining element with target.
//
// With duplicates the last equal element is reported, since equal targets
// always descend right.
//
// The returned Index is validated against w (not against the sub-window it was
// found in), so it can be read back with w.At.
//
// Errors:
//   - ErrNilWindow, ErrNilCompare, ErrOptionViolation on bad input
//   - ErrDepthExceeded when MaxDepth halvings were not enough
//   - ErrNotFound when target is absent
//
// Complexity: O(log n) comparisons and splits, O(1) extra memory per step.
func SearchFunc[T any](w *window.Window[T], target T, compare func(a, b T) int, opts ...Option) (window.Index[T], error) {
	var none window.Index[T]
	if w == nil {
		return none, ErrNilWindow
	}
	if compare == nil {
		return none, ErrNilCompare
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return none, o.err
	}

	cur := w
	for depth := 0; cur.Len() > 1; {
		if o.MaxDepth > 0 && depth == o.MaxDepth {
			return none, fmt.Errorf("%w: %d halvings left %v", ErrDepthExceeded, depth, cur)
		}
		left, right, err := cur.Split()
		if err != nil {
			return none, fmt.Errorf("bisect: %w", err)
		}
		depth++
		o.OnSplit(depth, boundsOf(left), boundsOf(right))

		first, err := head(right)
		if err != nil {
			return none, fmt.Errorf("bisect: %w", err)
		}
		if compare(target, first) < 0 {
			cur = left
		} else {
			cur = right
		}
	}

	last, err := head(cur)
	if err != nil {
		return none, fmt.Errorf("bisect: %w", err)
	}
	if compare(target, last) != 0 {
		return none, ErrNotFound
	}

	return window.NewIndex(w, cur.Min())
}

// Search is SearchFunc with the natural ordering of T.
func Search[T cmp.Ordered](w *window.Window[T], target T, opts ...Option) (window.Index[T], error) {
	return SearchFunc(w, target, cmp.Compare[T], opts...)
}

// head reads the element at w.Min() through a validated Index.
func head[T any](w *window.Window[T]) (T, error) {
	idx, err := window.NewIndex(w, w.Min())
	if err != nil {
		var zero T
		return zero, err
	}

	return w.At(idx)
}

// boundsOf snapshots w; a nil window maps to the zero Bounds.
func boundsOf[T any](w *window.Window[T]) Bounds {
	if w == nil {
		return Bounds{}
	}

	return Bounds{Min: w.Min(), Max: w.Max()}
}
