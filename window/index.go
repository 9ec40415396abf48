// SPDX-License-Identifier: MIT

package window

import "fmt"

// Index is a position validated against one specific Window.
//
// Index is a value type: Add and Sub return a new Index and leave the
// receiver untouched. The zero Index is not bound to any Window and is
// rejected wherever an Index is accepted.
// Invariant: w.Min() ≤ pos ≤ w.Max() whenever w != nil.
type Index[T any] struct {
	pos int
	w   *Window[T]
}

// NewIndex binds pos to w.
//
// Errors:
//   - w == nil     → ErrInvalidIndex
//   - pos < Min()  → ErrIndexUnderflow
//   - pos > Max()  → ErrIndexOverflow
func NewIndex[T any](w *Window[T], pos int) (Index[T], error) {
	if w == nil {
		return Index[T]{}, opErrorf("NewIndex", ErrInvalidIndex, "nil window")
	}
	if err := validatePosition("NewIndex", pos, w.lo, w.hi); err != nil {
		return Index[T]{}, err
	}

	return Index[T]{pos: pos, w: w}, nil
}

// Position returns the absolute position in the backing slice.
func (i Index[T]) Position() int { return i.pos }

// Window returns the Window this Index was validated against.
func (i Index[T]) Window() *Window[T] { return i.w }

// Valid reports whether i is bound to a Window (i.e. is not the zero Index).
func (i Index[T]) Valid() bool { return i.w != nil }

// String renders the index as "index(pos)@window[min..max]/n".
func (i Index[T]) String() string {
	if i.w == nil {
		return "index(<unbound>)"
	}

	return fmt.Sprintf("index(%d)@%v", i.pos, i.w)
}

// Sub returns the Index offset positions to the left.
// Fails with ErrIndexUnderflow if that would cross Min().
func (i Index[T]) Sub(offset int) (Index[T], error) {
	if err := i.checkArith("Sub", offset); err != nil {
		return Index[T]{}, err
	}
	// pos - lo ≥ 0 by invariant, so the comparison cannot wrap.
	if offset > i.pos-i.w.lo {
		return Index[T]{}, opErrorf("Sub", ErrIndexUnderflow, "%d - %d < %d", i.pos, offset, i.w.lo)
	}

	return NewIndex(i.w, i.pos-offset)
}

// Add returns the Index offset positions to the right.
// Fails with ErrIndexOverflow if that would cross Max().
func (i Index[T]) Add(offset int) (Index[T], error) {
	if err := i.checkArith("Add", offset); err != nil {
		return Index[T]{}, err
	}
	// hi - pos ≥ 0 by invariant; pos+offset is never formed before this check.
	if offset > i.w.hi-i.pos {
		return Index[T]{}, opErrorf("Add", ErrIndexOverflow, "%d + %d > %d", i.pos, offset, i.w.hi)
	}

	return NewIndex(i.w, i.pos+offset)
}

func (i Index[T]) checkArith(op string, offset int) error {
	if i.w == nil {
		return opErrorf(op, ErrInvalidIndex, "zero Index")
	}

	return validateOffset(op, offset)
}
