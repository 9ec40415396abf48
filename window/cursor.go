// SPDX-License-Identifier: MIT

package window

// Cursor is a single-pass reader over a Window.
// Once exhausted it stays exhausted; take a new Cursor (or use All) to
// read the window again.
type Cursor[T any] struct {
	w    *Window[T]
	next int
}

// Cursor returns a fresh single-pass Cursor positioned at Min().
func (w *Window[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{w: w, next: w.lo}
}

// Next returns the next element and true, or the zero value and false once
// Max() has been passed.
func (c *Cursor[T]) Next() (T, bool) {
	if c.next > c.w.hi {
		var zero T
		return zero, false
	}
	v := c.w.origin[c.next]
	c.next++

	return v, true
}

// Remaining reports how many elements Next will still return.
func (c *Cursor[T]) Remaining() int {
	return c.w.hi - c.next + 1
}
