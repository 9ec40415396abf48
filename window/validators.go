// SPDX-License-Identifier: MIT
// Package: window
//
// Purpose:
//   - Single source of truth for the bounds checks shared by New, NewIndex,
//     Index.Add and Index.Sub.
//   - Return tagged sentinels so every call site reports errors the same way.
//
// Note:
//   - Checks run in a fixed order; the first violation wins.
//   - All checks are O(1) and allocate only on failure.

package window

// validateBounds checks an inclusive [lo, hi] range against an origin of length n.
// Order: empty origin → lo<0 → hi<0 → hi≥n → hi<lo.
func validateBounds(op string, n, lo, hi int) error {
	if n == 0 {
		return opErrorf(op, ErrInvalidIndex, "cannot make a window from a zero-sized origin")
	}
	if lo < 0 {
		return opErrorf(op, ErrIndexUnderflow, "min index %d < 0", lo)
	}
	if hi < 0 {
		return opErrorf(op, ErrIndexUnderflow, "max index %d < 0", hi)
	}
	if hi >= n {
		return opErrorf(op, ErrIndexOverflow, "max index %d out of range for length %d", hi, n)
	}
	if hi < lo {
		return opErrorf(op, ErrInvalidIndex, "max index %d < min index %d", hi, lo)
	}

	return nil
}

// validatePosition checks that pos lies inside the inclusive [lo, hi].
func validatePosition(op string, pos, lo, hi int) error {
	if pos < lo {
		return opErrorf(op, ErrIndexUnderflow, "position %d < min %d", pos, lo)
	}
	if pos > hi {
		return opErrorf(op, ErrIndexOverflow, "position %d > max %d", pos, hi)
	}

	return nil
}

// validateOffset rejects negative offsets; Add and Sub only move one way.
func validateOffset(op string, offset int) error {
	if offset < 0 {
		return opErrorf(op, ErrInvalidIndex, "negative offset %d", offset)
	}

	return nil
}
