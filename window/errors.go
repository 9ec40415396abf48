// SPDX-License-Identifier: MIT
// Package window: sentinel error set.
// Every exported operation returns one of these, wrapped with the operation
// tag via fmt.Errorf("Op: ...: %w", ErrX). Callers match with errors.Is.

package window

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexUnderflow indicates a bound or position below the permitted minimum.
	ErrIndexUnderflow = errors.New("window: index underflow")

	// ErrIndexOverflow indicates a bound or position above the permitted maximum.
	ErrIndexOverflow = errors.New("window: index overflow")

	// ErrInvalidIndex indicates a structurally nonsensical configuration:
	// empty origin, max < min, the zero Index, or a negative offset.
	ErrInvalidIndex = errors.New("window: invalid index")

	// ErrForeignIndex indicates that an Index validated against one Window
	// was used to read through another.
	ErrForeignIndex = errors.New("window: index belongs to another window")
)

// opErrorf tags a sentinel with the failing operation and a short detail.
func opErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
