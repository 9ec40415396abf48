// Package bisect provides tunable options and error definitions
// for split-driven binary search over a window.Window.
package bisect

import (
	"errors"
	"fmt"
)

// Sentinel errors for bisect execution.
var (
	// ErrNotFound is returned when the target is absent from the window.
	ErrNotFound = errors.New("bisect: target not found")

	// ErrNilWindow is returned if a nil window pointer is passed.
	ErrNilWindow = errors.New("bisect: window is nil")

	// ErrNilCompare is returned if SearchFunc receives a nil comparator.
	ErrNilCompare = errors.New("bisect: compare function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bisect: invalid option supplied")

	// ErrDepthExceeded is returned when MaxDepth halvings did not narrow
	// the window down to a single element.
	ErrDepthExceeded = errors.New("bisect: max depth exceeded")
)

// Bounds is a plain snapshot of a window's inclusive range, handed to hooks.
type Bounds struct {
	Min, Max int
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// OnSplit is called after each halving with the depth (starting at 1)
	// and the two parts. Left is the zero Bounds when absent.
	OnSplit func(depth int, left, right Bounds)

	// MaxDepth, if > 0, caps the number of halvings.
	// A value of 0 disables the cap.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no depth cap and a no-op OnSplit hook.
func DefaultOptions() Options {
	return Options{
		OnSplit:  func(int, Bounds, Bounds) {},
		MaxDepth: 0,
	}
}

// WithOnSplit registers a callback run after every halving.
func WithOnSplit(fn func(depth int, left, right Bounds)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSplit = fn
		}
	}
}

// WithMaxDepth caps the number of halvings.
//
//	d > 0: at most d halvings
//	d == 0: no cap
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}
