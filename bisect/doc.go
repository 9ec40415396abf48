// Package bisect runs binary search over a sorted window.Window by repeatedly
// splitting it, instead of by raw index arithmetic.
//
// What
//
//   - Search / SearchFunc halve the window with Window.Split until one element
//     is left, then compare it with the target.
//   - The result is a window.Index validated against the caller's window.
//   - Hooks: WithOnSplit observes each halving; WithMaxDepth caps them.
//
// Why
//
//	Every step goes through the window's validated constructors, so a bug in
//	the narrowing logic surfaces as ErrIndexUnderflow / ErrIndexOverflow /
//	ErrInvalidIndex rather than as a silent out-of-range read.
//
// Complexity
//
//   - Time:   O(log n) splits and comparisons
//   - Memory: O(1) beyond the short-lived sub-windows
//
// Usage
//
//	w, _ := window.New(sorted, 0, len(sorted)-1)
//	idx, err := bisect.Search(w, 42, bisect.WithMaxDepth(64))
//	if errors.Is(err, bisect.ErrNotFound) {
//	    // absent
//	}
package bisect
