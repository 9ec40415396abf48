// Package arrwin provides bounds-checked windows over fixed slices: inclusive
// [min, max] views that can be iterated, split and indexed without ever
// stepping outside their range.
//
// 🚀 What is arrwin?
//
//	A small, zero-surprise library built around two types:
//		• window.Window — an immutable view over a shared backing slice
//		• window.Index  — a position that stays inside its Window through
//		  every Add and Sub
//
// ✨ Why choose arrwin?
//
//   - Every constructor validates eagerly; there is no half-built Window
//   - Underflow, overflow and nonsense ranges are distinct sentinel errors
//   - Pure Go – no cgo, sub-windows share memory instead of copying
//
// Under the hood, everything is organized under two subpackages:
//
//	window/ — Window, Index, Cursor and the sentinel error set
//	bisect/ — split-driven binary search with hooks and a depth cap
//
// Quick ASCII example:
//
//	origin: 99  1  2  3  4 99 99
//	left  :     └──┘            window[1..2]
//	right :           └──┘      window[3..4]
//
//	go get github.com/katalvlaran/arrwin
package arrwin
