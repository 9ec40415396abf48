// SPDX-License-Identifier: MIT

// Package window provides a bounds-checked view over a fixed backing slice,
// together with an Index type that can never point outside its view.
//
// 🚀 What is a Window?
//
//	A Window is an inclusive [min, max] range over a shared, immutable-length
//	slice. It never copies or mutates the slice; sub-windows produced by Split
//	share the very same backing array.
//
//	   origin:  99   1   2   3   4  99  99
//	   index :   0   1   2   3   4   5   6
//	                 └─────────────┘
//	                 Window[1..4]
//
// ✨ Key features:
//   - eager, exhaustive validation on every constructor
//   - Index arithmetic (Add/Sub) that re-validates before returning
//   - lazy iteration via iter.Seq, plus a single-pass Cursor
//   - Pivot/Split for divide-and-conquer callers (see package bisect)
//
// Errors
//
//	Every failure wraps one of the sentinels below; match with errors.Is.
//	  • ErrIndexUnderflow — a bound or position is below the permitted minimum
//	  • ErrIndexOverflow  — a bound or position is above the permitted maximum
//	  • ErrInvalidIndex   — empty origin, max < min, zero Index, negative offset
//	  • ErrForeignIndex   — Window.At received an Index from another Window
//
// ⚙️ Usage:
//
//	w, err := window.New([]int{99, 1, 2, 3, 4, 99, 99}, 1, 4)
//	if err != nil {
//	  // handle ErrIndexUnderflow / ErrIndexOverflow / ErrInvalidIndex
//	}
//	left, right, _ := w.Split()   // [1 2] and [3 4]
//	p, _ := w.Pivot()             // position 3
//	next, err := p.Add(1)         // position 4
//	_, err = next.Add(1)          // ErrIndexOverflow
//
// Complexity:
//
//	All operations are O(1) except ToSlice and iteration, which are O(Len()).
//
// Concurrency:
//
//	Windows and Indexes are immutable values; concurrent reads are safe as long
//	as nothing else writes to the backing slice.
package window
