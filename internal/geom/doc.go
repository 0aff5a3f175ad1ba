// Package geom provides the geometric value types of the component toolkit
// and the boundary calculator that turns them into a rectangle.
//
// All coordinates live in the non-negative uint16 domain. Values are plain
// comparable structs: builders return modified copies and nothing in this
// package holds callbacks or references to owners.
//
// # Sizing Modes
//
// The calculator supports three policies selecting which insets shrink the
// rectangle:
//
//	ContentBox  margin and padding ignored
//	BorderBox   padding subtracted (default)
//	MarginBox   margin and padding subtracted
//
// Corner points are returned clockwise starting at the top-left:
//
//	P0-------------P1
//	|               |
//	|               |
//	P3-------------P2
//
// Arithmetic saturates. An inset larger than the dimension it is taken from
// yields a degenerate (zero width or height) rectangle instead of wrapping.
package geom
