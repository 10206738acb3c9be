// Package sepline separates a set of 2D points with axis-parallel lines.
//
// 🚀 What is sepline?
//
//	Given n distinct integer points, sepline finds vertical and horizontal
//	lines such that every pair of points ends up in a different cell. It is a
//	greedy heuristic in three phases:
//		• Generation: divide-and-conquer midpoints, n−1 candidates per axis
//		• Commitment: X and Y candidates in lockstep, kept only when they cut a
//		  still-connected pair
//		• Optimization: drop committed lines whose strip stays separated
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      — Point, Axis, the connectivity Store (bitsets) and sorted Views
//	lines/     — candidate Line, the ordered Set and candidate generation
//	separate/  — Solver: commitment, optimization, Verify, metrics and spans
//	cells/     — Partition of the plane by a line set; cell lookup & collisions
//	instance/  — instance file reading and solution file writing
//	pointset/  — deterministic instance generators (grid, diagonal, random)
//	render/    — SVG drawing of points and lines
//	cmd/sepline — the command-line front end
//
// Quick ASCII example:
//
//	  •  │  •          two points per side of x = 1 are still joined,
//	─────┼─────        so y = 1 is committed as well: four cells,
//	  •  │  •          one point each.
//
// See separate.Solve for the library entry point.
package sepline
