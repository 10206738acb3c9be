// Package instance reads point-set instance files and writes solution files.
//
// Input format: whitespace-separated integer tokens. The first token is the
// point count n; then n pairs "x y". Line breaks carry no meaning.
//
//	3
//	0 0
//	1 0
//	2 0
//
// Output format: the number of lines, then one line per committed line in
// commit order, "v" for vertical (an X coordinate) and "h" for horizontal:
//
//	2
//	v 1.5
//	v 0.5
//
// Output files are named prefix + the digits found in the input base name,
// parsed as an integer and zero-padded to two places ("greedy_solution07").
//
// Errors:
//
//   - ErrFileNotFound: the input path does not exist.
//   - ErrNoPoints: no readable, non-negative count.
//   - ErrPointCountMismatch: the pairs do not match the count.
//   - core.ErrCapacityExceeded: the count exceeds the capacity.
package instance
