// Package cells partitions the plane into the grid of rectangular cells cut
// out by a set of vertical and horizontal lines.
//
// What:
//
//   - Partition holds the sorted X and Y line coordinates. Column c spans the
//     open interval between the (c−1)-th and c-th X line; the first and last
//     columns are unbounded. Rows work the same way on Y.
//   - CellOf locates a point by binary search on each axis.
//   - Collisions groups points sharing a cell; OnLine lists points lying
//     exactly on a line, which no cell contains.
//   - Separated decides whether a single line lies strictly between two points.
//
// Why:
//
//	Two points are separated by a line set exactly when they fall in
//	different cells. Bucketing by cell turns an all-pairs check into one
//	pass over the points.
//
// Complexity:
//
//   - NewPartition: O(k log k) for k lines.
//   - CellOf, Separated: O(log k).
//   - Collisions, Occupied, OnLine: O(n log k) time, O(n) memory.
//
// Errors:
//
//   - ErrNaNCoordinate: a line coordinate is NaN.
//   - ErrCellIndex: an index outside the grid.
package cells
