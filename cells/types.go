package cells

import "errors"

// Sentinel errors for cells operations.
var (
	// ErrNaNCoordinate indicates a line coordinate that is NaN.
	ErrNaNCoordinate = errors.New("cells: line coordinate is NaN")
	// ErrCellIndex indicates a row-major index outside the grid.
	ErrCellIndex = errors.New("cells: cell index out of range")
)

// Cell addresses one rectangle of a Partition.
type Cell struct {
	Col, Row int
}

// Collision lists the IDs of points that share one cell, in input order.
type Collision struct {
	Cell   Cell
	Points []int
}

// Partition is the grid cut by vertical lines xs and horizontal lines ys.
// Width is len(xs)+1 and Height is len(ys)+1. It is immutable once built.
type Partition struct {
	Width, Height int
	xs, ys        []float64
}
