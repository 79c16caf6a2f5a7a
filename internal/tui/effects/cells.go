package effects

import "math"

// Nominal terminal cell size used to map pixel offsets onto the grid.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// Columns converts a horizontal pixel offset to whole columns.
func Columns(px float64) int {
	return int(math.Round(px / CellWidthPx))
}

// Rows converts a vertical pixel offset to whole rows.
func Rows(px float64) int {
	return int(math.Round(px / CellHeightPx))
}

// Visibility buckets an opacity for a terminal that can only draw text
// hidden, faint or normal.
type Visibility int

const (
	Hidden Visibility = iota
	Faint
	Opaque
)

// VisibilityOf maps opacity onto a Visibility.
func VisibilityOf(opacity float64) Visibility {
	switch {
	case opacity < 0.34:
		return Hidden
	case opacity < 1:
		return Faint
	default:
		return Opaque
	}
}
