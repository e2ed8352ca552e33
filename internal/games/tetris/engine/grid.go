package engine

import (
	"fmt"
	"strings"
)

// Grid is the court: nx columns by ny rows, each cell empty (nil) or holding
// the type of the piece that locked there. The type is only used for color.
type Grid struct {
	nx, ny int
	cells  []*PieceType
}

// NewGrid allocates an empty court.
func NewGrid(nx, ny int) *Grid {
	if nx <= 0 || ny <= 0 {
		panic(fmt.Sprintf("engine: invalid grid size %dx%d", nx, ny))
	}
	return &Grid{
		nx:    nx,
		ny:    ny,
		cells: make([]*PieceType, nx*ny),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.nx
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.ny
}

// InBounds reports whether (x, y) indexes a court cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.nx && y >= 0 && y < g.ny
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("engine: grid access (%d,%d) outside %dx%d", x, y, g.nx, g.ny))
	}
	return y*g.nx + x
}

// Get returns the occupant at (x, y), or nil if empty.
// Callers must bounds-check first; out-of-range access panics.
func (g *Grid) Get(x, y int) *PieceType {
	return g.cells[g.index(x, y)]
}

// Set writes the occupant at (x, y). Out-of-range access panics.
func (g *Grid) Set(x, y int, t *PieceType) {
	g.cells[g.index(x, y)] = t
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// IsRowComplete reports whether every cell in row y is occupied.
func (g *Grid) IsRowComplete(y int) bool {
	row := g.cells[g.index(0, y) : g.index(0, y)+g.nx]
	for _, c := range row {
		if c == nil {
			return false
		}
	}
	return true
}

// CollapseRow removes row y: every row above shifts down by one and row 0
// becomes empty.
func (g *Grid) CollapseRow(y int) {
	start := g.index(0, y)
	copy(g.cells[g.nx:start+g.nx], g.cells[:start])
	clear(g.cells[:g.nx])
}

// ClearCompleteRows scans bottom to top, collapsing each complete row and
// re-checking the same index since the row above has moved into it.
// Returns the number of rows removed.
func (g *Grid) ClearCompleteRows() int {
	n := 0
	for y := g.ny - 1; y >= 0; {
		if g.IsRowComplete(y) {
			g.CollapseRow(y)
			n++
			continue
		}
		y--
	}
	return n
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.cells {
		if c != nil {
			n++
		}
	}
	return n
}

// Rows dumps the court as strings, '.' for empty and the piece letter otherwise.
func (g *Grid) Rows() []string {
	rows := make([]string, g.ny)
	var sb strings.Builder
	for y := range g.ny {
		sb.Reset()
		for x := range g.nx {
			if c := g.Get(x, y); c != nil {
				sb.WriteByte(c.ID)
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders Rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
