package engine

// Occupied is the single collision predicate: it reports whether placing t in
// rotation dir with its box at (x, y) would put any cell outside the court or
// on an occupied cell. Bounds are checked before the grid is read.
func Occupied(g *Grid, t *PieceType, x, y, dir int) bool {
	for _, c := range OccupiedCells(t, dir) {
		cx, cy := x+c.X, y+c.Y
		if !g.InBounds(cx, cy) || g.Get(cx, cy) != nil {
			return true
		}
	}
	return false
}

// Unoccupied is the negation of Occupied.
func Unoccupied(g *Grid, t *PieceType, x, y, dir int) bool {
	return !Occupied(g, t, x, y, dir)
}

// DropDistance returns how many rows p can fall before it is blocked.
func DropDistance(g *Grid, p Piece) int {
	d := 0
	for Unoccupied(g, p.Type, p.X, p.Y+d+1, p.Dir) {
		d++
	}
	return d
}
