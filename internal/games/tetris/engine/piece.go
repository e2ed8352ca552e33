// Package engine implements the falling-block rules: piece geometry, the court
// grid, collision testing, line clears, scoring and the time-driven update loop.
// It has no dependency on the terminal platform; presentation polls its
// invalidation flags or subscribes to its events.
package engine

// Rotation indices. Dir 0 is the spawn orientation.
const (
	DirUp = iota
	DirRight
	DirDown
	DirLeft

	dirCount = 4
)

// Cell is a (column, row) offset inside a piece's 4x4 bounding box.
type Cell struct {
	X, Y int
}

// PieceType is one of the seven tetromino shapes.
// Each rotation is a 16-bit mask over a 4x4 box, row-major, with the most
// significant bit at the top-left cell. For example j in rotation 0 is 0x44C0:
//
//	0100
//	0100
//	1100
//	0000
type PieceType struct {
	ID    byte
	Size  int // bounding box width used for spawn placement
	Masks [dirCount]uint16

	cells [dirCount][]Cell
}

// The catalog. Values are shared by pointer between every piece of a shape.
var (
	I = &PieceType{ID: 'i', Size: 4, Masks: [dirCount]uint16{0x0F00, 0x2222, 0x00F0, 0x4444}}
	J = &PieceType{ID: 'j', Size: 3, Masks: [dirCount]uint16{0x44C0, 0x8E00, 0x6440, 0x0E20}}
	L = &PieceType{ID: 'l', Size: 3, Masks: [dirCount]uint16{0x4460, 0x0E80, 0xC440, 0x2E00}}
	O = &PieceType{ID: 'o', Size: 2, Masks: [dirCount]uint16{0xCC00, 0xCC00, 0xCC00, 0xCC00}}
	S = &PieceType{ID: 's', Size: 3, Masks: [dirCount]uint16{0x06C0, 0x8C40, 0x6C00, 0x4620}}
	T = &PieceType{ID: 't', Size: 3, Masks: [dirCount]uint16{0x0E40, 0x4C40, 0x4E00, 0x4640}}
	Z = &PieceType{ID: 'z', Size: 3, Masks: [dirCount]uint16{0x0C60, 0x4C80, 0xC600, 0x2640}}
)

var catalog = []*PieceType{I, J, L, O, S, T, Z}

func init() {
	for _, t := range catalog {
		for dir := range dirCount {
			t.cells[dir] = decodeMask(t.Masks[dir])
		}
	}
}

// decodeMask scans the mask MSB first, advancing the column each bit and
// wrapping to the next row every four bits.
func decodeMask(mask uint16) []Cell {
	var cells []Cell
	row, col := 0, 0
	for bit := uint16(0x8000); bit > 0; bit >>= 1 {
		if mask&bit != 0 {
			cells = append(cells, Cell{X: col, Y: row})
		}
		col++
		if col == 4 {
			col = 0
			row++
		}
	}
	return cells
}

// Pieces returns the seven piece types in catalog order.
func Pieces() []*PieceType {
	out := make([]*PieceType, len(catalog))
	copy(out, catalog)
	return out
}

// PieceByID looks a piece type up by its letter.
func PieceByID(id byte) (*PieceType, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// RotationMask returns the occupancy mask of t in rotation dir.
func RotationMask(t *PieceType, dir int) uint16 {
	return t.Masks[NormalizeDir(dir)]
}

// OccupiedCells returns the occupied offsets of t in rotation dir.
// The returned slice is shared and must not be modified.
func OccupiedCells(t *PieceType, dir int) []Cell {
	return t.cells[NormalizeDir(dir)]
}

// String returns the piece letter.
func (t *PieceType) String() string {
	return string(t.ID)
}

// NextDir returns the rotation after dir, wrapping 3 back to 0.
func NextDir(dir int) int {
	return NormalizeDir(dir + 1)
}

// NormalizeDir maps any integer onto [0,4).
func NormalizeDir(dir int) int {
	return ((dir % dirCount) + dirCount) % dirCount
}

// Piece is the active, falling piece: a shape, a rotation and the top-left
// corner of its 4x4 box in court coordinates.
type Piece struct {
	Type *PieceType
	Dir  int
	X, Y int
}

// Cells returns the absolute court cells covered by the piece.
func (p Piece) Cells() []Cell {
	offsets := OccupiedCells(p.Type, p.Dir)
	cells := make([]Cell, len(offsets))
	for i, c := range offsets {
		cells[i] = Cell{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return cells
}
