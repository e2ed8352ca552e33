package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupiedCellsFourUniqueCells(t *testing.T) {
	for _, pt := range Pieces() {
		for dir := range 4 {
			cells := OccupiedCells(pt, dir)
			require.Len(t, cells, 4, "piece %s dir %d", pt, dir)

			seen := make(map[Cell]bool)
			for _, c := range cells {
				assert.False(t, seen[c], "piece %s dir %d repeats cell %v", pt, dir, c)
				seen[c] = true
				assert.True(t, c.X >= 0 && c.X < 4 && c.Y >= 0 && c.Y < 4,
					"piece %s dir %d cell %v outside 4x4 box", pt, dir, c)
			}
		}
	}
}

func TestDecodeMaskOrder(t *testing.T) {
	tests := []struct {
		name string
		mask uint16
		want []Cell
	}{
		{
			name: "j rotation 0",
			mask: 0x44C0,
			want: []Cell{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
		},
		{
			name: "i horizontal",
			mask: 0x0F00,
			want: []Cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		},
		{
			name: "o square",
			mask: 0xCC00,
			want: []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		},
		{
			name: "bottom-right corner only",
			mask: 0x0001,
			want: []Cell{{3, 3}},
		},
		{
			name: "empty",
			mask: 0,
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decodeMask(tc.mask))
		})
	}
}

func TestCellsFitBoundingSize(t *testing.T) {
	// Spawn placement relies on rotation 0 staying inside Size columns.
	for _, pt := range Pieces() {
		for _, c := range OccupiedCells(pt, DirUp) {
			assert.Less(t, c.X, pt.Size, "piece %s", pt)
		}
	}
}

func TestRotationMask(t *testing.T) {
	assert.Equal(t, uint16(0x44C0), RotationMask(J, 0))
	assert.Equal(t, uint16(0x2222), RotationMask(I, 1))
	assert.Equal(t, uint16(0x2640), RotationMask(Z, 3))
	assert.Equal(t, RotationMask(T, 0), RotationMask(T, 4), "rotation wraps")
}

func TestPieceByID(t *testing.T) {
	for _, pt := range Pieces() {
		got, ok := PieceByID(pt.ID)
		require.True(t, ok)
		assert.Same(t, pt, got)
	}

	_, ok := PieceByID('x')
	assert.False(t, ok)
}

func TestNextDirWraps(t *testing.T) {
	assert.Equal(t, 1, NextDir(0))
	assert.Equal(t, 0, NextDir(3))
	assert.Equal(t, 3, NormalizeDir(-1))
}

func TestPieceCellsAbsolute(t *testing.T) {
	p := Piece{Type: O, Dir: DirUp, X: 4, Y: 7}
	assert.ElementsMatch(t, []Cell{{4, 7}, {5, 7}, {4, 8}, {5, 8}}, p.Cells())
}
