package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every cell of row y except the listed columns.
func fillRow(g *Grid, y int, t *PieceType, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := range g.Width() {
		if !skip[x] {
			g.Set(x, y, t)
		}
	}
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid(10, 20)

	assert.Nil(t, g.Get(3, 4))
	g.Set(3, 4, T)
	assert.Same(t, T, g.Get(3, 4))
	assert.Equal(t, 1, g.Filled())

	g.Clear()
	assert.Nil(t, g.Get(3, 4))
	assert.Equal(t, 0, g.Filled())
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(10, 20)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 10, 0},
		{"above", 0, -1},
		{"below", 0, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { g.Get(tc.x, tc.y) })
			assert.Panics(t, func() { g.Set(tc.x, tc.y, I) })
		})
	}
}

func TestGridIsRowComplete(t *testing.T) {
	g := NewGrid(4, 3)
	fillRow(g, 2, I, 1)
	assert.False(t, g.IsRowComplete(2))

	g.Set(1, 2, J)
	assert.True(t, g.IsRowComplete(2))
	assert.False(t, g.IsRowComplete(1))
}

func TestGridCollapseRow(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, I)
	g.Set(1, 1, J)
	fillRow(g, 2, O)
	g.Set(3, 3, S)

	g.CollapseRow(2)

	want := []string{
		"....",
		"i...",
		".j..",
		"...s",
	}
	assert.Equal(t, want, g.Rows())
	assert.False(t, g.IsRowComplete(2))
}

func TestGridCollapseTopRow(t *testing.T) {
	g := NewGrid(3, 2)
	fillRow(g, 0, T)
	g.CollapseRow(0)
	assert.Equal(t, []string{"...", "..."}, g.Rows())
}

func TestGridClearCompleteRows(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		want  []string
		n     int
	}{
		{
			name:  "nothing complete",
			setup: []string{"....", "..o.", "o.oo"},
			want:  []string{"....", "..o.", "o.oo"},
			n:     0,
		},
		{
			name:  "single bottom row",
			setup: []string{"....", ".t..", "iiii"},
			want:  []string{"....", "....", ".t.."},
			n:     1,
		},
		{
			name:  "two adjacent rows",
			setup: []string{"j...", "iiii", "oooo"},
			want:  []string{"....", "....", "j..."},
			n:     2,
		},
		{
			name:  "split rows",
			setup: []string{"ssss", ".z..", "llll"},
			want:  []string{"....", "....", ".z.."},
			n:     2,
		},
		{
			name:  "whole court",
			setup: []string{"iiii", "iiii", "iiii"},
			want:  []string{"....", "....", "...."},
			n:     3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFromRows(t, tc.setup)
			assert.Equal(t, tc.n, g.ClearCompleteRows())
			assert.Equal(t, tc.want, g.Rows())
		})
	}
}

func TestGridString(t *testing.T) {
	g := gridFromRows(t, []string{"i.", ".o"})
	assert.Equal(t, "i.\n.o", g.String())
}

func TestNewGridRejectsEmptySize(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 20) })
}

// gridFromRows builds a grid from a Rows-style dump.
func gridFromRows(t *testing.T, rows []string) *Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, g.Width())
		for x, ch := range strings.Split(row, "") {
			if ch == "." {
				continue
			}
			pt, ok := PieceByID(ch[0])
			require.True(t, ok, "unknown piece %q", ch)
			g.Set(x, y, pt)
		}
	}
	return g
}
