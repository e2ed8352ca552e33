package tetris

// PieceSnapshot is the serializable form of a piece.
type PieceSnapshot struct {
	ID  string
	Dir int
	X   int
	Y   int
}

// Snapshot captures the complete game state for determinism testing and
// screenshots.
type Snapshot struct {
	Variant     string
	State       string
	Score       int
	VisualScore int
	Rows        int
	Level       int
	Bonus       bool
	Mirrored    bool
	Step        float64
	Grid        []string // one string per row, '.' for empty cells
	Current     PieceSnapshot
	Next        string
	Pending     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.eng == nil {
		return Snapshot{Variant: string(g.variant)}
	}
	cur := g.eng.Current()
	return Snapshot{
		Variant:     string(g.variant),
		State:       g.eng.State().String(),
		Score:       g.eng.Score(),
		VisualScore: g.eng.VisualScore(),
		Rows:        g.eng.Rows(),
		Level:       g.eng.Level(),
		Bonus:       g.eng.Bonus(),
		Mirrored:    g.eng.Mirrored(),
		Step:        g.eng.Step(),
		Grid:        g.eng.Grid().Rows(),
		Current: PieceSnapshot{
			ID:  cur.Type.String(),
			Dir: cur.Dir,
			X:   cur.X,
			Y:   cur.Y,
		},
		Next:    g.eng.Next().Type.String(),
		Pending: g.eng.Pending(),
	}
}
