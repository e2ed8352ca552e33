package engine

import "math/rand"

// copiesPerBag is how many of each shape a full bag holds.
const copiesPerBag = 4

// BagSize is the number of draws in one refill cycle.
const BagSize = copiesPerBag * 7

// Bag is a random-bag generator: four of each shape, drawn without
// replacement, refilled when empty. Every 28-draw cycle contains each shape
// exactly four times.
type Bag struct {
	rng    *rand.Rand
	pieces []*PieceType
}

// NewBag creates a bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{
		rng:    rng,
		pieces: make([]*PieceType, 0, BagSize),
	}
}

func (b *Bag) refill() {
	b.pieces = b.pieces[:0]
	for _, t := range catalog {
		for range copiesPerBag {
			b.pieces = append(b.pieces, t)
		}
	}
}

// Draw removes and returns a random piece type from the bag.
func (b *Bag) Draw() *PieceType {
	if len(b.pieces) == 0 {
		b.refill()
	}
	i := b.rng.Intn(len(b.pieces))
	t := b.pieces[i]
	last := len(b.pieces) - 1
	b.pieces[i] = b.pieces[last]
	b.pieces = b.pieces[:last]
	return t
}

// Remaining returns how many draws are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.pieces)
}

// Spawn draws a type and places it at the top of a court nx wide, rotation 0,
// at a random column that keeps its bounding size inside the court.
func (b *Bag) Spawn(nx int) Piece {
	t := b.Draw()
	x := 0
	if span := nx - t.Size; span > 0 {
		x = b.rng.Intn(span + 1)
	}
	return Piece{Type: t, Dir: DirUp, X: x, Y: 0}
}
