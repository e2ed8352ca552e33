package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagCycleContainsFourOfEach(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(7)))

	for cycle := range 5 {
		counts := make(map[byte]int)
		for range BagSize {
			counts[bag.Draw().ID]++
		}
		for _, pt := range Pieces() {
			assert.Equal(t, 4, counts[pt.ID], "cycle %d piece %s", cycle, pt)
		}
		assert.Equal(t, 0, bag.Remaining())
	}
}

func TestBagDeterministic(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(99)))
	b := NewBag(rand.New(rand.NewSource(99)))

	for i := range BagSize * 2 {
		assert.Same(t, a.Draw(), b.Draw(), "draw %d", i)
	}
}

func TestBagSpawnPlacement(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(3)))

	for range BagSize * 3 {
		p := bag.Spawn(10)
		assert.Equal(t, DirUp, p.Dir)
		assert.Equal(t, 0, p.Y)
		assert.GreaterOrEqual(t, p.X, 0)
		assert.LessOrEqual(t, p.X, 10-p.Type.Size)
	}
}

func TestBagSpawnNarrowCourt(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(1)))
	// A court narrower than a piece's size still spawns at column 0.
	for range BagSize {
		p := bag.Spawn(2)
		if p.Type.Size >= 2 {
			assert.Equal(t, 0, p.X)
		}
	}
}
