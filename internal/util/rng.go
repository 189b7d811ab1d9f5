package util

import "math/rand"

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Coin is a fair binary choice used for tie-breaking.
type Coin interface {
	Bool() bool
}

// RandCoin flips with a seeded *rand.Rand. Not safe for concurrent use.
type RandCoin struct {
	Rng *rand.Rand
}

func NewCoin(seed int64) *RandCoin { return &RandCoin{Rng: New(seed)} }

func (c *RandCoin) Bool() bool { return c.Rng.Intn(2) == 1 }

// SeqCoin replays a fixed sequence of flips, cycling when exhausted.
// An empty sequence always returns false.
type SeqCoin struct {
	Flips []bool
	next  int
}

func (c *SeqCoin) Bool() bool {
	if len(c.Flips) == 0 {
		return false
	}
	v := c.Flips[c.next%len(c.Flips)]
	c.next++
	return v
}

// Calls reports how many flips have been drawn.
func (c *SeqCoin) Calls() int { return c.next }
