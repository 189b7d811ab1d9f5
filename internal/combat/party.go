package combat

import (
	"fmt"
	"sort"

	"gridtactics/internal/config"
	"gridtactics/internal/grid"
)

// Battlefield is the board state a decision is made against.
type Battlefield struct {
	Round      int
	Characters []*Character
}

func NewBattlefield(cc *config.CharactersConfig, book *ActionBook) (*Battlefield, error) {
	bf := &Battlefield{Round: 1}
	if cc == nil {
		return bf, nil
	}
	for _, d := range cc.Characters {
		c, err := book.Instantiate(d)
		if err != nil {
			return nil, err
		}
		if bf.At(c.Pos) != nil {
			return nil, fmt.Errorf("character %q: position %d taken", c.ID, c.Pos)
		}
		bf.Characters = append(bf.Characters, c)
	}
	return bf, nil
}

// At returns the character at pos, dead or alive.
func (bf *Battlefield) At(pos int) *Character {
	for _, c := range bf.Characters {
		if c.Pos == pos {
			return c
		}
	}
	return nil
}

func (bf *Battlefield) LivingOccupant(pos int) bool {
	c := bf.At(pos)
	return c != nil && c.Alive()
}

// Allies returns every character on side, including the dead.
func (bf *Battlefield) Allies(side grid.Side) []*Character {
	var out []*Character
	for _, c := range bf.Characters {
		if c.Side() == side {
			out = append(out, c)
		}
	}
	return out
}

func (bf *Battlefield) LivingEnemies(side grid.Side) []*Character {
	var out []*Character
	for _, c := range bf.Characters {
		if c.Side() != side && c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

func (bf *Battlefield) LivingCount(side grid.Side) int {
	n := 0
	for _, c := range bf.Characters {
		if c.Side() == side && c.Alive() {
			n++
		}
	}
	return n
}

// TurnOrder lists living characters by speed, fastest first, ties by id.
func (bf *Battlefield) TurnOrder() []*Character {
	var out []*Character
	for _, c := range bf.Characters {
		if c.Alive() {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Speed != out[j].Speed {
			return out[i].Speed > out[j].Speed
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (bf *Battlefield) Clone() *Battlefield {
	cp := &Battlefield{Round: bf.Round, Characters: make([]*Character, len(bf.Characters))}
	for i, c := range bf.Characters {
		cp.Characters[i] = c.Clone()
	}
	return cp
}
