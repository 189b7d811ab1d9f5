package combat

import "gridtactics/internal/grid"

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Stats struct {
	Strength  int
	Intellect int
	Wisdom    int
	Defense   int
}

type Character struct {
	ID   string
	Name string
	Pos  int // 1-18

	HP      int
	MaxHP   int
	Mana    int
	MaxMana int
	Threat  int
	Speed   int
	Stats   Stats

	Actions     []*Action
	Inventory   []*Item
	Personality string

	readyAt map[string]int // action id -> first round it can be used again
}

// Item is a consumable carrying an embedded action.
type Item struct {
	ID       string
	Name     string
	Quantity int
	Action   *Action
}

// Option is one usable action, with the item it comes from when consumed
// out of the inventory.
type Option struct {
	Action *Action
	Item   *Item
}

func (c *Character) Side() grid.Side { return grid.SideOf(c.Pos) }
func (c *Character) Alive() bool     { return c.HP > 0 }

func (c *Character) HealthPercent() int {
	if c.MaxHP <= 0 {
		return 0
	}
	return c.HP * 100 / c.MaxHP
}

func (c *Character) Ready(a *Action, round int) bool {
	return round >= c.readyAt[a.ID]
}

func (c *Character) Trigger(a *Action, round int) {
	if a.Cooldown <= 0 {
		return
	}
	if c.readyAt == nil {
		c.readyAt = map[string]int{}
	}
	c.readyAt[a.ID] = round + a.Cooldown + 1
}

// Options lists the actions c can use this round: attacks, affordable
// spells, skills off cooldown, and consumables still in stock.
func (c *Character) Options(round int) []Option {
	var out []Option
	for _, a := range c.Actions {
		if c.usable(a, round) {
			out = append(out, Option{Action: a})
		}
	}
	for _, it := range c.Inventory {
		if it.Quantity > 0 && it.Action != nil {
			out = append(out, Option{Action: it.Action, Item: it})
		}
	}
	return out
}

func (c *Character) usable(a *Action, round int) bool {
	switch a.Kind {
	case KindAttack:
		return true
	case KindSpell:
		return c.Mana >= a.ManaCost
	case KindSkill:
		return c.Ready(a, round)
	case KindConsumable:
		// only usable through an inventory item
		return false
	}
	return false
}

// Clone copies the character's mutable state. Actions are shared; items
// are copied so quantities stay independent.
func (c *Character) Clone() *Character {
	cp := *c
	cp.Actions = append([]*Action(nil), c.Actions...)
	cp.Inventory = make([]*Item, len(c.Inventory))
	for i, it := range c.Inventory {
		itc := *it
		cp.Inventory[i] = &itc
	}
	if c.readyAt != nil {
		cp.readyAt = make(map[string]int, len(c.readyAt))
		for k, v := range c.readyAt {
			cp.readyAt[k] = v
		}
	}
	return &cp
}
