package combat

import (
	"fmt"

	"gridtactics/internal/config"
	"gridtactics/internal/grid"
)

type ActionKind int

const (
	KindAttack ActionKind = iota
	KindSpell
	KindSkill
	KindConsumable
)

func (k ActionKind) String() string {
	switch k {
	case KindAttack:
		return "attack"
	case KindSpell:
		return "spell"
	case KindSkill:
		return "skill"
	case KindConsumable:
		return "consumable"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func ParseKind(s string) (ActionKind, error) {
	switch s {
	case "attack":
		return KindAttack, nil
	case "spell":
		return KindSpell, nil
	case "skill":
		return KindSkill, nil
	case "consumable":
		return KindConsumable, nil
	}
	return 0, fmt.Errorf("unknown action kind %q", s)
}

type Action struct {
	ID        string
	Name      string
	Kind      ActionKind
	Template  grid.Template
	Weight    int
	Offensive bool
	Revives   bool

	Damage         int
	Healing        int
	HealingPercent int
	ManaCost       int
	Cooldown       int // rounds
}

// ActionBook indexes actions and items by id.
type ActionBook struct {
	actions map[string]*Action
	items   map[string]config.ItemDef
}

func NewActionBook(ac *config.ActionsConfig, ic *config.ItemsConfig) (*ActionBook, error) {
	ab := &ActionBook{
		actions: map[string]*Action{},
		items:   map[string]config.ItemDef{},
	}
	if ac != nil {
		for _, d := range ac.Actions {
			kind, err := ParseKind(d.Kind)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", d.ID, err)
			}
			weight := 1
			if d.Weight != nil {
				weight = *d.Weight
			}
			ab.actions[d.ID] = &Action{
				ID:   d.ID,
				Name: d.Name,
				Kind: kind,
				Template: grid.Template{
					Cells:        append([]int(nil), d.Cells...),
					Center:       d.Center,
					Retargetable: d.Retargetable,
					Through:      d.Through,
				},
				Weight:         weight,
				Offensive:      !d.Support,
				Revives:        d.Revives,
				Damage:         d.Damage,
				Healing:        d.Healing,
				HealingPercent: d.HealingPercent,
				ManaCost:       d.ManaCost,
				Cooldown:       d.Cooldown,
			}
		}
	}
	if ic != nil {
		for _, it := range ic.Items {
			ab.items[it.ID] = it
		}
	}
	return ab, nil
}

func (ab *ActionBook) Action(id string) (*Action, bool) {
	a, ok := ab.actions[id]
	return a, ok
}

// NewItem builds a stack of the item with the given id.
func (ab *ActionBook) NewItem(id string, quantity int) (*Item, error) {
	def, ok := ab.items[id]
	if !ok {
		return nil, fmt.Errorf("unknown item %q", id)
	}
	a, ok := ab.actions[def.Action]
	if !ok {
		return nil, fmt.Errorf("item %q: unknown action %q", id, def.Action)
	}
	name := def.Name
	if name == "" {
		name = id
	}
	return &Item{ID: id, Name: name, Quantity: quantity, Action: a}, nil
}

// Instantiate builds a character from its definition.
func (ab *ActionBook) Instantiate(d config.CharacterDef) (*Character, error) {
	c := &Character{
		ID:      d.ID,
		Name:    d.Name,
		Pos:     d.Pos,
		MaxHP:   d.MaxHP,
		HP:      d.MaxHP,
		MaxMana: d.MaxMana,
		Mana:    d.MaxMana,
		Threat:  d.Threat,
		Speed:   d.Speed,
		Stats: Stats{
			Strength:  d.Stats.Strength,
			Intellect: d.Stats.Intellect,
			Wisdom:    d.Stats.Wisdom,
			Defense:   d.Stats.Defense,
		},
		Personality: d.Personality,
	}
	if d.HP != nil {
		c.HP = *d.HP
	}
	if d.Mana != nil {
		c.Mana = *d.Mana
	}
	for _, id := range d.Actions {
		a, ok := ab.actions[id]
		if !ok {
			return nil, fmt.Errorf("character %q: unknown action %q", d.ID, id)
		}
		c.Actions = append(c.Actions, a)
	}
	for _, st := range d.Inventory {
		it, err := ab.NewItem(st.Item, st.Quantity)
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", d.ID, err)
		}
		c.Inventory = append(c.Inventory, it)
	}
	return c, nil
}
