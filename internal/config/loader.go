package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadAll reads the battle data from dir. personalities.yaml is optional.
func LoadAll(dir string) (*ActionsConfig, *ItemsConfig, *CharactersConfig, *PersonalitiesConfig, error) {
	var ac ActionsConfig
	var ic ItemsConfig
	var cc CharactersConfig
	var pc PersonalitiesConfig
	if err := loadYAML(filepath.Join(dir, "actions.yaml"), &ac); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load actions: %w", err)
	}
	if err := loadYAML(filepath.Join(dir, "items.yaml"), &ic); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load items: %w", err)
	}
	if err := loadYAML(filepath.Join(dir, "characters.yaml"), &cc); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load characters: %w", err)
	}
	if err := loadYAML(filepath.Join(dir, "personalities.yaml"), &pc); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil, nil, fmt.Errorf("load personalities: %w", err)
	}
	ac.applyDefaults()
	cc.applyDefaults()
	if err := Validate(&ac, &ic, &cc, &pc); err != nil {
		return nil, nil, nil, nil, err
	}
	return &ac, &ic, &cc, &pc, nil
}

func (ac *ActionsConfig) applyDefaults() {
	for i := range ac.Actions {
		a := &ac.Actions[i]
		if a.Center == 0 {
			a.Center = 5
		}
		if a.Weight == nil {
			w := 1
			a.Weight = &w
		}
		if a.Kind == "" {
			a.Kind = "attack"
		}
	}
}

func (cc *CharactersConfig) applyDefaults() {
	for i := range cc.Characters {
		c := &cc.Characters[i]
		if c.HP == nil {
			hp := c.MaxHP
			c.HP = &hp
		}
		if c.Mana == nil {
			mp := c.MaxMana
			c.Mana = &mp
		}
		if c.Name == "" {
			c.Name = c.ID
		}
		for j := range c.Inventory {
			if c.Inventory[j].Quantity == 0 {
				c.Inventory[j].Quantity = 1
			}
		}
	}
}

// Validate checks cross references and board positions.
func Validate(ac *ActionsConfig, ic *ItemsConfig, cc *CharactersConfig, pc *PersonalitiesConfig) error {
	actions := map[string]bool{}
	for _, a := range ac.Actions {
		if a.ID == "" {
			return errors.New("action with empty id")
		}
		if actions[a.ID] {
			return fmt.Errorf("duplicate action %q", a.ID)
		}
		actions[a.ID] = true
		if a.Retargetable && (a.Center < 1 || a.Center > 9) {
			return fmt.Errorf("action %q: center %d outside 1-9", a.ID, a.Center)
		}
	}
	items := map[string]bool{}
	for _, it := range ic.Items {
		if !actions[it.Action] {
			return fmt.Errorf("item %q: unknown action %q", it.ID, it.Action)
		}
		items[it.ID] = true
	}
	personalities := map[string]bool{}
	for _, p := range pc.Personalities {
		personalities[p.ID] = true
	}
	taken := map[int]string{}
	for _, c := range cc.Characters {
		if c.Pos < 1 || c.Pos > 18 {
			return fmt.Errorf("character %q: position %d outside 1-18", c.ID, c.Pos)
		}
		if other, ok := taken[c.Pos]; ok {
			return fmt.Errorf("character %q: position %d already held by %q", c.ID, c.Pos, other)
		}
		taken[c.Pos] = c.ID
		if c.MaxHP <= 0 {
			return fmt.Errorf("character %q: max_hp must be positive", c.ID)
		}
		if *c.HP < 0 || *c.HP > c.MaxHP {
			return fmt.Errorf("character %q: hp %d outside 0-%d", c.ID, *c.HP, c.MaxHP)
		}
		for _, id := range c.Actions {
			if !actions[id] {
				return fmt.Errorf("character %q: unknown action %q", c.ID, id)
			}
		}
		for _, st := range c.Inventory {
			if !items[st.Item] {
				return fmt.Errorf("character %q: unknown item %q", c.ID, st.Item)
			}
		}
		if c.Personality != "" && !personalities[c.Personality] {
			return fmt.Errorf("character %q: unknown personality %q", c.ID, c.Personality)
		}
	}
	return nil
}
