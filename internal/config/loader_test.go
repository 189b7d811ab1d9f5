package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAllAssets(t *testing.T) {
	ac, ic, cc, pc, err := LoadAll(filepath.Join("..", "..", "assets"))
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(ac.Actions) == 0 || len(ic.Items) == 0 || len(cc.Characters) == 0 || len(pc.Personalities) == 0 {
		t.Fatal("expected every config section to be populated")
	}
	for _, a := range ac.Actions {
		if a.Weight == nil || a.Center == 0 {
			t.Errorf("action %q: defaults not applied", a.ID)
		}
	}
	for _, c := range cc.Characters {
		if *c.HP != c.MaxHP {
			t.Errorf("character %q: hp should default to max_hp", c.ID)
		}
	}
}

func writeConfig(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

const baseActions = `
actions:
  - id: jab
    cells: [5]
    retargetable: true
    damage: 5
`

func TestLoadAllDefaults(t *testing.T) {
	dir := writeConfig(t, map[string]string{
		"actions.yaml": baseActions,
		"items.yaml":   "items: []\n",
		"characters.yaml": `
characters:
  - id: a
    pos: 2
    max_hp: 10
    actions: [jab]
`,
	})
	ac, _, cc, pc, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	a := ac.Actions[0]
	if a.Center != 5 || *a.Weight != 1 || a.Kind != "attack" {
		t.Errorf("action defaults = %+v", a)
	}
	c := cc.Characters[0]
	if *c.HP != 10 || c.Name != "a" {
		t.Errorf("character defaults = %+v", c)
	}
	if len(pc.Personalities) != 0 {
		t.Error("missing personalities.yaml should load as empty")
	}
}

func TestLoadAllValidation(t *testing.T) {
	tests := []struct {
		name       string
		characters string
		want       string
	}{
		{"position out of range", "characters:\n  - {id: a, pos: 19, max_hp: 5}\n", "outside 1-18"},
		{"shared position", "characters:\n  - {id: a, pos: 2, max_hp: 5}\n  - {id: b, pos: 2, max_hp: 5}\n", "already held"},
		{"unknown action", "characters:\n  - {id: a, pos: 2, max_hp: 5, actions: [kick]}\n", "unknown action"},
		{"hp above max", "characters:\n  - {id: a, pos: 2, max_hp: 5, hp: 6}\n", "hp 6"},
		{"unknown personality", "characters:\n  - {id: a, pos: 2, max_hp: 5, personality: zen}\n", "unknown personality"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, map[string]string{
				"actions.yaml":    baseActions,
				"items.yaml":      "items: []\n",
				"characters.yaml": tt.characters,
			})
			_, _, _, _, err := LoadAll(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	dir := writeConfig(t, map[string]string{"actions.yaml": baseActions})
	if _, _, _, _, err := LoadAll(dir); err == nil || !strings.Contains(err.Error(), "load items") {
		t.Errorf("err = %v", err)
	}
}
