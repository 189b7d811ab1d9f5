package ai

import (
	"path/filepath"
	"strings"
	"testing"

	"gridtactics/internal/config"
)

func TestNewPersonalityRejectsBadRules(t *testing.T) {
	tests := []struct {
		name string
		when string
	}{
		{"syntax", "Self.HP >"},
		{"unknown field", "Self.Luck > 3"},
		{"not boolean", "Self.HP + 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPersonality(config.PersonalityDef{
				ID:    "broken",
				Rules: []config.WeightRule{{Name: "bad", When: tt.when, Weight: 1}},
			})
			if err == nil || !strings.Contains(err.Error(), `"bad"`) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestPersonalityAdjust(t *testing.T) {
	p, err := NewPersonality(config.PersonalityDef{
		ID: "brute",
		Rules: []config.WeightRule{
			{When: "Action.Offensive", Weight: 2},
			{When: "Self.HealthPercent <= 25", Weight: 3},
			{When: "Action.Item", Weight: -1},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		env  RuleEnv
		want int
	}{
		{"none", RuleEnv{Self: SelfView{HealthPercent: 100}}, 0},
		{"offensive", RuleEnv{Self: SelfView{HealthPercent: 100}, Action: ActionView{Offensive: true}}, 2},
		{"desperate", RuleEnv{Self: SelfView{HealthPercent: 10}, Action: ActionView{Offensive: true}}, 5},
		{"item", RuleEnv{Self: SelfView{HealthPercent: 100}, Action: ActionView{Offensive: true, Item: true}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Adjust(tt.env); got != tt.want {
				t.Errorf("Adjust = %d, want %d", got, tt.want)
			}
		})
	}

	var none *Personality
	if none.Adjust(RuleEnv{}) != 0 {
		t.Error("nil personality should not adjust")
	}
}

func TestNewPersonalitiesFromAssets(t *testing.T) {
	_, _, _, pc, err := config.LoadAll(filepath.Join("..", "..", "assets"))
	if err != nil {
		t.Fatal(err)
	}
	ps, err := NewPersonalities(pc)
	if err != nil {
		t.Fatalf("NewPersonalities: %v", err)
	}
	for _, def := range pc.Personalities {
		if ps[def.ID] == nil {
			t.Errorf("personality %q missing", def.ID)
		}
	}
}
