package ai

import (
	"testing"

	"gridtactics/internal/combat"
	"gridtactics/internal/grid"
)

func support(id string, healing, healingPct int) *combat.Action {
	return &combat.Action{
		ID:             id,
		Kind:           combat.KindSpell,
		Template:       grid.Template{Cells: []int{5}, Center: 5, Retargetable: true, Through: true},
		Weight:         1,
		Healing:        healing,
		HealingPercent: healingPct,
	}
}

func priorities(bucket []Candidate) map[string]int {
	out := map[string]int{}
	for _, c := range bucket {
		out[c.Action.ID] = c.Priority
	}
	return out
}

func TestClassify(t *testing.T) {
	slash := strike("slash", 30, 5)
	cleave := strike("cleave", 20, 2, 5, 8)
	nuke := strike("nuke", 60, 5)
	heal := support("heal", 40, 0)
	prayer := support("prayer", 0, 10)

	actor := newChar("actor", 11, 100, 100, 0, slash, cleave, nuke, heal, prayer)
	ally := newChar("ally", 12, 300, 300, 0)
	options := actor.Options(1)

	cls := Classify(options, actor, []*combat.Character{actor, ally}, combat.StatCalculator{})
	if len(cls.Offensive) != 3 || len(cls.Defensive) != 2 {
		t.Fatalf("offensive %d defensive %d", len(cls.Offensive), len(cls.Defensive))
	}

	// offensive median 30: nuke is at 200%
	off := priorities(cls.Offensive)
	if off["slash"] != 1 || off["cleave"] != 1 || off["nuke"] != 4 {
		t.Errorf("offensive priorities = %v", off)
	}

	// heal potential 40, prayer 10% of avg max hp 200 = 20, median 30
	def := priorities(cls.Defensive)
	if def["heal"] != 3 || def["prayer"] != 1 {
		t.Errorf("defensive priorities = %v", def)
	}
	for _, c := range cls.Defensive {
		if c.Action.ID == "prayer" && c.Potential != 20 {
			t.Errorf("prayer potential = %v, want 20", c.Potential)
		}
	}
}

func TestClassifyDefensiveRules(t *testing.T) {
	drain := strike("drain", 10, 5)
	drain.Healing = 25 // heals more than it hurts
	taunt := strike("taunt", 5, 5)
	taunt.Offensive = false
	mend := strike("mend", 10, 5)
	mend.HealingPercent = 5

	actor := newChar("actor", 11, 100, 100, 0, drain, taunt, mend)
	cls := Classify(actor.Options(1), actor, []*combat.Character{actor}, combat.StatCalculator{})
	if len(cls.Offensive) != 0 || len(cls.Defensive) != 3 {
		t.Fatalf("offensive %d defensive %d, want all defensive", len(cls.Offensive), len(cls.Defensive))
	}
	for _, c := range cls.Defensive {
		if c.Offensive {
			t.Errorf("%s flagged offensive", c.Action.ID)
		}
	}
}

func TestClassifyZeroMedian(t *testing.T) {
	poke := strike("poke", 0, 5)
	poke.Weight = 2
	actor := newChar("actor", 11, 100, 100, 0, poke)
	cls := Classify(actor.Options(1), actor, nil, combat.StatCalculator{})
	if len(cls.Offensive) != 1 {
		t.Fatalf("offensive = %d", len(cls.Offensive))
	}
	if got := cls.Offensive[0].Priority; got != 3 {
		t.Errorf("priority = %d, want weight 2 + 1", got)
	}
}

func TestClassifyTierDoesNotCompose(t *testing.T) {
	small := strike("small", 10, 5)
	mid := strike("mid", 10, 5)
	big := strike("big", 100, 5)
	actor := newChar("actor", 11, 100, 100, 0, small, mid, big)
	cls := Classify(actor.Options(1), actor, nil, combat.StatCalculator{})
	if got := priorities(cls.Offensive)["big"]; got != 4 {
		t.Errorf("big = %d, want 1 + 3", got)
	}
}

func TestClassifyItems(t *testing.T) {
	bomb := strike("bomb", 35, 2, 4, 5, 6, 8)
	bomb.Kind = combat.KindConsumable
	actor := newChar("actor", 11, 100, 100, 0)
	actor.Inventory = []*combat.Item{{ID: "bomb", Quantity: 1, Action: bomb}, {ID: "empty", Quantity: 0, Action: bomb}}

	cls := Classify(actor.Options(1), actor, nil, combat.StatCalculator{})
	if len(cls.Offensive) != 1 {
		t.Fatalf("offensive = %d, want only the stocked item", len(cls.Offensive))
	}
	if cls.Offensive[0].Item == nil || cls.Offensive[0].Item.ID != "bomb" {
		t.Errorf("item = %+v", cls.Offensive[0].Item)
	}
}
