package combat

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gridtactics/internal/grid"
)

type SimResult struct {
	Winner            string         `json:"winner"` // near | far | draw
	Rounds            int            `json:"rounds"`
	Events            []Event        `json:"events,omitempty"`
	DamageByAction    map[string]int `json:"damage_by_action,omitempty"`
	DamageByCharacter map[string]int `json:"damage_by_character,omitempty"`
	HealingByAction   map[string]int `json:"healing_by_action,omitempty"`
	Survivors         []SimSurvivor  `json:"survivors"`
}

type SimSurvivor struct {
	ID     string `json:"id"`
	Pos    int    `json:"pos"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"max_hp"`
	Threat int    `json:"threat"`
}

type Env struct {
	MaxRounds int
}

// RunBattle lets decider play every living character, fastest first, until
// one side is wiped out or MaxRounds is reached. bf is modified in place.
func RunBattle(env *Env, bf *Battlefield, decider Decider, calc Calculator, record bool) SimResult {
	var events []Event
	emit := func(ev Event) {
		if record {
			events = append(events, ev)
		}
	}
	maxRounds := env.MaxRounds
	if maxRounds <= 0 {
		maxRounds = 50
	}

	damageByAction := map[string]int{}
	damageByCharacter := map[string]int{}
	healingByAction := map[string]int{}
	x := NewExecutor(calc, emit)
	x.OnDamage = func(src, _ *Character, a *Action, amount int) {
		damageByAction[a.ID] += amount
		damageByCharacter[src.ID] += amount
	}
	x.OnHeal = func(_, _ *Character, a *Action, amount int) {
		healingByAction[a.ID] += amount
	}

	for _, c := range bf.Characters {
		emit(Event{Round: 0, Type: "Spawn", Payload: map[string]any{
			"id": c.ID, "pos": c.Pos, "side": c.Side().String(), "hp": c.HP, "max_hp": c.MaxHP,
		}})
	}

	if bf.Round <= 0 {
		bf.Round = 1
	}
	rounds := 0
	for bf.Round <= maxRounds && !over(bf) {
		rounds = bf.Round
		emit(Event{Round: bf.Round, Type: "RoundStart"})
		for _, actor := range bf.TurnOrder() {
			if !actor.Alive() {
				continue
			}
			d := decider.Decide(actor, bf)
			if err := x.Apply(actor, d, bf); err != nil {
				slog.Warn("decision rejected", "actor", actor.ID, "error", err)
				emit(Event{Round: bf.Round, Type: "Wait", Payload: map[string]any{"actor": actor.ID, "reason": err.Error()}})
			}
			if over(bf) {
				break
			}
		}
		if over(bf) {
			break
		}
		bf.Round++
	}

	res := SimResult{
		Winner:            winner(bf),
		Rounds:            rounds,
		DamageByAction:    damageByAction,
		DamageByCharacter: damageByCharacter,
		HealingByAction:   healingByAction,
	}
	for _, c := range bf.Characters {
		if c.Alive() {
			res.Survivors = append(res.Survivors, SimSurvivor{ID: c.ID, Pos: c.Pos, HP: c.HP, MaxHP: c.MaxHP, Threat: c.Threat})
		}
	}
	if record {
		emit(Event{Round: rounds, Type: "End", Payload: map[string]any{"winner": res.Winner}})
		res.Events = events
	}
	return res
}

func over(bf *Battlefield) bool {
	return bf.LivingCount(grid.Near) == 0 || bf.LivingCount(grid.Far) == 0
}

func winner(bf *Battlefield) string {
	near, far := bf.LivingCount(grid.Near), bf.LivingCount(grid.Far)
	switch {
	case near > 0 && far == 0:
		return grid.Near.String()
	case far > 0 && near == 0:
		return grid.Far.String()
	}
	return "draw"
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}

func (r SimResult) String() string {
	return fmt.Sprintf("winner=%s rounds=%d survivors=%d", r.Winner, r.Rounds, len(r.Survivors))
}
