package ai

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"gridtactics/internal/combat"
	"gridtactics/internal/config"
)

// RuleEnv is the environment personality rules are evaluated against.
type RuleEnv struct {
	Self       SelfView
	Action     ActionView
	Round      int
	AllyCount  int
	EnemyCount int
	LowAllies  int // living allies at or below half health
	DeadAllies int
}

type SelfView struct {
	ID            string
	Pos           int
	HP            int
	MaxHP         int
	HealthPercent int
	Mana          int
	Threat        int
}

type ActionView struct {
	ID        string
	Kind      string
	Offensive bool
	Revives   bool
	Item      bool
	Potential float64
}

type weightRule struct {
	name    string
	src     string
	weight  int
	program *vm.Program
}

// Personality adjusts action priorities with data-driven rules.
type Personality struct {
	ID    string
	rules []weightRule
}

func NewPersonality(def config.PersonalityDef) (*Personality, error) {
	p := &Personality{ID: def.ID}
	for i, r := range def.Rules {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("rule%d", i)
		}
		prog, err := expr.Compile(r.When, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("personality %q: compile rule %q: %w", def.ID, name, err)
		}
		p.rules = append(p.rules, weightRule{name: name, src: r.When, weight: r.Weight, program: prog})
	}
	return p, nil
}

// NewPersonalities compiles every personality in pc, keyed by id.
func NewPersonalities(pc *config.PersonalitiesConfig) (map[string]*Personality, error) {
	out := map[string]*Personality{}
	if pc == nil {
		return out, nil
	}
	for _, def := range pc.Personalities {
		p, err := NewPersonality(def)
		if err != nil {
			return nil, err
		}
		out[def.ID] = p
	}
	return out, nil
}

// Adjust returns the summed weight of every rule matching env.
func (p *Personality) Adjust(env RuleEnv) int {
	if p == nil {
		return 0
	}
	delta := 0
	for _, r := range p.rules {
		out, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("personality rule error", "personality", p.ID, "rule", r.name, "error", err)
			continue
		}
		if match, ok := out.(bool); ok && match {
			delta += r.weight
		}
	}
	return delta
}

func newRuleEnv(actor *combat.Character, bf *combat.Battlefield) RuleEnv {
	env := RuleEnv{
		Self: SelfView{
			ID:            actor.ID,
			Pos:           actor.Pos,
			HP:            actor.HP,
			MaxHP:         actor.MaxHP,
			HealthPercent: actor.HealthPercent(),
			Mana:          actor.Mana,
			Threat:        actor.Threat,
		},
		Round:      bf.Round,
		EnemyCount: len(bf.LivingEnemies(actor.Side())),
	}
	for _, c := range bf.Allies(actor.Side()) {
		if !c.Alive() {
			env.DeadAllies++
			continue
		}
		env.AllyCount++
		if c.HealthPercent() <= 50 {
			env.LowAllies++
		}
	}
	return env
}
