package ai

import (
	"log/slog"

	"gridtactics/internal/combat"
	"gridtactics/internal/grid"
	"gridtactics/internal/util"
)

// Engine picks actions for non-player characters. It reads the
// battlefield and never modifies it.
type Engine struct {
	Calc          combat.Calculator
	Coin          util.Coin
	Personalities map[string]*Personality
}

func New(calc combat.Calculator, coin util.Coin) *Engine {
	return &Engine{Calc: calc, Coin: coin, Personalities: map[string]*Personality{}}
}

// Decide chooses the action and anchor with the highest score for actor.
// Offensive candidates are scanned first, then defensive ones; both compete
// for the same best. Exact ties are settled by a coin flip. An actor with
// nothing to use gets the zero Decision.
func (e *Engine) Decide(actor *combat.Character, bf *combat.Battlefield) combat.Decision {
	if actor == nil || !actor.Alive() {
		return combat.Decision{}
	}
	cls := e.Classify(actor, bf)
	if cls.Len() == 0 {
		slog.Debug("no action available", "actor", actor.ID)
		return combat.Decision{}
	}

	side := actor.Side()
	allies := bf.Allies(side)
	enemyPrio := EvaluateEnemies(bf.LivingEnemies(side))
	prio := enemyPrio.merge(EvaluateAllies(allies, actor, false))
	var revivePrio Priorities

	var best combat.Decision
	found := false
	scan := func(cands []Candidate) {
		for _, c := range cands {
			p := prio
			if c.Action.Revives {
				if revivePrio == nil {
					revivePrio = enemyPrio.merge(EvaluateAllies(allies, actor, true))
				}
				p = revivePrio
			}
			anchor, score, err := e.BestAnchor(actor, c, bf, p)
			if err != nil {
				slog.Warn("skipping action", "actor", actor.ID, "action", c.Action.ID, "error", err)
				continue
			}
			weight := c.Priority
			if weight < 0 {
				weight = 0
			}
			total := score * weight
			if !found || total > best.Score || (total == best.Score && e.Coin.Bool()) {
				best = combat.Decision{Action: c.Action, Anchor: anchor, Item: c.Item, Score: total}
				found = true
			}
		}
	}
	scan(cls.Offensive)
	scan(cls.Defensive)

	if found {
		slog.Debug("decision", "actor", actor.ID, "action", best.Action.ID, "anchor", best.Anchor, "score", best.Score)
	}
	return best
}

// Classify ranks actor's available options, applying its personality.
func (e *Engine) Classify(actor *combat.Character, bf *combat.Battlefield) Classification {
	cls := Classify(actor.Options(bf.Round), actor, bf.Allies(actor.Side()), e.Calc)
	p := e.Personalities[actor.Personality]
	if p == nil {
		return cls
	}
	env := newRuleEnv(actor, bf)
	adjust := func(bucket []Candidate) {
		for i := range bucket {
			c := &bucket[i]
			env.Action = ActionView{
				ID:        c.Action.ID,
				Kind:      c.Action.Kind.String(),
				Offensive: c.Offensive,
				Revives:   c.Action.Revives,
				Item:      c.Item != nil,
				Potential: c.Potential,
			}
			c.Priority += p.Adjust(env)
		}
	}
	adjust(cls.Offensive)
	adjust(cls.Defensive)
	return cls
}

// BestAnchor returns the anchor where c scores highest against prio.
// Actions that cannot be retargeted are only scored at their center.
func (e *Engine) BestAnchor(actor *combat.Character, c Candidate, bf *combat.Battlefield, prio Priorities) (int, int, error) {
	tpl := c.Action.Template
	if !tpl.Retargetable {
		score, err := e.scoreAnchor(actor, c, bf, prio, tpl.Center)
		return tpl.Center, score, err
	}
	bestAnchor, bestScore := 0, 0
	for anchor := 1; anchor <= grid.Cells; anchor++ {
		score, err := e.scoreAnchor(actor, c, bf, prio, anchor)
		if err != nil {
			return 0, 0, err
		}
		if bestAnchor == 0 || score > bestScore || (score == bestScore && e.Coin.Bool()) {
			bestAnchor, bestScore = anchor, score
		}
	}
	return bestAnchor, bestScore, nil
}

// scoreAnchor sums the priorities of everyone the action reaches from
// anchor. Allies count against offensive actions, enemies against
// defensive ones.
func (e *Engine) scoreAnchor(actor *combat.Character, c Candidate, bf *combat.Battlefield, prio Priorities, anchor int) (int, error) {
	hits, err := grid.Resolve(c.Action.Template, anchor, actor.Side(), bf.LivingOccupant)
	if err != nil {
		return 0, err
	}
	score := 0
	for _, pos := range hits {
		target := bf.At(pos)
		if target == nil {
			continue
		}
		ally := target.Side() == actor.Side()
		if !target.Alive() && !(ally && c.Action.Revives) {
			continue
		}
		p := prio[target.ID]
		switch {
		case ally && c.Offensive:
			score -= p
		case ally:
			score += p
		case c.Offensive:
			score += p
		default:
			score -= p
		}
	}
	return score, nil
}
