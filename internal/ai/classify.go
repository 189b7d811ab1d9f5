package ai

import "gridtactics/internal/combat"

// Candidate is an available action with its estimated effect and the
// priority the decision scan weighs it by.
type Candidate struct {
	combat.Option
	Offensive      bool
	Damage         int
	Healing        int
	HealingPercent int
	Potential      float64
	Priority       int
}

type Classification struct {
	Offensive []Candidate
	Defensive []Candidate
}

func (c Classification) Len() int { return len(c.Offensive) + len(c.Defensive) }

// Classify splits options into offensive and defensive buckets and ranks
// each option against its bucket's median potential. A defensive option
// nets negative damage, heals by percentage, or is not flagged offensive.
func Classify(options []combat.Option, actor *combat.Character, allies []*combat.Character, calc combat.Calculator) Classification {
	avgMaxHP := 0.0
	if len(allies) > 0 {
		sum := 0
		for _, c := range allies {
			sum += c.MaxHP
		}
		avgMaxHP = float64(sum) / float64(len(allies))
	}

	var out Classification
	for _, opt := range options {
		a := opt.Action
		cand := Candidate{
			Option:         opt,
			Damage:         calc.Damage(actor, a),
			Healing:        calc.Healing(actor, a),
			HealingPercent: calc.HealingPercent(actor, a),
		}
		net := cand.Damage - cand.Healing
		if net < 0 || cand.HealingPercent > 0 || !a.Offensive {
			cand.Potential = float64(-net) + float64(cand.HealingPercent)*avgMaxHP/100
			out.Defensive = append(out.Defensive, cand)
			continue
		}
		cand.Offensive = true
		cand.Potential = float64(net)
		out.Offensive = append(out.Offensive, cand)
	}
	rank(out.Offensive)
	rank(out.Defensive)
	return out
}

func rank(bucket []Candidate) {
	potentials := make([]float64, len(bucket))
	for i, c := range bucket {
		potentials[i] = c.Potential
	}
	median := Median(potentials)
	for i := range bucket {
		bucket[i].Priority = bucket[i].Action.Weight + tier(bucket[i].Potential, median)
	}
}
