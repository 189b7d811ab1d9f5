package ai

import "gridtactics/internal/combat"

// Priorities maps character id to how much the deciding side wants to
// affect that character. Rebuilt for every decision.
type Priorities map[string]int

func (p Priorities) merge(other Priorities) Priorities {
	out := make(Priorities, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// EvaluateAllies scores allies 0-5 by missing health in 20% steps. A dead
// ally sits at 5 and is dropped to 0 unless includeDead is set. The active
// character gets +1 once it is past 40% missing health.
func EvaluateAllies(allies []*combat.Character, active *combat.Character, includeDead bool) Priorities {
	out := make(Priorities, len(allies))
	for _, c := range allies {
		p := 0
		if c.MaxHP > 0 {
			missing := (c.MaxHP - c.HP) * 100 / c.MaxHP
			p = missing / 20
		}
		if p >= 5 && !includeDead {
			p = 0
		}
		if active != nil && c.ID == active.ID && p > 2 {
			p++
		}
		out[c.ID] = p
	}
	return out
}

// EvaluateEnemies scores living enemies 1-5 by threat relative to the
// group median, plus a bonus for low health. With exactly two enemies the
// higher threat is simply ranked above the lower.
func EvaluateEnemies(living []*combat.Character) Priorities {
	out := make(Priorities, len(living))
	if len(living) == 2 {
		a, b := living[0], living[1]
		switch {
		case a.Threat > b.Threat:
			out[a.ID], out[b.ID] = 2, 1
		case b.Threat > a.Threat:
			out[a.ID], out[b.ID] = 1, 2
		default:
			out[a.ID], out[b.ID] = 1, 1
		}
	} else {
		threats := make([]float64, len(living))
		for i, c := range living {
			threats[i] = float64(c.Threat)
		}
		median := Median(threats)
		for _, c := range living {
			out[c.ID] = threatTier(float64(c.Threat), median)
		}
	}
	for _, c := range living {
		out[c.ID] += healthBonus(c)
	}
	return out
}

func threatTier(threat, median float64) int {
	if median <= 0 {
		return 1
	}
	pct := threat / median * 100
	switch {
	case pct >= 150:
		return 3
	case pct >= 120:
		return 2
	}
	return 1
}

func healthBonus(c *combat.Character) int {
	switch {
	case c.HP*100 <= c.MaxHP*25:
		return 2
	case c.HP*100 <= c.MaxHP*50:
		return 1
	}
	return 0
}
