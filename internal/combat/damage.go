package combat

// Calculator yields the raw numbers an action would produce when used by c.
// Implementations must be pure functions of (c, a).
type Calculator interface {
	Damage(c *Character, a *Action) int
	Healing(c *Character, a *Action) int
	HealingPercent(c *Character, a *Action) int
}

// StatCalculator scales action magnitudes with the user's stats: attacks
// and skills with strength, spells with intellect (damage) or wisdom
// (healing). Consumables are not scaled.
type StatCalculator struct{}

func (StatCalculator) Damage(c *Character, a *Action) int {
	if a.Damage <= 0 {
		return 0
	}
	switch a.Kind {
	case KindAttack, KindSkill:
		return a.Damage + c.Stats.Strength
	case KindSpell:
		return a.Damage + c.Stats.Intellect
	case KindConsumable:
		return a.Damage
	}
	return a.Damage
}

func (StatCalculator) Healing(c *Character, a *Action) int {
	if a.Healing <= 0 {
		return 0
	}
	switch a.Kind {
	case KindSpell:
		return a.Healing + c.Stats.Wisdom
	case KindSkill:
		return a.Healing + c.Stats.Wisdom/2
	case KindAttack, KindConsumable:
		return a.Healing
	}
	return a.Healing
}

func (StatCalculator) HealingPercent(_ *Character, a *Action) int {
	if a.HealingPercent < 0 {
		return 0
	}
	return a.HealingPercent
}

// Mitigate reduces incoming damage by the target's defense, never below 1.
func Mitigate(dmg int, target *Character) int {
	if dmg <= 0 {
		return 0
	}
	dmg -= target.Stats.Defense
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}
