package combat

import (
	"errors"
	"fmt"
	"log/slog"

	"gridtactics/internal/grid"
)

// Decision is the action and anchor a character commits to for its turn.
// Item is set when the action comes out of the inventory. A nil Action
// means the character waits.
type Decision struct {
	Action *Action
	Anchor int
	Item   *Item
	Score  int
}

func (d Decision) Wait() bool { return d.Action == nil }

// Decider picks the next decision for actor. It must not modify bf.
type Decider interface {
	Decide(actor *Character, bf *Battlefield) Decision
}

var ErrNotAvailable = errors.New("action not available")

// Executor applies decisions to the battlefield.
type Executor struct {
	Calc Calculator
	Emit func(Event)

	// OnDamage and OnHeal observe every applied amount.
	OnDamage func(src, dst *Character, a *Action, amount int)
	OnHeal   func(src, dst *Character, a *Action, amount int)
}

func NewExecutor(calc Calculator, emit func(Event)) *Executor {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Executor{Calc: calc, Emit: emit}
}

// Apply resolves d for actor and applies its effects to every character
// it reaches.
func (x *Executor) Apply(actor *Character, d Decision, bf *Battlefield) error {
	if d.Wait() {
		x.Emit(Event{Round: bf.Round, Type: "Wait", Payload: map[string]any{"actor": actor.ID}})
		return nil
	}
	a := d.Action
	if d.Item != nil && d.Item.Quantity <= 0 {
		return fmt.Errorf("%w: item %q exhausted", ErrNotAvailable, d.Item.ID)
	}
	if d.Item == nil && !actor.usable(a, bf.Round) {
		return fmt.Errorf("%w: %q for %q", ErrNotAvailable, a.ID, actor.ID)
	}

	anchor := d.Anchor
	if !a.Template.Retargetable {
		anchor = a.Template.Center
	}
	hits, err := grid.Resolve(a.Template, anchor, actor.Side(), bf.LivingOccupant)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", a.ID, err)
	}

	x.spend(actor, d, bf.Round)
	payload := map[string]any{"actor": actor.ID, "action": a.ID, "anchor": anchor, "cells": hits}
	if d.Item != nil {
		payload["item"] = d.Item.ID
	}
	x.Emit(Event{Round: bf.Round, Type: "Cast", Payload: payload})

	dmg := x.Calc.Damage(actor, a)
	heal := x.Calc.Healing(actor, a)
	healPct := x.Calc.HealingPercent(actor, a)
	for _, pos := range hits {
		target := bf.At(pos)
		if target == nil {
			continue
		}
		if !target.Alive() {
			if a.Revives && target.Side() == actor.Side() {
				x.revive(actor, target, a, heal, healPct, bf.Round)
			}
			continue
		}
		if dmg > 0 {
			x.damage(actor, target, a, dmg, bf.Round)
		}
		if target.Alive() && (heal > 0 || healPct > 0) {
			x.heal(actor, target, a, heal+healPct*target.MaxHP/100, bf.Round)
		}
	}
	slog.Debug("action applied", "actor", actor.ID, "action", a.ID, "anchor", anchor, "hits", len(hits))
	return nil
}

func (x *Executor) spend(actor *Character, d Decision, round int) {
	if d.Item != nil {
		d.Item.Quantity--
		return
	}
	switch d.Action.Kind {
	case KindSpell:
		actor.Mana -= d.Action.ManaCost
	case KindSkill:
		actor.Trigger(d.Action, round)
	case KindAttack, KindConsumable:
	}
}

func (x *Executor) damage(src, dst *Character, a *Action, raw, round int) {
	amount := Mitigate(raw, dst)
	if amount > dst.HP {
		amount = dst.HP
	}
	dst.HP -= amount
	src.Threat += amount
	x.Emit(Event{Round: round, Type: "Hit", Payload: map[string]any{
		"actor": src.ID, "target": dst.ID, "action": a.ID, "dmg": amount, "hp": dst.HP,
	}})
	if x.OnDamage != nil {
		x.OnDamage(src, dst, a, amount)
	}
	if dst.HP == 0 {
		x.Emit(Event{Round: round, Type: "Defeat", Payload: map[string]any{"target": dst.ID, "by": src.ID}})
	}
}

func (x *Executor) heal(src, dst *Character, a *Action, amount, round int) {
	if dst.HP+amount > dst.MaxHP {
		amount = dst.MaxHP - dst.HP
	}
	if amount <= 0 {
		return
	}
	dst.HP += amount
	src.Threat += amount
	x.Emit(Event{Round: round, Type: "Heal", Payload: map[string]any{
		"actor": src.ID, "target": dst.ID, "action": a.ID, "amount": amount, "hp": dst.HP,
	}})
	if x.OnHeal != nil {
		x.OnHeal(src, dst, a, amount)
	}
}

func (x *Executor) revive(src, dst *Character, a *Action, heal, healPct, round int) {
	hp := heal + healPct*dst.MaxHP/100
	if hp < 1 {
		hp = 1
	}
	if hp > dst.MaxHP {
		hp = dst.MaxHP
	}
	dst.HP = hp
	src.Threat += hp
	x.Emit(Event{Round: round, Type: "Revive", Payload: map[string]any{
		"actor": src.ID, "target": dst.ID, "action": a.ID, "hp": hp,
	}})
	if x.OnHeal != nil {
		x.OnHeal(src, dst, a, hp)
	}
}
