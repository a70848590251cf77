// Package combat resolves single attacks between the adventurer and a dungeon enemy.
package combat

import (
	"math"

	"github.com/samdwyer/dungeontower/internal/dice"
	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/stats"
)

const (
	// SkillMultiplier scales damage for attacks made with a skill.
	SkillMultiplier = 1.5

	// defenseFactor is how much of the defender's defense is subtracted.
	defenseFactor = 0.5
	minBaseDamage = 1
)

// Combatant is anything that can attack or be attacked.
// Both adventurers and enemies implement this interface.
type Combatant interface {
	GetName() string
	GetStats() stats.Stats
}

// DamageResult is the outcome of one attack.
type DamageResult struct {
	Damage     int
	IsCritical bool
	Evaded     bool
}

// CalculateDamage resolves one attack without applying it.
//
// The evasion roll comes first; an evaded attack draws nothing else and
// deals no damage. Otherwise the base damage is
// max(1, STR+MAG - DEF/2), multiplied by 1.5 when a skill is used and by
// critDamage/100 on a critical hit, then floored.
func CalculateDamage(attacker, defender Combatant, skill *gamedata.SkillDef, src dice.Source) DamageResult {
	return calculate(attacker.GetStats(), defender.GetStats(), skill != nil, src)
}

// CalculateDamageWith resolves an attack using the given attacker stats in
// place of the attacker's own. Skills use it to attack with a transformed
// copy of the adventurer's stats.
func CalculateDamageWith(attackerStats stats.Stats, defender Combatant, skill *gamedata.SkillDef, src dice.Source) DamageResult {
	return calculate(attackerStats, defender.GetStats(), skill != nil, src)
}

// EnemyTurn resolves the enemy's counter-attack. Enemies never use skills.
func EnemyTurn(enemy, target Combatant, src dice.Source) DamageResult {
	return CalculateDamage(enemy, target, nil, src)
}

func calculate(atk, def stats.Stats, withSkill bool, src dice.Source) DamageResult {
	if dice.Percent(src, def.Evasion) {
		return DamageResult{Evaded: true}
	}

	base := math.Max(minBaseDamage, atk.Strength+atk.Magic-def.Defense*defenseFactor)
	if withSkill {
		base *= SkillMultiplier
	}

	result := DamageResult{}
	if dice.Percent(src, atk.CriticalRate) {
		result.IsCritical = true
		base *= atk.CriticalDamage / 100
	}

	result.Damage = int(math.Floor(base))
	if result.Damage < 0 {
		result.Damage = 0
	}
	return result
}
