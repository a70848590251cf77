// Package training implements the school's downtime actions: training a
// stat, resting and visiting the tavern.
//
// Every function takes an adventurer by pointer, clones it and returns the
// changed copy; the input is never modified.
package training

import (
	"fmt"

	"github.com/samdwyer/dungeontower/internal/dice"
	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/stats"
)

const (
	fatigueFailurePct = 2
	injuredFailurePct = 20
	maxFailurePct     = 95

	successExp = 20
	failureExp = 10

	// Training level N needs N*trainingExpPerLevel training exp in that stat.
	trainingExpPerLevel = 5 * successExp
	trainingLevelBonus  = 0.1

	unmotivatedSkipChance = 0.2
	failureConditionRoll  = 0.3
	restClearChance       = 0.3
	tavernClearChance     = 0.5
	restFlatReduction     = 5
)

// TrainResult is the outcome of one training attempt.
type TrainResult struct {
	Success      bool
	Message      string
	Adventurer   *entity.Adventurer
	NewCondition entity.Condition // Condition gained on failure, if any
}

// Result is the outcome of a rest or a tavern visit.
type Result struct {
	Message    string
	Adventurer *entity.Adventurer
}

// CalculateFailureRate returns the chance, in percent, that a training
// attempt fails.
func CalculateFailureRate(fatigue int, cond entity.Condition) float64 {
	rate := float64(fatigue * fatigueFailurePct)
	if cond == entity.ConditionInjured {
		rate += injuredFailurePct
	}
	if rate > maxFailurePct {
		rate = maxFailurePct
	}
	if rate < 0 {
		rate = 0
	}
	return rate
}

// BaseGain returns the stat gain of one successful session before training
// level and mood bonuses.
func BaseGain(st stats.StatType) float64 {
	switch st {
	case stats.Evasion, stats.CriticalRate:
		return 0.5
	case stats.CriticalDamage:
		return 2
	default:
		return 1
	}
}

// Train runs one training session on target.
//
// Rolls are drawn in a fixed order: the Unmotivated skip, the Hexed stat
// swap, the failure roll, then on failure the mood drop and the condition
// roll.
func Train(adv *entity.Adventurer, target stats.StatType, src dice.Source) TrainResult {
	a := adv.Clone()

	if a.Condition == entity.ConditionUnmotivated && dice.Chance(src, unmotivatedSkipChance) {
		return TrainResult{
			Message:    fmt.Sprintf("%s didn't show up to training due to being Unmotivated!", adv.Name),
			Adventurer: a,
		}
	}

	stat := target
	if a.Condition == entity.ConditionHexed {
		stat = dice.Pick(src, stats.All())
		if stat != target {
			a.Condition = entity.ConditionNone
		}
	}

	failed := dice.Percent(src, CalculateFailureRate(a.Fatigue, a.Condition))
	a.Fatigue++

	trainingLevel := a.TrainingLevels[stat]

	if failed {
		a.TrainingExp[stat] += failureExp
		a.Exp += failureExp

		drop := 2
		if dice.Chance(src, 0.5) {
			drop = 1
		}
		a.Mood = a.Mood.Lower(drop)

		newCond := entity.ConditionNone
		if dice.Chance(src, failureConditionRoll) && a.Condition == entity.ConditionNone {
			newCond = dice.Pick(src, entity.Conditions())
			a.Condition = newCond
		}

		msg := fmt.Sprintf("Training failed! %s is feeling discouraged. (%d exp gained)", adv.Name, failureExp)
		if newCond != entity.ConditionNone {
			msg += fmt.Sprintf(" %s is now %s!", adv.Name, newCond)
		}
		return TrainResult{Message: msg, Adventurer: a, NewCondition: newCond}
	}

	a.TrainingExp[stat] += successExp
	a.Exp += successExp

	gain := BaseGain(stat) *
		(1 + float64(trainingLevel-1)*trainingLevelBonus) *
		(1 + a.Mood.Modifier())
	a.Stats = a.Stats.Add(stat, gain)
	if stat == stats.Defense {
		a.MaxHP = entity.MaxHPFor(a.Stats.Defense)
		a.ClampHP()
	}

	var msg string
	if a.TrainingExp[stat] >= trainingLevel*trainingExpPerLevel {
		a.TrainingLevels[stat]++
		msg = fmt.Sprintf("Training successful! %s increased by %.1f! Training level increased to %d! (%d exp)",
			stat.Label(), gain, a.TrainingLevels[stat], successExp)
	} else {
		msg = fmt.Sprintf("Training successful! %s increased by %.1f! (%d exp)",
			stat.Label(), gain, successExp)
	}

	if a.Exp >= a.ExpToNextLevel {
		a.Exp -= a.ExpToNextLevel
		a.LevelUp()
		msg += fmt.Sprintf(" LEVEL UP! %s is now level %d!", adv.Name, a.Level)
	}

	return TrainResult{Success: true, Message: msg, Adventurer: a}
}

// Rest reduces fatigue by half plus five and may clear the active condition.
func Rest(adv *entity.Adventurer, src dice.Source) Result {
	a := adv.Clone()

	reduction := a.Fatigue/2 + restFlatReduction
	a.Fatigue -= reduction
	if a.Fatigue < 0 {
		a.Fatigue = 0
	}

	msg := fmt.Sprintf("%s rested and feels refreshed! Fatigue reduced by %d.", adv.Name, reduction)
	if a.Condition != entity.ConditionNone && dice.Chance(src, restClearChance) {
		msg += fmt.Sprintf(" %s condition removed!", a.Condition)
		a.Condition = entity.ConditionNone
	}
	return Result{Message: msg, Adventurer: a}
}

// VisitTavern raises mood by one or two levels and may cure Unmotivated.
func VisitTavern(adv *entity.Adventurer, src dice.Source) Result {
	a := adv.Clone()

	boost := 2
	if dice.Chance(src, 0.5) {
		boost = 1
	}
	a.Mood = a.Mood.Raise(boost)

	msg := fmt.Sprintf("%s had a great time at the tavern! Mood improved to %s!", adv.Name, a.Mood)
	if a.Condition == entity.ConditionUnmotivated && dice.Chance(src, tavernClearChance) {
		a.Condition = entity.ConditionNone
		msg += " Unmotivated condition removed!"
	}
	return Result{Message: msg, Adventurer: a}
}
