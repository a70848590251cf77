package entity

import (
	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/stats"
)

const (
	baseHP          = 100
	hpPerDefense    = 5
	startingExpNeed = 100
)

// Adventurer is the player-controlled student.
//
// Adventurers are treated as values: engine functions Clone before changing
// anything, so a previously returned Adventurer is never modified.
type Adventurer struct {
	Name           string
	Class          Class
	Level          int
	Exp            int
	ExpToNextLevel int

	Stats     stats.Stats // Current stats
	BaseStats stats.Stats // Class starting stats, kept for reference

	TrainingLevels map[stats.StatType]int
	TrainingExp    map[stats.StatType]int

	Fatigue   int
	Mood      Mood
	Condition Condition
	Skills    []gamedata.SkillDef

	HP, MaxHP int
}

// NewAdventurer creates a level 1 adventurer with the class starting stats.
func NewAdventurer(name string, class Class, def *gamedata.ClassDef) *Adventurer {
	var base stats.Stats
	if def != nil {
		base = def.Stats
	}

	levels := make(map[stats.StatType]int, 6)
	exp := make(map[stats.StatType]int, 6)
	for _, st := range stats.All() {
		levels[st] = 1
		exp[st] = 0
	}

	a := &Adventurer{
		Name:           name,
		Class:          class,
		Level:          1,
		Exp:            0,
		ExpToNextLevel: startingExpNeed,
		Stats:          base,
		BaseStats:      base,
		TrainingLevels: levels,
		TrainingExp:    exp,
		Mood:           MoodNeutral,
		Condition:      ConditionNone,
		Skills:         []gamedata.SkillDef{},
	}
	a.MaxHP = MaxHPFor(base.Defense)
	a.HP = a.MaxHP
	return a
}

// MaxHPFor returns the max HP granted by a defense value.
// Fractional defense is truncated by the int conversion.
func MaxHPFor(defense float64) int {
	return int(baseHP + defense*hpPerDefense)
}

// Clone returns a deep copy of the adventurer.
func (a *Adventurer) Clone() *Adventurer {
	c := *a
	c.TrainingLevels = cloneCounts(a.TrainingLevels)
	c.TrainingExp = cloneCounts(a.TrainingExp)
	c.Skills = make([]gamedata.SkillDef, len(a.Skills))
	copy(c.Skills, a.Skills)
	return &c
}

func cloneCounts(m map[stats.StatType]int) map[stats.StatType]int {
	out := make(map[stats.StatType]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// RecomputeMaxHP sets MaxHP from the current defense and restores HP to full.
func (a *Adventurer) RecomputeMaxHP() {
	a.MaxHP = MaxHPFor(a.Stats.Defense)
	a.HP = a.MaxHP
}

// ClampHP keeps HP within [0, MaxHP].
func (a *Adventurer) ClampHP() {
	if a.HP > a.MaxHP {
		a.HP = a.MaxHP
	}
	if a.HP < 0 {
		a.HP = 0
	}
}

// HasSkill reports whether a skill with the given ID has been learned.
func (a *Adventurer) HasSkill(id string) bool {
	for _, s := range a.Skills {
		if s.ID == id {
			return true
		}
	}
	return false
}

// LevelUp advances to the next level. Leftover exp is kept as-is; callers
// decide whether to spend it first.
func (a *Adventurer) LevelUp() {
	a.Level++
	a.ExpToNextLevel = a.ExpToNextLevel * 3 / 2
	a.RecomputeMaxHP()
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the adventurer's name.
func (a *Adventurer) GetName() string { return a.Name }

// GetStats returns current stats.
func (a *Adventurer) GetStats() stats.Stats { return a.Stats }
