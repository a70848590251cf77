package entity

import (
	"math"

	"github.com/samdwyer/dungeontower/internal/dice"
	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/stats"
)

const (
	enemyBaseHP       = 50
	bossMultiplier    = 2.5
	levelScalePerStep = 0.3
	enemyCritDamage   = 150
)

// Enemy is the guardian of one dungeon floor. It exists only for the length
// of one combat.
type Enemy struct {
	Name   string
	Level  int // Dungeon floor
	HP     int
	MaxHP  int
	Stats  stats.Stats
	IsBoss bool
}

// NewEnemy creates the guardian of a dungeon floor.
// Boss names are fixed per floor; regular names are drawn from src.
func NewEnemy(level int, isBoss bool, roster gamedata.EnemyRoster, src dice.Source) *Enemy {
	levelMul := 1 + float64(level-1)*levelScalePerStep
	bossMul := 1.0
	if isBoss {
		bossMul = bossMultiplier
	}

	hp := int(math.Floor(enemyBaseHP * levelMul * bossMul))

	var name string
	if isBoss {
		name = roster.Bosses[level%len(roster.Bosses)]
	} else {
		name = dice.Pick(src, roster.Normal)
	}

	return &Enemy{
		Name:  name,
		Level: level,
		HP:    hp,
		MaxHP: hp,
		Stats: stats.Stats{
			Strength:       math.Floor(10 * levelMul * bossMul),
			Magic:          math.Floor(10 * levelMul * bossMul),
			Defense:        math.Floor(8 * levelMul * bossMul),
			Evasion:        math.Floor(5 * levelMul),
			CriticalRate:   math.Floor(5 * levelMul),
			CriticalDamage: enemyCritDamage,
		},
		IsBoss: isBoss,
	}
}

// Clone returns a copy of the enemy.
func (e *Enemy) Clone() *Enemy {
	c := *e
	return &c
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool {
	return e.HP > 0
}

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// GetStats returns the enemy's stats.
func (e *Enemy) GetStats() stats.Stats { return e.Stats }
