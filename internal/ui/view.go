package ui

import (
	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/gamedata"
)

// Mode selects which screen the renderer draws.
type Mode int

const (
	ModeCharacterSelect Mode = iota
	ModeTraining
	ModeCombat
	ModeVictory
)

// View is everything the renderer needs for one frame.
type View struct {
	Mode Mode

	Adventurer   *entity.Adventurer
	Enemy        *entity.Enemy
	Turn         int
	DungeonLevel int  // Highest floor cleared
	DungeonOpen  bool // Whether the tower can be entered this turn
	NextOpening  int
	Log          []string

	Classes     []gamedata.ClassDef
	Intro       string
	ClassIntros map[string]string

	// Offers is non-empty while the skill prompt is open.
	Offers []gamedata.SkillDef

	// Status is a presentation-only line shown at the bottom of the screen.
	Status string
}
