// Package game holds the game state machine, the store that serializes
// actions against it, and the terminal game loop.
package game

import (
	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/stats"
)

const (
	// MaxDungeonLevel is the top floor of the tower. Its guardian is a boss.
	MaxDungeonLevel = 10
	// DungeonCadence is how often, in turns, the tower opens.
	DungeonCadence = 10

	welcomeLine = "Welcome to the Adventurer's School! Select your starting adventurer."
)

// Phase is the screen the game is on. It is derived from State, never stored.
type Phase int

const (
	// PhaseCharacterSelect is before an adventurer has been chosen.
	PhaseCharacterSelect Phase = iota
	// PhaseTraining is downtime at the school.
	PhaseTraining
	// PhaseCombat is a fight inside the tower.
	PhaseCombat
	// PhaseVictory is after the top floor has been cleared.
	PhaseVictory
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCharacterSelect:
		return "character_select"
	case PhaseTraining:
		return "training"
	case PhaseCombat:
		return "combat"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// State is one snapshot of the game. Transitions build a new State and never
// modify a previous one.
type State struct {
	Adventurer          *entity.Adventurer // nil until a class is selected
	Turn                int
	CurrentDungeonLevel int // Highest floor cleared
	Log                 []string
	TrainingHistory     []stats.StatType
	InCombat            bool
	Enemy               *entity.Enemy // nil outside combat
}

// InitialState returns the state of a fresh game.
func InitialState() State {
	return State{
		Log:             []string{welcomeLine},
		TrainingHistory: []stats.StatType{},
	}
}

// Phase derives the current screen from the state.
func (s State) Phase() Phase {
	switch {
	case s.Adventurer == nil:
		return PhaseCharacterSelect
	case s.InCombat:
		return PhaseCombat
	case s.CurrentDungeonLevel >= MaxDungeonLevel:
		return PhaseVictory
	default:
		return PhaseTraining
	}
}

// DungeonOpen reports whether ENTER_DUNGEON would start a fight this turn.
func (s State) DungeonOpen() bool {
	return s.Adventurer != nil &&
		!s.InCombat &&
		s.Turn > 0 && s.Turn%DungeonCadence == 0 &&
		s.CurrentDungeonLevel < MaxDungeonLevel
}

// NextOpening returns the first turn at or after the current one on which
// the tower opens.
func (s State) NextOpening() int {
	return (s.Turn + DungeonCadence - 1) / DungeonCadence * DungeonCadence
}

// appendLog returns a copy of the state's log with lines added.
func (s State) appendLog(lines ...string) []string {
	out := make([]string, 0, len(s.Log)+len(lines))
	out = append(out, s.Log...)
	return append(out, lines...)
}

// appendHistory returns a copy of the training history with st added.
func (s State) appendHistory(st stats.StatType) []stats.StatType {
	out := make([]stats.StatType, 0, len(s.TrainingHistory)+1)
	out = append(out, s.TrainingHistory...)
	return append(out, st)
}
