// Package stats defines the six adventurer stats and the modifiers that act on them.
package stats

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatType names one of the six stats.
type StatType string

const (
	Strength       StatType = "strength"
	Magic          StatType = "magic"
	Defense        StatType = "defense"
	Evasion        StatType = "evasion"
	CriticalRate   StatType = "criticalRate"
	CriticalDamage StatType = "criticalDamage"
)

var allTypes = []StatType{Strength, Magic, Defense, Evasion, CriticalRate, CriticalDamage}

// All returns every stat in display order.
func All() []StatType {
	out := make([]StatType, len(allTypes))
	copy(out, allTypes)
	return out
}

// Valid reports whether t is one of the six stats.
func (t StatType) Valid() bool {
	for _, s := range allTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Label returns the upper-case name used in log lines (e.g. "CRITICALRATE").
func (t StatType) Label() string {
	// Casers are stateful, so one is built per call.
	return cases.Upper(language.Und).String(string(t))
}

// Short returns the abbreviated name used on screen.
func (t StatType) Short() string {
	switch t {
	case Strength:
		return "STR"
	case Magic:
		return "MAG"
	case Defense:
		return "DEF"
	case Evasion:
		return "EVA"
	case CriticalRate:
		return "CRIT"
	case CriticalDamage:
		return "CRIT DMG"
	default:
		return "?"
	}
}

// Stats is an immutable snapshot of the six stats.
// Evasion and CriticalRate are percentages; neither is capped.
type Stats struct {
	Strength       float64 `json:"strength" yaml:"strength"`
	Magic          float64 `json:"magic" yaml:"magic"`
	Defense        float64 `json:"defense" yaml:"defense"`
	Evasion        float64 `json:"evasion" yaml:"evasion"`
	CriticalRate   float64 `json:"criticalRate" yaml:"criticalRate"`
	CriticalDamage float64 `json:"criticalDamage" yaml:"criticalDamage"`
}

// Get returns the value of a single stat. Unknown stats read as 0.
func (s Stats) Get(t StatType) float64 {
	switch t {
	case Strength:
		return s.Strength
	case Magic:
		return s.Magic
	case Defense:
		return s.Defense
	case Evasion:
		return s.Evasion
	case CriticalRate:
		return s.CriticalRate
	case CriticalDamage:
		return s.CriticalDamage
	default:
		return 0
	}
}

// With returns a copy of s with one stat replaced.
func (s Stats) With(t StatType, v float64) Stats {
	switch t {
	case Strength:
		s.Strength = v
	case Magic:
		s.Magic = v
	case Defense:
		s.Defense = v
	case Evasion:
		s.Evasion = v
	case CriticalRate:
		s.CriticalRate = v
	case CriticalDamage:
		s.CriticalDamage = v
	}
	return s
}

// Add returns a copy of s with delta added to one stat.
func (s Stats) Add(t StatType, delta float64) Stats {
	return s.With(t, s.Get(t)+delta)
}
