package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeontower/internal/stats"
)

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID          string      `json:"id"`          // Unique identifier (e.g., "swordsman")
	Name        string      `json:"name"`        // Display name (e.g., "Swordsman")
	DefaultName string      `json:"defaultName"` // Name given to a new adventurer of this class
	Color       string      `json:"color"`       // Hex color code (e.g., "#bf616a")
	Description string      `json:"description"` // One-line pitch shown on the select screen
	Stats       stats.Stats `json:"stats"`       // Starting stats
}

// TCellColor returns the class tint from classes.json.
func (c *ClassDef) TCellColor() tcell.Color {
	return paletteColor(c.Color)
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}
