package gamedata

import (
	"math/rand"

	"github.com/samdwyer/dungeontower/internal/stats"
)

// Flavor holds presentation-only text pools loaded from flavor.yaml.
type Flavor struct {
	Training    map[stats.StatType][]string `yaml:"training"`
	Victory     []string                    `yaml:"victory"`
	Defeat      []string                    `yaml:"defeat"`
	Intro       string                      `yaml:"intro"`
	ClassIntros map[string]string           `yaml:"classIntros"`
}

// LoadFlavor loads flavor text from the embedded flavor.yaml file.
func LoadFlavor() (Flavor, error) {
	return Load[Flavor]("flavor.yaml")
}

// TrainingLine returns a random training line for the stat, or "" if none exist.
func (f Flavor) TrainingLine(rng *rand.Rand, stat stats.StatType) string {
	return pickLine(rng, f.Training[stat])
}

// VictoryLine returns a random victory phrase.
func (f Flavor) VictoryLine(rng *rand.Rand) string {
	return pickLine(rng, f.Victory)
}

// DefeatLine returns a random defeat phrase.
func (f Flavor) DefeatLine(rng *rand.Rand) string {
	return pickLine(rng, f.Defeat)
}

func pickLine(rng *rand.Rand, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[rng.Intn(len(lines))]
}
