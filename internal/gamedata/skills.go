package gamedata

import "github.com/samdwyer/dungeontower/internal/stats"

// =============================================================================
// SKILLS
// =============================================================================
//
// Skills are learned on level-up and used in combat. A skill never changes an
// adventurer permanently: its Effect is applied to a throwaway copy of the
// adventurer's stats for the one attack that uses it, and the attack itself
// deals 1.5x damage.
//
// Each skill belongs to one stat category (RelatedStat). When a level-up offer
// is built, skills whose category matches the adventurer's most-trained stats
// are preferred.
//
// JSON Schema:
// ------------
// {
//   "id": "berserker_rage",
//   "name": "Berserker Rage",
//   "description": "Channel anger into power (+30% STR, -10% DEF)",
//   "relatedStat": "strength",
//   "effect": [
//     {"stat": "strength", "op": "mul", "value": 1.3},
//     {"stat": "defense",  "op": "mul", "value": 0.9}
//   ]
// }

// SkillDef defines a learnable skill loaded from JSON.
type SkillDef struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	RelatedStat stats.StatType   `json:"relatedStat"`
	Effect      []stats.Modifier `json:"effect"`
}

// Apply returns s transformed by the skill effect. s is not modified.
func (d SkillDef) Apply(s stats.Stats) stats.Stats {
	return stats.Apply(s, d.Effect)
}

// SkillsFile represents the structure of skills.json.
type SkillsFile struct {
	Skills []SkillDef `json:"skills"`
}

// LoadSkills loads skill definitions from the embedded skills.json file.
func LoadSkills() ([]SkillDef, error) {
	file, err := Load[SkillsFile]("skills.json")
	if err != nil {
		return nil, err
	}
	return file.Skills, nil
}
