package game

import (
	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/stats"
)

// ActionKind identifies a player action. The zero value is not an action.
type ActionKind int

const (
	ActionSelectCharacter ActionKind = iota + 1
	ActionTrainStat
	ActionRest
	ActionTavern
	ActionEnterDungeon
	ActionAttack
	ActionUseSkill
	ActionSelectSkill
	ActionFlee
	ActionNewGame
)

// String returns the action name used in logs and spans.
func (k ActionKind) String() string {
	switch k {
	case ActionSelectCharacter:
		return "select_character"
	case ActionTrainStat:
		return "train_stat"
	case ActionRest:
		return "rest"
	case ActionTavern:
		return "tavern"
	case ActionEnterDungeon:
		return "enter_dungeon"
	case ActionAttack:
		return "attack"
	case ActionUseSkill:
		return "use_skill"
	case ActionSelectSkill:
		return "select_skill"
	case ActionFlee:
		return "flee"
	case ActionNewGame:
		return "new_game"
	default:
		return "unknown"
	}
}

// Action is a player intent. Only the fields relevant to Kind are read.
type Action struct {
	Kind  ActionKind
	Class entity.Class       // SelectCharacter
	Stat  stats.StatType     // TrainStat
	Skill *gamedata.SkillDef // Attack (optional), UseSkill, SelectSkill
}

// SelectCharacter starts a new adventurer of class c.
func SelectCharacter(c entity.Class) Action { return Action{Kind: ActionSelectCharacter, Class: c} }

// TrainStat spends a turn training st.
func TrainStat(st stats.StatType) Action { return Action{Kind: ActionTrainStat, Stat: st} }

// Rest spends a turn recovering fatigue.
func Rest() Action { return Action{Kind: ActionRest} }

// Tavern spends a turn raising mood.
func Tavern() Action { return Action{Kind: ActionTavern} }

// EnterDungeon challenges the next floor of the tower.
func EnterDungeon() Action { return Action{Kind: ActionEnterDungeon} }

// Attack plays one combat round with a plain attack.
func Attack() Action { return Action{Kind: ActionAttack} }

// UseSkill plays one combat round with a learned skill.
func UseSkill(s *gamedata.SkillDef) Action { return Action{Kind: ActionUseSkill, Skill: s} }

// SelectSkill learns s.
func SelectSkill(s gamedata.SkillDef) Action { return Action{Kind: ActionSelectSkill, Skill: &s} }

// Flee leaves the current fight.
func Flee() Action { return Action{Kind: ActionFlee} }

// NewGame discards the current game.
func NewGame() Action { return Action{Kind: ActionNewGame} }
