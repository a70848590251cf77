package game

import (
	"fmt"

	"github.com/samdwyer/dungeontower/internal/combat"
	"github.com/samdwyer/dungeontower/internal/dice"
	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/stats"
	"github.com/samdwyer/dungeontower/internal/training"
)

const defeatConditionChance = 0.2

// LevelUp is raised once per transition that gains the adventurer a level.
// Offers holds the skills the player may pick from; it may be empty.
type LevelUp struct {
	Level  int
	Offers []gamedata.SkillDef
}

// Outcome carries events produced by a transition alongside the new state.
type Outcome struct {
	LevelUp *LevelUp
}

// Engine applies actions to states. It owns the random source; everything
// else it reads comes from the catalog.
type Engine struct {
	catalog *gamedata.Catalog
	src     dice.Source
}

// NewEngine creates an engine over the given content and random source.
func NewEngine(catalog *gamedata.Catalog, src dice.Source) *Engine {
	return &Engine{catalog: catalog, src: src}
}

// Reduce returns the state that follows s after action a.
//
// Invalid actions (no adventurer, not in combat, unknown kind) return s
// unchanged. s itself is never modified.
func (e *Engine) Reduce(s State, a Action) (State, Outcome) {
	switch a.Kind {
	case ActionSelectCharacter:
		return e.selectCharacter(s, a.Class), Outcome{}
	case ActionTrainStat:
		return e.trainStat(s, a)
	case ActionRest:
		if s.Adventurer == nil {
			return s, Outcome{}
		}
		res := training.Rest(s.Adventurer, e.src)
		return s.afterDowntime(res.Adventurer, res.Message), Outcome{}
	case ActionTavern:
		if s.Adventurer == nil {
			return s, Outcome{}
		}
		res := training.VisitTavern(s.Adventurer, e.src)
		return s.afterDowntime(res.Adventurer, res.Message), Outcome{}
	case ActionEnterDungeon:
		return e.enterDungeon(s), Outcome{}
	case ActionAttack:
		if !s.fighting() {
			return s, Outcome{}
		}
		return e.attack(s, a.Skill, s.Adventurer.Stats)
	case ActionUseSkill:
		if !s.fighting() || a.Skill == nil {
			return s, Outcome{}
		}
		return e.attack(s, a.Skill, a.Skill.Apply(s.Adventurer.Stats))
	case ActionSelectSkill:
		return selectSkill(s, a.Skill), Outcome{}
	case ActionFlee:
		if !s.fighting() {
			return s, Outcome{}
		}
		next := s
		next.InCombat = false
		next.Enemy = nil
		next.Log = s.appendLog(fmt.Sprintf("%s fled from battle!", s.Adventurer.Name))
		return next, Outcome{}
	case ActionNewGame:
		return InitialState(), Outcome{}
	default:
		return s, Outcome{}
	}
}

func (s State) fighting() bool {
	return s.Adventurer != nil && s.Enemy != nil && s.InCombat
}

// afterDowntime records a turn spent at the school.
func (s State) afterDowntime(adv *entity.Adventurer, msg string) State {
	next := s
	next.Adventurer = adv
	next.Turn = s.Turn + 1
	next.Log = s.appendLog(fmt.Sprintf("Turn %d: %s", s.Turn, msg))
	return next
}

func (e *Engine) selectCharacter(s State, class entity.Class) State {
	if s.Adventurer != nil || !class.Valid() {
		return s
	}
	def := e.catalog.Classes.GetByID(class.ID())
	if def == nil {
		return s
	}

	adv := entity.NewAdventurer(def.DefaultName, class, def)
	next := s
	next.Adventurer = adv
	next.Turn = 1
	next.Log = s.appendLog(
		fmt.Sprintf("%s the %s joins your school!", adv.Name, class),
		"Begin training to prepare for the Dungeon Tower!",
	)
	return next
}

func (e *Engine) trainStat(s State, a Action) (State, Outcome) {
	if s.Adventurer == nil || !a.Stat.Valid() {
		return s, Outcome{}
	}

	res := training.Train(s.Adventurer, a.Stat, e.src)
	next := s.afterDowntime(res.Adventurer, res.Message)
	next.TrainingHistory = s.appendHistory(a.Stat)

	var out Outcome
	if res.Adventurer.Level > s.Adventurer.Level {
		out.LevelUp = e.levelUp(next)
		if len(out.LevelUp.Offers) > 0 {
			next.Log = append(next.Log, "Choose a new skill to learn!")
		}
	}
	return next, out
}

// levelUp builds the level-up event for an adventurer who just gained a level.
func (e *Engine) levelUp(s State) *LevelUp {
	top := training.TopTrainedStats(s.TrainingHistory)
	return &LevelUp{
		Level:  s.Adventurer.Level,
		Offers: training.RandomSkills(top, s.Adventurer.Skills, e.catalog.Skills.All(), e.src),
	}
}

func (e *Engine) enterDungeon(s State) State {
	if s.Adventurer == nil {
		return s
	}

	next := s
	if s.Turn%DungeonCadence != 0 {
		next.Log = s.appendLog(fmt.Sprintf(
			"The Dungeon Tower opens every %d turns. Next opening: Turn %d", DungeonCadence, s.NextOpening()))
		return next
	}

	level := s.CurrentDungeonLevel + 1
	if level > MaxDungeonLevel {
		next.Log = s.appendLog("All dungeon levels have been conquered!")
		return next
	}

	enemy := entity.NewEnemy(level, level == MaxDungeonLevel, e.catalog.Enemies, e.src)
	next.InCombat = true
	next.Enemy = enemy
	next.Log = s.appendLog(
		fmt.Sprintf("%s enters Dungeon Tower Level %d!", s.Adventurer.Name, level),
		fmt.Sprintf("A %s (Lv %d) appears! HP: %d", enemy.Name, enemy.Level, enemy.HP),
	)
	return next
}

// attack plays one combat round. attackerStats are the stats the adventurer
// strikes with; skills pass a transformed copy.
func (e *Engine) attack(s State, skill *gamedata.SkillDef, attackerStats stats.Stats) (State, Outcome) {
	adv := s.Adventurer.Clone()
	enemy := s.Enemy.Clone()
	lines := s.appendLog()

	hit := combat.CalculateDamageWith(attackerStats, enemy, skill, e.src)
	if hit.Evaded {
		lines = append(lines, fmt.Sprintf("%s's attack was evaded!", adv.Name))
	} else {
		enemy.HP -= hit.Damage
		var using string
		if skill != nil {
			using = " using " + skill.Name
		}
		lines = append(lines, fmt.Sprintf("%s attacks%s for %d damage!%s", adv.Name, using, hit.Damage, critText(hit)))
	}

	next := s
	if !enemy.IsAlive() {
		adv.Exp += adv.ExpToNextLevel
		adv.LevelUp()
		adv.Mood = adv.Mood.Raise(1)

		lines = append(lines,
			fmt.Sprintf("Victory! %s defeated!", enemy.Name),
			fmt.Sprintf("%s gained a full level! Now level %d!", adv.Name, adv.Level),
			fmt.Sprintf("Mood improved to %s!", adv.Mood),
		)
		if enemy.Level == MaxDungeonLevel {
			lines = append(lines, "CONGRATULATIONS! The Dungeon Tower has been conquered!")
		}

		next.Adventurer = adv
		next.CurrentDungeonLevel = enemy.Level
		next.InCombat = false
		next.Enemy = nil
		next.Log = lines
		return next, Outcome{LevelUp: e.levelUp(next)}
	}

	counter := combat.EnemyTurn(enemy, adv, e.src)
	if counter.Evaded {
		lines = append(lines, fmt.Sprintf("%s's attack was evaded by %s!", enemy.Name, adv.Name))
	} else {
		adv.HP -= counter.Damage
		lines = append(lines, fmt.Sprintf("%s attacks for %d damage!%s", enemy.Name, counter.Damage, critText(counter)))
	}
	adv.ClampHP()

	if adv.HP <= 0 {
		adv.HP = adv.MaxHP
		lines = append(lines, fmt.Sprintf("%s was defeated and returns to the school...", adv.Name))
		if dice.Chance(e.src, defeatConditionChance) {
			adv.Condition = dice.Pick(e.src, entity.Conditions())
			lines = append(lines, fmt.Sprintf("%s is now %s!", adv.Name, adv.Condition))
		}
		adv.Mood = adv.Mood.Lower(1)
		lines = append(lines, fmt.Sprintf("Mood lowered to %s.", adv.Mood))

		next.Adventurer = adv
		next.InCombat = false
		next.Enemy = nil
		next.Log = lines
		return next, Outcome{}
	}

	next.Adventurer = adv
	next.Enemy = enemy
	next.Log = lines
	return next, Outcome{}
}

func critText(r combat.DamageResult) string {
	if r.IsCritical {
		return " CRITICAL!"
	}
	return ""
}

func selectSkill(s State, skill *gamedata.SkillDef) State {
	if s.Adventurer == nil || skill == nil {
		return s
	}

	if s.Adventurer.HasSkill(skill.ID) {
		return s
	}

	adv := s.Adventurer.Clone()
	adv.Skills = append(adv.Skills, *skill)

	next := s
	next.Adventurer = adv
	next.Log = s.appendLog(fmt.Sprintf("%s learned %s!", adv.Name, skill.Name))
	return next
}
