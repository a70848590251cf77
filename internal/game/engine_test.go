package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeontower/internal/dice"
	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/stats"
)

var testCatalog = gamedata.MustLoadCatalog()

func newTestEngine(src dice.Source) *Engine {
	return NewEngine(testCatalog, src)
}

// started returns a state with a fresh level 1 swordsman on turn 1.
func started(t *testing.T) State {
	t.Helper()
	s, _ := newTestEngine(&dice.Sequence{}).Reduce(InitialState(), SelectCharacter(entity.ClassSwordsman))
	require.NotNil(t, s.Adventurer)
	return s
}

// fighting returns a state in combat against a level 1 Goblin with the given HP.
func fighting(t *testing.T, hp int) State {
	t.Helper()
	s := started(t)
	s.Turn = 10
	s.Enemy = entity.NewEnemy(1, false, testCatalog.Enemies, &dice.Sequence{})
	s.Enemy.HP = hp
	s.InCombat = true
	return s
}

func lastLines(s State, n int) []string {
	return s.Log[len(s.Log)-n:]
}

func TestInitialState(t *testing.T) {
	s := InitialState()

	assert.Nil(t, s.Adventurer)
	assert.Nil(t, s.Enemy)
	assert.Equal(t, 0, s.Turn)
	assert.Equal(t, 0, s.CurrentDungeonLevel)
	assert.False(t, s.InCombat)
	assert.Empty(t, s.TrainingHistory)
	assert.Equal(t, []string{"Welcome to the Adventurer's School! Select your starting adventurer."}, s.Log)
	assert.Equal(t, PhaseCharacterSelect, s.Phase())
}

func TestSelectCharacter(t *testing.T) {
	tests := []struct {
		class entity.Class
		name  string
		str   float64
	}{
		{entity.ClassSwordsman, "Valor", 15},
		{entity.ClassMage, "Arcanus", 5},
		{entity.ClassRogue, "Shadow", 8},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			s, out := newTestEngine(&dice.Sequence{}).Reduce(InitialState(), SelectCharacter(tt.class))

			require.NotNil(t, s.Adventurer)
			assert.Nil(t, out.LevelUp)
			assert.Equal(t, tt.name, s.Adventurer.Name)
			assert.Equal(t, tt.class, s.Adventurer.Class)
			assert.Equal(t, tt.str, s.Adventurer.Stats.Strength)
			assert.Equal(t, 1, s.Turn)
			assert.Equal(t, PhaseTraining, s.Phase())
			assert.Equal(t, []string{
				tt.name + " the " + tt.class.String() + " joins your school!",
				"Begin training to prepare for the Dungeon Tower!",
			}, lastLines(s, 2))
		})
	}
}

func TestSelectCharacterOnlyFromCharacterSelect(t *testing.T) {
	s := started(t)
	next, _ := newTestEngine(&dice.Sequence{}).Reduce(s, SelectCharacter(entity.ClassMage))
	assert.Equal(t, s, next)
}

func TestGuardedActionsAreIdentity(t *testing.T) {
	e := newTestEngine(&dice.Sequence{})
	skill := testCatalog.Skills.GetByID("power_strike")
	require.NotNil(t, skill)

	noAdventurer := InitialState()
	for _, a := range []Action{
		TrainStat(stats.Strength), Rest(), Tavern(), EnterDungeon(),
		Attack(), UseSkill(skill), SelectSkill(*skill), Flee(),
	} {
		next, out := e.Reduce(noAdventurer, a)
		assert.Equal(t, noAdventurer, next, "action %s", a.Kind)
		assert.Nil(t, out.LevelUp)
	}

	training := started(t)
	for _, a := range []Action{Attack(), UseSkill(skill), Flee()} {
		next, _ := e.Reduce(training, a)
		assert.Equal(t, training, next, "action %s outside combat", a.Kind)
	}
}

func TestUnknownActionIsIdentity(t *testing.T) {
	e := newTestEngine(&dice.Sequence{})
	s := started(t)

	for _, a := range []Action{{}, {Kind: ActionKind(99)}} {
		next, out := e.Reduce(s, a)
		assert.Equal(t, s, next)
		assert.Nil(t, out.LevelUp)
	}
}

func TestTrainStat(t *testing.T) {
	prev := started(t)
	e := newTestEngine(&dice.Sequence{Floats: []float64{0.5}})

	next, out := e.Reduce(prev, TrainStat(stats.Strength))

	assert.Nil(t, out.LevelUp)
	assert.Equal(t, 2, next.Turn)
	assert.Equal(t, []stats.StatType{stats.Strength}, next.TrainingHistory)
	assert.Equal(t, "Turn 1: Training successful! STRENGTH increased by 1.0! (20 exp)", lastLines(next, 1)[0])
	assert.Equal(t, 16.0, next.Adventurer.Stats.Strength)
	assert.Equal(t, 1, next.Adventurer.Fatigue)

	// The previous state is untouched.
	assert.Equal(t, 1, prev.Turn)
	assert.Len(t, prev.Log, 3)
	assert.Empty(t, prev.TrainingHistory)
	assert.Equal(t, 15.0, prev.Adventurer.Stats.Strength)
}

func TestTrainStatLevelUpOffersSkills(t *testing.T) {
	s := started(t)
	s.Adventurer.Exp = 90

	// Success roll; Intn draws default to 0, so the sample keeps catalog order.
	e := newTestEngine(&dice.Sequence{Floats: []float64{0.5}})
	next, out := e.Reduce(s, TrainStat(stats.Strength))

	require.NotNil(t, out.LevelUp)
	assert.Equal(t, 2, out.LevelUp.Level)
	ids := make([]string, len(out.LevelUp.Offers))
	for i, o := range out.LevelUp.Offers {
		ids[i] = o.ID
	}
	assert.Equal(t, []string{"power_strike", "berserker_rage", "iron_will"}, ids)
	assert.Equal(t, "Choose a new skill to learn!", lastLines(next, 1)[0])
	assert.Contains(t, lastLines(next, 2)[0], "LEVEL UP! Valor is now level 2!")
}

func TestTrainStatLevelUpWithNothingLeftToLearn(t *testing.T) {
	s := started(t)
	s.Adventurer.Exp = 90
	s.Adventurer.Skills = append([]gamedata.SkillDef{}, testCatalog.Skills.All()...)

	next, out := newTestEngine(&dice.Sequence{Floats: []float64{0.5}}).Reduce(s, TrainStat(stats.Magic))

	require.NotNil(t, out.LevelUp)
	assert.Empty(t, out.LevelUp.Offers)
	assert.NotEqual(t, "Choose a new skill to learn!", lastLines(next, 1)[0])
}

func TestRestAndTavernAdvanceTurn(t *testing.T) {
	s := started(t)
	s.Adventurer.Fatigue = 10
	// Rest draws nothing without a condition; the tavern roll raises mood by one.
	e := newTestEngine(&dice.Sequence{Floats: []float64{0.4}})

	s, _ = e.Reduce(s, Rest())
	assert.Equal(t, 2, s.Turn)
	assert.Equal(t, 0, s.Adventurer.Fatigue)
	assert.Equal(t, "Turn 1: Valor rested and feels refreshed! Fatigue reduced by 10.", lastLines(s, 1)[0])

	s, _ = e.Reduce(s, Tavern())
	assert.Equal(t, 3, s.Turn)
	assert.Equal(t, entity.MoodGood, s.Adventurer.Mood)
	assert.Equal(t, "Turn 2: Valor had a great time at the tavern! Mood improved to Good!", lastLines(s, 1)[0])
	assert.Empty(t, s.TrainingHistory)
}

func TestEnterDungeonClosed(t *testing.T) {
	s := started(t)
	s.Turn = 7
	e := newTestEngine(&dice.Sequence{})

	next, _ := e.Reduce(s, EnterDungeon())

	assert.Equal(t, 7, next.Turn)
	assert.False(t, next.InCombat)
	assert.Nil(t, next.Enemy)
	assert.Equal(t, 0, next.CurrentDungeonLevel)
	require.Len(t, next.Log, len(s.Log)+1)
	assert.Equal(t, "The Dungeon Tower opens every 10 turns. Next opening: Turn 10", lastLines(next, 1)[0])
}

func TestEnterDungeon(t *testing.T) {
	s := started(t)
	s.Turn = 10
	e := newTestEngine(&dice.Sequence{Ints: []int{0}})

	next, _ := e.Reduce(s, EnterDungeon())

	require.NotNil(t, next.Enemy)
	assert.True(t, next.InCombat)
	assert.Equal(t, PhaseCombat, next.Phase())
	assert.Equal(t, 10, next.Turn)
	assert.Equal(t, "Goblin", next.Enemy.Name)
	assert.Equal(t, 1, next.Enemy.Level)
	assert.Equal(t, []string{
		"Valor enters Dungeon Tower Level 1!",
		"A Goblin (Lv 1) appears! HP: 50",
	}, lastLines(next, 2))
}

func TestEnterDungeonTopFloorIsBoss(t *testing.T) {
	s := started(t)
	s.Turn = 90
	s.CurrentDungeonLevel = 9

	next, _ := newTestEngine(&dice.Sequence{}).Reduce(s, EnterDungeon())

	require.NotNil(t, next.Enemy)
	assert.True(t, next.Enemy.IsBoss)
	assert.Equal(t, 10, next.Enemy.Level)
	assert.Equal(t, "Shadow Dragon", next.Enemy.Name)
}

func TestEnterDungeonAllConquered(t *testing.T) {
	s := started(t)
	s.Turn = 20
	s.CurrentDungeonLevel = 10

	next, _ := newTestEngine(&dice.Sequence{}).Reduce(s, EnterDungeon())

	assert.False(t, next.InCombat)
	assert.Equal(t, "All dungeon levels have been conquered!", lastLines(next, 1)[0])
}

func TestAttackKillsEnemy(t *testing.T) {
	// Valor hits a Goblin for exactly 16.
	s := fighting(t, 16)
	e := newTestEngine(&dice.Sequence{Floats: []float64{0.5, 0.5}})

	next, out := e.Reduce(s, Attack())

	assert.False(t, next.InCombat)
	assert.Nil(t, next.Enemy)
	assert.Equal(t, 1, next.CurrentDungeonLevel)
	assert.Equal(t, 10, next.Turn)

	a := next.Adventurer
	assert.Equal(t, 2, a.Level)
	assert.Equal(t, 100, a.Exp)
	assert.Equal(t, 150, a.ExpToNextLevel)
	assert.Equal(t, 160, a.MaxHP)
	assert.Equal(t, a.MaxHP, a.HP)
	assert.Equal(t, entity.MoodGood, a.Mood)

	assert.Equal(t, []string{
		"Valor attacks for 16 damage!",
		"Victory! Goblin defeated!",
		"Valor gained a full level! Now level 2!",
		"Mood improved to Good!",
	}, lastLines(next, 4))

	require.NotNil(t, out.LevelUp)
	assert.Equal(t, 2, out.LevelUp.Level)
	assert.Len(t, out.LevelUp.Offers, 3)

	// The previous state still shows the fight.
	assert.True(t, s.InCombat)
	assert.Equal(t, 16, s.Enemy.HP)
	assert.Equal(t, 1, s.Adventurer.Level)
}

func TestAttackConquersTower(t *testing.T) {
	s := started(t)
	s.Turn = 100
	s.CurrentDungeonLevel = 9
	s.Enemy = entity.NewEnemy(10, true, testCatalog.Enemies, &dice.Sequence{})
	s.Enemy.HP = 1
	s.InCombat = true

	// Boss defense 74 leaves the minimum 1 damage.
	next, _ := newTestEngine(&dice.Sequence{Floats: []float64{0.5, 0.5}}).Reduce(s, Attack())

	assert.Equal(t, 10, next.CurrentDungeonLevel)
	assert.Equal(t, PhaseVictory, next.Phase())
	assert.Equal(t, "CONGRATULATIONS! The Dungeon Tower has been conquered!", lastLines(next, 1)[0])
}

func TestAttackCounterAttack(t *testing.T) {
	s := fighting(t, 100)
	// player: no evade, no crit; enemy: no evade, no crit
	e := newTestEngine(&dice.Sequence{Floats: []float64{0.5, 0.5, 0.5, 0.5}})

	next, out := e.Reduce(s, Attack())

	assert.Nil(t, out.LevelUp)
	assert.True(t, next.InCombat)
	require.NotNil(t, next.Enemy)
	assert.Equal(t, 84, next.Enemy.HP)
	assert.Equal(t, 146, next.Adventurer.HP)
	assert.Equal(t, []string{
		"Valor attacks for 16 damage!",
		"Goblin attacks for 14 damage!",
	}, lastLines(next, 2))

	assert.Equal(t, 100, s.Enemy.HP)
	assert.Equal(t, 160, s.Adventurer.HP)
}

func TestAttackCriticalAndEvasion(t *testing.T) {
	s := fighting(t, 100)
	// player crits for 24; the counter-attack is evaded
	e := newTestEngine(&dice.Sequence{Floats: []float64{0.5, 0.01, 0.01}})

	next, _ := e.Reduce(s, Attack())

	assert.Equal(t, 76, next.Enemy.HP)
	assert.Equal(t, []string{
		"Valor attacks for 24 damage! CRITICAL!",
		"Goblin's attack was evaded by Valor!",
	}, lastLines(next, 2))

	next, _ = newTestEngine(&dice.Sequence{Floats: []float64{0.01, 0.5, 0.5}}).Reduce(s, Attack())
	assert.Equal(t, "Valor's attack was evaded!", lastLines(next, 2)[0])
	assert.Equal(t, 100, next.Enemy.HP)
}

func TestAttackCounterAttackClampsHP(t *testing.T) {
	s := fighting(t, 100)
	s.Adventurer.HP = s.Adventurer.MaxHP + 50
	// player hits for 16; the counter-attack is evaded
	next, _ := newTestEngine(&dice.Sequence{Floats: []float64{0.5, 0.5, 0.01}}).Reduce(s, Attack())

	assert.True(t, next.InCombat)
	assert.Equal(t, next.Adventurer.MaxHP, next.Adventurer.HP)
}

func TestAttackDefeat(t *testing.T) {
	s := fighting(t, 100)
	s.Adventurer.HP = 10
	// trade blows, then the 20% condition roll hits and picks Injured
	e := newTestEngine(&dice.Sequence{Floats: []float64{0.5, 0.5, 0.5, 0.5, 0.1}, Ints: []int{0}})

	next, out := e.Reduce(s, Attack())

	assert.Nil(t, out.LevelUp)
	assert.False(t, next.InCombat)
	assert.Nil(t, next.Enemy)
	assert.Equal(t, 0, next.CurrentDungeonLevel)

	a := next.Adventurer
	assert.Equal(t, a.MaxHP, a.HP)
	assert.Equal(t, entity.ConditionInjured, a.Condition)
	assert.Equal(t, entity.MoodBad, a.Mood)
	assert.Equal(t, []string{
		"Goblin attacks for 14 damage!",
		"Valor was defeated and returns to the school...",
		"Valor is now Injured!",
		"Mood lowered to Bad.",
	}, lastLines(next, 4))
}

func TestAttackDefeatWithoutCondition(t *testing.T) {
	s := fighting(t, 100)
	s.Adventurer.HP = 14
	s.Adventurer.Condition = entity.ConditionHexed

	next, _ := newTestEngine(&dice.Sequence{Floats: []float64{0.5, 0.5, 0.5, 0.5, 0.9}}).Reduce(s, Attack())

	assert.Equal(t, entity.ConditionHexed, next.Adventurer.Condition)
	assert.Equal(t, []string{
		"Valor was defeated and returns to the school...",
		"Mood lowered to Bad.",
	}, lastLines(next, 2))
}

func TestUseSkill(t *testing.T) {
	s := fighting(t, 100)
	rage := testCatalog.Skills.GetByID("berserker_rage")
	require.NotNil(t, rage)

	// STR 15*1.3 = 19.5: (19.5+5 - 4) * 1.5 = 30.75
	next, _ := newTestEngine(&dice.Sequence{Floats: []float64{0.5, 0.5, 0.5, 0.5}}).Reduce(s, UseSkill(rage))

	assert.Equal(t, 70, next.Enemy.HP)
	assert.Equal(t, "Valor attacks using Berserker Rage for 30 damage!", lastLines(next, 2)[0])
	assert.Equal(t, 15.0, next.Adventurer.Stats.Strength)
	assert.Equal(t, 12.0, next.Adventurer.Stats.Defense)
}

func TestAttackWithSkillKeepsStats(t *testing.T) {
	s := fighting(t, 100)
	rage := testCatalog.Skills.GetByID("berserker_rage")
	require.NotNil(t, rage)

	a := Attack()
	a.Skill = rage
	next, _ := newTestEngine(&dice.Sequence{Floats: []float64{0.5, 0.5, 0.5, 0.5}}).Reduce(s, a)

	// 16 * 1.5
	assert.Equal(t, 76, next.Enemy.HP)
	assert.Equal(t, "Valor attacks using Berserker Rage for 24 damage!", lastLines(next, 2)[0])
}

func TestSelectSkill(t *testing.T) {
	s := started(t)
	skill := *testCatalog.Skills.GetByID("shield_wall")
	e := newTestEngine(&dice.Sequence{})

	next, _ := e.Reduce(s, SelectSkill(skill))

	require.Len(t, next.Adventurer.Skills, 1)
	assert.Equal(t, "shield_wall", next.Adventurer.Skills[0].ID)
	assert.Equal(t, "Valor learned Shield Wall!", lastLines(next, 1)[0])
	assert.Equal(t, s.Turn, next.Turn)
	assert.Empty(t, s.Adventurer.Skills)

	again, _ := e.Reduce(next, SelectSkill(skill))
	assert.Equal(t, next, again)
}

func TestFlee(t *testing.T) {
	s := fighting(t, 30)

	next, _ := newTestEngine(&dice.Sequence{}).Reduce(s, Flee())

	assert.False(t, next.InCombat)
	assert.Nil(t, next.Enemy)
	assert.Equal(t, s.Adventurer, next.Adventurer)
	assert.Equal(t, s.CurrentDungeonLevel, next.CurrentDungeonLevel)
	assert.Equal(t, s.Turn, next.Turn)
	require.Len(t, next.Log, len(s.Log)+1)
	assert.Equal(t, "Valor fled from battle!", lastLines(next, 1)[0])
}

func TestNewGameResets(t *testing.T) {
	e := newTestEngine(&dice.Sequence{})
	for _, s := range []State{InitialState(), started(t), fighting(t, 10)} {
		next, _ := e.Reduce(s, NewGame())
		assert.Equal(t, InitialState(), next)
	}
}

func TestReduceNeverMutatesPreviousState(t *testing.T) {
	e := newTestEngine(dice.New(12345))
	skill := testCatalog.Skills.GetByID("spell_mastery")
	actions := []Action{
		TrainStat(stats.Strength), TrainStat(stats.Magic), TrainStat(stats.Defense),
		Rest(), Tavern(), EnterDungeon(), Attack(), UseSkill(skill), Flee(),
		SelectSkill(*skill),
	}
	pick := dice.New(54321)

	s, _ := e.Reduce(InitialState(), SelectCharacter(entity.ClassMage))
	for i := 0; i < 300; i++ {
		snapshot := s.Adventurer.Clone()
		logLen := len(s.Log)
		historyLen := len(s.TrainingHistory)
		var enemyHP int
		if s.Enemy != nil {
			enemyHP = s.Enemy.HP
		}

		next, _ := e.Reduce(s, actions[pick.Intn(len(actions))])

		assert.Equal(t, snapshot, s.Adventurer)
		assert.Len(t, s.Log, logLen)
		assert.Len(t, s.TrainingHistory, historyLen)
		if s.Enemy != nil {
			assert.Equal(t, enemyHP, s.Enemy.HP)
		}
		assert.LessOrEqual(t, next.Adventurer.HP, next.Adventurer.MaxHP)
		assert.GreaterOrEqual(t, next.Adventurer.Fatigue, 0)
		s = next
	}
}
