package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeontower/internal/dice"
	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/stats"
	"github.com/samdwyer/dungeontower/internal/telemetry"
	"github.com/samdwyer/dungeontower/internal/ui"
)

// Game is the terminal front end. It turns key presses into actions,
// dispatches them to the store and draws the result.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	store    *Store
	catalog  *gamedata.Catalog
	seed     int64

	// Presentation-only state. None of it is part of State.
	flavorRng *rand.Rand
	offers    []gamedata.SkillDef // Open skill prompt
	status    string

	running atomic.Bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open screen: %w", err)
	}
	g, err := newGame(screen, cfg, logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

func newGame(screen *ui.Screen, cfg Config, logger *slog.Logger) (*Game, error) {
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load game data: %w", err)
	}

	engine := NewEngine(catalog, dice.New(cfg.Seed))
	g := &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		store:     NewStore(engine, logger),
		catalog:   catalog,
		seed:      cfg.Seed,
		flavorRng: rand.New(rand.NewSource(cfg.Seed)),
	}
	g.running.Store(true)
	return g, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int64("seed", g.seed),
		attribute.Int("catalog.classes", g.catalog.Classes.Count()),
		attribute.Int("catalog.skills", g.catalog.Skills.Count()),
	)
	initSpan.End()

	for g.running.Load() {
		g.renderer.Render(g.view())
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// Stop ends the game loop from another goroutine. It is safe to call more
// than once.
func (g *Game) Stop() {
	if !g.running.Swap(false) {
		return
	}
	// Wake PollEvent so the loop sees the flag.
	_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// view builds the renderer's input from the current state.
func (g *Game) view() ui.View {
	s := g.store.State()

	mode := ui.ModeTraining
	switch s.Phase() {
	case PhaseCharacterSelect:
		mode = ui.ModeCharacterSelect
	case PhaseCombat:
		mode = ui.ModeCombat
	case PhaseVictory:
		mode = ui.ModeVictory
	}

	return ui.View{
		Mode:         mode,
		Adventurer:   s.Adventurer,
		Enemy:        s.Enemy,
		Turn:         s.Turn,
		DungeonLevel: s.CurrentDungeonLevel,
		DungeonOpen:  s.DungeonOpen(),
		NextOpening:  s.NextOpening(),
		Log:          s.Log,
		Classes:      g.catalog.Classes.All(),
		Intro:        g.catalog.Flavor.Intro,
		ClassIntros:  g.catalog.Flavor.ClassIntros,
		Offers:       g.offers,
		Status:       g.status,
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		// Posted by Stop; the loop condition handles it.
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	g.handleKey(ctx, ev.Key(), ev.Rune())
}

func (g *Game) handleKey(ctx context.Context, k tcell.Key, key rune) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running.Store(false)
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch key {
	case 'q', 'Q':
		g.running.Store(false)
		return
	case 'n', 'N':
		g.offers = nil
		g.status = ""
		g.dispatch(ctx, NewGame())
		return
	}

	if len(g.offers) > 0 {
		if i, ok := digit(key, len(g.offers)); ok {
			skill := g.offers[i]
			g.offers = nil
			g.dispatch(ctx, SelectSkill(skill))
		}
		return
	}

	s := g.store.State()
	switch s.Phase() {
	case PhaseCharacterSelect:
		classes := entity.Classes()
		if i, ok := digit(key, len(classes)); ok {
			g.dispatch(ctx, SelectCharacter(classes[i]))
		}
	case PhaseTraining, PhaseVictory:
		g.handleTrainingKey(ctx, s, key)
	case PhaseCombat:
		g.handleCombatKey(ctx, s, key)
	}
}

func (g *Game) handleTrainingKey(ctx context.Context, s State, key rune) {
	all := stats.All()
	if i, ok := digit(key, len(all)); ok {
		g.status = s.Adventurer.Name + " " + g.catalog.Flavor.TrainingLine(g.flavorRng, all[i])
		g.dispatch(ctx, TrainStat(all[i]))
		return
	}

	switch key {
	case 'r', 'R':
		g.status = ""
		g.dispatch(ctx, Rest())
	case 't', 'T':
		g.status = ""
		g.dispatch(ctx, Tavern())
	case 'd', 'D':
		g.status = ""
		g.dispatch(ctx, EnterDungeon())
	}
}

func (g *Game) handleCombatKey(ctx context.Context, s State, key rune) {
	var next State
	switch key {
	case 'a', 'A':
		next = g.dispatch(ctx, Attack())
	case 'f', 'F':
		g.status = ""
		g.dispatch(ctx, Flee())
		return
	default:
		skills := s.Adventurer.Skills
		i, ok := digit(key, min(len(skills), 9))
		if !ok {
			return
		}
		skill := skills[i]
		next = g.dispatch(ctx, UseSkill(&skill))
	}

	switch {
	case next.InCombat:
		g.status = ""
	case next.CurrentDungeonLevel > s.CurrentDungeonLevel:
		g.status = s.Adventurer.Name + " " + g.catalog.Flavor.VictoryLine(g.flavorRng)
	default:
		g.status = s.Adventurer.Name + " " + g.catalog.Flavor.DefeatLine(g.flavorRng)
	}
}

// dispatch sends an action to the store and opens the skill prompt when the
// transition raised a level-up with offers.
func (g *Game) dispatch(ctx context.Context, a Action) State {
	next, out := g.store.Dispatch(ctx, a)
	if out.LevelUp != nil && len(out.LevelUp.Offers) > 0 {
		g.offers = out.LevelUp.Offers
	}
	return next
}

// digit maps '1'..'9' to a zero-based index below n.
func digit(r rune, n int) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	i := int(r - '1')
	return i, i < n
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
