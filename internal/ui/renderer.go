package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/stats"
)

const (
	sidebarWidth = 38
	minLogLines  = 5
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleKey    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleDanger = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.drawHeader(v)

	var bottom int
	switch v.Mode {
	case ModeCharacterSelect:
		bottom = r.drawCharacterSelect(v, 2)
	default:
		bottom = r.drawAdventurer(v.Adventurer, 0, 2)
		if v.Mode == ModeCombat {
			r.drawCombat(v, sidebarWidth+2, 2)
		} else {
			r.drawTrainingMenu(v, sidebarWidth+2, 2)
		}
	}

	if len(v.Offers) > 0 {
		r.drawSkillPrompt(v.Offers, sidebarWidth+2, 14)
	}

	logTop := bottom + 1
	if h-logTop-1 < minLogLines {
		logTop = h - 1 - minLogLines
	}
	r.drawLog(v.Log, logTop, h-1)

	status := " " + v.Status
	if len(status) < w {
		status += strings.Repeat(" ", w-len(status))
	}
	r.screen.DrawText(0, h-1, status, styleStatus)

	r.screen.Show()
}

func (r *Renderer) drawHeader(v View) {
	title := "DUNGEON TOWER"
	x := r.screen.DrawText(0, 0, title, styleTitle)
	if v.Adventurer != nil {
		r.screen.DrawText(x+2, 0,
			fmt.Sprintf("Turn %d | Floors cleared %d/10", v.Turn, v.DungeonLevel), styleDim)
	}
}

func (r *Renderer) drawCharacterSelect(v View, y int) int {
	w, _ := r.screen.Size()
	for _, line := range wrap(v.Intro, w-2) {
		r.screen.DrawText(1, y, line, styleText)
		y++
	}
	y++

	for i, c := range v.Classes {
		style := tcell.StyleDefault.Foreground(c.TCellColor()).Bold(true)
		x := r.screen.DrawText(1, y, fmt.Sprintf("[%d] ", i+1), styleKey)
		x = r.screen.DrawText(x, y, fmt.Sprintf("%s the %s", c.DefaultName, c.Name), style)
		r.screen.DrawText(x+2, y, c.Description, styleDim)
		y++
		r.screen.DrawText(5, y, statLine(c.Stats), styleDim)
		y++
		if intro := strings.TrimSpace(v.ClassIntros[c.ID]); intro != "" {
			for _, line := range wrap(intro, w-6) {
				r.screen.DrawText(5, y, line, styleText)
				y++
			}
		}
		y++
	}
	r.screen.DrawText(1, y, "[q] quit", styleDim)
	return y + 1
}

func (r *Renderer) drawAdventurer(a *entity.Adventurer, x, y int) int {
	if a == nil {
		return y
	}
	r.screen.DrawText(x+1, y, fmt.Sprintf("%s the %s  Lv %d", a.Name, a.Class, a.Level), styleTitle)
	y++
	r.screen.DrawText(x+1, y, fmt.Sprintf("EXP %d/%d", a.Exp, a.ExpToNextLevel), styleText)
	y++
	r.drawBar(x+1, y, "HP", a.HP, a.MaxHP, tcell.ColorGreen)
	y++

	mx := r.screen.DrawText(x+1, y, "Mood ", styleText)
	r.screen.DrawText(mx, y, a.Mood.String(), tcell.StyleDefault.Foreground(gamedata.MoodColor(a.Mood.String())))
	y++
	r.screen.DrawText(x+1, y, fmt.Sprintf("Fatigue %d", a.Fatigue), styleText)
	y++
	if a.Condition != entity.ConditionNone {
		r.screen.DrawText(x+1, y, "Condition "+a.Condition.String(), styleDanger)
		y++
	}
	y++

	for _, st := range stats.All() {
		r.screen.DrawText(x+1, y, fmt.Sprintf("%-9s %6.1f  (T%d %3d xp)",
			st.Short(), a.Stats.Get(st), a.TrainingLevels[st], a.TrainingExp[st]), styleText)
		y++
	}
	y++

	if len(a.Skills) > 0 {
		r.screen.DrawText(x+1, y, "Skills", styleTitle)
		y++
		for _, s := range a.Skills {
			r.screen.DrawText(x+2, y, s.Name, styleText)
			y++
		}
	}
	return y
}

func (r *Renderer) drawTrainingMenu(v View, x, y int) {
	if v.Mode == ModeVictory {
		y = r.drawVictory(v, x, y)
	}
	r.screen.DrawText(x, y, "Training", styleTitle)
	y++
	for i, st := range stats.All() {
		kx := r.screen.DrawText(x, y, fmt.Sprintf("[%d] ", i+1), styleKey)
		r.screen.DrawText(kx, y, "Train "+st.Short(), styleText)
		y++
	}
	kx := r.screen.DrawText(x, y, "[r] ", styleKey)
	r.screen.DrawText(kx, y, "Rest", styleText)
	y++
	kx = r.screen.DrawText(x, y, "[t] ", styleKey)
	r.screen.DrawText(kx, y, "Tavern", styleText)
	y++
	switch {
	case v.Mode == ModeVictory:
		r.screen.DrawText(x, y, "Every floor has been cleared", styleDim)
	case v.DungeonOpen:
		kx = r.screen.DrawText(x, y, "[d] ", styleKey)
		r.screen.DrawText(kx, y, fmt.Sprintf("Enter Dungeon Tower (Level %d)", v.DungeonLevel+1), styleDanger)
	default:
		r.screen.DrawText(x, y, fmt.Sprintf("Tower opens on turn %d", v.NextOpening), styleDim)
	}
	y++
	r.screen.DrawText(x, y, "[n] new game  [q] quit", styleDim)
}

func (r *Renderer) drawCombat(v View, x, y int) {
	e := v.Enemy
	if e == nil {
		return
	}
	name := e.Name
	if e.IsBoss {
		name += " (BOSS)"
	}
	r.screen.DrawText(x, y, fmt.Sprintf("%s  Lv %d", name, e.Level), styleDanger)
	y++
	r.drawBar(x, y, "HP", e.HP, e.MaxHP, tcell.ColorRed)
	y++
	r.screen.DrawText(x, y, fmt.Sprintf("STR %.0f  MAG %.0f  DEF %.0f  EVA %.0f",
		e.Stats.Strength, e.Stats.Magic, e.Stats.Defense, e.Stats.Evasion), styleDim)
	y += 2

	kx := r.screen.DrawText(x, y, "[a] ", styleKey)
	r.screen.DrawText(kx, y, "Attack", styleText)
	y++
	if a := v.Adventurer; a != nil {
		for i, s := range a.Skills {
			if i >= 9 {
				break
			}
			kx = r.screen.DrawText(x, y, fmt.Sprintf("[%d] ", i+1), styleKey)
			kx = r.screen.DrawText(kx, y, s.Name, styleText)
			r.screen.DrawText(kx+1, y, s.Description, styleDim)
			y++
		}
	}
	kx = r.screen.DrawText(x, y, "[f] ", styleKey)
	r.screen.DrawText(kx, y, "Flee", styleText)
}

// drawVictory draws the conquest banner above the training menu and returns
// the next free row.
func (r *Renderer) drawVictory(v View, x, y int) int {
	r.screen.DrawText(x, y, "The Dungeon Tower has been conquered!", styleTitle)
	y++
	if a := v.Adventurer; a != nil {
		r.screen.DrawText(x, y, fmt.Sprintf("%s the %s reached level %d in %d turns.",
			a.Name, a.Class, a.Level, v.Turn), styleText)
		y++
	}
	return y + 1
}

func (r *Renderer) drawSkillPrompt(offers []gamedata.SkillDef, x, y int) {
	r.screen.DrawText(x, y, "LEVEL UP! Choose a new skill to learn:", styleTitle)
	y++
	for i, s := range offers {
		kx := r.screen.DrawText(x, y, fmt.Sprintf("[%d] ", i+1), styleKey)
		r.screen.DrawText(kx, y, s.Name, styleText)
		y++
		r.screen.DrawText(x+4, y, s.Description, styleDim)
		y++
	}
}

// drawLog shows the newest lines that fit between top and bottom (exclusive).
func (r *Renderer) drawLog(lines []string, top, bottom int) {
	if top < 0 {
		top = 0
	}
	rows := bottom - top
	if rows <= 0 {
		return
	}
	start := 0
	if len(lines) > rows {
		start = len(lines) - rows
	}
	for i, line := range lines[start:] {
		r.screen.DrawText(1, top+i, line, styleDim)
	}
}

func (r *Renderer) drawBar(x, y int, label string, cur, total int, color tcell.Color) {
	const width = 20
	filled := 0
	if total > 0 && cur > 0 {
		filled = min(cur*width/total, width)
	}
	x = r.screen.DrawText(x, y, label+" ", styleText)
	x = r.screen.DrawText(x, y, strings.Repeat("#", filled), tcell.StyleDefault.Foreground(color))
	x = r.screen.DrawText(x, y, strings.Repeat(".", width-filled), styleDim)
	r.screen.DrawText(x+1, y, fmt.Sprintf("%d/%d", cur, total), styleText)
}

func statLine(s stats.Stats) string {
	parts := make([]string, 0, 6)
	for _, st := range stats.All() {
		parts = append(parts, fmt.Sprintf("%s %.0f", st.Short(), s.Get(st)))
	}
	return strings.Join(parts, "  ")
}

// wrap splits text into lines no wider than width, keeping blank lines.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > width {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}
	return out
}
