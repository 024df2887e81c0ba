package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/1siamBot/feg-tactics/engine/ai"
	"github.com/1siamBot/feg-tactics/engine/core"
	"github.com/1siamBot/feg-tactics/engine/input"
	"github.com/1siamBot/feg-tactics/engine/logger"
	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/render"
	"github.com/1siamBot/feg-tactics/engine/replay"
	"github.com/1siamBot/feg-tactics/engine/systems"
	"github.com/1siamBot/feg-tactics/engine/ui"
)

const (
	TickRate = 60.0
	Teams    = 2
	CPUTeam  = 1
)

// Game implements ebiten.Game interface
type Game struct {
	layout   render.GridLayout
	renderer *render.GridRenderer
	hud      *ui.HUD
	input    *input.InputState
	eventBus *core.EventBus
	roster   *core.Roster
	gameLoop *core.GameLoop
	cpu      *ai.AIController
	recorder *replay.Replay
	log      logrus.FieldLogger

	// Interaction state
	selected *core.Unit
	hover    maplib.Coord
	hasHover bool
	status   string
	cpuAuto  bool
}

func NewGame(cfg config) (*Game, error) {
	grid, starts, err := loadScenario(cfg)
	if err != nil {
		return nil, err
	}

	layout := render.NewGridLayout(grid.Width, grid.Height)
	bus := core.NewEventBus()
	roster := core.NewRoster(grid, bus)
	g := &Game{
		layout:   layout,
		renderer: render.NewGridRenderer(layout, render.LoadSprites(cfg.Resources, layout.CellSize(), logger.Log)),
		hud:      ui.NewHUD(render.WindowWidth, render.WindowHeight, render.HorizontalPadding),
		input:    input.NewInputState(),
		eventBus: bus,
		roster:   roster,
		gameLoop: core.NewGameLoop(TickRate, roster, bus, Teams),
		cpu:      ai.NewAIController(CPUTeam, ai.DiffMedium, 1),
		log:      logger.Log,
		cpuAuto:  cfg.CPU,
	}
	if cfg.AIRule != "" {
		if err := g.cpu.SetRule(cfg.AIRule); err != nil {
			return nil, err
		}
	}
	g.gameLoop.AddSystem(&systems.MovementSystem{})
	g.gameLoop.AddSystem(&systems.AnimationSystem{})

	for _, sp := range starts {
		if _, err := roster.Spawn(sp.Name, sp.Team, sp.BudgetOr(cfg.Budget), maplib.Coord{X: sp.X, Y: sp.Y}); err != nil {
			return nil, err
		}
	}

	bus.On(core.EvtUnitMoved, func(e core.Event) {
		mv := e.Payload.(core.MoveEvent)
		g.log.WithFields(logrus.Fields{
			"unit": mv.ID, "from": mv.From, "to": mv.To, "cost": mv.Cost.String(), "steps": len(mv.Path) - 1,
		}).Info("unit moved")
	})
	bus.On(core.EvtTurnEnded, func(e core.Event) {
		t := e.Payload.(core.TurnEvent)
		g.log.WithFields(logrus.Fields{"round": t.Round, "next": t.Next}).Info("turn ended")
	})

	if cfg.Play != "" {
		rp, err := replay.LoadReplay(cfg.Play)
		if err != nil {
			return nil, err
		}
		if err := rp.Play(g.gameLoop); err != nil {
			return nil, err
		}
		g.log.WithField("commands", len(rp.Commands)).Info("replay applied")
	}
	if cfg.Record != "" {
		if g.recorder, err = replay.NewReplayRecorder(cfg.Record); err != nil {
			return nil, err
		}
	}

	g.gameLoop.Play()
	return g, nil
}

func (g *Game) record(cmd replay.GameCommand) {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.Record(cmd); err != nil {
		g.log.WithError(err).Warn("replay record failed")
	}
}

// Close flushes the replay recording
func (g *Game) Close() error {
	if g.recorder == nil {
		return nil
	}
	return g.recorder.Close()
}

// moveUnit moves u and records the command
func (g *Game) moveUnit(u *core.Unit, dest maplib.Coord) error {
	cmd := replay.MoveCommand(g.gameLoop, u, dest)
	if _, err := g.roster.Move(u.ID, dest); err != nil {
		return err
	}
	g.record(cmd)
	return nil
}

// clickCell handles a left click on a grid cell
func (g *Game) clickCell(c maplib.Coord) {
	if u := g.selected; u != nil && g.gameLoop.CanAct(u) && u.CanReach(c) && c != u.Location() {
		cost, _ := u.CostTo(c)
		if err := g.moveUnit(u, c); err != nil {
			g.status = err.Error()
			return
		}
		g.status = fmt.Sprintf("%s moved to (%d, %d) for %v", u.Name, c.X, c.Y, cost)
		g.selected = nil
		return
	}
	if u := g.roster.UnitAt(c); u != nil {
		g.selected = u
		g.status = ""
		return
	}
	g.selected = nil
}

// endTurn passes the turn and lets the CPU play its team when enabled
func (g *Game) endTurn() {
	g.record(replay.EndTurnCommand(g.gameLoop))
	g.gameLoop.EndTurn()
	g.selected = nil
	if g.cpuAuto && g.gameLoop.Team == g.cpu.Team {
		g.runCPU()
		g.record(replay.EndTurnCommand(g.gameLoop))
		g.gameLoop.EndTurn()
	}
}

// runCPU moves the CPU team's units for this turn
func (g *Game) runCPU() {
	if g.gameLoop.Team != g.cpu.Team {
		g.status = "not the CPU's turn"
		return
	}
	for _, o := range g.cpu.Plan(g.roster) {
		u := g.roster.Get(o.Unit)
		if o.Dest == u.Location() {
			u.Moved = true
			continue
		}
		if err := g.moveUnit(u, o.Dest); err != nil {
			g.log.WithError(err).Warn("cpu move failed")
		}
	}
}

func (g *Game) command(cmd ui.CommandType) {
	switch cmd {
	case ui.CmdEndTurn:
		g.endTurn()
	case ui.CmdDeselect:
		g.selected = nil
	case ui.CmdCPUTurn:
		g.runCPU()
	}
}

// previewPath is the consolidated path from the selected unit to the hover cell
func (g *Game) previewPath() []maplib.Coord {
	if g.selected == nil || !g.hasHover || !g.gameLoop.CanAct(g.selected) {
		return nil
	}
	return g.selected.Reach().ConsolidatedPathTo(g.hover)
}

func (g *Game) Update() error {
	g.input.Update()
	g.gameLoop.Update()

	g.hover, g.hasHover = g.layout.ScreenToGrid(g.input.MouseX, g.input.MouseY)

	if g.input.LeftJustPressed {
		if cmd := g.hud.HandleClick(g.input.MouseX, g.input.MouseY); cmd != ui.CmdNone {
			g.command(cmd)
		} else if g.hasHover {
			g.clickCell(g.hover)
		}
	}
	if g.input.RightJustPressed || g.input.IsKeyJustPressed(ebiten.KeyEscape) {
		g.selected = nil
	}
	if g.input.IsKeyJustPressed(ebiten.KeyEnter) {
		g.endTurn()
	}
	if g.input.IsKeyJustPressed(ebiten.KeySpace) {
		if g.gameLoop.State == core.StatePaused {
			g.gameLoop.Play()
		} else {
			g.gameLoop.Pause()
		}
	}

	g.eventBus.Dispatch()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{12, 14, 20, 255})

	g.renderer.Draw(screen, render.Scene{
		Grid:     g.roster.Grid(),
		Units:    g.roster.Units(),
		Selected: g.selected,
		Hover:    g.hover,
		HasHover: g.hasHover,
		Path:     g.previewPath(),
	})

	info := ui.Info{
		Round:    g.gameLoop.Round,
		Team:     g.gameLoop.Team,
		Selected: g.selected,
		Hover:    g.hover,
		HasHover: g.hasHover,
		Status:   g.status,
		FPS:      ebiten.ActualFPS(),
	}
	if g.hasHover {
		info.HoverTile = g.roster.Grid().At(g.hover)
	}
	g.hud.Draw(screen, info)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.WindowWidth, render.WindowHeight
}
