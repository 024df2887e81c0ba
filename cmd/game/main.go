// Command game runs the playable tactics prototype.
package main

import (
	"context"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/1siamBot/feg-tactics/engine/ai"
	"github.com/1siamBot/feg-tactics/engine/logger"
	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/render"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "game",
		Usage: "play the grid tactics prototype",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "resources", Value: maplib.ResourceDir, Usage: "resource directory", Sources: cli.EnvVars("FEG_RESOURCES")},
			&cli.StringFlag{Name: "map", Value: "terrain.txt", Usage: "map file, text or .json, relative to resources", Sources: cli.EnvVars("FEG_MAP")},
			&cli.IntFlag{Name: "width", Value: 10, Usage: "text map width in cells", Sources: cli.EnvVars("FEG_WIDTH")},
			&cli.IntFlag{Name: "height", Value: 10, Usage: "text map height in cells", Sources: cli.EnvVars("FEG_HEIGHT")},
			&cli.IntFlag{Name: "budget", Value: 5, Usage: "movement budget for units without one", Sources: cli.EnvVars("FEG_BUDGET")},
			&cli.BoolFlag{Name: "cpu", Value: true, Usage: "let the computer play team 1", Sources: cli.EnvVars("FEG_CPU")},
			&cli.StringFlag{Name: "ai-rule", Value: ai.DefaultRule, Usage: "CPU cell scoring expression over Left, Spent, Legs, Sand", Sources: cli.EnvVars("FEG_AI_RULE")},
			&cli.StringFlag{Name: "record", Usage: "record moves to a replay file", Sources: cli.EnvVars("FEG_RECORD")},
			&cli.StringFlag{Name: "play", Usage: "apply a replay file before starting", Sources: cli.EnvVars("FEG_PLAY")},
			&cli.BoolFlag{Name: "debug", Usage: "debug logging", Sources: cli.EnvVars("FEG_DEBUG")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config{
				Resources: cmd.String("resources"),
				Map:       cmd.String("map"),
				Width:     int(cmd.Int("width")),
				Height:    int(cmd.Int("height")),
				Budget:    int(cmd.Int("budget")),
				CPU:       cmd.Bool("cpu"),
				AIRule:    cmd.String("ai-rule"),
				Record:    cmd.String("record"),
				Play:      cmd.String("play"),
				Debug:     cmd.Bool("debug"),
			}
			logger.Init(cfg.Debug)

			game, err := NewGame(cfg)
			if err != nil {
				return err
			}
			defer game.Close()

			ebiten.SetWindowSize(render.WindowWidth, render.WindowHeight)
			ebiten.SetWindowTitle("FEG")
			logger.Log.WithField("map", cfg.Map).Info("starting game")
			return ebiten.RunGame(game)
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Log.WithError(err).Warn("error loading .env file")
	}
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		logger.Log.WithError(err).Fatal("game failed")
	}
}
