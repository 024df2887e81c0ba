// Command reach prints the movement reach of a unit on a terrain map.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/1siamBot/feg-tactics/engine/logger"
	"github.com/1siamBot/feg-tactics/engine/maplib"
)

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "reach",
		Usage: "print the cells a unit can reach on a terrain map",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "map", Value: filepath.Join(maplib.ResourceDir, "terrain.txt"), Usage: "terrain map file", Sources: cli.EnvVars("FEG_MAP")},
			&cli.IntFlag{Name: "width", Value: 10, Usage: "map width in cells", Sources: cli.EnvVars("FEG_WIDTH")},
			&cli.IntFlag{Name: "height", Value: 10, Usage: "map height in cells", Sources: cli.EnvVars("FEG_HEIGHT")},
			&cli.IntFlag{Name: "x", Usage: "source column"},
			&cli.IntFlag{Name: "y", Usage: "source row"},
			&cli.IntFlag{Name: "budget", Value: 5, Usage: "movement budget", Sources: cli.EnvVars("FEG_BUDGET")},
			&cli.StringFlag{Name: "to", Usage: "destination as x,y"},
			&cli.BoolFlag{Name: "copy", Usage: "also copy the report to the clipboard"},
			&cli.BoolFlag{Name: "debug", Usage: "debug logging", Sources: cli.EnvVars("FEG_DEBUG")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.InitTo(os.Stderr, cmd.Bool("debug"))

			dir, name := filepath.Split(cmd.String("map"))
			g, err := maplib.LoadTerrain(dir, name, int(cmd.Int("width")), int(cmd.Int("height")))
			if err != nil {
				return err
			}
			src := maplib.Coord{X: int(cmd.Int("x")), Y: int(cmd.Int("y"))}
			if !g.InBounds(src) {
				return fmt.Errorf("source (%d,%d) is outside the %dx%d map", src.X, src.Y, g.Width, g.Height)
			}
			var dest *maplib.Coord
			if s := cmd.String("to"); s != "" {
				c, err := parseCoord(s)
				if err != nil {
					return err
				}
				dest = &c
			}
			logger.Log.WithField("map", cmd.String("map")).Debug("map loaded")

			var buf bytes.Buffer
			if err := writeReport(&buf, g, src, int(cmd.Int("budget")), dest); err != nil {
				return err
			}
			if cmd.Bool("copy") {
				if err := clipboard.WriteAll(buf.String()); err != nil {
					logger.Log.WithError(err).Warn("could not copy to clipboard")
				}
			}
			_, err = out.Write(buf.Bytes())
			return err
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Log.WithError(err).Warn("error loading .env file")
	}
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		logger.Log.WithError(err).Error("reach failed")
		os.Exit(1)
	}
}
