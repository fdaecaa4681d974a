package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/stardrive/common"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/milk9111/stardrive/ecs/entity"
	"github.com/milk9111/stardrive/ecs/system"
	"github.com/milk9111/stardrive/logging"
	"github.com/milk9111/stardrive/prefabs"
	"github.com/rs/zerolog"
)

type options struct {
	script string
	frames int
	every  int
	csv    bool
	seed   uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.script, "script", "cruise", "autopilot script: "+strings.Join(prefabs.ScriptNames(), ", "))
	flag.IntVar(&opts.frames, "frames", 600, "number of frames to simulate")
	flag.IntVar(&opts.every, "every", 60, "report every N frames")
	flag.BoolVar(&opts.csv, "csv", false, "write frame,speed,x,z,yaw rows to stdout")
	flag.Uint64Var(&opts.seed, "seed", 1, "starfield random seed")
	level := flag.String("log", "info", "log level")
	flag.Parse()

	logger := logging.New(*level, true, os.Stderr)
	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("drivesim: run")
	}
}

func run(opts options, out io.Writer, logger zerolog.Logger) error {
	if opts.frames < 0 {
		return fmt.Errorf("drivesim: frames must be >= 0, got %d", opts.frames)
	}
	if opts.every <= 0 {
		opts.every = 1
	}

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, rng, common.BaseWidth, common.BaseHeight)
	if err != nil {
		return fmt.Errorf("drivesim: build scene: %w", err)
	}

	pilot, err := system.LoadAutopilot(opts.script, func() system.Telemetry {
		return system.CarTelemetry(w)
	})
	if err != nil {
		return err
	}
	pipeline := system.NewPipeline(pilot, rng, logger)

	var rows *csv.Writer
	if opts.csv {
		rows = csv.NewWriter(out)
		if err := rows.Write([]string{"frame", "speed", "x", "z", "yaw"}); err != nil {
			return err
		}
	}

	for frame := 1; frame <= opts.frames; frame++ {
		pipeline.Update(w)
		if frame%opts.every != 0 && frame != opts.frames {
			continue
		}

		tel := system.CarTelemetry(w)
		if rows != nil {
			if err := rows.Write([]string{
				strconv.Itoa(frame),
				strconv.FormatFloat(tel.Speed, 'f', 3, 64),
				strconv.FormatFloat(tel.X, 'f', 4, 64),
				strconv.FormatFloat(tel.Z, 'f', 4, 64),
				strconv.FormatFloat(tel.Yaw, 'f', 4, 64),
			}); err != nil {
				return err
			}
			continue
		}

		if hud, ok := ecs.Get(w, scene.HUD, component.HUDComponent.Kind()); ok {
			logger.Info().
				Int("frame", frame).
				Int("speed", hud.Speed).
				Int("x", hud.X).
				Int("z", hud.Z).
				Float64("yaw", tel.Yaw).
				Msg("drivesim: telemetry")
		}
	}

	if rows != nil {
		rows.Flush()
		return rows.Error()
	}
	return nil
}
