package main

import (
	"flag"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stardrive/config"
	"github.com/milk9111/stardrive/logging"
	"github.com/milk9111/stardrive/prefabs"
)

func main() {
	configPath := flag.String("config", "", "path to a stardrive.yaml config file")
	autopilot := flag.String("autopilot", "", "drive with a script from prefabs/scripts: "+strings.Join(prefabs.ScriptNames(), ", "))
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 1, "starfield random seed")
	flag.Parse()

	v, settings, err := config.Load(*configPath)
	if err != nil {
		logging.New("info", true, os.Stderr).Fatal().Err(err).Msg("stardrive: load config")
	}

	// flags only win when given explicitly
	overrides := map[string]any{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "autopilot":
			overrides["autopilot.script"] = *autopilot
		case "debug":
			overrides["debug"] = *debug
		case "m":
			overrides["window.baseMonitor"] = *baseMonitor
		case "seed":
			overrides["scene.seed"] = *seed
		}
	})
	if settings, err = config.Override(v, overrides); err != nil {
		logging.New("info", true, os.Stderr).Fatal().Err(err).Msg("stardrive: apply flags")
	}
	if settings.Debug && settings.Log.Level == "info" {
		settings.Log.Level = "debug"
	}

	logger := logging.New(settings.Log.Level, settings.Log.Pretty, os.Stderr)

	if settings.Window.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetFullscreen(settings.Window.Fullscreen)

	game, err := NewGame(settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("stardrive: build game")
	}
	defer game.Close()

	logger.Info().
		Str("autopilot", settings.Autopilot.Script).
		Uint64("seed", settings.Scene.Seed).
		Msg("stardrive: starting")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("stardrive: run")
	}
}
