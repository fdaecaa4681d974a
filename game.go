package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/stardrive/common"
	"github.com/milk9111/stardrive/config"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/milk9111/stardrive/ecs/entity"
	"github.com/milk9111/stardrive/ecs/render"
	"github.com/milk9111/stardrive/ecs/system"
	"github.com/milk9111/stardrive/prefabs"
	"github.com/rs/zerolog"
)

type Game struct {
	world    *ecs.World
	scene    entity.Scene
	pipeline *system.Pipeline
	renderer *render.RenderSystem

	hud     *HUD
	pauseUI *ebitenui.UI
	paused  bool
	debug   bool

	keyboard      KeyboardSource
	autopilot     *system.Autopilot
	autopilotName string
	driving       bool // true while the autopilot has the wheel

	watcher   *prefabs.Watcher
	clipboard *Clipboard
	logger    zerolog.Logger
}

func NewGame(settings config.Settings, logger zerolog.Logger) (*Game, error) {
	seed := settings.Scene.Seed
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	w := ecs.NewWorld()

	width, height := settings.Window.Width, settings.Window.Height
	if width <= 0 || height <= 0 {
		width, height = common.BaseWidth, common.BaseHeight
	}

	scene, err := entity.BuildScene(w, rng, width, height)
	if err != nil {
		return nil, fmt.Errorf("game: build scene: %w", err)
	}

	g := &Game{
		world:     w,
		scene:     scene,
		renderer:  render.NewRenderSystem(),
		hud:       NewHUD(),
		debug:     settings.Debug,
		clipboard: NewClipboard(logger),
		logger:    logger,
	}
	g.pipeline = system.NewPipeline(g.keyboard, rng, logger)
	g.pauseUI = NewPauseUI(g)

	if settings.Autopilot.Script != "" {
		if err := g.loadAutopilot(settings.Autopilot.Script); err != nil {
			return nil, err
		}
	}

	if settings.Prefabs.Watch && prefabs.OnDisk() {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			logger.Warn().Err(err).Msg("prefabs: watch disabled")
		} else {
			g.watcher = watcher
			logger.Debug().Str("dir", prefabs.Dir).Msg("prefabs: watching for changes")
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	g.reloadPrefabs()

	// copying works from the pause menu too; the HUD holds the last simulated frame
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyTelemetry()
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) && g.autopilot != nil {
		g.setDriving(!g.driving)
	}

	g.pipeline.Update(g.world)
	g.hud.Update(g.world)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	g.hud.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		driver := "keyboard"
		if g.driving {
			driver = "autopilot " + g.autopilot.Name()
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  frame: %d  %s", ebiten.ActualFPS(), g.pipeline.Input.Frame(), driver), 10, screen.Bounds().Dy()-20)
	}
}

// LayoutF renders at the window's native size and keeps the camera aspect in step.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if system.ApplyResize(g.world, int(outsideWidth), int(outsideHeight)) {
		g.logger.Debug().Float64("width", outsideWidth).Float64("height", outsideHeight).Msg("viewport: resized")
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) resetCar() {
	entity.ResetCar(g.world)
	g.logger.Info().Msg("car: reset to spawn")
}

func (g *Game) copyTelemetry() {
	hud, ok := ecs.Get(g.world, g.scene.HUD, component.HUDComponent.Kind())
	if !ok {
		return
	}
	g.clipboard.Copy(system.FormatTelemetry(*hud))
}

func (g *Game) loadAutopilot(name string) error {
	pilot, err := system.LoadAutopilot(name, func() system.Telemetry {
		return system.CarTelemetry(g.world)
	})
	if err != nil {
		return err
	}
	g.autopilot = pilot
	g.autopilotName = name
	g.setDriving(true)
	g.logger.Info().Str("script", name).Msg("autopilot: loaded")
	return nil
}

func (g *Game) setDriving(on bool) {
	g.driving = on
	if on {
		g.pipeline.Input.SetSource(g.autopilot)
		return
	}
	g.pipeline.Input.SetSource(g.keyboard)
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}

	for _, name := range g.watcher.Drain() {
		var err error
		switch {
		case name == prefabs.CarFile:
			err = entity.ReloadCarTuning(g.world)
		case name == prefabs.CameraFile:
			err = entity.ReloadCamera(g.world)
		case name == prefabs.SceneFile:
			g.logger.Info().Str("file", name).Msg("prefabs: scene changes apply on restart")
			continue
		case prefabs.IsScriptFile(name) && g.autopilot != nil && scriptBase(name) == scriptBase(g.autopilotName):
			driving := g.driving
			err = g.loadAutopilot(g.autopilotName)
			if err == nil && !driving {
				g.setDriving(false)
			}
		default:
			continue
		}

		// a bad edit keeps the previous values in play
		if err != nil {
			g.logger.Error().Err(err).Str("file", name).Msg("prefabs: reload failed")
			continue
		}
		g.logger.Info().Str("file", name).Msg("prefabs: reloaded")
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			g.logger.Warn().Err(err).Msg("prefabs: watcher error")
		}
	default:
	}
}

func scriptBase(name string) string {
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
}
