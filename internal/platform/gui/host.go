// Package gui hosts a scene-based game in an Ebiten window.
// The world is drawn 1:1 in pixels and mouse clicks are world coordinates.
package gui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/turtle-adventure/internal/core"
	"github.com/vovakirdan/turtle-adventure/internal/registry"
	"github.com/vovakirdan/turtle-adventure/internal/storage"
)

// ErrNoScene is returned when a game has no retained scene to draw.
var ErrNoScene = errors.New("gui: game does not provide a scene")

// Host implements ebiten.Game around a registry game.
type Host struct {
	game    registry.Game
	scene   registry.SceneProvider
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	frame   core.InputFrame
	state   core.GameState
	saved   bool
	saveErr error
}

// NewHost wraps game for pixel rendering. The runtime config is forced
// into pixel mode so the world matches the window.
func NewHost(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (*Host, error) {
	sp, ok := game.(registry.SceneProvider)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoScene, game.ID())
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Pixels = true

	h := &Host{
		game:   game,
		scene:  sp,
		store:  store,
		logger: logger,
		config: cfg,
		frame:  core.NewInputFrame(),
	}
	h.reset()
	return h, nil
}

func (h *Host) reset() {
	h.game.Reset(h.config)
	h.state = h.game.State()
	h.saved = false
	h.frame.Clear()
}

// Update reads input and advances the game by one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && (h.state.GameOver || h.state.Paused) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.frame.Click(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		h.frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.frame.Set(core.ActionRestart)
	}

	h.step()
	return nil
}

// step applies the buffered input frame and records a finished game once.
func (h *Host) step() {
	if h.frame.Has(core.ActionRestart) && h.state.GameOver {
		h.config.Seed = time.Now().UnixNano()
		h.reset()
		return
	}

	h.state = h.game.Step(h.frame).State
	h.frame.Clear()

	if h.state.GameOver && !h.saved {
		h.saved = true
		h.saveErr = h.store.Record(h.game.ID(), h.state)
		if h.logger != nil {
			if h.saveErr != nil {
				h.logger.Warn("could not record result", "error", h.saveErr)
			}
			h.logger.Info("game finished", "won", h.state.Won, "ticks", h.state.Tick, "level", h.state.Level)
		}
	}
}

// Draw renders the scene and HUD.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if eg, ok := h.game.(interface{ Err() error }); ok && eg.Err() != nil {
		drawError(screen, eg.Err())
		return
	}
	drawScene(screen, h.scene.Scene())
	drawHUD(screen, h.state, h.config.TickRate)
}

// Layout keeps the logical canvas at the world size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.config.ScreenW, h.config.ScreenH
}

// State returns the game state as of the last tick.
func (h *Host) State() core.GameState {
	return h.state
}

// SaveErr returns the last error from recording an outcome.
func (h *Host) SaveErr() error {
	return h.saveErr
}

// Run opens a window sized to cfg and blocks until it is closed.
// It returns the final game state.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	h, err := NewHost(game, store, cfg, logger)
	if err != nil {
		return core.GameState{}, err
	}

	ebiten.SetWindowSize(h.config.ScreenW, h.config.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(h.config.TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return h.state, err
	}
	return h.state, nil
}
