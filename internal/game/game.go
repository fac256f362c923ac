// Package game implements the main frame loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/physics-scene/internal/config"
	"github.com/Faultbox/physics-scene/internal/engine/debug"
	"github.com/Faultbox/physics-scene/internal/engine/input"
	"github.com/Faultbox/physics-scene/internal/engine/renderer"
	"github.com/Faultbox/physics-scene/internal/engine/resource"
	"github.com/Faultbox/physics-scene/internal/engine/scene"
	"github.com/Faultbox/physics-scene/internal/engine/window"
	"github.com/Faultbox/physics-scene/internal/game/level"
	"github.com/Faultbox/physics-scene/internal/game/script"
	"github.com/Faultbox/physics-scene/internal/logger"
)

// Title is the window title.
const Title = "Physics Scene"

// HeadlessDT is the fixed frame time used without a window.
const HeadlessDT = 1.0 / 60.0

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	sdlInput *input.SDL

	resources *resource.Manager
	graph     *scene.Graph
	lines     *debug.LineBuffer
	scripts   *script.Manager
	level     *level.Script

	clearScene *resource.Scene
}

// New creates a game for cfg. Unless cfg.Game.Headless is set it opens a
// window and GL context.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
		graph:  scene.NewGraph(),
		lines:  debug.NewLineBuffer(),
	}
	g.log.Info("initializing game",
		zap.Bool("headless", cfg.Game.Headless),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("project", cfg.Data.ProjectPath),
	)

	var err error
	g.resources, err = resource.NewManager(cfg.Data.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}

	var in level.InputBackend = &input.Static{}
	if !cfg.Game.Headless {
		g.window, err = window.New(window.Config{
			Title:      Title,
			Width:      cfg.Graphics.Width,
			Height:     cfg.Graphics.Height,
			Fullscreen: cfg.Graphics.Fullscreen,
			VSync:      cfg.Graphics.VSync,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create window: %w", err)
		}

		// Renderer needs the GL context from the window.
		width, height := g.window.Size()
		g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
		if err != nil {
			g.window.Close()
			return nil, fmt.Errorf("failed to create renderer: %w", err)
		}

		g.sdlInput = input.NewSDL()
		in = g.sdlInput
	}

	g.scripts = script.NewManager(&level.Host{
		Resources: g.resources,
		Scene:     g.graph,
		Input:     in,
		Debug:     g.lines,
		Connect:   level.ConnectPhysics,
	})
	g.level = level.NewScript(cfg)
	g.scripts.Change(g.level)

	g.log.Info("game initialized")
	return g, nil
}

// Run drives frames until quit, Escape, or an update error. Headless games
// run cfg.Game.Frames frames at HeadlessDT.
func (g *Game) Run() error {
	g.running = true
	defer func() { g.running = false }()

	if g.config.Game.Headless {
		return g.runHeadless()
	}
	return g.runWindowed()
}

func (g *Game) runHeadless() error {
	g.log.Info("starting headless loop", zap.Int("frames", g.config.Game.Frames))

	for i := 0; i < g.config.Game.Frames; i++ {
		if err := g.update(HeadlessDT); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		g.lines.Reset()
	}

	g.logPoses()
	return nil
}

func (g *Game) runWindowed() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Input
		if g.sdlInput.Poll() || g.sdlInput.Snapshot().Pressed(input.KeyEscape) {
			break
		}
		if ok, w, h := g.sdlInput.Resized(); ok {
			g.renderer.Resize(w, h)
		}

		// 2. Scripts
		if err := g.update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render, then drop this frame's debug lines
		g.render()
		g.lines.Reset()

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (g *Game) update(dt float64) error {
	return g.scripts.Update(dt)
}

func (g *Game) render() {
	if sc := g.resources.CurrentScene(); sc != nil && sc != g.clearScene {
		g.renderer.SetClearColor(sc.ClearColor)
		g.clearScene = sc
	}
	g.renderer.DrawScene(g.graph.MainCamera(), g.graph.Actors(), g.lines.Lines())
}

func (g *Game) logPoses() {
	c := g.level.Controller()
	if c == nil {
		return
	}
	for _, bodies := range [][]level.Body{c.Spheres(), c.Suzans()} {
		for _, b := range bodies {
			p, r := b.Actor.Transform.Pos(), b.Actor.Transform.Rotation()
			g.log.Info("final pose",
				zap.String("actor", b.Actor.Name),
				zap.Float32s("position", []float32{p.X, p.Y, p.Z}),
				zap.Float32s("rotation", []float32{r.X, r.Y, r.Z}),
			)
		}
	}
}

// Level returns the running level script.
func (g *Game) Level() *level.Script {
	return g.level
}

// Graph returns the scene graph.
func (g *Game) Graph() *scene.Graph {
	return g.graph
}

// Close tears the level down and releases the window.
func (g *Game) Close() {
	g.log.Info("closing game")

	if err := g.scripts.Exit(); err != nil {
		g.log.Warn("script exit", zap.Error(err))
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
