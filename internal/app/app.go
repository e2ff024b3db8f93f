// Package app wires the window, renderer, camera and viewer into a
// running application and drives the SDL event loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/drewbus/cabview/internal/cabinet"
	"github.com/drewbus/cabview/internal/config"
	"github.com/drewbus/cabview/internal/engine/camera"
	"github.com/drewbus/cabview/internal/engine/mesh"
	"github.com/drewbus/cabview/internal/engine/render"
	"github.com/drewbus/cabview/internal/engine/window"
	"github.com/drewbus/cabview/internal/logger"
	"github.com/drewbus/cabview/internal/viewer"
	"github.com/drewbus/cabview/pkg/math"
)

// meshFactory adapts the concrete box factory to the viewer's factory
// interface.
type meshFactory struct {
	boxes *mesh.Factory
}

func (f meshFactory) NewBox(label string, size math.Vec3, color string) (viewer.Mesh, error) {
	return f.boxes.NewBox(label, size, color)
}

// App is the running visualizer instance.
type App struct {
	config  *config.Config
	running bool
	closed  bool

	window   *window.Window
	renderer *render.Renderer
	cam      *camera.Orbit
	boxes    *mesh.Factory
	viewer   *viewer.Viewer

	catalog *cabinet.Catalog
	current int // catalog index currently shown

	exploded  bool
	wireframe bool

	rightMouseDown bool
}

// New creates the application: window and GL context first, then the
// renderer and mesh factory that need the context, then the viewer.
// The initial cabinet from the config is shown immediately.
func New(cfg *config.Config) (*App, error) {
	a := &App{config: cfg}

	catalog, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	a.catalog = catalog

	a.window, err = window.New(window.Config{
		Title:  "CabView",
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := a.window.DrawableSize()
	a.renderer, err = render.New(dw, dh)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.cam = camera.NewOrbit()
	a.boxes = mesh.NewFactory()
	a.viewer = viewer.New(meshFactory{boxes: a.boxes}, a.cam, a.onSelect)
	a.viewer.Resize(a.window.Size())

	a.current = clampIndex(cfg.Viewer.Cabinet, catalog.Len())
	a.exploded = cfg.Viewer.Exploded
	a.wireframe = cfg.Viewer.Wireframe

	if err := a.showCabinet(a.current); err != nil {
		a.Close()
		return nil, err
	}
	if a.exploded {
		if err := a.viewer.Apply(viewer.ExplodedToggled{Exploded: true}); err != nil {
			a.Close()
			return nil, err
		}
	}
	if a.wireframe {
		if err := a.viewer.Apply(viewer.WireframeToggled{Wireframe: true}); err != nil {
			a.Close()
			return nil, err
		}
	}

	logger.Info("application initialized",
		zap.Int("cabinets", catalog.Len()),
		zap.String("showing", catalog.Name(a.current)))
	return a, nil
}

func loadCatalog(path string) (*cabinet.Catalog, error) {
	if path == "" {
		return cabinet.DefaultCatalog(), nil
	}
	c, err := cabinet.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("catalog loaded", zap.String("path", path), zap.Int("cabinets", c.Len()))
	return c, nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// onSelect receives picking results and feeds them back into the
// viewer as selection state.
func (a *App) onSelect(label string) {
	if err := a.viewer.Apply(viewer.SelectionChanged{Label: label}); err != nil {
		logger.Error("selection update failed", zap.Error(err))
		return
	}
	if label == "" {
		logger.Debug("selection cleared")
	} else {
		logger.Info("panel selected", zap.String("label", label))
	}
}

// Run drives the main loop until quit: poll input, ease the camera,
// draw, present.
func (a *App) Run() error {
	a.running = true
	lastTime := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		a.pollEvents()

		a.cam.Update(dt)
		a.renderer.Draw(a.cam, a.boxes.Live())
		a.window.SwapBuffers()
	}

	return nil
}

func (a *App) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			a.running = false

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				dw, dh := a.window.DrawableSize()
				a.renderer.Resize(dw, dh)
				// Click coordinates arrive in window points, not pixels.
				a.viewer.Resize(a.window.Size())
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				a.handleKey(e.Keysym.Sym)
			}

		case *sdl.MouseButtonEvent:
			pressed := e.State == sdl.PRESSED
			switch e.Button {
			case sdl.BUTTON_LEFT:
				if pressed {
					a.viewer.HandleClick(float32(e.X), float32(e.Y))
				}
			case sdl.BUTTON_RIGHT:
				a.rightMouseDown = pressed
			}

		case *sdl.MouseMotionEvent:
			if a.rightMouseDown {
				a.cam.HandleDrag(float32(e.XRel), float32(e.YRel))
			}

		case *sdl.MouseWheelEvent:
			a.cam.HandleZoom(float32(e.Y))
		}
	}
}

func (a *App) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE, sdl.K_q:
		a.running = false

	case sdl.K_e:
		a.exploded = !a.exploded
		if err := a.viewer.Apply(viewer.ExplodedToggled{Exploded: a.exploded}); err != nil {
			logger.Error("explode toggle failed", zap.Error(err))
		}
		logger.Info("exploded view toggled", zap.Bool("exploded", a.exploded))

	case sdl.K_w:
		a.wireframe = !a.wireframe
		if err := a.viewer.Apply(viewer.WireframeToggled{Wireframe: a.wireframe}); err != nil {
			logger.Error("wireframe toggle failed", zap.Error(err))
		}
		logger.Info("wireframe toggled", zap.Bool("wireframe", a.wireframe))

	case sdl.K_LEFT, sdl.K_LEFTBRACKET:
		a.switchCabinet(a.current - 1)

	case sdl.K_RIGHT, sdl.K_RIGHTBRACKET:
		a.switchCabinet(a.current + 1)
	}
}

// switchCabinet shows another catalog entry, wrapping at both ends.
func (a *App) switchCabinet(index int) {
	n := a.catalog.Len()
	if n == 0 {
		return
	}
	index = ((index % n) + n) % n
	if index == a.current {
		return
	}
	if err := a.showCabinet(index); err != nil {
		logger.Error("cabinet switch failed", zap.Error(err))
		return
	}
	a.current = index
}

func (a *App) showCabinet(index int) error {
	panels, err := a.catalog.Generate(index)
	if err != nil {
		return fmt.Errorf("failed to generate cabinet: %w", err)
	}
	if err := a.viewer.Apply(viewer.PanelsChanged{Panels: panels}); err != nil {
		return fmt.Errorf("failed to rebuild scene: %w", err)
	}

	name := a.catalog.Name(index)
	a.window.SetTitle("CabView - " + name)
	logger.Info("cabinet shown",
		zap.Int("index", index),
		zap.String("name", name),
		zap.Int("panels", len(panels)))
	return nil
}

// Close tears down in reverse creation order. Safe to call more than
// once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	logger.Info("closing application")

	if a.viewer != nil {
		a.viewer.Dispose()
	}
	if a.boxes != nil {
		a.boxes.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
