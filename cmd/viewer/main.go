// Command viewer flies a camera around a small scene of primitive meshes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-view/config"
	"github.com/Carmen-Shannon/oxy-view/engine"
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer"
	"github.com/Carmen-Shannon/oxy-view/engine/scene"
	"github.com/Carmen-Shannon/oxy-view/engine/view"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
)

func main() {
	configPath := flag.String("config", "viewer.toml", "path to the TOML configuration file")
	watch := flag.Bool("watch", false, "reload the view settings when the configuration file changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ── Window ──────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithCursorCaptured(cfg.Window.CaptureCursor),
	)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer win.Close()

	// ── Renderer ────────────────────────────────────────────────────
	presentMode := renderer.PresentModeVSync
	if !cfg.Render.VSync {
		presentMode = renderer.PresentModeUncapped
	}
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.Render.MSAA)),
		renderer.WithClearColor(cfg.Render.ClearColor),
	)
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}
	defer r.Release()

	// ── Camera + View ───────────────────────────────────────────────
	cam := camera.NewCamera(camera.WithMovementSpeed(cfg.View.MovementSpeed))
	vc := view.NewViewController(
		view.WithCamera(cam),
		view.WithInput(win),
		view.WithSink(r),
		view.WithViewport(win.Width(), win.Height()),
		view.WithSpeedScale(cfg.View.SpeedScale),
		view.WithLookSpeed(cfg.View.LookSpeed),
		view.WithSensitivity(cfg.View.Sensitivity),
		view.WithMaxDelta(cfg.View.MaxDelta),
	)

	if *watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := config.Watch(ctx, *configPath, func(c config.Config) {
			vc.Apply(c.Settings())
		}); err != nil {
			log.Printf("[Config] live reload disabled: %v", err)
		}
	}

	// ── Scene + Engine ──────────────────────────────────────────────
	sc := scene.NewScene("primitives",
		scene.WithActive(true),
		scene.WithCommands(scene.DefaultCommands()...),
	)
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithView(vc),
		engine.WithScene(0, sc),
		engine.WithProfiling(cfg.Render.Profiling),
	)

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  Primitive Viewer                                    ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  Move: W/A/S/D   Up/Down: E/Q   Look: mouse, arrows  ║")
	fmt.Println("║  Speed: scroll   Projection: T = 2D, G = 3D          ║")
	fmt.Println("║  Views: 1/2/3    Quit: Esc                           ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	if err := eng.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
