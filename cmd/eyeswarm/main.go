// Command eyeswarm opens a window full of eyes that follow the pointer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-eyes/assets"
	"github.com/Carmen-Shannon/oxy-eyes/engine"
	"github.com/Carmen-Shannon/oxy-eyes/engine/camera"
	"github.com/Carmen-Shannon/oxy-eyes/engine/config"
	"github.com/Carmen-Shannon/oxy-eyes/engine/entrance"
	"github.com/Carmen-Shannon/oxy-eyes/engine/gaze"
	"github.com/Carmen-Shannon/oxy-eyes/engine/loader"
	"github.com/Carmen-Shannon/oxy-eyes/engine/model"
	"github.com/Carmen-Shannon/oxy-eyes/engine/pointer"
	"github.com/Carmen-Shannon/oxy-eyes/engine/projector"
	"github.com/Carmen-Shannon/oxy-eyes/engine/renderer"
	"github.com/Carmen-Shannon/oxy-eyes/engine/scene"
	"github.com/Carmen-Shannon/oxy-eyes/engine/swarm"
	"github.com/Carmen-Shannon/oxy-eyes/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// headlessStep is the fixed delta used when nothing paces the loop.
const headlessStep = 1.0 / 60

func init() {
	// GLFW and the wgpu surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file; tracking tunables reload when it changes")
	backend := flag.String("backend", "", "window backend override: glfw, terminal or headless")
	frames := flag.Uint64("frames", 0, "stop after this many frames (0 runs until the window closes)")
	profile := flag.Bool("profile", false, "log frame stats once per second (toggle with P)")
	logPath := flag.String("log", "", "log file; the terminal backend discards logs without one")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *backend)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	if err := setupLogging(*logPath, cfg.Backend()); err != nil {
		log.Fatalf("[Main] %v", err)
	}

	if err := run(cfg, *configPath, *frames, *profile); err != nil {
		log.Fatalf("[Main] %v", err)
	}
}

func loadConfig(path, backend string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if backend != "" {
		cfg.Window.Backend = backend
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// setupLogging keeps log output from scribbling over the terminal renderer.
func setupLogging(path string, backend window.BackendType) error {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		return nil
	}
	if backend == window.BackendTerminal {
		log.SetOutput(io.Discard)
	}
	return nil
}

func run(cfg config.Config, configPath string, frames uint64, profile bool) error {
	template, err := loadTemplate(cfg.Swarm)
	if err != nil {
		return err
	}

	sw, err := swarm.Build(template, cfg.Swarm.Count, cfg.Swarm.Gap)
	if err != nil {
		return fmt.Errorf("failed to build swarm: %w", err)
	}

	win, err := window.NewWindow(
		window.WithBackend(cfg.Backend()),
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)
	if err != nil {
		return err
	}
	defer win.Close()

	cam := camera.NewCamera(
		camera.WithController(camera.NewCameraController(camera.WithRadius(cfg.Camera.Distance))),
		camera.WithFovDegrees(cfg.Camera.FovDegrees),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
	)

	rig := scene.NewLighting()
	rig.Ambient.SetColor(cfg.Background())
	proj := projector.NewProjector(cam,
		projector.WithPlane(mgl32.Vec3{0, 0, cfg.Plane.Depth}, mgl32.Vec3{0, 0, 1}),
		projector.WithLight(rig.Tracking),
		projector.WithBounded(cfg.Plane.Size),
	)
	ctrl, err := gaze.NewController(cam, sw,
		gaze.WithPointer(pointer.NewState(
			pointer.WithSmoothing(cfg.Tracking.PointerSmoothing),
			pointer.WithReferenceRate(cfg.Tracking.ReferenceRate),
		)),
		gaze.WithProjector(proj),
		gaze.WithChoreographer(entrance.NewChoreographer(
			entrance.WithDelay(cfg.Entrance.Delay),
			entrance.WithDuration(cfg.Entrance.Duration),
			entrance.WithStagger(cfg.Entrance.Stagger),
			entrance.WithOffsetFactor(cfg.Tracking.OffsetFactor),
			entrance.WithTarget(proj.PlanePoint()),
		)),
		gaze.WithOffsetDamping(cfg.Tracking.OffsetDamping),
		gaze.WithOffsetFactor(cfg.Tracking.OffsetFactor),
		gaze.WithReferenceRate(cfg.Tracking.ReferenceRate),
		gaze.WithSkipEntrance(cfg.Entrance.Skip),
	)
	if err != nil {
		return err
	}

	scn := scene.NewScene(
		scene.WithCamera(cam),
		scene.WithEyes(sw.Eyes()),
		scene.WithLights(rig.All()...),
		scene.WithBackground(cfg.Background()),
	)

	rend, err := renderer.NewRenderer(rendererBackend(cfg.Backend()), win, rendererOptions(cfg.Render)...)
	if err != nil {
		return err
	}
	defer rend.Close()

	opts := []engine.EngineBuilderOption{
		engine.WithWindow(win),
		engine.WithController(ctrl),
		engine.WithScene(scn),
		engine.WithRenderer(rend),
		engine.WithProfiling(profile),
		engine.WithFrameLimit(frames),
		engine.WithRenderFrameLimit(cfg.Render.FrameLimit),
	}
	if cfg.Backend() == window.BackendHeadless {
		opts = append(opts, engine.WithFixedStep(headlessStep))
	}
	eng := engine.NewEngine(opts...)

	if configPath != "" {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			log.Printf("[Config] hot reload disabled: %v", err)
		} else {
			defer w.Close()
			go applyReloads(w, ctrl)
		}
	}

	log.Printf("[Main] %d eyes on a %dx%d grid, %s backend", sw.Count(), sw.Side(), sw.Side(), cfg.Backend())
	return eng.Run()
}

// loadTemplate loads the eye model on the loader's worker pool and waits for it.
func loadTemplate(sc config.SwarmConfig) (model.Model, error) {
	opts := []loader.LoaderBuilderOption{
		loader.WithModelOptions(model.WithScale(sc.Scale), model.WithCastsShadows(true)),
	}
	name := sc.Model
	if name == "" {
		name = assets.EyeModel
		opts = append(opts, loader.WithFS(assets.FS))
	}

	l := loader.NewLoader(loader.BackendTypeGLTF, opts...)
	defer l.Close()

	res := <-l.LoadAsync(name)
	if res.Err != nil {
		return nil, fmt.Errorf("failed to load eye model: %w", res.Err)
	}
	return res.Model, nil
}

func applyReloads(w *config.Watcher, ctrl gaze.Controller) {
	for cfg := range w.Configs {
		cfg.Tracking.Apply(ctrl)
		log.Printf("[Config] tracking tunables now smoothing=%.3f damping=%.3f",
			cfg.Tracking.PointerSmoothing, cfg.Tracking.OffsetDamping)
	}
}

func rendererBackend(b window.BackendType) renderer.RendererBackendType {
	switch b {
	case window.BackendTerminal:
		return renderer.BackendTypeTerminal
	case window.BackendHeadless:
		return renderer.BackendTypeHeadless
	default:
		return renderer.BackendTypeWGPU
	}
}

func rendererOptions(rc config.RenderConfig) []renderer.RendererBuilderOption {
	mode := renderer.PresentModeUncapped
	if rc.VSync {
		mode = renderer.PresentModeVSync
	}
	msaa := renderer.MSAAOff
	if rc.MSAA {
		msaa = renderer.MSAA4x
	}
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(mode),
		renderer.WithMSAA(msaa),
		renderer.WithForceSoftwareRenderer(rc.Software),
	}
}
