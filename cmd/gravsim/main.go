package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravsim/audio"
	"github.com/lixenwraith/gravsim/config"
	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/event"
	"github.com/lixenwraith/gravsim/input"
	"github.com/lixenwraith/gravsim/network"
	"github.com/lixenwraith/gravsim/orbit"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/render"
	"github.com/lixenwraith/gravsim/render/renderers"
	"github.com/lixenwraith/gravsim/scene"
	"github.com/lixenwraith/gravsim/service"
	"github.com/lixenwraith/gravsim/status"
	"github.com/lixenwraith/gravsim/system"
)

var (
	configFlag  = flag.String("config", "", "Path to a gcfg configuration file")
	exampleFlag = flag.Bool("example-config", false, "Print an annotated configuration and exit")
	metricsFlag = flag.String("metrics", "", "Metrics listen address, overrides [services] Metrics")
	streamFlag  = flag.String("stream", "", "Snapshot stream listen address, overrides [services] Stream")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	logFlag     = flag.String("log", "", "Log file path, overrides [services] LogFile")
	debugFlag   = flag.Bool("debug", false, "Log to "+defaultLogPath())
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if *exampleFlag {
		if err := config.WriteExample(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	file, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	applyFlags(file)

	if logFile := setupLogging(logPath(file)); logFile != nil {
		defer logFile.Close()
	}

	if err := run(file); err != nil {
		fmt.Fprintf(os.Stderr, "gravsim: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags layers explicit command line values over the file
func applyFlags(f *config.File) {
	if *metricsFlag != "" {
		f.Services.Metrics = *metricsFlag
	}
	if *streamFlag != "" {
		f.Services.Stream = *streamFlag
	}
	if *muteFlag {
		f.Services.Muted = true
	}
	if *logFlag != "" {
		f.Services.LogFile = *logFlag
	}
}

func logPath(f *config.File) string {
	if f.Services.LogFile == "" && *debugFlag {
		return defaultLogPath()
	}
	return f.Services.LogFile
}

func run(file *config.File) error {
	cfg, err := file.Engine()
	if err != nil {
		return err
	}
	keys, err := input.BuildKeyTable(file.Keys.Bind)
	if err != nil {
		return err
	}

	world, err := engine.NewWorld(cfg)
	if err != nil {
		return err
	}
	system.RegisterAll(world)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	width, height := screen.Size()
	vp := render.Viewport(width, height)
	world.Push(event.CmdResize, &event.ResizePayload{Width: vp.X, Height: vp.Y})
	world.Push(event.CmdResetView, nil)

	cmds, err := scene.Build(file.SceneOptions(), cfg.G)
	if err != nil {
		return err
	}
	scene.Push(world.Commands(), cmds)

	// Services
	streamCfg := network.DefaultConfig()
	streamCfg.Address = file.Services.Stream
	streamCfg.AllowCommands = file.Services.StreamCommands

	hub := service.NewHub()
	for _, reg := range []struct {
		svc  service.Service
		args []any
	}{
		{audio.NewService(), []any{file.Services.Muted}},
		{status.NewService(), []any{file.Services.Metrics, world.Commands().Dropped}},
		{network.NewService(), []any{streamCfg, world.Commands()}},
	} {
		if err := hub.Register(reg.svc, reg.args...); err != nil {
			return err
		}
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer func() {
		if err := hub.StopAll(); err != nil {
			log.Printf("gravsim: stop services: %v", err)
		}
	}()

	sound := service.MustGet[*audio.AudioService](hub, "audio")
	metrics := service.MustGet[*status.MetricsService](hub, "status")
	stream := service.MustGet[*network.Service](hub, "network")

	clock := engine.NewClock(world, parameter.TickInterval)
	clock.Observe(metrics.Metrics())
	clock.Observe(sound)
	clock.Observe(stream)
	clock.Start()
	defer clock.Stop()

	// Presentation
	orchestrator := render.NewRenderOrchestrator(screen)
	layers := renderers.RegisterAll(orchestrator, keys.HelpLines())

	tool := orbit.NewTool(world.Commands())
	handler := input.NewHandler(keys, world.Commands(), tool, input.Actions{
		ToggleTrails:     layers.Trails.Toggle,
		ToggleOrbitPaths: layers.Orbits.Toggle,
		ToggleHelp:       layers.Help.Toggle,
		ToggleMute: func() bool {
			if p := sound.Player(); p != nil {
				return p.ToggleMute()
			}
			return true
		},
	})

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	log.Printf("gravsim: started %dx%d, %d scene commands", width, height, len(cmds))

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			res := handler.HandleEvent(ev, clock.Latest())
			if res.Quit {
				log.Printf("gravsim: quit after %d ticks", clock.Ticks())
				return nil
			}
			if res.Resized {
				orchestrator.Resize(res.Width, res.Height)
			}

		case <-frameTicker.C:
			active, preview, previewErr := handler.Preview()
			muted := true
			if p := sound.Player(); p != nil {
				muted = p.IsMuted()
			}
			orchestrator.RenderFrame(render.RenderContext{
				Snapshot:   clock.Latest(),
				ToolActive: active,
				Preview:    preview,
				PreviewErr: previewErr,
				HUD: render.HUDState{
					TickMillis: metrics.Metrics().TickMillis(),
					Muted:      muted,
					Peers:      stream.PeerCount(),
					Message:    handler.Message(),
				},
			})
		}
	}
}
