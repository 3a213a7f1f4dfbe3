// Package main is the entry point for the Arcadia engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/castlewood/arcadia/internal/backend"
	"github.com/castlewood/arcadia/internal/config"
	"github.com/castlewood/arcadia/internal/config/watcher"
	"github.com/castlewood/arcadia/internal/engine"
	"github.com/castlewood/arcadia/internal/event"
	"github.com/castlewood/arcadia/internal/game"
	"github.com/castlewood/arcadia/internal/input"
	"github.com/castlewood/arcadia/internal/log"
	"github.com/castlewood/arcadia/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Playfield dimensions in cells. The simulation clamps the player to this
// region regardless of the actual terminal size.
const (
	fieldWidth  = 80
	fieldHeight = 24
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	applyFlagOverrides(&cfg, opts)

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: "arcadia",
	})

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	// Event dispatch and the frame loop. The translator feeds the system,
	// and close requests stop the loop directly.
	events := event.NewSystem(logger.WithComponent("event"))

	logic := game.NewLogicSystem(logger.WithComponent("game"), events, fieldWidth, fieldHeight)
	if err := loadEntities(cfg.ScenePath, logic); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	loop := engine.New(logger.WithComponent("engine"), events,
		engine.WithTargetFPS(cfg.TargetFPS),
		engine.WithMetrics(engine.NewMetrics()),
		engine.WithSystems(
			logic,
			game.NewNullPhysicsSystem(),
			game.NewRenderSystem(logger.WithComponent("render"), term, logic),
		),
	)

	translator := input.New(logger.WithComponent("input"), term, events,
		input.WithBindings(input.ParseBindings(cfg.Bindings)),
		input.WithHoldTimeout(time.Duration(cfg.HoldTimeoutMillis)*time.Millisecond),
		input.WithCloseHandler(loop.Stop),
	)
	ingestors := event.Ingestors{translator}

	// Live config reload: file changes arrive as config.changed events on
	// the dispatch goroutine.
	if opts.configPath != "" {
		w, err := watcher.New(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch config: %v\n", err)
			return 1
		}
		defer w.Close()
		ingestors = append(ingestors, config.NewNotifier(logger.WithComponent("config"), w.Events(), events))
	}
	events.SetIngestor(ingestors)

	if cfg.ScriptPath != "" {
		eng := script.New(logger.WithComponent("script"), events)
		defer eng.Close()
		if err := eng.Load(cfg.ScriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Handle signals for graceful shutdown.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		loop.Stop()
	}()

	if err := loop.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadEntities populates the logic system from the scene file, or from the
// built-in scene when no file is configured.
func loadEntities(path string, logic *game.LogicSystem) error {
	entities := game.DefaultScene()
	if path != "" {
		loaded, err := game.LoadScene(path)
		if err != nil {
			return err
		}
		entities = loaded
	}
	for _, e := range entities {
		logic.AddEntity(e)
	}
	return nil
}

// options holds the parsed command line.
type options struct {
	configPath string
	scenePath  string
	scriptPath string
	targetFPS  int
	logLevel   string
}

// applyFlagOverrides lets explicit flags win over file and environment
// configuration.
func applyFlagOverrides(cfg *config.Config, opts options) {
	if opts.scenePath != "" {
		cfg.ScenePath = opts.scenePath
	}
	if opts.scriptPath != "" {
		cfg.ScriptPath = opts.scriptPath
	}
	if opts.targetFPS > 0 {
		cfg.TargetFPS = opts.targetFPS
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.scenePath, "scene", "", "Path to JSON scene file")
	flag.StringVar(&opts.scriptPath, "script", "", "Path to Lua game script")
	flag.IntVar(&opts.targetFPS, "fps", 0, "Target frame rate (overrides config)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Arcadia - terminal game engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: arcadia [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  arcadia                        Run the built-in scene\n")
		fmt.Fprintf(os.Stderr, "  arcadia -c arcadia.toml        Run with a config file\n")
		fmt.Fprintf(os.Stderr, "  arcadia -scene level1.json     Run a custom scene\n")
		fmt.Fprintf(os.Stderr, "  arcadia -script game.lua       Attach a Lua script\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Arcadia %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	return opts
}
