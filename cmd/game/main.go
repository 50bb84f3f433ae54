package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ringball/internal/application/game"
	"github.com/younwookim/ringball/internal/application/scene/level"
	"github.com/younwookim/ringball/internal/application/system"
	"github.com/younwookim/ringball/internal/infrastructure/config"
	"github.com/younwookim/ringball/internal/infrastructure/ebitenrender"
	"github.com/younwookim/ringball/internal/infrastructure/terminal"
	"github.com/younwookim/ringball/internal/infrastructure/tmx"
)

func main() {
	levelFlag := flag.Int("level", 0, "Level number to start on (default from physics.yaml)")
	tmxFlag := flag.String("tmx", "", "Load levels from Tiled maps, e.g. -tmx maps/Level%d.tmx")
	configFlag := flag.String("config", "", "Config directory (default embedded)")
	termFlag := flag.Bool("term", false, "Run in the terminal instead of a window")
	debugFlag := flag.Bool("debug", false, "Start with the debug overlay on")
	logFlag := flag.String("log", "", "Log file for terminal mode (default: logs discarded)")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to open config: %v", err)
	}
	cfg, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	number := cfg.Level.StartLevel
	if *levelFlag > 0 {
		number = *levelFlag
	}

	var source level.GridSource = system.TextGridSource{Reader: loader}
	if *tmxFlag != "" {
		source = tmx.NewGridSource(os.DirFS(filepath.Dir(*tmxFlag)), filepath.Base(*tmxFlag))
		log.Printf("Loading levels from %s", *tmxFlag)
	}

	lvl := level.New(cfg, source, number)
	lvl.SetDebug(*debugFlag)

	if *termFlag {
		runTerminal(cfg, lvl, *logFlag)
		return
	}
	runWindow(cfg, lvl)
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func runWindow(cfg *config.PhysicsConfig, lvl *level.Level) {
	batch, err := ebitenrender.NewBatch(cfg.CellSize(), cfg.Player.Sprite, cfg.Player.Radius)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	g, err := game.New(lvl, system.NewInputSystem(cfg), batch,
		cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.TPS)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func runTerminal(cfg *config.PhysicsConfig, lvl *level.Level, logPath string) {
	logFile, err := setupTerminalLogging(logPath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer func() { _ = logFile.Close() }()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	host := terminal.NewHost(screen, lvl, cfg.CellSize(), cfg.Player.Sprite, cfg.Display.TPS)
	err = host.Run(ctx)
	stop()
	screen.Fini()
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Printf("Terminal host stopped: %v", err)
		os.Exit(1)
	}
}
