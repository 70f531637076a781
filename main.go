package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/thirdperson/logger"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error); defaults to debug with -debug")
	logFormat := flag.String("log-format", "", "log encoding (json or console)")
	watch := flag.Bool("watch", false, "reload prefabs and scripts from ./prefabs when they change")
	script := flag.String("script", "", "drive the player from a tengo script in prefabs/scripts instead of the keyboard")
	flag.Parse()

	cfg := logger.DefaultConfig()
	if *debug {
		cfg = logger.DevelopmentConfig()
	}
	if *logLevel != "" {
		cfg.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Format = *logFormat
	}
	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(GameOptions{
		Debug:  *debug,
		Watch:  *watch,
		Script: *script,
		Log:    zlog,
	})
	if err != nil {
		zlog.Fatal("failed to start", zap.Error(err))
	}
	defer game.Close()

	width, height := game.Size()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("thirdperson")
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		zlog.Fatal("game exited", zap.Error(err))
	}
}
