package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "start with the debug overlay enabled")
	configPath := flag.String("config", "config.toml", "path to the game config file")
	mapPath := flag.String("map", "", "Tiled JSON map (overrides the config)")
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := readConfig(*configPath)
	if err != nil {
		logger.Fatal("read config", zap.String("path", *configPath), zap.Error(err))
	}
	if *mapPath != "" {
		cfg.Map = *mapPath
	}

	game, err := NewGame(cfg, logger, *debug)
	if err != nil {
		logger.Fatal("game setup", zap.Error(err))
	}
	defer func() {
		if game.watcher != nil {
			_ = game.watcher.Close()
		}
	}()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	logger.Info("starting",
		zap.String("map", cfg.Map),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("tps", cfg.TPS))

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
