// Package main is the entry point for the animated triangle demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/config"
	"github.com/Faultbox/shapelab/internal/logger"
	"github.com/Faultbox/shapelab/internal/triangle"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	d, err := triangle.New(triangle.Config{
		Title:      "Triangle",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		TargetFPS:  cfg.Graphics.TargetFPS,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		logger.Error("failed to create triangle demo", zap.Error(err))
		os.Exit(1)
	}
	defer d.Close()

	if err := d.Run(); err != nil {
		logger.Error("triangle demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("triangle demo closed normally")
}
