// Package main is the entry point for the 3D shape viewer.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/app"
	"github.com/Faultbox/shapelab/internal/config"
	"github.com/Faultbox/shapelab/internal/logger"
)

func init() {
	// OpenGL and the UI backend must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	// Parse CLI flags first
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

	logger.Info("=== ShapeLab ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	a.Run()

	logger.Info("viewer closed normally")
}
