package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rillus/Calendar-sub001/internal/config"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchConfig calls draw with the reloaded config on every write to the
// config file until ctx is done or the process is interrupted.
func watchConfig(ctx context.Context, path string, draw func(*config.Config) error) error {
	v := config.New(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config for watching: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		cfg, err := config.Decode(v)
		if err != nil {
			logger.Warn("Config changed but is invalid, keeping previous output",
				zap.String("file", e.Name),
				zap.Error(err))
			return
		}
		cfg.ExpandEnvVars()

		if err := draw(cfg); err != nil {
			logger.Error("Failed to redraw after config change",
				zap.String("file", e.Name),
				zap.Error(err))
			return
		}
		logger.Info("Redrawn after config change",
			zap.String("file", e.Name),
			zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	logger.Info("Watching config for changes",
		zap.String("file", v.ConfigFileUsed()))

	<-ctx.Done()
	logger.Info("Stopped watching config")
	return nil
}
