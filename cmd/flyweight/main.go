// Package main runs the flyweight encounter demo: a scripted series of attacks
// between one Hero and shared Grunt, Elite and Boss kinds.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/flyweight/internal/config"
	"github.com/cory-johannsen/flyweight/internal/game/character"
	"github.com/cory-johannsen/flyweight/internal/game/dice"
	"github.com/cory-johannsen/flyweight/internal/observability"
	"github.com/cory-johannsen/flyweight/internal/scenario"
	"github.com/cory-johannsen/flyweight/internal/scripting"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty uses defaults")
	scriptPath := flag.String("script", "", "path to a Lua scenario script; empty runs the built-in demo")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}

	err = run(context.Background(), cfg, *scriptPath, os.Stdout, logger)
	if err != nil {
		logger.Error("scenario failed", zap.Error(err))
	} else {
		logger.Info("scenario finished", zap.Duration("elapsed", time.Since(start)))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run builds the registry from cfg and plays either the Lua script at
// scriptPath or the built-in demo, narrating to out.
func run(ctx context.Context, cfg config.Config, scriptPath string, out io.Writer, logger *zap.Logger) error {
	var src dice.Source
	if cfg.Scenario.Seed != 0 {
		src = dice.NewSeededSource(cfg.Scenario.Seed)
	} else {
		src = dice.NewCryptoSource()
	}

	profiles := character.DefaultProfiles()
	if cfg.Scenario.Profiles != "" {
		var err error
		profiles, err = character.LoadProfiles(cfg.Scenario.Profiles)
		if err != nil {
			return fmt.Errorf("loading kind profiles: %w", err)
		}
	}

	narrator := character.MultiNarrator(
		character.NewWriterNarrator(out),
		character.NewLogNarrator(logger),
	)

	registry, err := character.NewRegistry(src, logger,
		character.WithProfiles(profiles),
		character.WithNarrator(narrator),
		character.WithMaxExchanges(cfg.Scenario.MaxExchanges),
	)
	if err != nil {
		return fmt.Errorf("creating character registry: %w", err)
	}

	logger.Info("starting scenario",
		zap.Bool("seeded", cfg.Scenario.Seed != 0),
		zap.String("script", scriptPath),
		zap.Int("max_exchanges", cfg.Scenario.MaxExchanges),
	)

	if scriptPath != "" {
		runner := scripting.NewRunner(registry, narrator, logger, cfg.Scenario.InstructionLimit)
		if err := runner.RunFile(ctx, scriptPath); err != nil {
			return fmt.Errorf("running scenario script: %w", err)
		}
		return nil
	}

	if _, err := scenario.NewDemo(registry, narrator, logger).Run(); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}
