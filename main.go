package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wfunc/hangman/config"
	"github.com/wfunc/hangman/console"
	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/monitor"
	"github.com/wfunc/hangman/persistence"
	"github.com/wfunc/hangman/services"
	"github.com/wfunc/hangman/words"
)

func main() {
	configDir := pflag.String("config", ".", "directory holding config.yaml")
	word := pflag.String("word", "", "play this word instead of drawing from the dictionary")
	pflag.String("log-level", "info", "log level (debug, info, warn, error)")
	pflag.Parse()

	// Bootstrap logger until the configured one replaces it
	if err := logger.Init("info", nil); err != nil {
		panic("failed to initialize zap logger: " + err.Error())
	}

	// Local overrides; a missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	if err := v.BindPFlag("log.level", pflag.Lookup("log-level")); err != nil {
		logger.Log.Fatalf("Failed to bind flags: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig(v, *configDir)
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Reconfigure logger
	if err := logger.Init(cfg.Log.Level, cfg.Log.OutputPaths); err != nil {
		logger.Log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize storage
	store, err := persistence.Open(cfg.Storage)
	if err != nil {
		logger.Log.Fatalf("Failed to open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer store.Close()

	mon := monitor.NewMonitor("hangman")
	if cfg.Metrics.Address != "" {
		mon.StartServer(cfg.Metrics.Address)
		defer mon.Stop()
	}

	gameCfg := game.Config{
		MinWordSize:    cfg.Game.MinWordSize,
		MaxWordSize:    cfg.Game.MaxWordSize,
		ChanceLimit:    cfg.Game.ChanceLimit,
		DictionaryPath: cfg.Game.DictionaryPath,
	}
	var source words.Source
	if *word != "" {
		if !words.IsWord(*word) {
			logger.Log.Fatalf("--word must contain letters only, got %q", *word)
		}
		source = words.Static(*word)
	}

	engine := game.NewEngine(gameCfg, source)
	svc := services.NewGameService(engine, store, mon)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Log.Infof("Starting hangman with %s storage", cfg.Storage.Driver)
	if err := console.New(svc, os.Stdout).Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Log.Errorf("Input loop stopped: %v", err)
	}
}
