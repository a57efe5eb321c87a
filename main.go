package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/oauth2"

	"vitals/internal/cache"
	"vitals/internal/config"
	"vitals/internal/provider"
	"vitals/internal/service"
	"vitals/internal/store"
	"vitals/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("You need to add your vendor API access token and profile.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Pick the sample cache backend
	var sampleCache service.SampleCache = db
	if cfg.Cache.RedisAddr != "" {
		redisCache, err := cache.NewRedis(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			return fmt.Errorf("connecting sample cache: %w", err)
		}
		defer redisCache.Close()
		sampleCache = redisCache
	}

	// Vendor API client
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Vendor.AccessToken})
	client := provider.NewClient(tokenSource, cfg.Vendor.BaseURL)

	assessments := service.NewAssessmentService(client, sampleCache, db, cfg.Profile.ToProfile())

	// Run the TUI
	app := tui.NewApp(assessments)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}

	return nil
}
