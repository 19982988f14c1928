package main

import (
	"fmt"
	"io"
	"os"

	"socialite/infrastructure/logger"
	"socialite/infrastructure/metrics"
	"socialite/infrastructure/provider"
	"socialite/infrastructure/settings_manager"
	"socialite/internal/config"
	"socialite/internal/core/usecases"
	"socialite/internal/handler/server"
	"socialite/internal/handler/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

func main() {
	cfg := config.Load()

	appLogger, err := logger.NewFileLogger(cfg.LogDir, "socialite", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()
	appLogger.Info("Application starting...")

	// the terminal belongs to the TUI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	settingsService := settings_manager.NewSettingsService(cfg.SettingsPath)
	appMetrics := metrics.New()

	youtubeProvider := provider.NewYoutubeProvider(provider.Config{
		Endpoint:       cfg.APIEndpoint,
		RequestTimeout: cfg.RequestTimeout,
	}, appMetrics, appLogger)

	feedUseCase := usecases.NewFeedUseCase(youtubeProvider, settingsService, appMetrics, appLogger, usecases.Options{
		PerChannelLimit:       cfg.PerChannelLimit,
		MaxConcurrentSearches: cfg.MaxConcurrentSearches,
	})

	if cfg.APIKey != "" {
		settings, err := feedUseCase.GetSettings()
		if err == nil && settings.APIKey == "" {
			if err := feedUseCase.SaveAPIKey(cfg.APIKey); err != nil {
				appLogger.Error("Failed to store API key from environment", err)
			} else {
				appLogger.Info("API key taken from environment")
			}
		}
	}

	gridServer := server.NewGridServer(feedUseCase, appMetrics.Handler(), appLogger)

	initialModel := tui.NewAppModel(feedUseCase, gridServer, appLogger, cfg.GridAddr)

	p := tea.NewProgram(initialModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		appLogger.Error("Error running TUI program", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	appLogger.Info("Application finished.")
}
