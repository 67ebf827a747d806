package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sandevgo/medicbot/internal/config"
	"github.com/sandevgo/medicbot/internal/providers/llm"
	"github.com/sandevgo/medicbot/internal/providers/scraper"
	"github.com/sandevgo/medicbot/internal/service/assistant"
	"github.com/sandevgo/medicbot/internal/service/command"
	"github.com/sandevgo/medicbot/internal/service/conversation"
	"github.com/sandevgo/medicbot/internal/service/facts"
	"github.com/sandevgo/medicbot/internal/transport/httpapi"
	"github.com/sandevgo/medicbot/internal/transport/telegram"
	"github.com/sandevgo/medicbot/pkg/log"
	"github.com/sandevgo/medicbot/pkg/srv"
)

// app is the wired core shared by every command.
type app struct {
	cfg          *config.AppConfig
	facts        *facts.Aggregator
	registry     *assistant.Registry
	router       *command.Router
	newAssistant func() *assistant.Assistant
	cleanup      []srv.Service
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)

	// 2. Facts
	aggregator := newFacts(ctx)

	// 3. AI Provider
	aiProvider, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	var cleanup []srv.Service
	if c, ok := aiProvider.(io.Closer); ok {
		cleanup = append(cleanup, srv.NewCleanup(c.Close))
	}

	systemPrompt := assistant.LoadSystemPrompt(appCfg.GetSystemPath())
	adapter := llm.NewAdapter(aiProvider, systemPrompt)

	// 4. One assistant per conversation
	newAssistant := func() *assistant.Assistant {
		return assistant.New(conversation.NewSession(adapter), aggregator)
	}

	registry := assistant.NewRegistry(newAssistant)

	return &app{
		cfg:          appCfg,
		facts:        aggregator,
		registry:     registry,
		router:       command.New(command.NewCommands(registry, aggregator)),
		newAssistant: newAssistant,
		cleanup:      cleanup,
	}
}

// newFacts needs only the site configuration, so fact lookups work without
// any backend credentials.
func newFacts(ctx context.Context) *facts.Aggregator {
	return facts.NewAggregator(scraper.NewWebsite(config.NewSiteConfig(ctx)))
}

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	a := newApp(ctx)
	// Started first, shut down last
	services := append(a.cleanup, a.registry)

	transports, err := initTransports(ctx, a)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	if len(transports) == 0 {
		logger.Warn().Msg("no transports enabled, set ENABLE_HTTP or ENABLE_TELEGRAM")
	}

	return append(services, transports...)
}

func initTransports(ctx context.Context, a *app) ([]srv.Service, error) {
	var services []srv.Service

	if a.cfg.EnableHTTP {
		services = append(services, httpapi.NewServer(ctx, config.NewHTTPConfig(ctx), a.registry))
	}

	// Telegram Bot
	if a.cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, a.registry, a.facts, a.router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
