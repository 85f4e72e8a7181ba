package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"day-planner/config"
	_ "day-planner/docs" // Swagger docs
	"day-planner/internal/calendar"
	"day-planner/internal/commit"
	"day-planner/internal/httpserver"
	"day-planner/internal/planner"
	"day-planner/internal/planner/generator"
	"day-planner/internal/planner/usecase"
	"day-planner/internal/rules"
	"day-planner/pkg/gcalendar"
	"day-planner/pkg/llmprovider"
	"day-planner/pkg/log"
	"day-planner/pkg/notion"
)

// @title       Day Planner API
// @description Plans a day from free text, checks it against calendar commitments and commits it as events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Day Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendars
	cal := initCalendar(ctx, logger, cfg)

	// 4. Rules
	rulesSource, err := initRules(logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize rules source: ", err)
		return
	}

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)

	// 6. Planner
	plannerUC := usecase.New(
		logger,
		cal,
		generator.New(logger, manager),
		rulesSource,
		commit.New(logger, cfg.GoogleCalendar.InsertRatePerSec),
		cfg.Planner.MaxInputLength,
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PlannerUseCase:  plannerUC,
		DefaultTimeZone: cfg.Planner.DefaultTimeZone,
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// initCalendar wires Google Calendar (read/write, optional) and ICS feeds (read only).
func initCalendar(ctx context.Context, logger log.Logger, cfg *config.Config) *calendar.Composite {
	var (
		writer  calendar.Writer
		readers []calendar.Reader
	)

	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available: %v", err)
			logger.Warn(ctx, "Run `go run ./cmd/gcal-auth` to generate a token")
		} else {
			google := calendar.NewGoogle(logger, client, cfg.GoogleCalendar.CalendarID)
			writer = google
			readers = append(readers, google)
			logger.Infof(ctx, "Google Calendar initialized (calendar %s)", cfg.GoogleCalendar.CalendarID)
		}
	}

	if len(cfg.ICS.URLs) > 0 {
		readers = append(readers, calendar.NewICS(logger, cfg.ICS.URLs, cfg.ICS.Timeout))
		logger.Infof(ctx, "ICS feeds initialized (%d)", len(cfg.ICS.URLs))
	}

	if writer == nil {
		logger.Warn(ctx, "No writable calendar: commits will be rejected")
	}
	return calendar.NewComposite(writer, readers...)
}

// initRules prefers Notion, then a local file, then no rules at all.
func initRules(logger log.Logger, cfg *config.Config) (planner.RulesSource, error) {
	if cfg.Notion.Enabled() {
		client, err := notion.New(notion.Config{APIKey: cfg.Notion.APIKey, BaseURL: cfg.Notion.BaseURL})
		if err != nil {
			return nil, err
		}
		return rules.NewNotion(logger, client, cfg.Notion.PageID, cfg.Notion.MaxChars, cfg.Notion.CacheTTL)
	}
	if cfg.Rules.Path != "" {
		return rules.NewFile(cfg.Rules.Path, cfg.Notion.MaxChars)
	}
	return rules.Empty{}, nil
}
