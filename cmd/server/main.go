package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"telehealth-assistant/internal/agent"
	"telehealth-assistant/internal/assessment"
	"telehealth-assistant/internal/clinical"
	"telehealth-assistant/internal/config"
	"telehealth-assistant/internal/knowledge"
	"telehealth-assistant/internal/platform/analytics"
	"telehealth-assistant/internal/platform/db"
	"telehealth-assistant/internal/platform/logging"
	"telehealth-assistant/internal/platform/telegram"
	"telehealth-assistant/internal/report"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "telehealth-assistant",
		Short:        "Tele-health symptom assessment service",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd, func(conn *sql.DB, dir string) error {
				if err := db.Migrate(conn, dir); err != nil {
					return err
				}
				fmt.Println("Migrations applied successfully.")
				return nil
			})
		},
	}
	upCmd.Flags().String("dir", "", "Path to migrations directory (defaults to MIGRATIONS_PATH)")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd, func(conn *sql.DB, dir string) error {
				v, dirty, err := db.Version(conn, dir)
				if err != nil {
					return err
				}
				fmt.Printf("Schema version: %d (dirty: %v)\n", v, dirty)
				return nil
			})
		},
	}
	statusCmd.Flags().String("dir", "", "Path to migrations directory (defaults to MIGRATIONS_PATH)")
	cmd.AddCommand(statusCmd)

	return cmd
}

func withDatabase(cmd *cobra.Command, fn func(conn *sql.DB, dir string) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.HasDatabase() {
		return errors.New("DATABASE_URL is required")
	}
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.MigrationsPath
	}

	logger := logging.New(cfg.LogLevel, cfg.Env)
	conn, err := db.Open(cmd.Context(), cfg.DatabaseURL, cfg.DBConnAttempts, logger)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn, dir)
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.Env)
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Engine
	kb, err := knowledge.Default()
	if err != nil {
		return fmt.Errorf("knowledge base: %w", err)
	}
	engine, err := clinical.NewEngine(kb, cfg.EngineConfig())
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	logger.Info().Int("conditions", len(kb.Conditions())).Int("symptoms", len(kb.Symptoms())).Msg("knowledge base loaded")

	// 2. Infrastructure
	var repo assessment.Repository
	if cfg.HasDatabase() {
		conn, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBConnAttempts, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("database unavailable, assessments will not be stored")
		} else {
			defer conn.Close()
			if err := db.Migrate(conn, cfg.MigrationsPath); err != nil {
				logger.Warn().Err(err).Msg("migrations failed")
			}
			repo = assessment.NewRepository(conn)
			logger.Info().Msg("connected to database")
		}
	} else {
		logger.Warn().Msg("DATABASE_URL is not set, assessments will not be stored")
	}

	// 3. Clients
	var providers []agent.Provider
	if cfg.DeepSeekAPIKey != "" {
		providers = append(providers, agent.NewDeepSeekClient(cfg.DeepSeekAPIKey, cfg.DeepSeekModel))
	}
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, agent.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel))
	}
	if len(providers) == 0 {
		logger.Info().Msg("no AI provider configured, using the offline engine only")
	}

	var reports assessment.ReportService
	if tg := telegram.NewClient(cfg.TelegramToken); tg.Enabled() {
		reports = report.NewService(tg, cfg.DoctorChatID, cfg.ReportFontPath, logger)
	} else {
		logger.Warn().Msg("TELEGRAM_BOT_TOKEN is not set, clinician reports are disabled")
	}

	// 4. Services
	svc := assessment.NewService(assessment.Deps{
		Engine:  engine,
		AI:      agent.NewChain(cfg.AITimeout, providers...),
		Repo:    repo,
		Reports: reports,
		Metrics: analytics.NewRecorder(),
		Logger:  logger,
	})
	handler := assessment.NewHandler(svc, logger)

	// 5. Router
	r := newRouter(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRouter(logger zerolog.Logger, h *assessment.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")
			if r.Method == http.MethodOptions {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		assessment.RegisterRoutes(r, h)
	})
	return r
}
