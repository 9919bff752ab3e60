package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/email"
	web "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/http"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/metrics"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage"
	accountStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/account"
	competitionStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/competition"
	disciplineStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/discipline"
	newsStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/news"
	registrationStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/registration"
	scoreStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/score"
	shooterStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/shooter"
	teamStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/team"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/application/orchestrators"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	setupLogging(cfg)

	// WAL mode, foreign keys, and busy timeout for concurrent readers
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	slog.Info("database_ready", "path", cfg.DBPath)

	// Metrics registry + query instrumentation
	m := metrics.New()
	timedDB := storage.NewTimedDB(db, m, cfg.SlowQueryMs)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	discStore := disciplineStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:      acctStore,
		ShooterStore:      shooterStore.NewSQLiteStore(timedDB),
		DisciplineStore:   discStore,
		CompetitionStore:  competitionStore.NewSQLiteStore(timedDB),
		StageStore:        competitionStore.NewStageSQLiteStore(timedDB),
		TeamStore:         teamStore.NewSQLiteStore(timedDB),
		RegistrationStore: registrationStore.NewSQLiteStore(timedDB),
		ScoreStore:        scoreStore.NewSQLiteStore(timedDB),
		NewsStore:         newsStore.NewSQLiteStore(timedDB),
	}

	// Seed the initial admin account and the federation's standard disciplines
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), orchestrators.SeedAdminInput{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}, orchestrators.SeedAdminDeps{AccountStore: acctStore}); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	if err := orchestrators.ExecuteSeedDisciplines(context.Background(), orchestrators.SeedDisciplinesDeps{
		DisciplineStore: discStore,
	}); err != nil {
		log.Fatalf("failed to seed disciplines: %v", err)
	}

	// Email sender: Resend when a key is configured, noop otherwise
	if cfg.ResendAPIKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom), cfg.EmailFrom)
		slog.Info("email_sender_configured", "sender", "resend")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.EmailFrom)
		if cfg.IsProduction() {
			slog.Warn("email_disabled", "reason", "resend_api_key not set")
		} else {
			slog.Info("email_sender_configured", "sender", "noop")
		}
	}

	handler := web.NewMux(cfg, stores, m)

	slog.Info("server_starting", "addr", cfg.Addr, "env", cfg.Env, "version", version)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// setupLogging configures the default slog logger from config.
func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
