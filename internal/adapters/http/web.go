package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/email"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/http/middleware"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/metrics"
	accountStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/account"
	competitionStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/competition"
	disciplineStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/discipline"
	newsStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/news"
	registrationStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/registration"
	scoreStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/score"
	shooterStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/shooter"
	teamStore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage/team"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/config"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore      accountStore.Store
	ShooterStore      shooterStore.Store
	DisciplineStore   disciplineStore.Store
	CompetitionStore  competitionStore.Store
	StageStore        competitionStore.StageStore
	TeamStore         teamStore.Store
	RegistrationStore registrationStore.Store
	ScoreStore        scoreStore.Store
	NewsStore         newsStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global metrics registry (set by NewMux; may be nil in tests)
var appMetrics *metrics.Metrics

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// emailFromAddress is the configured From header for federation mail.
var emailFromAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from string) {
	emailSender = sender
	emailFromAddress = from
}

// loadCSRFKey decodes the configured CSRF secret (hex-encoded, 32 bytes).
// In production the key MUST be set. In development a random key is generated
// per startup.
func loadCSRFKey(cfg *config.Config) []byte {
	if cfg.CSRFKeyHex != "" {
		key, err := hex.DecodeString(cfg.CSRFKeyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("csrf_key must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if cfg.IsProduction() {
		log.Fatal("csrf_key is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set csrf_key for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
func NewMux(cfg *config.Config, s *Stores, m *metrics.Metrics) http.Handler {
	stores = s
	appMetrics = m
	sessions = middleware.NewSessionStore()

	mux := http.NewServeMux()
	registerRoutes(mux, m)

	csrfKey := loadCSRFKey(cfg)
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, time.Second)

	// Applied inner to outer: SecurityHeaders -> CSRF -> Auth -> RateLimit -> Timing
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, !cfg.IsProduction()),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(m, cfg.SlowRequestMs),
	)
}
