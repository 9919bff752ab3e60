package browser_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

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

const (
	testAdminEmail    = "admin@test.com"
	testAdminPassword = "TestPass123!"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	DB      *sql.DB
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *web.Stores
	Metrics *metrics.Metrics
	AdminID string
}

// newTestApp creates a fully wired app with a temp SQLite DB and starts an HTTP server.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to initialize test DB: %v", err)
	}

	acctStore := accountStore.NewSQLiteStore(db)
	discStore := disciplineStore.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:      acctStore,
		ShooterStore:      shooterStore.NewSQLiteStore(db),
		DisciplineStore:   discStore,
		CompetitionStore:  competitionStore.NewSQLiteStore(db),
		StageStore:        competitionStore.NewStageSQLiteStore(db),
		TeamStore:         teamStore.NewSQLiteStore(db),
		RegistrationStore: registrationStore.NewSQLiteStore(db),
		ScoreStore:        scoreStore.NewSQLiteStore(db),
		NewsStore:         newsStore.NewSQLiteStore(db),
	}

	ctx := context.Background()
	if err := orchestrators.ExecuteSeedAdmin(ctx, orchestrators.SeedAdminInput{
		Email:    testAdminEmail,
		Password: testAdminPassword,
	}, orchestrators.SeedAdminDeps{AccountStore: acctStore}); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	admin, err := acctStore.GetByEmail(ctx, testAdminEmail)
	if err != nil {
		t.Fatalf("failed to load seeded admin: %v", err)
	}
	if err := orchestrators.ExecuteSeedDisciplines(ctx, orchestrators.SeedDisciplinesDeps{
		DisciplineStore: discStore,
	}); err != nil {
		t.Fatalf("failed to seed disciplines: %v", err)
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// High rate limit so a multi-request browser session never trips it
	cfg := config.Defaults()
	cfg.Addr = fmt.Sprintf("127.0.0.1:%d", port)
	cfg.DBPath = dbPath
	cfg.RateLimitPerSecond = 1000

	m := metrics.New()
	mux := web.NewMux(cfg, stores, m)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := "http://" + cfg.Addr
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/api/competitions")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		DB:      db,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
		Metrics: m,
		AdminID: admin.ID,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login authenticates the page's browser context as the seeded admin via the
// JSON login endpoint, so later same-context requests carry the session cookie.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/api/competitions"); err != nil {
		t.Fatalf("failed to open app origin: %v", err)
	}
	script := fmt.Sprintf(`async () => {
		const resp = await fetch("/api/login", {
			method: "POST",
			headers: {"Content-Type": "application/json"},
			body: JSON.stringify({email: %q, password: %q}),
		});
		return resp.status;
	}`, testAdminEmail, testAdminPassword)
	status, err := page.Evaluate(script)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if fmt.Sprint(status) != "200" {
		t.Fatalf("login returned status %v, want 200", status)
	}
}

// apiFetch issues a JSON request from inside the page's browser context and
// returns the status code and response body text.
func (a *testApp) apiFetch(t *testing.T, page playwright.Page, method, path, body string) (int, string) {
	t.Helper()
	script := fmt.Sprintf(`async () => {
		const opts = {method: %q, headers: {"Content-Type": "application/json"}};
		if (%q !== "") { opts.body = %q; }
		const resp = await fetch(%q, opts);
		const text = await resp.text();
		return {status: resp.status, body: text};
	}`, method, body, body, path)
	result, err := page.Evaluate(script)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	obj, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("%s %s: unexpected evaluate result %T", method, path, result)
	}
	status := 0
	fmt.Sscan(fmt.Sprint(obj["status"]), &status)
	return status, fmt.Sprint(obj["body"])
}
