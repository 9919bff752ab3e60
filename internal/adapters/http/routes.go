package web

import (
	"net/http"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/metrics"
)

// registerRoutes attaches all handlers to the mux.
func registerRoutes(mux *http.ServeMux, m *metrics.Metrics) {
	// Auth
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)

	// Admin
	mux.HandleFunc("/api/admin/competitions", handleAdminCompetitions)
	mux.HandleFunc("/api/admin/competitions/status", handleAdminCompetitionStatus)
	mux.HandleFunc("/api/admin/disciplines", handleAdminDisciplines)
	mux.HandleFunc("/api/admin/shooters", handleAdminShooters)
	mux.HandleFunc("/api/admin/teams", handleAdminTeams)
	mux.HandleFunc("/api/admin/news", handleAdminNews)
	mux.HandleFunc("/api/admin/news/publish", handleAdminNewsPublish)

	// Officials
	mux.HandleFunc("/api/registrations", handleRegistrations)
	mux.HandleFunc("/api/scores", handleScores)
	mux.HandleFunc("/api/scores/verify", handleScoreVerify)
	mux.HandleFunc("/api/competitions/{id}/scores/pending", handlePendingScores)
	mux.HandleFunc("/api/competitions/{id}/dashboard", handleCompetitionDashboard)

	// Public
	mux.HandleFunc("/api/competitions", handleCompetitions)
	mux.HandleFunc("/api/competitions/{id}/results", handleCompetitionResults)
	mux.HandleFunc("/api/competitions/{id}/results/teams", handleCompetitionTeamResults)
	mux.HandleFunc("/api/competitions/{id}/results/export", handleCompetitionResultsExport)
	mux.HandleFunc("/api/news", handleNews)

	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}
}
