package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/http/middleware"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/application/orchestrators"
	competitionDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
	scoreDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderMarkdown converts article markdown to HTML, falling back to the raw
// text on renderer errors.
func renderMarkdown(md string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return md
	}
	return buf.String()
}

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// domainError maps known orchestrator errors to client-facing statuses;
// anything unrecognized is treated as internal.
func domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orchestrators.ErrCompetitionNotFound),
		errors.Is(err, orchestrators.ErrShooterNotFound),
		errors.Is(err, orchestrators.ErrStageNotFound),
		errors.Is(err, orchestrators.ErrRegistrationNotFound),
		errors.Is(err, orchestrators.ErrScoreNotFound),
		errors.Is(err, orchestrators.ErrArticleNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, orchestrators.ErrAlreadyRegistered),
		errors.Is(err, orchestrators.ErrScoreVerified),
		errors.Is(err, scoreDomain.ErrAlreadyVerified):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, orchestrators.ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, orchestrators.ErrCompetitionNotOpen),
		errors.Is(err, orchestrators.ErrShooterArchived),
		errors.Is(err, orchestrators.ErrStageNotInDiscipline),
		errors.Is(err, competitionDomain.ErrFinalized):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, scoreDomain.ErrInvalidStageDefinition),
		errors.Is(err, scoreDomain.ErrInvalidSighterMode):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		internalError(w, err)
	}
}

// handleLogin handles POST /api/login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.LoginInput
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	deps := orchestrators.LoginDeps{
		AccountStore: stores.AccountStore,
	}
	result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
	if err != nil {
		// Uniform 401 for bad credentials and locked accounts alike.
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := sessions.Create(result.AccountID, result.Email, result.Role)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)

	writeJSON(w, http.StatusOK, map[string]string{
		"account_id": result.AccountID,
		"email":      result.Email,
		"role":       result.Role,
	})
}

// handleLogout handles POST /api/logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie("shootcomp_session")
	if err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
