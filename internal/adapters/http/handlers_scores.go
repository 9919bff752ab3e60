package web

import (
	"net/http"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/http/middleware"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/application/orchestrators"
	scoreDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
)

// requireOfficial resolves the session and enforces official or admin role.
func requireOfficial(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return middleware.Session{}, false
	}
	if !middleware.IsOfficialOrAdmin(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return middleware.Session{}, false
	}
	return session, true
}

// handleRegistrations handles POST /api/registrations
func handleRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOfficial(w, r); !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.RegisterShooterInput
	var body struct {
		CompetitionID     string `json:"competition_id"`
		ShooterID         string `json:"shooter_id"`
		DisciplineID      string `json:"discipline_id"`
		TeamID            string `json:"team_id"`
		AgeClassification string `json:"age_classification"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	input = orchestrators.RegisterShooterInput{
		CompetitionID:     body.CompetitionID,
		ShooterID:         body.ShooterID,
		DisciplineID:      body.DisciplineID,
		TeamID:            body.TeamID,
		AgeClassification: body.AgeClassification,
	}

	deps := orchestrators.RegisterShooterDeps{
		CompetitionStore:  stores.CompetitionStore,
		ShooterStore:      stores.ShooterStore,
		RegistrationStore: stores.RegistrationStore,
		AccountStore:      stores.AccountStore,
		EmailSender:       emailSender,
		EmailFrom:         emailFromAddress,
	}
	reg, err := orchestrators.ExecuteRegisterShooter(ctx, input, deps)
	if err != nil {
		domainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"registration": reg})
}

// handleScores handles POST /api/scores (stage score submission)
func handleScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOfficial(w, r); !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		RegistrationID string             `json:"registration_id"`
		StageID        string             `json:"stage_id"`
		SighterMode    string             `json:"sighter_mode"`
		Shots          []scoreDomain.Shot `json:"shots"`
		IsDNF          bool               `json:"is_dnf"`
		IsDQ           bool               `json:"is_dq"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	deps := orchestrators.SubmitStageScoreDeps{
		StageStore:        stores.StageStore,
		RegistrationStore: stores.RegistrationStore,
		CompetitionStore:  stores.CompetitionStore,
		ScoreStore:        stores.ScoreStore,
		Metrics:           appMetrics,
	}
	sc, err := orchestrators.ExecuteSubmitStageScore(ctx, orchestrators.SubmitStageScoreInput{
		RegistrationID: body.RegistrationID,
		StageID:        body.StageID,
		SighterMode:    body.SighterMode,
		Shots:          body.Shots,
		IsDNF:          body.IsDNF,
		IsDQ:           body.IsDQ,
	}, deps)
	if err != nil {
		domainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"score": sc})
}

// handleScoreVerify handles POST /api/scores/verify
func handleScoreVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, ok := requireOfficial(w, r)
	if !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		ScoreID string `json:"score_id"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	sc, err := orchestrators.ExecuteVerifyScore(ctx, orchestrators.VerifyScoreInput{
		ScoreID:    body.ScoreID,
		VerifiedBy: session.AccountID,
	}, orchestrators.VerifyScoreDeps{
		ScoreStore:   stores.ScoreStore,
		AccountStore: stores.AccountStore,
		Metrics:      appMetrics,
	})
	if err != nil {
		domainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"score": sc})
}

// handlePendingScores handles GET /api/competitions/{id}/scores/pending —
// the verification queue for officials.
func handlePendingScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOfficial(w, r); !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	competitionID := r.PathValue("id")
	if competitionID == "" {
		http.Error(w, "competition id is required", http.StatusBadRequest)
		return
	}
	pending, err := stores.ScoreStore.ListUnverifiedByCompetitionID(ctx, competitionID)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scores": pending})
}
