package web

import (
	"net/http"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/http/middleware"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/application/orchestrators"
	disciplineDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/discipline"
	shooterDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/shooter"
	teamDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/team"
)

// requireAdmin resolves the session and enforces the admin role.
func requireAdmin(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return middleware.Session{}, false
	}
	if !middleware.IsAdmin(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return middleware.Session{}, false
	}
	return session, true
}

// handleAdminCompetitions handles GET (list) and POST (create) /api/admin/competitions
func handleAdminCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, ok := requireAdmin(w, r)
	if !ok {
		return
	}

	if r.Method == "GET" {
		list, err := stores.CompetitionStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"competitions": list})
		return
	}

	if r.Method == "POST" {
		var body struct {
			Name            string   `json:"name"`
			Location        string   `json:"location"`
			StartDate       string   `json:"start_date"` // YYYY-MM-DD
			EndDate         string   `json:"end_date"`
			DisciplineIDs   []string `json:"discipline_ids"`
			ScoringRounds   int      `json:"scoring_rounds"`
			SighterCount    int      `json:"sighter_count"`
			MaxScorePerShot int      `json:"max_score_per_shot"`
		}
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		start, err := time.Parse("2006-01-02", body.StartDate)
		if err != nil {
			http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		var end time.Time
		if body.EndDate != "" {
			end, err = time.Parse("2006-01-02", body.EndDate)
			if err != nil {
				http.Error(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
		}

		input := orchestrators.CreateCompetitionInput{
			Name:            body.Name,
			Location:        body.Location,
			StartDate:       start,
			EndDate:         end,
			DisciplineIDs:   body.DisciplineIDs,
			CreatedBy:       session.AccountID,
			ScoringRounds:   body.ScoringRounds,
			SighterCount:    body.SighterCount,
			MaxScorePerShot: body.MaxScorePerShot,
		}
		deps := orchestrators.CreateCompetitionDeps{
			CompetitionStore: stores.CompetitionStore,
			StageStore:       stores.StageStore,
			DisciplineStore:  stores.DisciplineStore,
		}
		result, err := orchestrators.ExecuteCreateCompetition(ctx, input, deps)
		if err != nil {
			domainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"competition": result.Competition,
			"stage_count": len(result.Stages),
		})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminCompetitionStatus handles POST /api/admin/competitions/status
// to move a competition through its lifecycle.
func handleAdminCompetitionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		CompetitionID string `json:"competition_id"`
		Status        string `json:"status"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	c, err := stores.CompetitionStore.GetByID(ctx, body.CompetitionID)
	if err != nil {
		http.Error(w, "competition not found", http.StatusNotFound)
		return
	}
	if err := c.TransitionTo(body.Status); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := stores.CompetitionStore.Save(ctx, c); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"competition": c})
}

// handleAdminDisciplines handles GET (list) and POST (create) /api/admin/disciplines
func handleAdminDisciplines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	if r.Method == "GET" {
		list, err := stores.DisciplineStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"disciplines": list})
		return
	}

	if r.Method == "POST" {
		var body struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			StageCount  int    `json:"stage_count"`
			Order       int    `json:"order"`
		}
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		d := disciplineDomain.Discipline{
			ID:          generateID(),
			Name:        body.Name,
			Description: body.Description,
			StageCount:  body.StageCount,
			Order:       body.Order,
		}
		if err := d.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if err := stores.DisciplineStore.Save(ctx, d); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"discipline": d})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminShooters handles GET (list active) and POST (create) /api/admin/shooters
func handleAdminShooters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	if r.Method == "GET" {
		list, err := stores.ShooterStore.ListActive(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"shooters": list})
		return
	}

	if r.Method == "POST" {
		var body struct {
			Name     string `json:"name"`
			Number   string `json:"number"`
			Club     string `json:"club"`
			Province string `json:"province"`
		}
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		s := shooterDomain.Shooter{
			ID:       generateID(),
			Name:     body.Name,
			Number:   body.Number,
			Club:     body.Club,
			Province: body.Province,
			Status:   shooterDomain.StatusActive,
		}
		if err := s.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		// Federation numbers are unique.
		if _, err := stores.ShooterStore.GetByNumber(ctx, s.Number); err == nil {
			http.Error(w, "shooter number already in use", http.StatusConflict)
			return
		}
		if err := stores.ShooterStore.Save(ctx, s); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"shooter": s})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminTeams handles POST (create) /api/admin/teams
func handleAdminTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		CompetitionID string `json:"competition_id"`
		DisciplineID  string `json:"discipline_id"`
		Name          string `json:"name"`
		Province      string `json:"province"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	tm := teamDomain.Team{
		ID:            generateID(),
		CompetitionID: body.CompetitionID,
		DisciplineID:  body.DisciplineID,
		Name:          body.Name,
		Province:      body.Province,
	}
	if err := tm.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if _, err := stores.CompetitionStore.GetByID(ctx, tm.CompetitionID); err != nil {
		http.Error(w, "competition not found", http.StatusNotFound)
		return
	}
	if err := stores.TeamStore.Save(ctx, tm); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"team": tm})
}

// handleAdminNews handles POST (draft) /api/admin/news
func handleAdminNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	a, err := orchestrators.ExecuteCreateArticle(ctx, orchestrators.CreateArticleInput{
		Title:    body.Title,
		Body:     body.Body,
		AuthorID: session.AccountID,
	}, orchestrators.CreateArticleDeps{ArticleStore: stores.NewsStore})
	if err != nil {
		domainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"article": a})
}

// handleAdminNewsPublish handles POST /api/admin/news/publish
func handleAdminNewsPublish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		ArticleID string `json:"article_id"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	a, err := orchestrators.ExecutePublishArticle(ctx, orchestrators.PublishArticleInput{
		ArticleID: body.ArticleID,
	}, orchestrators.CreateArticleDeps{ArticleStore: stores.NewsStore})
	if err != nil {
		domainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"article": a})
}
