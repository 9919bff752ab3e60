package web

import (
	"encoding/csv"
	"net/http"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/application/listutil"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/application/projections"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/export"
)

// handleCompetitionResults handles GET /api/competitions/{id}/results —
// the public individual leaderboard.
func handleCompetitionResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	competitionID := r.PathValue("id")
	if competitionID == "" {
		http.Error(w, "competition id is required", http.StatusBadRequest)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), []string{"discipline", "age_class"})

	result, err := projections.QueryIndividualLeaderboard(ctx, projections.GetIndividualLeaderboardQuery{
		CompetitionID:     competitionID,
		DisciplineID:      lp.Filters["discipline"],
		AgeClassification: lp.Filters["age_class"],
		SearchText:        lp.Search,
	}, projections.GetIndividualLeaderboardDeps{
		RegistrationStore: stores.RegistrationStore,
		ShooterStore:      stores.ShooterStore,
		DisciplineStore:   stores.DisciplineStore,
		ScoreStore:        stores.ScoreStore,
		Metrics:           appMetrics,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	info := listutil.NewPageInfo(lp.Page, lp.PerPage, len(result.Rows))
	lo, hi := info.Slice(len(result.Rows))
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":      result.Rows[lo:hi],
		"anomalies": result.Anomalies,
		"page_info": info,
	})
}

// handleCompetitionTeamResults handles GET /api/competitions/{id}/results/teams
func handleCompetitionTeamResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	competitionID := r.PathValue("id")
	if competitionID == "" {
		http.Error(w, "competition id is required", http.StatusBadRequest)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), []string{"discipline"})

	result, err := projections.QueryTeamLeaderboard(ctx, projections.GetTeamLeaderboardQuery{
		CompetitionID: competitionID,
		DisciplineID:  lp.Filters["discipline"],
	}, projections.GetTeamLeaderboardDeps{
		RegistrationStore: stores.RegistrationStore,
		ShooterStore:      stores.ShooterStore,
		DisciplineStore:   stores.DisciplineStore,
		TeamStore:         stores.TeamStore,
		ScoreStore:        stores.ScoreStore,
		Metrics:           appMetrics,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	info := listutil.NewPageInfo(lp.Page, lp.PerPage, len(result.Rows))
	lo, hi := info.Slice(len(result.Rows))
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":      result.Rows[lo:hi],
		"anomalies": result.Anomalies,
		"page_info": info,
	})
}

// handleCompetitionResultsExport handles
// GET /api/competitions/{id}/results/export?format=csv[&teams=1]
func handleCompetitionResultsExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	competitionID := r.PathValue("id")
	if competitionID == "" {
		http.Error(w, "competition id is required", http.StatusBadRequest)
		return
	}
	if format := r.URL.Query().Get("format"); format != "" && format != "csv" {
		http.Error(w, "unsupported export format", http.StatusBadRequest)
		return
	}

	var header []string
	var records [][]string
	var name string

	if r.URL.Query().Get("teams") == "1" {
		result, err := projections.QueryTeamLeaderboard(ctx, projections.GetTeamLeaderboardQuery{
			CompetitionID: competitionID,
			DisciplineID:  r.URL.Query().Get("discipline"),
		}, projections.GetTeamLeaderboardDeps{
			RegistrationStore: stores.RegistrationStore,
			ShooterStore:      stores.ShooterStore,
			DisciplineStore:   stores.DisciplineStore,
			TeamStore:         stores.TeamStore,
			ScoreStore:        stores.ScoreStore,
			Metrics:           appMetrics,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		header, records = export.TeamHeader, export.TeamRows(result.Rows)
		name = "team-results"
	} else {
		result, err := projections.QueryIndividualLeaderboard(ctx, projections.GetIndividualLeaderboardQuery{
			CompetitionID:     competitionID,
			DisciplineID:      r.URL.Query().Get("discipline"),
			AgeClassification: r.URL.Query().Get("age_class"),
		}, projections.GetIndividualLeaderboardDeps{
			RegistrationStore: stores.RegistrationStore,
			ShooterStore:      stores.ShooterStore,
			DisciplineStore:   stores.DisciplineStore,
			ScoreStore:        stores.ScoreStore,
			Metrics:           appMetrics,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		header, records = export.IndividualHeader, export.IndividualRows(result.Rows)
		name = "results"
	}

	filename := name + "-" + timeNow().Format("20060102") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		internalError(w, err)
		return
	}
	if err := cw.WriteAll(records); err != nil {
		internalError(w, err)
		return
	}
	cw.Flush()
}

// handleCompetitionDashboard handles GET /api/competitions/{id}/dashboard —
// verification progress for officials.
func handleCompetitionDashboard(w http.ResponseWriter, r *http.Request) {
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

	result, err := projections.QueryCompetitionDashboard(ctx, projections.GetCompetitionDashboardQuery{
		CompetitionID: competitionID,
	}, projections.GetCompetitionDashboardDeps{
		CompetitionStore:  stores.CompetitionStore,
		StageStore:        stores.StageStore,
		RegistrationStore: stores.RegistrationStore,
		ScoreStore:        stores.ScoreStore,
	})
	if err != nil {
		http.Error(w, "competition not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleCompetitions handles GET /api/competitions — public list of open and
// recent competitions.
func handleCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	list, err := stores.CompetitionStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"competitions": list})
}
