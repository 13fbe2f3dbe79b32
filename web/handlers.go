package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/RicTBest/paydaysite-sub000/controller"
	"github.com/RicTBest/paydaysite-sub000/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func jsonError(render *render.Render, w http.ResponseWriter, status int, format string, args ...any) {
	render.JSON(w, status, errorResponse{Error: fmt.Sprintf(format, args...)})
}

// seasonWeek pulls the season and week URL params. The route patterns
// guarantee they are numeric.
func seasonWeek(r *http.Request) (season, week int) {
	season, _ = strconv.Atoi(chi.URLParam(r, "season"))
	week, _ = strconv.Atoi(chi.URLParam(r, "week"))
	return season, week
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "payday football league")
	}
}

func leaderboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, _ := strconv.Atoi(chi.URLParam(r, "season"))

		rows, err := ctrl.GetLeaderboard(r.Context(), season)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, rows)
	}
}

func awardsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, week := seasonWeek(r)

		awards, err := ctrl.GetWeekAwards(r.Context(), season, week)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, awards)
	}
}

func probabilitiesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, week := seasonWeek(r)

		probs, err := ctrl.WeekWinProbabilities(r.Context(), season, week)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, probs)
	}
}

func gooseReportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, week := seasonWeek(r)

		report, err := ctrl.GooseReport(r.Context(), season, week)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, report)
	}
}

func gooseOwnerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, week := seasonWeek(r)
		ownerID, _ := strconv.Atoi(chi.URLParam(r, "ownerID"))

		res := ctrl.GooseProbability(r.Context(), int32(ownerID), season, week, nil)
		render.JSON(w, http.StatusOK, res)
	}
}

func recomputeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, week := seasonWeek(r)

		awards, err := ctrl.RecomputeWeekAwards(r.Context(), season, week)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, awards)
	}
}

func manualAwardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			jsonError(render, w, http.StatusBadRequest, "%v", err)
			return
		}
		season, week := seasonWeek(r)

		team := model.ParseTeam(r.PostForm.Get("team"))
		if team.Equals(model.TEAM_FA) {
			jsonError(render, w, http.StatusBadRequest, "unknown team: %s", r.PostForm.Get("team"))
			return
		}
		points, err := strconv.Atoi(r.PostForm.Get("points"))
		if err != nil {
			jsonError(render, w, http.StatusBadRequest, "error parsing points: %v", err)
			return
		}
		awardType := model.AwardType(r.PostForm.Get("type"))
		notes := r.PostForm.Get("notes")

		award, err := ctrl.AddManualAward(r.Context(), season, week, awardType, team, points, notes)
		if err != nil {
			jsonError(render, w, http.StatusBadRequest, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, award)
	}
}

func playoffsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, _ := strconv.Atoi(chi.URLParam(r, "season"))

		summary, err := ctrl.UpdatePlayoffAwards(r.Context(), season)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, summary)
	}
}

func syncScoresHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, week := seasonWeek(r)

		games, err := ctrl.SyncWeekScores(r.Context(), season, week)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, "%v", err)
			return
		}

		render.JSON(w, http.StatusOK, games)
	}
}

func closeWeekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, week := seasonWeek(r)

		if err := ctrl.CloseWeek(r.Context(), season, week); err != nil {
			jsonError(render, w, http.StatusConflict, "%v", err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"season": season, "week": week, "closed": true})
	}
}
