package competitions

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/services/achievement"
	"gitlab.com/snapscape.net/internal/core/services/lifecycle"
	"gitlab.com/snapscape.net/internal/core/services/ranking"
	"gitlab.com/snapscape.net/internal/domain"
	"gitlab.com/snapscape.net/internal/handlers"
	"gitlab.com/snapscape.net/internal/handlers/response"
)

// CompetitionHandler serves standings and the status cron
type CompetitionHandler struct {
	achievementService achievement.IAchievementService
	lifecycleService   lifecycle.ILifecycleService
	logger             primary.Logger
	now                func() time.Time
}

// NewCompetitionHandler creates a new competition handler
func NewCompetitionHandler(
	achievementService achievement.IAchievementService,
	lifecycleService lifecycle.ILifecycleService,
	logger primary.Logger,
) *CompetitionHandler {
	return &CompetitionHandler{
		achievementService: achievementService,
		lifecycleService:   lifecycleService,
		logger:             logger,
		now:                time.Now,
	}
}

// RegisterRoutes registers the API routes for CompetitionHandler
func (h *CompetitionHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.HandleFunc("/api/competitions/{competitionId}/ranking", h.GetRanking).Methods("GET")
	router.Handle("/api/cron/competition-status",
		mw.CronMiddleware(http.HandlerFunc(h.UpdateStatuses))).Methods("POST")
}

// RankingResponse lists a competition's submissions in rank order
type RankingResponse struct {
	CompetitionID string                    `json:"competitionId"`
	Submissions   []domain.RankedSubmission `json:"submissions"`
}

// GetRanking handles standings requests. ?podium=true keeps ranks 1 to 3
// only; fallback bronze medals below rank 3 are listed under the user's
// achievements, not here.
func (h *CompetitionHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	competitionID := mux.Vars(r)["competitionId"]

	ranked, err := h.achievementService.GetRanking(r.Context(), competitionID)
	if err != nil {
		h.logger.Error("Failed to get ranking", "competitionId", competitionID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	if r.URL.Query().Get("podium") == "true" {
		ranked = ranking.Podium(ranked)
	}

	handlers.ResponseWithJson(w, http.StatusOK, RankingResponse{
		CompetitionID: competitionID,
		Submissions:   ranked,
	})
}

// StatusUpdateResponse lists the transitions a cron tick applied
type StatusUpdateResponse struct {
	Transitions []domain.StatusTransition `json:"transitions"`
}

// UpdateStatuses handles the competition status cron
func (h *CompetitionHandler) UpdateStatuses(w http.ResponseWriter, r *http.Request) {
	transitions, err := h.lifecycleService.UpdateStatuses(r.Context(), h.now())
	if err != nil {
		h.logger.Error("Failed to update competition statuses", "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	h.logger.Info("Competition statuses updated", "transitions", len(transitions))
	handlers.ResponseWithJson(w, http.StatusOK, StatusUpdateResponse{Transitions: transitions})
}
