package achievements

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/core/services/achievement"
	"gitlab.com/snapscape.net/internal/domain"
	"gitlab.com/snapscape.net/internal/handlers"
	"gitlab.com/snapscape.net/internal/handlers/response"
)

// AchievementHandler serves medal results and the admin resync routes
type AchievementHandler struct {
	achievementService achievement.IAchievementService
	logger             primary.Logger
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(achievementService achievement.IAchievementService, logger primary.Logger) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
		logger:             logger,
	}
}

// RegisterRoutes registers the API routes for AchievementHandler
func (h *AchievementHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.HandleFunc("/api/users/{userId}/achievements", h.GetUserAchievements).Methods("GET")

	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(mw.JWTMiddleware, mw.AdminMiddleware)
	admin.HandleFunc("/competitions/{competitionId}/sync", h.SyncCompetition).Methods("POST")
	admin.HandleFunc("/competitions/{competitionId}/users/{userId}/sync", h.SyncUser).Methods("POST")
	admin.HandleFunc("/sync", h.SyncAll).Methods("POST")
}

// AchievementsResponse lists a user's medals
type AchievementsResponse struct {
	UserID  string          `json:"userId"`
	Results []domain.Result `json:"results"`
}

// GetUserAchievements handles medal list requests
func (h *AchievementHandler) GetUserAchievements(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	results, err := h.achievementService.GetUserAchievements(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get achievements", "userId", userID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, AchievementsResponse{UserID: userID, Results: results})
}

// SyncCompetition rebuilds the results of every participant of a competition
func (h *AchievementHandler) SyncCompetition(w http.ResponseWriter, r *http.Request) {
	competitionID := mux.Vars(r)["competitionId"]

	report, err := h.achievementService.SyncCompetition(r.Context(), competitionID)
	if err != nil {
		h.logger.Error("Failed to sync competition", "competitionId", competitionID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, report)
}

// SyncUser rebuilds the results of one user against the current ranking
func (h *AchievementHandler) SyncUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	competitionID := vars["competitionId"]
	userID := vars["userId"]

	ranked, err := h.achievementService.GetRanking(r.Context(), competitionID)
	if err != nil {
		h.logger.Error("Failed to get ranking", "competitionId", competitionID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	results, err := h.achievementService.SyncUser(r.Context(), competitionID, userID, ranked)
	if err != nil {
		h.logger.Error("Failed to sync user", "competitionId", competitionID, "userId", userID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, AchievementsResponse{UserID: userID, Results: results})
}

// SyncAll rebuilds the results of every completed competition
func (h *AchievementHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	report, err := h.achievementService.SyncAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to sync competitions", "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, report)
}
