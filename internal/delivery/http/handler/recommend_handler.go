package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/profile"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/recommend"
)

type RecommendHandler struct {
	recommendUseCase *recommend.UseCase
	profileUseCase   *profile.UseCase
}

func NewRecommendHandler(recommendUseCase *recommend.UseCase, profileUseCase *profile.UseCase) *RecommendHandler {
	return &RecommendHandler{
		recommendUseCase: recommendUseCase,
		profileUseCase:   profileUseCase,
	}
}

func limitQuery(c *gin.Context, fallback int) int {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

// seed fetches the caller's profile once and reduces it to matching criteria.
// The discovery endpoints never error toward the client: no profile simply
// means an empty seed.
func (h *RecommendHandler) seed(c *gin.Context, userID string) domain.SeedProfile {
	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		return domain.SeedProfile{ID: userID}
	}
	return domain.SeedFromProfile(p)
}

// RecommendedUsers handles GET /discover/users
func (h *RecommendHandler) RecommendedUsers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit := limitQuery(c, recommend.DefaultUserLimit)
	users := h.recommendUseCase.RecommendedUsers(c.Request.Context(), h.seed(c, userID), userID, limit)
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// RecommendedWorkouts handles GET /discover/workouts
func (h *RecommendHandler) RecommendedWorkouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit := limitQuery(c, recommend.DefaultWorkoutLimit)
	workouts := h.recommendUseCase.RecommendedWorkouts(c.Request.Context(), h.seed(c, userID), limit)
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// RecommendedGroups handles GET /discover/groups: the nationwide official
// groups plus, when the caller has a prefecture, that prefecture's official
// group.
func (h *RecommendHandler) RecommendedGroups(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	seed := h.seed(c, userID)
	resp := gin.H{
		"general": h.recommendUseCase.GeneralOfficialGroups(c.Request.Context()),
	}
	if local := h.recommendUseCase.OfficialGroupForPrefecture(c.Request.Context(), seed.Prefecture); local != nil {
		resp["local"] = local
	}
	c.JSON(http.StatusOK, resp)
}

// NewArrivals handles GET /discover/new-arrivals
func (h *RecommendHandler) NewArrivals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit := limitQuery(c, recommend.DefaultNewArrivalLimit)
	arrivals := h.recommendUseCase.NewArrivalUsers(c.Request.Context(), userID, limit)
	c.JSON(http.StatusOK, gin.H{"users": arrivals})
}
