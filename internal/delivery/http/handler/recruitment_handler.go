package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/profile"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/recruit"
)

type RecruitmentHandler struct {
	recruitUseCase *recruit.UseCase
}

func NewRecruitmentHandler(recruitUseCase *recruit.UseCase) *RecruitmentHandler {
	return &RecruitmentHandler{recruitUseCase: recruitUseCase}
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit"))
	offset, _ = strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Create handles POST /recruitments
func (h *RecruitmentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req recruit.CreateRecruitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	recruitment, err := h.recruitUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrOnboardingRequired) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "onboarding_required",
				"redirect": profile.DestinationOnboarding,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create recruitment"})
		return
	}

	c.JSON(http.StatusCreated, recruitment)
}

// Get handles GET /recruitments/:id
func (h *RecruitmentHandler) Get(c *gin.Context) {
	recruitment, err := h.recruitUseCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecruitmentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "recruitment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get recruitment"})
		return
	}

	c.JSON(http.StatusOK, recruitment)
}

// ListRecent handles GET /recruitments
func (h *RecruitmentHandler) ListRecent(c *gin.Context) {
	limit, _ := pagination(c)
	recruitments, err := h.recruitUseCase.ListRecentOpen(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list recruitments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recruitments": recruitments})
}

// ListMine handles GET /recruitments/mine
func (h *RecruitmentHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, offset := pagination(c)
	recruitments, err := h.recruitUseCase.ListMine(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list recruitments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recruitments": recruitments})
}

// Close handles POST /recruitments/:id/close
func (h *RecruitmentHandler) Close(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	recruitment, err := h.recruitUseCase.Close(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecruitmentNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "recruitment not found"})
		case errors.Is(err, domain.ErrNotRecruitmentOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the recruitment owner"})
		case errors.Is(err, domain.ErrRecruitmentClosed):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "recruitment already closed"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to close recruitment"})
		}
		return
	}

	c.JSON(http.StatusOK, recruitment)
}
