package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/follow"
)

type FollowHandler struct {
	followUseCase *follow.UseCase
}

func NewFollowHandler(followUseCase *follow.UseCase) *FollowHandler {
	return &FollowHandler{followUseCase: followUseCase}
}

// Follow handles POST /profiles/:id/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	f, err := h.followUseCase.Follow(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotFollowSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot follow yourself"})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		case errors.Is(err, domain.ErrAlreadyFollowing):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "already following"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to follow"})
		}
		return
	}

	c.JSON(http.StatusCreated, f)
}

// Unfollow handles DELETE /profiles/:id/follow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.followUseCase.Unfollow(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFollowing) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not following"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to unfollow"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListFollowing handles GET /profiles/:id/following
func (h *FollowHandler) ListFollowing(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, offset := pagination(c)
	profiles, err := h.followUseCase.ListFollowing(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list following"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// ListFollowers handles GET /profiles/:id/followers
func (h *FollowHandler) ListFollowers(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, offset := pagination(c)
	profiles, err := h.followUseCase.ListFollowers(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list followers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}
