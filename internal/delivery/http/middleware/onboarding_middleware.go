package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/profile"
)

type OnboardingMiddleware struct {
	profileUseCase *profile.UseCase
}

func NewOnboardingMiddleware(profileUseCase *profile.UseCase) *OnboardingMiddleware {
	return &OnboardingMiddleware{profileUseCase: profileUseCase}
}

// RequireOnboarded gates dashboard-scoped routes behind the profile
// completion check. It runs after RequireAuth and before the handler; an
// incomplete profile is redirected to onboarding instead of reaching
// protected content. The check always reads the current row, so a user who
// just finished onboarding passes on their next request.
func (m *OnboardingMiddleware) RequireOnboarded() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		status, err := m.profileUseCase.Status(c.Request.Context(), userID.(string))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to check profile"})
			return
		}
		if !status.Completed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "onboarding_required",
				"redirect": profile.DestinationOnboarding,
			})
			return
		}

		c.Next()
	}
}
