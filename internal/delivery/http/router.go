package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/takuma1234577-create/fitpeak-server/internal/delivery/http/handler"
	"github.com/takuma1234577-create/fitpeak-server/internal/delivery/http/middleware"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
)

type Router struct {
	authHandler          *handler.AuthHandler
	profileHandler       *handler.ProfileHandler
	recommendHandler     *handler.RecommendHandler
	recruitmentHandler   *handler.RecruitmentHandler
	followHandler        *handler.FollowHandler
	authMiddleware       *middleware.AuthMiddleware
	onboardingMiddleware *middleware.OnboardingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	recommendHandler *handler.RecommendHandler,
	recruitmentHandler *handler.RecruitmentHandler,
	followHandler *handler.FollowHandler,
	authMiddleware *middleware.AuthMiddleware,
	onboardingMiddleware *middleware.OnboardingMiddleware,
) *Router {
	return &Router{
		authHandler:          authHandler,
		profileHandler:       profileHandler,
		recommendHandler:     recommendHandler,
		recruitmentHandler:   recruitmentHandler,
		followHandler:        followHandler,
		authMiddleware:       authMiddleware,
		onboardingMiddleware: onboardingMiddleware,
	}
}

// registerValidators adds the prefecture enum check to gin's binding
// validator.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("jp_prefecture", func(fl validator.FieldLevel) bool {
			return domain.IsValidPrefecture(fl.Field().String())
		})
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", r.authHandler.SignUp)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.Refresh)
			auth.POST("/logout", r.authHandler.Logout)
			auth.POST("/confirm-email", r.authHandler.ConfirmEmail)
		}

		// Authenticated routes reachable before onboarding finishes
		authed := v1.Group("")
		authed.Use(r.authMiddleware.RequireAuth())
		{
			authed.GET("/onboarding", r.profileHandler.OnboardingStatus)
			authed.POST("/onboarding", r.profileHandler.CompleteOnboarding)

			profile := authed.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/suggest-bio", r.profileHandler.SuggestBio)
			}
		}

		// Dashboard-scoped routes: the completion check runs before every
		// handler, never after content is produced.
		dashboard := v1.Group("")
		dashboard.Use(r.authMiddleware.RequireAuth(), r.onboardingMiddleware.RequireOnboarded())
		{
			discover := dashboard.Group("/discover")
			{
				discover.GET("/users", r.recommendHandler.RecommendedUsers)
				discover.GET("/workouts", r.recommendHandler.RecommendedWorkouts)
				discover.GET("/groups", r.recommendHandler.RecommendedGroups)
				discover.GET("/new-arrivals", r.recommendHandler.NewArrivals)
			}

			profiles := dashboard.Group("/profiles")
			{
				profiles.GET("/:id", r.profileHandler.GetProfileByID)
				profiles.POST("/:id/follow", r.followHandler.Follow)
				profiles.DELETE("/:id/follow", r.followHandler.Unfollow)
				profiles.GET("/:id/following", r.followHandler.ListFollowing)
				profiles.GET("/:id/followers", r.followHandler.ListFollowers)
			}

			recruitments := dashboard.Group("/recruitments")
			{
				recruitments.POST("", r.recruitmentHandler.Create)
				recruitments.GET("", r.recruitmentHandler.ListRecent)
				recruitments.GET("/mine", r.recruitmentHandler.ListMine)
				recruitments.GET("/:id", r.recruitmentHandler.Get)
				recruitments.POST("/:id/close", r.recruitmentHandler.Close)
			}
		}
	}

	return router
}
