package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/takuma1234577-create/fitpeak-server/internal/config"
	"github.com/takuma1234577-create/fitpeak-server/internal/delivery/http"
	"github.com/takuma1234577-create/fitpeak-server/internal/delivery/http/handler"
	"github.com/takuma1234577-create/fitpeak-server/internal/delivery/http/middleware"
	"github.com/takuma1234577-create/fitpeak-server/internal/infrastructure/database"
	"github.com/takuma1234577-create/fitpeak-server/internal/infrastructure/gemini"
	"github.com/takuma1234577-create/fitpeak-server/internal/infrastructure/logging"
	"github.com/takuma1234577-create/fitpeak-server/internal/infrastructure/server"
	"github.com/takuma1234577-create/fitpeak-server/internal/repository/postgres"
	redisrepo "github.com/takuma1234577-create/fitpeak-server/internal/repository/redis"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/auth"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/follow"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/profile"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/recommend"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/recruit"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *goredis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger, err := logging.NewLogger(&cfg.Logging, cfg.Server.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Bio suggestion is optional; the rest of the app works without it.
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("failed to initialize gemini client, continuing without bio suggestions", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	recruitmentRepo := postgres.NewRecruitmentRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	followRepo := postgres.NewFollowRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(redisClient)

	// Initialize use cases
	authUseCase := auth.NewUseCase(
		userRepo,
		profileRepo,
		sessionRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessTTL(),
		cfg.JWT.RefreshTTL(),
	)

	profileUseCase := profile.NewUseCase(profileRepo, geminiClient)

	recommendUseCase := recommend.NewUseCase(
		profileRepo,
		recruitmentRepo,
		groupRepo,
		logger,
	)

	recruitUseCase := recruit.NewUseCase(recruitmentRepo, profileRepo)
	followUseCase := follow.NewUseCase(followRepo, profileRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	recommendHandler := handler.NewRecommendHandler(recommendUseCase, profileUseCase)
	recruitmentHandler := handler.NewRecruitmentHandler(recruitUseCase)
	followHandler := handler.NewFollowHandler(followUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)
	onboardingMiddleware := middleware.NewOnboardingMiddleware(profileUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		recommendHandler,
		recruitmentHandler,
		followHandler,
		authMiddleware,
		onboardingMiddleware,
	)

	ginRouter := router.Setup()

	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	return nil
}
