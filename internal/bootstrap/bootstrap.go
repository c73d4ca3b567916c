package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oguzkose/resourcehub/internal/app/controllers"
	"github.com/oguzkose/resourcehub/internal/app/repositories"
	"github.com/oguzkose/resourcehub/internal/app/routes"
	"github.com/oguzkose/resourcehub/internal/app/search"
	"github.com/oguzkose/resourcehub/internal/app/services"
	"github.com/oguzkose/resourcehub/internal/config"
	"github.com/oguzkose/resourcehub/internal/kvstore"
	"github.com/oguzkose/resourcehub/internal/middleware"
	"github.com/oguzkose/resourcehub/internal/pkg/auth"
	"github.com/oguzkose/resourcehub/internal/pkg/logger"
	"github.com/oguzkose/resourcehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos           *repositories.Repositories
	AuthService     *services.AuthService
	ResourceService *services.ResourceService
	SearchEngine    *search.Engine
	JWTService      *auth.JWTService
	Controllers     routes.Controllers
}

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("storageDriver", cfg.Storage.Driver).
		Msg("Configuration loaded")
	return cfg, nil
}

// SetupStore opens the configured storage backend, restores any collection
// missing from a previous backup and seeds the reference data.
func SetupStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := repositories.RestoreFromBackup(ctx, store); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to restore from backup: %w", err)
	}

	repos := repositories.NewRepositories(store)
	if err := seed.Run(ctx, store, repos); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to seed reference data: %w", err)
	}

	return store, nil
}

func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		logger.Info().Str("path", cfg.Storage.Path).Msg("Opening sqlite storage")
		return kvstore.OpenSQLite(ctx, cfg.Storage.Path)
	case config.DriverPostgres:
		logger.Info().Str("host", cfg.Storage.Host).Msg("Connecting to postgres storage")
		return kvstore.OpenPostgres(ctx, cfg.GetPostgresConnectionString())
	case config.DriverMemory:
		logger.Warn().Msg("Using in-memory storage; data is lost on exit")
		return kvstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// BuildDependencies wires repositories, services and controllers together
func BuildDependencies(cfg *config.Config, store kvstore.Store) (*Dependencies, error) {
	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}

	repos := repositories.NewRepositories(store)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authService := services.NewAuthService(repos.UserRepository, repos.SessionRepository, jwtService)
	resourceService := services.NewResourceService(repos.ResourceRepository, repos.UserRepository, repos.DepartmentRepository)
	engine := search.NewEngine(
		repos.ResourceRepository,
		repos.DepartmentRepository,
		repos.CourseRepository,
		repos.LecturerRepository,
	)

	return &Dependencies{
		Repos:           repos,
		AuthService:     authService,
		ResourceService: resourceService,
		SearchEngine:    engine,
		JWTService:      jwtService,
		Controllers: routes.Controllers{
			Auth:     controllers.NewAuthController(authService),
			Resource: controllers.NewResourceController(resourceService),
			Search:   controllers.NewSearchController(engine),
			Browse:   controllers.NewBrowseController(repos),
			Catalog: controllers.NewCatalogController(
				repos.DepartmentRepository,
				repos.CourseRepository,
				repos.LecturerRepository,
			),
		},
	}, nil
}

// SetupRouter creates the gin engine and mounts all routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.SetupRoutes(router, deps.Controllers, deps.JWTService)
	return router
}
