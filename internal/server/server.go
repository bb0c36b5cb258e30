package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/forkful/recipe-api/config"
	"github.com/forkful/recipe-api/internal/api"
	"github.com/forkful/recipe-api/internal/middleware"
	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/router"
	"github.com/forkful/recipe-api/internal/service"
	"github.com/forkful/recipe-api/internal/storage"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New wires services, handlers and routes into a runnable server.
// redisClient may be nil; local disk is used when no S3 bucket is
// configured.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	images, err := newImageStore(cfg)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	tagService := service.NewAttributeService[models.Tag](db, service.TagConfig)
	ingredientService := service.NewAttributeService[models.Ingredient](db, service.IngredientConfig)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "upload-image",
		})
	}

	engine := router.SetupRouter(
		api.NewUserHandler(authService),
		api.NewRecipeHandler(recipeService, images),
		api.NewAttributeHandler(tagService, "tags"),
		api.NewAttributeHandler(ingredientService, "ingredients"),
		authService,
		rateLimiter,
	)

	// Serve locally stored images in the non-S3 setup.
	if cfg.S3Bucket == "" {
		engine.Static(cfg.MediaBaseURL, cfg.MediaDir)
	}

	return &Server{
		engine: engine,
		cfg:    cfg,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}

func newImageStore(cfg *config.Config) (storage.ImageStore, error) {
	if cfg.S3Bucket != "" {
		s3cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewS3Store(s3cfg), nil
	}
	return storage.NewLocalStore(cfg.MediaDir, cfg.MediaBaseURL)
}
