package app

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/NhatNguyen1502/ecommerce-services/internal/config"
	"github.com/NhatNguyen1502/ecommerce-services/internal/email"
	"github.com/NhatNguyen1502/ecommerce-services/internal/handlers"
	"github.com/NhatNguyen1502/ecommerce-services/internal/repo"
	"github.com/NhatNguyen1502/ecommerce-services/internal/revocation"
	"github.com/NhatNguyen1502/ecommerce-services/internal/routes"
	"github.com/NhatNguyen1502/ecommerce-services/internal/services"
	"github.com/NhatNguyen1502/ecommerce-services/internal/storage"
	"github.com/NhatNguyen1502/ecommerce-services/internal/token"
)

func NewApp(cfg *config.Config) (*gin.Engine, error) {
	database, err := storage.Open(cfg.DB)
	if err != nil {
		return nil, err
	}

	// Revoked tokens live in Redis when an address is configured, so several
	// instances share one revocation set. Without Redis the set is in-process.
	var revoked revocation.Store
	if cfg.RedisAddress != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		revoked = revocation.NewRedis(client)
	} else {
		revoked = revocation.NewMemory()
	}

	var mailer services.EmailClient
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPClient(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	}

	return NewRouter(cfg, database, revoked, mailer), nil
}

// NewRouter wires the service graph onto a gin engine. Split from NewApp so
// tests can inject their own database and revocation store.
func NewRouter(cfg *config.Config, database *gorm.DB, revoked revocation.Store, mailer services.EmailClient) *gin.Engine {
	logger := slog.Default()

	repository := repo.NewRepository(database)
	tokens := token.NewService(cfg.Secret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, revoked)

	authService := services.NewAuth(logger, repository, tokens)
	userService := services.NewUsers(logger, repository, mailer)
	catalogService := services.NewCatalog(logger, repository)
	cartService := services.NewCart(logger, repository, repository)
	reviewService := services.NewReviews(logger, repository, repository)

	authHandler := handlers.NewAuthHandler(authService, userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, reviewService)
	cartHandler := handlers.NewCartHandler(cartService, reviewService)
	userHandler := handlers.NewUserHandler(userService)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, tokens, authHandler, catalogHandler, cartHandler, userHandler)

	return r
}
