package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"

	"library-backend/internal/graph"

	author "library-backend/internal/domains/author"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"
	book "library-backend/internal/domains/book"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	user "library-backend/internal/domains/user"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"
)

// Container holds every dependency of the application; it is the root of
// the dependency graph. All components are singletons for the app lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	UserRepo   user.Repository
	AuthorRepo author.Repository
	BookRepo   book.Repository

	// Services
	UserService   user.Service
	AuthorService author.Service
	BookService   book.Service

	// API
	GraphHandler http.Handler
}

// NewContainer initializes all dependencies in order:
// config -> infrastructure -> repositories -> services -> graph handler.
// Any failure aborts startup.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	appCache := cache.NewRedisCache(redisClient.Client)

	jwtManager := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	c := &Container{
		Config:     cfg,
		DB:         db,
		Redis:      redisClient,
		Cache:      appCache,
		JWTManager: jwtManager,
	}

	// Repositories
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool, appCache)

	// Services
	c.UserService = userService.NewService(c.UserRepo, jwtManager)
	c.AuthorService = authorService.NewService(c.AuthorRepo)
	c.BookService = bookService.NewService(c.BookRepo, c.AuthorService)

	// GraphQL handler (panics on schema/resolver mismatch, by way of
	// MustParseSchema, before the server accepts traffic)
	c.GraphHandler = graph.NewHandler(graph.NewResolver(c.UserService, c.AuthorService, c.BookService))

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
