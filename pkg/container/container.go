package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/domains/book/export"
	bookhandler "bookshelf-backend/internal/domains/book/handler"
	"bookshelf-backend/internal/domains/book/job"
	bookrepo "bookshelf-backend/internal/domains/book/repository"
	bookservice "bookshelf-backend/internal/domains/book/service"
	uploadhandler "bookshelf-backend/internal/domains/upload/handler"
	userhandler "bookshelf-backend/internal/domains/user/handler"
	userrepo "bookshelf-backend/internal/domains/user/repository"
	userservice "bookshelf-backend/internal/domains/user/service"
	infracache "bookshelf-backend/internal/infrastructure/cache"
	"bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/jwt"
)

// ============================================================
// Container chứa toàn bộ dependencies của application
// Khởi tạo theo thứ tự: config → infra → repos → services → handlers
// ============================================================
type Container struct {
	Config *config.Config

	// Infrastructure
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	Validator   *storage.FileValidator
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client

	// Handlers
	UserHandler   *userhandler.UserHandler
	BookHandler   *bookhandler.BookHandler
	UploadHandler *uploadhandler.UploadHandler
}

func New() (*Container, error) {
	c := &Container{}

	// ============================================================
	// 1. CONFIG
	// ============================================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (env=%s)", cfg.App.Environment)

	// ============================================================
	// 2. DATABASE (PostgreSQL với pgxpool)
	// ============================================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	log.Println("✅ Database connected")

	// ============================================================
	// 3. CACHE (Redis)
	// ============================================================
	c.Cache = infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	log.Println("✅ Redis connected")

	// ============================================================
	// 4. OBJECT STORAGE (MinIO)
	// ============================================================
	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio: %w", err)
	}
	c.Validator = storage.NewFileValidator()
	log.Println("✅ MinIO connected")

	// ============================================================
	// 5. JWT + BACKGROUND JOBS
	// ============================================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// ============================================================
	// 6. DOMAINS (repository → service → handler)
	// ============================================================
	userRepository := userrepo.NewUserRepository(c.DB)
	userService := userservice.NewUserService(userRepository, c.JWTManager)
	c.UserHandler = userhandler.NewUserHandler(userService)

	bookRepository := bookrepo.NewBookRepository(c.DB)
	enqueuer := job.NewEnqueuer(c.AsynqClient)
	bookService := bookservice.NewBookService(bookRepository, c.Cache, enqueuer, c.Storage)
	exporter := export.NewService(export.DefaultLayout(), nil)
	c.BookHandler = bookhandler.NewBookHandler(bookService, exporter)

	c.UploadHandler = uploadhandler.NewUploadHandler(c.Storage, c.Validator)

	log.Println("✅ Container initialized")
	return c, nil
}

// Cleanup đóng các connection theo thứ tự ngược lại
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️ Failed to close asynq client: %v", err)
		}
	}
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}
	log.Println("✅ Container cleaned up")
}
