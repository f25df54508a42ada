package main

import (
	"log"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/domains/book/job"
	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/internal/shared"
	"bookshelf-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger.Init(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		log.Fatalf("❌ Failed to init minio: %v", err)
	}

	wCfg := loadWorkerConfig()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     wCfg.RedisHost,
			Password: wCfg.RedisPassword,
			DB:       wCfg.RedisDB,
		},
		asynq.Config{
			Concurrency: wCfg.Concurrency,
			Queues: map[string]int{
				shared.QueueBook:    6,
				shared.QueueDefault: 4,
			},
		},
	)

	coverHandler := job.NewProcessCoverHandler(minioStorage, storage.NewFileValidator())

	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeProcessBookCover, coverHandler.ProcessTask)

	log.Printf("🚀 Worker starting (concurrency=%d)", wCfg.Concurrency)
	if err := srv.Run(mux); err != nil {
		log.Fatalf("❌ Worker failed: %v", err)
	}
}
