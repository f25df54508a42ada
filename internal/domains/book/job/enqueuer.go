package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"bookshelf-backend/internal/shared"
	"bookshelf-backend/pkg/logger"
)

// Enqueuer đẩy job xử lý ảnh bìa vào Redis qua asynq
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueProcessCover(ctx context.Context, bookID, imageURL string) error {
	payload, err := json.Marshal(shared.ProcessBookCoverPayload{
		BookID:   bookID,
		ImageURL: imageURL,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cover payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeProcessBookCover, payload)

	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueBook),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue cover task: %w", err)
	}

	logger.Debug(fmt.Sprintf("[JOB] Enqueued %s id=%s", shared.TypeProcessBookCover, info.ID))
	return nil
}
