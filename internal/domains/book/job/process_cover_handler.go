package job

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hibiken/asynq"

	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/internal/shared"
	"bookshelf-backend/pkg/logger"
)

const (
	coverDownloadTimeout = 30 * time.Second
	maxCoverSize         = 5 * 1024 * 1024 // 5MB
)

// ProcessCoverHandler tải ảnh bìa gốc, sinh thumbnail và đẩy lên MinIO
type ProcessCoverHandler struct {
	storage   *storage.MinIOStorage
	validator *storage.FileValidator
}

func NewProcessCoverHandler(st *storage.MinIOStorage, validator *storage.FileValidator) *ProcessCoverHandler {
	return &ProcessCoverHandler{storage: st, validator: validator}
}

func (h *ProcessCoverHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.ProcessBookCoverPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// Payload hỏng thì retry cũng vô ích
		return fmt.Errorf("failed to unmarshal cover payload: %v: %w", err, asynq.SkipRetry)
	}

	logger.Info("[JOB] Processing book cover", map[string]interface{}{
		"book_id": payload.BookID,
	})

	// 1. Download ảnh gốc
	data, err := downloadCover(ctx, payload.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to download cover: %w", err)
	}

	// 2. Validate format
	if err := h.validator.ValidateImage(data); err != nil {
		return fmt.Errorf("invalid cover image: %v: %w", err, asynq.SkipRetry)
	}

	// 3. Sinh thumbnails (large/medium/thumbnail)
	thumbnails, err := h.validator.Thumbnails(data)
	if err != nil {
		return fmt.Errorf("failed to generate thumbnails: %w", err)
	}

	// 4. Upload từng size lên MinIO
	for size, thumb := range thumbnails {
		key := fmt.Sprintf("covers/%s/%s.jpg", payload.BookID, size)
		url, err := h.storage.Upload(ctx, key, thumb, "image/jpeg")
		if err != nil {
			return fmt.Errorf("failed to upload %s thumbnail: %w", size, err)
		}
		logger.Debug(fmt.Sprintf("[JOB] Uploaded %s", url))
	}

	logger.Info("[JOB] Book cover processed", map[string]interface{}{
		"book_id": payload.BookID,
		"sizes":   len(thumbnails),
	})
	return nil
}

func downloadCover(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, coverDownloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCoverSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxCoverSize {
		return nil, fmt.Errorf("cover exceeds %d bytes", maxCoverSize)
	}

	return data, nil
}
