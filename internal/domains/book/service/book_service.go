package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/logger"
)

const (
	catalogCacheKey = "books:catalog"
	bookCachePrefix = "book:"
	cacheTTL        = 5 * time.Minute
)

// TaskEnqueuer đẩy background job, implement bởi asynq client
type TaskEnqueuer interface {
	EnqueueProcessCover(ctx context.Context, bookID, imageURL string) error
}

// CoverRemover xoá thumbnails đã sinh, implement bởi MinIO storage
type CoverRemover interface {
	DeleteByPrefix(ctx context.Context, prefix string) error
}

type bookService struct {
	repo     book.Repository
	cache    cache.Cache
	enqueuer TaskEnqueuer
	covers   CoverRemover
}

func NewBookService(repo book.Repository, c cache.Cache, enqueuer TaskEnqueuer, covers CoverRemover) book.Service {
	return &bookService{repo: repo, cache: c, enqueuer: enqueuer, covers: covers}
}

func (s *bookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	// 1. Validate input
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &model.Book{
		ID:          uuid.New(),
		Name:        req.Name,
		Author:      req.Author,
		ReleaseDate: req.ReleaseDate,
		BookURL:     req.BookURL,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 2. Persist
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// 3. Invalidate list cache
	s.invalidate(ctx, catalogCacheKey)

	// 4. Enqueue thumbnail job, lỗi enqueue không làm fail request
	s.enqueueCover(ctx, b)

	logger.Info("[BOOK] Created", map[string]interface{}{"book_id": b.ID.String()})
	return b, nil
}

func (s *bookService) GetAll(ctx context.Context) ([]model.Book, error) {
	// Cache-aside: đọc cache trước, miss thì query DB rồi ghi lại
	var cached []model.Book
	found, err := s.cache.Get(ctx, catalogCacheKey, &cached)
	if err != nil {
		logger.Error("[BOOK] Cache get failed", err)
	}
	if found {
		return cached, nil
	}

	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, catalogCacheKey, books, cacheTTL); err != nil {
		logger.Error("[BOOK] Cache set failed", err)
	}

	return books, nil
}

func (s *bookService) GetByID(ctx context.Context, id string) (*model.Book, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrBookNotFound
	}

	key := bookCachePrefix + id
	var cached model.Book
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Error("[BOOK] Cache get failed", err)
	}
	if found {
		return &cached, nil
	}

	b, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, b, cacheTTL); err != nil {
		logger.Error("[BOOK] Cache set failed", err)
	}

	return b, nil
}

func (s *bookService) Update(ctx context.Context, req model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bookID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, model.ErrBookNotFound
	}

	existing, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	b := &model.Book{
		ID:          bookID,
		Name:        req.Name,
		Author:      req.Author,
		ReleaseDate: req.ReleaseDate,
		BookURL:     req.BookURL,
		ImageURL:    req.ImageURL,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.invalidate(ctx, catalogCacheKey, bookCachePrefix+req.ID)

	// Ảnh bìa đổi thì sinh lại thumbnail
	if existing.ImageURL != b.ImageURL {
		s.enqueueCover(ctx, b)
	}

	logger.Info("[BOOK] Updated", map[string]interface{}{"book_id": req.ID})
	return b, nil
}

func (s *bookService) Delete(ctx context.Context, id string) (string, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return "", model.ErrBookNotFound
	}

	if err := s.repo.Delete(ctx, bookID); err != nil {
		return "", err
	}

	s.invalidate(ctx, catalogCacheKey, bookCachePrefix+id)

	// Dọn thumbnails, lỗi storage không làm fail request
	if s.covers != nil {
		if err := s.covers.DeleteByPrefix(ctx, "covers/"+id+"/"); err != nil {
			logger.Error(fmt.Sprintf("[BOOK] Failed to remove covers for %s", id), err)
		}
	}

	logger.Info("[BOOK] Deleted", map[string]interface{}{"book_id": id})
	return id, nil
}

func (s *bookService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Error("[BOOK] Cache invalidation failed", err)
	}
}

func (s *bookService) enqueueCover(ctx context.Context, b *model.Book) {
	if s.enqueuer == nil {
		return
	}
	if err := s.enqueuer.EnqueueProcessCover(ctx, b.ID.String(), b.ImageURL); err != nil {
		logger.Error(fmt.Sprintf("[BOOK] Failed to enqueue cover job for %s", b.ID), err)
	}
}
