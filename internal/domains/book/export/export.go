package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/pkg/logger"
)

const (
	imageFetchTimeout = 10 * time.Second
	maxImageSize      = 5 * 1024 * 1024 // 5MB
)

// ImageFetcher tải ảnh bìa từ URL, inject được để test
type ImageFetcher func(ctx context.Context, url string) ([]byte, error)

// Service sinh workbook Excel từ catalog, mỗi trang logic một sheet
type Service struct {
	layout Layout
	fetch  ImageFetcher
}

func NewService(layout Layout, fetch ImageFetcher) *Service {
	if fetch == nil {
		fetch = fetchImage
	}
	return &Service{layout: layout, fetch: fetch}
}

// Export render toàn bộ danh sách sách thành một workbook.
// Ảnh lỗi thì log và bỏ qua, block vẫn hiển thị metadata.
func (s *Service) Export(ctx context.Context, books []model.Book) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	pages := s.layout.Paginate(len(books))

	for pageIdx, page := range pages {
		sheet := fmt.Sprintf("Page %d", pageIdx+1)
		if pageIdx == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("failed to create sheet: %w", err)
			}
		}

		if err := s.renderHeader(f, sheet); err != nil {
			return nil, err
		}

		for slot, itemIdx := range page {
			if err := s.renderBlock(ctx, f, sheet, slot, &books[itemIdx]); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *Service) renderHeader(f *excelize.File, sheet string) error {
	if err := f.SetCellValue(sheet, "A1", "Book Catalog"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellValue(sheet, "E1",
		fmt.Sprintf("Exported %s", time.Now().Format("2006-01-02"))); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "E", 32); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	return nil
}

// renderBlock ghi một block sách: ảnh bìa cột A, metadata cột B trở đi
func (s *Service) renderBlock(ctx context.Context, f *excelize.File, sheet string, slot int, b *model.Book) error {
	// Header chiếm 2 hàng đầu
	top := 3 + slot*s.layout.BlockHeight

	cells := map[string]interface{}{
		fmt.Sprintf("B%d", top):   b.Name,
		fmt.Sprintf("B%d", top+1): b.Author,
		fmt.Sprintf("B%d", top+2): b.ReleaseDate,
		fmt.Sprintf("B%d", top+3): b.BookURL,
	}
	for cell, value := range cells {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write block cell: %w", err)
		}
	}

	data, err := s.fetch(ctx, b.ImageURL)
	if err != nil {
		logger.Error(fmt.Sprintf("[EXPORT] Skipping cover for %s", b.ID), err)
		return nil
	}

	anchor := fmt.Sprintf("A%d", top)
	if err := f.AddPictureFromBytes(sheet, anchor, &excelize.Picture{
		Extension: imageExtension(b.ImageURL),
		File:      data,
		Format:    &excelize.GraphicOptions{AutoFit: true},
	}); err != nil {
		logger.Error(fmt.Sprintf("[EXPORT] Failed to embed cover for %s", b.ID), err)
	}

	return nil
}

func imageExtension(url string) string {
	lower := strings.ToLower(url)
	if strings.Contains(lower, ".png") {
		return ".png"
	}
	return ".jpg"
}

func fetchImage(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, imageFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected image status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageSize)
	}

	return data, nil
}
