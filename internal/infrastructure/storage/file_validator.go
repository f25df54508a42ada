package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// FileValidator kiểm tra uploads trước khi đẩy lên object storage
type FileValidator struct {
	MaxImageSize    int64 // bytes (default: 5MB)
	MaxDocumentSize int64 // bytes (default: 20MB)
}

func NewFileValidator() *FileValidator {
	return &FileValidator{
		MaxImageSize:    5 * 1024 * 1024,  // 5MB
		MaxDocumentSize: 20 * 1024 * 1024, // 20MB
	}
}

// ValidateImage - check JPEG/PNG, throw err nếu file > max size
func (v *FileValidator) ValidateImage(data []byte) error {
	if int64(len(data)) > v.MaxImageSize {
		return fmt.Errorf("image exceeds %dMB", v.MaxImageSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// ValidateDocument - check PDF magic bytes và size cap
func (v *FileValidator) ValidateDocument(data []byte) error {
	if int64(len(data)) > v.MaxDocumentSize {
		return fmt.Errorf("document exceeds %dMB", v.MaxDocumentSize/(1024*1024))
	}
	if len(data) < 5 || !bytes.HasPrefix(data, []byte("%PDF-")) {
		return fmt.Errorf("document must be a PDF file")
	}
	return nil
}

// ImageContentType trả về content type từ decoded format ("image/jpeg"...)
func (v *FileValidator) ImageContentType(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("not an image: %w", err)
	}
	return "image/" + format, nil
}

// Thumbnails trả về map[variant][]byte: resize → enc JPEG chất lượng 90
func (v *FileValidator) Thumbnails(data []byte) (map[string][]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	vs := map[string]int{"large": 1200, "medium": 600, "thumbnail": 300}
	variants := map[string][]byte{}
	for name, size := range vs {
		resized := imaging.Fit(img, size, size, imaging.Lanczos)
		b := new(bytes.Buffer)
		if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
			return nil, fmt.Errorf("cannot encode %s: %w", name, err)
		}
		variants[name] = b.Bytes()
	}
	return variants, nil
}
