package storage

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	v := NewFileValidator()

	t.Run("accepts png", func(t *testing.T) {
		assert.NoError(t, v.ValidateImage(encodePNG(t, 10, 10)))
	})

	t.Run("accepts jpeg", func(t *testing.T) {
		assert.NoError(t, v.ValidateImage(encodeJPEG(t, 10, 10)))
	})

	t.Run("rejects non-image bytes", func(t *testing.T) {
		assert.Error(t, v.ValidateImage([]byte("hello world")))
	})

	t.Run("rejects oversized image", func(t *testing.T) {
		small := &FileValidator{MaxImageSize: 10, MaxDocumentSize: 10}
		assert.Error(t, small.ValidateImage(encodePNG(t, 10, 10)))
	})
}

func TestValidateDocument(t *testing.T) {
	v := NewFileValidator()

	t.Run("accepts pdf magic bytes", func(t *testing.T) {
		assert.NoError(t, v.ValidateDocument([]byte("%PDF-1.7 content")))
	})

	t.Run("rejects non-pdf", func(t *testing.T) {
		assert.Error(t, v.ValidateDocument([]byte("plain text file")))
	})

	t.Run("rejects truncated file", func(t *testing.T) {
		assert.Error(t, v.ValidateDocument([]byte("%PD")))
	})
}

func TestImageContentType(t *testing.T) {
	v := NewFileValidator()

	ct, err := v.ImageContentType(encodePNG(t, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	ct, err = v.ImageContentType(encodeJPEG(t, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)

	_, err = v.ImageContentType([]byte("not an image"))
	assert.Error(t, err)
}

func TestThumbnails(t *testing.T) {
	v := NewFileValidator()

	variants, err := v.Thumbnails(encodePNG(t, 2000, 1000))
	require.NoError(t, err)
	require.Len(t, variants, 3)

	for _, name := range []string{"large", "medium", "thumbnail"} {
		data, ok := variants[name]
		require.True(t, ok, "missing variant %s", name)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.LessOrEqual(t, cfg.Width, 1200)
	}

	// Fit giữ tỉ lệ: variant lớn nhất co về 1200x600
	cfg, _, err := image.DecodeConfig(bytes.NewReader(variants["large"]))
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 600, cfg.Height)

	_, err = v.Thumbnails([]byte("not an image"))
	assert.Error(t, err)
}
