package shared

// Task types cho asynq background jobs
const (
	TypeProcessBookCover = "book:process_cover"
)

// Queue names
const (
	QueueBook    = "book"
	QueueDefault = "default"
)

// ProcessBookCoverPayload là payload của job sinh thumbnail cho ảnh bìa
type ProcessBookCoverPayload struct {
	BookID   string `json:"book_id"`
	ImageURL string `json:"image_url"`
}
