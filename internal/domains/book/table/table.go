package table

import (
	"sort"
	"strings"

	"bookshelf-backend/internal/domains/book/model"
)

// SortOrder là chiều sắp xếp của một cột
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Column là cột có thể sort được
type Column string

const (
	ColumnName        Column = "name"
	ColumnAuthor      Column = "author"
	ColumnReleaseDate Column = "releaseDate"
)

// Controller giữ trạng thái sort/filter của bảng catalog.
// Danh sách gốc không bao giờ bị thay đổi, Apply luôn trả về bản copy.
type Controller struct {
	SortColumn Column
	SortOrder  SortOrder
	SearchTerm string
}

func NewController() *Controller {
	return &Controller{}
}

// Sort chọn cột sắp xếp. Click lại cùng cột thì đảo chiều,
// đổi sang cột khác thì reset về asc.
func (c *Controller) Sort(column Column) {
	if c.SortColumn == column {
		if c.SortOrder == OrderAsc {
			c.SortOrder = OrderDesc
		} else {
			c.SortOrder = OrderAsc
		}
		return
	}

	c.SortColumn = column
	c.SortOrder = OrderAsc
}

// Filter đặt search term, match không phân biệt hoa thường
// trên name hoặc id.
func (c *Controller) Filter(term string) {
	c.SearchTerm = term
}

// Reset xoá mọi trạng thái sort và filter
func (c *Controller) Reset() {
	c.SortColumn = ""
	c.SortOrder = ""
	c.SearchTerm = ""
}

// Apply trả về view hiện tại của danh sách: filter trước, sort sau.
// Slice đầu vào không bị mutate.
func (c *Controller) Apply(books []model.Book) []model.Book {
	result := c.filter(books)

	if c.SortColumn == "" {
		return result
	}

	less := c.lessFunc(result)
	if less != nil {
		sort.SliceStable(result, less)
	}

	return result
}

func (c *Controller) filter(books []model.Book) []model.Book {
	if c.SearchTerm == "" {
		out := make([]model.Book, len(books))
		copy(out, books)
		return out
	}

	term := strings.ToLower(c.SearchTerm)
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Name), term) ||
			strings.Contains(strings.ToLower(b.ID.String()), term) {
			out = append(out, b)
		}
	}

	return out
}

func (c *Controller) lessFunc(books []model.Book) func(i, j int) bool {
	var key func(b model.Book) string

	switch c.SortColumn {
	case ColumnName:
		key = func(b model.Book) string { return strings.ToLower(b.Name) }
	case ColumnAuthor:
		key = func(b model.Book) string { return strings.ToLower(b.Author) }
	case ColumnReleaseDate:
		key = func(b model.Book) string { return b.ReleaseDate }
	default:
		return nil
	}

	if c.SortOrder == OrderDesc {
		return func(i, j int) bool { return key(books[i]) > key(books[j]) }
	}
	return func(i, j int) bool { return key(books[i]) < key(books[j]) }
}
