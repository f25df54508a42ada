package export

// Layout mô tả khổ trang xuất, đơn vị là hàng Excel
type Layout struct {
	// PageHeight là tổng số hàng của một trang
	PageHeight int
	// BottomMargin là số hàng chừa ở đáy trang
	BottomMargin int
	// BlockHeight là số hàng một block sách chiếm (ảnh bìa + metadata)
	BlockHeight int
}

// DefaultLayout xấp xỉ khổ A4 dọc với ảnh bìa cỡ thumbnail
func DefaultLayout() Layout {
	return Layout{
		PageHeight:   48,
		BottomMargin: 2,
		BlockHeight:  9,
	}
}

// usableHeight là phần trang thực sự chứa được nội dung
func (l Layout) usableHeight() int {
	return l.PageHeight - l.BottomMargin
}

// Paginate chia items thành các trang. Một block không bao giờ bị cắt
// đôi giữa hai trang: nếu block tiếp theo không còn chỗ thì toàn bộ
// block chuyển sang trang mới. Danh sách rỗng trả về đúng một trang rỗng.
func (l Layout) Paginate(total int) [][]int {
	if total == 0 {
		return [][]int{{}}
	}

	perPage := l.usableHeight() / l.BlockHeight
	if perPage < 1 {
		perPage = 1
	}

	pages := make([][]int, 0, (total+perPage-1)/perPage)
	for start := 0; start < total; start += perPage {
		end := start + perPage
		if end > total {
			end = total
		}

		page := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			page = append(page, i)
		}
		pages = append(pages, page)
	}

	return pages
}
