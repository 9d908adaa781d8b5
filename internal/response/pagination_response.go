package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NewPagination clamps page and pageSize and describes the slice of total
// items they select. From and To are 1-based and both 0 for an empty page.
func NewPagination(page, pageSize, total int) *Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (total + pageSize - 1) / pageSize
	start, end := Bounds(page, pageSize, total)

	p := &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int64(totalPages),
		TotalItems: int64(total),
		HasMore:    end < total,
	}
	if end > start {
		p.From = start + 1
		p.To = end
	}
	return p
}

// Bounds returns the [start, end) indexes of the requested page. Both stay
// within [0, total] for any page, including ones whose offset overflows int.
func Bounds(page, pageSize, total int) (int, int) {
	if total <= 0 || pageSize <= 0 || page <= 0 || page-1 >= (total+pageSize-1)/pageSize {
		return total, total
	}
	start := (page - 1) * pageSize
	end := total
	if total-start > pageSize {
		end = start + pageSize
	}
	return start, end
}

// Window returns the offsets selected by p.
func (p *Pagination) Window() (int, int) {
	return Bounds(p.Page, p.PageSize, int(p.TotalItems))
}
