package queries

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// PageRequest is a 1-based page number plus page size.
type PageRequest struct {
	Page    int
	PerPage int
}

// Normalize clamps the request to page >= 1 and 1 <= per_page <= MaxPerPage.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

func (p PageRequest) Limit() int32  { return int32(p.PerPage) }
func (p PageRequest) Offset() int32 { return int32((p.Page - 1) * p.PerPage) }

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPagination(p PageRequest, total int64) Pagination {
	pages := 0
	if p.PerPage > 0 {
		pages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}
	return Pagination{Page: p.Page, PerPage: p.PerPage, Total: total, TotalPages: pages}
}
