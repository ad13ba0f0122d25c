package domain

// Pagination describes one page of a filtered collection.
// Page is 1-indexed; Pages is ceiling(total/limit).
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func NewPagination(total, page, limit int) Pagination {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Pages: (total + limit - 1) / limit,
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
