package entity

const (
	// DefaultPageLimit is used when a listing request carries no limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps the page size of order listings.
	MaxPageLimit = 100
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination builds the page metadata for total rows split by limit.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// ClampPage normalises page and limit: page >= 1, 1 <= limit <= maxLimit.
func ClampPage(page, limit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// Offset returns the row offset of page for the given limit.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
