package shared

// DefaultPageSize is applied when a filter does not specify one
const DefaultPageSize = 10

// Filter represents query filter options. Pages are zero-based: page k with
// size L skips k*L rows.
type Filter struct {
	Page     int
	PageSize int
	Search   string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     0,
		PageSize: DefaultPageSize,
	}
}

// Normalize validates pagination parameters and fills in defaults.
// Negative values are rejected; a zero page size falls back to the default.
func (f Filter) Normalize() (Filter, error) {
	if f.Page < 0 {
		return f, NewDomainError("INVALID_INPUT", "Page must not be negative")
	}
	if f.PageSize < 0 {
		return f, NewDomainError("INVALID_INPUT", "Page size must not be negative")
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	return f, nil
}

// Offset returns the number of rows to skip
func (f Filter) Offset() int {
	return f.Page * f.PageSize
}

// Paginated represents a page of results together with the total number of
// rows matching the filter before pagination.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
