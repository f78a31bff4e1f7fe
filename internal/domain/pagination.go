package domain

// Pagination bounds a listing. PageSize 0 disables pagination: the whole
// result set is returned as a single page.
type Pagination struct {
	Page     int `json:"page" query:"page"`
	PageSize int `json:"page_size" query:"page_size"`
}

func DefaultPagination() Pagination {
	return Pagination{Page: 1, PageSize: 20}
}

func (p Pagination) Validate() error {
	if p.Page < 1 {
		return ValidationError("page must be greater than or equal to 1")
	}
	if p.PageSize < 0 {
		return ValidationError("page_size must be greater than or equal to 0")
	}
	return nil
}

func (p Pagination) IsDisabled() bool {
	return p.PageSize == 0
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// Sorting names a column from the resource's allow-list and a direction.
type Sorting struct {
	SortBy string
	Order  SortOrder
}

// ParseSorting validates sort parameters against the fields a resource
// supports. An empty sortBy means no explicit ordering.
func ParseSorting(sortBy, sortOrder string, allowed ...string) (*Sorting, error) {
	if sortBy == "" {
		return nil, nil
	}

	valid := false
	for _, field := range allowed {
		if sortBy == field {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ValidationError("unsupported sort_by field %q", sortBy)
	}

	order := SortOrder(sortOrder)
	if sortOrder == "" {
		order = SortOrderAsc
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return nil, ValidationError("sort_order must be either asc or desc")
	}

	return &Sorting{SortBy: sortBy, Order: order}, nil
}

// Page carries one page of entries together with the pre-limit match count.
// When pagination was disabled the stored PageSize equals Count.
type Page[T any] struct {
	Pagination Pagination
	Count      int64
	Entries    []T
}

func (p Page[T]) TotalPages() int {
	if p.Pagination.PageSize == 0 {
		return 0
	}
	return int((p.Count + int64(p.Pagination.PageSize) - 1) / int64(p.Pagination.PageSize))
}

// ListResponse is the envelope every listing endpoint returns.
type ListResponse[T any] struct {
	NumOfPages int   `json:"num_of_pages"`
	Page       int   `json:"page"`
	Total      int64 `json:"total"`
	Result     []T   `json:"result"`
}

func NewListResponse[T any](page Page[T]) ListResponse[T] {
	entries := page.Entries
	if entries == nil {
		entries = []T{}
	}
	return ListResponse[T]{
		NumOfPages: page.TotalPages(),
		Page:       page.Pagination.Page,
		Total:      page.Count,
		Result:     entries,
	}
}
