package models

// Pagination defaults.
const (
	DefaultPage   = 1
	DefaultLimit  = 10
	DefaultSortBy = "createdAt"
)

// Sort orders.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListFilter holds the common parameters of list endpoints. It is read from
// a JSON body or from the query string.
type ListFilter struct {
	Search    string `json:"search" form:"search" example:"license"`
	SortBy    string `json:"sortBy" form:"sortBy" example:"createdAt"`
	SortOrder string `json:"sortOrder" form:"sortOrder" binding:"omitempty,oneof=asc desc" example:"desc"`
	Page      int    `json:"page" form:"page" binding:"omitempty,min=1" example:"1"`
	Limit     int    `json:"limit" form:"limit" binding:"omitempty,min=1" example:"10"`
}

// Normalize fills defaults for unset fields.
func (f *ListFilter) Normalize() {
	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy
	}
	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
}

// Skip returns the number of documents before the requested page.
func (f ListFilter) Skip() int64 {
	return int64(f.Page-1) * int64(f.Limit)
}

// ListResult is one page of a list endpoint.
type ListResult[T any] struct {
	Total int64 `json:"total" example:"42"`
	Page  int   `json:"page" example:"1"`
	Limit int   `json:"limit" example:"10"`
	Data  []T   `json:"data"`
}
