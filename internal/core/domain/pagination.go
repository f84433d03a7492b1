package domain

// PaginationInfo is derived from a total count, never stored.
type PaginationInfo struct {
	Page        int
	PageSize    int
	TotalItems  int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// NewPaginationInfo computes page metadata. An empty result set still has
// one (empty) page, so TotalPages is never zero.
func NewPaginationInfo(page, pageSize, totalItems int) PaginationInfo {
	totalPages := 1
	if totalItems > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return PaginationInfo{
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
