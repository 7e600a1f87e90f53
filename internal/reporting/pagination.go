package reporting

// Pagination describes the position of one page within the full filtered
// population. Total and LastPage always reflect the whole population, even
// when the requested page lies beyond it.
type Pagination struct {
	CurrentPage int
	PageSize    int
	Total       int
	LastPage    int
}

// NewPagination computes page metadata for a total row count. LastPage is
// never below 1 so an empty population still has a well-defined last page.
func NewPagination(page, pageSize, total int) Pagination {
	last := (total + pageSize - 1) / pageSize
	if last < 1 {
		last = 1
	}
	return Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		Total:       total,
		LastPage:    last,
	}
}

// Offset returns the SQL offset for the current page (1-based paging).
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.PageSize
}
