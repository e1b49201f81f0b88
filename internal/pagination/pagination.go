package pagination

// Page holds the derived pagination values for one listing request.
type Page struct {
	Skip            int64
	TotalPages      int
	CurrentPage     int
	HasNextPage     bool
	HasPreviousPage bool
}

// Skip converts a 1-based page and a limit into a query offset.
func Skip(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}

// New computes skip, total pages and navigation flags from the requested
// page/limit and the total match count. page >= 1 and limit >= 1 are enforced
// upstream by filter validation; page is never clamped here, so a page past
// the end simply yields an empty slice of items with both flags consistent.
func New(page, limit int, totalCount int64) Page {
	totalPages := 0
	if totalCount > 0 {
		totalPages = int((totalCount + int64(limit) - 1) / int64(limit))
	}

	return Page{
		Skip:            Skip(page, limit),
		TotalPages:      totalPages,
		CurrentPage:     page,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
