package utils

import "strconv"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ParsePagination parses page and page_size query values, falling back to the
// first page of defaultPageSize and capping page_size
func ParsePagination(pageStr, pageSizeStr string) (page, pageSize int) {
	page, _ = strconv.Atoi(pageStr)
	pageSize, _ = strconv.Atoi(pageSizeStr)
	return ValidateAndNormalizePagination(page, pageSize)
}

// ValidateAndNormalizePagination validates and normalizes pagination parameters
func ValidateAndNormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// CalculateOffset calculates the offset for database queries
func CalculateOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}
