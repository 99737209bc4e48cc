package v1

import (
	"fmt"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// cleanupConfirmation must be sent as "confirm" query parameter
// for all endpoints deleting more than one resource.
const cleanupConfirmation = "yes-please-delete-everything"

type QueryConfirm struct {
	Confirm string `form:"confirm"` // Must have the value 'yes-please-delete-everything'
}

// confirmed checks the confirmation query parameter.
func confirmed(c *gin.Context) error {
	var query QueryConfirm
	err := c.ShouldBindQuery(&query)
	if err != nil || query.Confirm != cleanupConfirmation {
		return errCleanupConfirmation
	}
	return nil
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}

// paginate returns the page of records described by offset and limit.
// A negative limit returns all records after the offset.
func paginate[T any](records []T, offset uint, limit int) ([]T, Pagination) {
	total := len(records)

	start := min(int(offset), total)
	end := total
	if limit >= 0 {
		end = min(start+limit, total)
	}

	page := make([]T, 0, end-start)
	page = append(page, records[start:end]...)

	return page, Pagination{
		Count:  len(page),
		Offset: offset,
		Limit:  limit,
		Total:  total,
	}
}

// link returns the absolute URL for the path.
func link(c *gin.Context, format string, args ...any) string {
	return c.GetString(string(httputil.ContextURL)) + fmt.Sprintf(format, args...)
}
