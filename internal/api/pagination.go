package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 100

// paginationParams reads the skip/limit query parameters the mobile and
// admin clients send on every list endpoint.
func paginationParams(c *gin.Context) (skip, limit int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit <= 0 || limit > defaultPageSize {
		limit = defaultPageSize
	}

	return skip, limit
}
