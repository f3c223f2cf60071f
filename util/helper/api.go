package helper_util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// GetPageParams reads page/size query parameters with sane bounds.
func GetPageParams(c *gin.Context) (page int, size int, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return 0, 0, fmt.Errorf("page must be a non-negative integer")
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size <= 0 || size > maxPageSize {
		return 0, 0, fmt.Errorf("size must be between 1 and %d", maxPageSize)
	}
	return page, size, nil
}

// ParseDate parses a YYYY-MM-DD date value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}
