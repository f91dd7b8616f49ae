package handler

import (
	"strconv"

	"kulina-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// parsePagination 解析分页参数，越界时回退默认值
func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = defaultPage
	}

	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// parseIDParam 解析路径中的整型 ID
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// currentUserIDPtr 获取当前用户 ID 指针，匿名请求返回 nil
func currentUserIDPtr(c *gin.Context) *int64 {
	if id, ok := middleware.GetCurrentUserID(c); ok {
		return &id
	}
	return nil
}
