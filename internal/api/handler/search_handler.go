package handler

import (
	"kulina-go/internal/api/dto"
	"kulina-go/internal/api/response"
	"kulina-go/internal/service"
	"kulina-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchRecipes 搜索菜谱
// @Summary 按关键字搜索菜谱
// @Tags 搜索
// @Produce json
// @Param q query string true "关键字"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} response.Response{data=dto.SearchRecipeData}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/search/recipes [get]
func (h *SearchHandler) SearchRecipes(c *gin.Context) {
	var req dto.SearchRecipeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	data, err := h.searchService.SearchRecipes(c.Request.Context(), &req, currentUserIDPtr(c))
	if err != nil {
		logger.Error("Recipe search failed", zap.String("keyword", req.Keyword), zap.Error(err))
		response.InternalError(c, "搜索失败")
		return
	}

	response.OK(c, "搜索成功", data)
}
