package handler

import (
	"errors"

	"kulina-go/internal/api/response"
	"kulina-go/internal/service"
	"kulina-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListIngredients 食材列表
// @Summary 食材列表，支持名称前缀过滤
// @Tags 目录
// @Produce json
// @Param name query string false "名称前缀"
// @Success 200 {object} response.Response{data=[]dto.IngredientInfo}
// @Router /api/ingredients [get]
func (h *CatalogHandler) ListIngredients(c *gin.Context) {
	items, err := h.catalogService.ListIngredients(c.Query("name"))
	if err != nil {
		logger.Error("List ingredients failed", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
		return
	}

	response.OK(c, "获取成功", items)
}

// GetIngredient 获取单个食材
// @Summary 获取食材详情
// @Tags 目录
// @Produce json
// @Param id path int true "食材ID"
// @Success 200 {object} response.Response{data=dto.IngredientInfo}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/ingredients/{id} [get]
func (h *CatalogHandler) GetIngredient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的食材ID")
		return
	}

	item, err := h.catalogService.GetIngredient(id)
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get ingredient failed", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
		return
	}

	response.OK(c, "获取成功", item)
}

// ListTags 标签列表
// @Summary 标签列表
// @Tags 目录
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.TagInfo}
// @Router /api/tags [get]
func (h *CatalogHandler) ListTags(c *gin.Context) {
	items, err := h.catalogService.ListTags()
	if err != nil {
		logger.Error("List tags failed", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
		return
	}

	response.OK(c, "获取成功", items)
}
