package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/api/middleware"
	"kulina-go/internal/api/response"
	"kulina-go/internal/repository"
	"kulina-go/internal/service"
	"kulina-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecipeHandler struct {
	recipeService    *service.RecipeService
	shortLinkService *service.ShortLinkService
}

func NewRecipeHandler(recipeService *service.RecipeService, shortLinkService *service.ShortLinkService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, shortLinkService: shortLinkService}
}

// Create 创建菜谱
// @Summary 创建菜谱
// @Tags 菜谱
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RecipeWriteRequest true "菜谱内容"
// @Success 201 {object} response.Response{data=dto.RecipeInfo}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	var req dto.RecipeWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	info, err := h.recipeService.Create(userID, &req)
	if err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.Created(c, "创建成功", info)
}

// Update 更新菜谱
// @Summary 更新菜谱（仅作者），食材集合整体替换
// @Tags 菜谱
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "菜谱ID"
// @Param request body dto.RecipeWriteRequest true "菜谱内容"
// @Success 200 {object} response.Response{data=dto.RecipeInfo}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/recipes/{id} [put]
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	var req dto.RecipeWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	info, err := h.recipeService.Update(userID, recipeID, &req)
	if err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.OK(c, "更新成功", info)
}

// Delete 删除菜谱
// @Summary 删除菜谱（仅作者）
// @Tags 菜谱
// @Security BearerAuth
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 204
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	if err := h.recipeService.Delete(userID, recipeID); err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.NoContent(c)
}

// Get 获取菜谱详情
// @Summary 获取菜谱详情
// @Tags 菜谱
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response{data=dto.RecipeInfo}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/recipes/{id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	info, err := h.recipeService.GetDetail(recipeID, currentUserIDPtr(c))
	if err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// List 菜谱列表
// @Summary 菜谱列表（分页、按作者/标签/收藏/购物车筛选）
// @Tags 菜谱
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param author query int false "作者ID"
// @Param tag query string false "标签别名"
// @Param is_favorited query bool false "仅我收藏的"
// @Param is_in_shopping_cart query bool false "仅我购物车中的"
// @Success 200 {object} response.Response{data=dto.RecipeListData}
// @Router /api/recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	viewerID := currentUserIDPtr(c)

	filter := &repository.RecipeFilter{TagSlug: c.Query("tag")}
	if authorStr := c.Query("author"); authorStr != "" {
		authorID, err := strconv.ParseInt(authorStr, 10, 64)
		if err != nil {
			response.BadRequest(c, "无效的作者ID")
			return
		}
		filter.AuthorID = &authorID
	}
	// 收藏/购物车筛选只对已登录用户生效
	if viewerID != nil {
		if c.Query("is_favorited") == "true" {
			filter.FavoritedBy = viewerID
		}
		if c.Query("is_in_shopping_cart") == "true" {
			filter.InShoppingCart = viewerID
		}
	}

	data, err := h.recipeService.List(page, pageSize, filter, viewerID)
	if err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

// Export 导出我的菜谱
// @Summary 导出当前用户的全部菜谱为 CSV
// @Tags 菜谱
// @Security BearerAuth
// @Produce text/csv
// @Success 200 {string} string "CSV 文件"
// @Router /api/recipes/export [get]
func (h *RecipeHandler) Export(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	data, err := h.recipeService.ExportCSV(userID)
	if err != nil {
		h.handleRecipeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="my_recipes.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// GetLink 获取菜谱短链接
// @Summary 获取菜谱短链接，不存在则创建
// @Tags 菜谱
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response{data=dto.ShortLinkData}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/recipes/{id}/get-link [post]
func (h *RecipeHandler) GetLink(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	data, err := h.shortLinkService.GetOrCreateLink(recipeID)
	if err != nil {
		h.handleRecipeError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

// Resolve 短链接跳转
// @Summary 短码跳转到菜谱页面
// @Tags 菜谱
// @Param code path string true "短码"
// @Success 302
// @Failure 404 {object} response.ErrorResponse
// @Router /s/{code} [get]
func (h *RecipeHandler) Resolve(c *gin.Context) {
	code := c.Param("code")

	recipeID, err := h.shortLinkService.Resolve(code)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Resolve short link failed", zap.String("code", code), zap.Error(err))
		response.InternalError(c, "服务器内部错误")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/recipes/%d", recipeID))
}

func (h *RecipeHandler) handleRecipeError(c *gin.Context, err error) {
	var validationErrs service.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		response.ValidationFailed(c, "菜谱校验失败", validationErrs)
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotRecipeAuthor):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrIngredientNotFound), errors.Is(err, service.ErrTagNotFound):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrCodeSpaceExhausted):
		logger.Error("Short code generation exhausted", zap.Error(err))
		response.InternalError(c, "短链接生成失败")
	default:
		logger.Error("Recipe operation failed", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
