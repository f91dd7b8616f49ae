package handler

import (
	"errors"

	"kulina-go/internal/api/middleware"
	"kulina-go/internal/api/response"
	"kulina-go/internal/service"
	"kulina-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Favorite 收藏菜谱
// @Summary 收藏菜谱
// @Tags 收藏
// @Security BearerAuth
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 201 {object} response.Response{data=dto.RecipeMinified}
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/recipes/{id}/favorite [post]
func (h *FavoriteHandler) Favorite(c *gin.Context) {
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

	item, err := h.favoriteService.Favorite(userID, recipeID)
	if err != nil {
		h.handleFavoriteError(c, err)
		return
	}

	response.Created(c, "收藏成功", item)
}

// Unfavorite 取消收藏
// @Summary 取消收藏菜谱
// @Tags 收藏
// @Security BearerAuth
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Router /api/recipes/{id}/favorite [delete]
func (h *FavoriteHandler) Unfavorite(c *gin.Context) {
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

	if err := h.favoriteService.Unfavorite(userID, recipeID); err != nil {
		h.handleFavoriteError(c, err)
		return
	}

	response.NoContent(c)
}

// ListMyFavorites 我的收藏列表
// @Summary 获取我收藏的菜谱列表
// @Tags 收藏
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} response.Response{data=dto.RecipeListData}
// @Router /api/users/me/favorites [get]
func (h *FavoriteHandler) ListMyFavorites(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}
	page, pageSize := parsePagination(c)

	data, err := h.favoriteService.ListMyFavorites(userID, page, pageSize)
	if err != nil {
		h.handleFavoriteError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

func (h *FavoriteHandler) handleFavoriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyFavorited):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrNotFavorited):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Favorite operation failed", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
