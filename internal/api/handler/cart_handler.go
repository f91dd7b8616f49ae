package handler

import (
	"errors"
	"net/http"

	"kulina-go/internal/api/middleware"
	"kulina-go/internal/api/response"
	"kulina-go/internal/service"
	"kulina-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartHandler struct {
	cartService *service.CartService
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddToCart 加入购物车
// @Summary 将菜谱加入购物车
// @Tags 购物车
// @Security BearerAuth
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 201 {object} response.Response{data=dto.RecipeMinified}
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/recipes/{id}/shopping_cart [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
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

	item, err := h.cartService.AddToCart(userID, recipeID)
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	response.Created(c, "已加入购物车", item)
}

// RemoveFromCart 从购物车移除
// @Summary 将菜谱从购物车移除
// @Tags 购物车
// @Security BearerAuth
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Router /api/recipes/{id}/shopping_cart [delete]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
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

	if err := h.cartService.RemoveFromCart(userID, recipeID); err != nil {
		h.handleCartError(c, err)
		return
	}

	response.NoContent(c)
}

// ListMyCart 我的购物车列表
// @Summary 获取我的购物车菜谱列表
// @Tags 购物车
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} response.Response{data=dto.RecipeListData}
// @Router /api/users/me/shopping_cart [get]
func (h *CartHandler) ListMyCart(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}
	page, pageSize := parsePagination(c)

	data, err := h.cartService.ListMyCart(userID, page, pageSize)
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

// DownloadShoppingList 下载购物清单
// @Summary 下载聚合后的购物清单文本
// @Tags 购物车
// @Security BearerAuth
// @Produce text/plain
// @Success 200 {string} string "清单文本"
// @Router /api/users/me/shopping_cart/download [get]
func (h *CartHandler) DownloadShoppingList(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	list, err := h.cartService.BuildShoppingList(userID)
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(list))
}

func (h *CartHandler) handleCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyInCart):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrNotInCart):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Shopping cart operation failed", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
