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

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Subscribe 订阅作者
// @Summary 订阅作者
// @Tags 订阅
// @Security BearerAuth
// @Produce json
// @Param id path int true "作者ID"
// @Success 201 {object} response.Response{data=dto.SubscriptionInfo}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/users/{id}/subscribe [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}
	authorID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的作者ID")
		return
	}

	info, err := h.subscriptionService.Subscribe(userID, authorID)
	if err != nil {
		h.handleSubscriptionError(c, err)
		return
	}

	response.Created(c, "订阅成功", info)
}

// Unsubscribe 取消订阅
// @Summary 取消订阅作者
// @Tags 订阅
// @Security BearerAuth
// @Produce json
// @Param id path int true "作者ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Router /api/users/{id}/subscribe [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}
	authorID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的作者ID")
		return
	}

	if err := h.subscriptionService.Unsubscribe(userID, authorID); err != nil {
		h.handleSubscriptionError(c, err)
		return
	}

	response.NoContent(c)
}

// ListSubscriptions 我的订阅列表
// @Summary 获取我订阅的作者列表
// @Tags 订阅
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} response.Response{data=dto.SubscriptionListData}
// @Router /api/users/me/subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}
	page, pageSize := parsePagination(c)

	data, err := h.subscriptionService.ListSubscriptions(userID, page, pageSize)
	if err != nil {
		h.handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

func (h *SubscriptionHandler) handleSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCannotSubscribeSelf):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadySubscribed):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrNotSubscribed):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Subscription operation failed", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
