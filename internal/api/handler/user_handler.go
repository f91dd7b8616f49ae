package handler

import (
	"errors"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/api/middleware"
	"kulina-go/internal/api/response"
	"kulina-go/internal/service"
	"kulina-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser 获取用户主页
// @Summary 获取用户主页信息
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	info, err := h.userService.GetUser(userID, currentUserIDPtr(c))
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// SetAvatar 设置头像
// @Summary 设置当前用户头像
// @Tags 用户
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetAvatarRequest true "头像请求"
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/users/me/avatar [put]
func (h *UserHandler) SetAvatar(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	var req dto.SetAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	info, err := h.userService.SetAvatar(userID, req.Avatar)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, "头像已更新", info)
}

// DeleteAvatar 删除头像
// @Summary 删除当前用户头像
// @Tags 用户
// @Security BearerAuth
// @Produce json
// @Success 204
// @Router /api/users/me/avatar [delete]
func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	if err := h.userService.DeleteAvatar(userID); err != nil {
		h.handleUserError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
