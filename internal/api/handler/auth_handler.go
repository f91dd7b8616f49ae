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

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register 用户注册
// @Summary 用户注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册请求"
// @Success 201 {object} response.Response{data=dto.UserInfo}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, "注册成功", user)
}

// Login 用户登录
// @Summary 用户登录（以邮箱为登录名）
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} response.Response{data=dto.TokenData}
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	data, err := h.authService.Login(&req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, "登录成功", data)
}

// Logout 登出
// @Summary 登出，注销当前令牌
// @Tags 认证
// @Security BearerAuth
// @Produce json
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetCurrentClaims(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		logger.Error("Logout failed", zap.Int64("user_id", claims.UserID), zap.Error(err))
		response.InternalError(c, "登出失败")
		return
	}

	response.NoContent(c)
}

// Me 获取当前用户信息
// @Summary 获取当前登录用户信息
// @Tags 认证
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	user, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, "获取成功", user)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNameExists), errors.Is(err, service.ErrEmailExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredential):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Auth operation failed", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
