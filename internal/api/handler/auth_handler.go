package handler

import (
	"errors"
	"net/http"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/config"
	"vidtube/internal/media"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

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
// @Description 注册新用户账号，头像必传，封面图可选
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "用户名"
// @Param email formData string true "邮箱"
// @Param full_name formData string true "昵称"
// @Param password formData string true "密码"
// @Param avatar formData file true "头像文件"
// @Param cover_image formData file false "封面图文件"
// @Success 201 {object} response.Response{data=dto.UserInfo} "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 409 {object} response.ErrorResponse "用户名或邮箱已存在"
// @Router /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	avatar, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "头像文件不能为空")
		return
	}
	coverImage, _ := c.FormFile("cover_image")

	userInfo, err := h.authService.Register(c.Request.Context(), &req, avatar, coverImage)
	if err != nil {
		h.handleAuthError(c, err, "Register failed")
		return
	}

	response.Created(c, "注册成功", userInfo)
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户名或邮箱 + 密码登录，签发访问/刷新令牌并写入 Cookie
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.LoginData} "登录成功"
// @Failure 401 {object} response.ErrorResponse "用户名或密码错误"
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	loginData, err := h.authService.Login(&req)
	if err != nil {
		h.handleAuthError(c, err, "Login failed")
		return
	}

	h.setTokenCookies(c, loginData.AccessToken, loginData.RefreshToken)
	response.OK(c, "登录成功", loginData)
}

// Refresh 刷新令牌
// @Summary 刷新令牌
// @Description 用刷新令牌换取新的令牌对，旧刷新令牌立即作废
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest false "刷新令牌（也可通过 Cookie 携带）"
// @Success 200 {object} response.Response{data=dto.TokenPair} "刷新成功"
// @Failure 401 {object} response.ErrorResponse "无效或已失效的刷新令牌"
// @Router /users/refresh-token [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken, _ = c.Cookie(middleware.RefreshTokenCookie)
	}
	if refreshToken == "" {
		response.Unauthorized(c, "缺少刷新令牌")
		return
	}

	pair, err := h.authService.Refresh(refreshToken)
	if err != nil {
		h.handleAuthError(c, err, "Refresh token failed")
		return
	}

	h.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)
	response.OK(c, "刷新成功", pair)
}

// Logout 用户登出
// @Summary 用户登出
// @Description 清除保存的刷新令牌并清除 Cookie
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "登出成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		logger.Error("Logout failed", zap.Error(err), zap.Int64("user_id", userID))
		response.InternalError(c, "登出失败，请稍后重试")
		return
	}

	h.clearTokenCookies(c)
	response.OK(c, "登出成功", nil)
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Description 校验原密码后更新为新密码
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "原密码与新密码"
// @Success 200 {object} response.Response "修改成功"
// @Failure 400 {object} response.ErrorResponse "原密码错误"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	if err := h.authService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.BadRequest(c, err.Error())
			return
		}
		h.handleAuthError(c, err, "Change password failed")
		return
	}

	response.OK(c, "密码修改成功", nil)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrUserExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrAvatarRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredential),
		errors.Is(err, service.ErrInvalidRefreshToken),
		errors.Is(err, service.ErrUserNotFound):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, media.ErrUploadFailed):
		response.InternalError(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

// setTokenCookies 将令牌对写入 httpOnly Cookie
func (h *AuthHandler) setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	jwtCfg := config.GetJWT()
	secure := config.GetApp().Mode == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, accessToken,
		int(jwtCfg.AccessExpireDuration().Seconds()), "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, refreshToken,
		int(jwtCfg.RefreshExpireDuration().Seconds()), "/", "", secure, true)
}

func (h *AuthHandler) clearTokenCookies(c *gin.Context) {
	secure := config.GetApp().Mode == "release"
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", secure, true)
}
