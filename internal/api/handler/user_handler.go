package handler

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/media"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	userInfo, err := h.userService.GetMe(userID)
	if err != nil {
		h.handleUserError(c, err, "Get current user failed")
		return
	}
	response.OK(c, "获取成功", userInfo)
}

// UpdateAccount 更新账户资料
// @Summary 更新账户资料
// @Description 更新昵称或邮箱，只更新请求中提供的字段
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAccountRequest true "要更新的字段"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Failure 409 {object} response.ErrorResponse "邮箱已被占用"
// @Router /users/me [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userInfo, err := h.userService.UpdateAccount(userID, &req)
	if err != nil {
		h.handleUserError(c, err, "Update account failed")
		return
	}
	response.OK(c, "更新成功", userInfo)
}

// UpdateAvatar 更新头像
// @Summary 更新头像
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "头像文件"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Router /users/me/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "头像文件不能为空")
		return
	}

	userInfo, err := h.userService.UpdateAvatar(c.Request.Context(), userID, file)
	if err != nil {
		h.handleUserError(c, err, "Update avatar failed")
		return
	}
	response.OK(c, "更新成功", userInfo)
}

// UpdateCoverImage 更新封面图
// @Summary 更新封面图
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param cover_image formData file true "封面图文件"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Router /users/me/cover [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	file, err := c.FormFile("cover_image")
	if err != nil {
		response.BadRequest(c, "封面图文件不能为空")
		return
	}

	userInfo, err := h.userService.UpdateCoverImage(c.Request.Context(), userID, file)
	if err != nil {
		h.handleUserError(c, err, "Update cover image failed")
		return
	}
	response.OK(c, "更新成功", userInfo)
}

// ChannelProfile 获取频道主页信息
// @Summary 获取频道主页信息
// @Description 按用户名查询频道公开信息及订阅数，登录时附带是否已订阅
// @Tags 用户
// @Produce json
// @Param username path string true "频道用户名"
// @Success 200 {object} response.Response{data=dto.ChannelProfile} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/c/{username} [get]
func (h *UserHandler) ChannelProfile(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.BadRequest(c, "用户名不能为空")
		return
	}

	var viewerID *int64
	if id, ok := middleware.GetCurrentUserID(c); ok {
		viewerID = &id
	}

	profile, err := h.userService.GetChannelProfile(username, viewerID)
	if err != nil {
		h.handleUserError(c, err, "Get channel profile failed")
		return
	}
	response.OK(c, "获取成功", profile)
}

func (h *UserHandler) handleUserError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmailExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, media.ErrUploadFailed):
		response.InternalError(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
