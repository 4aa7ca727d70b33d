package handler

import (
	"errors"

	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/model"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideo 视频点赞开关
// @Summary 视频点赞开关
// @Description 已赞则取消，未赞则点赞
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.ToggleResult} "操作成功"
// @Failure 404 {object} response.ErrorResponse "点赞对象不存在"
// @Router /likes/video/{id} [post]
func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	h.toggle(c, model.LikeTargetVideo)
}

// ToggleComment 评论点赞开关
// @Summary 评论点赞开关
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response{data=dto.ToggleResult} "操作成功"
// @Failure 404 {object} response.ErrorResponse "点赞对象不存在"
// @Router /likes/comment/{id} [post]
func (h *LikeHandler) ToggleComment(c *gin.Context) {
	h.toggle(c, model.LikeTargetComment)
}

// ToggleTweet 动态点赞开关
// @Summary 动态点赞开关
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Success 200 {object} response.Response{data=dto.ToggleResult} "操作成功"
// @Failure 404 {object} response.ErrorResponse "点赞对象不存在"
// @Router /likes/tweet/{id} [post]
func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	h.toggle(c, model.LikeTargetTweet)
}

func (h *LikeHandler) toggle(c *gin.Context, targetType string) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "目标ID无效")
		return
	}

	result, err := h.likeService.Toggle(userID, targetType, targetID)
	if err != nil {
		h.handleLikeError(c, err, "Toggle like failed")
		return
	}
	response.OK(c, "操作成功", result)
}

// LikedVideos 获取点赞过的视频
// @Summary 获取点赞过的视频
// @Description 当前用户点赞过且仍公开可见的视频
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认10"
// @Success 200 {object} response.Response{data=dto.LikedVideosData} "获取成功"
// @Router /likes/videos [get]
func (h *LikeHandler) LikedVideos(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	page, pageSize := parsePagination(c)
	data, err := h.likeService.LikedVideos(userID, page, pageSize)
	if err != nil {
		h.handleLikeError(c, err, "List liked videos failed")
		return
	}
	response.OK(c, "获取成功", data)
}

func (h *LikeHandler) handleLikeError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrLikeTargetNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
