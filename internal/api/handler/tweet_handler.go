package handler

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// Create 发布动态
// @Summary 发布动态
// @Tags 动态
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TweetCreateRequest true "动态内容"
// @Success 201 {object} response.Response{data=dto.TweetInfo} "发布成功"
// @Router /tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.TweetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	tweetInfo, err := h.tweetService.Create(userID, req.Content)
	if err != nil {
		h.handleTweetError(c, err, "Create tweet failed")
		return
	}
	response.Created(c, "发布成功", tweetInfo)
}

// ListByUser 获取用户的动态
// @Summary 获取用户的动态
// @Tags 动态
// @Produce json
// @Param userId path int true "用户ID"
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认10"
// @Success 200 {object} response.Response{data=dto.TweetListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /tweets/user/{userId} [get]
func (h *TweetHandler) ListByUser(c *gin.Context) {
	ownerID, err := parseIDParam(c, "userId")
	if err != nil {
		response.BadRequest(c, "用户ID无效")
		return
	}

	page, pageSize := parsePagination(c)
	data, err := h.tweetService.ListByUser(ownerID, page, pageSize)
	if err != nil {
		h.handleTweetError(c, err, "List tweets failed")
		return
	}
	response.OK(c, "获取成功", data)
}

// Update 修改动态
// @Summary 修改动态
// @Description 修改动态内容，仅作者可操作
// @Tags 动态
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Param request body dto.TweetUpdateRequest true "动态内容"
// @Success 200 {object} response.Response{data=dto.TweetInfo} "修改成功"
// @Failure 404 {object} response.ErrorResponse "动态不存在"
// @Router /tweets/{id} [patch]
func (h *TweetHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "动态ID无效")
		return
	}

	var req dto.TweetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	tweetInfo, err := h.tweetService.Update(tweetID, userID, req.Content)
	if err != nil {
		h.handleTweetError(c, err, "Update tweet failed")
		return
	}
	response.OK(c, "修改成功", tweetInfo)
}

// Delete 删除动态
// @Summary 删除动态
// @Description 删除动态，仅作者可操作
// @Tags 动态
// @Produce json
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "动态不存在"
// @Router /tweets/{id} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "动态ID无效")
		return
	}

	if err := h.tweetService.Delete(tweetID, userID); err != nil {
		h.handleTweetError(c, err, "Delete tweet failed")
		return
	}
	response.OK(c, "删除成功", nil)
}

func (h *TweetHandler) handleTweetError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrTweetNotFound), errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
