package handler

import (
	"errors"
	"strconv"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create 发表评论
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} response.Response{data=dto.CommentInfo} "发表成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /comments/video/{videoId} [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		response.BadRequest(c, "视频ID无效")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	commentInfo, err := h.commentService.Create(userID, videoID, req.Content)
	if err != nil {
		h.handleCommentError(c, err, "Create comment failed")
		return
	}
	response.Created(c, "评论成功", commentInfo)
}

// ListByVideo 获取视频的评论
// @Summary 获取视频的评论
// @Tags 评论
// @Produce json
// @Param videoId path int true "视频ID"
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认10"
// @Success 200 {object} response.Response{data=dto.CommentListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /comments/video/{videoId} [get]
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		response.BadRequest(c, "视频ID无效")
		return
	}

	page, pageSize := parsePagination(c)
	data, err := h.commentService.ListByVideo(videoID, page, pageSize)
	if err != nil {
		h.handleCommentError(c, err, "List comments failed")
		return
	}
	response.OK(c, "获取成功", data)
}

// Update 修改评论
// @Summary 修改评论
// @Description 修改评论内容，仅作者可操作
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Param request body dto.CommentUpdateRequest true "评论内容"
// @Success 200 {object} response.Response{data=dto.CommentInfo} "修改成功"
// @Failure 404 {object} response.ErrorResponse "评论不存在"
// @Router /comments/{id} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	commentID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "评论ID无效")
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	commentInfo, err := h.commentService.Update(commentID, userID, req.Content)
	if err != nil {
		h.handleCommentError(c, err, "Update comment failed")
		return
	}
	response.OK(c, "修改成功", commentInfo)
}

// Delete 删除评论
// @Summary 删除评论
// @Description 删除评论，仅作者可操作
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "评论不存在"
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	commentID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "评论ID无效")
		return
	}

	if err := h.commentService.Delete(commentID, userID); err != nil {
		h.handleCommentError(c, err, "Delete comment failed")
		return
	}
	response.OK(c, "删除成功", nil)
}

func (h *CommentHandler) handleCommentError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound), errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

// parsePagination 解析分页查询参数
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}
