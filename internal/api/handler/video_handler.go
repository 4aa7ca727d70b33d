package handler

import (
	"errors"
	"strconv"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/media"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Publish 发布视频
// @Summary 发布视频
// @Description 上传视频文件并创建视频，封面地址由上传结果推导
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "标题"
// @Param description formData string false "描述"
// @Param video formData file true "视频文件"
// @Success 201 {object} response.Response{data=dto.VideoInfo} "发布成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 500 {object} response.ErrorResponse "上传失败"
// @Router /videos [post]
func (h *VideoHandler) Publish(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		response.BadRequest(c, "视频文件不能为空")
		return
	}

	videoInfo, err := h.videoService.Publish(c.Request.Context(), userID, &req, videoFile)
	if err != nil {
		h.handleVideoError(c, err, "Publish video failed")
		return
	}
	response.Created(c, "发布成功", videoInfo)
}

// List 视频列表
// @Summary 视频列表
// @Description 分页查询已发布的视频，支持关键词搜索、作者过滤与排序
// @Tags 视频
// @Produce json
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认10"
// @Param query query string false "搜索关键词"
// @Param owner_id query int false "按作者过滤"
// @Param sort_by query string false "排序方式：date 或 views"
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	var query dto.VideoListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.videoService.List(c.Request.Context(), &query)
	if err != nil {
		h.handleVideoError(c, err, "List videos failed")
		return
	}
	response.OK(c, "获取成功", data)
}

// Detail 视频详情
// @Summary 视频详情
// @Description 获取视频详情，公开可见的访问计一次播放；未发布的仅作者可见
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoDetail} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) Detail(c *gin.Context) {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "视频ID无效")
		return
	}

	var viewerID *int64
	if id, ok := middleware.GetCurrentUserID(c); ok {
		viewerID = &id
	}

	detail, err := h.videoService.GetByID(c.Request.Context(), videoID, viewerID)
	if err != nil {
		h.handleVideoError(c, err, "Get video failed")
		return
	}
	response.OK(c, "获取成功", detail)
}

// Update 更新视频信息
// @Summary 更新视频信息
// @Description 更新标题或描述，只更新请求中提供的字段，仅作者可操作
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.VideoUpdateRequest true "要更新的字段"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "更新成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	videoID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "视频ID无效")
		return
	}

	var req dto.VideoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	videoInfo, err := h.videoService.Update(c.Request.Context(), videoID, userID, &req)
	if err != nil {
		h.handleVideoError(c, err, "Update video failed")
		return
	}
	response.OK(c, "更新成功", videoInfo)
}

// UpdateThumbnail 更新视频封面
// @Summary 更新视频封面
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param thumbnail formData file true "封面图文件"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "更新成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/thumbnail [patch]
func (h *VideoHandler) UpdateThumbnail(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	videoID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "视频ID无效")
		return
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		response.BadRequest(c, "封面图文件不能为空")
		return
	}

	videoInfo, err := h.videoService.UpdateThumbnail(c.Request.Context(), videoID, userID, file)
	if err != nil {
		h.handleVideoError(c, err, "Update thumbnail failed")
		return
	}
	response.OK(c, "更新成功", videoInfo)
}

// Delete 删除视频
// @Summary 删除视频
// @Description 删除视频及托管方文件，仅作者可操作
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	videoID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "视频ID无效")
		return
	}

	if err := h.videoService.Delete(c.Request.Context(), videoID, userID); err != nil {
		h.handleVideoError(c, err, "Delete video failed")
		return
	}
	response.OK(c, "删除成功", nil)
}

// TogglePublish 切换视频发布状态
// @Summary 切换视频发布状态
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "切换成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/toggle/publish/{id} [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	videoID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "视频ID无效")
		return
	}

	videoInfo, err := h.videoService.TogglePublish(c.Request.Context(), videoID, userID)
	if err != nil {
		h.handleVideoError(c, err, "Toggle publish failed")
		return
	}
	response.OK(c, "切换成功", videoInfo)
}

func (h *VideoHandler) handleVideoError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoFileRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, media.ErrUploadFailed):
		response.InternalError(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

// parseIDParam 解析路径中的数字ID参数
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
