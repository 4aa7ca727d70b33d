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

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create 创建播放列表
// @Summary 创建播放列表
// @Description 创建播放列表，初始视频中任一ID不存在则整体失败
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PlaylistCreateRequest true "播放列表信息"
// @Success 201 {object} response.Response{data=dto.PlaylistInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "部分视频不存在"
// @Router /playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.PlaylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	playlistInfo, err := h.playlistService.Create(userID, &req)
	if err != nil {
		h.handlePlaylistError(c, err, "Create playlist failed")
		return
	}
	response.Created(c, "创建成功", playlistInfo)
}

// Detail 播放列表详情
// @Summary 播放列表详情
// @Tags 播放列表
// @Produce json
// @Param id path int true "播放列表ID"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "播放列表不存在"
// @Router /playlists/{id} [get]
func (h *PlaylistHandler) Detail(c *gin.Context) {
	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "播放列表ID无效")
		return
	}

	playlistInfo, err := h.playlistService.GetByID(playlistID)
	if err != nil {
		h.handlePlaylistError(c, err, "Get playlist failed")
		return
	}
	response.OK(c, "获取成功", playlistInfo)
}

// ListByUser 获取用户的播放列表
// @Summary 获取用户的播放列表
// @Tags 播放列表
// @Produce json
// @Param userId path int true "用户ID"
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认10"
// @Success 200 {object} response.Response{data=dto.PlaylistListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /playlists/user/{userId} [get]
func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	ownerID, err := parseIDParam(c, "userId")
	if err != nil {
		response.BadRequest(c, "用户ID无效")
		return
	}

	page, pageSize := parsePagination(c)
	data, err := h.playlistService.ListByUser(ownerID, page, pageSize)
	if err != nil {
		h.handlePlaylistError(c, err, "List playlists failed")
		return
	}
	response.OK(c, "获取成功", data)
}

// Update 更新播放列表
// @Summary 更新播放列表
// @Description 更新名称或描述，只更新请求中提供的字段，仅作者可操作
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "播放列表ID"
// @Param request body dto.PlaylistUpdateRequest true "要更新的字段"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "更新成功"
// @Failure 404 {object} response.ErrorResponse "播放列表不存在"
// @Router /playlists/{id} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "播放列表ID无效")
		return
	}

	var req dto.PlaylistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	playlistInfo, err := h.playlistService.Update(playlistID, userID, &req)
	if err != nil {
		h.handlePlaylistError(c, err, "Update playlist failed")
		return
	}
	response.OK(c, "更新成功", playlistInfo)
}

// Delete 删除播放列表
// @Summary 删除播放列表
// @Description 删除播放列表及其视频关联，仅作者可操作
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param id path int true "播放列表ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "播放列表不存在"
// @Router /playlists/{id} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "播放列表ID无效")
		return
	}

	if err := h.playlistService.Delete(playlistID, userID); err != nil {
		h.handlePlaylistError(c, err, "Delete playlist failed")
		return
	}
	response.OK(c, "删除成功", nil)
}

// AddVideo 向播放列表添加视频
// @Summary 向播放列表添加视频
// @Description 集合语义：重复添加不报错也不产生重复项
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param id path int true "播放列表ID"
// @Param videoId path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "添加成功"
// @Failure 404 {object} response.ErrorResponse "播放列表或视频不存在"
// @Router /playlists/{id}/videos/{videoId} [post]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "播放列表ID无效")
		return
	}
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		response.BadRequest(c, "视频ID无效")
		return
	}

	playlistInfo, err := h.playlistService.AddVideo(playlistID, videoID, userID)
	if err != nil {
		h.handlePlaylistError(c, err, "Add video to playlist failed")
		return
	}
	response.OK(c, "添加成功", playlistInfo)
}

// RemoveVideo 从播放列表移除视频
// @Summary 从播放列表移除视频
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param id path int true "播放列表ID"
// @Param videoId path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "移除成功"
// @Failure 404 {object} response.ErrorResponse "播放列表或视频不存在"
// @Router /playlists/{id}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "播放列表ID无效")
		return
	}
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		response.BadRequest(c, "视频ID无效")
		return
	}

	playlistInfo, err := h.playlistService.RemoveVideo(playlistID, videoID, userID)
	if err != nil {
		h.handlePlaylistError(c, err, "Remove video from playlist failed")
		return
	}
	response.OK(c, "移除成功", playlistInfo)
}

func (h *PlaylistHandler) handlePlaylistError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrPlaylistVideoMissing):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrPlaylistNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
