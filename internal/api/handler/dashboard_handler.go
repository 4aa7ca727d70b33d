package handler

import (
	"errors"

	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ChannelStats 频道统计
// @Summary 频道统计
// @Description 订阅者数、订阅数、视频数、播放总量、获赞总量
// @Tags 频道统计
// @Produce json
// @Param channelId path int true "频道（用户）ID"
// @Success 200 {object} response.Response{data=dto.ChannelStats} "获取成功"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /dashboard/stats/{channelId} [get]
func (h *DashboardHandler) ChannelStats(c *gin.Context) {
	channelID, err := parseIDParam(c, "channelId")
	if err != nil {
		response.BadRequest(c, "频道ID无效")
		return
	}

	stats, err := h.dashboardService.GetChannelStats(c.Request.Context(), channelID)
	if err != nil {
		h.handleDashboardError(c, err, "Get channel stats failed")
		return
	}
	response.OK(c, "获取成功", stats)
}

// ChannelVideos 获取当前频道的全部视频
// @Summary 获取当前频道的全部视频
// @Description 当前登录用户的全部视频，含未发布
// @Tags 频道统计
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认10"
// @Success 200 {object} response.Response{data=dto.ChannelVideosData} "获取成功"
// @Router /dashboard/videos [get]
func (h *DashboardHandler) ChannelVideos(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	page, pageSize := parsePagination(c)
	data, err := h.dashboardService.GetChannelVideos(userID, page, pageSize)
	if err != nil {
		h.handleDashboardError(c, err, "Get channel videos failed")
		return
	}
	response.OK(c, "获取成功", data)
}

func (h *DashboardHandler) handleDashboardError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrChannelNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
