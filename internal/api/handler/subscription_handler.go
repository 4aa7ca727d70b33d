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

type SubscriptionHandler struct {
	subService *service.SubscriptionService
}

func NewSubscriptionHandler(subService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService}
}

// Toggle 订阅开关
// @Summary 订阅开关
// @Description 已订阅则退订，未订阅则订阅；不能订阅自己的频道
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param channelId path int true "频道（用户）ID"
// @Success 200 {object} response.Response{data=dto.SubscribeToggleResult} "操作成功"
// @Failure 400 {object} response.ErrorResponse "不能订阅自己的频道"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	channelID, err := parseIDParam(c, "channelId")
	if err != nil {
		response.BadRequest(c, "频道ID无效")
		return
	}

	result, err := h.subService.Toggle(userID, channelID)
	if err != nil {
		h.handleSubError(c, err, "Toggle subscription failed")
		return
	}
	response.OK(c, "操作成功", result)
}

// ListSubscribers 获取频道的订阅者
// @Summary 获取频道的订阅者
// @Tags 订阅
// @Produce json
// @Param channelId path int true "频道（用户）ID"
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认10"
// @Success 200 {object} response.Response{data=dto.SubscriberListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /subscriptions/c/{channelId}/subscribers [get]
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	channelID, err := parseIDParam(c, "channelId")
	if err != nil {
		response.BadRequest(c, "频道ID无效")
		return
	}

	page, pageSize := parsePagination(c)
	data, err := h.subService.ListSubscribers(channelID, page, pageSize)
	if err != nil {
		h.handleSubError(c, err, "List subscribers failed")
		return
	}
	response.OK(c, "获取成功", data)
}

// CountSubscribers 统计频道的订阅者数
// @Summary 统计频道的订阅者数
// @Tags 订阅
// @Produce json
// @Param channelId path int true "频道（用户）ID"
// @Success 200 {object} response.Response{data=dto.CountData} "获取成功"
// @Router /subscriptions/c/{channelId}/subscribers/count [get]
func (h *SubscriptionHandler) CountSubscribers(c *gin.Context) {
	channelID, err := parseIDParam(c, "channelId")
	if err != nil {
		response.BadRequest(c, "频道ID无效")
		return
	}

	data, err := h.subService.CountSubscribers(channelID)
	if err != nil {
		h.handleSubError(c, err, "Count subscribers failed")
		return
	}
	response.OK(c, "获取成功", data)
}

// ListSubscribedChannels 获取用户订阅的频道
// @Summary 获取用户订阅的频道
// @Tags 订阅
// @Produce json
// @Param userId path int true "用户ID"
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认10"
// @Success 200 {object} response.Response{data=dto.SubscribedChannelListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /subscriptions/u/{userId}/channels [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		response.BadRequest(c, "用户ID无效")
		return
	}

	page, pageSize := parsePagination(c)
	data, err := h.subService.ListSubscribedChannels(userID, page, pageSize)
	if err != nil {
		h.handleSubError(c, err, "List subscribed channels failed")
		return
	}
	response.OK(c, "获取成功", data)
}

// CountSubscribedChannels 统计用户订阅的频道数
// @Summary 统计用户订阅的频道数
// @Tags 订阅
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.CountData} "获取成功"
// @Router /subscriptions/u/{userId}/channels/count [get]
func (h *SubscriptionHandler) CountSubscribedChannels(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		response.BadRequest(c, "用户ID无效")
		return
	}

	data, err := h.subService.CountSubscribedChannels(userID)
	if err != nil {
		h.handleSubError(c, err, "Count subscribed channels failed")
		return
	}
	response.OK(c, "获取成功", data)
}

func (h *SubscriptionHandler) handleSubError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrSelfSubscription):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrChannelNotFound), errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
