package service

import (
	"context"
	"errors"
	"mime/multipart"

	"vidtube/internal/api/dto"
	"vidtube/internal/infra/kafka"
	"vidtube/internal/media"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound     = errors.New("视频不存在")
	ErrVideoFileRequired = errors.New("视频文件不能为空")
)

// EventPublisher 发布视频生命周期事件，nil 表示不发布
type EventPublisher func(ctx context.Context, event *kafka.VideoEvent) error

// SearchFunc 全文搜索视频，返回命中ID和总数，nil 表示退回数据库检索
type SearchFunc func(ctx context.Context, query string, skip, limit int) ([]int64, int64, error)

type VideoService struct {
	videoRepo    *repository.VideoRepository
	likeRepo     *repository.LikeRepository
	uploader     media.Uploader
	publishEvent EventPublisher
	search       SearchFunc
}

func NewVideoService(videoRepo *repository.VideoRepository, likeRepo *repository.LikeRepository, uploader media.Uploader, publishEvent EventPublisher, search SearchFunc) *VideoService {
	return &VideoService{
		videoRepo:    videoRepo,
		likeRepo:     likeRepo,
		uploader:     uploader,
		publishEvent: publishEvent,
		search:       search,
	}
}

// Publish 上传并发布视频，封面地址由对象标识推导
func (s *VideoService) Publish(ctx context.Context, ownerID int64, req *dto.PublishVideoRequest, videoFile *multipart.FileHeader) (*dto.VideoInfo, error) {
	if videoFile == nil {
		return nil, ErrVideoFileRequired
	}

	result, err := s.uploader.UploadVideo(ctx, videoFile)
	if err != nil {
		return nil, err
	}

	duration := result.Duration
	if duration == 0 {
		duration = req.Duration
	}

	video := &model.Video{
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     result.URL,
		ThumbnailURL: s.uploader.ThumbnailURL(result.PublicID),
		PublicID:     result.PublicID,
		Duration:     duration,
		IsPublished:  true,
	}

	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	s.emitEvent(ctx, kafka.VideoEventPublished, video.ID)
	logger.Info("Video published", zap.Int64("video_id", video.ID), zap.Int64("owner_id", ownerID))
	return toVideoInfo(video, true), nil
}

// List 分页查询已发布视频，带关键词时优先走搜索索引，失败退回数据库
func (s *VideoService) List(ctx context.Context, query *dto.VideoListQuery) (*dto.VideoListData, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)
	skip := (page - 1) * pageSize

	var ownerID *int64
	if query.OwnerID > 0 {
		ownerID = &query.OwnerID
	}

	var videos []model.Video
	var total int64

	if query.Query != "" && s.search != nil && ownerID == nil {
		ids, hitTotal, err := s.search(ctx, query.Query, skip, pageSize)
		if err == nil {
			hits, err := s.videoRepo.GetByIDsWithOwner(ids)
			if err != nil {
				return nil, err
			}
			// 只保留已发布的，索引可能落后于库
			videos = make([]model.Video, 0, len(hits))
			for _, v := range hits {
				if v.IsPublished {
					videos = append(videos, v)
				}
			}
			return buildVideoList(videos, hitTotal, page, pageSize), nil
		}
		logger.Warn("Search index query failed, falling back to database",
			zap.String("query", query.Query), zap.Error(err))
	}

	var search *string
	if query.Query != "" {
		search = &query.Query
	}

	videos, total, err := s.videoRepo.List(skip, pageSize, ownerID, true, search, query.SortBy, true)
	if err != nil {
		return nil, err
	}
	return buildVideoList(videos, total, page, pageSize), nil
}

// GetByID 获取视频详情，未发布的仅作者可见；公开可见的访问计一次播放
func (s *VideoService) GetByID(ctx context.Context, videoID int64, viewerID *int64) (*dto.VideoDetail, error) {
	video, err := s.videoRepo.GetByIDWithOwner(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if !video.IsPublished {
		if viewerID == nil || *viewerID != video.OwnerID {
			return nil, ErrVideoNotFound
		}
		return s.toVideoDetail(video, viewerID)
	}

	if err := s.videoRepo.IncrementViews(videoID); err != nil {
		logger.Error("Failed to increment video views", zap.Int64("video_id", videoID), zap.Error(err))
	} else {
		video.Views++
	}

	return s.toVideoDetail(video, viewerID)
}

// toVideoDetail 组装详情响应，附带点赞数和当前观众是否点过赞
func (s *VideoService) toVideoDetail(video *model.Video, viewerID *int64) (*dto.VideoDetail, error) {
	detail := &dto.VideoDetail{VideoInfo: *toVideoInfo(video, true)}

	count, err := s.likeRepo.CountByTarget(model.LikeTargetVideo, video.ID)
	if err != nil {
		return nil, err
	}
	detail.LikesCount = count

	if viewerID != nil {
		liked, err := s.likeRepo.Exists(*viewerID, model.LikeTargetVideo, video.ID)
		if err != nil {
			return nil, err
		}
		detail.IsLiked = liked
	}
	return detail, nil
}

// Update 更新视频信息，只更新请求中提供的字段，非作者视同不存在
func (s *VideoService) Update(ctx context.Context, videoID, ownerID int64, req *dto.VideoUpdateRequest) (*dto.VideoInfo, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) == 0 {
		video, err := s.videoRepo.GetByIDAndOwner(videoID, ownerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVideoNotFound
			}
			return nil, err
		}
		return toVideoInfo(video, false), nil
	}

	video, err := s.videoRepo.UpdateOwned(videoID, ownerID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	s.emitEvent(ctx, kafka.VideoEventUpdated, videoID)
	return toVideoInfo(video, false), nil
}

// UpdateThumbnail 上传并更新视频封面，非作者视同不存在
func (s *VideoService) UpdateThumbnail(ctx context.Context, videoID, ownerID int64, file *multipart.FileHeader) (*dto.VideoInfo, error) {
	result, err := s.uploader.UploadImage(ctx, file, "thumbnails")
	if err != nil {
		return nil, err
	}

	video, err := s.videoRepo.UpdateOwned(videoID, ownerID, map[string]interface{}{"thumbnail_url": result.URL})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	s.emitEvent(ctx, kafka.VideoEventUpdated, videoID)
	return toVideoInfo(video, false), nil
}

// Delete 删除视频并通知检索侧移除文档，非作者视同不存在
func (s *VideoService) Delete(ctx context.Context, videoID, ownerID int64) error {
	video, err := s.videoRepo.GetByIDAndOwner(videoID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	deleted, err := s.videoRepo.DeleteOwned(videoID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVideoNotFound
	}

	if video.PublicID != "" {
		if err := s.uploader.Remove(ctx, video.PublicID, true); err != nil {
			logger.Error("Failed to remove video file from media host",
				zap.Int64("video_id", videoID), zap.Error(err))
		}
	}

	s.emitEvent(ctx, kafka.VideoEventDeleted, videoID)
	logger.Info("Video deleted", zap.Int64("video_id", videoID), zap.Int64("owner_id", ownerID))
	return nil
}

// TogglePublish 切换视频发布状态，非作者视同不存在
func (s *VideoService) TogglePublish(ctx context.Context, videoID, ownerID int64) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByIDAndOwner(videoID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	updated, err := s.videoRepo.UpdateOwned(videoID, ownerID, map[string]interface{}{"is_published": !video.IsPublished})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if updated.IsPublished {
		s.emitEvent(ctx, kafka.VideoEventPublished, videoID)
	} else {
		s.emitEvent(ctx, kafka.VideoEventUnpublished, videoID)
	}
	return toVideoInfo(updated, false), nil
}

// emitEvent 发布视频事件，失败只记日志，不影响主流程
func (s *VideoService) emitEvent(ctx context.Context, eventType string, videoID int64) {
	if s.publishEvent == nil {
		return
	}
	event := &kafka.VideoEvent{Type: eventType, VideoID: videoID}
	if err := s.publishEvent(ctx, event); err != nil {
		logger.Error("Failed to publish video event",
			zap.String("type", eventType),
			zap.Int64("video_id", videoID),
			zap.Error(err))
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func buildVideoList(videos []model.Video, total int64, page, pageSize int) *dto.VideoListData {
	infos := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		infos = append(infos, *toVideoInfo(&videos[i], true))
	}
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return &dto.VideoListData{
		Videos:     infos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func toVideoInfo(video *model.Video, withOwner bool) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:           video.ID,
		OwnerID:      video.OwnerID,
		Title:        video.Title,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		Views:        video.Views,
		IsPublished:  video.IsPublished,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}
	if withOwner && video.Owner.ID != 0 {
		info.Owner = toUserBrief(&video.Owner)
	}
	return info
}
