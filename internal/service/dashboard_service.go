package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 统计缓存的 TTL，允许短暂滞后换取聚合查询压力下降
const statsCacheTTL = 60 * time.Second

type DashboardService struct {
	statsRepo *repository.StatsRepository
	videoRepo *repository.VideoRepository
	userRepo  *repository.UserRepository
	cache     *redis.Client
}

// NewDashboardService 创建频道统计服务，cache 可为 nil（不启用缓存）
func NewDashboardService(statsRepo *repository.StatsRepository, videoRepo *repository.VideoRepository, userRepo *repository.UserRepository, cache *redis.Client) *DashboardService {
	return &DashboardService{
		statsRepo: statsRepo,
		videoRepo: videoRepo,
		userRepo:  userRepo,
		cache:     cache,
	}
}

// GetChannelStats 获取频道统计数据，优先读缓存
func (s *DashboardService) GetChannelStats(ctx context.Context, channelID int64) (*dto.ChannelStats, error) {
	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%d", channelID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var stats dto.ChannelStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.computeStats(channelID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		data, err := json.Marshal(stats)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, statsCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache channel stats", zap.Int64("channel_id", channelID), zap.Error(err))
			}
		}
	}
	return stats, nil
}

// computeStats 五个独立聚合查询，无视频时播放总量为0
func (s *DashboardService) computeStats(channelID int64) (*dto.ChannelStats, error) {
	subscribers, err := s.statsRepo.CountSubscribers(channelID)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.statsRepo.CountSubscribedChannels(channelID)
	if err != nil {
		return nil, err
	}
	videos, err := s.statsRepo.CountVideos(channelID)
	if err != nil {
		return nil, err
	}
	views, err := s.statsRepo.SumViews(channelID)
	if err != nil {
		return nil, err
	}
	likes, err := s.statsRepo.CountVideoLikes(channelID)
	if err != nil {
		return nil, err
	}

	return &dto.ChannelStats{
		TotalSubscribers: subscribers,
		TotalSubscribed:  subscribed,
		TotalVideos:      videos,
		TotalViews:       views,
		TotalLikes:       likes,
	}, nil
}

// GetChannelVideos 获取当前频道的全部视频（含未发布）
func (s *DashboardService) GetChannelVideos(channelID int64, page, pageSize int) (*dto.ChannelVideosData, error) {
	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	videos, total, err := s.videoRepo.List(skip, pageSize, &channelID, false, nil, "date", false)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		infos = append(infos, *toVideoInfo(&videos[i], false))
	}
	return &dto.ChannelVideosData{Videos: infos, Total: total}, nil
}
