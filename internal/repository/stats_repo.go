package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

// StatsRepository 频道统计查询
// 五个聚合各自独立执行，互不依赖，均为只读查询
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountSubscribers 订阅者数（channel = 频道ID 的订阅记录数）
func (r *StatsRepository) CountSubscribers(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// CountSubscribedChannels 订阅的频道数（subscriber = 频道ID 的订阅记录数）
func (r *StatsRepository) CountSubscribedChannels(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ?", channelID).Count(&count).Error
	return count, err
}

// CountVideos 频道的视频数
func (r *StatsRepository) CountVideos(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Video{}).
		Where("owner_id = ?", channelID).Count(&count).Error
	return count, err
}

// SumViews 频道所有视频的播放量总和（无视频时为 0 而不是 NULL）
func (r *StatsRepository) SumViews(channelID int64) (int64, error) {
	var total int64
	err := r.db.Model(&model.Video{}).
		Where("owner_id = ?", channelID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

// CountVideoLikes 频道所有视频收到的点赞总数
// 点赞目标为视频且该视频归频道所有
func (r *StatsRepository) CountVideoLikes(channelID int64) (int64, error) {
	var count int64
	err := r.db.Raw(`
		SELECT COUNT(*) FROM likes l
		INNER JOIN videos v ON l.target_type = ? AND l.target_id = v.id
		WHERE v.owner_id = ?
	`, model.LikeTargetVideo, channelID).Scan(&count).Error
	return count, err
}
