package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create 创建订阅关系
// 唯一索引 (subscriber_id, channel_id) 会拦截并发下的重复插入
func (r *SubscriptionRepository) Create(subscriberID, channelID int64) (*model.Subscription, error) {
	sub := &model.Subscription{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	if err := r.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete 删除订阅关系，返回是否实际删除
func (r *SubscriptionRepository) Delete(subscriberID, channelID int64) (bool, error) {
	result := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查订阅关系是否存在
func (r *SubscriptionRepository) Exists(subscriberID, channelID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// ListSubscribers 获取频道的订阅者列表（含订阅者信息，分页）
func (r *SubscriptionRepository) ListSubscribers(channelID int64, skip, limit int) ([]model.Subscription, int64, error) {
	query := r.db.Model(&model.Subscription{}).Where("channel_id = ?", channelID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []model.Subscription
	err := query.Preload("Subscriber").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

// ListSubscribedChannels 获取用户订阅的频道列表（含频道信息，分页）
func (r *SubscriptionRepository) ListSubscribedChannels(subscriberID int64, skip, limit int) ([]model.Subscription, int64, error) {
	query := r.db.Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []model.Subscription
	err := query.Preload("Channel").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

// CountSubscribers 统计频道的订阅者数
func (r *SubscriptionRepository) CountSubscribers(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// CountSubscribedChannels 统计用户订阅的频道数
func (r *SubscriptionRepository) CountSubscribedChannels(subscriberID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberID).Count(&count).Error
	return count, err
}
