package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Create(tweet *model.Tweet) error {
	return r.db.Create(tweet).Error
}

func (r *TweetRepository) GetByID(id int64) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.db.First(&tweet, id).Error
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// UpdateOwned 更新动态内容（仅作者本人）
func (r *TweetRepository) UpdateOwned(tweetID, ownerID int64, content string) error {
	result := r.db.Model(&model.Tweet{}).
		Where("id = ? AND owner_id = ?", tweetID, ownerID).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned 删除动态（仅作者本人）
func (r *TweetRepository) DeleteOwned(tweetID, ownerID int64) (bool, error) {
	result := r.db.Where("id = ? AND owner_id = ?", tweetID, ownerID).Delete(&model.Tweet{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByOwner 获取用户的动态列表（含作者信息）
func (r *TweetRepository) ListByOwner(ownerID int64, skip, limit int) ([]model.Tweet, int64, error) {
	query := r.db.Model(&model.Tweet{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []model.Tweet
	err := query.Preload("Owner").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&tweets).Error
	if err != nil {
		return nil, 0, err
	}

	return tweets, total, nil
}
