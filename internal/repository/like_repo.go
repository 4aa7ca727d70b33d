package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create 创建点赞记录
// 唯一索引 (user_id, target_type, target_id) 会拦截并发下的重复插入
func (r *LikeRepository) Create(userID int64, targetType string, targetID int64) (*model.Like, error) {
	like := &model.Like{
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
	}
	if err := r.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

// Delete 删除点赞记录，返回是否实际删除
func (r *LikeRepository) Delete(userID int64, targetType string, targetID int64) (bool, error) {
	result := r.db.
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查点赞记录是否存在
func (r *LikeRepository) Exists(userID int64, targetType string, targetID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Count(&count).Error
	return count > 0, err
}

// GetLikedVideoIDs 获取用户点赞过的视频 ID 列表（按点赞时间倒序）
func (r *LikeRepository) GetLikedVideoIDs(userID int64, skip, limit int) ([]int64, int64, error) {
	query := r.db.Model(&model.Like{}).
		Where("user_id = ? AND target_type = ?", userID, model.LikeTargetVideo)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []int64
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).
		Pluck("target_id", &ids).Error
	return ids, total, err
}

// CountByTarget 统计某个目标的点赞数
func (r *LikeRepository) CountByTarget(targetType string, targetID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}
