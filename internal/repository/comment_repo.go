package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateOwned 更新评论内容（仅作者本人）
func (r *CommentRepository) UpdateOwned(commentID, ownerID int64, content string) error {
	result := r.db.Model(&model.Comment{}).
		Where("id = ? AND owner_id = ?", commentID, ownerID).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned 删除评论（仅作者本人）
func (r *CommentRepository) DeleteOwned(commentID, ownerID int64) (bool, error) {
	result := r.db.Where("id = ? AND owner_id = ?", commentID, ownerID).Delete(&model.Comment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByVideo 获取视频的评论列表（含评论者信息）
func (r *CommentRepository) ListByVideo(videoID int64, skip, limit int) ([]model.Comment, int64, error) {
	query := r.db.Model(&model.Comment{}).Where("video_id = ?", videoID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	err := query.Preload("Owner").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}
