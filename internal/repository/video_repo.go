package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithOwner 根据 ID 获取视频（含作者信息）
func (r *VideoRepository) GetByIDWithOwner(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Owner").First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDAndOwner 根据视频 ID + 作者 ID 查询
// 单条限定查询，查不到时不区分"不存在"与"非本人"
func (r *VideoRepository) GetByIDAndOwner(videoID, ownerID int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ? AND owner_id = ?", videoID, ownerID).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// UpdateOwned 更新视频字段（仅作者本人）
func (r *VideoRepository) UpdateOwned(videoID, ownerID int64, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.Model(&model.Video{}).
		Where("id = ? AND owner_id = ?", videoID, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(videoID)
}

// DeleteOwned 删除视频（仅作者本人）
func (r *VideoRepository) DeleteOwned(videoID, ownerID int64) (bool, error) {
	result := r.db.Where("id = ? AND owner_id = ?", videoID, ownerID).Delete(&model.Video{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List 视频列表查询（分页、筛选、排序）
// publishedOnly 为 true 时仅返回已发布视频（公开列表）
func (r *VideoRepository) List(skip, limit int, ownerID *int64, publishedOnly bool, search *string, sortBy string, withOwner bool) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{})

	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if search != nil && *search != "" {
		// LOWER + LIKE 在 PostgreSQL 和 SQLite 上行为一致
		pattern := "%" + *search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if sortBy == "views" {
		order = "views DESC"
	}

	findQuery := query.Order(order).Offset(skip).Limit(limit)
	if withOwner {
		findQuery = findQuery.Preload("Owner")
	}

	var videos []model.Video
	if err := findQuery.Find(&videos).Error; err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// GetByIDsWithOwner 批量查询视频（含作者信息）
func (r *VideoRepository) GetByIDsWithOwner(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner").Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// CountExisting 统计给定 ID 中实际存在的视频数（播放列表创建校验用）
func (r *VideoRepository) CountExisting(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&model.Video{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// IncrementViews 播放量 +1
func (r *VideoRepository) IncrementViews(id int64) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
