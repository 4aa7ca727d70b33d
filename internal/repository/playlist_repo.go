package repository

import (
	"errors"

	"vidtube/internal/model"

	"gorm.io/gorm"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// CreateWithVideos 在单个事务内创建播放列表及其初始视频关联
// 任一步失败整体回滚，不会留下半成品列表
func (r *PlaylistRepository) CreateWithVideos(playlist *model.Playlist, videoIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(playlist).Error; err != nil {
			return err
		}
		for i, videoID := range videoIDs {
			entry := &model.PlaylistVideo{
				PlaylistID: playlist.ID,
				VideoID:    videoID,
				Position:   i,
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID 根据 ID 获取播放列表（含视频与作者信息）
func (r *PlaylistRepository) GetByID(id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.Preload("Owner").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("playlist_videos.position ASC")
		}).
		Preload("Videos.Video").
		First(&playlist, id).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetByIDAndOwner 根据播放列表 ID + 作者 ID 查询
func (r *PlaylistRepository) GetByIDAndOwner(playlistID, ownerID int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.Where("id = ? AND owner_id = ?", playlistID, ownerID).First(&playlist).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// UpdateOwned 更新播放列表字段（仅作者本人）
func (r *PlaylistRepository) UpdateOwned(playlistID, ownerID int64, updates map[string]interface{}) (*model.Playlist, error) {
	result := r.db.Model(&model.Playlist{}).
		Where("id = ? AND owner_id = ?", playlistID, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(playlistID)
}

// DeleteOwned 删除播放列表及其视频关联（仅作者本人）
func (r *PlaylistRepository) DeleteOwned(playlistID, ownerID int64) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND owner_id = ?", playlistID, ownerID).Delete(&model.Playlist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("playlist_id = ?", playlistID).Delete(&model.PlaylistVideo{}).Error
	})
	return deleted, err
}

// ListByOwner 获取用户的播放列表（分页，最新优先）
func (r *PlaylistRepository) ListByOwner(ownerID int64, skip, limit int) ([]model.Playlist, int64, error) {
	query := r.db.Model(&model.Playlist{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var playlists []model.Playlist
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&playlists).Error
	if err != nil {
		return nil, 0, err
	}

	return playlists, total, nil
}

// AddVideo 向播放列表追加视频（集合语义，已存在时不重复添加）
// 唯一索引 (playlist_id, video_id) 拦截重复插入，并发下重复添加同样视为已存在
func (r *PlaylistRepository) AddVideo(playlistID, videoID int64) (bool, error) {
	var maxPos int
	err := r.db.Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPos).Error
	if err != nil {
		return false, err
	}

	entry := &model.PlaylistVideo{
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   maxPos + 1,
	}
	if err := r.db.Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RemoveVideo 从播放列表移除视频，返回是否实际移除
func (r *PlaylistRepository) RemoveVideo(playlistID, videoID int64) (bool, error) {
	result := r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountVideos 统计播放列表内的视频数
func (r *PlaylistRepository) CountVideos(playlistID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).Count(&count).Error
	return count, err
}
