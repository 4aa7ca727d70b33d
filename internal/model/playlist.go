package model

import "time"

// Playlist 播放列表模型
type Playlist struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:播放列表ID" json:"id"`
	OwnerID     int64     `gorm:"not null;index:idx_playlists_owner_id;comment:创建用户ID" json:"owner_id"`
	Name        string    `gorm:"size:200;not null;comment:播放列表名称" json:"name"`
	Description string    `gorm:"type:text;comment:播放列表描述" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_playlists_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Owner  User            `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Videos []PlaylistVideo `gorm:"foreignKey:PlaylistID" json:"videos,omitempty"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 播放列表与视频的关联记录
// (playlist_id, video_id) 唯一索引实现集合语义，position 保留加入顺序
type PlaylistVideo struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:关联记录ID" json:"id"`
	PlaylistID int64     `gorm:"not null;uniqueIndex:uq_playlist_video;index:idx_playlist_videos_playlist_id;comment:播放列表ID" json:"playlist_id"`
	VideoID    int64     `gorm:"not null;uniqueIndex:uq_playlist_video;comment:视频ID" json:"video_id"`
	Position   int       `gorm:"not null;default:0;comment:列表内顺序" json:"position"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:加入时间" json:"created_at"`

	// 关联关系
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
