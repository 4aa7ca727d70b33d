package dto

import "time"

// PlaylistCreateRequest 创建播放列表请求
type PlaylistCreateRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	VideoIDs    []int64 `json:"video_ids" binding:"omitempty,dive,gte=1"`
}

// PlaylistUpdateRequest 更新播放列表请求（提供哪个字段就更新哪个）
type PlaylistUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// PlaylistInfo 播放列表详情
type PlaylistInfo struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	VideoCount  int64       `json:"video_count"`
	Videos      []VideoInfo `json:"videos,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PlaylistListData 播放列表列表响应数据
type PlaylistListData struct {
	Playlists []PlaylistInfo `json:"playlists"`
	Total     int64          `json:"total"`
}
