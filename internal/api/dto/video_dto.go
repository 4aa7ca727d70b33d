package dto

import "time"

// PublishVideoRequest 发布视频请求（multipart/form-data，附带视频文件）
type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required,min=1,max=200"`
	Description string  `form:"description" binding:"omitempty"`
	Duration    float64 `form:"duration" binding:"omitempty,gte=0"`
}

// VideoUpdateRequest 视频更新请求（提供哪个字段就更新哪个）
type VideoUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// VideoListQuery 视频列表查询参数
type VideoListQuery struct {
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size" binding:"omitempty,gte=1,lte=100"`
	Query    string `form:"query" binding:"omitempty,max=200"`
	OwnerID  int64  `form:"owner_id" binding:"omitempty,gte=1"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=date views"`
}

// VideoInfo 视频详情
type VideoInfo struct {
	ID           int64      `json:"id"`
	OwnerID      int64      `json:"owner_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	VideoURL     string     `json:"video_url"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Duration     float64    `json:"duration"`
	Views        int64      `json:"views"`
	IsPublished  bool       `json:"is_published"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Owner        *UserBrief `json:"owner,omitempty"`
}

// VideoDetail 视频详情（含点赞信息）
type VideoDetail struct {
	VideoInfo
	LikesCount int64 `json:"likes_count"`
	IsLiked    bool  `json:"is_liked"`
}

// VideoListData 视频列表响应数据
type VideoListData struct {
	Videos     []VideoInfo `json:"videos"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int64       `json:"total_pages"`
}
