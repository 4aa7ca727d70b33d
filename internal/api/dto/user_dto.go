package dto

import "time"

// UserInfo 用户公开信息（不含密码和刷新令牌）
type UserInfo struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Avatar     string    `json:"avatar"`
	CoverImage *string   `json:"cover_image"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserBrief 嵌套在其他资源中的作者简要信息
type UserBrief struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// UpdateAccountRequest 更新账户资料请求（提供哪个字段就更新哪个）
type UpdateAccountRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
}

// ChannelProfile 频道主页信息
type ChannelProfile struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	FullName        string  `json:"full_name"`
	Avatar          string  `json:"avatar"`
	CoverImage      *string `json:"cover_image"`
	SubscriberCount int64   `json:"subscriber_count"`
	SubscribedCount int64   `json:"subscribed_count"`
	IsSubscribed    bool    `json:"is_subscribed"`
}
