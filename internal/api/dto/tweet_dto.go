package dto

import "time"

// TweetCreateRequest 发布动态请求
type TweetCreateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

// TweetUpdateRequest 修改动态请求
type TweetUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

// TweetInfo 动态详情
type TweetInfo struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Owner     *UserBrief `json:"owner,omitempty"`
}

// TweetListData 动态列表响应数据
type TweetListData struct {
	Tweets []TweetInfo `json:"tweets"`
	Total  int64       `json:"total"`
}
