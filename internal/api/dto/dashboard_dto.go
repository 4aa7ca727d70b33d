package dto

// ChannelStats 频道统计数据
type ChannelStats struct {
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalSubscribed  int64 `json:"total_subscribed"`
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
}

// ChannelVideosData 频道视频列表响应数据（含未发布）
type ChannelVideosData struct {
	Videos []VideoInfo `json:"videos"`
	Total  int64       `json:"total"`
}
