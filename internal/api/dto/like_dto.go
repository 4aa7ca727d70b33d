package dto

// ToggleResult 点赞/订阅开关结果
type ToggleResult struct {
	Liked bool `json:"liked"`
}

// LikedVideosData 已点赞视频列表响应数据
type LikedVideosData struct {
	Videos []VideoInfo `json:"videos"`
	Total  int64       `json:"total"`
}
