package dto

// SubscribeToggleResult 订阅开关结果
type SubscribeToggleResult struct {
	Subscribed bool `json:"subscribed"`
}

// SubscriberListData 订阅者列表响应数据
type SubscriberListData struct {
	Subscribers []UserBrief `json:"subscribers"`
	Total       int64       `json:"total"`
}

// SubscribedChannelListData 已订阅频道列表响应数据
type SubscribedChannelListData struct {
	Channels []UserBrief `json:"channels"`
	Total    int64       `json:"total"`
}

// CountData 计数响应数据
type CountData struct {
	Count int64 `json:"count"`
}
