package model

import "time"

// Subscription 订阅关系模型
// (subscriber_id, channel_id) 唯一索引保证同一对用户至多一条订阅记录
type Subscription struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:订阅关系ID" json:"id"`
	SubscriberID int64     `gorm:"not null;uniqueIndex:uq_subscriber_channel;index:idx_subscriptions_subscriber_id;comment:订阅者用户ID" json:"subscriber_id"`
	ChannelID    int64     `gorm:"not null;uniqueIndex:uq_subscriber_channel;index:idx_subscriptions_channel_id;comment:被订阅频道（用户）ID" json:"channel_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_subscriptions_created_at;comment:订阅时间" json:"created_at"`

	// 关联关系
	Subscriber User `gorm:"foreignKey:SubscriberID" json:"subscriber,omitempty"`
	Channel    User `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
