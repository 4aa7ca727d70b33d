package model

import "time"

// 点赞目标类型（标签联合：video / comment / tweet 三选一）
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like 点赞模型
// (user_id, target_type, target_id) 唯一索引保证同一用户对同一目标至多一条记录，
// 并发切换时落败方会触发唯一约束而不是产生重复记录
type Like struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:uq_user_target_like;index:idx_likes_user_id;comment:点赞用户ID" json:"user_id"`
	TargetType string    `gorm:"size:20;not null;uniqueIndex:uq_user_target_like;comment:点赞目标类型" json:"target_type"`
	TargetID   int64     `gorm:"not null;uniqueIndex:uq_user_target_like;index:idx_likes_target_id;comment:点赞目标ID" json:"target_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_likes_created_at;comment:点赞时间" json:"created_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Like) TableName() string {
	return "likes"
}
