package kafka

import (
	"context"
	"encoding/json"
	"time"

	"vidtube/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventHandler 处理视频事件的回调函数
type EventHandler func(event *VideoEvent) error

// StartVideoEventConsumer 启动视频事件消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartVideoEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler EventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka video event consumer stopped")
	}()

	logger.Info("Kafka video event consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var event VideoEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("Failed to unmarshal video event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(&event); err != nil {
			logger.Error("Failed to handle video event",
				zap.Int64("video_id", event.VideoID),
				zap.String("type", event.Type),
				zap.Error(err),
			)
		}
	}
}
