package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vidtube/internal/config"
	"vidtube/internal/infra/database"
	infraES "vidtube/internal/infra/elasticsearch"
	infraKafka "vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 搜索索引同步 worker：消费视频生命周期事件，增量维护 Elasticsearch 索引
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	topic := cfg.Kafka.Topics["video_events"]
	if topic == "" {
		logger.Fatal("Kafka topic video_events not configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	videoRepo := repository.NewVideoRepository(database.Get())

	// 消费增量事件前先全量重建，补上 worker 停机期间漏掉的变更
	if err := reindexAll(ctx, videoRepo); err != nil {
		logger.Fatal("Failed to rebuild search index", zap.Error(err))
	}

	groupID := "vidtube-search-indexer"

	logger.Info("Search index worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	handler := func(event *infraKafka.VideoEvent) error {
		return handleVideoEvent(ctx, videoRepo, event)
	}
	infraKafka.StartVideoEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)

	logger.Info("Search index worker stopped")
}

// reindexAll 分批批量写入全部已发布视频
func reindexAll(ctx context.Context, videoRepo *repository.VideoRepository) error {
	const batchSize = 500
	total := 0

	for skip := 0; ; skip += batchSize {
		videos, _, err := videoRepo.List(skip, batchSize, nil, true, nil, "", true)
		if err != nil {
			return err
		}
		if len(videos) == 0 {
			break
		}

		batch := make([]*model.Video, 0, len(videos))
		for i := range videos {
			batch = append(batch, &videos[i])
		}
		if err := infraES.BulkIndexVideos(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
	}

	logger.Info("Search index rebuilt", zap.Int("videos", total))
	return nil
}

// handleVideoEvent 按事件类型同步索引文档
func handleVideoEvent(ctx context.Context, videoRepo *repository.VideoRepository, event *infraKafka.VideoEvent) error {
	switch event.Type {
	case infraKafka.VideoEventPublished, infraKafka.VideoEventUpdated:
		video, err := videoRepo.GetByIDWithOwner(event.VideoID)
		if err != nil {
			// 事件可能晚于删除到达，按移除处理
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return infraES.RemoveVideo(ctx, event.VideoID)
			}
			return err
		}
		if !video.IsPublished {
			return infraES.RemoveVideo(ctx, event.VideoID)
		}
		return infraES.IndexVideo(ctx, video)
	case infraKafka.VideoEventUnpublished, infraKafka.VideoEventDeleted:
		return infraES.RemoveVideo(ctx, event.VideoID)
	default:
		logger.Warn("Unknown video event type", zap.String("type", event.Type), zap.Int64("video_id", event.VideoID))
		return nil
	}
}
