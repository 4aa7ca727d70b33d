package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

// GetVideosIndexMapping 返回 videos 索引的 mapping
func GetVideosIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"owner_id": {"type": "long"},
				"owner_name": {"type": "keyword"},
				"title": {
					"type": "text",
					"analyzer": "standard",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 200}}
				},
				"description": {
					"type": "text",
					"analyzer": "standard"
				},
				"thumbnail_url": {"type": "keyword", "index": false},
				"duration": {"type": "float"},
				"views": {"type": "long"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// videosIndexName 返回配置的 videos 索引名
func videosIndexName() string {
	cfg := config.GetElasticsearch()
	indexName := cfg.Index["videos"]
	if indexName == "" {
		indexName = "videos"
	}
	return indexName
}

// EnsureVideosIndex 确保 videos 索引存在，不存在则创建
func EnsureVideosIndex(ctx context.Context) error {
	indexName := videosIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(GetVideosIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureVideosIndex(ctx)
}
