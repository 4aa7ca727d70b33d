package elasticsearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

var (
	client *elasticsearch.Client

	errNotInitialized = errors.New("elasticsearch client not initialized")
)

// Init 初始化 Elasticsearch 客户端并做一次连通性检查
func Init(cfg *config.ElasticsearchConfig) error {
	hosts := normalizeHosts(cfg.Hosts)
	if len(hosts) == 0 {
		return errors.New("elasticsearch hosts is empty")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     hosts,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
		RetryBackoff:  func(i int) time.Duration { return time.Duration(i) * time.Second },
	})
	if err != nil {
		return fmt.Errorf("create elasticsearch client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("elasticsearch ping failed: %s", resp.String())
	}

	client = es
	logger.Info("Elasticsearch connected", zap.Strings("hosts", hosts))
	return nil
}

// 地址缺协议时补 http 前缀，空白项丢弃
func normalizeHosts(raw []string) []string {
	hosts := make([]string, 0, len(raw))
	for _, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.HasPrefix(h, "http") {
			h = "http://" + h
		}
		hosts = append(hosts, h)
	}
	return hosts
}

// Search 执行搜索，body 为 JSON 请求体
func Search(ctx context.Context, index string, body io.Reader) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Search(
		client.Search.WithContext(ctx),
		client.Search.WithIndex(index),
		client.Search.WithBody(body),
	)
}

// Index 按文档 ID 写入或覆盖一条文档
func Index(ctx context.Context, index, id string, body io.Reader) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Index(
		index,
		body,
		client.Index.WithContext(ctx),
		client.Index.WithDocumentID(id),
	)
}

// Delete 删除文档
func Delete(ctx context.Context, index, id string) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Delete(
		index,
		id,
		client.Delete.WithContext(ctx),
	)
}

// IndicesCreate 创建索引
func IndicesCreate(ctx context.Context, index string, body io.Reader) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Indices.Create(
		index,
		client.Indices.Create.WithContext(ctx),
		client.Indices.Create.WithBody(body),
	)
}

// IndicesExists 检查索引是否存在
func IndicesExists(ctx context.Context, index string) (bool, error) {
	if client == nil {
		return false, errNotInitialized
	}
	resp, err := client.Indices.Exists(
		[]string{index},
		client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, err
	}
	return !resp.IsError() && resp.StatusCode == 200, nil
}

// Bulk 批量写入，用于全量重建索引
func Bulk(ctx context.Context, body io.Reader) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Bulk(
		body,
		client.Bulk.WithContext(ctx),
	)
}

// Close 释放客户端引用
func Close() error {
	client = nil
	logger.Info("Elasticsearch client closed")
	return nil
}
