package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"vidtube/internal/model"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

// VideoDoc videos 索引中的文档结构
type VideoDoc struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	OwnerName    string    `json:"owner_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
}

// VideoToDoc 将视频模型转换为索引文档
func VideoToDoc(video *model.Video) *VideoDoc {
	doc := &VideoDoc{
		ID:           video.ID,
		OwnerID:      video.OwnerID,
		Title:        video.Title,
		Description:  video.Description,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		Views:        video.Views,
		CreatedAt:    video.CreatedAt,
	}
	if video.Owner.ID != 0 {
		doc.OwnerName = video.Owner.Username
	}
	return doc
}

// IndexVideo 将单个视频写入索引（新增或覆盖）
func IndexVideo(ctx context.Context, video *model.Video) error {
	doc := VideoToDoc(video)

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal video doc: %w", err)
	}

	resp, err := Index(ctx, videosIndexName(), strconv.FormatInt(doc.ID, 10), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("index video: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index video failed: %s", resp.String())
	}

	logger.Info("Video indexed", zap.Int64("video_id", doc.ID))
	return nil
}

// RemoveVideo 从索引中删除视频
func RemoveVideo(ctx context.Context, videoID int64) error {
	resp, err := Delete(ctx, videosIndexName(), strconv.FormatInt(videoID, 10))
	if err != nil {
		return fmt.Errorf("delete video doc: %w", err)
	}
	defer resp.Body.Close()

	// 404 说明文档本就不存在，视为删除成功
	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete video doc failed: %s", resp.String())
	}

	logger.Info("Video removed from index", zap.Int64("video_id", videoID))
	return nil
}

// BulkIndexVideos 批量写入视频文档
func BulkIndexVideos(ctx context.Context, videos []*model.Video) error {
	if len(videos) == 0 {
		return nil
	}

	indexName := videosIndexName()
	var buf bytes.Buffer
	for _, video := range videos {
		doc := VideoToDoc(video)

		meta := fmt.Sprintf(`{"index":{"_index":%q,"_id":%q}}`, indexName, strconv.FormatInt(doc.ID, 10))
		buf.WriteString(meta)
		buf.WriteByte('\n')

		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal video doc: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	resp, err := Bulk(ctx, &buf)
	if err != nil {
		return fmt.Errorf("bulk index videos: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("bulk index videos failed: %s", resp.String())
	}

	logger.Info("Videos bulk indexed", zap.Int("count", len(videos)))
	return nil
}

// SearchVideos 按关键词搜索视频，返回命中的视频ID（按相关度排序）
func SearchVideos(ctx context.Context, query string, skip, limit int) ([]int64, int64, error) {
	body := map[string]any{
		"from": skip,
		"size": limit,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"title^3", "description", "owner_name^2"},
			},
		},
		"_source": []string{"id"},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal search body: %w", err)
	}

	resp, err := Search(ctx, videosIndexName(), bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("search videos: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, 0, fmt.Errorf("search videos failed: %s", resp.String())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]int64, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, result.Hits.Total.Value, nil
}
