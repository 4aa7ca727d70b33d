package service

import (
	"context"
	"errors"
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type eventRecorder struct {
	events []kafka.VideoEvent
}

func (r *eventRecorder) publish(_ context.Context, event *kafka.VideoEvent) error {
	r.events = append(r.events, *event)
	return nil
}

func newVideoService(t *testing.T) (*VideoService, *gorm.DB, *fakeUploader, *eventRecorder) {
	t.Helper()
	db := newTestDB(t)
	uploader := &fakeUploader{}
	rec := &eventRecorder{}
	svc := NewVideoService(repository.NewVideoRepository(db), repository.NewLikeRepository(db), uploader, rec.publish, nil)
	return svc, db, uploader, rec
}

func TestPublishVideo(t *testing.T) {
	svc, db, _, rec := newVideoService(t)
	owner := seedUser(t, db, "alice")

	req := &dto.PublishVideoRequest{Title: "First clip", Description: "hello", Duration: 95.5}
	info, err := svc.Publish(context.Background(), owner.ID, req, testFileHeader("clip.mp4"))
	require.NoError(t, err)

	assert.Equal(t, "First clip", info.Title)
	assert.Equal(t, owner.ID, info.OwnerID)
	assert.True(t, info.IsPublished)
	assert.Equal(t, "http://media.test/videos/clip.mp4", info.VideoURL)
	// 托管方不返回时长时采用请求里声明的值
	assert.Equal(t, 95.5, info.Duration)
	// 封面地址由对象标识推导
	assert.Equal(t, "http://media.test/thumbnails/videos/clip.mp4.jpg", info.ThumbnailURL)

	require.Len(t, rec.events, 1)
	assert.Equal(t, kafka.VideoEventPublished, rec.events[0].Type)
	assert.Equal(t, info.ID, rec.events[0].VideoID)
}

func TestPublishVideoRequiresFile(t *testing.T) {
	svc, db, _, _ := newVideoService(t)
	owner := seedUser(t, db, "alice")

	_, err := svc.Publish(context.Background(), owner.ID, &dto.PublishVideoRequest{Title: "x"}, nil)
	assert.ErrorIs(t, err, ErrVideoFileRequired)
}

func TestPublishVideoUploadFailure(t *testing.T) {
	svc, db, uploader, _ := newVideoService(t)
	owner := seedUser(t, db, "alice")
	uploader.uploadErr = errors.New("boom")

	_, err := svc.Publish(context.Background(), owner.ID, &dto.PublishVideoRequest{Title: "x"}, testFileHeader("clip.mp4"))
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Video{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetByIDIncrementsViews(t *testing.T) {
	svc, db, _, _ := newVideoService(t)
	owner := seedUser(t, db, "alice")
	video := seedVideo(t, db, owner.ID, "clip", true)

	info, err := svc.GetByID(context.Background(), video.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Views)

	info, err = svc.GetByID(context.Background(), video.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Views)
}

func TestGetByIDUnpublishedVisibility(t *testing.T) {
	svc, db, _, _ := newVideoService(t)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	video := seedVideo(t, db, owner.ID, "draft", false)

	// 匿名与非作者都视同不存在
	_, err := svc.GetByID(context.Background(), video.ID, nil)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	_, err = svc.GetByID(context.Background(), video.ID, &other.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	// 作者可见，且不计播放
	info, err := svc.GetByID(context.Background(), video.ID, &owner.ID)
	require.NoError(t, err)
	assert.Zero(t, info.Views)
}

func TestUpdateVideoPartial(t *testing.T) {
	svc, db, _, rec := newVideoService(t)
	owner := seedUser(t, db, "alice")
	video := seedVideo(t, db, owner.ID, "clip", true)

	title := "Renamed"
	info, err := svc.Update(context.Background(), video.ID, owner.ID, &dto.VideoUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", info.Title)
	// 未提供的字段保持原值
	assert.Equal(t, video.Description, info.Description)

	require.Len(t, rec.events, 1)
	assert.Equal(t, kafka.VideoEventUpdated, rec.events[0].Type)
}

func TestUpdateVideoByNonOwner(t *testing.T) {
	svc, db, _, _ := newVideoService(t)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	video := seedVideo(t, db, owner.ID, "clip", true)

	title := "Hijacked"
	_, err := svc.Update(context.Background(), video.ID, other.ID, &dto.VideoUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, ErrVideoNotFound)

	var stored model.Video
	require.NoError(t, db.First(&stored, video.ID).Error)
	assert.Equal(t, "clip", stored.Title)
}

func TestDeleteVideo(t *testing.T) {
	svc, db, uploader, rec := newVideoService(t)
	owner := seedUser(t, db, "alice")
	video := seedVideo(t, db, owner.ID, "clip", true)

	require.NoError(t, svc.Delete(context.Background(), video.ID, owner.ID))

	var count int64
	require.NoError(t, db.Model(&model.Video{}).Count(&count).Error)
	assert.Zero(t, count)

	// 托管方文件一并删除
	assert.Equal(t, []string{video.PublicID}, uploader.removed)

	require.Len(t, rec.events, 1)
	assert.Equal(t, kafka.VideoEventDeleted, rec.events[0].Type)
}

func TestDeleteVideoByNonOwner(t *testing.T) {
	svc, db, uploader, _ := newVideoService(t)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	video := seedVideo(t, db, owner.ID, "clip", true)

	err := svc.Delete(context.Background(), video.ID, other.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Video{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Empty(t, uploader.removed)
}

func TestTogglePublish(t *testing.T) {
	svc, db, _, rec := newVideoService(t)
	owner := seedUser(t, db, "alice")
	video := seedVideo(t, db, owner.ID, "clip", true)

	info, err := svc.TogglePublish(context.Background(), video.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, info.IsPublished)

	info, err = svc.TogglePublish(context.Background(), video.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, info.IsPublished)

	require.Len(t, rec.events, 2)
	assert.Equal(t, kafka.VideoEventUnpublished, rec.events[0].Type)
	assert.Equal(t, kafka.VideoEventPublished, rec.events[1].Type)
}

func TestListVideos(t *testing.T) {
	svc, db, _, _ := newVideoService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	seedVideo(t, db, alice.ID, "a1", true)
	seedVideo(t, db, alice.ID, "a2", true)
	seedVideo(t, db, alice.ID, "draft", false)
	seedVideo(t, db, bob.ID, "b1", true)

	data, err := svc.List(context.Background(), &dto.VideoListQuery{})
	require.NoError(t, err)
	// 公开列表不含未发布视频
	assert.Equal(t, int64(3), data.Total)
	assert.Len(t, data.Videos, 3)
	for _, v := range data.Videos {
		assert.True(t, v.IsPublished)
		require.NotNil(t, v.Owner)
	}

	data, err = svc.List(context.Background(), &dto.VideoListQuery{OwnerID: alice.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
}

func TestListVideosPagination(t *testing.T) {
	svc, db, _, _ := newVideoService(t)
	alice := seedUser(t, db, "alice")
	for i := 0; i < 5; i++ {
		seedVideo(t, db, alice.ID, string(rune('a'+i)), true)
	}

	data, err := svc.List(context.Background(), &dto.VideoListQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), data.Total)
	assert.Len(t, data.Videos, 2)
	assert.Equal(t, 2, data.Page)
	assert.Equal(t, int64(3), data.TotalPages)
}

func TestListVideosSortByViews(t *testing.T) {
	svc, db, _, _ := newVideoService(t)
	alice := seedUser(t, db, "alice")

	low := seedVideo(t, db, alice.ID, "low", true)
	high := seedVideo(t, db, alice.ID, "high", true)
	require.NoError(t, db.Model(&model.Video{}).Where("id = ?", low.ID).Update("views", 3).Error)
	require.NoError(t, db.Model(&model.Video{}).Where("id = ?", high.ID).Update("views", 42).Error)

	data, err := svc.List(context.Background(), &dto.VideoListQuery{SortBy: "views"})
	require.NoError(t, err)
	require.Len(t, data.Videos, 2)
	assert.Equal(t, high.ID, data.Videos[0].ID)
}

func TestListVideosSearchIndexPath(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	published := seedVideo(t, db, alice.ID, "hit", true)
	hidden := seedVideo(t, db, alice.ID, "hidden-hit", false)

	searchFn := func(_ context.Context, query string, skip, limit int) ([]int64, int64, error) {
		return []int64{published.ID, hidden.ID}, 2, nil
	}
	svc := NewVideoService(repository.NewVideoRepository(db), repository.NewLikeRepository(db), &fakeUploader{}, nil, searchFn)

	data, err := svc.List(context.Background(), &dto.VideoListQuery{Query: "hit"})
	require.NoError(t, err)
	// 索引可能落后于库，未发布的命中被过滤
	require.Len(t, data.Videos, 1)
	assert.Equal(t, published.ID, data.Videos[0].ID)
}

func TestListVideosSearchWithoutIndexUsesDatabase(t *testing.T) {
	svc, db, _, _ := newVideoService(t)
	alice := seedUser(t, db, "alice")
	match := seedVideo(t, db, alice.ID, "Morning Run", true)
	seedVideo(t, db, alice.ID, "night run", false)
	seedVideo(t, db, alice.ID, "Cooking", true)

	// 未接入搜索索引时直接走数据库，大小写不敏感
	data, err := svc.List(context.Background(), &dto.VideoListQuery{Query: "RUN"})
	require.NoError(t, err)
	require.Len(t, data.Videos, 1)
	assert.Equal(t, match.ID, data.Videos[0].ID)
	assert.Equal(t, int64(1), data.Total)
}

func TestListVideosSearchIndexErrorFallsBack(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	match := seedVideo(t, db, alice.ID, "fallback clip", true)

	searchFn := func(_ context.Context, query string, skip, limit int) ([]int64, int64, error) {
		return nil, 0, errors.New("index unavailable")
	}
	svc := NewVideoService(repository.NewVideoRepository(db), repository.NewLikeRepository(db), &fakeUploader{}, nil, searchFn)

	// 索引查询失败退回数据库检索
	data, err := svc.List(context.Background(), &dto.VideoListQuery{Query: "FALLBACK"})
	require.NoError(t, err)
	require.Len(t, data.Videos, 1)
	assert.Equal(t, match.ID, data.Videos[0].ID)
}

func TestGetByIDLikeInfo(t *testing.T) {
	svc, db, _, _ := newVideoService(t)
	owner := seedUser(t, db, "alice")
	fan := seedUser(t, db, "bob")
	video := seedVideo(t, db, owner.ID, "clip", true)

	likeRepo := repository.NewLikeRepository(db)
	_, err := likeRepo.Create(fan.ID, model.LikeTargetVideo, video.ID)
	require.NoError(t, err)

	detail, err := svc.GetByID(context.Background(), video.ID, &fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.LikesCount)
	assert.True(t, detail.IsLiked)

	// 匿名访问只有计数，没有个人态
	detail, err = svc.GetByID(context.Background(), video.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.LikesCount)
	assert.False(t, detail.IsLiked)
}

func TestNormalizePage(t *testing.T) {
	page, size := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = normalizePage(-3, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, size)

	page, size = normalizePage(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, size)
}
