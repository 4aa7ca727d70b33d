package service

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"vidtube/internal/config"
	"vidtube/internal/media"
	"vidtube/internal/model"
	"vidtube/pkg/logger"
	"vidtube/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testConfigYAML = `
app:
  name: vidtube-test
  version: test
  mode: test
  port: 8000
minio:
  endpoint: 127.0.0.1:9000
  use_ssl: false
  video_bucket: vidtube-videos
  image_bucket: vidtube-images
jwt:
  access_secret: test-access-secret
  refresh_secret: test-refresh-secret
  access_expire_minutes: 30
  refresh_expire_days: 14
log:
  level: error
  format: console
  output: stdout
`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "vidtube-service-test")
	if err != nil {
		panic(err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(testConfigYAML), 0644); err != nil {
		panic(err)
	}
	if _, err := config.Load(cfgPath); err != nil {
		panic(err)
	}
	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		panic(err)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// newTestDB 打开单连接的内存 SQLite，避免连接池各自挂一个空库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Tweet{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	))
	return db
}

// fakeUploader 不触网的媒体托管客户端替身
type fakeUploader struct {
	uploadErr error
	removed   []string
}

func (f *fakeUploader) UploadVideo(_ context.Context, file *multipart.FileHeader) (*media.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &media.UploadResult{
		URL:      "http://media.test/videos/" + file.Filename,
		PublicID: "videos/" + file.Filename,
	}, nil
}

func (f *fakeUploader) UploadImage(_ context.Context, file *multipart.FileHeader, folder string) (*media.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &media.UploadResult{
		URL:      "http://media.test/" + folder + "/" + file.Filename,
		PublicID: folder + "/" + file.Filename,
	}, nil
}

func (f *fakeUploader) Remove(_ context.Context, publicID string, _ bool) error {
	f.removed = append(f.removed, publicID)
	return nil
}

func (f *fakeUploader) ThumbnailURL(publicID string) string {
	return "http://media.test/thumbnails/" + publicID + ".jpg"
}

func testFileHeader(filename string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: filename,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/octet-stream"}},
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test " + username,
		Password: hash,
		Avatar:   "http://media.test/avatars/" + username + ".png",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedVideo(t *testing.T, db *gorm.DB, ownerID int64, title string, published bool) *model.Video {
	t.Helper()
	video := &model.Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  "about " + title,
		VideoURL:     "http://media.test/videos/" + title + ".mp4",
		ThumbnailURL: "http://media.test/thumbnails/" + title + ".jpg",
		PublicID:     "videos/" + title + ".mp4",
		Duration:     120,
		IsPublished:  published,
	}
	require.NoError(t, db.Create(video).Error)
	require.NoError(t, db.Model(video).Update("is_published", published).Error)
	return video
}
