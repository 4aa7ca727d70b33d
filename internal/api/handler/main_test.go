package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"vidtube/internal/api/handler"
	"vidtube/internal/api/router"
	"vidtube/internal/config"
	"vidtube/internal/media"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
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
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "vidtube-handler-test")
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

// stubUploader 不触网的媒体托管客户端替身
type stubUploader struct{}

func (stubUploader) UploadVideo(_ context.Context, file *multipart.FileHeader) (*media.UploadResult, error) {
	return &media.UploadResult{
		URL:      "http://media.test/videos/" + file.Filename,
		PublicID: "videos/" + file.Filename,
	}, nil
}

func (stubUploader) UploadImage(_ context.Context, file *multipart.FileHeader, folder string) (*media.UploadResult, error) {
	return &media.UploadResult{
		URL:      "http://media.test/" + folder + "/" + file.Filename,
		PublicID: folder + "/" + file.Filename,
	}, nil
}

func (stubUploader) Remove(context.Context, string, bool) error { return nil }

func (stubUploader) ThumbnailURL(publicID string) string {
	return "http://media.test/thumbnails/" + publicID + ".jpg"
}

// newTestServer 组装完整路由，数据库为内存 SQLite
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
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

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	uploader := stubUploader{}

	authService := service.NewAuthService(userRepo, uploader)
	userService := service.NewUserService(userRepo, subRepo, uploader)
	videoService := service.NewVideoService(videoRepo, likeRepo, uploader, nil, nil)
	commentService := service.NewCommentService(commentRepo, videoRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	tweetService := service.NewTweetService(tweetRepo, userRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	subService := service.NewSubscriptionService(subRepo, userRepo)
	dashboardService := service.NewDashboardService(statsRepo, videoRepo, userRepo, nil)

	r := gin.New()
	router.Setup(r,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewVideoHandler(videoService),
		handler.NewCommentHandler(commentService),
		handler.NewLikeHandler(likeService),
		handler.NewTweetHandler(tweetService),
		handler.NewPlaylistHandler(playlistService),
		handler.NewSubscriptionHandler(subService),
		handler.NewDashboardHandler(dashboardService),
	)
	return r, db
}

// envelope 统一响应包装的解码结果
type envelope struct {
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func doRequest(t *testing.T, r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "响应不是统一包装格式: %s", w.Body.String())
	return w, env
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// multipartRequest 构造带文件的 multipart 请求
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for field, filename := range files {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = io.WriteString(fw, "fake file content")
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// registerAndLogin 注册并登录一个用户，返回用户ID和访问令牌
func registerAndLogin(t *testing.T, r *gin.Engine, username string) (int64, string) {
	t.Helper()

	req := multipartRequest(t, http.MethodPost, "/api/v1/users/register",
		map[string]string{
			"username":  username,
			"email":     username + "@example.com",
			"full_name": "Test " + username,
			"password":  "password123",
		},
		map[string]string{"avatar": "avatar.png"},
	)
	w, env := doRequest(t, r, req)
	require.Equal(t, http.StatusCreated, w.Code, "注册失败: %s", env.Message)

	var user struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))

	w, env = doRequest(t, r, jsonRequest(t, http.MethodPost, "/api/v1/users/login",
		map[string]string{"username": username, "password": "password123"}))
	require.Equal(t, http.StatusOK, w.Code, "登录失败: %s", env.Message)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)

	return user.ID, login.AccessToken
}

func httptestNewGet(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func httptestNewPost(target string) *http.Request {
	return httptest.NewRequest(http.MethodPost, target, nil)
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
