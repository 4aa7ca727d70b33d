package media

import (
	"strings"
	"testing"

	"vidtube/internal/config"

	"github.com/stretchr/testify/assert"
)

func testMinIOConfig() *config.MinIOConfig {
	return &config.MinIOConfig{
		Endpoint:    "127.0.0.1:9000",
		UseSSL:      false,
		VideoBucket: "vidtube-videos",
		ImageBucket: "vidtube-images",
	}
}

func TestThumbnailURL(t *testing.T) {
	u := NewMinIOUploader(testMinIOConfig())

	got := u.ThumbnailURL("videos/9f1c2d3e.mp4")
	assert.Equal(t, "http://127.0.0.1:9000/vidtube-images/thumbnails/w_300-h_200-c_fill-so_1/9f1c2d3e.jpg", got)
}

func TestThumbnailURLDeterministic(t *testing.T) {
	u := NewMinIOUploader(testMinIOConfig())

	// 同一对象标识必须总是得到同一封面地址
	first := u.ThumbnailURL("videos/clip-01.mp4")
	second := u.ThumbnailURL("videos/clip-01.mp4")
	assert.Equal(t, first, second)

	other := u.ThumbnailURL("videos/clip-02.mp4")
	assert.NotEqual(t, first, other)
}

func TestThumbnailURLUsesSSLScheme(t *testing.T) {
	cfg := testMinIOConfig()
	cfg.UseSSL = true
	u := NewMinIOUploader(cfg)

	got := u.ThumbnailURL("videos/clip.mp4")
	assert.True(t, strings.HasPrefix(got, "https://127.0.0.1:9000/"))
}

func TestThumbnailURLStripsExtension(t *testing.T) {
	u := NewMinIOUploader(testMinIOConfig())

	got := u.ThumbnailURL("videos/clip.webm")
	assert.True(t, strings.HasSuffix(got, "/clip.jpg"))
	assert.NotContains(t, got, ".webm")
}

func TestObjectName(t *testing.T) {
	name := objectName("avatars", "Photo.PNG")

	assert.True(t, strings.HasPrefix(name, "avatars/"))
	assert.True(t, strings.HasSuffix(name, ".png"), "扩展名应保留并转为小写")

	// 同名文件生成不同对象名，避免覆盖
	other := objectName("avatars", "Photo.PNG")
	assert.NotEqual(t, name, other)
}

func TestObjectNameWithoutExtension(t *testing.T) {
	name := objectName("covers", "noext")
	assert.True(t, strings.HasPrefix(name, "covers/"))
	assert.False(t, strings.Contains(name[len("covers/"):], "."))
}
