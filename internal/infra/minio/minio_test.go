package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	url := PublicURL("127.0.0.1:9000", false, "vidtube-videos", "videos/9f1c2d3e.mp4")
	assert.Equal(t, "http://127.0.0.1:9000/vidtube-videos/videos/9f1c2d3e.mp4", url)
}

func TestPublicURLWithSSL(t *testing.T) {
	url := PublicURL("media.example.com", true, "vidtube-images", "avatars/abc.png")
	assert.Equal(t, "https://media.example.com/vidtube-images/avatars/abc.png", url)
}
