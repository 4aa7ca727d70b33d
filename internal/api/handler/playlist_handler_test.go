package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playlistPayload struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	VideoCount int64  `json:"video_count"`
}

func createTestPlaylist(t *testing.T, r *gin.Engine, token string, body map[string]any) playlistPayload {
	t.Helper()
	w, env := doRequest(t, r, withBearer(jsonRequest(t, http.MethodPost, "/api/v1/playlists", body), token))
	require.Equal(t, http.StatusCreated, w.Code, "创建失败: %s", env.Message)

	var p playlistPayload
	require.NoError(t, json.Unmarshal(env.Data, &p))
	return p
}

func TestCreatePlaylistWithVideos(t *testing.T) {
	r, _ := newTestServer(t)
	_, token := registerAndLogin(t, r, "alice")
	v1 := publishTestVideo(t, r, token, "v1")
	v2 := publishTestVideo(t, r, token, "v2")

	p := createTestPlaylist(t, r, token, map[string]any{
		"name":      "Favorites",
		"video_ids": []int64{v1, v2},
	})
	assert.Equal(t, "Favorites", p.Name)
	assert.Equal(t, int64(2), p.VideoCount)
}

func TestCreatePlaylistWithMissingVideo(t *testing.T) {
	r, _ := newTestServer(t)
	_, token := registerAndLogin(t, r, "alice")
	v1 := publishTestVideo(t, r, token, "v1")

	w, env := doRequest(t, r, withBearer(jsonRequest(t, http.MethodPost, "/api/v1/playlists",
		map[string]any{"name": "Broken", "video_ids": []int64{v1, 9999}}), token))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestPlaylistAddAndRemoveVideo(t *testing.T) {
	r, _ := newTestServer(t)
	_, token := registerAndLogin(t, r, "alice")
	videoID := publishTestVideo(t, r, token, "clip")

	p := createTestPlaylist(t, r, token, map[string]any{"name": "L"})

	addURL := fmt.Sprintf("/api/v1/playlists/%d/videos/%d", p.ID, videoID)
	w, env := doRequest(t, r, withBearer(httptestNewPost(addURL), token))
	require.Equal(t, http.StatusOK, w.Code)

	var updated playlistPayload
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, int64(1), updated.VideoCount)

	// 重复添加不产生重复项
	w, env = doRequest(t, r, withBearer(httptestNewPost(addURL), token))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, int64(1), updated.VideoCount)

	w, env = doRequest(t, r, withBearer(jsonRequest(t, http.MethodDelete, addURL, nil), token))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Zero(t, updated.VideoCount)
}

func TestPlaylistDetailPublic(t *testing.T) {
	r, _ := newTestServer(t)
	_, token := registerAndLogin(t, r, "alice")

	p := createTestPlaylist(t, r, token, map[string]any{"name": "Public list"})

	// 详情无需登录
	w, env := doRequest(t, r, httptestNewGet(fmt.Sprintf("/api/v1/playlists/%d", p.ID)))
	require.Equal(t, http.StatusOK, w.Code)

	var got playlistPayload
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Public list", got.Name)
}

func TestPlaylistUpdateByNonOwner(t *testing.T) {
	r, _ := newTestServer(t)
	_, aliceToken := registerAndLogin(t, r, "alice")
	_, bobToken := registerAndLogin(t, r, "bob")

	p := createTestPlaylist(t, r, aliceToken, map[string]any{"name": "Mine"})

	w, env := doRequest(t, r, withBearer(jsonRequest(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/playlists/%d", p.ID),
		map[string]string{"name": "hijacked"}), bobToken))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestDashboardStatsPublic(t *testing.T) {
	r, _ := newTestServer(t)
	aliceID, token := registerAndLogin(t, r, "alice")
	videoID := publishTestVideo(t, r, token, "clip")

	// 播放一次
	w, _ := doRequest(t, r, httptestNewGet(fmt.Sprintf("/api/v1/videos/%d", videoID)))
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doRequest(t, r, httptestNewGet(fmt.Sprintf("/api/v1/dashboard/stats/%d", aliceID)))
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalVideos int64 `json:"total_videos"`
		TotalViews  int64 `json:"total_views"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(1), stats.TotalVideos)
	assert.Equal(t, int64(1), stats.TotalViews)
}
