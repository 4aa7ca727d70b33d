package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound     = errors.New("播放列表不存在")
	ErrPlaylistVideoMissing = errors.New("部分视频不存在")
)

type PlaylistService struct {
	playlistRepo *repository.PlaylistRepository
	videoRepo    *repository.VideoRepository
	userRepo     *repository.UserRepository
}

func NewPlaylistService(playlistRepo *repository.PlaylistRepository, videoRepo *repository.VideoRepository, userRepo *repository.UserRepository) *PlaylistService {
	return &PlaylistService{playlistRepo: playlistRepo, videoRepo: videoRepo, userRepo: userRepo}
}

// Create 创建播放列表，初始视频列表中任一ID不存在则整体失败，不落库
func (s *PlaylistService) Create(userID int64, req *dto.PlaylistCreateRequest) (*dto.PlaylistInfo, error) {
	videoIDs := dedupeIDs(req.VideoIDs)
	if len(videoIDs) > 0 {
		count, err := s.videoRepo.CountExisting(videoIDs)
		if err != nil {
			return nil, err
		}
		if count != int64(len(videoIDs)) {
			return nil, ErrPlaylistVideoMissing
		}
	}

	playlist := &model.Playlist{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.playlistRepo.CreateWithVideos(playlist, videoIDs); err != nil {
		return nil, err
	}

	return s.GetByID(playlist.ID)
}

// GetByID 获取播放列表详情（含按顺序排列的视频）
func (s *PlaylistService) GetByID(playlistID int64) (*dto.PlaylistInfo, error) {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return toPlaylistInfo(playlist, true), nil
}

// Update 更新播放列表信息，只更新请求中提供的字段，非作者视同不存在
func (s *PlaylistService) Update(playlistID, userID int64, req *dto.PlaylistUpdateRequest) (*dto.PlaylistInfo, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) == 0 {
		if _, err := s.playlistRepo.GetByIDAndOwner(playlistID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPlaylistNotFound
			}
			return nil, err
		}
		return s.GetByID(playlistID)
	}

	playlist, err := s.playlistRepo.UpdateOwned(playlistID, userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return toPlaylistInfo(playlist, true), nil
}

// Delete 删除播放列表及其视频关联，非作者视同不存在
func (s *PlaylistService) Delete(playlistID, userID int64) error {
	deleted, err := s.playlistRepo.DeleteOwned(playlistID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPlaylistNotFound
	}
	return nil
}

// ListByUser 获取用户的播放列表
func (s *PlaylistService) ListByUser(ownerID int64, page, pageSize int) (*dto.PlaylistListData, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	playlists, total, err := s.playlistRepo.ListByOwner(ownerID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.PlaylistInfo, 0, len(playlists))
	for i := range playlists {
		info := toPlaylistInfo(&playlists[i], false)
		count, err := s.playlistRepo.CountVideos(playlists[i].ID)
		if err != nil {
			return nil, err
		}
		info.VideoCount = count
		infos = append(infos, *info)
	}
	return &dto.PlaylistListData{Playlists: infos, Total: total}, nil
}

// AddVideo 向播放列表添加视频（集合语义），列表或视频不存在则失败
func (s *PlaylistService) AddVideo(playlistID, videoID, userID int64) (*dto.PlaylistInfo, error) {
	if _, err := s.playlistRepo.GetByIDAndOwner(playlistID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if _, err := s.playlistRepo.AddVideo(playlistID, videoID); err != nil {
		return nil, err
	}
	return s.GetByID(playlistID)
}

// RemoveVideo 从播放列表移除视频，非作者视同列表不存在
func (s *PlaylistService) RemoveVideo(playlistID, videoID, userID int64) (*dto.PlaylistInfo, error) {
	if _, err := s.playlistRepo.GetByIDAndOwner(playlistID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	removed, err := s.playlistRepo.RemoveVideo(playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrVideoNotFound
	}
	return s.GetByID(playlistID)
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toPlaylistInfo(playlist *model.Playlist, withVideos bool) *dto.PlaylistInfo {
	info := &dto.PlaylistInfo{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
	if withVideos {
		info.VideoCount = int64(len(playlist.Videos))
		videos := make([]dto.VideoInfo, 0, len(playlist.Videos))
		for i := range playlist.Videos {
			if playlist.Videos[i].Video.ID == 0 {
				continue
			}
			videos = append(videos, *toVideoInfo(&playlist.Videos[i].Video, false))
		}
		info.Videos = videos
	}
	return info
}
