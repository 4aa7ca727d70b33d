package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var ErrLikeTargetNotFound = errors.New("点赞对象不存在")

type LikeService struct {
	likeRepo    *repository.LikeRepository
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
	tweetRepo   *repository.TweetRepository
}

func NewLikeService(likeRepo *repository.LikeRepository, videoRepo *repository.VideoRepository, commentRepo *repository.CommentRepository, tweetRepo *repository.TweetRepository) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

// Toggle 点赞开关：已赞则取消，未赞则点赞
func (s *LikeService) Toggle(userID int64, targetType string, targetID int64) (*dto.ToggleResult, error) {
	if err := s.checkTargetExists(targetType, targetID); err != nil {
		return nil, err
	}

	removed, err := s.likeRepo.Delete(userID, targetType, targetID)
	if err != nil {
		return nil, err
	}
	if removed {
		return &dto.ToggleResult{Liked: false}, nil
	}

	if _, err := s.likeRepo.Create(userID, targetType, targetID); err != nil {
		// 并发双写时唯一索引兜底，视同已点赞
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &dto.ToggleResult{Liked: true}, nil
		}
		return nil, err
	}
	return &dto.ToggleResult{Liked: true}, nil
}

// LikedVideos 获取当前用户点赞过的已发布视频
func (s *LikeService) LikedVideos(userID int64, page, pageSize int) (*dto.LikedVideosData, error) {
	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	ids, total, err := s.likeRepo.GetLikedVideoIDs(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	videos, err := s.videoRepo.GetByIDsWithOwner(ids)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		if !videos[i].IsPublished {
			continue
		}
		infos = append(infos, *toVideoInfo(&videos[i], true))
	}
	return &dto.LikedVideosData{Videos: infos, Total: total}, nil
}

func (s *LikeService) checkTargetExists(targetType string, targetID int64) error {
	var err error
	switch targetType {
	case model.LikeTargetVideo:
		_, err = s.videoRepo.GetByID(targetID)
	case model.LikeTargetComment:
		_, err = s.commentRepo.GetByID(targetID)
	case model.LikeTargetTweet:
		_, err = s.tweetRepo.GetByID(targetID)
	default:
		return ErrLikeTargetNotFound
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLikeTargetNotFound
		}
		return err
	}
	return nil
}
