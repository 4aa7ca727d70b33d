package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var ErrTweetNotFound = errors.New("动态不存在")

type TweetService struct {
	tweetRepo *repository.TweetRepository
	userRepo  *repository.UserRepository
}

func NewTweetService(tweetRepo *repository.TweetRepository, userRepo *repository.UserRepository) *TweetService {
	return &TweetService{tweetRepo: tweetRepo, userRepo: userRepo}
}

// Create 发布动态
func (s *TweetService) Create(userID int64, content string) (*dto.TweetInfo, error) {
	tweet := &model.Tweet{
		OwnerID: userID,
		Content: content,
	}
	if err := s.tweetRepo.Create(tweet); err != nil {
		return nil, err
	}
	return toTweetInfo(tweet), nil
}

// Update 修改动态内容，非作者视同不存在
func (s *TweetService) Update(tweetID, userID int64, content string) (*dto.TweetInfo, error) {
	if err := s.tweetRepo.UpdateOwned(tweetID, userID, content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}

	tweet, err := s.tweetRepo.GetByID(tweetID)
	if err != nil {
		return nil, err
	}
	return toTweetInfo(tweet), nil
}

// Delete 删除动态，非作者视同不存在
func (s *TweetService) Delete(tweetID, userID int64) error {
	deleted, err := s.tweetRepo.DeleteOwned(tweetID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTweetNotFound
	}
	return nil
}

// ListByUser 获取指定用户的动态，按时间倒序
func (s *TweetService) ListByUser(ownerID int64, page, pageSize int) (*dto.TweetListData, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	tweets, total, err := s.tweetRepo.ListByOwner(ownerID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.TweetInfo, 0, len(tweets))
	for i := range tweets {
		infos = append(infos, *toTweetInfo(&tweets[i]))
	}
	return &dto.TweetListData{Tweets: infos, Total: total}, nil
}

func toTweetInfo(tweet *model.Tweet) *dto.TweetInfo {
	info := &dto.TweetInfo{
		ID:        tweet.ID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
	}
	if tweet.Owner.ID != 0 {
		info.Owner = toUserBrief(&tweet.Owner)
	}
	return info
}
