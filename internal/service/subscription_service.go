package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrChannelNotFound  = errors.New("频道不存在")
	ErrSelfSubscription = errors.New("不能订阅自己的频道")
)

type SubscriptionService struct {
	subRepo  *repository.SubscriptionRepository
	userRepo *repository.UserRepository
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository, userRepo *repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo, userRepo: userRepo}
}

// Toggle 订阅开关：已订阅则退订，未订阅则订阅；不能订阅自己
func (s *SubscriptionService) Toggle(subscriberID, channelID int64) (*dto.SubscribeToggleResult, error) {
	if subscriberID == channelID {
		return nil, ErrSelfSubscription
	}

	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	removed, err := s.subRepo.Delete(subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if removed {
		return &dto.SubscribeToggleResult{Subscribed: false}, nil
	}

	if _, err := s.subRepo.Create(subscriberID, channelID); err != nil {
		// 并发双写时唯一索引兜底，视同已订阅
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &dto.SubscribeToggleResult{Subscribed: true}, nil
		}
		return nil, err
	}
	return &dto.SubscribeToggleResult{Subscribed: true}, nil
}

// ListSubscribers 获取频道的订阅者列表
func (s *SubscriptionService) ListSubscribers(channelID int64, page, pageSize int) (*dto.SubscriberListData, error) {
	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	subs, total, err := s.subRepo.ListSubscribers(channelID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	briefs := make([]dto.UserBrief, 0, len(subs))
	for i := range subs {
		if subs[i].Subscriber.ID == 0 {
			continue
		}
		briefs = append(briefs, *toUserBrief(&subs[i].Subscriber))
	}
	return &dto.SubscriberListData{Subscribers: briefs, Total: total}, nil
}

// ListSubscribedChannels 获取用户订阅的频道列表
func (s *SubscriptionService) ListSubscribedChannels(subscriberID int64, page, pageSize int) (*dto.SubscribedChannelListData, error) {
	if _, err := s.userRepo.GetByID(subscriberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	subs, total, err := s.subRepo.ListSubscribedChannels(subscriberID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	briefs := make([]dto.UserBrief, 0, len(subs))
	for i := range subs {
		if subs[i].Channel.ID == 0 {
			continue
		}
		briefs = append(briefs, *toUserBrief(&subs[i].Channel))
	}
	return &dto.SubscribedChannelListData{Channels: briefs, Total: total}, nil
}

// CountSubscribers 统计频道的订阅者数
func (s *SubscriptionService) CountSubscribers(channelID int64) (*dto.CountData, error) {
	count, err := s.subRepo.CountSubscribers(channelID)
	if err != nil {
		return nil, err
	}
	return &dto.CountData{Count: count}, nil
}

// CountSubscribedChannels 统计用户订阅的频道数
func (s *SubscriptionService) CountSubscribedChannels(subscriberID int64) (*dto.CountData, error) {
	count, err := s.subRepo.CountSubscribedChannels(subscriberID)
	if err != nil {
		return nil, err
	}
	return &dto.CountData{Count: count}, nil
}
