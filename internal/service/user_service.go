package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"vidtube/internal/api/dto"
	"vidtube/internal/media"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var ErrEmailExists = errors.New("邮箱已被占用")

type UserService struct {
	userRepo *repository.UserRepository
	subRepo  *repository.SubscriptionRepository
	uploader media.Uploader
}

func NewUserService(userRepo *repository.UserRepository, subRepo *repository.SubscriptionRepository, uploader media.Uploader) *UserService {
	return &UserService{userRepo: userRepo, subRepo: subRepo, uploader: uploader}
}

// GetMe 获取当前登录用户信息
func (s *UserService) GetMe(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// UpdateAccount 更新账户资料，只更新请求中提供的字段
func (s *UserService) UpdateAccount(userID int64, req *dto.UpdateAccountRequest) (*dto.UserInfo, error) {
	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if len(updates) == 0 {
		return s.GetMe(userID)
	}

	user, err := s.userRepo.Update(userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// UpdateAvatar 上传并更新头像
func (s *UserService) UpdateAvatar(ctx context.Context, userID int64, file *multipart.FileHeader) (*dto.UserInfo, error) {
	result, err := s.uploader.UploadImage(ctx, file, "avatars")
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Update(userID, map[string]interface{}{"avatar": result.URL})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// UpdateCoverImage 上传并更新封面图
func (s *UserService) UpdateCoverImage(ctx context.Context, userID int64, file *multipart.FileHeader) (*dto.UserInfo, error) {
	result, err := s.uploader.UploadImage(ctx, file, "covers")
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Update(userID, map[string]interface{}{"cover_image": result.URL})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// GetChannelProfile 获取频道主页信息，viewerID 非空时附带是否已订阅
func (s *UserService) GetChannelProfile(username string, viewerID *int64) (*dto.ChannelProfile, error) {
	user, err := s.userRepo.GetByUsername(strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	subscriberCount, err := s.subRepo.CountSubscribers(user.ID)
	if err != nil {
		return nil, err
	}
	subscribedCount, err := s.subRepo.CountSubscribedChannels(user.ID)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerID != nil {
		isSubscribed, err = s.subRepo.Exists(*viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ChannelProfile{
		ID:              user.ID,
		Username:        user.Username,
		FullName:        user.FullName,
		Avatar:          user.Avatar,
		CoverImage:      user.CoverImage,
		SubscriberCount: subscriberCount,
		SubscribedCount: subscribedCount,
		IsSubscribed:    isSubscribed,
	}, nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
	}
}

func toUserBrief(user *model.User) *dto.UserBrief {
	return &dto.UserBrief{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Avatar:   user.Avatar,
	}
}
