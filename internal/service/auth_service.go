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
	"vidtube/pkg/logger"
	"vidtube/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserExists          = errors.New("用户名或邮箱已存在")
	ErrInvalidCredential   = errors.New("用户名或密码错误")
	ErrInvalidRefreshToken = errors.New("无效或已失效的刷新令牌")
	ErrWrongPassword       = errors.New("原密码错误")
	ErrAvatarRequired      = errors.New("头像文件不能为空")
)

type AuthService struct {
	userRepo *repository.UserRepository
	uploader media.Uploader
}

func NewAuthService(userRepo *repository.UserRepository, uploader media.Uploader) *AuthService {
	return &AuthService{userRepo: userRepo, uploader: uploader}
}

// Register 用户注册，头像必传，封面图可选
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, avatar, coverImage *multipart.FileHeader) (*dto.UserInfo, error) {
	if avatar == nil {
		return nil, ErrAvatarRequired
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	exists, err := s.userRepo.ExistsByUsernameOrEmail(username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	avatarResult, err := s.uploader.UploadImage(ctx, avatar, "avatars")
	if err != nil {
		return nil, err
	}

	var coverURL *string
	if coverImage != nil {
		coverResult, err := s.uploader.UploadImage(ctx, coverImage, "covers")
		if err != nil {
			return nil, err
		}
		coverURL = &coverResult.URL
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:   username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   hashedPassword,
		Avatar:     avatarResult.URL,
		CoverImage: coverURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		// 并发注册可能绕过预检查，唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return toUserInfo(user), nil
}

// Login 用户登录，签发令牌对并持久化刷新令牌
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginData, error) {
	identifier := strings.ToLower(strings.TrimSpace(req.Username))
	if identifier == "" {
		identifier = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if identifier == "" {
		return nil, ErrInvalidCredential
	}

	user, err := s.userRepo.GetByUsernameOrEmail(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	pair, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in", zap.Int64("user_id", user.ID))
	return &dto.LoginData{
		User:         *toUserInfo(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Refresh 校验刷新令牌并轮换，旧令牌立即作废
func (s *AuthService) Refresh(refreshToken string) (*dto.TokenPair, error) {
	claims, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	// 只认数据库中保存的那一枚，登出或轮换后旧令牌即失效
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	return s.issueTokenPair(user.ID)
}

// Logout 清除保存的刷新令牌，重复登出幂等
func (s *AuthService) Logout(userID int64) error {
	if err := s.userRepo.ClearRefreshToken(userID); err != nil {
		return err
	}
	logger.Info("User logged out", zap.Int64("user_id", userID))
	return nil
}

// ChangePassword 修改密码，需校验原密码
func (s *AuthService) ChangePassword(userID int64, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !utils.VerifyPassword(oldPassword, user.Password) {
		return ErrWrongPassword
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	_, err = s.userRepo.Update(userID, map[string]interface{}{"password": hashedPassword})
	return err
}

// issueTokenPair 签发访问/刷新令牌对并覆盖保存刷新令牌
func (s *AuthService) issueTokenPair(userID int64) (*dto.TokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetRefreshToken(userID, refreshToken); err != nil {
		return nil, err
	}
	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
