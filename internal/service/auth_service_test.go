package service

import (
	"context"
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), &fakeUploader{}), db
}

func TestRegister(t *testing.T) {
	svc, db := newAuthService(t)

	req := &dto.RegisterRequest{
		Username: "Alice",
		Email:    "alice@example.com",
		FullName: "Alice Example",
		Password: "password123",
	}
	info, err := svc.Register(context.Background(), req, testFileHeader("avatar.png"), nil)
	require.NoError(t, err)

	// 用户名入库前统一转小写
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "alice@example.com", info.Email)
	assert.NotEmpty(t, info.Avatar)
	assert.Nil(t, info.CoverImage)

	var stored model.User
	require.NoError(t, db.First(&stored, info.ID).Error)
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, utils.VerifyPassword("password123", stored.Password))
}

func TestRegisterWithCoverImage(t *testing.T) {
	svc, _ := newAuthService(t)

	req := &dto.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		FullName: "Bob",
		Password: "password123",
	}
	info, err := svc.Register(context.Background(), req, testFileHeader("avatar.png"), testFileHeader("cover.jpg"))
	require.NoError(t, err)
	require.NotNil(t, info.CoverImage)
	assert.Contains(t, *info.CoverImage, "covers/")
}

func TestRegisterRequiresAvatar(t *testing.T) {
	svc, _ := newAuthService(t)

	req := &dto.RegisterRequest{Username: "bob", Email: "bob@example.com", FullName: "Bob", Password: "password123"}
	_, err := svc.Register(context.Background(), req, nil, nil)
	assert.ErrorIs(t, err, ErrAvatarRequired)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, db := newAuthService(t)
	seedUser(t, db, "alice")

	// 用户名冲突
	req := &dto.RegisterRequest{Username: "ALICE", Email: "new@example.com", FullName: "A", Password: "password123"}
	_, err := svc.Register(context.Background(), req, testFileHeader("avatar.png"), nil)
	assert.ErrorIs(t, err, ErrUserExists)

	// 邮箱冲突
	req = &dto.RegisterRequest{Username: "newname", Email: "alice@example.com", FullName: "A", Password: "password123"}
	_, err = svc.Register(context.Background(), req, testFileHeader("avatar.png"), nil)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	svc, db := newAuthService(t)
	user := seedUser(t, db, "alice")

	data, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, data.User.ID)
	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)

	// 访问令牌能解析出正确的用户
	claims, err := utils.ParseAccessToken(data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// 刷新令牌落库
	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, data.RefreshToken, *stored.RefreshToken)
}

func TestLoginByEmail(t *testing.T) {
	svc, db := newAuthService(t)
	seedUser(t, db, "alice")

	data, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", data.User.Username)
}

func TestLoginInvalidCredential(t *testing.T) {
	svc, db := newAuthService(t)
	seedUser(t, db, "alice")

	_, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Login(&dto.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Login(&dto.LoginRequest{Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRefreshRotatesStoredToken(t *testing.T) {
	svc, db := newAuthService(t)
	user := seedUser(t, db, "alice")

	data, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	pair, err := svc.Refresh(data.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// 库中保存的是最新一枚
	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, pair.RefreshToken, *stored.RefreshToken)
}

func TestRefreshAfterLogoutFails(t *testing.T) {
	svc, db := newAuthService(t)
	user := seedUser(t, db, "alice")

	data, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(user.ID))

	// 登出后签名仍有效的旧令牌也不能再用
	_, err = svc.Refresh(data.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Refresh("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, db := newAuthService(t)
	user := seedUser(t, db, "alice")

	require.NoError(t, svc.Logout(user.ID))
	require.NoError(t, svc.Logout(user.ID))
}

func TestChangePassword(t *testing.T) {
	svc, db := newAuthService(t)
	user := seedUser(t, db, "alice")

	err := svc.ChangePassword(user.ID, "wrong-password", "newpassword")
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(user.ID, "password123", "newpassword"))

	_, err = svc.Login(&dto.LoginRequest{Username: "alice", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Login(&dto.LoginRequest{Username: "alice", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestChangePasswordUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	err := svc.ChangePassword(9999, "password123", "newpassword")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
