package service

import (
	"context"
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewUserService(
		repository.NewUserRepository(db),
		repository.NewSubscriptionRepository(db),
		&fakeUploader{},
	)
	return svc, db
}

func TestGetMe(t *testing.T) {
	svc, db := newUserService(t)
	alice := seedUser(t, db, "alice")

	info, err := svc.GetMe(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "alice@example.com", info.Email)

	_, err = svc.GetMe(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateAccountPartial(t *testing.T) {
	svc, db := newUserService(t)
	alice := seedUser(t, db, "alice")

	fullName := "Alice Renamed"
	info, err := svc.UpdateAccount(alice.ID, &dto.UpdateAccountRequest{FullName: &fullName})
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", info.FullName)
	// 未提供的字段保持原值
	assert.Equal(t, "alice@example.com", info.Email)
}

func TestUpdateAccountEmptyRequest(t *testing.T) {
	svc, db := newUserService(t)
	alice := seedUser(t, db, "alice")

	info, err := svc.UpdateAccount(alice.ID, &dto.UpdateAccountRequest{})
	require.NoError(t, err)
	assert.Equal(t, alice.Username, info.Username)
}

func TestUpdateAccountDuplicateEmail(t *testing.T) {
	svc, db := newUserService(t)
	alice := seedUser(t, db, "alice")
	seedUser(t, db, "bob")

	email := "bob@example.com"
	_, err := svc.UpdateAccount(alice.ID, &dto.UpdateAccountRequest{Email: &email})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUpdateAvatar(t *testing.T) {
	svc, db := newUserService(t)
	alice := seedUser(t, db, "alice")

	info, err := svc.UpdateAvatar(context.Background(), alice.ID, testFileHeader("new.png"))
	require.NoError(t, err)
	assert.Equal(t, "http://media.test/avatars/new.png", info.Avatar)

	var stored model.User
	require.NoError(t, db.First(&stored, alice.ID).Error)
	assert.Equal(t, info.Avatar, stored.Avatar)
}

func TestUpdateCoverImage(t *testing.T) {
	svc, db := newUserService(t)
	alice := seedUser(t, db, "alice")

	info, err := svc.UpdateCoverImage(context.Background(), alice.ID, testFileHeader("cover.jpg"))
	require.NoError(t, err)
	require.NotNil(t, info.CoverImage)
	assert.Equal(t, "http://media.test/covers/cover.jpg", *info.CoverImage)
}

func TestGetChannelProfile(t *testing.T) {
	svc, db := newUserService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	require.NoError(t, db.Create(&model.Subscription{SubscriberID: bob.ID, ChannelID: alice.ID}).Error)
	require.NoError(t, db.Create(&model.Subscription{SubscriberID: alice.ID, ChannelID: carol.ID}).Error)

	// 匿名访问
	profile, err := svc.GetChannelProfile("alice", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.SubscriberCount)
	assert.Equal(t, int64(1), profile.SubscribedCount)
	assert.False(t, profile.IsSubscribed)

	// 已订阅的登录用户
	profile, err = svc.GetChannelProfile("ALICE", &bob.ID)
	require.NoError(t, err)
	assert.True(t, profile.IsSubscribed)

	// 未订阅的登录用户
	profile, err = svc.GetChannelProfile("alice", &carol.ID)
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)
}

func TestGetChannelProfileMissingUser(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetChannelProfile("nobody", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
