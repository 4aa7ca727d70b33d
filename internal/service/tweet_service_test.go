package service

import (
	"testing"

	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTweetService(t *testing.T) (*TweetService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewTweetService(repository.NewTweetRepository(db), repository.NewUserRepository(db))
	return svc, db
}

func TestCreateTweet(t *testing.T) {
	svc, db := newTweetService(t)
	alice := seedUser(t, db, "alice")

	info, err := svc.Create(alice.ID, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", info.Content)
	assert.NotZero(t, info.ID)
}

func TestUpdateTweet(t *testing.T) {
	svc, db := newTweetService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	created, err := svc.Create(alice.ID, "original")
	require.NoError(t, err)

	_, err = svc.Update(created.ID, bob.ID, "hijacked")
	assert.ErrorIs(t, err, ErrTweetNotFound)

	updated, err := svc.Update(created.ID, alice.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestDeleteTweet(t *testing.T) {
	svc, db := newTweetService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	created, err := svc.Create(alice.ID, "bye")
	require.NoError(t, err)

	err = svc.Delete(created.ID, bob.ID)
	assert.ErrorIs(t, err, ErrTweetNotFound)

	require.NoError(t, svc.Delete(created.ID, alice.ID))

	var count int64
	require.NoError(t, db.Model(&model.Tweet{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListTweetsByUser(t *testing.T) {
	svc, db := newTweetService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	for _, content := range []string{"one", "two", "three"} {
		_, err := svc.Create(alice.ID, content)
		require.NoError(t, err)
	}
	_, err := svc.Create(bob.ID, "other")
	require.NoError(t, err)

	data, err := svc.ListByUser(alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), data.Total)
	assert.Len(t, data.Tweets, 3)
}

func TestListTweetsByMissingUser(t *testing.T) {
	svc, _ := newTweetService(t)

	_, err := svc.ListByUser(9999, 1, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
