package repositories_test

import (
	"testing"
	"time"

	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps one store per test across the
	// connection pool.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Notification{}))
	return db
}

func seedNotification(t *testing.T, repo repositories.NotificationRepository, ownerID, message string) *models.Notification {
	t.Helper()
	n := &models.Notification{
		OwnerID: ownerID,
		Message: message,
		Link:    "/posts/" + uuid.NewString(),
	}
	require.NoError(t, repo.Create(n))
	return n
}

func TestNotificationRepository_CreateAndFind(t *testing.T) {
	repo := repositories.NewNotificationRepository(newTestDB(t))
	ownerID := uuid.NewString()

	created := seedNotification(t, repo, ownerID, "hi")
	assert.NotEmpty(t, created.ID, "id must be generated on create")
	assert.False(t, created.Read)

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, ownerID, found.OwnerID)
	assert.Equal(t, "hi", found.Message)
}

func TestNotificationRepository_FindByID_NotFound(t *testing.T) {
	repo := repositories.NewNotificationRepository(newTestDB(t))

	_, err := repo.FindByID(uuid.NewString())
	assert.ErrorIs(t, err, repositories.ErrNotificationNotFound)
}

func TestNotificationRepository_FindByOwner_CreationOrder(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewNotificationRepository(db)
	ownerID := uuid.NewString()

	// Insert with explicit timestamps so ordering does not depend on
	// sub-millisecond clock resolution.
	base := time.Now().Add(-time.Hour)
	for i, msg := range []string{"first", "second", "third"} {
		n := &models.Notification{OwnerID: ownerID, Message: msg}
		n.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(n).Error)
	}
	seedNotification(t, repo, uuid.NewString(), "someone else's")

	notifications, err := repo.FindByOwner(ownerID, false)
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	assert.Equal(t, "first", notifications[0].Message)
	assert.Equal(t, "second", notifications[1].Message)
	assert.Equal(t, "third", notifications[2].Message)
}

func TestNotificationRepository_FindByOwner_UnreadOnly(t *testing.T) {
	repo := repositories.NewNotificationRepository(newTestDB(t))
	ownerID := uuid.NewString()

	read := seedNotification(t, repo, ownerID, "already read")
	read.MarkRead()
	require.NoError(t, repo.Update(read))
	seedNotification(t, repo, ownerID, "still unread")

	unread, err := repo.FindByOwner(ownerID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "still unread", unread[0].Message)

	all, err := repo.FindByOwner(ownerID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNotificationRepository_CountUnread(t *testing.T) {
	repo := repositories.NewNotificationRepository(newTestDB(t))
	ownerID := uuid.NewString()

	count, err := repo.CountUnread(ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	seedNotification(t, repo, ownerID, "one")
	seedNotification(t, repo, ownerID, "two")
	seedNotification(t, repo, uuid.NewString(), "not mine")

	count, err = repo.CountUnread(ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNotificationRepository_Delete(t *testing.T) {
	repo := repositories.NewNotificationRepository(newTestDB(t))
	ownerID := uuid.NewString()

	n := seedNotification(t, repo, ownerID, "to delete")
	require.NoError(t, repo.Delete(n))

	_, err := repo.FindByID(n.ID)
	assert.ErrorIs(t, err, repositories.ErrNotificationNotFound)
}
