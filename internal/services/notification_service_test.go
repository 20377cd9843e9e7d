package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"caseshare_backend/internal/identity"
	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerA = "f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5c"
	ownerB = "a1b2c3d4-0000-4111-8222-333344445555"
)

// fakeNotificationRepo is an in-memory stand-in for the gorm repository.
// It counts calls so tests can assert the store was never touched on
// validation failures.
type fakeNotificationRepo struct {
	records map[string]*models.Notification
	order   []string
	calls   int
	failAll bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{records: make(map[string]*models.Notification)}
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	f.calls++
	if f.failAll {
		return errors.New("store unavailable")
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().Add(time.Duration(len(f.order)) * time.Millisecond)
	}
	clone := *n
	f.records[n.ID] = &clone
	f.order = append(f.order, n.ID)
	return nil
}

func (f *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	f.calls++
	if f.failAll {
		return nil, errors.New("store unavailable")
	}
	n, ok := f.records[id]
	if !ok {
		return nil, repositories.ErrNotificationNotFound
	}
	clone := *n
	return &clone, nil
}

func (f *fakeNotificationRepo) FindByOwner(ownerID string, unreadOnly bool) ([]models.Notification, error) {
	f.calls++
	if f.failAll {
		return nil, errors.New("store unavailable")
	}
	var out []models.Notification
	for _, id := range f.order {
		n := f.records[id]
		if n == nil || n.OwnerID != ownerID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, *n)
	}
	return out, nil
}

func (f *fakeNotificationRepo) Update(n *models.Notification) error {
	f.calls++
	if f.failAll {
		return errors.New("store unavailable")
	}
	clone := *n
	f.records[n.ID] = &clone
	return nil
}

func (f *fakeNotificationRepo) Delete(n *models.Notification) error {
	f.calls++
	if f.failAll {
		return errors.New("store unavailable")
	}
	delete(f.records, n.ID)
	return nil
}

func (f *fakeNotificationRepo) CountUnread(ownerID string) (int64, error) {
	f.calls++
	if f.failAll {
		return 0, errors.New("store unavailable")
	}
	var count int64
	for _, n := range f.records {
		if n.OwnerID == ownerID && !n.Read {
			count++
		}
	}
	return count, nil
}

type emittedEvent struct {
	Event   string
	Payload any
	Room    string
}

type fakeEmitter struct {
	events []emittedEvent
}

func (f *fakeEmitter) Emit(event string, payload any, room string) {
	f.events = append(f.events, emittedEvent{Event: event, Payload: payload, Room: room})
}

func newService() (services.NotificationService, *fakeNotificationRepo, *fakeEmitter) {
	repo := newFakeNotificationRepo()
	emitter := &fakeEmitter{}
	return services.NewNotificationService(repo, emitter), repo, emitter
}

func TestNotificationService_CreateEmitsToOwnerRoom(t *testing.T) {
	svc, _, emitter := newService()

	created, err := svc.Create(ownerA, "Someone liked your post", "/posts/abc")
	require.NoError(t, err)
	assert.Equal(t, ownerA, created.OwnerID)
	assert.False(t, created.Read)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	require.Len(t, emitter.events, 1)
	assert.Equal(t, services.EventNewNotification, emitter.events[0].Event)
	assert.Equal(t, ownerA, emitter.events[0].Room)
}

func TestNotificationService_CreateRejectsInvalidInput(t *testing.T) {
	svc, repo, emitter := newService()

	_, err := svc.Create("not-a-uuid", "hello", "")
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)

	longMessage := make([]byte, services.MaxNotificationMessageLen+1)
	for i := range longMessage {
		longMessage[i] = 'x'
	}
	_, err = svc.Create(ownerA, string(longMessage), "")
	assert.ErrorIs(t, err, services.ErrInvalidMessage)

	_, err = svc.Create(ownerA, "", "")
	assert.ErrorIs(t, err, services.ErrInvalidMessage)

	assert.Zero(t, repo.calls, "store must not be touched on invalid input")
	assert.Empty(t, emitter.events)
}

func TestNotificationService_MessageLengthCountsRunes(t *testing.T) {
	svc, _, _ := newService()

	// 255 multi-byte runes exceed 255 bytes but stay within the bound.
	atLimit := strings.Repeat("ñ", services.MaxNotificationMessageLen)
	created, err := svc.Create(ownerA, atLimit, "")
	require.NoError(t, err)
	assert.Equal(t, atLimit, created.Message)

	overLimit := strings.Repeat("ñ", services.MaxNotificationMessageLen+1)
	_, err = svc.Create(ownerA, overLimit, "")
	assert.ErrorIs(t, err, services.ErrInvalidMessage)
}

func TestNotificationService_ListCreationOrder(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Create(ownerA, "hi", "")
	require.NoError(t, err)
	_, err = svc.Create(ownerA, "there", "")
	require.NoError(t, err)
	_, err = svc.Create(ownerB, "not yours", "")
	require.NoError(t, err)

	list, err := svc.List(ownerA)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "hi", list[0].Message)
	assert.Equal(t, "there", list[1].Message)
	assert.False(t, list[0].Read)
	assert.False(t, list[1].Read)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	svc, _, _ := newService()

	count, err := svc.UnreadCount(ownerA)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ownerA, "unread", "")
		require.NoError(t, err)
	}

	count, err = svc.UnreadCount(ownerA)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkAsReadIdempotent(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.Create(ownerA, "hi", "")
	require.NoError(t, err)

	first, err := svc.MarkAsRead(ownerA, created.ID)
	require.NoError(t, err)
	assert.True(t, first.Read)

	// Second call is a no-op success, not an error.
	second, err := svc.MarkAsRead(ownerA, created.ID)
	require.NoError(t, err)
	assert.True(t, second.Read)

	count, err := svc.UnreadCount(ownerA)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotificationService_OwnershipIsolation(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.Create(ownerB, "B's notification", "")
	require.NoError(t, err)

	_, err = svc.MarkAsRead(ownerA, created.ID)
	assert.ErrorIs(t, err, services.ErrNotAuthorized)

	_, err = svc.Delete(ownerA, created.ID)
	assert.ErrorIs(t, err, services.ErrNotAuthorized)

	// B's record must be untouched.
	list, err := svc.List(ownerB)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Read)
}

func TestNotificationService_MarkAsReadNotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.MarkAsRead(ownerA, uuid.NewString())
	assert.ErrorIs(t, err, repositories.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	svc, _, _ := newService()

	for i := 0; i < 4; i++ {
		_, err := svc.Create(ownerA, "unread", "")
		require.NoError(t, err)
	}
	_, err := svc.Create(ownerB, "other owner", "")
	require.NoError(t, err)

	require.NoError(t, svc.MarkAllAsRead(ownerA))

	count, err := svc.UnreadCount(ownerA)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	countB, err := svc.UnreadCount(ownerB)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countB)
}

func TestNotificationService_Delete(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.Create(ownerA, "to delete", "")
	require.NoError(t, err)

	deletedID, err := svc.Delete(ownerA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deletedID)

	list, err := svc.List(ownerA)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationService_DeleteAllOnlyTouchesOwner(t *testing.T) {
	svc, _, _ := newService()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ownerA, "mine", "")
		require.NoError(t, err)
	}
	_, err := svc.Create(ownerB, "theirs", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAll(ownerA))

	listA, err := svc.List(ownerA)
	require.NoError(t, err)
	assert.Empty(t, listA)

	listB, err := svc.List(ownerB)
	require.NoError(t, err)
	assert.Len(t, listB, 1)
}

func TestNotificationService_MalformedIDsNeverReachStore(t *testing.T) {
	svc, repo, _ := newService()

	truncated := "f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5"

	_, err := svc.List(truncated)
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)

	_, err = svc.MarkAsRead(truncated, uuid.NewString())
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)

	_, err = svc.MarkAsRead(ownerA, truncated)
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)

	err = svc.MarkAllAsRead(truncated)
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)

	_, err = svc.Delete(truncated, uuid.NewString())
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)

	err = svc.DeleteAll(truncated)
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)

	_, err = svc.UnreadCount(truncated)
	assert.ErrorIs(t, err, identity.ErrInvalidFormat)

	assert.Zero(t, repo.calls, "store must observe zero invocations for malformed ids")
}
