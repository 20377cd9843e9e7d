package ws_test

import (
	"encoding/json"
	"errors"
	"testing"

	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services"
	"caseshare_backend/internal/services/dto"
	"caseshare_backend/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	ownerID      = "f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5c"
	otherOwnerID = "a1b2c3d4-0000-4111-8222-333344445555"
	truncatedID  = "f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5"
)

type roomEvent struct {
	Event   string
	Payload any
	Room    string
}

// fakeChannel records room emits in place of the live hub.
type fakeChannel struct {
	events []roomEvent
}

func (f *fakeChannel) Emit(event string, payload any, room string) {
	f.events = append(f.events, roomEvent{Event: event, Payload: payload, Room: room})
}

func (f *fakeChannel) last(t *testing.T) roomEvent {
	t.Helper()
	require.NotEmpty(t, f.events)
	return f.events[len(f.events)-1]
}

// replies captures events sent only to the requesting connection.
type replies struct {
	events []ws.Event
}

func (r *replies) collect(e ws.Event) bool {
	r.events = append(r.events, e)
	return true
}

func (r *replies) last(t *testing.T) ws.Event {
	t.Helper()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

// failingService simulates a store outage behind the service seam.
type failingService struct{}

func (failingService) Create(string, string, string) (*dto.NotificationResponse, error) {
	return nil, errors.New("connection refused")
}
func (failingService) List(string) ([]*dto.NotificationResponse, error) {
	return nil, errors.New("connection refused")
}
func (failingService) MarkAsRead(string, string) (*dto.NotificationResponse, error) {
	return nil, errors.New("connection refused")
}
func (failingService) MarkAllAsRead(string) error { return errors.New("connection refused") }
func (failingService) Delete(string, string) (string, error) {
	return "", errors.New("connection refused")
}
func (failingService) DeleteAll(string) error { return errors.New("connection refused") }
func (failingService) UnreadCount(string) (int64, error) {
	return 0, errors.New("connection refused")
}

// newWiredRouter builds a router backed by a real service and an
// in-memory store, with the hub replaced by a recording fake.
func newWiredRouter(t *testing.T) (*ws.Router, services.NotificationService, *fakeChannel) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Notification{}))

	channel := &fakeChannel{}
	repo := repositories.NewNotificationRepository(db)
	svc := services.NewNotificationService(repo, channel)
	return ws.NewRouter(svc, channel), svc, channel
}

func msg(event, data string) ws.Message {
	return ws.Message{Event: event, Data: json.RawMessage(data)}
}

func TestRouter_GetNotifications_GoldenPath(t *testing.T) {
	router, svc, channel := newWiredRouter(t)

	_, err := svc.Create(ownerID, "hi", "")
	require.NoError(t, err)
	_, err = svc.Create(ownerID, "there", "")
	require.NoError(t, err)
	channel.events = nil // drop the new_notification pushes

	r := &replies{}
	router.Handle(msg(ws.EventGetNotifications, `{"user_id": "`+ownerID+`"}`), r.collect)

	assert.Empty(t, r.events, "success goes to the room, not the raw connection")
	last := channel.last(t)
	assert.Equal(t, ws.EventAllNotifications, last.Event)
	assert.Equal(t, ownerID, last.Room)

	list, ok := last.Payload.([]*dto.NotificationResponse)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "hi", list[0].Message)
	assert.Equal(t, "there", list[1].Message)
	assert.False(t, list[0].Read)
	assert.False(t, list[1].Read)
}

func TestRouter_MarkAsReadFlow(t *testing.T) {
	router, svc, channel := newWiredRouter(t)

	created, err := svc.Create(ownerID, "hi", "")
	require.NoError(t, err)
	channel.events = nil

	r := &replies{}
	router.Handle(msg(ws.EventMarkAsRead,
		`{"user_id": "`+ownerID+`", "notification_id": "`+created.ID+`"}`), r.collect)

	last := channel.last(t)
	assert.Equal(t, ws.EventReadNotification, last.Event)
	assert.Equal(t, ownerID, last.Room)
	updated, ok := last.Payload.(*dto.NotificationResponse)
	require.True(t, ok)
	assert.True(t, updated.Read)

	count, err := svc.UnreadCount(ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRouter_MissingUserID(t *testing.T) {
	tests := []struct {
		event string
		data  string
	}{
		{ws.EventGetNotifications, `{"username": 1}`},
		{ws.EventMarkAsRead, `{"notification_id": "` + ownerID + `"}`},
		{ws.EventMarkAllAsRead, `{}`},
		{ws.EventDeleteNotification, `{}`},
		{ws.EventDeleteAllNotifications, `{}`},
		{ws.EventGetUnreadCount, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			router, _, channel := newWiredRouter(t)

			r := &replies{}
			router.Handle(msg(tt.event, tt.data), r.collect)

			last := r.last(t)
			assert.Equal(t, ws.EventError, last.Event)
			assert.Equal(t, map[string]string{"error": "invalid request"}, last.Data)
			assert.Empty(t, channel.events, "nothing may reach the room")
		})
	}
}

func TestRouter_MalformedUserID(t *testing.T) {
	malformed := []string{
		`{"user_id": "` + truncatedID + `"}`,
		`{"user_id": 42}`,
		`{"user_id": true}`,
		`{"user_id": null}`,
		`{"user_id": ["` + ownerID + `"]}`,
	}

	for _, data := range malformed {
		router, _, channel := newWiredRouter(t)

		r := &replies{}
		router.Handle(msg(ws.EventGetNotifications, data), r.collect)

		last := r.last(t)
		assert.Equal(t, ws.EventError, last.Event)
		assert.Equal(t, map[string]string{"error": "invalid user ID"}, last.Data)
		assert.Empty(t, channel.events)
	}
}

func TestRouter_MalformedNotificationID(t *testing.T) {
	router, svc, channel := newWiredRouter(t)

	created, err := svc.Create(ownerID, "hi", "")
	require.NoError(t, err)
	channel.events = nil

	r := &replies{}
	router.Handle(msg(ws.EventMarkAsRead,
		`{"user_id": "`+ownerID+`", "notification_id": "`+truncatedID+`"}`), r.collect)

	last := r.last(t)
	assert.Equal(t, ws.EventError, last.Event)
	assert.Equal(t, map[string]string{"error": "invalid user ID"}, last.Data)

	// No mutation happened.
	list, err := svc.List(ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.False(t, list[0].Read)
}

func TestRouter_OwnershipMismatchLooksLikeMalformedID(t *testing.T) {
	router, svc, channel := newWiredRouter(t)

	created, err := svc.Create(otherOwnerID, "not yours", "")
	require.NoError(t, err)
	channel.events = nil

	r := &replies{}
	router.Handle(msg(ws.EventDeleteNotification,
		`{"user_id": "`+ownerID+`", "notification_id": "`+created.ID+`"}`), r.collect)

	last := channel.last(t)
	assert.Equal(t, ws.EventError, last.Event)
	assert.Equal(t, ownerID, last.Room)
	assert.Equal(t, map[string]string{"error": "invalid user ID"}, last.Payload,
		"owner mismatch must be indistinguishable from a malformed id")

	// The other owner's record survives.
	list, err := svc.List(otherOwnerID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRouter_NotFoundReportedAsInternal(t *testing.T) {
	router, _, channel := newWiredRouter(t)

	r := &replies{}
	router.Handle(msg(ws.EventMarkAsRead,
		`{"user_id": "`+ownerID+`", "notification_id": "`+otherOwnerID+`"}`), r.collect)

	last := channel.last(t)
	assert.Equal(t, ws.EventError, last.Event)
	assert.Equal(t, map[string]string{"error": "Something went wrong"}, last.Payload)
}

func TestRouter_ServiceFaultReportedAsInternal(t *testing.T) {
	channel := &fakeChannel{}
	router := ws.NewRouter(failingService{}, channel)

	r := &replies{}
	router.Handle(msg(ws.EventGetUnreadCount, `{"user_id": "`+ownerID+`"}`), r.collect)

	last := channel.last(t)
	assert.Equal(t, ws.EventError, last.Event)
	assert.Equal(t, map[string]string{"error": "Something went wrong"}, last.Payload)
}

func TestRouter_UnknownEventAndBadPayload(t *testing.T) {
	router, _, channel := newWiredRouter(t)

	r := &replies{}
	router.Handle(msg("steal_notifications", `{"user_id": "`+ownerID+`"}`), r.collect)
	assert.Equal(t, map[string]string{"error": "invalid request"}, r.last(t).Data)

	router.Handle(msg(ws.EventGetNotifications, `"just a string"`), r.collect)
	assert.Equal(t, map[string]string{"error": "invalid request"}, r.last(t).Data)

	router.Handle(ws.Message{Event: ws.EventGetNotifications}, r.collect)
	assert.Equal(t, map[string]string{"error": "invalid request"}, r.last(t).Data)

	assert.Empty(t, channel.events)
}

func TestRouter_BulkOperations(t *testing.T) {
	router, svc, channel := newWiredRouter(t)

	for _, m := range []string{"one", "two", "three"} {
		_, err := svc.Create(ownerID, m, "")
		require.NoError(t, err)
	}
	_, err := svc.Create(otherOwnerID, "other", "")
	require.NoError(t, err)
	channel.events = nil

	r := &replies{}
	router.Handle(msg(ws.EventMarkAllAsRead, `{"user_id": "`+ownerID+`"}`), r.collect)
	assert.Equal(t, ws.EventAllRead, channel.last(t).Event)

	router.Handle(msg(ws.EventGetUnreadCount, `{"user_id": "`+ownerID+`"}`), r.collect)
	last := channel.last(t)
	assert.Equal(t, ws.EventUnreadCount, last.Event)
	assert.Equal(t, int64(0), last.Payload)

	router.Handle(msg(ws.EventDeleteAllNotifications, `{"user_id": "`+ownerID+`"}`), r.collect)
	assert.Equal(t, ws.EventAllDeleted, channel.last(t).Event)

	// Other owners' data is untouched by the bulk delete.
	list, err := svc.List(otherOwnerID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.False(t, list[0].Read)
}
