package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ylearn/ylearn/core"
	"github.com/ylearn/ylearn/core/assessment"
	"github.com/ylearn/ylearn/core/user"
)

type fakeRepository struct {
	notifications []Notification
}

func (r *fakeRepository) QueryNotificationsByUserID(userID string) ([]Notification, error) {
	out := make([]Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeRepository) GetNotificationByID(id string) (Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return Notification{}, ErrNotFound
}

func (r *fakeRepository) CreateNotification(n Notification) (Notification, error) {
	r.notifications = append(r.notifications, n)
	return n, nil
}

func (r *fakeRepository) UpdateNotification(n Notification) (Notification, error) {
	for i, orig := range r.notifications {
		if orig.ID == n.ID {
			r.notifications[i] = n
			return n, nil
		}
	}
	return Notification{}, ErrNotFound
}

type fakeMailService struct {
	sent []*core.EmailMessage
}

func (svc *fakeMailService) SendMessages(messages ...*core.EmailMessage) {
	svc.sent = append(svc.sent, messages...)
}

func seedRepo() *fakeRepository {
	return &fakeRepository{notifications: []Notification{
		{ID: "n1", UserID: "s12345", Title: "Grade Posted", Read: true},
		{ID: "n2", UserID: "s12345", Title: "New Assignment"},
		{ID: "n3", UserID: "i67890", Title: "Grading Reminder"},
	}}
}

func TestService_QueryForUser(t *testing.T) {
	svc := NewService(seedRepo(), &fakeMailService{})

	notifs, err := svc.QueryForUser("s12345")
	require.NoError(t, err)
	require.Len(t, notifs, 2)
	for _, n := range notifs {
		assert.Equal(t, "s12345", n.UserID)
	}

	notifs, err = svc.QueryForUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, notifs)
}

func TestService_UnreadCount(t *testing.T) {
	svc := NewService(seedRepo(), &fakeMailService{})

	count, err := svc.UnreadCount("s12345")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.UnreadCount("nobody")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_MarkRead(t *testing.T) {
	repo := seedRepo()
	svc := NewService(repo, &fakeMailService{})

	n, err := svc.MarkRead("s12345", "n2")
	require.NoError(t, err)
	assert.True(t, n.Read)

	count, err := svc.UnreadCount("s12345")
	require.NoError(t, err)
	assert.Zero(t, count)

	// marking again stays read
	n, err = svc.MarkRead("s12345", "n2")
	require.NoError(t, err)
	assert.True(t, n.Read)
}

func TestService_MarkRead_otherUser(t *testing.T) {
	svc := NewService(seedRepo(), &fakeMailService{})

	// another user's notification looks like a missing one
	_, err := svc.MarkRead("s12345", "n3")
	assert.Equal(t, ErrNotFound, err)

	_, err = svc.MarkRead("s12345", "n404")
	assert.Equal(t, ErrNotFound, err)
}

func TestService_SubmissionReceived(t *testing.T) {
	repo := seedRepo()
	mailSvc := &fakeMailService{}
	svc := NewService(repo, mailSvc)
	svc.nowFunc = func() time.Time { return time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC) }

	usr, _ := user.MockUser(user.RoleStudent)
	svc.SubmissionReceived(usr, assessment.Assessment{ID: "assessment-3", Title: "Final Project"})

	notifs, err := svc.QueryForUser(usr.ID)
	require.NoError(t, err)
	require.Len(t, notifs, 3)

	created := notifs[2]
	assert.Equal(t, "Submission Received", created.Title)
	assert.Contains(t, created.Message, "Final Project")
	assert.Equal(t, TypeAssignment, created.Type)
	assert.Equal(t, "/assessments/assessment-3", created.Link.String)
	assert.False(t, created.Read)

	require.Len(t, mailSvc.sent, 1)
	msg := mailSvc.sent[0]
	require.Len(t, msg.To, 1)
	assert.Equal(t, usr.Email, msg.To[0].Address)
	assert.Contains(t, msg.Subject, "Final Project")
}
