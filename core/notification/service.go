package notification

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/ylearn/ylearn/core"
	"github.com/ylearn/ylearn/core/assessment"
	"github.com/ylearn/ylearn/core/user"
)

var ErrNotFound = errors.New("notification not found")

type (
	Repository interface {
		// QueryNotificationsByUserID filters by exact UserID match,
		// preserving catalog order; an empty result is an empty slice.
		QueryNotificationsByUserID(userID string) ([]Notification, error)
		GetNotificationByID(id string) (Notification, error)
		CreateNotification(n Notification) (Notification, error)
		UpdateNotification(n Notification) (Notification, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		nowFunc func() time.Time
	}
)

var _ assessment.Notifier = (*Service)(nil)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, nowFunc: time.Now}
}

func (svc *Service) QueryForUser(userID string) ([]Notification, error) {
	return svc.repo.QueryNotificationsByUserID(userID)
}

func (svc *Service) UnreadCount(userID string) (int, error) {
	notifs, err := svc.repo.QueryNotificationsByUserID(userID)
	if err != nil {
		return 0, err
	}
	var count int
	for _, n := range notifs {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flags the notification as read. Another user's notification is
// indistinguishable from a missing one.
func (svc *Service) MarkRead(userID, id string) (Notification, error) {
	n, err := svc.repo.GetNotificationByID(id)
	if err != nil {
		return Notification{}, err
	}
	if n.UserID != userID {
		return Notification{}, ErrNotFound
	}
	n.Read = true
	return svc.repo.UpdateNotification(n)
}

// SubmissionReceived records a confirmation notification for the submitting
// user and mails them a receipt.
func (svc *Service) SubmissionReceived(usr user.User, a assessment.Assessment) {
	n := Notification{
		ID:      "notif-" + uuid.New().String(),
		UserID:  usr.ID,
		Title:   "Submission Received",
		Message: fmt.Sprintf("Your submission for '%s' has been received.", a.Title),
		Date:    svc.nowFunc().UTC(),
		Type:    TypeAssignment,
		Link:    null.StringFrom("/assessments/" + a.ID),
	}
	if _, err := svc.repo.CreateNotification(n); err != nil {
		return
	}

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Submission received: " + a.Title,
		BodyStr: fmt.Sprintf("Hi %s,\n\nYour submission for '%s' has been received and is awaiting review.\n", usr.Name, a.Title),
	})
}
