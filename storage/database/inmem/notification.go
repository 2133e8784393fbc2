package inmemdb

import "github.com/ylearn/ylearn/core/notification"

type notificationRepository struct {
	db *DB
}

var _ notification.Repository = (*notificationRepository)(nil)

func NewNotificationRepository(db *DB) notification.Repository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) QueryNotificationsByUserID(userID string) ([]notification.Notification, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matches := make([]notification.Notification, 0, len(repo.db.notifications))
	for _, n := range repo.db.notifications {
		if n.UserID == userID {
			matches = append(matches, n)
		}
	}
	return matches, nil
}

func (repo *notificationRepository) GetNotificationByID(id string) (notification.Notification, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, n := range repo.db.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return notification.Notification{}, notification.ErrNotFound
}

func (repo *notificationRepository) CreateNotification(n notification.Notification) (notification.Notification, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.notifications = append(repo.db.notifications, n)
	return n, nil
}

func (repo *notificationRepository) UpdateNotification(n notification.Notification) (notification.Notification, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, orig := range repo.db.notifications {
		if orig.ID == n.ID {
			repo.db.notifications[i] = n
			return n, nil
		}
	}
	return notification.Notification{}, notification.ErrNotFound
}
