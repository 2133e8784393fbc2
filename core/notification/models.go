package notification

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Types
const (
	TypeAnnouncement = "announcement"
	TypeGrade        = "grade"
	TypeAssignment   = "assignment"
	TypeSystem       = "system"
)

type Notification struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
	Type    string    `json:"type"`

	Link null.String `json:"link,omitempty"`
}
