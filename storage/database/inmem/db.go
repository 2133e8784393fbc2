package inmemdb

import (
	"sync"

	"github.com/ylearn/ylearn/core/assessment"
	"github.com/ylearn/ylearn/core/course"
	"github.com/ylearn/ylearn/core/grade"
	"github.com/ylearn/ylearn/core/notification"
	"github.com/ylearn/ylearn/core/topology"
)

// DB is the process-wide catalog of mock records. Tables are ordered
// slices so that filtering preserves the seeded order; a single RWMutex
// guards them all since writes are rare local mutations.
type DB struct {
	mutex sync.RWMutex

	courses       []course.Course
	assessments   []assessment.Assessment
	grades        []grade.Grade
	notifications []notification.Notification
	graph         topology.Graph
}

// Open seeds the catalog. There is nothing to connect to and nothing to
// close; mutations live until the process exits.
func Open() (*DB, error) {
	db := &DB{
		courses:       seedCourses(),
		assessments:   seedAssessments(),
		grades:        seedGrades(),
		notifications: seedNotifications(),
		graph:         seedGraph(),
	}
	return db, nil
}
