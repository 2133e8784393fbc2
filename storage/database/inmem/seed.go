package inmemdb

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/ylearn/ylearn/core/assessment"
	"github.com/ylearn/ylearn/core/course"
	"github.com/ylearn/ylearn/core/grade"
	"github.com/ylearn/ylearn/core/notification"
	"github.com/ylearn/ylearn/core/topology"
)

// ts parses a seed timestamp. Seed data is hardcoded, a parse failure is a
// programming error.
func ts(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

func seedCourses() []course.Course {
	return []course.Course{
		{
			ID:          "course-1",
			Code:        "CSSE6400",
			Name:        "Software Architecture",
			Description: "Learn about software architecture patterns and practices for building scalable systems.",
			Instructor:  "Dr. Jamie Professor",
			Term:        "Semester 1, 2023",
			Credits:     4,
			Image:       "/interconnected-systems.png",
		},
		{
			ID:          "course-2",
			Code:        "CSSE6401",
			Name:        "Advanced Programming",
			Description: "Explore advanced programming concepts and paradigms.",
			Instructor:  "Prof. Taylor Smith",
			Term:        "Semester 1, 2023",
			Credits:     4,
			Image:       "/abstract-code-flow.png",
		},
		{
			ID:          "course-3",
			Code:        "CSSE6402",
			Name:        "Database Systems",
			Description: "Study database design, implementation, and optimization techniques.",
			Instructor:  "Dr. Morgan Lee",
			Term:        "Semester 1, 2023",
			Credits:     4,
			Image:       "/images/database-systems.png",
		},
		{
			ID:          "course-4",
			Code:        "CSSE6403",
			Name:        "Web Development",
			Description: "Learn modern web development frameworks and practices.",
			Instructor:  "Dr. Jamie Professor",
			Term:        "Semester 1, 2023",
			Credits:     4,
			Image:       "/images/web-development.png",
		},
		{
			ID:          "course-5",
			Code:        "CSSE6404",
			Name:        "Machine Learning",
			Description: "Introduction to machine learning algorithms and applications.",
			Instructor:  "Prof. Jordan Rivera",
			Term:        "Semester 1, 2023",
			Credits:     4,
			Image:       "/images/machine-learning.png",
		},
	}
}

func seedAssessments() []assessment.Assessment {
	return []assessment.Assessment{
		{
			ID:             "assessment-1",
			CourseID:       "course-1",
			Title:          "Architecture Design Document",
			Description:    "Create a comprehensive architecture design document for a distributed system.",
			DueDate:        ts("2023-04-15T23:59:59"),
			Type:           assessment.TypeAssignment,
			Status:         assessment.StatusGraded,
			Weight:         30,
			MaxScore:       100,
			Score:          null.Float64From(85),
			Feedback:       null.StringFrom("Good work on the component diagrams. Consider adding more details on scalability."),
			SubmissionDate: null.TimeFrom(ts("2023-04-14T14:30:00")),
		},
		{
			ID:             "assessment-2",
			CourseID:       "course-1",
			Title:          "Microservices Quiz",
			Description:    "Online quiz covering microservices architecture concepts.",
			DueDate:        ts("2023-03-10T23:59:59"),
			Type:           assessment.TypeQuiz,
			Status:         assessment.StatusGraded,
			Weight:         15,
			MaxScore:       50,
			Score:          null.Float64From(42),
			SubmissionDate: null.TimeFrom(ts("2023-03-10T22:45:00")),
		},
		{
			ID:          "assessment-3",
			CourseID:    "course-1",
			Title:       "Final Project",
			Description: "Implement a scalable microservices-based application.",
			DueDate:     ts("2023-05-20T23:59:59"),
			Type:        assessment.TypeProject,
			Status:      assessment.StatusOpen,
			Weight:      40,
			MaxScore:    100,
		},
		{
			ID:             "assessment-4",
			CourseID:       "course-2",
			Title:          "Algorithm Implementation",
			Description:    "Implement and analyze the performance of sorting algorithms.",
			DueDate:        ts("2023-04-05T23:59:59"),
			Type:           assessment.TypeAssignment,
			Status:         assessment.StatusGraded,
			Weight:         25,
			MaxScore:       100,
			Score:          null.Float64From(92),
			Feedback:       null.StringFrom("Excellent implementation and analysis."),
			SubmissionDate: null.TimeFrom(ts("2023-04-04T18:20:00")),
		},
		{
			ID:              "assessment-5",
			CourseID:        "course-3",
			Title:           "Database Design Project",
			Description:     "Design and implement a normalized database for a given scenario.",
			DueDate:         ts("2023-04-25T23:59:59"),
			Type:            assessment.TypeProject,
			Status:          assessment.StatusSubmitted,
			Weight:          35,
			MaxScore:        100,
			SubmissionDate:  null.TimeFrom(ts("2023-04-24T20:15:00")),
			PlagiarismScore: null.IntFrom(5),
		},
	}
}

func seedGrades() []grade.Grade {
	return []grade.Grade{
		{
			ID:             "grade-1",
			CourseID:       "course-1",
			AssessmentID:   "assessment-1",
			StudentID:      "s12345",
			Score:          85,
			MaxScore:       100,
			Feedback:       null.StringFrom("Good work on the component diagrams. Consider adding more details on scalability."),
			SubmissionDate: ts("2023-04-14T14:30:00"),
			GradedDate:     null.TimeFrom(ts("2023-04-18T10:15:00")),
			GradedBy:       null.StringFrom("i67890"),
		},
		{
			ID:             "grade-2",
			CourseID:       "course-1",
			AssessmentID:   "assessment-2",
			StudentID:      "s12345",
			Score:          42,
			MaxScore:       50,
			SubmissionDate: ts("2023-03-10T22:45:00"),
			GradedDate:     null.TimeFrom(ts("2023-03-11T09:30:00")),
			GradedBy:       null.StringFrom("i67890"),
		},
		{
			ID:             "grade-3",
			CourseID:       "course-2",
			AssessmentID:   "assessment-4",
			StudentID:      "s12345",
			Score:          92,
			MaxScore:       100,
			Feedback:       null.StringFrom("Excellent implementation and analysis."),
			SubmissionDate: ts("2023-04-04T18:20:00"),
			GradedDate:     null.TimeFrom(ts("2023-04-08T11:45:00")),
			GradedBy:       null.StringFrom("i67890"),
		},
	}
}

func seedNotifications() []notification.Notification {
	return []notification.Notification{
		{
			ID:      "notif-1",
			UserID:  "s12345",
			Title:   "New Assignment Posted",
			Message: "A new assignment 'Final Project' has been posted in Software Architecture.",
			Date:    ts("2023-04-01T09:30:00"),
			Type:    notification.TypeAssignment,
			Link:    null.StringFrom("/courses/course-1/assessments/assessment-3"),
		},
		{
			ID:      "notif-2",
			UserID:  "s12345",
			Title:   "Grade Posted",
			Message: "Your grade for 'Architecture Design Document' has been posted.",
			Date:    ts("2023-04-18T10:20:00"),
			Read:    true,
			Type:    notification.TypeGrade,
			Link:    null.StringFrom("/grades/course-1/assessment-1"),
		},
		{
			ID:      "notif-3",
			UserID:  "s12345",
			Title:   "System Maintenance",
			Message: "yLearn will be undergoing maintenance on Sunday, April 30th from 2-4 AM.",
			Date:    ts("2023-04-25T12:00:00"),
			Type:    notification.TypeSystem,
		},
		{
			ID:      "notif-4",
			UserID:  "i67890",
			Title:   "Grading Reminder",
			Message: "You have 5 submissions waiting to be graded for 'Database Design Project'.",
			Date:    ts("2023-04-26T08:15:00"),
			Type:    notification.TypeAssignment,
			Link:    null.StringFrom("/courses/course-3/assessments/assessment-5/grade"),
		},
		{
			ID:      "notif-5",
			UserID:  "i67890",
			Title:   "Course Evaluation",
			Message: "Course evaluations are now open for your courses.",
			Date:    ts("2023-05-01T09:00:00"),
			Read:    true,
			Type:    notification.TypeAnnouncement,
		},
	}
}

func seedGraph() topology.Graph {
	return topology.Graph{
		Nodes: []topology.Node{
			{ID: "client", Name: "Web Client", Description: "React frontend application", Status: topology.StatusHealthy, Type: topology.TypeClient},
			{ID: "api-gateway", Name: "API Gateway", Description: "Routes requests to appropriate microservices", Status: topology.StatusHealthy, Type: topology.TypeGateway},
			{ID: "user-service", Name: "User Service", Description: "Manages user authentication and profiles", Status: topology.StatusHealthy, Type: topology.TypeService},
			{ID: "course-service", Name: "Course Service", Description: "Manages course information and enrollments", Status: topology.StatusHealthy, Type: topology.TypeService},
			{ID: "assessment-service", Name: "Assessment Service", Description: "Manages assignments, quizzes, and exams", Status: topology.StatusHealthy, Type: topology.TypeService},
			{ID: "grading-service", Name: "Grading Service", Description: "Processes and stores grades", Status: topology.StatusHealthy, Type: topology.TypeService},
			{ID: "notification-service", Name: "Notification Service", Description: "Sends notifications to users", Status: topology.StatusHealthy, Type: topology.TypeService},
			{ID: "user-db", Name: "User Database", Description: "Stores user data", Status: topology.StatusHealthy, Type: topology.TypeDatabase},
			{ID: "course-db", Name: "Course Database", Description: "Stores course data", Status: topology.StatusHealthy, Type: topology.TypeDatabase},
			{ID: "assessment-db", Name: "Assessment Database", Description: "Stores assessment data", Status: topology.StatusHealthy, Type: topology.TypeDatabase},
			{ID: "grade-db", Name: "Grade Database", Description: "Stores grade data", Status: topology.StatusHealthy, Type: topology.TypeDatabase},
			{ID: "message-queue", Name: "Message Queue", Description: "Handles asynchronous communication between services", Status: topology.StatusHealthy, Type: topology.TypeQueue},
		},
		Connections: []topology.Connection{
			{Source: "client", Target: "api-gateway"},
			{Source: "api-gateway", Target: "user-service"},
			{Source: "api-gateway", Target: "course-service"},
			{Source: "api-gateway", Target: "assessment-service"},
			{Source: "api-gateway", Target: "grading-service"},
			{Source: "user-service", Target: "user-db"},
			{Source: "course-service", Target: "course-db"},
			{Source: "assessment-service", Target: "assessment-db"},
			{Source: "grading-service", Target: "grade-db"},
			{Source: "user-service", Target: "message-queue"},
			{Source: "course-service", Target: "message-queue"},
			{Source: "assessment-service", Target: "message-queue"},
			{Source: "grading-service", Target: "message-queue"},
			{Source: "message-queue", Target: "notification-service"},
		},
	}
}
