package user_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ylearn/ylearn/core"
	"github.com/ylearn/ylearn/core/user"
	sessionstore "github.com/ylearn/ylearn/storage/session"
)

func newService(t *testing.T) (*user.Service, *core.Config) {
	conf := core.NewTestConfig(filepath.Join(t.TempDir(), "session.json"))
	return user.NewService(sessionstore.NewFileStore(conf.SessionFile), conf), conf
}

func TestService_Login_roleHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		wantID   string
		wantRole string
	}{
		{name: "plain email is a student", email: "alex@university.edu", wantID: "s12345", wantRole: user.RoleStudent},
		{name: "admin substring", email: "sam.admin@university.edu", wantID: "a24680", wantRole: user.RoleAdmin},
		{name: "professor substring", email: "jamie.professor@university.edu", wantID: "i67890", wantRole: user.RoleInstructor},
		{name: "instructor substring", email: "lead.instructor@university.edu", wantID: "i67890", wantRole: user.RoleInstructor},
		{name: "case insensitive", email: "SAM.ADMIN@UNIVERSITY.EDU", wantID: "a24680", wantRole: user.RoleAdmin},
		{name: "unknown email still logs in", email: "whoever@example.com", wantID: "s12345", wantRole: user.RoleStudent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			usr, err := svc.Login(tt.email, "anything")
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, usr.ID)
			assert.Equal(t, tt.wantRole, usr.Role)

			current, err := svc.Current()
			require.NoError(t, err)
			assert.Equal(t, usr, current)
		})
	}
}

func TestService_Login_passwordRequired(t *testing.T) {
	svc, _ := newService(t)

	for _, password := range []string{"", "   "} {
		_, err := svc.Login("alex@university.edu", password)
		require.Error(t, err)
		vErr, ok := err.(*core.ValidationError)
		require.True(t, ok, "expected a validation error, got %T", err)
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "password", vErr.Fields[0].Field)
	}

	_, err := svc.Current()
	assert.Equal(t, user.ErrNoSession, err)
}

func TestService_SwitchRole(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login("alex@university.edu", "pass")
	require.NoError(t, err)

	usr, err := svc.SwitchRole(user.RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, "i67890", usr.ID)
	assert.True(t, usr.IsInstructor())

	_, err = svc.SwitchRole("superuser")
	assert.Equal(t, user.ErrUnknownRole, err)

	// failed switch leaves the session untouched
	current, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, "i67890", current.ID)
}

func TestService_Logout(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login("alex@university.edu", "pass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	_, err = svc.Current()
	assert.Equal(t, user.ErrNoSession, err)
}

func TestService_sessionSurvivesRestart(t *testing.T) {
	conf := core.NewTestConfig(filepath.Join(t.TempDir(), "session.json"))
	store := sessionstore.NewFileStore(conf.SessionFile)

	svc := user.NewService(store, conf)
	usr, err := svc.Login("sam.admin@university.edu", "pass")
	require.NoError(t, err)

	// a fresh service picks the persisted session back up
	svc2 := user.NewService(sessionstore.NewFileStore(conf.SessionFile), conf)
	current, err := svc2.Current()
	require.NoError(t, err)
	assert.Equal(t, usr, current)
}

func TestCan(t *testing.T) {
	student, _ := user.MockUser(user.RoleStudent)
	instructor, _ := user.MockUser(user.RoleInstructor)
	admin, _ := user.MockUser(user.RoleAdmin)

	tests := []struct {
		name       string
		usr        user.User
		capability string
		want       bool
	}{
		{"student submits", student, user.CapSubmitAssessments, true},
		{"student views own grades", student, user.CapViewOwnGrades, true},
		{"student cannot view course grades", student, user.CapViewCourseGrades, false},
		{"student cannot simulate failure", student, user.CapSimulateFailure, false},
		{"instructor views course grades", instructor, user.CapViewCourseGrades, true},
		{"instructor simulates failure", instructor, user.CapSimulateFailure, true},
		{"instructor cannot submit", instructor, user.CapSubmitAssessments, false},
		{"admin has dev portal", admin, user.CapViewDevPortal, true},
		{"admin simulates failure", admin, user.CapSimulateFailure, true},
		{"unknown role has nothing", user.User{Role: "ghost"}, user.CapViewOwnGrades, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, user.Can(tt.usr, tt.capability))
		})
	}
}
