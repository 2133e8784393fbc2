package user

import (
	"errors"
	"sync"
	"time"

	"github.com/ylearn/ylearn/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrNoSession   = errors.New("no active session")
	ErrUnknownRole = errors.New("unknown role")
)

type (
	// SessionStore persists the single logged-in user record under a fixed
	// storage key; written on login/role-switch, removed on logout.
	SessionStore interface {
		Load() (User, error) // ErrNoSession when nothing is stored
		Save(usr User) error
		Clear() error
	}

	Service struct {
		sessions SessionStore
		latency  time.Duration

		mu      sync.RWMutex
		current *User
	}
)

// NewService creates the mock auth service and loads any persisted session
// (explicit load-at-startup lifecycle).
func NewService(sessions SessionStore, conf *core.Config) *Service {
	svc := &Service{sessions: sessions, latency: conf.LoginLatency}
	if usr, err := sessions.Load(); err == nil {
		svc.current = &usr
	}
	return svc
}

// Login accepts any non-empty password and resolves the demo account whose
// role the email implies. The fixed delay mimics a network round trip.
func (svc *Service) Login(email, password string) (User, error) {
	if core.CleanString(password) == "" {
		return User{}, core.NewValidationError(nil, core.FieldError{Field: "password", Error: "this field is required"})
	}
	time.Sleep(svc.latency)

	usr, _ := MockUser(RoleForEmail(email))
	if err := svc.sessions.Save(usr); err != nil {
		return User{}, err
	}
	svc.mu.Lock()
	svc.current = &usr
	svc.mu.Unlock()
	return usr, nil
}

func (svc *Service) Logout() error {
	svc.mu.Lock()
	svc.current = nil
	svc.mu.Unlock()
	return svc.sessions.Clear()
}

// SwitchRole swaps the session to the given role's demo account.
func (svc *Service) SwitchRole(role string) (User, error) {
	usr, ok := MockUser(role)
	if !ok {
		return User{}, ErrUnknownRole
	}
	if err := svc.sessions.Save(usr); err != nil {
		return User{}, err
	}
	svc.mu.Lock()
	svc.current = &usr
	svc.mu.Unlock()
	return usr, nil
}

// Current returns the logged-in user, ErrNoSession when nobody is.
func (svc *Service) Current() (User, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.current == nil {
		return User{}, ErrNoSession
	}
	return *svc.current, nil
}

// GetByID looks a user up among the demo accounts.
func (svc *Service) GetByID(id string) (User, error) {
	for _, usr := range mockUsers {
		if usr.ID == id {
			return usr, nil
		}
	}
	return User{}, ErrNotFound
}
