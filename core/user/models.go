package user

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ylearn/ylearn/core"
)

// Roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

var (
	AllRoles = []string{RoleStudent, RoleInstructor, RoleAdmin}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Instructor", Value: RoleInstructor},
		{Name: "Admin", Value: RoleAdmin},
	}
)

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

func (u User) IsStudent() bool    { return u.Role == RoleStudent }
func (u User) IsInstructor() bool { return u.Role == RoleInstructor }
func (u User) IsAdmin() bool      { return u.Role == RoleAdmin }

// mockUsers are the fixed demo accounts, one per role. There is no real
// account store; logging in resolves to one of these.
var mockUsers = map[string]User{
	RoleStudent: {
		ID:     "s12345",
		Name:   "Alex Student",
		Email:  "alex@university.edu",
		Role:   RoleStudent,
		Avatar: "/abstract-geometric-shapes.png",
	},
	RoleInstructor: {
		ID:     "i67890",
		Name:   "Dr. Jamie Professor",
		Email:  "jamie@university.edu",
		Role:   RoleInstructor,
		Avatar: "/stylized-jp-initials.png",
	},
	RoleAdmin: {
		ID:     "a24680",
		Name:   "Sam Admin",
		Email:  "sam@university.edu",
		Role:   RoleAdmin,
		Avatar: "/abstract-geometric-shapes.png",
	},
}

// MockUser returns the demo account for the given role.
func MockUser(role string) (User, bool) {
	usr, ok := mockUsers[role]
	return usr, ok
}

// RoleForEmail infers a role from substrings of the email address:
// "admin" -> admin; "professor" or "instructor" -> instructor; anything
// else -> student. This is the whole of the demo's login logic.
func RoleForEmail(email string) string {
	email = strings.ToLower(email)
	switch {
	case strings.Contains(email, "admin"):
		return RoleAdmin
	case strings.Contains(email, "professor"), strings.Contains(email, "instructor"):
		return RoleInstructor
	default:
		return RoleStudent
	}
}

// Credentials is the login payload. Any non-empty password is accepted;
// required-ness is the only check.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}

// RoleSwitch selects the demo account to switch the session to.
type RoleSwitch struct {
	Role string `json:"role" validate:"required,role"`
}

func (rs *RoleSwitch) Validate(validate *validator.Validate) error {
	rs.Role = core.CleanString(rs.Role, true /* lower */)
	return validate.Struct(rs)
}
