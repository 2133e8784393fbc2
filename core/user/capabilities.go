package user

// Capabilities gate role-conditional views. Views consult Can instead of
// comparing roles inline.
const (
	CapViewCourseGrades  = "grades:view-course"
	CapSimulateFailure   = "architecture:simulate-failure"
	CapViewDevPortal     = "dev-portal:view"
	CapViewOwnGrades     = "grades:view-own"
	CapSubmitAssessments = "assessments:submit"
)

var roleCapabilities = map[string][]string{
	RoleStudent: {
		CapViewOwnGrades,
		CapSubmitAssessments,
	},
	RoleInstructor: {
		CapViewCourseGrades,
		CapSimulateFailure,
		CapViewDevPortal,
	},
	RoleAdmin: {
		CapViewOwnGrades,
		CapViewCourseGrades,
		CapSubmitAssessments,
		CapSimulateFailure,
		CapViewDevPortal,
	},
}

// Can reports whether the user's role grants the given capability.
func Can(usr User, capability string) bool {
	for _, c := range roleCapabilities[usr.Role] {
		if c == capability {
			return true
		}
	}
	return false
}
