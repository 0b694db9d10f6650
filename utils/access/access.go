package access

import (
	"api/models"
)

// Tag declares what a route requires: one of the real roles, or the
// sentinels Public (landing pages) and Login (login/registration pages,
// reachable only while logged out).
type Tag string

const (
	TagPublic Tag = "public"
	TagLogin  Tag = "login"

	TagAdmin          Tag = Tag(models.RoleAdmin)
	TagSchoolStudent  Tag = Tag(models.RoleSchoolStudent)
	TagCollegeStudent Tag = Tag(models.RoleCollegeStudent)
)

// Decision is the outcome of evaluating a caller against a route tag.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectDashboard:
		return "redirect_dashboard"
	default:
		return "forbidden"
	}
}

var knownRoles = map[string]bool{
	models.RoleAdmin:          true,
	models.RoleSchoolStudent:  true,
	models.RoleCollegeStudent: true,
}

// KnownRole reports whether name is in the closed role set.
func KnownRole(name string) bool {
	return knownRoles[name]
}

// Evaluate is the single policy table for both the server middleware and
// the client route guard. role is empty when the caller has no valid
// session.
//
// An authenticated caller whose role is outside the known set gets an
// explicit Forbidden rather than falling through to a login redirect.
func Evaluate(role string, tag Tag) Decision {
	authenticated := role != ""

	if !authenticated {
		if tag == TagPublic || tag == TagLogin {
			return Allow
		}
		return RedirectLogin
	}

	if !KnownRole(role) {
		return Forbidden
	}

	// Authenticated users are kept off login and landing pages.
	if tag == TagPublic || tag == TagLogin {
		return RedirectDashboard
	}

	// A tag that is neither a sentinel nor a known role is a
	// misdeclared route; send the caller to their own area.
	if !KnownRole(string(tag)) {
		return RedirectDashboard
	}

	if string(tag) != role {
		return RedirectDashboard
	}

	return Allow
}

// DashboardPath returns the caller's own dashboard route, the target of
// every RedirectDashboard decision.
func DashboardPath(role string) string {
	return "/" + role + "-dashboard"
}
