package guard

import "talent-match/internal/domain/user"

// View is one entry of the navigable route table.
type View struct {
	Name   string
	Policy Policy
	Roles  []user.Role
}

// The registry mirrors the client's route table: entry views are
// public-only, dashboards and management views are role-gated, and resume
// upload is shared by every authenticated role.
var registry = map[string]View{
	"login":    {Name: "login", Policy: PolicyPublicOnly},
	"register": {Name: "register", Policy: PolicyPublicOnly},

	"dashboard": {Name: "dashboard", Policy: PolicyRoleGated, Roles: []user.Role{user.RoleAdmin}},
	"admin":     {Name: "admin", Policy: PolicyRoleGated, Roles: []user.Role{user.RoleAdmin}},

	"candidate-dashboard": {Name: "candidate-dashboard", Policy: PolicyRoleGated, Roles: []user.Role{user.RoleCandidate}},
	"browse-jobs":         {Name: "browse-jobs", Policy: PolicyRoleGated, Roles: []user.Role{user.RoleCandidate}},
	"my-matches":          {Name: "my-matches", Policy: PolicyRoleGated, Roles: []user.Role{user.RoleCandidate}},

	"recruiter-dashboard": {Name: "recruiter-dashboard", Policy: PolicyRoleGated, Roles: []user.Role{user.RoleRecruiter}},
	"upload-job":          {Name: "upload-job", Policy: PolicyRoleGated, Roles: []user.Role{user.RoleRecruiter}},
	"matches":             {Name: "matches", Policy: PolicyRoleGated, Roles: []user.Role{user.RoleRecruiter}},
	"candidates":          {Name: "candidates", Policy: PolicyRoleGated, Roles: []user.Role{user.RoleRecruiter}},

	"upload-resume": {Name: "upload-resume", Policy: PolicyProtected},
}

func Lookup(name string) (View, bool) {
	v, ok := registry[name]
	return v, ok
}

// EvaluateView resolves a named view and runs its policy. Unknown views are
// reported distinctly so the caller can fall back to its catch-all route.
func EvaluateView(name string, state State) (Decision, bool) {
	v, ok := Lookup(name)
	if !ok {
		return Decision{}, false
	}
	return Evaluate(v.Policy, state, v.Roles), true
}
