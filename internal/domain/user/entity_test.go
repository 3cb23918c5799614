package user

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"candidate": RoleCandidate,
		"recruiter": RoleRecruiter,
		"admin":     RoleAdmin,
		"":          RoleCandidate,
		"root":      RoleCandidate,
	}
	for raw, want := range cases {
		if got := ParseRole(raw); got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRoleCanAccess(t *testing.T) {
	if !RoleAdmin.CanAccess(RoleRecruiter) || !RoleAdmin.CanAccess(RoleCandidate) {
		t.Fatalf("admin must satisfy every role requirement")
	}
	if RoleCandidate.CanAccess(RoleRecruiter) {
		t.Fatalf("candidate must not satisfy recruiter requirement")
	}
	if !RoleRecruiter.CanAccess(RoleRecruiter) {
		t.Fatalf("role must satisfy itself")
	}
}
