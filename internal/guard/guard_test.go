package guard

import (
	"testing"

	"talent-match/internal/domain/user"
)

func TestEvaluateView(t *testing.T) {
	anon := State{}
	candidate := State{Authenticated: true, Role: user.RoleCandidate}
	recruiter := State{Authenticated: true, Role: user.RoleRecruiter}
	admin := State{Authenticated: true, Role: user.RoleAdmin}

	cases := []struct {
		name  string
		view  string
		state State
		want  Decision
	}{
		{"anon reaches login", "login", anon, Decision{Allowed: true}},
		{"signed-in candidate bounced off login", "login", candidate, Decision{Allowed: false, RedirectTo: "/candidate-dashboard"}},
		{"signed-in admin bounced off register", "register", admin, Decision{Allowed: false, RedirectTo: "/dashboard"}},

		{"anon sent to login from role-gated view", "recruiter-dashboard", anon, Decision{Allowed: false, RedirectTo: LoginPath}},
		{"anon sent to login from protected view", "upload-resume", anon, Decision{Allowed: false, RedirectTo: LoginPath}},

		{"candidate reaches own dashboard", "candidate-dashboard", candidate, Decision{Allowed: true}},
		{"recruiter reaches own dashboard", "recruiter-dashboard", recruiter, Decision{Allowed: true}},

		// Role violations land on the violator's own dashboard, never login.
		{"recruiter bounced off candidate view", "my-matches", recruiter, Decision{Allowed: false, RedirectTo: "/recruiter-dashboard"}},
		{"candidate bounced off recruiter view", "upload-job", candidate, Decision{Allowed: false, RedirectTo: "/candidate-dashboard"}},
		{"candidate bounced off admin view", "dashboard", candidate, Decision{Allowed: false, RedirectTo: "/candidate-dashboard"}},

		// Admin passes every role gate.
		{"admin reaches recruiter view", "upload-job", admin, Decision{Allowed: true}},
		{"admin reaches candidate view", "browse-jobs", admin, Decision{Allowed: true}},
		{"admin reaches admin view", "admin", admin, Decision{Allowed: true}},

		{"any authenticated role uploads resumes", "upload-resume", recruiter, Decision{Allowed: true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := EvaluateView(c.view, c.state)
			if !ok {
				t.Fatalf("view %q not registered", c.view)
			}
			if got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestEvaluateViewUnknown(t *testing.T) {
	if _, ok := EvaluateView("no-such-view", State{}); ok {
		t.Fatalf("unknown view must not resolve")
	}
}

func TestDefaultLanding(t *testing.T) {
	if got := DefaultLanding(user.RoleAdmin); got != "/dashboard" {
		t.Fatalf("admin landing %q", got)
	}
	if got := DefaultLanding(user.RoleRecruiter); got != "/recruiter-dashboard" {
		t.Fatalf("recruiter landing %q", got)
	}
	if got := DefaultLanding(user.RoleCandidate); got != "/candidate-dashboard" {
		t.Fatalf("candidate landing %q", got)
	}
	if got := DefaultLanding(""); got != "/candidate-dashboard" {
		t.Fatalf("unknown role landing %q", got)
	}
}
