// Package views holds the pure read-side joins and filters computed over
// already-read collections. Nothing here touches persistence.
package views

import (
	"fmt"
	"sort"
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/match"
	"talent-match/internal/domain/resume"
	"talent-match/internal/domain/user"
)

func JobsByRecruiter(jobs []job.Job, userID string) []job.Job {
	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.CreatedBy == userID {
			out = append(out, j)
		}
	}
	return out
}

func ResumesByUser(resumes []resume.Resume, userID string) []resume.Resume {
	out := make([]resume.Resume, 0, len(resumes))
	for _, r := range resumes {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

func MatchesByCandidate(matches []match.Match, candidateID string) []match.Match {
	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.CandidateID == candidateID {
			out = append(out, m)
		}
	}
	return out
}

// Candidate is the recruiter-facing roll-up of resume uploaders.
type Candidate struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ResumeCount int    `json:"resumeCount"`
}

// UniqueCandidates collapses resumes into one candidate per email,
// first-seen wins. The identity snapshot comes from the earliest resume, so
// a later name change does not rewrite the listing.
func UniqueCandidates(resumes []resume.Resume) []Candidate {
	seen := map[string]int{}
	out := make([]Candidate, 0)
	for _, r := range resumes {
		if r.UserEmail == "" {
			continue
		}
		if idx, ok := seen[r.UserEmail]; ok {
			out[idx].ResumeCount++
			continue
		}
		seen[r.UserEmail] = len(out)
		out = append(out, Candidate{
			UserID:      r.UserID,
			Name:        r.UserName,
			Email:       r.UserEmail,
			ResumeCount: 1,
		})
	}
	return out
}

type ActivityType string

const (
	ActivityUser   ActivityType = "user"
	ActivityJob    ActivityType = "job"
	ActivityResume ActivityType = "resume"
)

// Activity is one entry of the merged recency feed. OccurredAt is the sort
// key; the human-readable form is derived from it at render time, never the
// other way around.
type Activity struct {
	ID         string       `json:"id"`
	Type       ActivityType `json:"type"`
	Text       string       `json:"text"`
	OccurredAt time.Time    `json:"occurredAt"`
}

// RecentActivity merges the newest perSource records from users, jobs and
// resumes into a single feed ordered by timestamp descending, truncated to
// limit. Any source slice may be nil to exclude it.
func RecentActivity(users []user.User, jobs []job.Job, resumes []resume.Resume, perSource, limit int) []Activity {
	if perSource <= 0 {
		perSource = 5
	}

	acts := make([]Activity, 0, 3*perSource)
	for _, u := range lastN(users, perSource) {
		acts = append(acts, Activity{
			ID:         "user_" + u.ID,
			Type:       ActivityUser,
			Text:       fmt.Sprintf("New %s registered - %s", roleOrDefault(u.Role), u.Email),
			OccurredAt: u.CreatedAt,
		})
	}
	for _, j := range lastN(jobs, perSource) {
		acts = append(acts, Activity{
			ID:         "job_" + j.ID,
			Type:       ActivityJob,
			Text:       "New job posted - " + j.Title,
			OccurredAt: j.CreatedAt,
		})
	}
	for _, r := range lastN(resumes, perSource) {
		acts = append(acts, Activity{
			ID:         "resume_" + r.ID,
			Type:       ActivityResume,
			Text:       "New resume uploaded - " + r.FileName,
			OccurredAt: r.UploadedAt,
		})
	}

	sort.SliceStable(acts, func(i, j int) bool {
		return acts[i].OccurredAt.After(acts[j].OccurredAt)
	})

	if limit > 0 && len(acts) > limit {
		acts = acts[:limit]
	}
	return acts
}

// TimeAgo renders a recency label for display. It is derived output only;
// the feed never sorts on it.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func lastN[T any](records []T, n int) []T {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

func roleOrDefault(r user.Role) user.Role {
	if r == "" {
		return user.RoleCandidate
	}
	return r
}
