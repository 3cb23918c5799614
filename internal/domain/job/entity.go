package job

import "time"

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Skills      []string  `json:"skills"`
	Experience  string    `json:"experience"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// DedupeSkills suppresses duplicates within a single job while preserving
// the order skills were entered in. The result is never nil, so a posting
// without skills still marshals as an empty array.
func DedupeSkills(skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
