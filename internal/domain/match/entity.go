package match

// Match is pre-denormalized external data: candidateId/jobId may reference
// records that no longer exist. Matches are immutable and never produced by
// anything in this service.
type Match struct {
	ID            string   `json:"id"`
	CandidateID   string   `json:"candidateId"`
	JobID         string   `json:"jobId"`
	CandidateName string   `json:"candidateName"`
	Email         string   `json:"email"`
	JobTitle      string   `json:"jobTitle"`
	Company       string   `json:"company"`
	MatchScore    int      `json:"matchScore"`
	Skills        []string `json:"skills"`
}

type Bucket string

const (
	BucketHigh   Bucket = "high"
	BucketMedium Bucket = "medium"
	BucketLow    Bucket = "low"
)

// ScoreBucket classifies an integer score: 85-100 high, 70-84 medium,
// everything below low.
func ScoreBucket(score int) Bucket {
	switch {
	case score >= 85:
		return BucketHigh
	case score >= 70:
		return BucketMedium
	default:
		return BucketLow
	}
}
