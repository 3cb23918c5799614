package match

import "testing"

func TestScoreBucket(t *testing.T) {
	cases := []struct {
		score int
		want  Bucket
	}{
		{100, BucketHigh},
		{85, BucketHigh},
		{84, BucketMedium},
		{70, BucketMedium},
		{69, BucketLow},
		{0, BucketLow},
	}
	for _, c := range cases {
		if got := ScoreBucket(c.score); got != c.want {
			t.Fatalf("ScoreBucket(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}
