package job

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestDedupeSkills(t *testing.T) {
	got := DedupeSkills([]string{"Go", "SQL", "Go", "Docker", "SQL"})
	if want := []string{"Go", "SQL", "Docker"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDedupeSkillsEmptyIsNeverNil(t *testing.T) {
	for _, in := range [][]string{nil, {}} {
		got := DedupeSkills(in)
		if got == nil || len(got) != 0 {
			t.Fatalf("DedupeSkills(%v) = %v, want empty non-nil slice", in, got)
		}
	}

	// A skill-less posting must carry an empty array on the wire, not null.
	b, err := json.Marshal(Job{ID: "job_1", Skills: DedupeSkills(nil)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"skills":[]`) {
		t.Fatalf("expected empty skills array, got %s", b)
	}
}
