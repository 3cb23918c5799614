package seeder

import (
	"encoding/json"
	"fmt"
	"os"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/match"
)

// SeedUser carries a plaintext password in the seed file only; it is hashed
// before the record is written.
type SeedUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Dataset is the seed file layout. Matches are the authoritative read-only
// dataset; users and jobs are optional demo records.
type Dataset struct {
	Users   []SeedUser    `json:"users"`
	Jobs    []job.Job     `json:"jobs"`
	Matches []match.Match `json:"matches"`
}

func LoadDataset(path string) (Dataset, error) {
	if path == "" {
		return Dataset{}, fmt.Errorf("no seed file configured (SEED_FILE)")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(b, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode seed file: %w", err)
	}
	return ds, nil
}
