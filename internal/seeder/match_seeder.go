package seeder

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"talent-match/internal/domain/match"
	"talent-match/internal/repository"
)

// MatchSeeder owns the matches collection: no other process ever writes it.
// Seeding replaces the whole collection with the dataset.
type MatchSeeder struct {
	matches repository.MatchRepository
	dataset []match.Match
	logger  *log.Logger
}

func NewMatchSeeder(matches repository.MatchRepository, dataset []match.Match, logger *log.Logger) *MatchSeeder {
	return &MatchSeeder{matches: matches, dataset: dataset, logger: logger}
}

func (s *MatchSeeder) Name() string { return "matches" }

func (s *MatchSeeder) Run(ctx context.Context) error {
	records := make([]match.Match, 0, len(s.dataset))
	for i, m := range s.dataset {
		if m.MatchScore < 0 || m.MatchScore > 100 {
			return fmt.Errorf("match %d: score %d outside 0-100", i, m.MatchScore)
		}
		if m.ID == "" {
			m.ID = "match_" + uuid.NewString()
		}
		records = append(records, m)
	}

	if err := s.matches.ReplaceAll(ctx, records); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Printf("[Seed] wrote %d matches", len(records))
	}
	return nil
}
