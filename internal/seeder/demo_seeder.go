package seeder

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/user"
	"talent-match/internal/repository"
)

// DemoUserSeeder fills an empty users collection with demo accounts. It
// never touches a non-empty collection: registration owns user creation
// after first run.
type DemoUserSeeder struct {
	users   repository.UserRepository
	dataset []SeedUser
	logger  *log.Logger
}

func NewDemoUserSeeder(users repository.UserRepository, dataset []SeedUser, logger *log.Logger) *DemoUserSeeder {
	return &DemoUserSeeder{users: users, dataset: dataset, logger: logger}
}

func (s *DemoUserSeeder) Name() string { return "users" }

func (s *DemoUserSeeder) Run(ctx context.Context) error {
	if len(s.dataset) == 0 {
		return nil
	}
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		if s.logger != nil {
			s.logger.Printf("[Seed] users collection not empty, skipping")
		}
		return nil
	}

	now := time.Now().UTC()
	records := make([]user.User, 0, len(s.dataset))
	for _, su := range s.dataset {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		records = append(records, user.User{
			ID:           "user_" + uuid.NewString(),
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: string(hash),
			Role:         user.ParseRole(su.Role),
			CreatedAt:    now,
		})
	}
	if err := s.users.ReplaceAll(ctx, records); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Printf("[Seed] wrote %d demo users", len(records))
	}
	return nil
}

// DemoJobSeeder fills an empty jobs collection with demo postings.
type DemoJobSeeder struct {
	jobs    repository.JobRepository
	dataset []job.Job
	logger  *log.Logger
}

func NewDemoJobSeeder(jobs repository.JobRepository, dataset []job.Job, logger *log.Logger) *DemoJobSeeder {
	return &DemoJobSeeder{jobs: jobs, dataset: dataset, logger: logger}
}

func (s *DemoJobSeeder) Name() string { return "jobs" }

func (s *DemoJobSeeder) Run(ctx context.Context) error {
	if len(s.dataset) == 0 {
		return nil
	}
	count, err := s.jobs.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		if s.logger != nil {
			s.logger.Printf("[Seed] jobs collection not empty, skipping")
		}
		return nil
	}

	now := time.Now().UTC()
	records := make([]job.Job, 0, len(s.dataset))
	for _, j := range s.dataset {
		if j.ID == "" {
			j.ID = "job_" + uuid.NewString()
		}
		if j.CreatedAt.IsZero() {
			j.CreatedAt = now
		}
		j.Skills = job.DedupeSkills(j.Skills)
		records = append(records, j)
	}
	if err := s.jobs.ReplaceAll(ctx, records); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Printf("[Seed] wrote %d demo jobs", len(records))
	}
	return nil
}
