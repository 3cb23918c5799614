package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/benbjohnson/clock"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/latency"
	"talent-match/internal/pkg/token"
	"talent-match/internal/repository"
	"talent-match/internal/session"
	"talent-match/internal/storage"
	storebadger "talent-match/internal/storage/badger"
	storememory "talent-match/internal/storage/memory"
	storepostgres "talent-match/internal/storage/postgres"
	ucadmin "talent-match/internal/usecase/admin"
	ucauth "talent-match/internal/usecase/auth"
	ucjob "talent-match/internal/usecase/job"
	ucmatch "talent-match/internal/usecase/match"
	ucresume "talent-match/internal/usecase/resume"
)

type Container struct {
	Config   config.Config
	Logger   *log.Logger
	Store    storage.Store
	Cache    *cache.Redis
	Sessions *session.Manager
	Registry *routes.Registry

	Users   repository.UserRepository
	Jobs    repository.JobRepository
	Resumes repository.ResumeRepository
	Matches repository.MatchRepository
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	st, err := OpenStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	c := cache.NewRedis(cfg.Redis, logger)
	sessions := session.NewManager(st)
	tokens := token.NewHMACService(cfg.Auth.Secret)
	delay := latency.New(clock.New(), cfg.App.APILatency)

	users := repository.NewStoreUserRepository(st)
	jobs := repository.NewStoreJobRepository(st)
	resumes := repository.NewStoreResumeRepository(st)
	matches := repository.NewStoreMatchRepository(st)

	authUC := ucauth.NewService(users, sessions, tokens, delay, c, cfg.Admin)
	resumeUC := ucresume.NewService(resumes, c, delay)
	jobUC := ucjob.NewService(jobs, c, delay)
	matchUC := ucmatch.NewService(matches, c, delay)
	adminUC := ucadmin.NewService(users, jobs, resumes, matches, c, delay)

	authMw := middleware.NewAuthMiddleware(tokens, sessions)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(),
		handler.NewAuthHandler(authUC),
		handler.NewResumeHandler(resumeUC),
		handler.NewJobHandler(jobUC),
		handler.NewMatchHandler(matchUC),
		handler.NewAdminHandler(adminUC),
		handler.NewGuardHandler(sessions),
		authMw,
	)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Store:    st,
		Cache:    c,
		Sessions: sessions,
		Registry: registry,
		Users:    users,
		Jobs:     jobs,
		Resumes:  resumes,
		Matches:  matches,
	}, nil
}

// OpenStore selects the collection store driver from config.
func OpenStore(cfg config.Config, logger *log.Logger) (storage.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverBadger:
		return storebadger.Open(cfg.Store.BadgerPath, logger)
	case config.StoreDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storepostgres.Connect(ctx, cfg.Database)
	case config.StoreDriverMemory:
		return storememory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}
