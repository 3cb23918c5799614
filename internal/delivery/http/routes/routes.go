package routes

import (
	"github.com/gofiber/fiber/v3"

	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/user"
)

type Registry struct {
	health *handler.HealthHandler
	auth   *handler.AuthHandler
	resume *handler.ResumeHandler
	job    *handler.JobHandler
	match  *handler.MatchHandler
	admin  *handler.AdminHandler
	guard  *handler.GuardHandler

	authMw *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	resume *handler.ResumeHandler,
	job *handler.JobHandler,
	match *handler.MatchHandler,
	admin *handler.AdminHandler,
	guard *handler.GuardHandler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health: health,
		auth:   auth,
		resume: resume,
		job:    job,
		match:  match,
		admin:  admin,
		guard:  guard,
		authMw: authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")

	// Entry surface: no session required. Logout always succeeds, even for
	// an already-anonymous caller, so it lives here too.
	r.auth.RegisterRoutes(v1.Group("/auth"))
	r.guard.RegisterRoutes(v1)

	// Authenticated surface. Reads are open to every signed-in role; the
	// role-scoped writes and admin views carry an extra gate, and the
	// facade re-checks writes regardless.
	sec := v1.Group("/", r.authMw.Middleware())
	r.resume.RegisterRoutes(sec)
	r.job.RegisterRoutes(sec)
	r.match.RegisterRoutes(sec)

	sec.Post("/jobs", r.job.Upload, middleware.RequireRoles(user.RoleRecruiter))
	sec.Get("/candidates", r.resume.Candidates, middleware.RequireRoles(user.RoleRecruiter))

	r.admin.RegisterRoutes(sec.Group("/admin", middleware.RequireRoles(user.RoleAdmin)))
}
