package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/api/handlers"
	"github.com/talentflow/talentflow/internal/api/middleware"
	"github.com/talentflow/talentflow/internal/models"
)

type Deps struct {
	JWTSecret string

	Auth         *handlers.AuthHandler
	Users        *handlers.UserHandler
	Jobs         *handlers.JobHandler
	Candidates   *handlers.CandidateHandler
	Applications *handlers.ApplicationHandler
	Interviews   *handlers.InterviewHandler
	Offers       *handlers.OfferHandler
	Reports      *handlers.ReportHandler
	Audit        *handlers.AuditHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// Public
	api.POST("/auth/login", d.Auth.Login)
	api.GET("/jobs", d.Jobs.List)
	api.GET("/jobs/:id", d.Jobs.Get)
	api.POST("/applications/submit", d.Applications.Submit)

	// Protected routes (JWT)
	auth := api.Group("/")
	auth.Use(middleware.JWTAuth(d.JWTSecret))

	auth.GET("/users", middleware.RequireAdmin(), d.Users.List)
	auth.GET("/users/me", d.Users.Me)

	staff := middleware.RequireRole(models.RoleAdmin, models.RoleRecruiter)
	auth.POST("/jobs", staff, d.Jobs.Create)
	auth.PUT("/jobs/:id", staff, d.Jobs.Update)
	auth.DELETE("/jobs/:id", middleware.RequireAdmin(), d.Jobs.Delete)

	auth.GET("/candidates", d.Candidates.List)
	auth.GET("/candidates/:id", d.Candidates.Get)

	pipeline := middleware.RequireRole(models.RoleAdmin, models.RoleRecruiter, models.RoleHiringManager)
	auth.GET("/applications", d.Applications.List)
	auth.PUT("/applications/:id/stage", pipeline, d.Applications.UpdateStage)

	auth.POST("/interviews", pipeline, d.Interviews.Schedule)
	auth.GET("/interviews/application/:id", d.Interviews.ListByApplication)
	auth.POST("/interviews/:id/bypass", d.Interviews.Bypass)

	approvers := middleware.RequireRole(models.RoleHiringManager, models.RoleBusinessHead, models.RoleHRManager)
	auth.POST("/offers", middleware.RequireRole(models.RoleRecruiter), d.Offers.Submit)
	auth.PUT("/offers/:id/approve", approvers, d.Offers.Decide)
	auth.GET("/offers/application/:id", d.Offers.ListByApplication)

	auth.GET("/reports/dashboard", d.Reports.Dashboard)
	auth.GET("/reports/time-to-hire", d.Reports.TimeToHire)
	auth.GET("/reports/conversion-rates", d.Reports.ConversionRates)

	auth.GET("/audit/:entity_type/:entity_id", middleware.RequireAdmin(), d.Audit.ListByEntity)
}
