package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/talentflow/talentflow/config"
	"github.com/talentflow/talentflow/internal/api/handlers"
	"github.com/talentflow/talentflow/internal/api/middleware"
	"github.com/talentflow/talentflow/internal/api/routes"
	"github.com/talentflow/talentflow/internal/cache"
	"github.com/talentflow/talentflow/internal/logger"
	mongorepo "github.com/talentflow/talentflow/internal/repositories/mongo"
	pgrepo "github.com/talentflow/talentflow/internal/repositories/postgres"
	"github.com/talentflow/talentflow/internal/services"
	"github.com/talentflow/talentflow/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatalf("config error: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	db := config.PostgresDB
	if err := pgrepo.Migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	if err := pgrepo.SeedUsers(db, cfg.SeedPassword); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	// Mongo carries the audit trail; the system degrades to no trail
	// without it.
	var auditRepo mongorepo.AuditRepository
	if os.Getenv("MONGO_URI") != "" {
		if err := config.InitMongo(); err != nil {
			log.Fatalf("MongoDB init error: %v", err)
		}
		if err := config.EnsureMongoIndexes(); err != nil {
			log.Fatalf("MongoDB index error: %v", err)
		}
		auditRepo = mongorepo.NewAuditRepo(config.MongoDatabase())
	} else {
		log.Warn("MONGO_URI not set; audit trail disabled")
	}

	// Redis backs the dashboard cache; reports recompute without it.
	var reportCache cache.Cache
	if os.Getenv("REDIS_ADDR") != "" || os.Getenv("REDIS_URI") != "" {
		if err := config.InitRedis(); err != nil {
			log.Fatalf("Redis init error: %v", err)
		}
		reportCache = cache.NewRedisCache(config.RedisClient)
	} else {
		log.Warn("REDIS_ADDR not set; report cache disabled")
	}

	var uploader storage.Uploader
	switch cfg.UploadBackend {
	case "gcs":
		u, err := storage.NewGCSUploader(context.Background(), cfg.UploadBucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer u.Close()
		uploader = u
	default:
		u, err := storage.NewLocalUploader(cfg.UploadDir)
		if err != nil {
			log.Fatalf("upload dir error: %v", err)
		}
		uploader = u
	}

	userRepo := pgrepo.NewUserRepo(db)
	jobRepo := pgrepo.NewJobRepo(db)
	candidateRepo := pgrepo.NewCandidateRepo(db)
	applicationRepo := pgrepo.NewApplicationRepo(db)
	interviewRepo := pgrepo.NewInterviewRepo(db)
	offerRepo := pgrepo.NewOfferRepo(db)
	reportRepo := pgrepo.NewReportRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	jobSvc := services.NewJobService(jobRepo)
	candidateSvc := services.NewCandidateService(candidateRepo)
	applicationSvc := services.NewApplicationService(applicationRepo, jobRepo, uploader, services.NewAuditor(auditRepo, log))
	interviewSvc := services.NewInterviewService(interviewRepo, applicationRepo, services.NewAuditor(auditRepo, log))
	offerSvc := services.NewOfferService(offerRepo, applicationRepo, services.NewAuditor(auditRepo, log))
	reportSvc := services.NewReportService(reportRepo, reportCache, cfg.ReportCacheTTL, log)
	auditSvc := services.NewAuditService(auditRepo)

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret:    cfg.JWTSecret,
		Auth:         handlers.NewAuthHandler(authSvc),
		Users:        handlers.NewUserHandler(userSvc),
		Jobs:         handlers.NewJobHandler(jobSvc),
		Candidates:   handlers.NewCandidateHandler(candidateSvc),
		Applications: handlers.NewApplicationHandler(applicationSvc, cfg.UploadMaxBytes),
		Interviews:   handlers.NewInterviewHandler(interviewSvc),
		Offers:       handlers.NewOfferHandler(offerSvc),
		Reports:      handlers.NewReportHandler(reportSvc),
		Audit:        handlers.NewAuditHandler(auditSvc),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
