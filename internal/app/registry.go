package app

import (
	"database/sql"
	"os"

	"github.com/mexanik619/College-Placement-Website/internal/application"
	"github.com/mexanik619/College-Placement-Website/internal/company"
	"github.com/mexanik619/College-Placement-Website/internal/job"
	"github.com/mexanik619/College-Placement-Website/internal/messaging/kafka"
	"github.com/mexanik619/College-Placement-Website/internal/middleware"
	"github.com/mexanik619/College-Placement-Website/internal/student"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	applicationRepo := application.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	studentRepo := student.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	appCfg := application.Config{
		TransitionPolicy: application.ParsePolicy(os.Getenv("APPLICATION_TRANSITION_POLICY")),
		AllowReapply:     os.Getenv("APPLICATION_ALLOW_REAPPLY") != "false",
	}
	applicationService := application.NewServiceWithOutbox(db, applicationRepo, outboxRepo, appCfg)
	companyService := company.NewService(db, companyRepo)
	jobService := job.NewService(db, jobRepo, rdb)
	studentService := student.NewService(db, studentRepo)

	// --- Handlers ---
	applicationHandler := application.NewHandler(applicationService)
	companyHandler := company.NewHandler(companyService)
	jobHandler := job.NewHandler(jobService)
	studentHandler := student.NewHandler(studentService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		application.RegisterRoutes(api, applicationHandler)
		company.RegisterRoutes(api, companyHandler)
		job.RegisterRoutes(api, jobHandler)
		student.RegisterRoutes(api, studentHandler)
	}

	return nil
}
