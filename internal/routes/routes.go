package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barbershop/scheduler/internal/audit"
	"github.com/barbershop/scheduler/internal/cache"
	"github.com/barbershop/scheduler/internal/config"
	"github.com/barbershop/scheduler/internal/handlers"
	infraRepo "github.com/barbershop/scheduler/internal/infra/repository"
	"github.com/barbershop/scheduler/internal/middleware"
	"github.com/barbershop/scheduler/internal/models"
	ucReport "github.com/barbershop/scheduler/internal/usecase/report"
	ucSchedule "github.com/barbershop/scheduler/internal/usecase/schedule"
	ucService "github.com/barbershop/scheduler/internal/usecase/service"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cacheClient cache.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	customerRepo := infraRepo.NewCustomerGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createScheduleUC := ucSchedule.NewCreateSchedule(
		scheduleRepo,
		customerRepo,
		serviceRepo,
		auditDispatcher,
		log,
	)

	confirmScheduleUC := ucSchedule.NewConfirmSchedule(scheduleRepo, auditDispatcher)
	cancelScheduleUC := ucSchedule.NewCancelSchedule(scheduleRepo, auditDispatcher)
	completeScheduleUC := ucSchedule.NewCompleteSchedule(scheduleRepo, auditDispatcher)
	listSchedulesUC := ucSchedule.NewListSchedules(scheduleRepo)

	priceUC := ucService.NewCalculateServicePrice(serviceRepo)

	reportUC := ucReport.NewReportUseCase(scheduleRepo, cacheClient, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	scheduleHandler := handlers.NewScheduleHandler(
		createScheduleUC,
		confirmScheduleUC,
		cancelScheduleUC,
		completeScheduleUC,
		listSchedulesUC,
	)

	serviceHandler := handlers.NewServiceHandler(db, priceUC)
	customerHandler := handlers.NewCustomerHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	reportHandler := handlers.NewReportHandler(reportUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// Agendamentos
			secured.POST("/schedules", scheduleHandler.Create)
			secured.GET("/schedules", scheduleHandler.List)
			secured.PATCH("/schedules/:id/confirm", scheduleHandler.Confirm)
			secured.PATCH("/schedules/:id/cancel", scheduleHandler.Cancel)
			secured.PATCH("/schedules/:id/complete", scheduleHandler.Complete)

			// Serviços
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.POST("/services/price", serviceHandler.PriceQuote)

			// Clientes / barbeiros
			secured.GET("/customers/:id", customerHandler.Get)
			secured.PUT("/customers/:id", customerHandler.Update)
			secured.GET("/barbers", barberHandler.List)
			secured.GET("/barbers/:id", barberHandler.Get)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/services", serviceHandler.Create)
				admin.PUT("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/customers", customerHandler.List)
				admin.DELETE("/customers/:id", customerHandler.Delete)

				admin.PATCH("/barbers/:id/specialty", barberHandler.AddSpecialty)
				admin.DELETE("/barbers/:id", barberHandler.Delete)

				admin.GET("/reports/daily", reportHandler.Daily)
				admin.GET("/reports/monthly", reportHandler.Monthly)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
