package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sipslabs/sips-api/internal/audit"
	"github.com/sipslabs/sips-api/internal/config"
	"github.com/sipslabs/sips-api/internal/handlers"
	infraRepo "github.com/sipslabs/sips-api/internal/infra/repository"
	"github.com/sipslabs/sips-api/internal/middleware"
	ucLedger "github.com/sipslabs/sips-api/internal/usecase/ledger"
	ucScheduling "github.com/sipslabs/sips-api/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	ledgerRepo := infraRepo.NewLedgerGormRepository(db)
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — LEDGER
	// ======================================================
	createEntryUC := ucLedger.NewCreateEntry(ledgerRepo, auditDispatcher)
	listEntriesUC := ucLedger.NewListEntries(ledgerRepo)
	deleteEntryUC := ucLedger.NewDeleteEntry(ledgerRepo, auditDispatcher)
	summarizeUC := ucLedger.NewSummarizeEntries(ledgerRepo)
	exportUC := ucLedger.NewExportEntries(ledgerRepo)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	createAppointmentUC := ucScheduling.NewCreateAppointment(
		schedulingRepo,
		auditDispatcher,
		cfg.CountryCode,
	)
	listAppointmentsUC := ucScheduling.NewListAppointments(schedulingRepo)
	dashboardUC := ucScheduling.NewDashboard(schedulingRepo, ledgerRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
	)

	ledgerHandler := handlers.NewLedgerHandler(
		createEntryUC,
		listEntriesUC,
		deleteEntryUC,
		summarizeUC,
		exportUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients", clientHandler.List)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		api.POST("/services", serviceHandler.Create)
		api.GET("/services", serviceHandler.List)

		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)

		api.POST("/ledger", ledgerHandler.Create)
		api.GET("/ledger", ledgerHandler.List)
		api.DELETE("/ledger/:id", ledgerHandler.Delete)
		api.GET("/ledger/summary", ledgerHandler.Summary)
		api.GET("/ledger/export", ledgerHandler.Export)

		api.GET("/dashboard", dashboardHandler.Get)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
