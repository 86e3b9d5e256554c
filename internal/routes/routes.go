package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barberpro/internal/billing"
	"github.com/BruksfildServices01/barberpro/internal/blob"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/session"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/barberpro/internal/usecase/auth"
	ucBilling "github.com/BruksfildServices01/barberpro/internal/usecase/billing"
	ucCatalog "github.com/BruksfildServices01/barberpro/internal/usecase/catalog"
	ucClient "github.com/BruksfildServices01/barberpro/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/barberpro/internal/usecase/dashboard"
	ucLedger "github.com/BruksfildServices01/barberpro/internal/usecase/ledger"
	ucLogo "github.com/BruksfildServices01/barberpro/internal/usecase/logo"
	ucStaff "github.com/BruksfildServices01/barberpro/internal/usecase/staff"
	ucTenant "github.com/BruksfildServices01/barberpro/internal/usecase/tenant"
)

// Deps reúne a infraestrutura montada no main.
type Deps struct {
	Repo       *infraRepo.Sections
	Sessions   session.Store
	Tokens     *session.TokenIssuer
	Blobs      blob.Store
	Billing    billing.Provider // nil desliga /billing
	Clock      timezone.Clock
	Policy     domain.Policy
	SessionTTL time.Duration

	// nil pula a checagem de DNS
	CheckEmailDomain ucTenant.DomainChecker
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	authenticateUC := ucAuth.NewAuthenticate(d.Repo, d.Sessions, d.Clock, d.SessionTTL)
	logoutUC := ucAuth.NewLogout(d.Sessions)

	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Repo, d.Clock)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(d.Repo, d.Clock, d.Policy)
	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(d.Repo, d.Clock)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(d.Repo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authenticateUC, logoutUC, d.Tokens)
	meHandler := handlers.NewMeHandler(d.Repo, ucDashboard.NewGetDashboard(d.Repo, d.Clock))

	clientHandler := handlers.NewClientHandler(
		ucClient.NewCreateClient(d.Repo, d.Clock),
		ucClient.NewSearchClients(d.Repo),
	)
	staffHandler := handlers.NewStaffHandler(
		ucStaff.NewCreateStaff(d.Repo, d.Clock),
		ucStaff.NewListStaff(d.Repo),
	)
	serviceHandler := handlers.NewServiceHandler(
		ucCatalog.NewCreateService(d.Repo),
		ucCatalog.NewListServices(d.Repo),
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)
	ledgerHandler := handlers.NewLedgerHandler(
		ucLedger.NewCreateEntry(d.Repo, d.Clock),
		ucLedger.NewListEntries(d.Repo),
		ucLedger.NewMonthlySummary(d.Repo, d.Clock),
	)
	billingHandler := handlers.NewBillingHandler(ucBilling.NewCreateCheckout(d.Repo, d.Billing))
	logoHandler := handlers.NewLogoHandler(
		ucLogo.NewUploadLogo(d.Repo, d.Blobs),
		ucLogo.NewGetLogo(d.Repo, d.Blobs),
	)
	adminHandler := handlers.NewAdminHandler(
		ucTenant.NewListTenants(d.Repo),
		ucTenant.NewCreateTenant(d.Repo, d.Clock, d.CheckEmailDomain),
		ucTenant.NewUpdateTenant(d.Repo),
		ucTenant.NewGlobalFinance(d.Repo, d.Clock),
		ucTenant.NewGetOverview(d.Repo),
	)

	// ======================================================
	// 🌍 PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	// ======================================================
	// 🔐 SECURED
	// ======================================================
	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(d.Tokens, d.Sessions))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/me", meHandler.GetMe)

	// ======================================================
	// 💈 BARBEARIA
	// ======================================================
	shop := secured.Group("/me")
	shop.Use(middleware.RequireShop())

	shop.GET("/dashboard", meHandler.Dashboard)

	shop.GET("/clients", clientHandler.List)
	shop.POST("/clients", clientHandler.Create)

	shop.GET("/staff", staffHandler.List)
	shop.POST("/staff", staffHandler.Create)

	shop.GET("/services", serviceHandler.List)
	shop.POST("/services", serviceHandler.Create)

	shop.GET("/appointments", appointmentHandler.ListByDate)
	shop.GET("/appointments/month", appointmentHandler.ListByMonth)
	shop.POST("/appointments", appointmentHandler.Create)
	shop.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

	shop.GET("/ledger", ledgerHandler.List)
	shop.GET("/ledger/summary", ledgerHandler.Summary)
	shop.POST("/ledger", ledgerHandler.Create)

	shop.POST("/billing/checkout", billingHandler.Checkout)

	shop.PUT("/logo", logoHandler.Upload)
	shop.GET("/logo", logoHandler.Get)

	// ======================================================
	// 🛠 ADMIN
	// ======================================================
	admin := secured.Group("/admin")
	admin.Use(middleware.RequireAdmin())

	admin.GET("/tenants", adminHandler.ListTenants)
	admin.POST("/tenants", adminHandler.CreateTenant)
	admin.PATCH("/tenants/:id", adminHandler.UpdateTenant)
	admin.GET("/finance", adminHandler.Finance)
	admin.GET("/overview", adminHandler.Overview)
}
