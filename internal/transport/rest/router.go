package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/mauriciopaint/backoffice/internal/auth"
	"github.com/mauriciopaint/backoffice/internal/category"
	"github.com/mauriciopaint/backoffice/internal/employee"
	"github.com/mauriciopaint/backoffice/internal/invoice"
	"github.com/mauriciopaint/backoffice/internal/ledger"
	"github.com/mauriciopaint/backoffice/internal/payroll"
	"github.com/mauriciopaint/backoffice/internal/report"
	"github.com/mauriciopaint/backoffice/internal/supplier"
	"github.com/mauriciopaint/backoffice/internal/timesheet"
	"github.com/mauriciopaint/backoffice/internal/transport/middleware"
	"github.com/mauriciopaint/backoffice/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Employee  *employee.Handler
	Timesheet *timesheet.Handler
	Payroll   *payroll.Handler
	Supplier  *supplier.Handler
	Category  *category.Handler
	Ledger    *ledger.Handler
	Report    *report.Handler
	Invoice   *invoice.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Protected routes that require an authenticated session
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.Guard)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", h.Employee.GetEmployees)
				er.Post("/", h.Employee.CreateEmployee)
				er.Get("/{id}", h.Employee.GetEmployee)
				er.Patch("/{id}/rate", h.Employee.UpdateHourlyRate)
				er.Post("/{id}/timesheet", h.Timesheet.RecordEntry)
				er.Get("/{id}/timesheet", h.Timesheet.GetEntries)
				er.Get("/{id}/payrolls", h.Payroll.GetEmployeePayrolls)
			})

			pr.Route("/payrolls", func(payr chi.Router) {
				payr.Post("/", h.Payroll.CreatePayroll)
				payr.Get("/", h.Payroll.GetPayrolls)
			})

			pr.Route("/suppliers", func(sr chi.Router) {
				sr.Get("/", h.Supplier.GetSuppliers)
				sr.Post("/", h.Supplier.CreateSupplier)
			})

			pr.Route("/categories", func(cr chi.Router) {
				cr.Get("/", h.Category.GetCategories)
				cr.Post("/", h.Category.CreateCategory)
			})

			pr.Route("/payables", func(lr chi.Router) {
				lr.Post("/", h.Ledger.CreatePayable)
				lr.Get("/{id}", h.Ledger.GetPayable)
				lr.Post("/{id}/pay", h.Ledger.MarkPaid)
			})
			pr.Post("/paid", h.Ledger.CreatePaid)
			pr.Post("/monthly-expenses", h.Ledger.CreateMonthlyExpense)

			pr.Route("/reports", func(rr chi.Router) {
				rr.Get("/payables", h.Report.GetPayablesReport)
				rr.Get("/paid", h.Report.GetPaidReport)
				rr.Get("/monthly-expenses", h.Report.GetMonthlyExpensesReport)
				rr.Get("/forecast", h.Report.GetPaymentForecast)
			})
			pr.Get("/dashboard", h.Report.GetDashboard)

			pr.Route("/projects", func(jr chi.Router) {
				jr.Get("/", h.Invoice.GetProjects)
				jr.Post("/", h.Invoice.CreateProject)
			})
			pr.Route("/invoices", func(ir chi.Router) {
				ir.Get("/", h.Invoice.GetInvoices)
				ir.Post("/", h.Invoice.CreateInvoice)
				ir.Get("/{id}/pdf", h.Invoice.DownloadInvoicePDF)
			})
		})
	})
}
