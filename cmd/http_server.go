package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/mauriciopaint/backoffice/internal/auth"
	authpg "github.com/mauriciopaint/backoffice/internal/auth/postgres"
	"github.com/mauriciopaint/backoffice/internal/category"
	categorypg "github.com/mauriciopaint/backoffice/internal/category/postgres"
	"github.com/mauriciopaint/backoffice/internal/employee"
	employeepg "github.com/mauriciopaint/backoffice/internal/employee/postgres"
	"github.com/mauriciopaint/backoffice/internal/filestore"
	"github.com/mauriciopaint/backoffice/internal/invoice"
	invoicepg "github.com/mauriciopaint/backoffice/internal/invoice/postgres"
	"github.com/mauriciopaint/backoffice/internal/invoice/render"
	"github.com/mauriciopaint/backoffice/internal/ledger"
	ledgerpg "github.com/mauriciopaint/backoffice/internal/ledger/postgres"
	"github.com/mauriciopaint/backoffice/internal/payroll"
	payrollpg "github.com/mauriciopaint/backoffice/internal/payroll/postgres"
	"github.com/mauriciopaint/backoffice/internal/report"
	reportpg "github.com/mauriciopaint/backoffice/internal/report/postgres"
	"github.com/mauriciopaint/backoffice/internal/supplier"
	supplierpg "github.com/mauriciopaint/backoffice/internal/supplier/postgres"
	"github.com/mauriciopaint/backoffice/internal/timesheet"
	timesheetpg "github.com/mauriciopaint/backoffice/internal/timesheet/postgres"
	"github.com/mauriciopaint/backoffice/internal/transport"
	"github.com/mauriciopaint/backoffice/internal/transport/rest"
	"github.com/mauriciopaint/backoffice/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) error {
	cfg := deps.Config
	log := deps.Logger
	baseHandler := transport.NewBaseHandler(log)

	receiptStore, err := filestore.NewDiskStore(cfg.Storage.ReceiptDir)
	if err != nil {
		return fmt.Errorf("failed to create receipt store: %w", err)
	}

	issuer := auth.NewTokenIssuer(cfg.Security.JWTSecret, cfg.Security.AccessTokenDuration)
	authService := auth.NewService(authpg.NewUserRepository(deps.GormDB), issuer, cfg.Security.BCryptCost, log)

	employeeService := employee.NewService(employeepg.NewEmployeeRepository(deps.GormDB), log)
	timesheetService := timesheet.NewService(timesheetpg.NewTimesheetRepository(deps.GormDB), employeeService, log)
	payrollService := payroll.NewService(payrollpg.NewPayrollRepository(deps.GormDB), employeeService, log)

	supplierService := supplier.NewService(supplierpg.NewSupplierRepository(deps.GormDB), log)
	categoryService := category.NewService(categorypg.NewCategoryRepository(deps.GormDB), log)
	ledgerService := ledger.NewService(ledgerpg.NewLedgerRepository(deps.GormDB), supplierService, categoryService, receiptStore, log)

	reportService := report.NewService(reportpg.NewReportRepository(deps.GormDB), cfg.Report.ForecastWindowDays, log)
	invoiceService := invoice.NewService(invoicepg.NewInvoiceRepository(deps.GormDB), render.NewHTMLRenderer(), log)

	handlers := rest.Handlers{
		Auth:      auth.NewHandler(baseHandler, authService),
		Employee:  employee.NewHandler(baseHandler, employeeService),
		Timesheet: timesheet.NewHandler(baseHandler, timesheetService),
		Payroll:   payroll.NewHandler(baseHandler, payrollService),
		Supplier:  supplier.NewHandler(baseHandler, supplierService),
		Category:  category.NewHandler(baseHandler, categoryService),
		Ledger:    ledger.NewHandler(baseHandler, ledgerService),
		Report:    report.NewHandler(baseHandler, reportService),
		Invoice:   invoice.NewHandler(baseHandler, invoiceService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, log)
	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Environment)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers gorm over the already-open pgx connection pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}
