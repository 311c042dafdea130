package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/fintradify/attendance-backend-go/internal/config"
	appHTTP "github.com/fintradify/attendance-backend-go/internal/handler/http"
	"github.com/fintradify/attendance-backend-go/internal/pkg/cron"
	"github.com/fintradify/attendance-backend-go/internal/pkg/database"
	"github.com/fintradify/attendance-backend-go/internal/pkg/email"
	"github.com/fintradify/attendance-backend-go/internal/pkg/jwt"
	"github.com/fintradify/attendance-backend-go/internal/pkg/period"
	"github.com/fintradify/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/fintradify/attendance-backend-go/internal/service/attendance"
	authService "github.com/fintradify/attendance-backend-go/internal/service/auth"
	"github.com/fintradify/attendance-backend-go/internal/service/payroll"
	reportService "github.com/fintradify/attendance-backend-go/internal/service/report"
	salarySlipService "github.com/fintradify/attendance-backend-go/internal/service/salaryslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	periods, err := period.NewResolver(cfg.Payroll.Timezone)
	if err != nil {
		log.Fatal("Failed to load organizational timezone: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salarySlipRepo := postgresql.NewSalarySlipRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	rateResolver := payroll.NewRateResolver(salarySlipRepo, cfg.Payroll.DefaultHourlyRate)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, periods, nil)
	salarySlipSvc := salarySlipService.NewSalarySlipService(
		salarySlipRepo,
		attendanceRepo,
		employeeRepo,
		postgresql.Transactional(db),
		periods,
		emailService,
		cfg.Company,
		nil,
	)
	reportSvc := reportService.NewReportService(attendanceRepo, salarySlipRepo, rateResolver, periods)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	salarySlipHandler := appHTTP.NewSalarySlipHandler(salarySlipSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, periods, nil).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		salarySlipHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
