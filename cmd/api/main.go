package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/protrack-ops/floor-backend-go/internal/config"
	appHTTP "github.com/protrack-ops/floor-backend-go/internal/handler/http"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/cron"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/enhance"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/jwt"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/kv"
	"github.com/protrack-ops/floor-backend-go/internal/repository/kvstate"
	attendanceService "github.com/protrack-ops/floor-backend-go/internal/service/attendance"
	authService "github.com/protrack-ops/floor-backend-go/internal/service/auth"
	employeeService "github.com/protrack-ops/floor-backend-go/internal/service/employee"
	inventoryService "github.com/protrack-ops/floor-backend-go/internal/service/inventory"
	leaderService "github.com/protrack-ops/floor-backend-go/internal/service/leader"
	managementService "github.com/protrack-ops/floor-backend-go/internal/service/management"
	productionService "github.com/protrack-ops/floor-backend-go/internal/service/production"
	reportService "github.com/protrack-ops/floor-backend-go/internal/service/report"
	scheduleService "github.com/protrack-ops/floor-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var backend kv.Store
	switch cfg.Store.Type {
	case "file":
		backend, err = kv.NewFileStore(cfg.Store.DataDir)
	case "redis":
		backend, err = kv.NewRedisStore(cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB)
	case "postgres":
		backend, err = kv.NewPostgresStore(cfg.DatabaseURL())
	case "memory":
		backend = kv.NewMemoryStore()
	default:
		log.Fatal("Unsupported store type: ", cfg.Store.Type)
	}
	if err != nil {
		log.Fatal("Failed to open state store: ", err)
	}
	defer backend.Close()

	state, err := kvstate.NewStore(context.Background(), backend)
	if err != nil {
		log.Fatal("Failed to load application state: ", err)
	}

	managementRepo := kvstate.NewManagementRepository(state)
	leaderRepo := kvstate.NewLeaderRepository(state)
	employeeRepo := kvstate.NewEmployeeRepository(state)
	attendanceRepo := kvstate.NewAttendanceRepository(state)
	productionRepo := kvstate.NewProductionRepository(state)
	inventoryRepo := kvstate.NewInventoryRepository(state)
	scheduleRepo := kvstate.NewScheduleRepository(state)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var enhancer enhance.Enhancer = enhance.NopEnhancer{}
	if cfg.Enhance.APIKey != "" {
		timeout, err := time.ParseDuration(cfg.Enhance.Timeout)
		if err != nil {
			log.Fatal("Invalid enhance timeout: ", err)
		}
		enhancer = enhance.NewGeminiEnhancer(cfg.Enhance.APIKey, cfg.Enhance.Endpoint, cfg.Enhance.Model, timeout)
	}

	managementSvc := managementService.NewManagementService(managementRepo)
	leaderSvc := leaderService.NewLeaderService(leaderRepo, productionRepo, enhancer)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, leaderRepo)
	productionSvc := productionService.NewProductionService(productionRepo, leaderRepo)
	inventorySvc := inventoryService.NewInventoryService(inventoryRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, leaderRepo)
	reportSvc := reportService.NewReportService(productionSvc, attendanceSvc, cfg.Export.FilenamePrefix)
	authSvc := authService.NewAuthService(leaderRepo, JWTService)

	scheduler := cron.NewScheduler()
	cron.NewLeaderJobs(leaderSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, JWTService),
		Management: appHTTP.NewManagementHandler(managementSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, attendanceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leader:     appHTTP.NewLeaderHandler(leaderSvc),
		Production: appHTTP.NewProductionHandler(productionSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Inventory:  appHTTP.NewInventoryHandler(inventorySvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
