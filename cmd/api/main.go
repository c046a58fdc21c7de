package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rnrran/HUBDAM-KP/internal/config"
	appHTTP "github.com/rnrran/HUBDAM-KP/internal/handler/http"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/database"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/jwt"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/storage"
	"github.com/rnrran/HUBDAM-KP/internal/repository/postgresql"
	authService "github.com/rnrran/HUBDAM-KP/internal/service/auth"
	dashboardService "github.com/rnrran/HUBDAM-KP/internal/service/dashboard"
	payrollService "github.com/rnrran/HUBDAM-KP/internal/service/payroll"
	userService "github.com/rnrran/HUBDAM-KP/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn); err != nil {
		log.Fatal("Failed to run database migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	userSvc := userService.NewUserService(userRepo, fileStorage)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, userRepo, cfg.Payroll)
	dashboardSvc := dashboardService.NewDashboardService(userSvc, payrollSvc)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, userHandler, payrollHandler, dashboardHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
