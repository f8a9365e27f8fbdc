package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/zenwork-hr/leave-backend-go/internal/config"
	appHTTP "github.com/zenwork-hr/leave-backend-go/internal/handler/http"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/database"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/directory"
	"github.com/zenwork-hr/leave-backend-go/internal/pkg/jwt"
	"github.com/zenwork-hr/leave-backend-go/internal/repository/postgresql"
	leavetypeService "github.com/zenwork-hr/leave-backend-go/internal/service/leavetype"
	roleService "github.com/zenwork-hr/leave-backend-go/internal/service/role"
	rosterService "github.com/zenwork-hr/leave-backend-go/internal/service/roster"
	setupService "github.com/zenwork-hr/leave-backend-go/internal/service/setup"
	variantService "github.com/zenwork-hr/leave-backend-go/internal/service/variant"
	workflowService "github.com/zenwork-hr/leave-backend-go/internal/service/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "leave-backend"),
	)

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if cfg.Database.MigrationsDir != "" {
		if err := db.Migrate(context.Background(), cfg.Database.MigrationsDir); err != nil {
			fmt.Println("Error applying migrations:", err)
			return
		}
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	variantRepo := postgresql.NewVariantRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	workflowRepo := postgresql.NewWorkflowRepository(db)
	tx := postgresql.NewTxRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	directoryClient := directory.NewClient(cfg.Directory)

	handlers := appHTTP.Handlers{
		LeaveType: appHTTP.NewLeaveTypeHandler(leavetypeService.NewLeaveTypeService(leaveTypeRepo)),
		Variant:   appHTTP.NewVariantHandler(variantService.NewVariantService(tx, variantRepo, assignmentRepo, leaveTypeRepo, logger)),
		Role:      appHTTP.NewRoleHandler(roleService.NewRoleService(tx, roleRepo)),
		Workflow:  appHTTP.NewWorkflowHandler(workflowService.NewWorkflowService(workflowRepo, companyRepo)),
		Employee:  appHTTP.NewEmployeeHandler(rosterService.NewRosterService(directoryClient, logger)),
		Setup:     appHTTP.NewSetupHandler(setupService.NewSetupService(companyRepo, logger)),
	}

	router := appHTTP.NewRouter(cfg.App, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
