package app

import (
	"database/sql"

	"go-workforce/internal/attendance"
	"go-workforce/internal/directory"
	"go-workforce/internal/leave"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/notification"
	"go-workforce/internal/rbac"
	"go-workforce/internal/schedule"
	"go-workforce/internal/shared/counter"

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
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	directoryRepo := directory.NewRepository(gormDB)
	scheduleProvider := schedule.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	rbacService := rbac.NewService(rbacRepo)
	directoryService := directory.NewService(directoryRepo, directory.DefaultEligibleLeadRoles)
	attendanceService := attendance.NewService(db, attendanceRepo, scheduleProvider, directoryRepo, outboxRepo, rdb)
	leaveResolver := leave.NewResolver(directoryRepo, directory.DefaultEligibleLeadRoles)
	leaveService := leave.NewService(db, leaveRepo, leaveResolver, counterRepo, outboxRepo)
	notificationService := notification.NewService(notificationRepo)

	// --- Handlers ---
	rbacHandler := rbac.NewHandler(rbacService)
	directoryHandler := directory.NewHandler(directoryService)
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
		directory.RegisterRoutes(api, directoryHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		notification.RegisterRoutes(api, notificationHandler)
	}

	return nil
}
