package api

import (
	"gymcoach/platform/internal/service"
	"gymcoach/platform/internal/storage"
	"gymcoach/platform/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint on the router. The fileStorage
// argument may be nil when no avatar bucket is configured.
func SetupRoutes(
	router *gin.Engine,
	st store.Store,
	dbName string,
	dbURISet bool,
	userService service.UserService,
	planService service.PlanService,
	chatService service.ChatService,
	logService service.LogService,
	dashboardService service.DashboardService,
	fileStorage storage.FileStorage,
) {
	systemHandler := NewSystemHandler(st, dbName, dbURISet)
	userHandler := NewUserHandler(userService, fileStorage)
	planHandler := NewPlanHandler(planService)
	chatHandler := NewChatHandler(chatService)
	logHandler := NewLogHandler(logService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	router.GET("/", systemHandler.Root)
	router.GET("/test", systemHandler.TestDatabase)

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/users", userHandler.CreateUser)
		apiGroup.GET("/users", userHandler.ListUsers)
		apiGroup.POST("/users/:id/avatar", userHandler.UploadAvatar)
		apiGroup.POST("/connect", userHandler.Connect)

		apiGroup.POST("/workout-plans", planHandler.CreateWorkoutPlan)
		apiGroup.GET("/workout-plans", planHandler.ListWorkoutPlans)
		apiGroup.POST("/meal-plans", planHandler.CreateMealPlan)
		apiGroup.GET("/meal-plans", planHandler.ListMealPlans)

		apiGroup.POST("/messages", chatHandler.SendMessage)
		apiGroup.GET("/messages", chatHandler.ListMessages)

		apiGroup.POST("/logs", logHandler.AddLog)
		apiGroup.GET("/logs", logHandler.ListLogs)

		apiGroup.GET("/dashboard", dashboardHandler.Summary)
	}
}
