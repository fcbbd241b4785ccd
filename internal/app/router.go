package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tora-app.io/tora/internal/api/handlers"
	"tora-app.io/tora/internal/api/middleware"
)

// newRouter builds the Gin engine with all routes registered manually.
// Health and metrics stay outside the authenticated group.
func newRouter(server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.Default())

	router.GET("/health/live", server.Liveness)
	router.GET("/health/ready", server.Readiness)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1", middleware.JWTAuth(signingKey))

	sr := api.Group("/self-regulation")
	sr.POST("/activate", middleware.RequireRole(middleware.RoleChild), server.Activate)
	sr.GET("/my-history", middleware.RequireRole(middleware.RoleChild), server.MyHistory)

	srParent := sr.Group("", middleware.RequireRole(middleware.RoleParent))
	srParent.PUT("/resolve/:id", server.ResolveEvent)
	srParent.GET("/history/:childId", server.ChildHistory)
	srParent.GET("/unresolved", server.UnresolvedEvents)
	srParent.POST("/emergency-contacts", server.CreateContact)
	srParent.GET("/emergency-contacts", server.ListContacts)
	srParent.PUT("/emergency-contacts/:id", server.UpdateContact)
	srParent.DELETE("/emergency-contacts/:id", server.DeleteContact)

	notifications := api.Group("/notifications")
	notifications.POST("/register-token", server.RegisterToken)
	notifications.DELETE("/unregister-token/:token", server.UnregisterToken)
	notifications.DELETE("/tokens", server.UnregisterAllTokens)
	notifications.POST("/notify-task-completed/:taskId",
		middleware.RequireRole(middleware.RoleChild), server.NotifyTaskCompleted)

	notifParent := notifications.Group("", middleware.RequireRole(middleware.RoleParent))
	notifParent.POST("/send-task-reminder/:taskId", server.SendTaskReminder)
	notifParent.POST("/notify-new-task/:taskId", server.NotifyNewTask)
	notifParent.POST("/send-to-child", server.SendToChild)
	notifParent.POST("/send-to-parent", server.SendToParent)

	whatsapp := api.Group("/whatsapp", middleware.RequireRole(middleware.RoleParent))
	whatsapp.GET("/status", server.WhatsAppStatus)
	whatsapp.GET("/qr", server.WhatsAppQR)

	api.POST("/email/test", middleware.RequireRole(middleware.RoleParent), server.TestEmail)

	return router
}
