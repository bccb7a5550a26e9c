package routes

import (
	"github.com/gin-gonic/gin"

	"garbage-watch/db"
	"garbage-watch/handlers"
	"garbage-watch/store"
)

func SetupRouter(dbClient *db.Client, reportStore *store.Store) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Garbage Watch!",
		})
	})

	// api routes
	api := r.Group("/api")
	{
		api.GET("/reports", func(c *gin.Context) {
			handlers.GetReports(c, reportStore)
		})
		api.POST("/reports", func(c *gin.Context) {
			handlers.CreateReport(c, reportStore)
		})
		api.GET("/reports/:id", func(c *gin.Context) {
			handlers.GetReport(c, reportStore)
		})
		api.GET("/devices/:deviceId/reports", func(c *gin.Context) {
			handlers.GetReportsByDevice(c, reportStore)
		})

		api.GET("/geocode", handlers.GeocodeAddress)
		api.GET("/geocode/reverse", handlers.ReverseGeocode)
	}

	// admin routes require a Firebase ID token with the admin claim
	admin := r.Group("/api/admin", handlers.AdminAuth(dbClient))
	{
		admin.PATCH("/reports/:id/status", func(c *gin.Context) {
			handlers.UpdateReportStatus(c, reportStore)
		})

		admin.POST("/demo/generate", func(c *gin.Context) {
			handlers.StartDemoGeneration(c, dbClient)
		})
		admin.GET("/demo/progress", handlers.DemoGenerationProgress)
		admin.POST("/demo/cancel", handlers.CancelDemoGeneration)
		admin.DELETE("/demo", func(c *gin.Context) {
			handlers.DeleteDemoData(c, dbClient)
		})

		admin.POST("/summaries/run", func(c *gin.Context) {
			handlers.RunSummary(c, dbClient.Firestore())
		})
	}

	return r
}
