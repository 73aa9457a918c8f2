package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/DanielJacob1998/capstone/config"
	controllers "github.com/DanielJacob1998/capstone/controllers"
	middleware "github.com/DanielJacob1998/capstone/middleware"
	store "github.com/DanielJacob1998/capstone/store"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, events *store.EventStore, details *store.DetailsStore) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Group Calendar API! Use /events to manage events and /files/scan to scan directories.")
	})

	identify := middleware.Identify(cfg)

	ev := r.Group("/events")
	ev.Use(identify)
	{
		ev.GET("", controllers.ListEvents(events))
		ev.POST("", controllers.CreateEvent(events))
		ev.GET("/:id", controllers.GetEvent(events))
		ev.PUT("/:id", controllers.UpdateEvent(events))
		ev.DELETE("/:id", controllers.DeleteEvent(events))
	}

	files := r.Group("/files")
	files.Use(identify)
	{
		files.POST("/scan", controllers.ScanFiles(details))
		files.POST("/parse-calendar", controllers.ParseCalendar(events))
		files.POST("/parse-finance", controllers.ParseFinance())
		files.GET("/details", controllers.GetDetails(details))
		files.POST("/save_details", controllers.SaveDetails(cfg, details))
	}
}
