// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wooshcafe/woosh-backend/internal/config"
	"github.com/wooshcafe/woosh-backend/internal/handlers"
	"github.com/wooshcafe/woosh-backend/internal/middleware"
	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

func Initialize(st *store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	generator, err := services.NewGenAIService(cfg)
	if err != nil {
		// Generation degrades to the unconfigured short-circuit; the rest of
		// the dashboard keeps working.
		logrus.WithError(err).Warn("AI client init failed, generation endpoints will report unconfigured")
	}
	storageService, _ := services.NewStorageService(cfg)
	weatherService := services.NewWeatherService(cfg)

	orderService := services.NewOrderService(st.Cart, st.Orders)
	ideaService := services.NewIdeaService(st.Ideas, generator, storageService)
	feedbackService := services.NewFeedbackService(st.Feedbacks, generator)
	inventoryService := services.NewInventoryService(st.Inventory)
	goalService := services.NewGoalService(st.Goals)
	socialService := services.NewSocialService(st.Posts, generator)
	dashboardService := services.NewDashboardService(weatherService, st.Orders, st.Inventory, st.Goals)

	// Initialize handlers
	cartHandler := handlers.NewCartHandler(orderService)
	orderHandler := handlers.NewOrderHandler(orderService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	goalHandler := handlers.NewGoalHandler(goalService)
	socialHandler := handlers.NewSocialHandler(socialService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Guest ordering
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.DELETE("/items/:name", cartHandler.RemoveItem)
			cart.POST("/checkout", cartHandler.Checkout)
		}

		// Revenue panel
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/export", orderHandler.ExportCSV)
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
		}

		// Product dev panel
		ideas := v1.Group("/ideas")
		{
			ideas.GET("", ideaHandler.GetIdeas)
			ideas.POST("", middleware.GenerateRateLimit(), ideaHandler.CreateIdea)
			ideas.PUT("/:id/stage", ideaHandler.UpdateStage)
		}

		// Feedback panel
		feedbacks := v1.Group("/feedbacks")
		{
			feedbacks.GET("", feedbackHandler.GetFeedbacks)
			feedbacks.POST("", middleware.GenerateRateLimit(), feedbackHandler.CreateFeedback)
			feedbacks.POST("/sync", feedbackHandler.SyncReviews)
		}

		// Inventory panel
		inventory := v1.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.GetItems)
			inventory.GET("/export", inventoryHandler.ExportCSV)
			inventory.POST("/import", inventoryHandler.ImportCSV)
			inventory.POST("/:id/restock", inventoryHandler.Restock)
		}

		// Goals panel
		goals := v1.Group("/goals")
		{
			goals.GET("", goalHandler.GetGoals)
			goals.POST("", goalHandler.CreateGoal)
		}

		// Social panel
		posts := v1.Group("/posts")
		{
			posts.GET("", socialHandler.GetPosts)
			posts.POST("", socialHandler.PublishPost)
			posts.POST("/draft", middleware.GenerateRateLimit(), socialHandler.DraftPost)
		}

		// Daily panel
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.GetSummary)
		}
	}

	return r
}
