package main

import (
	"fmt"
	"log"
	"os"

	"trailsim/internal/api/handlers"
	"trailsim/internal/api/middleware"
	"trailsim/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Optional run store. Without TRAILSIM_DB the API still simulates,
	// it just cannot save or list runs.
	var st *store.Store
	if path := os.Getenv("TRAILSIM_DB"); path != "" {
		var err error
		st, err = store.New(path)
		if err != nil {
			log.Fatalf("Failed to open run store at %s: %v", path, err)
		}
		defer st.Close()
		log.Printf("Run store: %s", path)
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	simulateHandler := handlers.NewSimulateHandler(st)
	scenarioHandler := handlers.NewScenarioHandler()
	runsHandler := handlers.NewRunsHandler(st)
	rankHandler := handlers.NewRankHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/compare", simulateHandler.CompareScenarios)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/rank", rankHandler.RankScenarios)

		api.GET("/runs", runsHandler.ListRuns)
		api.GET("/runs/:id", runsHandler.GetRun)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
