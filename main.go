package main

import (
	"api/config"
	"api/database"
	"api/handlers/competitions"
	"api/handlers/participants"
	"api/handlers/users"
	"api/middleware"
	v1 "api/routes/v1"
	"api/services"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Contest Portal API
// @version 1.0
// @description API for competition registration, submission uploads, judging and prizes
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Load()

	database.InitDB()
	database.Populate()

	store := services.NewFileStore()
	users.Store = store
	competitions.Store = store
	participants.Store = store

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Stored uploads are served directly; the relay keeps the same
	// relative paths it hands back on upload. Media must stay readable
	// from the client origin.
	uploads := r.Group("/uploads", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", config.ClientUrl)
		c.Header("Cross-Origin-Resource-Policy", "cross-origin")
	})
	uploads.Static("/", config.UploadDir)

	middleware.UpdateSystemMetrics()

	v1.Register(r)

	log.Printf("Starting server on port %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
