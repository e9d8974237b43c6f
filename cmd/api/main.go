package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/contaflow/backoffice/server"
)

// @title           ContaFlow Back Office API
// @version         1.0
// @description     Proposal wizard and fee resolution API for the ContaFlow back office

// @host      localhost:8000
// @BasePath  /api/v1
func main() {
	err := godotenv.Load()
	if err != nil {
		// A missing .env file is fine; variables may be set directly
		// in the environment.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)
	defer server.Shutdown()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
