package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/certgen/internal/api"
)

func main() {
	if os.Getenv("CERTGEN_PASSWORD") == "" {
		log.Println("Warning: CERTGEN_PASSWORD not set, login gate disabled")
	}

	r := gin.Default()
	api.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
