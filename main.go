package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/expenseflow/backend/api"
	"github.com/expenseflow/backend/classifier"
	"github.com/expenseflow/backend/config"
	"github.com/expenseflow/backend/db"
	_ "github.com/expenseflow/backend/docs"
)

// @title Expense Tracker API
// @version 1.0
// @description REST backend for the expense tracker: users, transactions and ML category prediction.
// @BasePath /api
// @SecurityDefinitions.apikey ApiKeyAuth
// @In header
// @Name Authorization
func main() {
	// .env is optional; deployments set real environment variables
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	storage, err := db.NewStorage(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer storage.Close(context.Background())
	log.Printf("Connected to MongoDB, database %q", cfg.MongoDB)

	handler := api.NewHandler(storage, classifier.New(cfg.ClassifierURL), cfg.JWTSecret)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Hello World!")
	})
	handler.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
