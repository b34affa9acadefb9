package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-manager/task-service/bootstrap"
	"task-manager/task-service/config"
	"task-manager/task-service/db"
	"task-manager/task-service/handlers"
	"task-manager/task-service/repository"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	logger := log.New(os.Stdout, "[task-api] ", log.LstdFlags)
	storeLogger := log.New(os.Stdout, "[task-store] ", log.LstdFlags)

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		logger.Println("Error connecting to MongoDB:", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Disconnect(client); err != nil {
			logger.Println("Error disconnecting from MongoDB:", err)
		}
	}()

	if cfg.EnableBootstrap {
		bootstrap.InsertInitialData(client, cfg.Database, storeLogger)
	}

	taskRepo := repository.NewTaskRepo(client, cfg.Database, storeLogger)
	userRepo := repository.NewUserRepo(client, cfg.Database, storeLogger)

	taskHandler := handlers.NewTaskHandler(logger, taskRepo, userRepo)
	userHandler := handlers.NewUserHandler(logger, userRepo, taskRepo)

	router := handlers.NewRouter(taskHandler, userHandler)

	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(gorillaHandlers.LoggingHandler(os.Stdout, router)),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Printf("Task service started on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Println("Error starting task service:", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	sig := <-sigCh
	logger.Printf("Received signal %s, shutting down...\n", sig)

	timeoutContext, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(timeoutContext); err != nil {
		logger.Println("Error during shutdown:", err)
		os.Exit(1)
	}
}
