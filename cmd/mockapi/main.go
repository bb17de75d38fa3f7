package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-client/internal/mockapi"
	"storefront-client/internal/util"
)

func main() {
	port := os.Getenv("MOCKAPI_PORT")
	if port == "" {
		port = "3001"
	}

	if err := util.InitLogger(os.Getenv("ENV")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	server := mockapi.NewServer()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: server.Engine(),
	}

	go func() {
		log.Printf("Starting mock marketplace API on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
