package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/middleware"
	"AgileMoodGo/routes"
	"AgileMoodGo/services"
	"AgileMoodGo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utils.InitJWT(conf.JWTSecret)

	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("failed to init redis: %v", err)
	}

	// The AI client is optional, the insight endpoint degrades to the
	// deterministic summary without it.
	var deepseekClient *services.DeepseekClient
	if conf.DeepseekAPIKey != "" {
		deepseekClient, err = services.NewDeepseekClient(conf.DeepseekAPIKey, conf.DeepseekAPIEndpoint)
		if err != nil {
			log.Fatalf("failed to init Deepseek client: %v", err)
		}
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	middleware.SetupMiddleware(r)

	routes.RegisterRoutes(r, conf, deepseekClient)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server starting", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	config.Logger.Infow("server stopped")
}
