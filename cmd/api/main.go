package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"

	"adforge/cmd/api/router"
	"adforge/config"
	"adforge/db"
	_ "adforge/docs" // swag will generate this package
	"adforge/eventbus"
)

// @title           AdForge API
// @version         1.0
// @description     API for generating marketing campaign content with LLMs
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	// EventBus 초기화 및 토픽 보장 (비주얼 생성 큐잉용)
	brokers := eventbus.GetBrokers()
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicVisualEvents, 3); err != nil {
		config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
	}
	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	r := router.New(bus)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-Id", "X-Span-Id"},
		ExposedHeaders:   []string{"X-Request-Id", "X-Span-Id"},
		AllowCredentials: true,
	}).Handler(r)

	config.Logger.Infof("starting api gateway on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, corsHandler); err != nil && err != http.ErrServerClosed {
		config.Logger.Errorf("http server stopped: %v", err)
		os.Exit(1)
	}
}
