package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"adforge/cmd/visualworker/event/dispatcher"
	"adforge/cmd/visualworker/event/handler"
	"adforge/config"
	"adforge/db"
	"adforge/eventbus"
	"adforge/events"
	"adforge/quota"
	"adforge/repositories"
)

func main() {
	config.InitApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB 초기화
	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	// EventBus 초기화 및 토픽 보장
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

	// 서비스 초기화
	database := db.Database()
	campaignRepo := repositories.NewCampaignRepository(database)
	postRepo := repositories.NewPostRepository(database)
	eventDispatcher := dispatcher.NewEventDispatcher(bus)
	quotaLimiter := quota.NewGenerationQuotaLimiterFromConfig(config.GetConfig())
	eventHandler := handler.NewEventHandlers(eventDispatcher, quotaLimiter, campaignRepo, postRepo)

	groupID := eventbus.GetGroupID()

	// 메인 구독 러너
	subscribeRunner := func() error {
		return bus.Subscribe(ctx, groupID, eventbus.TopicVisualEvents, func(ctx context.Context, ev eventbus.Event) error {
			// 이벤트 타입만 먼저 파싱 (BaseEvent.Type는 top-level에 있음)
			var peek struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(ev.Payload, &peek); err != nil {
				return err
			}
			switch events.EventType(peek.Type) {
			case events.VisualGenerationRequested:
				v, err := eventbus.DecodeJSON[events.VisualGenerationRequestedEvent](ev)
				if err != nil {
					return err
				}
				return eventHandler.HandleVisualGenerationRequested(ctx, &v)
			default:
				// 알 수 없는 타입 또는 다른 서비스용 이벤트는 무시 (커밋)
				return nil
			}
		})
	}

	config.Logger.Info("starting visualworker service with eventbus...")

	// Graceful shutdown 설정
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	// 메인 구독 시작
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := subscribeRunner(); err != nil && err != context.Canceled {
			config.Logger.Errorf("eventbus subscribe error: %v", err)
		}
	}()

	// 중단됐던 비주얼 생성 건 재주입
	wg.Add(1)
	go func() {
		defer wg.Done()
		runStaleVisualRecovery(ctx, postRepo, eventDispatcher)
	}()

	// 종료 신호 대기
	<-sigChan
	config.Logger.Info("received shutdown signal, shutting down visualworker service...")

	cancel()
	wg.Wait()

	config.Logger.Info("visualworker service stopped")
}
