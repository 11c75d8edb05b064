package quota

import (
	"context"
	"testing"
	"time"

	"adforge/config"
)

func newLimiter(perMinute, perDay int) *GenerationQuotaLimiter {
	return NewGenerationQuotaLimiterFromConfig(config.AppConfig{
		GenerationQuota: config.GenerationQuotaConfig{
			RequestsPerMinute: perMinute,
			RequestsPerDay:    perDay,
		},
	})
}

func TestWaitAndReserveUnlimited(t *testing.T) {
	l := newLimiter(0, 0)
	for i := 0; i < 5; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected reservation %d to be allowed", i)
		}
	}
}

func TestWaitAndReserveDailyLimit(t *testing.T) {
	l := newLimiter(0, 2)

	for i := 0; i < 2; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected reservation %d to be allowed", i)
		}
	}

	ok, err := l.WaitAndReserve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected third reservation to be rejected by the daily limit")
	}
}

func TestWaitAndReserveRespectsContextCancel(t *testing.T) {
	// 분당 1회로 제한해 두 번째 호출이 대기에 들어가게 한다.
	l := newLimiter(1, 0)

	if ok, err := l.WaitAndReserve(context.Background()); err != nil || !ok {
		t.Fatalf("first reservation should pass, got ok=%v err=%v", ok, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ok, err := l.WaitAndReserve(ctx)
	if ok {
		t.Fatalf("expected reservation to fail while rate-limited")
	}
	if err == nil {
		t.Fatalf("expected context error, got nil")
	}
}
