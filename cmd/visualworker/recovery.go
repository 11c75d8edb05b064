package main

import (
	"context"
	"time"

	"adforge/cmd/visualworker/event/dispatcher"
	"adforge/config"
	"adforge/repositories"
)

const (
	recoveryInterval = 10 * time.Minute
	// 이 시간 동안 비주얼이 생성되지 않은 포스트는 이벤트 유실로 간주한다.
	staleAfter    = 30 * time.Minute
	recoveryBatch = 20
)

// runStaleVisualRecovery periodically re-queues posts whose visual generation
// never completed (worker crash, dropped event 등).
func runStaleVisualRecovery(ctx context.Context, posts *repositories.PostRepository, d *dispatcher.EventDispatcher) {
	ticker := time.NewTicker(recoveryInterval)
	defer ticker.Stop()

	for {
		recoverStaleVisuals(ctx, posts, d)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func recoverStaleVisuals(ctx context.Context, posts *repositories.PostRepository, d *dispatcher.EventDispatcher) {
	cutoff := time.Now().Add(-staleAfter)
	stale, err := posts.FindStaleVisuals(ctx, cutoff, recoveryBatch)
	if err != nil {
		config.Logger.Errorf("failed to query stale visuals: %v", err)
		return
	}
	for _, p := range stale {
		if err := d.PublishVisualGenerationRequested(ctx, p.ID, p.CampaignID, p.Platform, p.Body); err != nil {
			config.Logger.Errorf("failed to re-queue visuals for post %s: %v", p.ID.Hex(), err)
			continue
		}
		// 재주입 시각을 갱신해 다음 패스에서 같은 건을 또 집지 않도록 한다.
		if err := posts.MarkVisualsRequested(ctx, p.ID, time.Now()); err != nil {
			config.Logger.Warnf("failed to refresh visuals_requested_at on post %s: %v", p.ID.Hex(), err)
		}
		config.Logger.Infof("re-queued stale visual generation for post %s", p.ID.Hex())
	}
}
