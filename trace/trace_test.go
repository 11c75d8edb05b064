package trace

import (
	"context"
	"testing"
)

func TestGenerateIDIsUnique(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if a == "" || b == "" {
		t.Fatalf("expected non-empty ids, got %q and %q", a, b)
	}
	if a == b {
		t.Fatalf("expected distinct ids, both were %q", a)
	}
}

func TestSpanSequenceIncrements(t *testing.T) {
	ctx := WithRequestAndSpan(context.Background(), "req-1", 0)

	if got := CurrentSpanID(ctx); got != "0" {
		t.Fatalf("expected initial span 0, got %q", got)
	}

	reqID, spanID := NextSpanID(ctx)
	if reqID != "req-1" || spanID != "1" {
		t.Fatalf("expected (req-1, 1), got (%q, %q)", reqID, spanID)
	}

	_, spanID = NextSpanID(ctx)
	if spanID != "2" {
		t.Fatalf("expected span 2, got %q", spanID)
	}

	if got := CurrentSpanID(ctx); got != "2" {
		t.Fatalf("expected current span 2, got %q", got)
	}
}

func TestNextSpanIDWithoutMiddlewareContext(t *testing.T) {
	reqID, spanID := NextSpanID(context.Background())
	if reqID == "" {
		t.Fatalf("expected generated request id")
	}
	if spanID != "1" {
		t.Fatalf("expected span 1 for detached context, got %q", spanID)
	}
}
