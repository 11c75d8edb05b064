package eventbus

import (
	"testing"
)

func TestTopicNaming(t *testing.T) {
	topic := NewTopic("adforge.visual.events")

	if topic.Base() != "adforge.visual.events" {
		t.Fatalf("unexpected base: %s", topic.Base())
	}
	if topic.DLQ() != "adforge.visual.events.dlq" {
		t.Fatalf("unexpected dlq: %s", topic.DLQ())
	}

	retries := topic.GetRetryTopics()
	if len(retries) != len(RetryDelays) {
		t.Fatalf("expected %d retry topics, got %d", len(RetryDelays), len(retries))
	}
	if retries[0] != "adforge.visual.events.retry.10s" {
		t.Fatalf("unexpected first retry topic: %s", retries[0])
	}
}

func TestGetRetryTopicBounds(t *testing.T) {
	topic := NewTopic("adforge.visual.events")

	if _, err := topic.GetRetryTopic(0); err != ErrMaxRetryExceeded {
		t.Fatalf("expected ErrMaxRetryExceeded for retry 0")
	}
	if _, err := topic.GetRetryTopic(len(RetryDelays) + 1); err != ErrMaxRetryExceeded {
		t.Fatalf("expected ErrMaxRetryExceeded beyond the delay table")
	}

	name, err := topic.GetRetryTopic(2)
	if err != nil {
		t.Fatal(err)
	}
	if name != "adforge.visual.events.retry.30s" {
		t.Fatalf("unexpected retry topic: %s", name)
	}
}

func TestParseRetryFromTopicNameRoundTrip(t *testing.T) {
	topic := NewTopic("adforge.visual.events")
	for i, name := range topic.GetRetryTopics() {
		d, ok := ParseRetryFromTopicName(name)
		if !ok {
			t.Fatalf("failed to parse retry topic %s", name)
		}
		if d != RetryDelays[i] {
			t.Fatalf("topic %s parsed to %s, want %s", name, d, RetryDelays[i])
		}
	}

	if _, ok := ParseRetryFromTopicName("adforge.visual.events"); ok {
		t.Fatalf("base topic must not parse as a retry topic")
	}
	if _, ok := ParseRetryFromTopicName("adforge.visual.events.retry.notaduration"); ok {
		t.Fatalf("garbage suffix must not parse")
	}
}

func TestNewJSONEventAndDecode(t *testing.T) {
	type payload struct {
		PostID string `json:"post_id"`
	}

	evt, err := NewJSONEvent("evt-1", payload{PostID: "abc"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if evt.MaxRetry != len(RetryDelays) {
		t.Fatalf("expected default max retry %d, got %d", len(RetryDelays), evt.MaxRetry)
	}
	if evt.Retry != 0 {
		t.Fatalf("new events must start at retry 0")
	}

	out, err := DecodeJSON[payload](evt)
	if err != nil {
		t.Fatal(err)
	}
	if out.PostID != "abc" {
		t.Fatalf("unexpected decoded payload: %+v", out)
	}
}

func TestNewJSONEventGeneratesID(t *testing.T) {
	evt, err := NewJSONEvent("", map[string]string{"k": "v"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if evt.ID == "" {
		t.Fatalf("expected generated event id")
	}
	if evt.MaxRetry != 2 {
		t.Fatalf("expected max retry 2, got %d", evt.MaxRetry)
	}
}
