package events

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	postID := primitive.NewObjectID()
	in := VisualGenerationRequestedEvent{
		BaseEvent: BaseEvent{
			ID:        "evt-1",
			Type:      VisualGenerationRequested,
			Timestamp: time.Now(),
			Source:    "api",
			Version:   "1.0",
		},
		PostID:   postID,
		Platform: "instagram",
		Body:     "Fresh beans, every week.",
	}

	data, typ, err := SerializeEvent(in)
	if err != nil {
		t.Fatal(err)
	}
	if typ != VisualGenerationRequested {
		t.Fatalf("unexpected type: %s", typ)
	}

	out, err := DeserializeEvent(typ, data)
	if err != nil {
		t.Fatal(err)
	}
	decoded, ok := out.(*VisualGenerationRequestedEvent)
	if !ok {
		t.Fatalf("unexpected decoded type: %T", out)
	}
	if decoded.PostID != postID || decoded.Platform != "instagram" {
		t.Fatalf("round trip lost fields: %+v", decoded)
	}
}

func TestSerializeRejectsUnknownTypes(t *testing.T) {
	if _, _, err := SerializeEvent(struct{}{}); err == nil {
		t.Fatalf("expected error for unknown event type")
	}
}

func TestDeserializeRejectsUnknownType(t *testing.T) {
	if _, err := DeserializeEvent(EventType("nope"), []byte(`{}`)); err == nil {
		t.Fatalf("expected error for unknown event type name")
	}
}
