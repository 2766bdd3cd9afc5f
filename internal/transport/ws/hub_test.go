package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
)

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient(hub, nil, uuid.New())
	hub.register <- client

	notifier := NewHubNotifier(hub)
	post := &domain.Post{
		ID:         uuid.New(),
		Title:      "Fresh off the press",
		Visibility: domain.VisibilityFree,
		Content:    "full body that must not leak over the feed",
		Author:     &domain.AuthorSummary{DisplayName: "Writer"},
	}
	notifier.NotifyPostPublished(post)

	select {
	case data := <-client.send:
		var evt Event
		if err := json.Unmarshal(data, &evt); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if evt.Type != EventTypePostPublished {
			t.Errorf("expected %s, got %s", EventTypePostPublished, evt.Type)
		}
		var payload PostEventPayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if payload.ID != post.ID || payload.Title != post.Title {
			t.Errorf("unexpected payload: %+v", payload)
		}
		if payload.Author == nil || payload.Author.DisplayName != "Writer" {
			t.Errorf("expected author summary in payload, got %+v", payload.Author)
		}
		// The feed carries previews only.
		if string(evt.Payload) != "" && jsonHasField(evt.Payload, "content") {
			t.Error("event payload must not carry the content body")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestHubDeletedEvent(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient(hub, nil, uuid.New())
	hub.register <- client

	id := uuid.New()
	NewHubNotifier(hub).NotifyPostDeleted(id)

	select {
	case data := <-client.send:
		var evt Event
		if err := json.Unmarshal(data, &evt); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if evt.Type != EventTypePostDeleted {
			t.Errorf("expected %s, got %s", EventTypePostDeleted, evt.Type)
		}
		var payload PostDeletedPayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if payload.ID != id {
			t.Errorf("expected id %s, got %s", id, payload.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestHubSameUserMultipleConnections(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	userID := uuid.New()
	first := NewClient(hub, nil, userID)
	second := NewClient(hub, nil, userID)
	hub.register <- first
	hub.register <- second

	NewHubNotifier(hub).NotifyPostDeleted(uuid.New())

	for i, client := range []*Client{first, second} {
		select {
		case <-client.send:
		case <-time.After(time.Second):
			t.Fatalf("connection %d did not receive the broadcast", i)
		}
	}

	// Dropping one connection must not close the other.
	hub.unregister <- first

	NewHubNotifier(hub).NotifyPostDeleted(uuid.New())
	select {
	case _, ok := <-second.send:
		if !ok {
			t.Fatal("surviving connection's channel was closed")
		}
	case <-time.After(time.Second):
		t.Fatal("surviving connection did not receive the broadcast")
	}
}

func jsonHasField(raw json.RawMessage, field string) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return false
	}
	_, ok := m[field]
	return ok
}
