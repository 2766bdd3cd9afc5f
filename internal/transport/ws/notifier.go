package ws

import (
	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyPostPublished(post *domain.Post) {
	n.send(EventTypePostPublished, post)
}

func (n *HubNotifier) NotifyPostUpdated(post *domain.Post) {
	n.send(EventTypePostUpdated, post)
}

func (n *HubNotifier) NotifyPostDeleted(id uuid.UUID) {
	evt, err := NewEvent(EventTypePostDeleted, PostDeletedPayload{ID: id})
	if err != nil {
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) send(eventType string, post *domain.Post) {
	evt, err := NewEvent(eventType, PostEventPayload{
		ID:         post.ID,
		Title:      post.Title,
		Excerpt:    post.Excerpt,
		CoverImage: post.CoverImage,
		Visibility: post.Visibility,
		Author:     post.Author,
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(evt)
}
