package ws

import (
	"encoding/json"
	"time"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypePostPublished = "post.published"
	EventTypePostUpdated   = "post.updated"
	EventTypePostDeleted   = "post.deleted"
	EventTypePong          = "pong"
	EventTypeError         = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

// PostEventPayload carries a preview of a post lifecycle event. The
// content body is never pushed over the feed; premium gating happens
// only on the catalog endpoints.
type PostEventPayload struct {
	ID         uuid.UUID             `json:"id"`
	Title      string                `json:"title"`
	Excerpt    *string               `json:"excerpt,omitempty"`
	CoverImage *string               `json:"cover_image,omitempty"`
	Visibility domain.Visibility     `json:"visibility"`
	Author     *domain.AuthorSummary `json:"author,omitempty"`
}

type PostDeletedPayload struct {
	ID uuid.UUID `json:"id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}
