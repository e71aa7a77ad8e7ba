package domain

import (
	"time"

	"github.com/google/uuid"
)

// Analytics event types.
const (
	EventAvaChatInteraction = "ava_chat_interaction"
	EventFavoriteAction     = "favorite_action"
	EventFacilitySearch     = "facility_search"
	EventPlacesSearch       = "places_search"
)

// AnalyticsEvent is an append-only usage record.
type AnalyticsEvent struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	EventType string
	Metadata  map[string]any
	CreatedAt time.Time
}
