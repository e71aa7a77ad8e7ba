package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SearchResult is one invocation of the external places search.
// It is immutable once stored and owns its Places and ConversationSummary.
type SearchResult struct {
	ID          uuid.UUID
	UserID      *uuid.UUID
	SearchQuery string
	Parameters  SearchParameters
	RawResponse json.RawMessage
	CreatedAt   time.Time
}

// SearchParameters are the caller-supplied inputs of a places search.
type SearchParameters struct {
	Query    string `json:"query"`
	Location string `json:"location,omitempty"`
	Type     string `json:"type"`
	Num      int    `json:"num"`
}

// Address is a structured postal address.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// IsZero reports whether no address component is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Place is one place returned by the places search, carrying both the
// provider's fields and the normalized facility view derived from them.
type Place struct {
	ID             uuid.UUID
	SearchResultID uuid.UUID
	Position       int
	ExternalUUID   *string
	Title          string
	RawAddress     *string
	Latitude       *float64
	Longitude      *float64
	Rating         *float64
	RatingCount    *int
	PlaceType      *string
	PlaceTypes     []string
	Website        *string
	PhoneNumber    *string
	OpeningHours   json.RawMessage
	ThumbnailURL   *string
	CID            *string
	FID            *string
	PlaceID        *string

	// Normalized view.
	Address             Address
	AddressParsed       bool
	PriceRangeMin       int
	PriceRangeMax       int
	CurrentAvailability int
	CreatedAt           time.Time
}

// ConversationSummary is the generated text attached one-to-one to a SearchResult.
type ConversationSummary struct {
	ID             uuid.UUID
	SearchResultID uuid.UUID
	UserID         *uuid.UUID
	SummaryText    string
	MarkupContent  string
	CreatedAt      time.Time
}
