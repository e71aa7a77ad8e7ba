package provider

import (
	"encoding/json"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// PlacesResult is the structured result of a places search provider.
// Raw holds the untouched response body for storage.
type PlacesResult struct {
	Places []PlaceResult
	Raw    json.RawMessage
}

// PlaceResult represents a single place returned by a places search.
type PlaceResult struct {
	Position     int
	UUID         string
	Title        string
	Address      string
	Latitude     *float64
	Longitude    *float64
	Rating       *float64
	RatingCount  *int
	Type         string
	Types        []string
	Website      string
	PhoneNumber  string
	OpeningHours json.RawMessage
	ThumbnailURL string
	CID          string
	FID          string
	PlaceID      string

	// Components is set only when the provider returns a structured address.
	Components *AddressResult
}

// AddressResult is a structured postal address from a provider.
type AddressResult struct {
	Street     string
	City       string
	State      string
	PostalCode string
}

// Message is one turn of a conversation sent to a text-generation provider.
type Message struct {
	Role    domain.MessageRole
	Content string
}
