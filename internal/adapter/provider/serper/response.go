package serper

import (
	"encoding/json"

	"github.com/kceleski/ava-care-compass/internal/provider"
)

// mapsRequest is the body of POST /maps.
type mapsRequest struct {
	Q    string `json:"q"`
	Type string `json:"type,omitempty"`
	Num  int    `json:"num,omitempty"`
}

// mapsResponse is the subset of the /maps response the client reads.
type mapsResponse struct {
	Places []apiPlace `json:"places"`
}

// apiPlace is one result of a maps search as returned by the API.
type apiPlace struct {
	Position     int             `json:"position"`
	UUID         string          `json:"uuid,omitempty"`
	Title        string          `json:"title"`
	Address      string          `json:"address,omitempty"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	Rating       *float64        `json:"rating,omitempty"`
	RatingCount  *int            `json:"ratingCount,omitempty"`
	Type         string          `json:"type,omitempty"`
	Types        []string        `json:"types,omitempty"`
	Website      string          `json:"website,omitempty"`
	PhoneNumber  string          `json:"phoneNumber,omitempty"`
	OpeningHours json.RawMessage `json:"openingHours,omitempty"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty"`
	CID          string          `json:"cid,omitempty"`
	FID          string          `json:"fid,omitempty"`
	PlaceID      string          `json:"placeId,omitempty"`

	// AddressComponents is filled only when the provider returns a
	// structured address alongside the free-text one.
	AddressComponents *apiAddress `json:"addressComponents,omitempty"`
}

type apiAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

func (p apiPlace) toResult() provider.PlaceResult {
	res := provider.PlaceResult{
		Position:     p.Position,
		UUID:         p.UUID,
		Title:        p.Title,
		Address:      p.Address,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Rating:       p.Rating,
		RatingCount:  p.RatingCount,
		Type:         p.Type,
		Types:        p.Types,
		Website:      p.Website,
		PhoneNumber:  p.PhoneNumber,
		OpeningHours: p.OpeningHours,
		ThumbnailURL: p.ThumbnailURL,
		CID:          p.CID,
		FID:          p.FID,
		PlaceID:      p.PlaceID,
	}
	if a := p.AddressComponents; a != nil {
		res.Components = &provider.AddressResult{
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
		}
	}
	return res
}
