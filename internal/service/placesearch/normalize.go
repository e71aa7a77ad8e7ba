package placesearch

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/provider"
)

const (
	unnamedFacility = "Unnamed facility"
	// availabilitySlots bounds the placeholder availability to 0..9.
	availabilitySlots = 10
)

// normalizePlace converts a provider place into a stored Place. The returned
// error is non-nil only when the address could not be parsed; the place is
// still usable in that case.
func normalizePlace(searchResultID uuid.UUID, index int, pr provider.PlaceResult, priceMin, priceMax int) (domain.Place, error) {
	p := domain.Place{
		SearchResultID:      searchResultID,
		Position:            pr.Position,
		ExternalUUID:        strOrNil(pr.UUID),
		Title:               strings.TrimSpace(pr.Title),
		RawAddress:          strOrNil(pr.Address),
		Latitude:            pr.Latitude,
		Longitude:           pr.Longitude,
		Rating:              pr.Rating,
		RatingCount:         pr.RatingCount,
		PlaceType:           strOrNil(pr.Type),
		PlaceTypes:          pr.Types,
		Website:             strOrNil(pr.Website),
		PhoneNumber:         strOrNil(pr.PhoneNumber),
		OpeningHours:        pr.OpeningHours,
		ThumbnailURL:        strOrNil(pr.ThumbnailURL),
		CID:                 strOrNil(pr.CID),
		FID:                 strOrNil(pr.FID),
		PlaceID:             strOrNil(pr.PlaceID),
		PriceRangeMin:       priceMin,
		PriceRangeMax:       priceMax,
		CurrentAvailability: availabilityPlaceholder(pr),
	}
	if p.Position <= 0 {
		p.Position = index + 1
	}
	if p.Title == "" {
		p.Title = unnamedFacility
	}

	addr, err := parseAddress(pr)
	if err != nil {
		return p, err
	}
	p.Address = addr
	p.AddressParsed = true
	return p, nil
}

// parseAddress prefers the provider's structured components and falls back
// to splitting the free-text address on commas.
func parseAddress(pr provider.PlaceResult) (domain.Address, error) {
	if c := pr.Components; c != nil {
		addr := domain.Address{
			Street:  strings.TrimSpace(c.Street),
			City:    strings.TrimSpace(c.City),
			State:   strings.TrimSpace(c.State),
			ZipCode: strings.TrimSpace(c.PostalCode),
		}
		if addr.City != "" && addr.State != "" {
			return addr, nil
		}
	}
	return splitAddress(pr.Address)
}

// splitAddress parses "street, city, STATE ZIP". Extra leading segments are
// kept in the street; a trailing country segment is dropped.
func splitAddress(raw string) (domain.Address, error) {
	var parts []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			parts = append(parts, p)
		}
	}
	if n := len(parts); n > 0 && isCountry(parts[n-1]) {
		parts = parts[:n-1]
	}
	if len(parts) < 3 {
		return domain.Address{}, fmt.Errorf("%q: %w", raw, domain.ErrAddressUnparsed)
	}

	n := len(parts)
	stateZip := strings.Fields(parts[n-1])
	if len(stateZip) == 0 || len(stateZip) > 2 {
		return domain.Address{}, fmt.Errorf("%q: %w", raw, domain.ErrAddressUnparsed)
	}

	addr := domain.Address{
		Street: strings.Join(parts[:n-2], ", "),
		City:   parts[n-2],
		State:  stateZip[0],
	}
	if len(stateZip) == 2 {
		addr.ZipCode = stateZip[1]
	}
	return addr, nil
}

func isCountry(s string) bool {
	switch strings.ToLower(s) {
	case "usa", "us", "united states", "united states of america":
		return true
	}
	return false
}

// availabilityPlaceholder derives a stable 0..9 value from the place identity.
func availabilityPlaceholder(pr provider.PlaceResult) int {
	key := pr.PlaceID
	if key == "" {
		key = pr.CID
	}
	if key == "" {
		key = pr.Title + "|" + pr.Address
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % availabilitySlots)
}

func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
