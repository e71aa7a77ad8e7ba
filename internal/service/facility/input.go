package facility

import "github.com/kceleski/ava-care-compass/internal/domain"

// SearchInput holds directory search filters. Nil pointers mean "not set".
type SearchInput struct {
	Location        string   `json:"location,omitempty"`
	FacilityType    string   `json:"facilityType,omitempty"`
	PriceMin        *int     `json:"priceMin,omitempty"`
	PriceMax        *int     `json:"priceMax,omitempty"`
	AcceptsMedicare bool     `json:"acceptsMedicare,omitempty"`
	AcceptsMedicaid bool     `json:"acceptsMedicaid,omitempty"`
	AcceptsVA       bool     `json:"acceptsVA,omitempty"`
	Radius          *float64 `json:"radius,omitempty"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
}

func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.PriceMin != nil && *i.PriceMin < 0 {
		errs = append(errs, domain.FieldError{Field: "priceMin", Message: "must not be negative"})
	}
	if i.PriceMax != nil && *i.PriceMax < 0 {
		errs = append(errs, domain.FieldError{Field: "priceMax", Message: "must not be negative"})
	}
	if i.PriceMin != nil && i.PriceMax != nil && *i.PriceMin > *i.PriceMax {
		errs = append(errs, domain.FieldError{Field: "priceMin", Message: "must not exceed priceMax"})
	}
	if i.Radius != nil && *i.Radius <= 0 {
		errs = append(errs, domain.FieldError{Field: "radius", Message: "must be positive"})
	}
	if i.Lat != nil && (*i.Lat < -90 || *i.Lat > 90) {
		errs = append(errs, domain.FieldError{Field: "lat", Message: "must be between -90 and 90"})
	}
	if i.Lng != nil && (*i.Lng < -180 || *i.Lng > 180) {
		errs = append(errs, domain.FieldError{Field: "lng", Message: "must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// hasGeo reports whether the distance filter applies.
func (i SearchInput) hasGeo() bool {
	return i.Lat != nil && i.Lng != nil && i.Radius != nil
}

func (i SearchInput) filter(limit int) domain.FacilityFilter {
	return domain.FacilityFilter{
		Location:        i.Location,
		FacilityType:    i.FacilityType,
		PriceMin:        i.PriceMin,
		PriceMax:        i.PriceMax,
		AcceptsMedicare: i.AcceptsMedicare,
		AcceptsMedicaid: i.AcceptsMedicaid,
		AcceptsVA:       i.AcceptsVA,
		Limit:           limit,
	}
}

// params is the analytics view of the input.
func (i SearchInput) params() map[string]any {
	p := map[string]any{}
	if i.Location != "" {
		p["location"] = i.Location
	}
	if i.FacilityType != "" {
		p["facilityType"] = i.FacilityType
	}
	if i.PriceMin != nil {
		p["priceMin"] = *i.PriceMin
	}
	if i.PriceMax != nil {
		p["priceMax"] = *i.PriceMax
	}
	if i.AcceptsMedicare {
		p["acceptsMedicare"] = true
	}
	if i.AcceptsMedicaid {
		p["acceptsMedicaid"] = true
	}
	if i.AcceptsVA {
		p["acceptsVA"] = true
	}
	if i.hasGeo() {
		p["lat"] = *i.Lat
		p["lng"] = *i.Lng
		p["radius"] = *i.Radius
	}
	return p
}
