package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

type facilityDTO struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	FacilityType        string    `json:"facilityType"`
	AddressLine1        string    `json:"addressLine1"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	ZipCode             string    `json:"zipCode"`
	Phone               *string   `json:"phone"`
	Website             *string   `json:"website"`
	Description         *string   `json:"description"`
	Rating              *float64  `json:"rating"`
	ReviewsCount        int       `json:"reviewsCount"`
	PriceRangeMin       *int      `json:"priceRangeMin"`
	PriceRangeMax       *int      `json:"priceRangeMax"`
	CurrentAvailability *int      `json:"currentAvailability"`
	AcceptsMedicare     bool      `json:"acceptsMedicare"`
	AcceptsMedicaid     bool      `json:"acceptsMedicaid"`
	AcceptsVABenefits   bool      `json:"acceptsVaBenefits"`
	IsFeatured          bool      `json:"isFeatured"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
}

func toFacilityDTO(f domain.Facility) facilityDTO {
	return facilityDTO{
		ID:                  f.ID,
		Name:                f.Name,
		FacilityType:        f.FacilityType,
		AddressLine1:        f.AddressLine1,
		City:                f.City,
		State:               f.State,
		ZipCode:             f.ZipCode,
		Phone:               f.Phone,
		Website:             f.Website,
		Description:         f.Description,
		Rating:              f.Rating,
		ReviewsCount:        f.ReviewsCount,
		PriceRangeMin:       f.PriceRangeMin,
		PriceRangeMax:       f.PriceRangeMax,
		CurrentAvailability: f.CurrentAvailability,
		AcceptsMedicare:     f.AcceptsMedicare,
		AcceptsMedicaid:     f.AcceptsMedicaid,
		AcceptsVABenefits:   f.AcceptsVABenefits,
		IsFeatured:          f.IsFeatured,
		Latitude:            f.Latitude,
		Longitude:           f.Longitude,
	}
}

func toFacilityDTOs(fs []domain.Facility) []facilityDTO {
	out := make([]facilityDTO, 0, len(fs))
	for _, f := range fs {
		out = append(out, toFacilityDTO(f))
	}
	return out
}

type addressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type placeDTO struct {
	ID                  uuid.UUID       `json:"id"`
	Position            int             `json:"position"`
	Title               string          `json:"title"`
	Address             *string         `json:"address"`
	Components          *addressDTO     `json:"addressComponents"`
	Latitude            *float64        `json:"latitude"`
	Longitude           *float64        `json:"longitude"`
	Rating              *float64        `json:"rating"`
	RatingCount         *int            `json:"ratingCount"`
	Type                *string         `json:"type"`
	Types               []string        `json:"types"`
	Website             *string         `json:"website"`
	PhoneNumber         *string         `json:"phoneNumber"`
	OpeningHours        json.RawMessage `json:"openingHours,omitempty"`
	ThumbnailURL        *string         `json:"thumbnailUrl"`
	CID                 *string         `json:"cid"`
	FID                 *string         `json:"fid"`
	PlaceID             *string         `json:"placeId"`
	PriceRangeMin       int             `json:"priceRangeMin"`
	PriceRangeMax       int             `json:"priceRangeMax"`
	CurrentAvailability int             `json:"currentAvailability"`
}

func toPlaceDTO(p domain.Place) placeDTO {
	dto := placeDTO{
		ID:                  p.ID,
		Position:            p.Position,
		Title:               p.Title,
		Address:             p.RawAddress,
		Latitude:            p.Latitude,
		Longitude:           p.Longitude,
		Rating:              p.Rating,
		RatingCount:         p.RatingCount,
		Type:                p.PlaceType,
		Types:               p.PlaceTypes,
		Website:             p.Website,
		PhoneNumber:         p.PhoneNumber,
		OpeningHours:        p.OpeningHours,
		ThumbnailURL:        p.ThumbnailURL,
		CID:                 p.CID,
		FID:                 p.FID,
		PlaceID:             p.PlaceID,
		PriceRangeMin:       p.PriceRangeMin,
		PriceRangeMax:       p.PriceRangeMax,
		CurrentAvailability: p.CurrentAvailability,
	}
	if dto.Types == nil {
		dto.Types = []string{}
	}
	if p.AddressParsed {
		dto.Components = &addressDTO{
			Street:  p.Address.Street,
			City:    p.Address.City,
			State:   p.Address.State,
			ZipCode: p.Address.ZipCode,
		}
	}
	return dto
}

func toPlaceDTOs(ps []domain.Place) []placeDTO {
	out := make([]placeDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPlaceDTO(p))
	}
	return out
}

type searchResultDTO struct {
	ID          uuid.UUID               `json:"id"`
	SearchQuery string                  `json:"searchQuery"`
	Parameters  domain.SearchParameters `json:"searchParameters"`
	CreatedAt   time.Time               `json:"createdAt"`
}

type summaryDTO struct {
	ID            uuid.UUID `json:"id"`
	SummaryText   string    `json:"summaryText"`
	MarkupContent string    `json:"markupContent"`
	CreatedAt     time.Time `json:"createdAt"`
}

type favoriteDTO struct {
	ID         uuid.UUID    `json:"id"`
	FacilityID uuid.UUID    `json:"facilityId"`
	CreatedAt  time.Time    `json:"createdAt"`
	Facility   *facilityDTO `json:"facility,omitempty"`
}

type careTypeDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	BaseHourlyRate float64   `json:"baseHourlyRate"`
	Category       string    `json:"category"`
}

func toCareTypeDTO(c domain.CareType) careTypeDTO {
	return careTypeDTO{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		BaseHourlyRate: c.BaseHourlyRate,
		Category:       c.Category,
	}
}

type milestoneDTO struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	EstimatedTimeframe string    `json:"estimatedTimeframe"`
	EstimatedDate      string    `json:"estimatedDate"`
	Tasks              []string  `json:"tasks"`
	Completed          bool      `json:"completed"`
}

type planDTO struct {
	ID           uuid.UUID      `json:"id"`
	AssessmentID uuid.UUID      `json:"assessmentId"`
	CreatedAt    time.Time      `json:"createdAt"`
	Milestones   []milestoneDTO `json:"milestones"`
}

func toPlanDTO(p domain.TimelinePlan) planDTO {
	dto := planDTO{
		ID:           p.ID,
		AssessmentID: p.AssessmentID,
		CreatedAt:    p.CreatedAt,
		Milestones:   make([]milestoneDTO, 0, len(p.Milestones)),
	}
	for _, m := range p.Milestones {
		dto.Milestones = append(dto.Milestones, milestoneDTO{
			ID:                 m.ID,
			Name:               m.Milestone.Name,
			Description:        m.Milestone.Description,
			EstimatedTimeframe: m.Milestone.EstimatedTimeframe,
			EstimatedDate:      m.EstimatedDate.Format(time.DateOnly),
			Tasks:              m.TaskList(),
			Completed:          m.Completed,
		})
	}
	return dto
}

type hotlineDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	ContactType      string    `json:"contactType"`
	Description      string    `json:"description"`
	Available24x7    bool      `json:"available24_7"`
	LocationSpecific *string   `json:"locationSpecific"`
}

type personalContactDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Phone        string    `json:"phone"`
	IsPrimary    bool      `json:"isPrimary"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toPersonalContactDTO(c domain.UserEmergencyContact) personalContactDTO {
	return personalContactDTO{
		ID:           c.ID,
		Name:         c.Name,
		Relationship: c.Relationship,
		Phone:        c.Phone,
		IsPrimary:    c.IsPrimary,
		CreatedAt:    c.CreatedAt,
	}
}
