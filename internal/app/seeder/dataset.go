package seeder

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

//go:embed data/reference.yaml
var defaultDataset []byte

// Dataset is the YAML document the seeder loads.
type Dataset struct {
	CareTypes   []CareTypeRecord   `yaml:"care_types"`
	Multipliers []MultiplierRecord `yaml:"location_multipliers"`
	Milestones  []MilestoneRecord  `yaml:"milestones"`
	Hotlines    []HotlineRecord    `yaml:"hotlines"`
	Facilities  []FacilityRecord   `yaml:"facilities"`
}

type CareTypeRecord struct {
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	BaseHourlyRate float64 `yaml:"base_hourly_rate"`
	Category       string  `yaml:"category"`
}

type MultiplierRecord struct {
	State      string  `yaml:"state"`
	City       string  `yaml:"city"`
	Multiplier float64 `yaml:"multiplier"`
}

type MilestoneRecord struct {
	Name               string   `yaml:"name"`
	Description        string   `yaml:"description"`
	EstimatedTimeframe string   `yaml:"estimated_timeframe"`
	CareLevelRequired  string   `yaml:"care_level_required"`
	Tasks              []string `yaml:"tasks"`
}

type HotlineRecord struct {
	Name             string  `yaml:"name"`
	Phone            string  `yaml:"phone"`
	ContactType      string  `yaml:"contact_type"`
	Description      string  `yaml:"description"`
	Available24x7    bool    `yaml:"available_24_7"`
	LocationSpecific *string `yaml:"location_specific"`
}

type FacilityRecord struct {
	Name            string   `yaml:"name"`
	FacilityType    string   `yaml:"facility_type"`
	Address         string   `yaml:"address"`
	City            string   `yaml:"city"`
	State           string   `yaml:"state"`
	ZipCode         string   `yaml:"zip_code"`
	Phone           *string  `yaml:"phone"`
	Website         *string  `yaml:"website"`
	Description     *string  `yaml:"description"`
	Rating          *float64 `yaml:"rating"`
	ReviewsCount    int      `yaml:"reviews_count"`
	PriceMin        *int     `yaml:"price_min"`
	PriceMax        *int     `yaml:"price_max"`
	Availability    *int     `yaml:"availability"`
	AcceptsMedicare bool     `yaml:"accepts_medicare"`
	AcceptsMedicaid bool     `yaml:"accepts_medicaid"`
	AcceptsVA       bool     `yaml:"accepts_va"`
	Featured        bool     `yaml:"featured"`
	Latitude        *float64 `yaml:"latitude"`
	Longitude       *float64 `yaml:"longitude"`
}

// LoadDataset reads the dataset at path, or the bundled dataset when path
// is empty.
func LoadDataset(path string) (*Dataset, error) {
	raw := defaultDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		raw = b
	}
	return ParseDataset(raw)
}

// ParseDataset decodes and validates a YAML dataset. Unknown keys are
// rejected so typos do not silently drop data.
func ParseDataset(raw []byte) (*Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	var errs []error
	for i, r := range ds.CareTypes {
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("care_types[%d]: name is required", i))
		}
		if r.BaseHourlyRate <= 0 {
			errs = append(errs, fmt.Errorf("care_types[%d]: base_hourly_rate must be positive", i))
		}
	}
	for i, r := range ds.Multipliers {
		if r.State == "" || r.City == "" {
			errs = append(errs, fmt.Errorf("location_multipliers[%d]: state and city are required", i))
		}
		if r.Multiplier <= 0 {
			errs = append(errs, fmt.Errorf("location_multipliers[%d]: multiplier must be positive", i))
		}
	}
	for i, r := range ds.Milestones {
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("milestones[%d]: name is required", i))
		}
	}
	for i, r := range ds.Hotlines {
		if r.Name == "" || r.Phone == "" {
			errs = append(errs, fmt.Errorf("hotlines[%d]: name and phone are required", i))
		}
	}
	for i, r := range ds.Facilities {
		if r.Name == "" || r.City == "" || r.State == "" {
			errs = append(errs, fmt.Errorf("facilities[%d]: name, city and state are required", i))
		}
		if r.PriceMin != nil && r.PriceMax != nil && *r.PriceMin > *r.PriceMax {
			errs = append(errs, fmt.Errorf("facilities[%d]: price_min exceeds price_max", i))
		}
	}
	return errors.Join(errs...)
}

func (r CareTypeRecord) toDomain() domain.CareType {
	return domain.CareType{
		Name:           r.Name,
		Description:    r.Description,
		BaseHourlyRate: r.BaseHourlyRate,
		Category:       r.Category,
	}
}

func (r MultiplierRecord) toDomain() domain.LocationMultiplier {
	return domain.LocationMultiplier{State: r.State, City: r.City, CostMultiplier: r.Multiplier}
}

// Tasks are stored newline-separated.
func (r MilestoneRecord) toDomain() domain.TimelineMilestone {
	return domain.TimelineMilestone{
		Name:               r.Name,
		Description:        r.Description,
		EstimatedTimeframe: r.EstimatedTimeframe,
		CareLevelRequired:  r.CareLevelRequired,
		TaskTemplate:       strings.Join(r.Tasks, "\n"),
	}
}

func (r HotlineRecord) toDomain() domain.EmergencyContact {
	return domain.EmergencyContact{
		Name:             r.Name,
		Phone:            r.Phone,
		ContactType:      r.ContactType,
		Description:      r.Description,
		Available24x7:    r.Available24x7,
		LocationSpecific: domain.TrimOrNil(r.LocationSpecific),
	}
}

// Seeded facilities are always verified so they appear in directory search.
func (r FacilityRecord) toDomain() domain.Facility {
	return domain.Facility{
		Name:                r.Name,
		FacilityType:        r.FacilityType,
		AddressLine1:        r.Address,
		City:                r.City,
		State:               r.State,
		ZipCode:             r.ZipCode,
		Phone:               domain.TrimOrNil(r.Phone),
		Website:             domain.TrimOrNil(r.Website),
		Description:         domain.TrimOrNil(r.Description),
		Rating:              r.Rating,
		ReviewsCount:        r.ReviewsCount,
		PriceRangeMin:       r.PriceMin,
		PriceRangeMax:       r.PriceMax,
		CurrentAvailability: r.Availability,
		AcceptsMedicare:     r.AcceptsMedicare,
		AcceptsMedicaid:     r.AcceptsMedicaid,
		AcceptsVABenefits:   r.AcceptsVA,
		IsVerified:          true,
		IsFeatured:          r.Featured,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
	}
}
