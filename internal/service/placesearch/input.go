package placesearch

import (
	"strings"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// SearchInput holds parameters for a places search.
type SearchInput struct {
	Query           string
	Location        string
	Type            string
	Num             int
	AcceptsMedicare bool
	AcceptsMedicaid bool
	AcceptsVA       bool
}

// Validate checks the input. Type and Num are defaulted later.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "Query parameter is required"})
	}
	if i.Num < 0 {
		errs = append(errs, domain.FieldError{Field: "num", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// params applies defaults and the provider's result cap.
func (i SearchInput) params(defaultType string, defaultNum, maxResults int) domain.SearchParameters {
	p := domain.SearchParameters{
		Query:    strings.TrimSpace(i.Query),
		Location: strings.TrimSpace(i.Location),
		Type:     strings.TrimSpace(i.Type),
		Num:      i.Num,
	}
	if p.Type == "" {
		p.Type = defaultType
	}
	if p.Num == 0 {
		p.Num = defaultNum
	}
	if p.Num > maxResults {
		p.Num = maxResults
	}
	return p
}

// providerQuery builds the free-text query sent to the provider.
func (i SearchInput) providerQuery(p domain.SearchParameters) string {
	var b strings.Builder
	b.WriteString(p.Query)

	var insurance []string
	if i.AcceptsMedicare {
		insurance = append(insurance, "Medicare")
	}
	if i.AcceptsMedicaid {
		insurance = append(insurance, "Medicaid")
	}
	if i.AcceptsVA {
		insurance = append(insurance, "VA benefits")
	}
	if len(insurance) > 0 {
		b.WriteString(" accepting ")
		b.WriteString(strings.Join(insurance, " or "))
	}

	if p.Location != "" {
		b.WriteString(" near ")
		b.WriteString(p.Location)
	}
	return b.String()
}
