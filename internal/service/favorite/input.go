package favorite

import (
	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// ManageInput is one favorites request.
type ManageInput struct {
	Action     domain.FavoriteAction
	FacilityID *uuid.UUID
}

func (i ManageInput) Validate() error {
	if !i.Action.IsValid() {
		return domain.NewValidationError("action", "Invalid action. Use add, remove, or list")
	}
	if i.Action != domain.FavoriteActionList && (i.FacilityID == nil || *i.FacilityID == uuid.Nil) {
		return domain.NewValidationError("facilityId", "Facility ID is required")
	}
	return nil
}
