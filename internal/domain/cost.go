package domain

import "github.com/google/uuid"

// WeeksPerMonth is the average number of weeks used for monthly projections.
const WeeksPerMonth = 4.33

// CareType is a reference row with a base hourly rate.
type CareType struct {
	ID             uuid.UUID
	Name           string
	Description    string
	BaseHourlyRate float64
	Category       string
}

// LocationMultiplier adjusts costs for a specific state and city.
type LocationMultiplier struct {
	ID             uuid.UUID
	State          string
	City           string
	CostMultiplier float64
}

// CostBreakdown is the result of a cost projection. All amounts are in dollars.
type CostBreakdown struct {
	BaseCare           float64
	LocationAdjustment float64
	TotalWeekly        float64
	TotalMonthly       float64
	Multiplier         float64
}

// ProjectCost computes the weekly and monthly cost for the given hourly rate,
// hours per week and location multiplier.
func ProjectCost(rate float64, hoursPerWeek int, multiplier float64) CostBreakdown {
	weekly := rate * float64(hoursPerWeek)
	adjusted := weekly * multiplier
	return CostBreakdown{
		BaseCare:           weekly,
		LocationAdjustment: adjusted - weekly,
		TotalWeekly:        adjusted,
		TotalMonthly:       adjusted * WeeksPerMonth,
		Multiplier:         multiplier,
	}
}
