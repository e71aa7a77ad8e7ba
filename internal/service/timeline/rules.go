package timeline

import (
	"time"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

type rule struct {
	milestone string
	months    int
	applies   func(a domain.Assessment) bool
}

func always(domain.Assessment) bool { return true }

func independent(a domain.Assessment) bool {
	return a.CurrentMobility == domain.MobilityIndependent
}

func cognitionIntact(a domain.Assessment) bool {
	return a.CognitiveStatus == domain.CognitiveNormal || a.CognitiveStatus == domain.CognitiveMildDecline
}

// Severe decline alone is not a trigger.
func needsCareOptions(a domain.Assessment) bool {
	return !independent(a) || a.CognitiveStatus == domain.CognitiveModerateDecline
}

// decisionTable is evaluated in order; instances keep this order within a date.
var decisionTable = []rule{
	{milestone: domain.MilestoneFamilyCommunication, months: 1, applies: always},
	{milestone: domain.MilestoneHomeSafety, months: 1, applies: independent},
	{milestone: domain.MilestoneLegalPlanning, months: 2, applies: cognitionIntact},
	{milestone: domain.MilestoneFinancialPlanning, months: 2, applies: cognitionIntact},
	{milestone: domain.MilestoneHealthcareSetup, months: 3, applies: always},
	{milestone: domain.MilestoneCareOptionsResearch, months: 6, applies: needsCareOptions},
}

type selection struct {
	milestone string
	date      time.Time
}

// selectMilestones applies the decision table. Dates are counted in months
// from the UTC calendar day of now.
func selectMilestones(a domain.Assessment, now time.Time) []selection {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var out []selection
	for _, r := range decisionTable {
		if r.applies(a) {
			out = append(out, selection{milestone: r.milestone, date: today.AddDate(0, r.months, 0)})
		}
	}
	return out
}
