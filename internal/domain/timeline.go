package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Milestone template names referenced by the timeline decision table.
const (
	MilestoneFamilyCommunication = "Family Communication"
	MilestoneHomeSafety          = "Home Safety Assessment"
	MilestoneLegalPlanning       = "Legal Planning"
	MilestoneFinancialPlanning   = "Financial Planning"
	MilestoneHealthcareSetup     = "Healthcare Team Setup"
	MilestoneCareOptionsResearch = "Care Options Research"
)

// Assessment holds the answers that drive timeline generation.
type Assessment struct {
	ID                uuid.UUID
	UserID            *uuid.UUID
	CurrentMobility   Mobility
	CognitiveStatus   CognitiveStatus
	MedicalConditions string
	SupportSystem     SupportSystem
	CreatedAt         time.Time
}

// TimelineMilestone is a read-only milestone template.
type TimelineMilestone struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	EstimatedTimeframe string
	CareLevelRequired  string
	TaskTemplate       string
}

// TimelinePlan groups the milestone instances generated for one assessment.
type TimelinePlan struct {
	ID           uuid.UUID
	AssessmentID uuid.UUID
	UserID       *uuid.UUID
	CreatedAt    time.Time
	Milestones   []PlanMilestone
}

// PlanMilestone is one milestone instance with its own completion flag.
type PlanMilestone struct {
	ID             uuid.UUID
	TimelinePlanID uuid.UUID
	Milestone      TimelineMilestone
	EstimatedDate  time.Time
	Tasks          string
	Completed      bool
}

// TaskList splits the stored newline-separated task text into trimmed,
// non-empty items.
func (m PlanMilestone) TaskList() []string {
	lines := strings.Split(m.Tasks, "\n")
	tasks := make([]string, 0, len(lines))
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			tasks = append(tasks, t)
		}
	}
	return tasks
}
