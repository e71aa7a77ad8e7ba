package timeline

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ timelineRepo = &timelineRepoMock{}

type timelineRepoMock struct {
	CreateAssessmentFunc      func(ctx context.Context, a domain.Assessment) (domain.Assessment, error)
	CreatePlanFunc            func(ctx context.Context, p domain.TimelinePlan) (domain.TimelinePlan, error)
	GetPlanFunc               func(ctx context.Context, id uuid.UUID) (domain.TimelinePlan, error)
	PlanIDByMilestoneFunc     func(ctx context.Context, milestoneID uuid.UUID) (uuid.UUID, error)
	SetMilestoneCompletedFunc func(ctx context.Context, id uuid.UUID, completed bool) error

	calls struct {
		CreateAssessment []struct {
			Ctx context.Context
			A   domain.Assessment
		}
		CreatePlan []struct {
			Ctx context.Context
			P   domain.TimelinePlan
		}
		GetPlan []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		PlanIDByMilestone []struct {
			Ctx         context.Context
			MilestoneID uuid.UUID
		}
		SetMilestoneCompleted []struct {
			Ctx       context.Context
			Id        uuid.UUID
			Completed bool
		}
	}
	lockCreateAssessment      sync.RWMutex
	lockCreatePlan            sync.RWMutex
	lockGetPlan               sync.RWMutex
	lockPlanIDByMilestone     sync.RWMutex
	lockSetMilestoneCompleted sync.RWMutex
}

func (mock *timelineRepoMock) CreateAssessment(ctx context.Context, a domain.Assessment) (domain.Assessment, error) {
	if mock.CreateAssessmentFunc == nil {
		panic("timelineRepoMock.CreateAssessmentFunc: method is nil but timelineRepo.CreateAssessment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Assessment
	}{Ctx: ctx, A: a}
	mock.lockCreateAssessment.Lock()
	mock.calls.CreateAssessment = append(mock.calls.CreateAssessment, callInfo)
	mock.lockCreateAssessment.Unlock()
	return mock.CreateAssessmentFunc(ctx, a)
}

func (mock *timelineRepoMock) CreateAssessmentCalls() []struct {
	Ctx context.Context
	A   domain.Assessment
} {
	mock.lockCreateAssessment.RLock()
	calls := mock.calls.CreateAssessment
	mock.lockCreateAssessment.RUnlock()
	return calls
}

func (mock *timelineRepoMock) CreatePlan(ctx context.Context, p domain.TimelinePlan) (domain.TimelinePlan, error) {
	if mock.CreatePlanFunc == nil {
		panic("timelineRepoMock.CreatePlanFunc: method is nil but timelineRepo.CreatePlan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.TimelinePlan
	}{Ctx: ctx, P: p}
	mock.lockCreatePlan.Lock()
	mock.calls.CreatePlan = append(mock.calls.CreatePlan, callInfo)
	mock.lockCreatePlan.Unlock()
	return mock.CreatePlanFunc(ctx, p)
}

func (mock *timelineRepoMock) CreatePlanCalls() []struct {
	Ctx context.Context
	P   domain.TimelinePlan
} {
	mock.lockCreatePlan.RLock()
	calls := mock.calls.CreatePlan
	mock.lockCreatePlan.RUnlock()
	return calls
}

func (mock *timelineRepoMock) GetPlan(ctx context.Context, id uuid.UUID) (domain.TimelinePlan, error) {
	if mock.GetPlanFunc == nil {
		panic("timelineRepoMock.GetPlanFunc: method is nil but timelineRepo.GetPlan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetPlan.Lock()
	mock.calls.GetPlan = append(mock.calls.GetPlan, callInfo)
	mock.lockGetPlan.Unlock()
	return mock.GetPlanFunc(ctx, id)
}

func (mock *timelineRepoMock) GetPlanCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetPlan.RLock()
	calls := mock.calls.GetPlan
	mock.lockGetPlan.RUnlock()
	return calls
}

func (mock *timelineRepoMock) PlanIDByMilestone(ctx context.Context, milestoneID uuid.UUID) (uuid.UUID, error) {
	if mock.PlanIDByMilestoneFunc == nil {
		panic("timelineRepoMock.PlanIDByMilestoneFunc: method is nil but timelineRepo.PlanIDByMilestone was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		MilestoneID uuid.UUID
	}{Ctx: ctx, MilestoneID: milestoneID}
	mock.lockPlanIDByMilestone.Lock()
	mock.calls.PlanIDByMilestone = append(mock.calls.PlanIDByMilestone, callInfo)
	mock.lockPlanIDByMilestone.Unlock()
	return mock.PlanIDByMilestoneFunc(ctx, milestoneID)
}

func (mock *timelineRepoMock) PlanIDByMilestoneCalls() []struct {
	Ctx         context.Context
	MilestoneID uuid.UUID
} {
	mock.lockPlanIDByMilestone.RLock()
	calls := mock.calls.PlanIDByMilestone
	mock.lockPlanIDByMilestone.RUnlock()
	return calls
}

func (mock *timelineRepoMock) SetMilestoneCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	if mock.SetMilestoneCompletedFunc == nil {
		panic("timelineRepoMock.SetMilestoneCompletedFunc: method is nil but timelineRepo.SetMilestoneCompleted was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        uuid.UUID
		Completed bool
	}{Ctx: ctx, Id: id, Completed: completed}
	mock.lockSetMilestoneCompleted.Lock()
	mock.calls.SetMilestoneCompleted = append(mock.calls.SetMilestoneCompleted, callInfo)
	mock.lockSetMilestoneCompleted.Unlock()
	return mock.SetMilestoneCompletedFunc(ctx, id, completed)
}

func (mock *timelineRepoMock) SetMilestoneCompletedCalls() []struct {
	Ctx       context.Context
	Id        uuid.UUID
	Completed bool
} {
	mock.lockSetMilestoneCompleted.RLock()
	calls := mock.calls.SetMilestoneCompleted
	mock.lockSetMilestoneCompleted.RUnlock()
	return calls
}
