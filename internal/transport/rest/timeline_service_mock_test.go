package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/service/timeline"
)

var _ timelineService = &timelineServiceMock{}

type timelineServiceMock struct {
	CreatePlanFunc            func(ctx context.Context, input timeline.CreatePlanInput) (domain.TimelinePlan, error)
	GetPlanFunc               func(ctx context.Context, id uuid.UUID) (domain.TimelinePlan, error)
	SetMilestoneCompletedFunc func(ctx context.Context, milestoneID uuid.UUID, completed bool) error

	calls struct {
		CreatePlan []struct {
			Ctx   context.Context
			Input timeline.CreatePlanInput
		}
		GetPlan []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetMilestoneCompleted []struct {
			Ctx         context.Context
			MilestoneID uuid.UUID
			Completed   bool
		}
	}
	lockCreatePlan            sync.RWMutex
	lockGetPlan               sync.RWMutex
	lockSetMilestoneCompleted sync.RWMutex
}

func (mock *timelineServiceMock) CreatePlan(ctx context.Context, input timeline.CreatePlanInput) (domain.TimelinePlan, error) {
	if mock.CreatePlanFunc == nil {
		panic("timelineServiceMock.CreatePlanFunc: method is nil but timelineService.CreatePlan was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeline.CreatePlanInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePlan.Lock()
	mock.calls.CreatePlan = append(mock.calls.CreatePlan, callInfo)
	mock.lockCreatePlan.Unlock()
	return mock.CreatePlanFunc(ctx, input)
}

func (mock *timelineServiceMock) CreatePlanCalls() []struct {
	Ctx   context.Context
	Input timeline.CreatePlanInput
} {
	mock.lockCreatePlan.RLock()
	calls := mock.calls.CreatePlan
	mock.lockCreatePlan.RUnlock()
	return calls
}

func (mock *timelineServiceMock) GetPlan(ctx context.Context, id uuid.UUID) (domain.TimelinePlan, error) {
	if mock.GetPlanFunc == nil {
		panic("timelineServiceMock.GetPlanFunc: method is nil but timelineService.GetPlan was just called")
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

func (mock *timelineServiceMock) GetPlanCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetPlan.RLock()
	calls := mock.calls.GetPlan
	mock.lockGetPlan.RUnlock()
	return calls
}

func (mock *timelineServiceMock) SetMilestoneCompleted(ctx context.Context, milestoneID uuid.UUID, completed bool) error {
	if mock.SetMilestoneCompletedFunc == nil {
		panic("timelineServiceMock.SetMilestoneCompletedFunc: method is nil but timelineService.SetMilestoneCompleted was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		MilestoneID uuid.UUID
		Completed   bool
	}{Ctx: ctx, MilestoneID: milestoneID, Completed: completed}
	mock.lockSetMilestoneCompleted.Lock()
	mock.calls.SetMilestoneCompleted = append(mock.calls.SetMilestoneCompleted, callInfo)
	mock.lockSetMilestoneCompleted.Unlock()
	return mock.SetMilestoneCompletedFunc(ctx, milestoneID, completed)
}

func (mock *timelineServiceMock) SetMilestoneCompletedCalls() []struct {
	Ctx         context.Context
	MilestoneID uuid.UUID
	Completed   bool
} {
	mock.lockSetMilestoneCompleted.RLock()
	calls := mock.calls.SetMilestoneCompleted
	mock.lockSetMilestoneCompleted.RUnlock()
	return calls
}
