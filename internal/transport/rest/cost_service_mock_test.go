package rest

import (
	"context"
	"sync"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/service/cost"
)

var _ costService = &costServiceMock{}

type costServiceMock struct {
	CareTypesFunc func(ctx context.Context) ([]domain.CareType, error)
	EstimateFunc  func(ctx context.Context, input cost.EstimateInput) (cost.Estimate, error)

	calls struct {
		CareTypes []struct {
			Ctx context.Context
		}
		Estimate []struct {
			Ctx   context.Context
			Input cost.EstimateInput
		}
	}
	lockCareTypes sync.RWMutex
	lockEstimate  sync.RWMutex
}

func (mock *costServiceMock) CareTypes(ctx context.Context) ([]domain.CareType, error) {
	if mock.CareTypesFunc == nil {
		panic("costServiceMock.CareTypesFunc: method is nil but costService.CareTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCareTypes.Lock()
	mock.calls.CareTypes = append(mock.calls.CareTypes, callInfo)
	mock.lockCareTypes.Unlock()
	return mock.CareTypesFunc(ctx)
}

func (mock *costServiceMock) CareTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockCareTypes.RLock()
	calls := mock.calls.CareTypes
	mock.lockCareTypes.RUnlock()
	return calls
}

func (mock *costServiceMock) Estimate(ctx context.Context, input cost.EstimateInput) (cost.Estimate, error) {
	if mock.EstimateFunc == nil {
		panic("costServiceMock.EstimateFunc: method is nil but costService.Estimate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cost.EstimateInput
	}{Ctx: ctx, Input: input}
	mock.lockEstimate.Lock()
	mock.calls.Estimate = append(mock.calls.Estimate, callInfo)
	mock.lockEstimate.Unlock()
	return mock.EstimateFunc(ctx, input)
}

func (mock *costServiceMock) EstimateCalls() []struct {
	Ctx   context.Context
	Input cost.EstimateInput
} {
	mock.lockEstimate.RLock()
	calls := mock.calls.Estimate
	mock.lockEstimate.RUnlock()
	return calls
}
