package rest

import (
	"context"
	"sync"

	"github.com/kceleski/ava-care-compass/internal/service/facility"
)

var _ facilityService = &facilityServiceMock{}

type facilityServiceMock struct {
	SearchFunc func(ctx context.Context, input facility.SearchInput) (facility.SearchOutput, error)

	calls struct {
		Search []struct {
			Ctx   context.Context
			Input facility.SearchInput
		}
	}
	lockSearch sync.RWMutex
}

func (mock *facilityServiceMock) Search(ctx context.Context, input facility.SearchInput) (facility.SearchOutput, error) {
	if mock.SearchFunc == nil {
		panic("facilityServiceMock.SearchFunc: method is nil but facilityService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input facility.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *facilityServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input facility.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
