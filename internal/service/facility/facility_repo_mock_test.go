package facility

import (
	"context"
	"sync"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ facilityRepo = &facilityRepoMock{}

type facilityRepoMock struct {
	SearchFunc func(ctx context.Context, filter domain.FacilityFilter) ([]domain.Facility, error)

	calls struct {
		Search []struct {
			Ctx    context.Context
			Filter domain.FacilityFilter
		}
	}
	lockSearch sync.RWMutex
}

func (mock *facilityRepoMock) Search(ctx context.Context, filter domain.FacilityFilter) ([]domain.Facility, error) {
	if mock.SearchFunc == nil {
		panic("facilityRepoMock.SearchFunc: method is nil but facilityRepo.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.FacilityFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, filter)
}

func (mock *facilityRepoMock) SearchCalls() []struct {
	Ctx    context.Context
	Filter domain.FacilityFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
