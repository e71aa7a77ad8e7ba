package cost

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ referenceRepo = &referenceRepoMock{}

type referenceRepoMock struct {
	GetCareTypeByIDFunc func(ctx context.Context, id uuid.UUID) (domain.CareType, error)
	GetMultiplierFunc   func(ctx context.Context, state string, city string) (domain.LocationMultiplier, error)
	ListCareTypesFunc   func(ctx context.Context) ([]domain.CareType, error)

	calls struct {
		GetCareTypeByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetMultiplier []struct {
			Ctx   context.Context
			State string
			City  string
		}
		ListCareTypes []struct {
			Ctx context.Context
		}
	}
	lockGetCareTypeByID sync.RWMutex
	lockGetMultiplier   sync.RWMutex
	lockListCareTypes   sync.RWMutex
}

func (mock *referenceRepoMock) GetCareTypeByID(ctx context.Context, id uuid.UUID) (domain.CareType, error) {
	if mock.GetCareTypeByIDFunc == nil {
		panic("referenceRepoMock.GetCareTypeByIDFunc: method is nil but referenceRepo.GetCareTypeByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetCareTypeByID.Lock()
	mock.calls.GetCareTypeByID = append(mock.calls.GetCareTypeByID, callInfo)
	mock.lockGetCareTypeByID.Unlock()
	return mock.GetCareTypeByIDFunc(ctx, id)
}

func (mock *referenceRepoMock) GetCareTypeByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetCareTypeByID.RLock()
	calls := mock.calls.GetCareTypeByID
	mock.lockGetCareTypeByID.RUnlock()
	return calls
}

func (mock *referenceRepoMock) GetMultiplier(ctx context.Context, state string, city string) (domain.LocationMultiplier, error) {
	if mock.GetMultiplierFunc == nil {
		panic("referenceRepoMock.GetMultiplierFunc: method is nil but referenceRepo.GetMultiplier was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		State string
		City  string
	}{Ctx: ctx, State: state, City: city}
	mock.lockGetMultiplier.Lock()
	mock.calls.GetMultiplier = append(mock.calls.GetMultiplier, callInfo)
	mock.lockGetMultiplier.Unlock()
	return mock.GetMultiplierFunc(ctx, state, city)
}

func (mock *referenceRepoMock) GetMultiplierCalls() []struct {
	Ctx   context.Context
	State string
	City  string
} {
	mock.lockGetMultiplier.RLock()
	calls := mock.calls.GetMultiplier
	mock.lockGetMultiplier.RUnlock()
	return calls
}

func (mock *referenceRepoMock) ListCareTypes(ctx context.Context) ([]domain.CareType, error) {
	if mock.ListCareTypesFunc == nil {
		panic("referenceRepoMock.ListCareTypesFunc: method is nil but referenceRepo.ListCareTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCareTypes.Lock()
	mock.calls.ListCareTypes = append(mock.calls.ListCareTypes, callInfo)
	mock.lockListCareTypes.Unlock()
	return mock.ListCareTypesFunc(ctx)
}

func (mock *referenceRepoMock) ListCareTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCareTypes.RLock()
	calls := mock.calls.ListCareTypes
	mock.lockListCareTypes.RUnlock()
	return calls
}
