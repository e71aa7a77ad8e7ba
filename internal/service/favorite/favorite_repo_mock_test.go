package favorite

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ favoriteRepo = &favoriteRepoMock{}

type favoriteRepoMock struct {
	AddFunc              func(ctx context.Context, userID uuid.UUID, facilityID uuid.UUID) (domain.Favorite, error)
	ListWithFacilityFunc func(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteWithFacility, error)
	RemoveFunc           func(ctx context.Context, userID uuid.UUID, facilityID uuid.UUID) error

	calls struct {
		Add []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FacilityID uuid.UUID
		}
		ListWithFacility []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Remove []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FacilityID uuid.UUID
		}
	}
	lockAdd              sync.RWMutex
	lockListWithFacility sync.RWMutex
	lockRemove           sync.RWMutex
}

func (mock *favoriteRepoMock) Add(ctx context.Context, userID uuid.UUID, facilityID uuid.UUID) (domain.Favorite, error) {
	if mock.AddFunc == nil {
		panic("favoriteRepoMock.AddFunc: method is nil but favoriteRepo.Add was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FacilityID uuid.UUID
	}{Ctx: ctx, UserID: userID, FacilityID: facilityID}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, userID, facilityID)
}

func (mock *favoriteRepoMock) AddCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	FacilityID uuid.UUID
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) ListWithFacility(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteWithFacility, error) {
	if mock.ListWithFacilityFunc == nil {
		panic("favoriteRepoMock.ListWithFacilityFunc: method is nil but favoriteRepo.ListWithFacility was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListWithFacility.Lock()
	mock.calls.ListWithFacility = append(mock.calls.ListWithFacility, callInfo)
	mock.lockListWithFacility.Unlock()
	return mock.ListWithFacilityFunc(ctx, userID)
}

func (mock *favoriteRepoMock) ListWithFacilityCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListWithFacility.RLock()
	calls := mock.calls.ListWithFacility
	mock.lockListWithFacility.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Remove(ctx context.Context, userID uuid.UUID, facilityID uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("favoriteRepoMock.RemoveFunc: method is nil but favoriteRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FacilityID uuid.UUID
	}{Ctx: ctx, UserID: userID, FacilityID: facilityID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, userID, facilityID)
}

func (mock *favoriteRepoMock) RemoveCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	FacilityID uuid.UUID
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
