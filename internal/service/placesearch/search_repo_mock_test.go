package placesearch

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ searchRepo = &searchRepoMock{}

type searchRepoMock struct {
	CreatePlaceFunc   func(ctx context.Context, p domain.Place) (domain.Place, error)
	CreateResultFunc  func(ctx context.Context, sr domain.SearchResult) (domain.SearchResult, error)
	CreateSummaryFunc func(ctx context.Context, s domain.ConversationSummary) (domain.ConversationSummary, error)
	GetResultFunc     func(ctx context.Context, id uuid.UUID) (domain.SearchResult, error)
	GetSummaryFunc    func(ctx context.Context, searchResultID uuid.UUID) (domain.ConversationSummary, error)
	ListPlacesFunc    func(ctx context.Context, searchResultID uuid.UUID, limit int) ([]domain.Place, error)

	calls struct {
		CreatePlace []struct {
			Ctx context.Context
			P   domain.Place
		}
		CreateResult []struct {
			Ctx context.Context
			Sr  domain.SearchResult
		}
		CreateSummary []struct {
			Ctx context.Context
			S   domain.ConversationSummary
		}
		GetResult []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetSummary []struct {
			Ctx            context.Context
			SearchResultID uuid.UUID
		}
		ListPlaces []struct {
			Ctx            context.Context
			SearchResultID uuid.UUID
			Limit          int
		}
	}
	lockCreatePlace   sync.RWMutex
	lockCreateResult  sync.RWMutex
	lockCreateSummary sync.RWMutex
	lockGetResult     sync.RWMutex
	lockGetSummary    sync.RWMutex
	lockListPlaces    sync.RWMutex
}

func (mock *searchRepoMock) CreatePlace(ctx context.Context, p domain.Place) (domain.Place, error) {
	if mock.CreatePlaceFunc == nil {
		panic("searchRepoMock.CreatePlaceFunc: method is nil but searchRepo.CreatePlace was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Place
	}{Ctx: ctx, P: p}
	mock.lockCreatePlace.Lock()
	mock.calls.CreatePlace = append(mock.calls.CreatePlace, callInfo)
	mock.lockCreatePlace.Unlock()
	return mock.CreatePlaceFunc(ctx, p)
}

func (mock *searchRepoMock) CreatePlaceCalls() []struct {
	Ctx context.Context
	P   domain.Place
} {
	mock.lockCreatePlace.RLock()
	calls := mock.calls.CreatePlace
	mock.lockCreatePlace.RUnlock()
	return calls
}

func (mock *searchRepoMock) CreateResult(ctx context.Context, sr domain.SearchResult) (domain.SearchResult, error) {
	if mock.CreateResultFunc == nil {
		panic("searchRepoMock.CreateResultFunc: method is nil but searchRepo.CreateResult was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sr  domain.SearchResult
	}{Ctx: ctx, Sr: sr}
	mock.lockCreateResult.Lock()
	mock.calls.CreateResult = append(mock.calls.CreateResult, callInfo)
	mock.lockCreateResult.Unlock()
	return mock.CreateResultFunc(ctx, sr)
}

func (mock *searchRepoMock) CreateResultCalls() []struct {
	Ctx context.Context
	Sr  domain.SearchResult
} {
	mock.lockCreateResult.RLock()
	calls := mock.calls.CreateResult
	mock.lockCreateResult.RUnlock()
	return calls
}

func (mock *searchRepoMock) CreateSummary(ctx context.Context, s domain.ConversationSummary) (domain.ConversationSummary, error) {
	if mock.CreateSummaryFunc == nil {
		panic("searchRepoMock.CreateSummaryFunc: method is nil but searchRepo.CreateSummary was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.ConversationSummary
	}{Ctx: ctx, S: s}
	mock.lockCreateSummary.Lock()
	mock.calls.CreateSummary = append(mock.calls.CreateSummary, callInfo)
	mock.lockCreateSummary.Unlock()
	return mock.CreateSummaryFunc(ctx, s)
}

func (mock *searchRepoMock) CreateSummaryCalls() []struct {
	Ctx context.Context
	S   domain.ConversationSummary
} {
	mock.lockCreateSummary.RLock()
	calls := mock.calls.CreateSummary
	mock.lockCreateSummary.RUnlock()
	return calls
}

func (mock *searchRepoMock) GetResult(ctx context.Context, id uuid.UUID) (domain.SearchResult, error) {
	if mock.GetResultFunc == nil {
		panic("searchRepoMock.GetResultFunc: method is nil but searchRepo.GetResult was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetResult.Lock()
	mock.calls.GetResult = append(mock.calls.GetResult, callInfo)
	mock.lockGetResult.Unlock()
	return mock.GetResultFunc(ctx, id)
}

func (mock *searchRepoMock) GetResultCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetResult.RLock()
	calls := mock.calls.GetResult
	mock.lockGetResult.RUnlock()
	return calls
}

func (mock *searchRepoMock) GetSummary(ctx context.Context, searchResultID uuid.UUID) (domain.ConversationSummary, error) {
	if mock.GetSummaryFunc == nil {
		panic("searchRepoMock.GetSummaryFunc: method is nil but searchRepo.GetSummary was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		SearchResultID uuid.UUID
	}{Ctx: ctx, SearchResultID: searchResultID}
	mock.lockGetSummary.Lock()
	mock.calls.GetSummary = append(mock.calls.GetSummary, callInfo)
	mock.lockGetSummary.Unlock()
	return mock.GetSummaryFunc(ctx, searchResultID)
}

func (mock *searchRepoMock) GetSummaryCalls() []struct {
	Ctx            context.Context
	SearchResultID uuid.UUID
} {
	mock.lockGetSummary.RLock()
	calls := mock.calls.GetSummary
	mock.lockGetSummary.RUnlock()
	return calls
}

func (mock *searchRepoMock) ListPlaces(ctx context.Context, searchResultID uuid.UUID, limit int) ([]domain.Place, error) {
	if mock.ListPlacesFunc == nil {
		panic("searchRepoMock.ListPlacesFunc: method is nil but searchRepo.ListPlaces was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		SearchResultID uuid.UUID
		Limit          int
	}{Ctx: ctx, SearchResultID: searchResultID, Limit: limit}
	mock.lockListPlaces.Lock()
	mock.calls.ListPlaces = append(mock.calls.ListPlaces, callInfo)
	mock.lockListPlaces.Unlock()
	return mock.ListPlacesFunc(ctx, searchResultID, limit)
}

func (mock *searchRepoMock) ListPlacesCalls() []struct {
	Ctx            context.Context
	SearchResultID uuid.UUID
	Limit          int
} {
	mock.lockListPlaces.RLock()
	calls := mock.calls.ListPlaces
	mock.lockListPlaces.RUnlock()
	return calls
}
