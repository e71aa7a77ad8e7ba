package facility

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ analyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	CreateSearchRequestFunc     func(ctx context.Context, req domain.SearchRequest) (domain.SearchRequest, error)
	RecordFunc                  func(ctx context.Context, e domain.AnalyticsEvent) error
	SetSearchRequestResultsFunc func(ctx context.Context, id uuid.UUID, count int) error

	calls struct {
		CreateSearchRequest []struct {
			Ctx context.Context
			Req domain.SearchRequest
		}
		Record []struct {
			Ctx context.Context
			E   domain.AnalyticsEvent
		}
		SetSearchRequestResults []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Count int
		}
	}
	lockCreateSearchRequest     sync.RWMutex
	lockRecord                  sync.RWMutex
	lockSetSearchRequestResults sync.RWMutex
}

func (mock *analyticsRepoMock) CreateSearchRequest(ctx context.Context, req domain.SearchRequest) (domain.SearchRequest, error) {
	if mock.CreateSearchRequestFunc == nil {
		panic("analyticsRepoMock.CreateSearchRequestFunc: method is nil but analyticsRepo.CreateSearchRequest was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.SearchRequest
	}{Ctx: ctx, Req: req}
	mock.lockCreateSearchRequest.Lock()
	mock.calls.CreateSearchRequest = append(mock.calls.CreateSearchRequest, callInfo)
	mock.lockCreateSearchRequest.Unlock()
	return mock.CreateSearchRequestFunc(ctx, req)
}

func (mock *analyticsRepoMock) CreateSearchRequestCalls() []struct {
	Ctx context.Context
	Req domain.SearchRequest
} {
	mock.lockCreateSearchRequest.RLock()
	calls := mock.calls.CreateSearchRequest
	mock.lockCreateSearchRequest.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) Record(ctx context.Context, e domain.AnalyticsEvent) error {
	if mock.RecordFunc == nil {
		panic("analyticsRepoMock.RecordFunc: method is nil but analyticsRepo.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.AnalyticsEvent
	}{Ctx: ctx, E: e}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, e)
}

func (mock *analyticsRepoMock) RecordCalls() []struct {
	Ctx context.Context
	E   domain.AnalyticsEvent
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) SetSearchRequestResults(ctx context.Context, id uuid.UUID, count int) error {
	if mock.SetSearchRequestResultsFunc == nil {
		panic("analyticsRepoMock.SetSearchRequestResultsFunc: method is nil but analyticsRepo.SetSearchRequestResults was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Count int
	}{Ctx: ctx, Id: id, Count: count}
	mock.lockSetSearchRequestResults.Lock()
	mock.calls.SetSearchRequestResults = append(mock.calls.SetSearchRequestResults, callInfo)
	mock.lockSetSearchRequestResults.Unlock()
	return mock.SetSearchRequestResultsFunc(ctx, id, count)
}

func (mock *analyticsRepoMock) SetSearchRequestResultsCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Count int
} {
	mock.lockSetSearchRequestResults.RLock()
	calls := mock.calls.SetSearchRequestResults
	mock.lockSetSearchRequestResults.RUnlock()
	return calls
}
