package contact

import (
	"context"
	"sync"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ hotlineRepo = &hotlineRepoMock{}

type hotlineRepoMock struct {
	ListHotlinesFunc func(ctx context.Context) ([]domain.EmergencyContact, error)

	calls struct {
		ListHotlines []struct {
			Ctx context.Context
		}
	}
	lockListHotlines sync.RWMutex
}

func (mock *hotlineRepoMock) ListHotlines(ctx context.Context) ([]domain.EmergencyContact, error) {
	if mock.ListHotlinesFunc == nil {
		panic("hotlineRepoMock.ListHotlinesFunc: method is nil but hotlineRepo.ListHotlines was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListHotlines.Lock()
	mock.calls.ListHotlines = append(mock.calls.ListHotlines, callInfo)
	mock.lockListHotlines.Unlock()
	return mock.ListHotlinesFunc(ctx)
}

func (mock *hotlineRepoMock) ListHotlinesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListHotlines.RLock()
	calls := mock.calls.ListHotlines
	mock.lockListHotlines.RUnlock()
	return calls
}
