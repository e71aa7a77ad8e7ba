package rest

import (
	"context"
	"sync"

	"github.com/kceleski/ava-care-compass/internal/service/favorite"
)

var _ favoriteService = &favoriteServiceMock{}

type favoriteServiceMock struct {
	ManageFunc func(ctx context.Context, input favorite.ManageInput) (favorite.ManageResult, error)

	calls struct {
		Manage []struct {
			Ctx   context.Context
			Input favorite.ManageInput
		}
	}
	lockManage sync.RWMutex
}

func (mock *favoriteServiceMock) Manage(ctx context.Context, input favorite.ManageInput) (favorite.ManageResult, error) {
	if mock.ManageFunc == nil {
		panic("favoriteServiceMock.ManageFunc: method is nil but favoriteService.Manage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input favorite.ManageInput
	}{Ctx: ctx, Input: input}
	mock.lockManage.Lock()
	mock.calls.Manage = append(mock.calls.Manage, callInfo)
	mock.lockManage.Unlock()
	return mock.ManageFunc(ctx, input)
}

func (mock *favoriteServiceMock) ManageCalls() []struct {
	Ctx   context.Context
	Input favorite.ManageInput
} {
	mock.lockManage.RLock()
	calls := mock.calls.Manage
	mock.lockManage.RUnlock()
	return calls
}
