package timeline

import (
	"context"
	"sync"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ milestoneCatalog = &milestoneCatalogMock{}

type milestoneCatalogMock struct {
	ListMilestonesFunc func(ctx context.Context, names ...string) ([]domain.TimelineMilestone, error)

	calls struct {
		ListMilestones []struct {
			Ctx   context.Context
			Names []string
		}
	}
	lockListMilestones sync.RWMutex
}

func (mock *milestoneCatalogMock) ListMilestones(ctx context.Context, names ...string) ([]domain.TimelineMilestone, error) {
	if mock.ListMilestonesFunc == nil {
		panic("milestoneCatalogMock.ListMilestonesFunc: method is nil but milestoneCatalog.ListMilestones was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Names []string
	}{Ctx: ctx, Names: names}
	mock.lockListMilestones.Lock()
	mock.calls.ListMilestones = append(mock.calls.ListMilestones, callInfo)
	mock.lockListMilestones.Unlock()
	return mock.ListMilestonesFunc(ctx, names...)
}

func (mock *milestoneCatalogMock) ListMilestonesCalls() []struct {
	Ctx   context.Context
	Names []string
} {
	mock.lockListMilestones.RLock()
	calls := mock.calls.ListMilestones
	mock.lockListMilestones.RUnlock()
	return calls
}
