package chat

import (
	"context"
	"sync"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ analyticsRecorder = &analyticsRecorderMock{}

type analyticsRecorderMock struct {
	RecordFunc func(ctx context.Context, e domain.AnalyticsEvent) error

	calls struct {
		Record []struct {
			Ctx context.Context
			E   domain.AnalyticsEvent
		}
	}
	lockRecord sync.RWMutex
}

func (mock *analyticsRecorderMock) Record(ctx context.Context, e domain.AnalyticsEvent) error {
	if mock.RecordFunc == nil {
		panic("analyticsRecorderMock.RecordFunc: method is nil but analyticsRecorder.Record was just called")
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

func (mock *analyticsRecorderMock) RecordCalls() []struct {
	Ctx context.Context
	E   domain.AnalyticsEvent
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
