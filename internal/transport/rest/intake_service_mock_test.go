package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ intakeService = &intakeServiceMock{}

type intakeServiceMock struct {
	GetFunc    func(ctx context.Context, id uuid.UUID) (domain.IntakeSubmission, error)
	SubmitFunc func(ctx context.Context, s domain.IntakeSubmission) (domain.IntakeSubmission, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Submit []struct {
			Ctx context.Context
			S   domain.IntakeSubmission
		}
	}
	lockGet    sync.RWMutex
	lockSubmit sync.RWMutex
}

func (mock *intakeServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.IntakeSubmission, error) {
	if mock.GetFunc == nil {
		panic("intakeServiceMock.GetFunc: method is nil but intakeService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *intakeServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *intakeServiceMock) Submit(ctx context.Context, s domain.IntakeSubmission) (domain.IntakeSubmission, error) {
	if mock.SubmitFunc == nil {
		panic("intakeServiceMock.SubmitFunc: method is nil but intakeService.Submit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.IntakeSubmission
	}{Ctx: ctx, S: s}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, s)
}

func (mock *intakeServiceMock) SubmitCalls() []struct {
	Ctx context.Context
	S   domain.IntakeSubmission
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
