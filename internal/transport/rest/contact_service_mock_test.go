package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/service/contact"
)

var _ contactService = &contactServiceMock{}

type contactServiceMock struct {
	AddFunc       func(ctx context.Context, input contact.AddInput) (domain.UserEmergencyContact, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	DirectoryFunc func(ctx context.Context) (contact.Directory, error)

	calls struct {
		Add []struct {
			Ctx   context.Context
			Input contact.AddInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Directory []struct {
			Ctx context.Context
		}
	}
	lockAdd       sync.RWMutex
	lockDelete    sync.RWMutex
	lockDirectory sync.RWMutex
}

func (mock *contactServiceMock) Add(ctx context.Context, input contact.AddInput) (domain.UserEmergencyContact, error) {
	if mock.AddFunc == nil {
		panic("contactServiceMock.AddFunc: method is nil but contactService.Add was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contact.AddInput
	}{Ctx: ctx, Input: input}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, input)
}

func (mock *contactServiceMock) AddCalls() []struct {
	Ctx   context.Context
	Input contact.AddInput
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *contactServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contactServiceMock.DeleteFunc: method is nil but contactService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *contactServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *contactServiceMock) Directory(ctx context.Context) (contact.Directory, error) {
	if mock.DirectoryFunc == nil {
		panic("contactServiceMock.DirectoryFunc: method is nil but contactService.Directory was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDirectory.Lock()
	mock.calls.Directory = append(mock.calls.Directory, callInfo)
	mock.lockDirectory.Unlock()
	return mock.DirectoryFunc(ctx)
}

func (mock *contactServiceMock) DirectoryCalls() []struct {
	Ctx context.Context
} {
	mock.lockDirectory.RLock()
	calls := mock.calls.Directory
	mock.lockDirectory.RUnlock()
	return calls
}
