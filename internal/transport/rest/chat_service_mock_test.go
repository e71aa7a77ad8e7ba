package rest

import (
	"context"
	"sync"

	"github.com/kceleski/ava-care-compass/internal/service/chat"
)

var _ chatService = &chatServiceMock{}

type chatServiceMock struct {
	SendFunc func(ctx context.Context, input chat.SendInput) (chat.SendOutput, error)

	calls struct {
		Send []struct {
			Ctx   context.Context
			Input chat.SendInput
		}
	}
	lockSend sync.RWMutex
}

func (mock *chatServiceMock) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	if mock.SendFunc == nil {
		panic("chatServiceMock.SendFunc: method is nil but chatService.Send was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chat.SendInput
	}{Ctx: ctx, Input: input}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, input)
}

func (mock *chatServiceMock) SendCalls() []struct {
	Ctx   context.Context
	Input chat.SendInput
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
