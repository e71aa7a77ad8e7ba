package chat

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

var _ conversationRepo = &conversationRepoMock{}

type conversationRepoMock struct {
	AppendMessageFunc func(ctx context.Context, m domain.ChatMessage) (domain.ChatMessage, error)
	CreateFunc        func(ctx context.Context, c domain.Conversation) (domain.Conversation, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.Conversation, error)
	ListMessagesFunc  func(ctx context.Context, conversationID uuid.UUID) ([]domain.ChatMessage, error)

	calls struct {
		AppendMessage []struct {
			Ctx context.Context
			M   domain.ChatMessage
		}
		Create []struct {
			Ctx context.Context
			C   domain.Conversation
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListMessages []struct {
			Ctx            context.Context
			ConversationID uuid.UUID
		}
	}
	lockAppendMessage sync.RWMutex
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListMessages  sync.RWMutex
}

func (mock *conversationRepoMock) AppendMessage(ctx context.Context, m domain.ChatMessage) (domain.ChatMessage, error) {
	if mock.AppendMessageFunc == nil {
		panic("conversationRepoMock.AppendMessageFunc: method is nil but conversationRepo.AppendMessage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.ChatMessage
	}{Ctx: ctx, M: m}
	mock.lockAppendMessage.Lock()
	mock.calls.AppendMessage = append(mock.calls.AppendMessage, callInfo)
	mock.lockAppendMessage.Unlock()
	return mock.AppendMessageFunc(ctx, m)
}

func (mock *conversationRepoMock) AppendMessageCalls() []struct {
	Ctx context.Context
	M   domain.ChatMessage
} {
	mock.lockAppendMessage.RLock()
	calls := mock.calls.AppendMessage
	mock.lockAppendMessage.RUnlock()
	return calls
}

func (mock *conversationRepoMock) Create(ctx context.Context, c domain.Conversation) (domain.Conversation, error) {
	if mock.CreateFunc == nil {
		panic("conversationRepoMock.CreateFunc: method is nil but conversationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Conversation
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *conversationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Conversation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *conversationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Conversation, error) {
	if mock.GetByIDFunc == nil {
		panic("conversationRepoMock.GetByIDFunc: method is nil but conversationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *conversationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *conversationRepoMock) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]domain.ChatMessage, error) {
	if mock.ListMessagesFunc == nil {
		panic("conversationRepoMock.ListMessagesFunc: method is nil but conversationRepo.ListMessages was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ConversationID uuid.UUID
	}{Ctx: ctx, ConversationID: conversationID}
	mock.lockListMessages.Lock()
	mock.calls.ListMessages = append(mock.calls.ListMessages, callInfo)
	mock.lockListMessages.Unlock()
	return mock.ListMessagesFunc(ctx, conversationID)
}

func (mock *conversationRepoMock) ListMessagesCalls() []struct {
	Ctx            context.Context
	ConversationID uuid.UUID
} {
	mock.lockListMessages.RLock()
	calls := mock.calls.ListMessages
	mock.lockListMessages.RUnlock()
	return calls
}
