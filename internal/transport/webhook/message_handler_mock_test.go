package webhook

import (
	"context"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"sync"
)

var _ messageHandler = &messageHandlerMock{}

type messageHandlerMock struct {
	HandleMessageFunc func(ctx context.Context, ev domain.MessageEvent) error

	calls struct {
		HandleMessage []struct {
			Ctx context.Context
			Ev  domain.MessageEvent
		}
	}
	lockHandleMessage sync.RWMutex
}

func (mock *messageHandlerMock) HandleMessage(ctx context.Context, ev domain.MessageEvent) error {
	if mock.HandleMessageFunc == nil {
		panic("messageHandlerMock.HandleMessageFunc: method is nil but messageHandler.HandleMessage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.MessageEvent
	}{Ctx: ctx, Ev: ev}
	mock.lockHandleMessage.Lock()
	mock.calls.HandleMessage = append(mock.calls.HandleMessage, callInfo)
	mock.lockHandleMessage.Unlock()
	return mock.HandleMessageFunc(ctx, ev)
}

func (mock *messageHandlerMock) HandleMessageCalls() []struct {
	Ctx context.Context
	Ev  domain.MessageEvent
} {
	mock.lockHandleMessage.RLock()
	calls := mock.calls.HandleMessage
	mock.lockHandleMessage.RUnlock()
	return calls
}
