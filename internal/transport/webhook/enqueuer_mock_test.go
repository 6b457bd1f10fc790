package webhook

import (
	"context"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"sync"
)

var _ enqueuer = &enqueuerMock{}

type enqueuerMock struct {
	EnqueueFunc func(ctx context.Context, d domain.Delivery) error

	calls struct {
		Enqueue []struct {
			Ctx context.Context
			D   domain.Delivery
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *enqueuerMock) Enqueue(ctx context.Context, d domain.Delivery) error {
	if mock.EnqueueFunc == nil {
		panic("enqueuerMock.EnqueueFunc: method is nil but enqueuer.Enqueue was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Delivery
	}{Ctx: ctx, D: d}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(ctx, d)
}

func (mock *enqueuerMock) EnqueueCalls() []struct {
	Ctx context.Context
	D   domain.Delivery
} {
	mock.lockEnqueue.RLock()
	calls := mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}
