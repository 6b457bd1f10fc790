package dialog

import (
	"context"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"sync"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc func(ctx context.Context, item *domain.Item) (*domain.Item, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item *domain.Item
		}
	}
	lockCreate sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.Item
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.Item
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
