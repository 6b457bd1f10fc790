package approval

import (
	"context"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"sync"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByMessageIDForUpdateFunc func(ctx context.Context, messageID string) (*domain.Item, error)
	GetByTrackingCodeFunc       func(ctx context.Context, code string) (*domain.Item, error)
	MarkApprovedFunc            func(ctx context.Context, messageID string) (bool, error)

	calls struct {
		GetByMessageIDForUpdate []struct {
			Ctx       context.Context
			MessageID string
		}
		GetByTrackingCode []struct {
			Ctx  context.Context
			Code string
		}
		MarkApproved []struct {
			Ctx       context.Context
			MessageID string
		}
	}
	lockGetByMessageIDForUpdate sync.RWMutex
	lockGetByTrackingCode       sync.RWMutex
	lockMarkApproved            sync.RWMutex
}

func (mock *itemRepoMock) GetByMessageIDForUpdate(ctx context.Context, messageID string) (*domain.Item, error) {
	if mock.GetByMessageIDForUpdateFunc == nil {
		panic("itemRepoMock.GetByMessageIDForUpdateFunc: method is nil but itemRepo.GetByMessageIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MessageID string
	}{Ctx: ctx, MessageID: messageID}
	mock.lockGetByMessageIDForUpdate.Lock()
	mock.calls.GetByMessageIDForUpdate = append(mock.calls.GetByMessageIDForUpdate, callInfo)
	mock.lockGetByMessageIDForUpdate.Unlock()
	return mock.GetByMessageIDForUpdateFunc(ctx, messageID)
}

func (mock *itemRepoMock) GetByMessageIDForUpdateCalls() []struct {
	Ctx       context.Context
	MessageID string
} {
	mock.lockGetByMessageIDForUpdate.RLock()
	calls := mock.calls.GetByMessageIDForUpdate
	mock.lockGetByMessageIDForUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByTrackingCode(ctx context.Context, code string) (*domain.Item, error) {
	if mock.GetByTrackingCodeFunc == nil {
		panic("itemRepoMock.GetByTrackingCodeFunc: method is nil but itemRepo.GetByTrackingCode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockGetByTrackingCode.Lock()
	mock.calls.GetByTrackingCode = append(mock.calls.GetByTrackingCode, callInfo)
	mock.lockGetByTrackingCode.Unlock()
	return mock.GetByTrackingCodeFunc(ctx, code)
}

func (mock *itemRepoMock) GetByTrackingCodeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockGetByTrackingCode.RLock()
	calls := mock.calls.GetByTrackingCode
	mock.lockGetByTrackingCode.RUnlock()
	return calls
}

func (mock *itemRepoMock) MarkApproved(ctx context.Context, messageID string) (bool, error) {
	if mock.MarkApprovedFunc == nil {
		panic("itemRepoMock.MarkApprovedFunc: method is nil but itemRepo.MarkApproved was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MessageID string
	}{Ctx: ctx, MessageID: messageID}
	mock.lockMarkApproved.Lock()
	mock.calls.MarkApproved = append(mock.calls.MarkApproved, callInfo)
	mock.lockMarkApproved.Unlock()
	return mock.MarkApprovedFunc(ctx, messageID)
}

func (mock *itemRepoMock) MarkApprovedCalls() []struct {
	Ctx       context.Context
	MessageID string
} {
	mock.lockMarkApproved.RLock()
	calls := mock.calls.MarkApproved
	mock.lockMarkApproved.RUnlock()
	return calls
}
