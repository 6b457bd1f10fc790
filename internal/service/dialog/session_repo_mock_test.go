package dialog

import (
	"context"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"sync"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetFunc    func(ctx context.Context, submitterID string) (*domain.Session, error)
	UpsertFunc func(ctx context.Context, s *domain.Session) error
	DeleteFunc func(ctx context.Context, submitterID string) error

	calls struct {
		Get []struct {
			Ctx         context.Context
			SubmitterID string
		}
		Upsert []struct {
			Ctx context.Context
			S   *domain.Session
		}
		Delete []struct {
			Ctx         context.Context
			SubmitterID string
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *sessionRepoMock) Get(ctx context.Context, submitterID string) (*domain.Session, error) {
	if mock.GetFunc == nil {
		panic("sessionRepoMock.GetFunc: method is nil but sessionRepo.Get was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		SubmitterID string
	}{Ctx: ctx, SubmitterID: submitterID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, submitterID)
}

func (mock *sessionRepoMock) GetCalls() []struct {
	Ctx         context.Context
	SubmitterID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Upsert(ctx context.Context, s *domain.Session) error {
	if mock.UpsertFunc == nil {
		panic("sessionRepoMock.UpsertFunc: method is nil but sessionRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Session
	}{Ctx: ctx, S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *sessionRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   *domain.Session
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Delete(ctx context.Context, submitterID string) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		SubmitterID string
	}{Ctx: ctx, SubmitterID: submitterID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, submitterID)
}

func (mock *sessionRepoMock) DeleteCalls() []struct {
	Ctx         context.Context
	SubmitterID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
