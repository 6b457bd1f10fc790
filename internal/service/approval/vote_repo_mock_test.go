package approval

import (
	"context"
	"sync"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	AddFunc        func(ctx context.Context, messageID string, approverID string) (bool, error)
	RemoveFunc     func(ctx context.Context, messageID string, approverID string) (bool, error)
	CountFunc      func(ctx context.Context, messageID string) (int, error)
	ListVotersFunc func(ctx context.Context, messageID string) ([]string, error)

	calls struct {
		Add []struct {
			Ctx        context.Context
			MessageID  string
			ApproverID string
		}
		Remove []struct {
			Ctx        context.Context
			MessageID  string
			ApproverID string
		}
		Count []struct {
			Ctx       context.Context
			MessageID string
		}
		ListVoters []struct {
			Ctx       context.Context
			MessageID string
		}
	}
	lockAdd        sync.RWMutex
	lockRemove     sync.RWMutex
	lockCount      sync.RWMutex
	lockListVoters sync.RWMutex
}

func (mock *voteRepoMock) Add(ctx context.Context, messageID string, approverID string) (bool, error) {
	if mock.AddFunc == nil {
		panic("voteRepoMock.AddFunc: method is nil but voteRepo.Add was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MessageID  string
		ApproverID string
	}{Ctx: ctx, MessageID: messageID, ApproverID: approverID}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, messageID, approverID)
}

func (mock *voteRepoMock) AddCalls() []struct {
	Ctx        context.Context
	MessageID  string
	ApproverID string
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *voteRepoMock) Remove(ctx context.Context, messageID string, approverID string) (bool, error) {
	if mock.RemoveFunc == nil {
		panic("voteRepoMock.RemoveFunc: method is nil but voteRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MessageID  string
		ApproverID string
	}{Ctx: ctx, MessageID: messageID, ApproverID: approverID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, messageID, approverID)
}

func (mock *voteRepoMock) RemoveCalls() []struct {
	Ctx        context.Context
	MessageID  string
	ApproverID string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *voteRepoMock) Count(ctx context.Context, messageID string) (int, error) {
	if mock.CountFunc == nil {
		panic("voteRepoMock.CountFunc: method is nil but voteRepo.Count was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MessageID string
	}{Ctx: ctx, MessageID: messageID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, messageID)
}

func (mock *voteRepoMock) CountCalls() []struct {
	Ctx       context.Context
	MessageID string
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *voteRepoMock) ListVoters(ctx context.Context, messageID string) ([]string, error) {
	if mock.ListVotersFunc == nil {
		panic("voteRepoMock.ListVotersFunc: method is nil but voteRepo.ListVoters was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MessageID string
	}{Ctx: ctx, MessageID: messageID}
	mock.lockListVoters.Lock()
	mock.calls.ListVoters = append(mock.calls.ListVoters, callInfo)
	mock.lockListVoters.Unlock()
	return mock.ListVotersFunc(ctx, messageID)
}

func (mock *voteRepoMock) ListVotersCalls() []struct {
	Ctx       context.Context
	MessageID string
} {
	mock.lockListVoters.RLock()
	calls := mock.calls.ListVoters
	mock.lockListVoters.RUnlock()
	return calls
}
