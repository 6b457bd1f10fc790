package webhook

import (
	"context"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"github.com/heartmarshall/heart-approvals/internal/service/approval"
	"sync"
)

var _ reactionHandler = &reactionHandlerMock{}

type reactionHandlerMock struct {
	HandleReactionFunc func(ctx context.Context, ev domain.ReactionEvent) (approval.Result, error)

	calls struct {
		HandleReaction []struct {
			Ctx context.Context
			Ev  domain.ReactionEvent
		}
	}
	lockHandleReaction sync.RWMutex
}

func (mock *reactionHandlerMock) HandleReaction(ctx context.Context, ev domain.ReactionEvent) (approval.Result, error) {
	if mock.HandleReactionFunc == nil {
		panic("reactionHandlerMock.HandleReactionFunc: method is nil but reactionHandler.HandleReaction was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.ReactionEvent
	}{Ctx: ctx, Ev: ev}
	mock.lockHandleReaction.Lock()
	mock.calls.HandleReaction = append(mock.calls.HandleReaction, callInfo)
	mock.lockHandleReaction.Unlock()
	return mock.HandleReactionFunc(ctx, ev)
}

func (mock *reactionHandlerMock) HandleReactionCalls() []struct {
	Ctx context.Context
	Ev  domain.ReactionEvent
} {
	mock.lockHandleReaction.RLock()
	calls := mock.calls.HandleReaction
	mock.lockHandleReaction.RUnlock()
	return calls
}
