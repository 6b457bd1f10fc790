package dialog

import (
	"context"
	"github.com/heartmarshall/heart-approvals/internal/service/approval"
	"sync"
)

var _ statusReader = &statusReaderMock{}

type statusReaderMock struct {
	StatusFunc func(ctx context.Context, trackingCode string) (*approval.Summary, error)

	calls struct {
		Status []struct {
			Ctx          context.Context
			TrackingCode string
		}
	}
	lockStatus sync.RWMutex
}

func (mock *statusReaderMock) Status(ctx context.Context, trackingCode string) (*approval.Summary, error) {
	if mock.StatusFunc == nil {
		panic("statusReaderMock.StatusFunc: method is nil but statusReader.Status was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		TrackingCode string
	}{Ctx: ctx, TrackingCode: trackingCode}
	mock.lockStatus.Lock()
	mock.calls.Status = append(mock.calls.Status, callInfo)
	mock.lockStatus.Unlock()
	return mock.StatusFunc(ctx, trackingCode)
}

func (mock *statusReaderMock) StatusCalls() []struct {
	Ctx          context.Context
	TrackingCode string
} {
	mock.lockStatus.RLock()
	calls := mock.calls.Status
	mock.lockStatus.RUnlock()
	return calls
}
