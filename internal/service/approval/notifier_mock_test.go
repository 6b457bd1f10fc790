package approval

import (
	"context"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	ReplyInThreadFunc  func(ctx context.Context, to string, messageID string, text string) error
	SendDirectTextFunc func(ctx context.Context, to string, text string) error

	calls struct {
		ReplyInThread []struct {
			Ctx       context.Context
			To        string
			MessageID string
			Text      string
		}
		SendDirectText []struct {
			Ctx  context.Context
			To   string
			Text string
		}
	}
	lockReplyInThread  sync.RWMutex
	lockSendDirectText sync.RWMutex
}

func (mock *notifierMock) ReplyInThread(ctx context.Context, to string, messageID string, text string) error {
	if mock.ReplyInThreadFunc == nil {
		panic("notifierMock.ReplyInThreadFunc: method is nil but notifier.ReplyInThread was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		To        string
		MessageID string
		Text      string
	}{Ctx: ctx, To: to, MessageID: messageID, Text: text}
	mock.lockReplyInThread.Lock()
	mock.calls.ReplyInThread = append(mock.calls.ReplyInThread, callInfo)
	mock.lockReplyInThread.Unlock()
	return mock.ReplyInThreadFunc(ctx, to, messageID, text)
}

func (mock *notifierMock) ReplyInThreadCalls() []struct {
	Ctx       context.Context
	To        string
	MessageID string
	Text      string
} {
	mock.lockReplyInThread.RLock()
	calls := mock.calls.ReplyInThread
	mock.lockReplyInThread.RUnlock()
	return calls
}

func (mock *notifierMock) SendDirectText(ctx context.Context, to string, text string) error {
	if mock.SendDirectTextFunc == nil {
		panic("notifierMock.SendDirectTextFunc: method is nil but notifier.SendDirectText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		To   string
		Text string
	}{Ctx: ctx, To: to, Text: text}
	mock.lockSendDirectText.Lock()
	mock.calls.SendDirectText = append(mock.calls.SendDirectText, callInfo)
	mock.lockSendDirectText.Unlock()
	return mock.SendDirectTextFunc(ctx, to, text)
}

func (mock *notifierMock) SendDirectTextCalls() []struct {
	Ctx  context.Context
	To   string
	Text string
} {
	mock.lockSendDirectText.RLock()
	calls := mock.calls.SendDirectText
	mock.lockSendDirectText.RUnlock()
	return calls
}
