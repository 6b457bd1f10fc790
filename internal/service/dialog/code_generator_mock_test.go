package dialog

import (
	"sync"
)

var _ codeGenerator = &codeGeneratorMock{}

type codeGeneratorMock struct {
	CodeFunc func(eventName string) string

	calls struct {
		Code []struct {
			EventName string
		}
	}
	lockCode sync.RWMutex
}

func (mock *codeGeneratorMock) Code(eventName string) string {
	if mock.CodeFunc == nil {
		panic("codeGeneratorMock.CodeFunc: method is nil but codeGenerator.Code was just called")
	}
	callInfo := struct {
		EventName string
	}{EventName: eventName}
	mock.lockCode.Lock()
	mock.calls.Code = append(mock.calls.Code, callInfo)
	mock.lockCode.Unlock()
	return mock.CodeFunc(eventName)
}

func (mock *codeGeneratorMock) CodeCalls() []struct {
	EventName string
} {
	mock.lockCode.RLock()
	calls := mock.calls.Code
	mock.lockCode.RUnlock()
	return calls
}
