package dialog

import (
	"context"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"sync"
)

var _ messenger = &messengerMock{}

type messengerMock struct {
	SendDirectTextFunc     func(ctx context.Context, to string, text string) error
	SendGroupTextFunc      func(ctx context.Context, groupID string, text string) (string, error)
	SendGroupMediaFunc     func(ctx context.Context, groupID string, media domain.OutboundMedia) (string, error)
	FetchMediaMetadataFunc func(ctx context.Context, mediaID string) (domain.MediaMetadata, error)
	DownloadBinaryFunc     func(ctx context.Context, url string) ([]byte, error)
	UploadBinaryFunc       func(ctx context.Context, data []byte, mimeType string) (string, error)

	calls struct {
		SendDirectText []struct {
			Ctx  context.Context
			To   string
			Text string
		}
		SendGroupText []struct {
			Ctx     context.Context
			GroupID string
			Text    string
		}
		SendGroupMedia []struct {
			Ctx     context.Context
			GroupID string
			Media   domain.OutboundMedia
		}
		FetchMediaMetadata []struct {
			Ctx     context.Context
			MediaID string
		}
		DownloadBinary []struct {
			Ctx context.Context
			Url string
		}
		UploadBinary []struct {
			Ctx      context.Context
			Data     []byte
			MimeType string
		}
	}
	lockSendDirectText     sync.RWMutex
	lockSendGroupText      sync.RWMutex
	lockSendGroupMedia     sync.RWMutex
	lockFetchMediaMetadata sync.RWMutex
	lockDownloadBinary     sync.RWMutex
	lockUploadBinary       sync.RWMutex
}

func (mock *messengerMock) SendDirectText(ctx context.Context, to string, text string) error {
	if mock.SendDirectTextFunc == nil {
		panic("messengerMock.SendDirectTextFunc: method is nil but messenger.SendDirectText was just called")
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

func (mock *messengerMock) SendDirectTextCalls() []struct {
	Ctx  context.Context
	To   string
	Text string
} {
	mock.lockSendDirectText.RLock()
	calls := mock.calls.SendDirectText
	mock.lockSendDirectText.RUnlock()
	return calls
}

func (mock *messengerMock) SendGroupText(ctx context.Context, groupID string, text string) (string, error) {
	if mock.SendGroupTextFunc == nil {
		panic("messengerMock.SendGroupTextFunc: method is nil but messenger.SendGroupText was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID string
		Text    string
	}{Ctx: ctx, GroupID: groupID, Text: text}
	mock.lockSendGroupText.Lock()
	mock.calls.SendGroupText = append(mock.calls.SendGroupText, callInfo)
	mock.lockSendGroupText.Unlock()
	return mock.SendGroupTextFunc(ctx, groupID, text)
}

func (mock *messengerMock) SendGroupTextCalls() []struct {
	Ctx     context.Context
	GroupID string
	Text    string
} {
	mock.lockSendGroupText.RLock()
	calls := mock.calls.SendGroupText
	mock.lockSendGroupText.RUnlock()
	return calls
}

func (mock *messengerMock) SendGroupMedia(ctx context.Context, groupID string, media domain.OutboundMedia) (string, error) {
	if mock.SendGroupMediaFunc == nil {
		panic("messengerMock.SendGroupMediaFunc: method is nil but messenger.SendGroupMedia was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID string
		Media   domain.OutboundMedia
	}{Ctx: ctx, GroupID: groupID, Media: media}
	mock.lockSendGroupMedia.Lock()
	mock.calls.SendGroupMedia = append(mock.calls.SendGroupMedia, callInfo)
	mock.lockSendGroupMedia.Unlock()
	return mock.SendGroupMediaFunc(ctx, groupID, media)
}

func (mock *messengerMock) SendGroupMediaCalls() []struct {
	Ctx     context.Context
	GroupID string
	Media   domain.OutboundMedia
} {
	mock.lockSendGroupMedia.RLock()
	calls := mock.calls.SendGroupMedia
	mock.lockSendGroupMedia.RUnlock()
	return calls
}

func (mock *messengerMock) FetchMediaMetadata(ctx context.Context, mediaID string) (domain.MediaMetadata, error) {
	if mock.FetchMediaMetadataFunc == nil {
		panic("messengerMock.FetchMediaMetadataFunc: method is nil but messenger.FetchMediaMetadata was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		MediaID string
	}{Ctx: ctx, MediaID: mediaID}
	mock.lockFetchMediaMetadata.Lock()
	mock.calls.FetchMediaMetadata = append(mock.calls.FetchMediaMetadata, callInfo)
	mock.lockFetchMediaMetadata.Unlock()
	return mock.FetchMediaMetadataFunc(ctx, mediaID)
}

func (mock *messengerMock) FetchMediaMetadataCalls() []struct {
	Ctx     context.Context
	MediaID string
} {
	mock.lockFetchMediaMetadata.RLock()
	calls := mock.calls.FetchMediaMetadata
	mock.lockFetchMediaMetadata.RUnlock()
	return calls
}

func (mock *messengerMock) DownloadBinary(ctx context.Context, url string) ([]byte, error) {
	if mock.DownloadBinaryFunc == nil {
		panic("messengerMock.DownloadBinaryFunc: method is nil but messenger.DownloadBinary was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Url string
	}{Ctx: ctx, Url: url}
	mock.lockDownloadBinary.Lock()
	mock.calls.DownloadBinary = append(mock.calls.DownloadBinary, callInfo)
	mock.lockDownloadBinary.Unlock()
	return mock.DownloadBinaryFunc(ctx, url)
}

func (mock *messengerMock) DownloadBinaryCalls() []struct {
	Ctx context.Context
	Url string
} {
	mock.lockDownloadBinary.RLock()
	calls := mock.calls.DownloadBinary
	mock.lockDownloadBinary.RUnlock()
	return calls
}

func (mock *messengerMock) UploadBinary(ctx context.Context, data []byte, mimeType string) (string, error) {
	if mock.UploadBinaryFunc == nil {
		panic("messengerMock.UploadBinaryFunc: method is nil but messenger.UploadBinary was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Data     []byte
		MimeType string
	}{Ctx: ctx, Data: data, MimeType: mimeType}
	mock.lockUploadBinary.Lock()
	mock.calls.UploadBinary = append(mock.calls.UploadBinary, callInfo)
	mock.lockUploadBinary.Unlock()
	return mock.UploadBinaryFunc(ctx, data, mimeType)
}

func (mock *messengerMock) UploadBinaryCalls() []struct {
	Ctx      context.Context
	Data     []byte
	MimeType string
} {
	mock.lockUploadBinary.RLock()
	calls := mock.calls.UploadBinary
	mock.lockUploadBinary.RUnlock()
	return calls
}
