package domain

import "time"

// Content references what a submitter sent: a transport media id for
// image/video/document, or a URL for links.
type Content struct {
	Kind      ContentKind
	MediaRef  string
	MediaMime string
	Filename  string
	LinkURL   string
}

// Session is the in-progress dialog of one submitter.
// EventName is set once the step has moved past ASK_EVENT; AssetType is set
// only when the dialog is ready to finalize.
type Session struct {
	SubmitterID string
	Step        SessionStep
	Content     Content
	EventName   *string
	AssetType   *string
	UpdatedAt   time.Time
}

// NewSession opens a dialog at ASK_EVENT for the given content.
// It is also used to restart an open dialog: the previous session is
// overwritten, never merged.
func NewSession(submitterID string, content Content) *Session {
	return &Session{
		SubmitterID: submitterID,
		Step:        SessionStepAskEvent,
		Content:     content,
		UpdatedAt:   time.Now().UTC(),
	}
}

// WithEventName returns a copy of the session advanced to ASK_TYPE.
func (s Session) WithEventName(name string) *Session {
	s.EventName = &name
	s.AssetType = nil
	s.Step = SessionStepAskType
	s.UpdatedAt = time.Now().UTC()
	return &s
}

// WithAssetType returns a copy of the session that is ready to finalize.
func (s Session) WithAssetType(assetType string) *Session {
	s.AssetType = &assetType
	s.UpdatedAt = time.Now().UTC()
	return &s
}
