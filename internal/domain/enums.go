package domain

// ContentKind is the kind of content a submitter sent for approval.
type ContentKind string

const (
	ContentKindImage    ContentKind = "image"
	ContentKindVideo    ContentKind = "video"
	ContentKindDocument ContentKind = "document"
	ContentKindLink     ContentKind = "link"
)

func (k ContentKind) String() string { return string(k) }

func (k ContentKind) IsValid() bool {
	switch k {
	case ContentKindImage, ContentKindVideo, ContentKindDocument, ContentKindLink:
		return true
	}
	return false
}

// IsMedia reports whether the content is a binary hosted by the transport.
func (k ContentKind) IsMedia() bool {
	return k == ContentKindImage || k == ContentKindVideo || k == ContentKindDocument
}

// ItemStatus is the approval status of an Item. It only moves PENDING -> APPROVED.
type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "PENDING"
	ItemStatusApproved ItemStatus = "APPROVED"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusApproved:
		return true
	}
	return false
}

// SessionStep is the dialog state of an open Session.
// The absence of a session is the implicit idle state.
type SessionStep string

const (
	SessionStepAskEvent SessionStep = "ASK_EVENT"
	SessionStepAskType  SessionStep = "ASK_TYPE"
)

func (s SessionStep) String() string { return string(s) }

func (s SessionStep) IsValid() bool {
	switch s {
	case SessionStepAskEvent, SessionStepAskType:
		return true
	}
	return false
}

// MessageKind classifies an inbound direct message.
type MessageKind string

const (
	MessageKindText        MessageKind = "text"
	MessageKindImage       MessageKind = "image"
	MessageKindVideo       MessageKind = "video"
	MessageKindDocument    MessageKind = "document"
	MessageKindUnsupported MessageKind = "unsupported"
)

func (k MessageKind) String() string { return string(k) }

func (k MessageKind) IsValid() bool {
	switch k {
	case MessageKindText, MessageKindImage, MessageKindVideo, MessageKindDocument, MessageKindUnsupported:
		return true
	}
	return false
}

// ContentKind returns the content kind carried by a media message.
// ok is false for text and unsupported messages.
func (k MessageKind) ContentKind() (ContentKind, bool) {
	switch k {
	case MessageKindImage:
		return ContentKindImage, true
	case MessageKindVideo:
		return ContentKindVideo, true
	case MessageKindDocument:
		return ContentKindDocument, true
	}
	return "", false
}

// ReactionAction tells whether a reaction was placed or withdrawn.
type ReactionAction string

const (
	ReactionAdded   ReactionAction = "added"
	ReactionRemoved ReactionAction = "removed"
)

func (a ReactionAction) String() string { return string(a) }

func (a ReactionAction) IsValid() bool {
	return a == ReactionAdded || a == ReactionRemoved
}
