package dialog

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/heart-approvals/internal/domain"
	"github.com/heartmarshall/heart-approvals/internal/service/tracking"
)

type intentKind int

const (
	intentIgnore intentKind = iota
	intentStatus
	intentContent
	intentText
)

// intent is an inbound message reduced to what the dialog reacts to.
type intent struct {
	kind    intentKind
	code    string
	content domain.Content
	text    string
}

var urlPattern = regexp.MustCompile(`(?i)https?://\S+`)

const (
	defaultDocumentMime = "application/octet-stream"
	defaultVideoMime    = "video/mp4"
	defaultImageMime    = "image/jpeg"
)

// classify maps a direct message onto an intent. A status command wins over
// a URL in the same text; any URL makes a text a link submission.
func classify(ev domain.MessageEvent) intent {
	if kind, ok := ev.Kind.ContentKind(); ok {
		return intent{kind: intentContent, content: domain.Content{
			Kind:      kind,
			MediaRef:  ev.MediaRef,
			MediaMime: mimeOrDefault(kind, ev.MediaMime),
			Filename:  ev.Filename,
		}}
	}

	if ev.Kind != domain.MessageKindText {
		return intent{kind: intentIgnore}
	}

	if code, ok := tracking.Find(ev.Text); ok {
		return intent{kind: intentStatus, code: code}
	}

	if url := urlPattern.FindString(ev.Text); url != "" {
		return intent{kind: intentContent, content: domain.Content{
			Kind:    domain.ContentKindLink,
			LinkURL: url,
		}}
	}

	return intent{kind: intentText, text: strings.TrimSpace(ev.Text)}
}

func mimeOrDefault(kind domain.ContentKind, mime string) string {
	if mime != "" {
		return mime
	}
	switch kind {
	case domain.ContentKindDocument:
		return defaultDocumentMime
	case domain.ContentKindVideo:
		return defaultVideoMime
	default:
		return defaultImageMime
	}
}
