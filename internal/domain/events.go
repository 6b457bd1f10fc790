package domain

import (
	"strings"
	"time"
)

// MessageEvent is an inbound message abstracted from the transport wire format.
type MessageEvent struct {
	MessageID  string
	SenderID   string
	SenderName string
	IsGroup    bool
	Kind       MessageKind
	Text       string
	MediaRef   string
	MediaMime  string
	Filename   string
}

// DisplayName returns the sender's profile name, falling back to the sender id.
func (e MessageEvent) DisplayName() string {
	if name := strings.TrimSpace(e.SenderName); name != "" {
		return name
	}
	return e.SenderID
}

// Validate reports ErrMalformedEvent when fields required for routing are missing.
func (e MessageEvent) Validate() error {
	if e.SenderID == "" || !e.Kind.IsValid() {
		return ErrMalformedEvent
	}
	if _, ok := e.Kind.ContentKind(); ok && e.MediaRef == "" {
		return ErrMalformedEvent
	}
	return nil
}

// ReactionEvent is an inbound reaction on a group message.
type ReactionEvent struct {
	TargetMessageID string
	ActorID         string
	Emoji           string
	Action          ReactionAction
	OriginGroupID   string
}

// Validate reports ErrMalformedEvent when the target or actor is missing.
func (e ReactionEvent) Validate() error {
	if e.TargetMessageID == "" || e.ActorID == "" || !e.Action.IsValid() {
		return ErrMalformedEvent
	}
	return nil
}

// Delivery is one webhook POST: the unit of asynchronous processing.
// Messages are handled before reactions, each list in order.
type Delivery struct {
	ID         string
	Messages   []MessageEvent
	Reactions  []ReactionEvent
	ReceivedAt time.Time
}

// Empty reports whether the delivery carries nothing to process.
func (d Delivery) Empty() bool {
	return len(d.Messages) == 0 && len(d.Reactions) == 0
}

const (
	heartEmoji        = "\u2764"
	variationSelector = "\uFE0F"
)

// IsApprovalEmoji reports whether emoji is the red heart, with or without
// the emoji-presentation variation selector.
func IsApprovalEmoji(emoji string) bool {
	return strings.ReplaceAll(emoji, variationSelector, "") == heartEmoji
}
