package domain

import "time"

// Item is one submission broadcast to the approvers' group.
// MessageID is the group message identifier returned by the broadcast and is
// the primary key; an Item never exists before a successful broadcast.
type Item struct {
	MessageID     string
	TrackingCode  string
	SubmitterID   string
	SubmitterName string
	GroupID       string
	EventName     string
	AssetType     string
	ContentKind   ContentKind
	LinkURL       *string
	Status        ItemStatus
	CreatedAt     time.Time
	ApprovedAt    *time.Time
}

// IsApproved reports whether the item already crossed the quorum.
func (i *Item) IsApproved() bool {
	return i.Status == ItemStatusApproved
}

// Vote is one approver's current endorsement of one item.
type Vote struct {
	MessageID  string
	ApproverID string
	CreatedAt  time.Time
}
