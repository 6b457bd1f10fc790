package domain

// MediaMetadata describes a transport-hosted binary.
type MediaMetadata struct {
	URL      string
	MimeType string
	Filename string
	FileSize int64
}

// OutboundMedia is a media message to broadcast to a group.
// Filename is only used for documents.
type OutboundMedia struct {
	Kind     ContentKind
	MediaID  string
	Caption  string
	Filename string
}
