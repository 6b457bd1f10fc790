// Package dialog runs the per-submitter intake conversation: it collects the
// content, the event name and the asset type, then broadcasts the submission
// to the approvers' group.
package dialog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/heart-approvals/internal/config"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"github.com/heartmarshall/heart-approvals/internal/service/approval"
)

type sessionRepo interface {
	Get(ctx context.Context, submitterID string) (*domain.Session, error)
	Upsert(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, submitterID string) error
}

type itemRepo interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
}

type messenger interface {
	SendDirectText(ctx context.Context, to, text string) error
	SendGroupText(ctx context.Context, groupID, text string) (string, error)
	SendGroupMedia(ctx context.Context, groupID string, media domain.OutboundMedia) (string, error)
	FetchMediaMetadata(ctx context.Context, mediaID string) (domain.MediaMetadata, error)
	DownloadBinary(ctx context.Context, url string) ([]byte, error)
	UploadBinary(ctx context.Context, data []byte, mimeType string) (string, error)
}

type statusReader interface {
	Status(ctx context.Context, trackingCode string) (*approval.Summary, error)
}

type codeGenerator interface {
	Code(eventName string) string
}

// Settings is the immutable dialog configuration.
type Settings struct {
	// GroupID is the broadcast destination; empty aborts finalize.
	GroupID        string
	ApproverCount  int
	RequiredHearts int
}

// SettingsFromConfig builds Settings from validated configuration.
func SettingsFromConfig(cfg config.ApprovalConfig) Settings {
	return Settings{
		GroupID:        cfg.GroupID,
		ApproverCount:  len(cfg.Approvers),
		RequiredHearts: cfg.RequiredHearts,
	}
}

// Service drives submitter dialogs.
type Service struct {
	settings  Settings
	sessions  sessionRepo
	items     itemRepo
	messenger messenger
	status    statusReader
	codes     codeGenerator
	locks     *keyedMutex
	log       *slog.Logger
}

// NewService creates a new dialog service.
func NewService(
	log *slog.Logger,
	settings Settings,
	sessions sessionRepo,
	items itemRepo,
	messenger messenger,
	status statusReader,
	codes codeGenerator,
) *Service {
	return &Service{
		settings:  settings,
		sessions:  sessions,
		items:     items,
		messenger: messenger,
		status:    status,
		codes:     codes,
		locks:     newKeyedMutex(),
		log:       log.With("service", "dialog"),
	}
}
