// Package approval counts heart reactions from the approver panel and moves
// items to APPROVED once the quorum is reached.
package approval

import (
	"context"
	"log/slog"
	"slices"

	"github.com/heartmarshall/heart-approvals/internal/config"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"github.com/heartmarshall/heart-approvals/internal/metrics"
)

type itemRepo interface {
	GetByMessageIDForUpdate(ctx context.Context, messageID string) (*domain.Item, error)
	GetByTrackingCode(ctx context.Context, code string) (*domain.Item, error)
	MarkApproved(ctx context.Context, messageID string) (bool, error)
}

type voteRepo interface {
	Add(ctx context.Context, messageID, approverID string) (bool, error)
	Remove(ctx context.Context, messageID, approverID string) (bool, error)
	Count(ctx context.Context, messageID string) (int, error)
	ListVoters(ctx context.Context, messageID string) ([]string, error)
}

type notifier interface {
	ReplyInThread(ctx context.Context, to, messageID, text string) error
	SendDirectText(ctx context.Context, to, text string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Policy is the immutable approval configuration.
type Policy struct {
	// GroupID is the configured destination group; empty disables the origin check.
	GroupID        string
	Approvers      []string
	RequiredHearts int
}

// PolicyFromConfig builds a Policy from validated configuration.
func PolicyFromConfig(cfg config.ApprovalConfig) Policy {
	return Policy{
		GroupID:        cfg.GroupID,
		Approvers:      slices.Clone(cfg.Approvers),
		RequiredHearts: cfg.RequiredHearts,
	}
}

// IsApprover reports whether id is on the panel.
func (p Policy) IsApprover(id string) bool {
	return slices.Contains(p.Approvers, id)
}

// Total is the panel size shown as the quorum denominator.
func (p Policy) Total() int {
	return len(p.Approvers)
}

// Service applies approver reactions to the vote ledger.
type Service struct {
	policy   Policy
	items    itemRepo
	votes    voteRepo
	tx       txManager
	notifier notifier
	metrics  *metrics.Registry
	log      *slog.Logger
}

// NewService creates a new approval service. reg may be nil.
func NewService(
	log *slog.Logger,
	policy Policy,
	items itemRepo,
	votes voteRepo,
	tx txManager,
	notifier notifier,
	reg *metrics.Registry,
) *Service {
	return &Service{
		policy:   policy,
		items:    items,
		votes:    votes,
		tx:       tx,
		notifier: notifier,
		metrics:  reg,
		log:      log.With("service", "approval"),
	}
}
