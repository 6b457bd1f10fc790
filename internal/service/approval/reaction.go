package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/heart-approvals/internal/domain"
)

// Outcome classifies how a reaction was handled.
type Outcome string

const (
	OutcomeIgnoredEmoji Outcome = "ignored_emoji"
	OutcomeIgnoredActor Outcome = "ignored_actor"
	OutcomeIgnoredItem  Outcome = "ignored_item"
	OutcomeIgnoredGroup Outcome = "ignored_group"
	OutcomeProgress     Outcome = "progress"
	OutcomeApproved     Outcome = "approved"
)

func (o Outcome) String() string { return string(o) }

// Ignored reports whether the reaction was discarded without touching the ledger.
func (o Outcome) Ignored() bool {
	switch o {
	case OutcomeIgnoredEmoji, OutcomeIgnoredActor, OutcomeIgnoredItem, OutcomeIgnoredGroup:
		return true
	}
	return false
}

// Result is the outcome of one reaction.
// Count is the vote count after the ledger mutation; Approved is true only
// for the reaction that moved the item to APPROVED.
type Result struct {
	Outcome  Outcome
	Count    int
	Approved bool
}

// HandleReaction applies one reaction to the ledger.
//
// The item row is locked for the duration of the ledger mutation, the count
// and the status transition, so concurrent reactions on one item are
// linearized and exactly one of them observes the transition. Notifications
// are sent after commit; their failure leaves the stored state untouched and
// is returned as a *domain.TransportError.
func (s *Service) HandleReaction(ctx context.Context, ev domain.ReactionEvent) (Result, error) {
	if err := ev.Validate(); err != nil {
		return Result{}, err
	}

	// A withdrawn reaction arrives without an emoji; removing a vote that
	// does not exist is a no-op.
	withdrawn := ev.Action == domain.ReactionRemoved && ev.Emoji == ""
	if !withdrawn && !domain.IsApprovalEmoji(ev.Emoji) {
		return s.ignore(ctx, ev, OutcomeIgnoredEmoji), nil
	}
	if !s.policy.IsApprover(ev.ActorID) {
		return s.ignore(ctx, ev, OutcomeIgnoredActor), nil
	}

	var (
		item         *domain.Item
		result       Result
		transitioned bool
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.items.GetByMessageIDForUpdate(ctx, ev.TargetMessageID)
		if errors.Is(err, domain.ErrNotFound) {
			result.Outcome = OutcomeIgnoredItem
			return nil
		}
		if err != nil {
			return fmt.Errorf("lock item: %w", err)
		}

		if s.policy.GroupID != "" && ev.OriginGroupID != "" && ev.OriginGroupID != item.GroupID {
			result.Outcome = OutcomeIgnoredGroup
			return nil
		}

		if ev.Action == domain.ReactionRemoved {
			_, err = s.votes.Remove(ctx, item.MessageID, ev.ActorID)
		} else {
			_, err = s.votes.Add(ctx, item.MessageID, ev.ActorID)
		}
		if err != nil {
			return fmt.Errorf("%s vote: %w", ev.Action, err)
		}

		result.Count, err = s.votes.Count(ctx, item.MessageID)
		if err != nil {
			return fmt.Errorf("count votes: %w", err)
		}

		if result.Count >= s.policy.RequiredHearts && !item.IsApproved() {
			transitioned, err = s.items.MarkApproved(ctx, item.MessageID)
			if err != nil {
				return fmt.Errorf("mark approved: %w", err)
			}
		}

		result.Outcome = OutcomeProgress
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("approval: reaction on %s: %w", ev.TargetMessageID, err)
	}

	if result.Outcome.Ignored() {
		return s.ignore(ctx, ev, result.Outcome), nil
	}

	if transitioned {
		result.Outcome = OutcomeApproved
		result.Approved = true
		s.metrics.ItemApproved()

		s.log.InfoContext(ctx, "item approved",
			slog.String("message_id", item.MessageID),
			slog.String("tracking_code", item.TrackingCode),
			slog.Int("count", result.Count),
		)

		return result, s.notifyApproved(ctx, item, result.Count)
	}

	s.log.DebugContext(ctx, "vote recorded",
		slog.String("message_id", item.MessageID),
		slog.String("approver", ev.ActorID),
		slog.String("action", ev.Action.String()),
		slog.Int("count", result.Count),
	)

	return result, s.notifier.ReplyInThread(ctx, item.GroupID, item.MessageID,
		progressText(item.TrackingCode, result.Count, s.policy.Total()))
}

func (s *Service) notifyApproved(ctx context.Context, item *domain.Item, count int) error {
	total := s.policy.Total()

	replyErr := s.notifier.ReplyInThread(ctx, item.GroupID, item.MessageID,
		approvedReplyText(item.TrackingCode, count, total))

	var dmErr error
	if item.SubmitterID != "" {
		dmErr = s.notifier.SendDirectText(ctx, item.SubmitterID,
			approvedDirectText(item.TrackingCode, count, total))
	}

	return errors.Join(replyErr, dmErr)
}

func (s *Service) ignore(ctx context.Context, ev domain.ReactionEvent, outcome Outcome) Result {
	s.log.DebugContext(ctx, "reaction ignored",
		slog.String("outcome", outcome.String()),
		slog.String("message_id", ev.TargetMessageID),
		slog.String("actor", ev.ActorID),
	)
	return Result{Outcome: outcome}
}
