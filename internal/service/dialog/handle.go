package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/heart-approvals/internal/domain"
)

// HandleMessage advances the dialog of the message's sender.
// Group messages are ignored. Messages of one sender are handled one at a time.
func (s *Service) HandleMessage(ctx context.Context, ev domain.MessageEvent) error {
	if ev.IsGroup {
		s.log.DebugContext(ctx, "group message ignored", slog.String("message_id", ev.MessageID))
		return nil
	}
	if err := ev.Validate(); err != nil {
		return err
	}

	unlock := s.locks.Lock(ev.SenderID)
	defer unlock()

	in := classify(ev)

	switch in.kind {
	case intentStatus:
		return s.replyStatus(ctx, ev, in.code)
	case intentIgnore:
		s.log.DebugContext(ctx, "unsupported message ignored",
			slog.String("message_id", ev.MessageID),
			slog.String("kind", ev.Kind.String()),
		)
		return nil
	}

	sess, err := s.sessions.Get(ctx, ev.SenderID)
	if errors.Is(err, domain.ErrNotFound) {
		sess = nil
	} else if err != nil {
		return fmt.Errorf("dialog: load session: %w", err)
	}

	if in.kind == intentContent {
		return s.restart(ctx, ev, sess, in.content)
	}

	switch {
	case sess == nil:
		return s.onIdle(ctx, ev)
	case sess.Step == domain.SessionStepAskEvent:
		return s.onAskEvent(ctx, ev, sess, in.text)
	case sess.Step == domain.SessionStepAskType:
		return s.onAskType(ctx, ev, sess, in.text)
	default:
		return fmt.Errorf("dialog: session %s: unknown step %q", sess.SubmitterID, sess.Step)
	}
}

// onIdle answers free text from a submitter with no open dialog.
func (s *Service) onIdle(ctx context.Context, ev domain.MessageEvent) error {
	return s.messenger.SendDirectText(ctx, ev.SenderID, msgInstructions)
}

// restart opens a dialog for content, discarding any open one.
func (s *Service) restart(ctx context.Context, ev domain.MessageEvent, prev *domain.Session, content domain.Content) error {
	if err := s.sessions.Upsert(ctx, domain.NewSession(ev.SenderID, content)); err != nil {
		return fmt.Errorf("dialog: open session: %w", err)
	}

	s.log.InfoContext(ctx, "dialog started",
		slog.String("submitter", ev.SenderID),
		slog.String("content_kind", content.Kind.String()),
		slog.Bool("restart", prev != nil),
	)

	prompt := msgAskEvent
	if prev != nil {
		prompt = restartPrompt(content.Kind)
	}
	return s.messenger.SendDirectText(ctx, ev.SenderID, prompt)
}

func (s *Service) onAskEvent(ctx context.Context, ev domain.MessageEvent, sess *domain.Session, text string) error {
	if text == "" {
		return s.messenger.SendDirectText(ctx, ev.SenderID, msgAskEvent)
	}

	if err := s.sessions.Upsert(ctx, sess.WithEventName(text)); err != nil {
		return fmt.Errorf("dialog: store event name: %w", err)
	}

	return s.messenger.SendDirectText(ctx, ev.SenderID, msgAskType)
}

func (s *Service) onAskType(ctx context.Context, ev domain.MessageEvent, sess *domain.Session, text string) error {
	if sess.EventName == nil {
		return s.onAskEvent(ctx, ev, sess, text)
	}
	if text == "" {
		return s.messenger.SendDirectText(ctx, ev.SenderID, msgAskType)
	}

	return s.finalize(ctx, ev, sess.WithAssetType(text))
}

// replyStatus answers a status command. It never touches the session.
func (s *Service) replyStatus(ctx context.Context, ev domain.MessageEvent, code string) error {
	summary, err := s.status.Status(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return s.messenger.SendDirectText(ctx, ev.SenderID, notFoundText(code))
	}
	if err != nil {
		notifyErr := s.messenger.SendDirectText(ctx, ev.SenderID, msgStatusFailed)
		return errors.Join(fmt.Errorf("dialog: status %s: %w", code, err), notifyErr)
	}

	return s.messenger.SendDirectText(ctx, ev.SenderID, statusText(code, summary))
}
