package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/heart-approvals/internal/domain"
)

const defaultDocumentName = "file.pdf"

// finalize broadcasts a completed dialog and records the Item.
//
// No Item exists without a successful broadcast. When the broadcast fails the
// session stays at ASK_TYPE so resending the type retries.
func (s *Service) finalize(ctx context.Context, ev domain.MessageEvent, sess *domain.Session) error {
	if s.settings.GroupID == "" {
		if err := s.sessions.Delete(ctx, ev.SenderID); err != nil {
			return fmt.Errorf("dialog: drop session: %w", err)
		}
		notifyErr := s.messenger.SendDirectText(ctx, ev.SenderID, msgNoGroup)
		return errors.Join(fmt.Errorf("dialog: finalize: %w", domain.ErrGroupNotConfigured), notifyErr)
	}

	eventName := *sess.EventName
	assetType := *sess.AssetType
	submitter := ev.DisplayName()
	code := s.codes.Code(eventName)
	caption := captionText(eventName, assetType, submitter, code, s.settings.RequiredHearts, s.settings.ApproverCount)

	messageID, err := s.broadcast(ctx, sess.Content, caption)
	if err != nil {
		notifyErr := s.messenger.SendDirectText(ctx, ev.SenderID, msgBroadcastFailed)
		return errors.Join(fmt.Errorf("dialog: broadcast: %w", err), notifyErr)
	}

	item := &domain.Item{
		MessageID:     messageID,
		TrackingCode:  code,
		SubmitterID:   ev.SenderID,
		SubmitterName: submitter,
		GroupID:       s.settings.GroupID,
		EventName:     eventName,
		AssetType:     assetType,
		ContentKind:   sess.Content.Kind,
		Status:        domain.ItemStatusPending,
		CreatedAt:     time.Now(),
	}
	if sess.Content.Kind == domain.ContentKindLink {
		link := sess.Content.LinkURL
		item.LinkURL = &link
	}

	if _, err := s.items.Create(ctx, item); err != nil {
		s.log.ErrorContext(ctx, "broadcast item not recorded",
			slog.String("message_id", messageID),
			slog.String("tracking_code", code),
			slog.String("error", err.Error()),
		)
		notifyErr := s.messenger.SendDirectText(ctx, ev.SenderID, msgNotRecorded)
		return errors.Join(fmt.Errorf("dialog: record item: %w", err), notifyErr)
	}

	if err := s.sessions.Delete(ctx, ev.SenderID); err != nil {
		return fmt.Errorf("dialog: close session: %w", err)
	}

	s.log.InfoContext(ctx, "submission broadcast",
		slog.String("message_id", messageID),
		slog.String("tracking_code", code),
		slog.String("submitter", ev.SenderID),
		slog.String("content_kind", item.ContentKind.String()),
	)

	return s.messenger.SendDirectText(ctx, ev.SenderID, confirmationText(code))
}

// broadcast posts content with caption to the group and returns the group message id.
// Media is re-hosted first: metadata, download, then upload under the bot's number.
func (s *Service) broadcast(ctx context.Context, content domain.Content, caption string) (string, error) {
	if content.Kind == domain.ContentKindLink {
		return s.messenger.SendGroupText(ctx, s.settings.GroupID, linkText(caption, content.LinkURL))
	}

	meta, err := s.messenger.FetchMediaMetadata(ctx, content.MediaRef)
	if err != nil {
		return "", err
	}

	data, err := s.messenger.DownloadBinary(ctx, meta.URL)
	if err != nil {
		return "", err
	}

	mime := content.MediaMime
	if mime == "" {
		mime = meta.MimeType
	}
	if mime == "" {
		mime = defaultDocumentMime
	}

	mediaID, err := s.messenger.UploadBinary(ctx, data, mime)
	if err != nil {
		return "", err
	}

	out := domain.OutboundMedia{
		Kind:    content.Kind,
		MediaID: mediaID,
		Caption: caption,
	}
	if content.Kind == domain.ContentKindDocument {
		out.Filename = firstNonEmpty(content.Filename, meta.Filename, defaultDocumentName)
	}

	return s.messenger.SendGroupMedia(ctx, s.settings.GroupID, out)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
