// Package whatsapp is the outbound side of the WhatsApp Cloud API: sending
// messages, replying in thread and moving media through the Graph API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/heart-approvals/internal/config"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"github.com/heartmarshall/heart-approvals/internal/metrics"
)

// maxDownloadBytes caps media downloads at the Cloud API media size limit.
const maxDownloadBytes = 100 << 20

// Operation names reported in *domain.TransportError and metrics.
const (
	OpSendDirectText     = "send_direct_text"
	OpSendGroupText      = "send_group_text"
	OpSendGroupMedia     = "send_group_media"
	OpReplyInThread      = "reply_in_thread"
	OpFetchMediaMetadata = "fetch_media_metadata"
	OpDownloadBinary     = "download_binary"
	OpUploadBinary       = "upload_binary"
)

// Client calls the Graph API on behalf of one business phone number.
type Client struct {
	baseURL       string
	version       string
	phoneNumberID string
	token         string
	httpClient    *http.Client
	metrics       *metrics.Registry
	log           *slog.Logger
}

// NewClient creates a Client from WhatsAppConfig. reg may be nil.
func NewClient(cfg config.WhatsAppConfig, reg *metrics.Registry, logger *slog.Logger) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		version:       cfg.APIVersion,
		phoneNumberID: cfg.PhoneNumberID,
		token:         cfg.AccessToken,
		httpClient:    &http.Client{Timeout: cfg.HTTPTimeout},
		metrics:       reg,
		log:           logger.With("adapter", "whatsapp"),
	}
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// SendDirectText sends a text message to a single recipient.
func (c *Client) SendDirectText(ctx context.Context, to, text string) error {
	_, err := c.sendMessage(ctx, OpSendDirectText, outboundMessage{
		To:   to,
		Type: "text",
		Text: &textBody{Body: text},
	})
	return err
}

// SendGroupText posts a text message to groupID and returns its message id.
func (c *Client) SendGroupText(ctx context.Context, groupID, text string) (string, error) {
	return c.sendMessage(ctx, OpSendGroupText, outboundMessage{
		To:   groupID,
		Type: "text",
		Text: &textBody{Body: text},
	})
}

// SendGroupMedia posts an uploaded media object to groupID and returns its message id.
func (c *Client) SendGroupMedia(ctx context.Context, groupID string, media domain.OutboundMedia) (string, error) {
	msg := outboundMessage{To: groupID, Type: string(media.Kind)}
	obj := &mediaObject{ID: media.MediaID, Caption: media.Caption}

	switch media.Kind {
	case domain.ContentKindImage:
		msg.Image = obj
	case domain.ContentKindVideo:
		msg.Video = obj
	case domain.ContentKindDocument:
		obj.Filename = media.Filename
		msg.Document = obj
	default:
		return "", c.fail(ctx, OpSendGroupMedia, 0, fmt.Errorf("unsupported media kind %q", media.Kind))
	}

	return c.sendMessage(ctx, OpSendGroupMedia, msg)
}

// ReplyInThread posts text to recipient quoting messageID.
func (c *Client) ReplyInThread(ctx context.Context, to, messageID, text string) error {
	_, err := c.sendMessage(ctx, OpReplyInThread, outboundMessage{
		To:      to,
		Type:    "text",
		Context: &replyContext{MessageID: messageID},
		Text:    &textBody{Body: text},
	})
	return err
}

func (c *Client) sendMessage(ctx context.Context, op string, msg outboundMessage) (string, error) {
	msg.MessagingProduct = messagingProduct

	body, err := json.Marshal(msg)
	if err != nil {
		return "", c.fail(ctx, op, 0, fmt.Errorf("encode message: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.phoneNumberID, "messages"), bytes.NewReader(body))
	if err != nil {
		return "", c.fail(ctx, op, 0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	var resp sendResponse
	if err := c.doJSON(ctx, op, req, &resp); err != nil {
		return "", err
	}

	if len(resp.Messages) == 0 || resp.Messages[0].ID == "" {
		return "", c.fail(ctx, op, http.StatusOK, errors.New("response without message id"))
	}

	c.log.DebugContext(ctx, "message sent",
		slog.String("op", op),
		slog.String("type", msg.Type),
		slog.String("message_id", resp.Messages[0].ID),
	)

	return resp.Messages[0].ID, nil
}

// ---------------------------------------------------------------------------
// Media
// ---------------------------------------------------------------------------

// FetchMediaMetadata resolves a media id into its download URL and properties.
func (c *Client) FetchMediaMetadata(ctx context.Context, mediaID string) (domain.MediaMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(mediaID), nil)
	if err != nil {
		return domain.MediaMetadata{}, c.fail(ctx, OpFetchMediaMetadata, 0, fmt.Errorf("create request: %w", err))
	}

	var resp mediaMetadataResponse
	if err := c.doJSON(ctx, OpFetchMediaMetadata, req, &resp); err != nil {
		return domain.MediaMetadata{}, err
	}
	if resp.URL == "" {
		return domain.MediaMetadata{}, c.fail(ctx, OpFetchMediaMetadata, http.StatusOK, errors.New("response without url"))
	}

	return domain.MediaMetadata{
		URL:      resp.URL,
		MimeType: resp.MimeType,
		Filename: resp.Filename,
		FileSize: resp.FileSize,
	}, nil
}

// DownloadBinary fetches the bytes behind a media URL.
func (c *Client) DownloadBinary(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, c.fail(ctx, OpDownloadBinary, 0, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.do(ctx, OpDownloadBinary, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes+1))
	if err != nil {
		return nil, c.fail(ctx, OpDownloadBinary, resp.StatusCode, fmt.Errorf("read body: %w", err))
	}
	if len(data) > maxDownloadBytes {
		return nil, c.fail(ctx, OpDownloadBinary, resp.StatusCode, fmt.Errorf("media exceeds %d bytes", maxDownloadBytes))
	}

	return data, nil
}

// UploadBinary uploads data as a new media object and returns its media id.
func (c *Client) UploadBinary(ctx context.Context, data []byte, mimeType string) (string, error) {
	body, contentType, err := uploadForm(data, mimeType)
	if err != nil {
		return "", c.fail(ctx, OpUploadBinary, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.phoneNumberID, "media"), body)
	if err != nil {
		return "", c.fail(ctx, OpUploadBinary, 0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", contentType)

	var resp uploadResponse
	if err := c.doJSON(ctx, OpUploadBinary, req, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", c.fail(ctx, OpUploadBinary, http.StatusOK, errors.New("response without media id"))
	}

	return resp.ID, nil
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

func (c *Client) endpoint(parts ...string) string {
	return c.baseURL + "/" + c.version + "/" + strings.Join(parts, "/")
}

// do sends req with the bearer token and returns a 2xx response.
// Any other outcome is a *domain.TransportError.
func (c *Client) do(ctx context.Context, op string, req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(ctx, op, 0, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, c.fail(ctx, op, resp.StatusCode, decodeAPIError(resp.Body))
	}

	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, op string, req *http.Request, out any) error {
	resp, err := c.do(ctx, op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(ctx, op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) fail(ctx context.Context, op string, status int, err error) error {
	c.metrics.TransportError(op)
	c.log.ErrorContext(ctx, "whatsapp call failed",
		slog.String("op", op),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	return domain.NewTransportError(op, status, err)
}
