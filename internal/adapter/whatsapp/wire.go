package whatsapp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

const messagingProduct = "whatsapp"

type outboundMessage struct {
	MessagingProduct string        `json:"messaging_product"`
	To               string        `json:"to"`
	Type             string        `json:"type"`
	Context          *replyContext `json:"context,omitempty"`
	Text             *textBody     `json:"text,omitempty"`
	Image            *mediaObject  `json:"image,omitempty"`
	Video            *mediaObject  `json:"video,omitempty"`
	Document         *mediaObject  `json:"document,omitempty"`
}

type replyContext struct {
	MessageID string `json:"message_id"`
}

type textBody struct {
	Body string `json:"body"`
}

type mediaObject struct {
	ID       string `json:"id"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type mediaMetadataResponse struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Filename string `json:"filename"`
	FileSize int64  `json:"file_size"`
}

type uploadResponse struct {
	ID string `json:"id"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// decodeAPIError turns a Graph API error body into an error.
func decodeAPIError(r io.Reader) error {
	body, _ := io.ReadAll(io.LimitReader(r, 64<<10))

	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("%s (code %d): %s", apiErr.Error.Type, apiErr.Error.Code, apiErr.Error.Message)
	}
	if len(body) == 0 {
		return errors.New("empty error response")
	}
	return errors.New(string(body))
}

// uploadForm builds the multipart body for the /media endpoint.
func uploadForm(data []byte, mimeType string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("messaging_product", messagingProduct); err != nil {
		return nil, "", fmt.Errorf("write form field: %w", err)
	}
	if err := w.WriteField("type", mimeType); err != nil {
		return nil, "", fmt.Errorf("write form field: %w", err)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="upload"`)
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("write form file: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
