package predict

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/image-predictor/internal/model"
)

// Endpoint paths and form field names
const (
	PredictPath        = "/predict"
	PingPath           = "/ping"
	FormFieldImage     = "image"
	DefaultTimeout     = 30 * time.Second
	DefaultContentType = "application/octet-stream"
)

// RawResponse is the uninterpreted answer of the prediction endpoint
type RawResponse struct {
	StatusCode int
	StatusText string
	Body       string
}

// OK reports whether the status is in the 2xx range
func (r *RawResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client uploads images to the prediction service
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new prediction client. A non-positive timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the configured base URL
func (c *Client) Endpoint() string {
	return c.baseURL
}

// Send posts the file as the "image" part of a multipart form and reads the
// whole response body as text.
func (c *Client) Send(ctx context.Context, file *model.SelectedFile) (*RawResponse, error) {
	if file == nil {
		return nil, NewNoFileError()
	}

	body, contentType, err := encodeForm(file)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PredictPath, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	log.Printf("Raw response text (%d): %s", resp.StatusCode, text)

	return &RawResponse{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Body:       string(text),
	}, nil
}

// Predict sends the file and interprets the response in one step
func (c *Client) Predict(ctx context.Context, file *model.SelectedFile) (*Result, error) {
	raw, err := c.Send(ctx, file)
	if err != nil {
		return nil, err
	}
	return Interpret(raw)
}

// Ping verifies the prediction service is running and returns its greeting
func (c *Client) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PingPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ServerError{StatusCode: resp.StatusCode, StatusText: statusText(resp), Body: string(text)}
	}

	return strings.TrimSpace(string(text)), nil
}

// encodeForm builds the multipart body carrying the file under FormFieldImage,
// keeping the file's own content type instead of the octet-stream default of
// multipart.Writer.CreateFormFile.
func encodeForm(file *model.SelectedFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	contentType := file.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(FormFieldImage), escapeQuotes(file.Name)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := part.Write(file.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write file data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// statusText returns the reason phrase of the response, e.g. "Internal Server Error"
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
