package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sentinel errors mapped from upstream status codes.
var (
	ErrNotFound     = errors.New("backend: not found")
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrUpstream     = errors.New("backend: upstream error")
)

// Client talks to the remote analytics backend. Every call forwards the
// caller's bearer token; this service holds no credentials of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a backend client.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// File is the upstream file metadata record.
type File struct {
	ID              string `json:"id"`
	Filename        string `json:"filename"`
	SpreadsheetType string `json:"spreadsheet_type"`
	Status          string `json:"status"`
	UploadedAt      string `json:"uploaded_at"`
}

// ChatTurn is one question/answer exchange over a file's data.
type ChatTurn struct {
	ID        string `json:"id"`
	FileID    string `json:"file_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
}

// Subscription is the caller's plan state.
type Subscription struct {
	Plan         string `json:"plan"`
	Status       string `json:"status"`
	CreditsLeft  int    `json:"credits_left"`
	TotalCredits int    `json:"total_credits"`
}

// ListFiles fetches the caller's files.
func (c *Client) ListFiles(ctx context.Context, token string) ([]File, error) {
	var out []File
	if err := c.doJSON(ctx, token, http.MethodGet, "/files", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []File{}
	}
	return out, nil
}

// GetFile fetches metadata for one file.
func (c *Client) GetFile(ctx context.Context, token, fileID string) (File, error) {
	var out File
	err := c.doJSON(ctx, token, http.MethodGet, "/files/"+url.PathEscape(fileID), nil, &out)
	return out, err
}

// DeleteFile removes the file upstream.
func (c *Client) DeleteFile(ctx context.Context, token, fileID string) error {
	return c.doJSON(ctx, token, http.MethodDelete, "/files/"+url.PathEscape(fileID), nil, nil)
}

// Upload forwards a validated spreadsheet to the backend as multipart form data.
func (c *Client) Upload(ctx context.Context, token, fileName string, r io.Reader) (File, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return File{}, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return File{}, fmt.Errorf("copy upload body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return File{}, fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return File{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return File{}, err
	}

	var out File
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return File{}, fmt.Errorf("%w: decode upload response: %v", ErrUpstream, err)
	}
	return out, nil
}

// Analyze triggers analysis of an uploaded file.
func (c *Client) Analyze(ctx context.Context, token, fileID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, token, http.MethodPost, "/analyze/"+url.PathEscape(fileID), nil, &out)
	return out, err
}

// GetAnalysis fetches the raw analysis record for a file. The payload is kept
// as raw JSON; normalization happens in the analytics package.
func (c *Client) GetAnalysis(ctx context.Context, token, fileID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, token, http.MethodGet, "/analysis/"+url.PathEscape(fileID), nil, &out)
	return out, err
}

// ChatHistory fetches prior chat turns for a file.
func (c *Client) ChatHistory(ctx context.Context, token, fileID string) ([]ChatTurn, error) {
	var out []ChatTurn
	if err := c.doJSON(ctx, token, http.MethodGet, "/chat/"+url.PathEscape(fileID)+"/history", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []ChatTurn{}
	}
	return out, nil
}

// Chat asks a question about a file's data.
func (c *Client) Chat(ctx context.Context, token, fileID, question string) (ChatTurn, error) {
	payload := map[string]string{
		"file_id":  fileID,
		"question": question,
	}
	var out ChatTurn
	err := c.doJSON(ctx, token, http.MethodPost, "/chat", payload, &out)
	return out, err
}

// GetSubscription fetches the caller's subscription state.
func (c *Client) GetSubscription(ctx context.Context, token string) (Subscription, error) {
	var out Subscription
	err := c.doJSON(ctx, token, http.MethodGet, "/subscription", nil, &out)
	return out, err
}

// ExportPDF downloads the rendered PDF for a file. The caller owns the
// returned body and must close it.
func (c *Client) ExportPDF(ctx context.Context, token, fileID string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/export/"+url.PathEscape(fileID), nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if err := statusError(resp); err != nil {
		resp.Body.Close()
		return nil, "", err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return resp.Body, contentType, nil
}

func (c *Client) doJSON(ctx context.Context, token, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return err
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
}
