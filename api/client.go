package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"vrukshaAdmin/models"
)

// Client talks to the store api. Every call carries the staff member's
// bearer token; failures come back mapped onto the models sentinels so
// callers never inspect status codes themselves.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL must be non-empty")
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// RequestError is a 4xx rejection whose message body is worth showing to the
// user verbatim. It unwraps to ErrBadRequest so sentinel checks keep working.
type RequestError struct {
	Status  int
	Message string
	Path    string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return models.ErrBadRequest
}

// UserMessage extracts a server-provided message fit for display, or ""
// when the caller should fall back to its own wording.
func UserMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return ""
}

func (c *Client) GetJSON(ctx context.Context, token, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, token, path, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, token, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		log.Printf("PostJSON marshal: %v", err)
		return models.ErrServerError
	}
	return c.doJSON(ctx, http.MethodPost, token, path, bytes.NewReader(body), out)
}

func (c *Client) PutJSON(ctx context.Context, token, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		log.Printf("PutJSON marshal: %v", err)
		return models.ErrServerError
	}
	return c.doJSON(ctx, http.MethodPut, token, path, bytes.NewReader(body), out)
}

func (c *Client) Delete(ctx context.Context, token, path string) error {
	return c.doJSON(ctx, http.MethodDelete, token, path, nil, nil)
}

func (c *Client) PostMultipart(ctx context.Context, token, path string, form *Form, out any) error {
	return c.doMultipart(ctx, http.MethodPost, token, path, form, out)
}

func (c *Client) PutMultipart(ctx context.Context, token, path string, form *Form, out any) error {
	return c.doMultipart(ctx, http.MethodPut, token, path, form, out)
}

func (c *Client) doJSON(ctx context.Context, method, token, path string, body io.Reader, out any) error {
	data, err := c.do(ctx, method, token, path, "application/json", body)
	if err != nil {
		return err
	}
	return decode(path, data, out)
}

func (c *Client) doMultipart(ctx context.Context, method, token, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		log.Printf("multipart encode: %v", err)
		return models.ErrServerError
	}
	data, err := c.do(ctx, method, token, path, contentType, body)
	if err != nil {
		return err
	}
	return decode(path, data, out)
}

func (c *Client) do(ctx context.Context, method, token, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		log.Printf("do: %v", err)
		return nil, models.ErrServerError
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("do: %s %s: %v", method, path, err)
		return nil, models.ErrUnavailable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("do: read %s: %v", path, err)
		return nil, models.ErrUnavailable
	}
	if resp.StatusCode >= 400 {
		return nil, c.categorize(method, path, resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) categorize(method, path string, status int, body []byte) error {
	log.Printf("api error: %s %s -> %d: %s", method, path, status, truncate(body))
	switch {
	case status == http.StatusUnauthorized:
		return models.ErrUnautorized
	case status == http.StatusForbidden:
		return models.ErrForbidden
	case status == http.StatusNotFound:
		return models.ErrNotFoundError
	case status < 500:
		msg := serverMessage(body)
		if msg == "" {
			return models.ErrBadRequest
		}
		return &RequestError{Status: status, Message: msg, Path: path}
	default:
		return models.ErrBadGateway
	}
}

func decode(path string, data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("decode %s: %v", path, err)
		return models.ErrInvalidResponse
	}
	return nil
}

func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

func truncate(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
