package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - JSON поверх HTTP с общим ограничителем частоты запросов
type Client struct {
	baseURL    string
	httpClient HTTPClient
	Limiter    *RateLimiter
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		Limiter:    NewRateLimiter(),
	}
}

// errorBody - тело ответа с ошибкой, как его отдаёт сервер
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Do - выполняет запрос, кодируя in и декодируя ответ в out (если не nil)
func (c *Client) Do(ctx context.Context, method string, path string, headers http.Header, in any, out any) error {
	if err := c.Limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header[k] = v
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := HandleErrorResponse(resp)
		var rateLimitErr *RateLimitError
		if errors.As(err, &rateLimitErr) {
			c.Limiter.BlockFor(rateLimitErr.RetryAfter)
		}
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func HandleErrorResponse(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewRateLimitError(resp.Header)
	}
	var body errorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(data, &body); err != nil {
		body.Error = string(bytes.TrimSpace(data))
	}
	msg := body.Error
	if msg == "" {
		msg = body.Message
	}
	return &StatusError{Code: resp.StatusCode, Message: msg}
}
