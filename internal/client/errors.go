package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrServiceUnavailable = errors.New("service unavailable")

// StatusError - ответ удалённой стороны с кодом, отличным от 2xx
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}

// Unwrap - 5xx считаются недоступностью сервиса
func (e *StatusError) Unwrap() error {
	if e.Code >= http.StatusInternalServerError {
		return ErrServiceUnavailable
	}
	return nil
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
