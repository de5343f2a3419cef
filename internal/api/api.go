// Package api - типизированный клиент авторитетной стороны для клиентского ядра.
// Ответы сервера переводятся в виды ошибок из apperr.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/client"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
)

const HeaderIdempotencyKey = "Idempotency-Key"

// Client - клиент API авторитетной стороны
type Client struct {
	http    *client.Client
	timeout time.Duration

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string, httpClient client.HTTPClient, timeout time.Duration) *Client {
	return &Client{
		http:    client.NewClient(baseURL+"/api", httpClient),
		timeout: timeout,
	}
}

// SetToken - учётные данные для последующих вызовов; пустая строка сбрасывает их
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	if token := c.Token(); token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// call - один вызов с ограничением по времени
func (c *Client) call(ctx context.Context, op string, method string, path string, headers http.Header, in any, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if headers == nil {
		headers = c.headers()
	}
	if err := c.http.Do(ctx, method, path, headers, in, out); err != nil {
		return Classify(op, err)
	}
	return nil
}

// get - идемпотентное чтение с повтором при временных ошибках
func (c *Client) get(ctx context.Context, op string, path string, out any) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(100*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.call(ctx, op, http.MethodGet, path, nil, nil, out)
		if errors.Is(err, apperr.ErrTransient) {
			return retry.RetryableError(err)
		}
		return err
	})
	// отмена контекста между попытками приходит без классификации
	if err != nil && apperr.KindOf(err) == apperr.KindUnknown {
		return Classify(op, err)
	}
	return err
}

// Classify - перевод ошибки транспорта или ответа сервера в вид apperr
func Classify(op string, err error) error {
	var statusErr *client.StatusError
	var rateErr *client.RateLimitError
	switch {
	case errors.As(err, &rateErr):
		return apperr.Wrap(apperr.ErrTransient, op, err)
	case errors.As(err, &statusErr):
		switch statusErr.Code {
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return apperr.Wrap(apperr.ErrValidation, op, err)
		case http.StatusUnauthorized:
			return apperr.Wrap(apperr.ErrAuth, op, err)
		case http.StatusForbidden:
			// учётные данные действительны, не хватает прав: сессию не закрываем
			return apperr.Wrap(apperr.ErrValidation, op, err)
		case http.StatusPaymentRequired:
			return apperr.Wrap(apperr.ErrInsufficientFunds, op, err)
		case http.StatusNotFound:
			return apperr.Wrap(apperr.ErrNotFound, op, err)
		case http.StatusConflict:
			return apperr.Wrap(apperr.ErrConflict, op, err)
		default:
			return apperr.Wrap(apperr.ErrTransient, op, err)
		}
	default:
		// сеть, таймаут, отмена, неразобранный ответ: исход неизвестен
		return apperr.Wrap(apperr.ErrTransient, op, err)
	}
}

type userEnvelope struct {
	User models.User `json:"user"`
}

type settingsEnvelope struct {
	Settings models.GameSettings `json:"settings"`
}

type withdrawalEnvelope struct {
	Withdrawal models.Withdrawal `json:"withdrawal"`
}

type withdrawalsEnvelope struct {
	Withdrawals []models.Withdrawal `json:"withdrawals"`
}

type usersEnvelope struct {
	Users []models.User `json:"users"`
}

type dispatchEnvelope struct {
	Dispatch models.SMSDispatch `json:"dispatch"`
}

type logsEnvelope struct {
	Logs []models.SMSDispatch `json:"logs"`
}

type historyEnvelope struct {
	History []models.WagerResponse `json:"history"`
}

type statsEnvelope struct {
	Stats models.DashboardStats `json:"stats"`
}

func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.call(ctx, "signup", http.MethodPost, "/auth/signup", http.Header{}, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, email string, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.call(ctx, "login", http.MethodPost, "/auth/login", http.Header{}, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var resp userEnvelope
	if err := c.get(ctx, "me", "/auth/me", &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) GetSettings(ctx context.Context) (*models.GameSettings, error) {
	var resp settingsEnvelope
	if err := c.get(ctx, "get settings", "/game/settings", &resp); err != nil {
		return nil, err
	}
	return &resp.Settings, nil
}

// PlayGame - ставка не повторяется автоматически: при временной ошибке исход неизвестен
func (c *Client) PlayGame(ctx context.Context, roundKey string, req models.PlayRequest) (*models.SettlementResult, error) {
	headers := c.headers()
	headers.Set(HeaderIdempotencyKey, roundKey)
	var resp models.SettlementResult
	if err := c.call(ctx, "play", http.MethodPost, "/game/play", headers, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetHistory(ctx context.Context) ([]models.WagerResponse, error) {
	var resp historyEnvelope
	if err := c.get(ctx, "history", "/game/history", &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

func (c *Client) RequestWithdrawal(ctx context.Context, amount decimal.Decimal) (*models.Withdrawal, error) {
	var resp withdrawalEnvelope
	req := models.WithdrawalRequest{Amount: amount}
	if err := c.call(ctx, "request withdrawal", http.MethodPost, "/withdrawals/request", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Withdrawal, nil
}

func (c *Client) GetMyWithdrawals(ctx context.Context) (*models.MyWithdrawals, error) {
	var resp models.MyWithdrawals
	if err := c.get(ctx, "my withdrawals", "/withdrawals/mine", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp usersEnvelope
	if err := c.get(ctx, "list users", "/admin/users", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.call(ctx, "delete user", http.MethodDelete, "/admin/users/"+url.PathEscape(userID), nil, nil, nil)
}

func (c *Client) CreditUser(ctx context.Context, userID string, amount decimal.Decimal, reason string) (*models.User, error) {
	var resp userEnvelope
	req := models.CreditRequest{Amount: amount, Reason: reason}
	path := fmt.Sprintf("/admin/users/%s/credit", url.PathEscape(userID))
	if err := c.call(ctx, "credit user", http.MethodPost, path, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	var resp withdrawalsEnvelope
	if err := c.get(ctx, "list withdrawals", "/admin/withdrawals", &resp); err != nil {
		return nil, err
	}
	return resp.Withdrawals, nil
}

// ApproveWithdrawal - 409 означает, что запрос уже решён другим администратором
func (c *Client) ApproveWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error) {
	var resp withdrawalEnvelope
	path := fmt.Sprintf("/admin/withdrawals/%s/approve", url.PathEscape(id))
	if err := c.call(ctx, "approve withdrawal", http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Withdrawal, nil
}

func (c *Client) RejectWithdrawal(ctx context.Context, id string, reason string) (*models.Withdrawal, error) {
	var resp withdrawalEnvelope
	path := fmt.Sprintf("/admin/withdrawals/%s/reject", url.PathEscape(id))
	if err := c.call(ctx, "reject withdrawal", http.MethodPost, path, nil, models.RejectRequest{Reason: reason}, &resp); err != nil {
		return nil, err
	}
	return &resp.Withdrawal, nil
}

func (c *Client) UpdateSettings(ctx context.Context, settings models.GameSettings) (*models.GameSettings, error) {
	var resp settingsEnvelope
	if err := c.call(ctx, "update settings", http.MethodPut, "/admin/settings", nil, settings, &resp); err != nil {
		return nil, err
	}
	return &resp.Settings, nil
}

func (c *Client) SendSMS(ctx context.Context, userIDs []string, message string) (*models.SMSDispatch, error) {
	var resp dispatchEnvelope
	req := models.SMSRequest{UserIDs: userIDs, Message: message}
	if err := c.call(ctx, "send sms", http.MethodPost, "/admin/sms", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Dispatch, nil
}

func (c *Client) SendSMSToAll(ctx context.Context, message string) (*models.SMSDispatch, error) {
	var resp dispatchEnvelope
	if err := c.call(ctx, "send sms to all", http.MethodPost, "/admin/sms/all", nil, models.SMSAllRequest{Message: message}, &resp); err != nil {
		return nil, err
	}
	return &resp.Dispatch, nil
}

func (c *Client) GetSMSLogs(ctx context.Context) ([]models.SMSDispatch, error) {
	var resp logsEnvelope
	if err := c.get(ctx, "sms logs", "/admin/sms", &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

func (c *Client) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var resp statsEnvelope
	if err := c.get(ctx, "stats", "/admin/stats", &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}
