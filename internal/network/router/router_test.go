package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/denmor86/lucky-triple/internal/config"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/denmor86/lucky-triple/internal/services/mocks"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const roundKey = "3f1c2a9e-8d4b-4c7a-9e21-5b6f0d8c1a77"

type testRouter struct {
	Identity      *mocks.MockIdentityService
	Game          *mocks.MockGameService
	Withdrawals   *mocks.MockWithdrawalService
	Notifications *mocks.MockNotificationService
	Admin         *mocks.MockAdminService
	Auth          *jwtauth.JWTAuth
	Handler       http.Handler
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	tr := &testRouter{
		Identity:      mocks.NewMockIdentityService(ctrl),
		Game:          mocks.NewMockGameService(ctrl),
		Withdrawals:   mocks.NewMockWithdrawalService(ctrl),
		Notifications: mocks.NewMockNotificationService(ctrl),
		Admin:         mocks.NewMockAdminService(ctrl),
		Auth:          jwtauth.New(services.TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil),
	}
	tr.Identity.EXPECT().GetTokenAuth().Return(tr.Auth).AnyTimes()

	r := &Router{
		Config:        cfg,
		Identity:      tr.Identity,
		Game:          tr.Game,
		Withdrawals:   tr.Withdrawals,
		Notifications: tr.Notifications,
		Admin:         tr.Admin,
	}
	tr.Handler = r.HandleRouter()
	return tr
}

func (tr *testRouter) token(t *testing.T, userID string, admin bool) string {
	t.Helper()
	_, token, err := tr.Auth.Encode(map[string]interface{}{
		services.ClaimUserID: userID,
		services.ClaimAdmin:  admin,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return token
}

func (tr *testRouter) do(method string, path string, token string, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	tr.Handler.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func TestRouter_Signup(t *testing.T) {
	tr := newTestRouter(t)
	user := &models.UserData{UserID: "u1", Email: "player@example.com", Phone: "+15550001", Balance: decimal.Zero}

	testCases := []struct {
		Name           string
		Body           string
		SetupMocks     func()
		ExpectedStatus int
	}{
		{
			Name: "Success #1",
			Body: `{"email":"player@example.com","password":"secret1","phone":"+15550001"}`,
			SetupMocks: func() {
				tr.Identity.EXPECT().RegisterUser(gomock.Any(), models.SignupRequest{Email: "player@example.com", Password: "secret1", Phone: "+15550001"}).Return(user, nil)
				tr.Identity.EXPECT().GenerateJWT(*user).Return("token-1", nil)
			},
			ExpectedStatus: http.StatusCreated,
		},
		{
			Name:           "Invalid email #2",
			Body:           `{"email":"not-an-email","password":"secret1","phone":"+15550001"}`,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "Malformed body #3",
			Body:           `{"email":`,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Already exists #4",
			Body: `{"email":"player@example.com","password":"secret1","phone":"+15550001"}`,
			SetupMocks: func() {
				tr.Identity.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)
			},
			ExpectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			rec := tr.do(http.MethodPost, "/api/auth/signup", "", tc.Body, nil)
			if rec.Code != tc.ExpectedStatus {
				t.Fatalf("Expected status %d, got %d: %s", tc.ExpectedStatus, rec.Code, rec.Body.String())
			}
			if rec.Code != http.StatusCreated {
				return
			}
			var resp models.AuthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if resp.Token != "token-1" || resp.User.ID != "u1" {
				t.Errorf("Unexpected response: %+v", resp)
			}
		})
	}
}

func TestRouter_LoginInvalidCredentials(t *testing.T) {
	tr := newTestRouter(t)
	tr.Identity.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidCredentials)

	rec := tr.do(http.MethodPost, "/api/auth/login", "", `{"email":"player@example.com","password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if msg := errorMessage(t, rec); msg != services.ErrInvalidCredentials.Error() {
		t.Errorf("Unexpected error message %q", msg)
	}
}

func TestRouter_RequiresToken(t *testing.T) {
	tr := newTestRouter(t)
	rec := tr.do(http.MethodGet, "/api/auth/me", "", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRouter_MeDeletedUser(t *testing.T) {
	tr := newTestRouter(t)
	tr.Identity.EXPECT().GetUser(gomock.Any(), "u1").Return(nil, storage.ErrNotFound)

	rec := tr.do(http.MethodGet, "/api/auth/me", tr.token(t, "u1", false), "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRouter_Play(t *testing.T) {
	tr := newTestRouter(t)
	token := tr.token(t, "u1", false)
	body := `{"bet":"10","guesses":[1,2,3],"settingsVersion":3}`
	expectedReq := models.PlayRequest{Bet: decimal.NewFromInt(10), Guesses: []int{1, 2, 3}, SettingsVersion: 3}
	result := &models.SettlementResult{
		RoundKey:       roundKey,
		WinningNumbers: []int{1, 2, 9},
		Matches:        2,
		Profit:         decimal.NewFromInt(40),
		NewBalance:     decimal.NewFromInt(140),
	}

	testCases := []struct {
		Name           string
		Body           string
		Headers        map[string]string
		SetupMocks     func()
		ExpectedStatus int
	}{
		{
			Name:    "Success #1",
			Body:    body,
			Headers: map[string]string{"Idempotency-Key": roundKey},
			SetupMocks: func() {
				tr.Game.EXPECT().Play(gomock.Any(), "u1", roundKey, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ string, req models.PlayRequest) (*models.SettlementResult, error) {
						if !req.Bet.Equal(expectedReq.Bet) || req.SettingsVersion != expectedReq.SettingsVersion {
							t.Errorf("Unexpected request: %+v", req)
						}
						if diff := cmp.Diff(expectedReq.Guesses, req.Guesses); diff != "" {
							t.Errorf("Guesses mismatch (-want +got):\n%s", diff)
						}
						return result, nil
					})
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "Missing idempotency key #2",
			Body:           body,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "Guess out of range #3",
			Body:           `{"bet":"10","guesses":[1,2,12],"settingsVersion":3}`,
			Headers:        map[string]string{"Idempotency-Key": roundKey},
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:    "Stale settings #4",
			Body:    body,
			Headers: map[string]string{"Idempotency-Key": roundKey},
			SetupMocks: func() {
				tr.Game.EXPECT().Play(gomock.Any(), "u1", roundKey, gomock.Any()).Return(nil, services.ErrStaleSettings)
			},
			ExpectedStatus: http.StatusConflict,
		},
		{
			Name:    "Insufficient funds #5",
			Body:    body,
			Headers: map[string]string{"Idempotency-Key": roundKey},
			SetupMocks: func() {
				tr.Game.EXPECT().Play(gomock.Any(), "u1", roundKey, gomock.Any()).Return(nil, storage.ErrInsufficientFunds)
			},
			ExpectedStatus: http.StatusPaymentRequired,
		},
		{
			Name:    "Rate limited #6",
			Body:    body,
			Headers: map[string]string{"Idempotency-Key": roundKey},
			SetupMocks: func() {
				tr.Game.EXPECT().Play(gomock.Any(), "u1", roundKey, gomock.Any()).Return(nil, services.ErrRateLimited)
			},
			ExpectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			rec := tr.do(http.MethodPost, "/api/game/play", token, tc.Body, tc.Headers)
			if rec.Code != tc.ExpectedStatus {
				t.Fatalf("Expected status %d, got %d: %s", tc.ExpectedStatus, rec.Code, rec.Body.String())
			}
			if rec.Code != http.StatusOK {
				return
			}
			var got models.SettlementResult
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got.Matches != 2 || !got.NewBalance.Equal(decimal.NewFromInt(140)) {
				t.Errorf("Unexpected result: %+v", got)
			}
		})
	}
}

func TestRouter_AdminOnly(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(http.MethodGet, "/api/admin/users", tr.token(t, "u1", false), "", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected status %d for player, got %d", http.StatusForbidden, rec.Code)
	}

	tr.Admin.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: "u1"}, {ID: "u2"}}, nil)
	rec = tr.do(http.MethodGet, "/api/admin/users", tr.token(t, "a1", true), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d for admin, got %d", http.StatusOK, rec.Code)
	}
	var resp struct {
		Users []models.User `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(resp.Users))
	}
}

func TestRouter_ApproveTwice(t *testing.T) {
	tr := newTestRouter(t)
	token := tr.token(t, "a1", true)
	approved := &models.Withdrawal{ID: "w1", Amount: decimal.NewFromInt(50), Status: models.WithdrawalApproved}

	gomock.InOrder(
		tr.Withdrawals.EXPECT().Approve(gomock.Any(), "w1").Return(approved, nil),
		tr.Withdrawals.EXPECT().Approve(gomock.Any(), "w1").Return(nil, storage.ErrConflict),
	)

	if rec := tr.do(http.MethodPost, "/api/admin/withdrawals/w1/approve", token, "", nil); rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec := tr.do(http.MethodPost, "/api/admin/withdrawals/w1/approve", token, "", nil); rec.Code != http.StatusConflict {
		t.Fatalf("Expected status %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestRouter_RejectWithoutBody(t *testing.T) {
	tr := newTestRouter(t)
	tr.Withdrawals.EXPECT().Reject(gomock.Any(), "w1", "").
		Return(&models.Withdrawal{ID: "w1", Status: models.WithdrawalRejected}, nil)

	rec := tr.do(http.MethodPost, "/api/admin/withdrawals/w1/reject", tr.token(t, "a1", true), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestRouter_SendSMS(t *testing.T) {
	tr := newTestRouter(t)
	token := tr.token(t, "a1", true)
	dispatch := &models.SMSDispatch{ID: "d1", Phones: []string{"+1", "+2"}, Status: models.SMSQueued}

	testCases := []struct {
		Name           string
		Path           string
		Body           string
		SetupMocks     func()
		ExpectedStatus int
	}{
		{
			Name: "To all #1",
			Path: "/api/admin/sms/all",
			Body: `{"message":"Jackpot weekend!"}`,
			SetupMocks: func() {
				tr.Notifications.EXPECT().SendToAll(gomock.Any(), "Jackpot weekend!").Return(dispatch, nil)
			},
			ExpectedStatus: http.StatusAccepted,
		},
		{
			Name: "To selected #2",
			Path: "/api/admin/sms",
			Body: `{"userIds":["u1","u2"],"message":"Hi"}`,
			SetupMocks: func() {
				tr.Notifications.EXPECT().SendToUsers(gomock.Any(), []string{"u1", "u2"}, "Hi").Return(dispatch, nil)
			},
			ExpectedStatus: http.StatusAccepted,
		},
		{
			Name:           "Empty selection #3",
			Path:           "/api/admin/sms",
			Body:           `{"userIds":[],"message":"Hi"}`,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "No active recipients #4",
			Path: "/api/admin/sms",
			Body: `{"userIds":["gone"],"message":"Hi"}`,
			SetupMocks: func() {
				tr.Notifications.EXPECT().SendToUsers(gomock.Any(), []string{"gone"}, "Hi").Return(nil, services.ErrNoRecipients)
			},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			rec := tr.do(http.MethodPost, tc.Path, token, tc.Body, nil)
			if rec.Code != tc.ExpectedStatus {
				t.Fatalf("Expected status %d, got %d: %s", tc.ExpectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_UpdateSettingsInvalid(t *testing.T) {
	tr := newTestRouter(t)
	tr.Game.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(nil, models.ErrInvalidBetBounds)

	rec := tr.do(http.MethodPut, "/api/admin/settings", tr.token(t, "a1", true), `{"minBet":"50","maxBet":"10"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := errorMessage(t, rec); msg != models.ErrInvalidBetBounds.Error() {
		t.Errorf("Unexpected error message %q", msg)
	}
}

func TestRouter_DeleteUser(t *testing.T) {
	tr := newTestRouter(t)
	tr.Admin.EXPECT().DeleteUser(gomock.Any(), "a1", "u2").Return(nil)

	rec := tr.do(http.MethodDelete, "/api/admin/users/u2", tr.token(t, "a1", true), "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}
