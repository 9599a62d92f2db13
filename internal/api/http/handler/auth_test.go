package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	httpctx "github.com/mpetrov/storefront-server/internal/api/http/context"
	"github.com/mpetrov/storefront-server/internal/model"
	"github.com/mpetrov/storefront-server/internal/service"
	"github.com/mpetrov/storefront-server/internal/testutil"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, in service.RegisterInput) (model.User, error) {
	ret := m.Called(ctx, in)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (model.TokenPair, model.User, error) {
	ret := m.Called(ctx, email, password)
	return ret.Get(0).(model.TokenPair), ret.Get(1).(model.User), ret.Error(2)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	ret := m.Called(ctx, refreshToken)
	return ret.Get(0).(model.TokenPair), ret.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	ret := m.Called(ctx, userID)
	return ret.Error(0)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID primitive.ObjectID) (model.User, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, in service.UpdateProfileInput) (model.User, error) {
	ret := m.Called(ctx, userID, in)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	ret := m.Called(ctx, userID, oldPassword, newPassword)
	return ret.Error(0)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	ret := m.Called(ctx, email)
	return ret.Error(0)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	ret := m.Called(ctx, resetToken, newPassword)
	return ret.Error(0)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Login", mock.Anything, "maya@example.com", "secret123").
		Return(
			model.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"},
			model.User{ID: primitive.NewObjectID(), Email: "maya@example.com"},
			nil,
		)

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login",
		strings.NewReader(`{"email":"maya@example.com","password":"secret123"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "access-1", body["accessToken"])
	assert.Equal(t, "refresh-1", body["refreshToken"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Login", mock.Anything, "maya@example.com", "wrong").
		Return(model.TokenPair{}, model.User{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login",
		strings.NewReader(`{"email":"maya@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
		return in.Email == "maya@example.com" && len(in.Addresses) == 1
	})).Return(model.User{ID: primitive.NewObjectID(), Email: "maya@example.com"}, nil)

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	payload := `{
		"name": "Maya",
		"email": "maya@example.com",
		"password": "secret123",
		"addresses": [{"street":"1 Main St","landmark":"park","city":"Sofia","country":"BG","postalCode":"1000","addressType":"home"}],
		"city": "Sofia",
		"country": "BG",
		"phone": "+359000000000"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["user"])
}

func TestAuthHandler_Refresh_FromBody(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Refresh", mock.Anything, "refresh-1").
		Return(model.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil)

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/refresh-token",
		strings.NewReader(`{"refreshToken":"refresh-1"}`))
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "refresh-2", body["refreshToken"])
}

func TestAuthHandler_Refresh_FromHeader(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Refresh", mock.Anything, "refresh-1").
		Return(model.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil)

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/refresh-token", nil)
	req.Header.Set("Authorization", "Bearer refresh-1")
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Refresh_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"missing token", model.ErrMissingToken, http.StatusUnauthorized},
		{"invalid token", model.ErrInvalidToken, http.StatusForbidden},
		{"revoked token", model.ErrTokenRevoked, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{}
			svc.On("Refresh", mock.Anything, mock.Anything).
				Return(model.TokenPair{}, tt.serviceErr)

			h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/user/refresh-token",
				strings.NewReader(`{"refreshToken":"whatever"}`))
			rec := httptest.NewRecorder()

			h.Refresh(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	userID := primitive.NewObjectID()
	ctxMgr := httpctx.NewManager()
	svc := &mockAuthService{}
	svc.On("Logout", mock.Anything, userID).Return(nil)

	h := NewAuth(svc, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/logout", nil)
	req = req.WithContext(ctxMgr.SetUserIDToContext(req.Context(), userID))
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Logout_NoSession(t *testing.T) {
	userID := primitive.NewObjectID()
	ctxMgr := httpctx.NewManager()
	svc := &mockAuthService{}
	svc.On("Logout", mock.Anything, userID).Return(model.ErrNoActiveSession)

	h := NewAuth(svc, ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/logout", nil)
	req = req.WithContext(ctxMgr.SetUserIDToContext(req.Context(), userID))
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Logout_NoContextUser(t *testing.T) {
	h := NewAuth(&mockAuthService{}, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
