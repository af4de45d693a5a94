package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homeport/internal/common"
	"homeport/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, req *services.SignUpRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	args := m.Called(ctx, identifier, password)
	return args.String(0), args.Error(1)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = common.NewRequestValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignup_Success(t *testing.T) {
	svc := &MockAuthService{}
	svc.On("SignUp", mock.Anything, mock.AnythingOfType("*services.SignUpRequest")).Return("signed-token", nil).Run(func(args mock.Arguments) {
		req := args.Get(1).(*services.SignUpRequest)
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "a@x.com", req.Email)
	})
	h := NewAuthHandlers(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/users/auth/signup",
		`{"username":"alice","password":"p1secret","email":"a@x.com","first_name":"Alice"}`)

	assert.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
	svc.AssertExpectations(t)
}

func TestSignup_UsernameTaken(t *testing.T) {
	svc := &MockAuthService{}
	svc.On("SignUp", mock.Anything, mock.Anything).Return("", services.ErrUsernameTaken)
	h := NewAuthHandlers(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/users/auth/signup",
		`{"username":"alice","password":"p1secret","email":"a@x.com"}`)

	assert.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username_taken")
}

func TestSignup_EmailTaken(t *testing.T) {
	svc := &MockAuthService{}
	svc.On("SignUp", mock.Anything, mock.Anything).Return("", services.ErrEmailTaken)
	h := NewAuthHandlers(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/users/auth/signup",
		`{"username":"alice","password":"p1secret","email":"a@x.com"}`)

	assert.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email_taken")
}

func TestSignup_MissingFields(t *testing.T) {
	svc := &MockAuthService{}
	h := NewAuthHandlers(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/users/auth/signup", `{"username":"alice"}`)

	err := h.Signup(c)
	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	svc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	svc := &MockAuthService{}
	svc.On("Login", mock.Anything, "a@x.com", "p1secret").Return("signed-token", nil)
	h := NewAuthHandlers(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/users/auth/login",
		`{"identifier":"a@x.com","password":"p1secret"}`)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &MockAuthService{}
	svc.On("Login", mock.Anything, "a@x.com", "wrong").Return("", services.ErrInvalidCredentials)
	h := NewAuthHandlers(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/users/auth/login",
		`{"identifier":"a@x.com","password":"wrong"}`)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
}
