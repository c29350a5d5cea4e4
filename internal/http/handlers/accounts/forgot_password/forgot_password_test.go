package forgotpassword

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"just2kleen/internal/core/domain/account"
	c "just2kleen/internal/core/domain/common"
	ratelimiter "just2kleen/internal/core/domain/rate_limiter"
	service "just2kleen/internal/core/services/send_password_reset_token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	EMAIL       = "test@just2kleen.test"
	RESET_TOKEN = "test-reset-token"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Token = account.ResetToken(RESET_TOKEN)
	return result, nil
}

func TestForgotPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"email": "test@just2kleen.test", "role": "cleaner"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid json",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing email",
			body:           `{"role": "cleaner"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email", "role": "cleaner"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing role",
			body:           `{"email": "test@just2kleen.test"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "unknown role",
			body:           `{"email": "test@just2kleen.test", "role": "admin"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "account does not exist",
			body:           `{"email": "test@just2kleen.test", "role": "client"}`,
			serviceErr:     account.ErrAccountDoesNotExist,
			expectedStatus: http.StatusNotFound,
		},
		{
			id:             "rate limit exceeded",
			body:           `{"email": "test@just2kleen.test", "role": "client"}`,
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			id:             "service error",
			body:           `{"email": "test@just2kleen.test", "role": "client"}`,
			serviceErr:     assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub, false)

			request := httptest.NewRequest(
				http.MethodPost,
				"/forgot-password",
				strings.NewReader(testcase.body),
			)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}

func TestForgotPasswordSuccessResponse(t *testing.T) {
	stub := &stubService{}
	handler := New(stub, false)

	request := httptest.NewRequest(
		http.MethodPost,
		"/forgot-password",
		strings.NewReader(`{"email": "TEST@just2kleen.test", "role": "cleaner"}`),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message": "Password reset email sent"}`, recorder.Body.String())
	assert.Empty(t, recorder.Header().Get("x-test-password-reset-token"))

	require.NotNil(t, stub.input)
	assert.Equal(t, c.NewEmail(EMAIL), stub.input.Email)
	assert.Equal(t, account.RoleCleaner, stub.input.Role)
}

func TestForgotPasswordTestModeEchoesToken(t *testing.T) {
	stub := &stubService{}
	handler := New(stub, true)

	request := httptest.NewRequest(
		http.MethodPost,
		"/forgot-password",
		strings.NewReader(`{"email": "test@just2kleen.test", "role": "client"}`),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, RESET_TOKEN, recorder.Header().Get("x-test-password-reset-token"))
}
