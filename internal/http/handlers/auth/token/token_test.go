package token

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	auth "github.com/magabrotheeeer/fitness-tracker/internal/services/auth"
)

// MockService реализует интерфейс token.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func TestTokenHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		form           url.Values
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		wantChallenge  bool
	}{
		{
			name: "успешный вход",
			form: url.Values{"username": {"testuser"}, "password": {"password123"}},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "testuser", "password123").
					Return("signed.jwt.token", nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token_type":"bearer"`,
		},
		{
			name: "неверные учетные данные",
			form: url.Values{"username": {"testuser"}, "password": {"wrong"}},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "testuser", "wrong").
					Return("", auth.ErrInvalidCredentials).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "incorrect username or password",
			wantChallenge:  true,
		},
		{
			name:           "пустая форма",
			form:           url.Values{},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "incorrect username or password",
			wantChallenge:  true,
		},
		{
			name: "ошибка сервиса",
			form: url.Values{"username": {"testuser"}, "password": {"password123"}},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "testuser", "password123").
					Return("", errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "internal service error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			if tt.wantChallenge {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"access_token":"signed.jwt.token"`)
			}
			mockService.AssertExpectations(t)
		})
	}
}
