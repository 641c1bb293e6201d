package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, callerID int64, req models.WorkoutRequest) (int64, error) {
	args := m.Called(ctx, callerID, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateWorkoutHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		withUser       bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное создание тренировки",
			body:     `{"workout_type":"running","duration":30,"calories_burned":250}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(req models.WorkoutRequest) bool {
					return req.WorkoutType == "running" && req.Duration == 30
				})).Return(int64(10), nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"last_added_id":10`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"workout_type":`,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request body",
		},
		{
			name:           "отсутствует обязательное поле",
			body:           `{"duration":30}`,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "required field",
		},
		{
			name:           "пользователь не авторизован",
			body:           `{"workout_type":"running","duration":30,"calories_burned":250}`,
			withUser:       false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "unauthorized",
		},
		{
			name:     "ошибка сервиса",
			body:     `{"workout_type":"running","duration":30,"calories_burned":250}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(1), mock.Anything).
					Return(int64(0), errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "could not create workout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.withUser {
				ctx := context.WithValue(req.Context(), middlewarectx.User, &models.User{ID: 1, Username: "testuser"})
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
