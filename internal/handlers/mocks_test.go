package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/fzambone/event-attendance/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockEventStore mocks the event store interface.
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) List() ([]models.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventStore) Create(event *models.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventStore) GetWithConfirmations(eventID string) (*models.Event, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) Delete(eventID string) error {
	args := m.Called(eventID)
	return args.Error(0)
}

// MockConfirmationStore mocks the confirmation store interface.
type MockConfirmationStore struct {
	mock.Mock
}

func (m *MockConfirmationStore) Create(eventID, name string, guests int) (*models.Confirmation, error) {
	args := m.Called(eventID, name, guests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Confirmation), args.Error(1)
}

func (m *MockConfirmationStore) Update(eventID, confirmationID, name string, guests int) (*models.Confirmation, error) {
	args := m.Called(eventID, confirmationID, name, guests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Confirmation), args.Error(1)
}

func (m *MockConfirmationStore) Delete(eventID, confirmationID string) error {
	args := m.Called(eventID, confirmationID)
	return args.Error(0)
}

func performJSON(t *testing.T, router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}
