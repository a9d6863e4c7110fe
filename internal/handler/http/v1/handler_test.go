package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/paper_signal_service/internal/auth"
	"github.com/shenikar/paper_signal_service/internal/config"
	"github.com/shenikar/paper_signal_service/internal/models"
	"github.com/shenikar/paper_signal_service/internal/realtime"
	"github.com/shenikar/paper_signal_service/internal/service"
	"github.com/shenikar/paper_signal_service/internal/service/mocks"
	"github.com/shenikar/paper_signal_service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*mocks.MockSignalService, *gin.Engine, *auth.Verifier) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSignalService(ctrl)

	log := logger.Discard()
	verifier, err := auth.NewVerifier(testSecret)
	require.NoError(t, err)

	cfg := &config.Config{AuthCookieName: "token"}
	hub := realtime.NewHub(log)
	t.Cleanup(hub.Close)

	handler := NewHandler(mockService, realtime.NewUpgrader(hub, nil), verifier, log, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return mockService, router, verifier
}

func bearer(t *testing.T, verifier *auth.Verifier, userID string) map[string]string {
	token, err := verifier.Issue(userID, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	return resp
}

func TestCreateSignal_Success(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)
	id := uuid.New()
	expiresAt := time.Date(2026, 10, 14, 12, 10, 0, 0, time.UTC)

	mockService.EXPECT().
		CreateSignal(gomock.Any(), "R", models.SignalDraft{ToiletID: "T1", Latitude: 37.5, Longitude: 127.0, Message: "stall 2"}).
		Return(&models.Signal{ID: id, ExpiresAt: expiresAt}, nil).
		Times(1)

	body := jsonBody(t, map[string]any{"toiletId": "T1", "lat": 37.5, "lng": 127.0, "message": "stall 2"})
	w := makeRequest(router, "POST", "/api/v1/signals", body, bearer(t, verifier, "R"))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp CreateSignalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, id, resp.ID)
	assert.True(t, expiresAt.Equal(resp.ExpiresAt))
}

func TestCreateSignal_ZeroCoordinatesAreValid(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)

	mockService.EXPECT().
		CreateSignal(gomock.Any(), "R", models.SignalDraft{ToiletID: "T1"}).
		Return(&models.Signal{ID: uuid.New()}, nil).
		Times(1)

	body := jsonBody(t, map[string]any{"toiletId": "T1", "lat": 0, "lng": 0})
	w := makeRequest(router, "POST", "/api/v1/signals", body, bearer(t, verifier, "R"))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateSignal_CookieAuth(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)
	token, err := verifier.Issue("R", time.Hour)
	require.NoError(t, err)

	mockService.EXPECT().CreateSignal(gomock.Any(), "R", gomock.Any()).Return(&models.Signal{ID: uuid.New()}, nil).Times(1)

	body := jsonBody(t, map[string]any{"toiletId": "T1", "lat": 1, "lng": 2})
	w := makeRequest(router, "POST", "/api/v1/signals", body, map[string]string{"Cookie": "token=" + token})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateSignal_Unauthenticated(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().CreateSignal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body := jsonBody(t, map[string]any{"toiletId": "T1", "lat": 1, "lng": 2})
	w := makeRequest(router, "POST", "/api/v1/signals", body, map[string]string{"Authorization": "Bearer forged"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decodeError(t, w).Error)
}

func TestCreateSignal_InvalidPayload(t *testing.T) {
	cases := map[string]string{
		"broken json":      `{"toiletId": "T1"`,
		"missing toilet":   `{"lat": 1, "lng": 2}`,
		"missing lat":      `{"toiletId": "T1", "lng": 2}`,
		"lat as string":    `{"toiletId": "T1", "lat": "north", "lng": 2}`,
		"lat out of range": `{"toiletId": "T1", "lat": 91, "lng": 2}`,
		"nul in toilet":    `{"toiletId": "T\u00001", "lat": 1, "lng": 2}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			mockService, router, verifier := newTestHandler(t)
			mockService.EXPECT().CreateSignal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "POST", "/api/v1/signals", bytes.NewBufferString(body), bearer(t, verifier, "R"))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid_payload", decodeError(t, w).Error)
		})
	}
}

func TestCreateSignal_AlreadyActive(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)

	mockService.EXPECT().CreateSignal(gomock.Any(), "R", gomock.Any()).Return(nil, service.ErrAlreadyActive).Times(1)

	body := jsonBody(t, map[string]any{"toiletId": "T1", "lat": 1, "lng": 2})
	w := makeRequest(router, "POST", "/api/v1/signals", body, bearer(t, verifier, "R"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "already_active", decodeError(t, w).Error)
}

func TestCreateSignal_ServiceError(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)

	mockService.EXPECT().CreateSignal(gomock.Any(), "R", gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	body := jsonBody(t, map[string]any{"toiletId": "T1", "lat": 1, "lng": 2})
	w := makeRequest(router, "POST", "/api/v1/signals", body, bearer(t, verifier, "R"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestAcceptSignal_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "ok", err: nil, status: http.StatusOK},
		{name: "not found", err: service.ErrNotFound, status: http.StatusNotFound, code: "not_found"},
		{name: "expired", err: service.ErrExpired, status: http.StatusGone, code: "expired"},
		{name: "already accepted", err: &service.ConflictError{Reason: service.ReasonAlreadyAccepted}, status: http.StatusConflict, code: "already_accepted"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router, verifier := newTestHandler(t)
			id := uuid.New()

			var signal *models.Signal
			if tc.err == nil {
				signal = &models.Signal{ID: id}
			}
			mockService.EXPECT().AcceptSignal(gomock.Any(), id, "H").Return(signal, tc.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/signals/accept", jsonBody(t, SignalIDRequest{SignalID: id.String()}), bearer(t, verifier, "H"))

			assert.Equal(t, tc.status, w.Code)
			if tc.code != "" {
				assert.Equal(t, tc.code, decodeError(t, w).Error)
			} else {
				assert.JSONEq(t, `{"ok":true}`, w.Body.String())
			}
		})
	}
}

func TestUnacceptSignal_BadIDs(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)
	mockService.EXPECT().UnacceptSignal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/signals/unaccept", bytes.NewBufferString(`{}`), bearer(t, verifier, "H"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_signal_id", decodeError(t, w).Error)

	w = makeRequest(router, "POST", "/api/v1/signals/unaccept", bytes.NewBufferString(`{"signalId":"nope"}`), bearer(t, verifier, "H"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_signal_id", decodeError(t, w).Error)
}

func TestUnacceptSignal_Unauthenticated(t *testing.T) {
	mockService, router, _ := newTestHandler(t)
	mockService.EXPECT().UnacceptSignal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/signals/unaccept", jsonBody(t, SignalIDRequest{SignalID: uuid.NewString()}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnacceptSignal_Conflict(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().
		UnacceptSignal(gomock.Any(), id, "H").
		Return(nil, &service.ConflictError{Reason: service.ReasonNotYoursOrExpired}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/signals/unaccept", jsonBody(t, SignalIDRequest{SignalID: id.String()}), bearer(t, verifier, "H"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "not_yours_or_expired", decodeError(t, w).Error)
}

func TestCancelAcceptance_Success(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().CancelAcceptance(gomock.Any(), id, "R").Return(&models.Signal{ID: id}, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/signals/accept-cancel", jsonBody(t, SignalIDRequest{SignalID: id.String()}), bearer(t, verifier, "R"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelAcceptance_NotAccepted(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().
		CancelAcceptance(gomock.Any(), id, "R").
		Return(nil, &service.ConflictError{Reason: service.ReasonNotAccepted}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/signals/accept-cancel", jsonBody(t, SignalIDRequest{SignalID: id.String()}), bearer(t, verifier, "R"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "not_accepted", decodeError(t, w).Error)
}

func TestCancelSignal(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)
	id := uuid.New()
	missing := uuid.New()

	gomock.InOrder(
		mockService.EXPECT().CancelSignal(gomock.Any(), id, "R").Return(nil),
		mockService.EXPECT().CancelSignal(gomock.Any(), missing, "R").Return(service.ErrNotFound),
	)

	w := makeRequest(router, "POST", "/api/v1/signals/cancel", jsonBody(t, SignalIDRequest{SignalID: id.String()}), bearer(t, verifier, "R"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "POST", "/api/v1/signals/cancel", jsonBody(t, SignalIDRequest{SignalID: missing.String()}), bearer(t, verifier, "R"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListActiveSignals(t *testing.T) {
	mockService, router, verifier := newTestHandler(t)
	accepter := "H"
	items := []*models.Signal{
		{ID: uuid.New(), ToiletID: "T1", RequesterID: "R", AccepterID: &accepter},
		{ID: uuid.New(), ToiletID: "T2", RequesterID: "X"},
	}

	mockService.EXPECT().ListActive(gomock.Any(), []string{"T1", "T2"}, "R").Return(items, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/signals/active?toiletIds=T1,T2", nil, bearer(t, verifier, "R"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ListSignalsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.Len(t, resp.Items, 2)
	require.NotNil(t, resp.Items[0].AccepterID)
	assert.Equal(t, "H", *resp.Items[0].AccepterID)
	assert.Nil(t, resp.Items[1].AccepterID)
	assert.Contains(t, w.Body.String(), `"accepterId":null`)
}

func TestListActiveSignals_AnonymousWithoutIDs(t *testing.T) {
	mockService, router, _ := newTestHandler(t)

	mockService.EXPECT().ListActive(gomock.Any(), []string(nil), "").Return([]*models.Signal{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/signals/active", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"items":[]}`, w.Body.String())
}

func TestSubscribe_RequiresWebsocketHandshake(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/ws?toiletIds=T1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
