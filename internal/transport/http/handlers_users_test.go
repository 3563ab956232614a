package httptransport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"usercards/internal/platform/health"
	"usercards/internal/platform/metrics"
	"usercards/internal/transport/http/mocks"
	"usercards/internal/users/display"
	"usercards/internal/users/fetcher"
	"usercards/internal/users/models"
	"usercards/internal/users/render"
	"usercards/internal/users/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUsersHandler_handleRefresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockRefreshService(ctrl)
	mockService.EXPECT().
		Refresh(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, surface display.Surface) models.FetchOutcome {
			surface.ClearCards()
			surface.AppendCard(render.Card{ID: "1", Name: "Leanne Graham", Username: "Bret", Email: "a@b.c", City: "Gwenborough"})
			return models.Success([]models.UserRecord{{}})
		}).
		Times(1)

	handler := NewUsersHandler(mockService, discardLogger())

	w := httptest.NewRecorder()
	handler.handleRefresh(w, httptest.NewRequest("POST", "/users/refresh", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Leanne Graham")
	assert.Contains(t, w.Body.String(), `class="user-card"`)
}

func TestUsersHandler_handleRefresh_FailureShowsBanner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sentence := render.UserSentence(models.KindNetworkUnreachable)
	mockService := mocks.NewMockRefreshService(ctrl)
	mockService.EXPECT().
		Refresh(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, surface display.Surface) models.FetchOutcome {
			surface.ClearCards()
			surface.ShowError(sentence)
			return models.Failure(models.NewFetchError(models.KindNetworkUnreachable, "dial tcp: refused", nil))
		}).
		Times(1)

	handler := NewUsersHandler(mockService, discardLogger())

	w := httptest.NewRecorder()
	handler.handleRefresh(w, httptest.NewRequest("POST", "/users/refresh", nil))

	// Failures still answer 200; the error travels inside the fragment.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), sentence)
	assert.NotContains(t, w.Body.String(), "dial tcp")
}

func TestUsersHandler_handlePage(t *testing.T) {
	handler := NewUsersHandler(nil, discardLogger())

	w := httptest.NewRecorder()
	handler.handlePage(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="refresh"`)
	assert.Contains(t, body, `id="loading"`)
	assert.Contains(t, body, `id="error"`)
	assert.Contains(t, body, `id="user-cards"`)
}

// TestRouter_RefreshEndToEnd runs the full stack (router, middleware, service,
// fetcher) against a stub upstream.
func TestRouter_RefreshEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"<b>Leanne</b>","address":{"city":"Gwenborough"}}]`))
	}))
	defer upstream.Close()

	logger := discardLogger()
	svc := service.New(
		fetcher.New(upstream.URL),
		logger,
		metrics.NewWith(prometheus.NewRegistry()),
	)
	router := NewRouter(NewUsersHandler(svc, logger), health.New("test"), logger)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/users/refresh", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "&lt;b&gt;Leanne&lt;&#x2F;b&gt;")
	assert.NotContains(t, body, "<b>Leanne</b>")
	assert.Contains(t, body, "Gwenborough")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_HealthAndMetricsMounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(
		NewUsersHandler(mocks.NewMockRefreshService(ctrl), discardLogger()),
		health.New("test"),
		discardLogger(),
	)

	for _, path := range []string{"/health", "/health/live", "/health/ready", "/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}
