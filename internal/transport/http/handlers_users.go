package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"usercards/internal/users/display"
	"usercards/internal/users/models"
	"usercards/pkg/platform/httputil"
)

//go:generate mockgen -source=handlers_users.go -destination=mocks/users-mocks.go -package=mocks RefreshService

// RefreshService runs one fetch-and-render operation against a display surface.
type RefreshService interface {
	Refresh(ctx context.Context, surface display.Surface) models.FetchOutcome
}

// UsersHandler is the thin HTTP layer over the refresh pipeline. It holds no
// business logic: each trigger builds a fresh HTML surface, hands it to the
// service, and returns whatever fragment the surface ends up with.
type UsersHandler struct {
	logger  *slog.Logger
	service RefreshService
}

// NewUsersHandler creates the users handler.
func NewUsersHandler(service RefreshService, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{
		logger:  logger,
		service: service,
	}
}

// handleRefresh is the zero-argument trigger. The response is always 200 with
// an HTML fragment; failures surface through the fragment's error banner, not
// through the HTTP status.
func (h *UsersHandler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	surface := display.NewHTMLSurface()
	h.service.Refresh(r.Context(), surface)
	httputil.WriteHTML(w, http.StatusOK, surface.Fragment())
}

// handlePage serves the static page shell with the three display regions and
// the trigger button.
func (h *UsersHandler) handlePage(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteHTML(w, http.StatusOK, pageShell)
}
