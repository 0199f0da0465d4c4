package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kickoffqi/demo-app-platform/internal/clock"
	"github.com/kickoffqi/demo-app-platform/internal/dto"
	"github.com/kickoffqi/demo-app-platform/internal/hostinfo"
	"github.com/kickoffqi/demo-app-platform/internal/logging"
)

// Options configures the handler set. Nil collaborators fall back to the
// monotonic clock, per-request OS hostname lookups and slog.Default.
type Options struct {
	Service  string
	Version  string
	Clock    clock.Clock
	Resolver hostinfo.Resolver
	Logger   *slog.Logger
}

type Handler struct {
	service  string
	version  string
	clock    clock.Clock
	resolver hostinfo.Resolver
	logger   *slog.Logger
}

func NewHandler(opts Options) *Handler {
	if opts.Clock == nil {
		opts.Clock = clock.NewMonotonic()
	}
	if opts.Resolver == nil {
		opts.Resolver = hostinfo.System()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Handler{
		service:  opts.Service,
		version:  opts.Version,
		clock:    opts.Clock,
		resolver: opts.Resolver,
		logger:   opts.Logger,
	}
}

// RegisterRoutes mounts the health and index routes.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/healthz", h.Healthz)
	r.Get("/health", h.Health)
	r.Get("/", h.Index)
}

// Healthz reports the service name and the replica that served the request.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writePod(w, r)
}

// Index mirrors Healthz.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.writePod(w, r)
}

// Health reports the service name and build label.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Service: h.service,
		TS:      clock.EpochSeconds(h.clock.Now()),
		Version: h.version,
	})
}

func (h *Handler) writePod(w http.ResponseWriter, r *http.Request) {
	ts := clock.EpochSeconds(h.clock.Now())
	pod, err := h.resolver.Hostname(r.Context())
	if err != nil {
		logging.WithRequestID(r.Context(), h.logger).Error("hostname lookup failed",
			slog.Any("error", err), slog.String("path", r.URL.Path))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, dto.PodResponse{Service: h.service, Pod: pod, TS: ts})
}
