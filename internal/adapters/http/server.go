package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ats/internal/api"
	"ats/internal/domain"
	"ats/internal/ports"
	"ats/internal/ratelimit"
	"ats/internal/services/pipeline"
)

// ActorHeader identifies who performs a mutation. It ends up as the actor of
// every transition the request records.
const ActorHeader = "X-Actor-ID"

// Server implements the generated StrictServerInterface.
type Server struct {
	apps    ports.Applications
	catalog *domain.Catalog
	table   *domain.TransitionTable
	limiter ratelimit.Limiter
	logger  *slog.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

// New serves apps with the stage catalog and transition table the machine
// enforces, so /pipeline/stages always describes the rules in force.
func New(apps ports.Applications, machine *pipeline.Machine, limiter ratelimit.Limiter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{apps: apps, catalog: machine.Catalog(), table: machine.Table(), limiter: limiter, logger: logger}
}

// Routes returns a chi.Router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/openapi.yaml", s.getOpenAPI)

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.writeRequestError,
		ResponseErrorHandlerFunc: s.writeDomainError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{s.rateLimit},
		ErrorHandlerFunc: s.writeParamError,
	})
	return r
}

func (s *Server) getOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(api.Spec)
}

// rateLimit runs after parameter binding, so mutations reaching it carry a
// non-empty actor header.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter == nil || r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}
		if !s.limiter.Allow(strings.TrimSpace(r.Header.Get(ActorHeader))) {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
