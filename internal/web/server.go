package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phravins/landinggen/internal/components"
	"github.com/phravins/landinggen/internal/markup"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Server exposes the generators over HTTP. Generated code is unescaped
// source text, so it is only ever returned inside JSON strings.
type Server struct {
	logger *zap.Logger
}

func NewServer(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{logger: logger}
}

type renderResponse struct {
	Component string `json:"component"`
	Code      string `json:"code"`
}

type appendRequest struct {
	Items []markup.MenuItem `json:"items"`
	Name  string            `json:"name"`
}

type appendResponse struct {
	Items []markup.MenuItem `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(playgroundPage))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/components", s.listComponents)
		r.Post("/hero", s.renderHero)
		r.Post("/navbar", s.renderNavbar)
		r.Post("/navbar/items", s.appendItem)
	})
	return r
}

func (s *Server) listComponents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, components.List())
}

func (s *Server) renderHero(w http.ResponseWriter, r *http.Request) {
	var cfg markup.HeroConfig
	if !s.decode(w, r, &cfg) {
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{Component: "hero", Code: markup.RenderHero(cfg)})
}

func (s *Server) renderNavbar(w http.ResponseWriter, r *http.Request) {
	var cfg markup.NavbarConfig
	if !s.decode(w, r, &cfg) {
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{Component: "navbar", Code: markup.RenderNavbar(cfg)})
}

func (s *Server) appendItem(w http.ResponseWriter, r *http.Request) {
	var req appendRequest
	if !s.decode(w, r, &req) {
		return
	}
	items := markup.AppendItem(req.Items, req.Name)
	if items == nil {
		items = []markup.MenuItem{}
	}
	writeJSON(w, http.StatusOK, appendResponse{Items: items})
}

// decode reads a JSON body into v, answering 400 itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Debug("rejecting request body",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
