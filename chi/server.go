// Package chi implements the scraper's web form over the chi router:
// a single page where a URL is pasted and the detected prices come
// back as a table.
package chi

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// SiteScraper runs a whole-site price sweep. Implemented by
// crawl.Scraper.
type SiteScraper interface {
	Site(ctx context.Context, url string) ([]scrapper.PriceResult, int, error)
}

// Server serves the scraper form UI.
type Server struct {
	Addr    string
	Scraper SiteScraper
	Logger  *slog.Logger

	ln     net.Listener
	server *http.Server
}

// NewServer creates a Server bound to addr. Open starts it.
func NewServer(addr string, scraper SiteScraper, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{Addr: addr, Scraper: scraper, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Get("/", s.handleIndex)
	r.Post("/", s.handleIndex)

	s.server = &http.Server{Handler: r}
	return s
}

// Open begins listening and serving in a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("server stopped", "err", err)
		}
	}()
	s.Logger.Info("listening", "addr", s.URL())
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the server's base URL. Useful when Addr requested an
// ephemeral port.
func (s *Server) URL() string {
	if s.ln == nil {
		return "http://" + s.Addr
	}
	return "http://" + s.ln.Addr().String()
}

type requestIDKey struct{}

// requestID tags every request with a UUID, echoed in X-Request-Id.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		next.ServeHTTP(w, r)
		id, _ := r.Context().Value(requestIDKey{}).(string)
		s.Logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(begin),
		)
	})
}
