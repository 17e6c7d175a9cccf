// Package web runs the keep-alive HTTP server hosting platforms probe to
// decide the service is up.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const jsonContentType = "application/json"

const banner = "Pivnoi Vopros Bot is running!"

// Server is the keep-alive HTTP server.
type Server struct {
	srv *http.Server
}

func NewServer(listenAddr string) *Server {
	s := &Server{}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.chain(healthHandler))
	mux.HandleFunc("/", s.chain(rootHandler))

	s.srv = &http.Server{
		Addr:         listenAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// chain tags the request with a request ID and logs it.
func (*Server) chain(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       r.URL.Path,
			"method":     r.Method,
		}).Debug("Keep-alive request")

		h(w, r)
	}
}

// rootHandler answers every probe path with the plain-text banner, the way
// the hosting platform expects.
func rootHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(banner))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		logrus.WithError(err).Warn("Failed to encode health response")
	}
}

// Handler exposes the mux, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start listens and serves. Blocks until Shutdown is called.
func (s *Server) Start() error {
	logrus.WithField("addr", s.srv.Addr).Info("Keep-alive server starting")
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
