package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	pollerService "github.com/avelichko/rss-channel-bot/internal/modules/poller/service"
	"github.com/avelichko/rss-channel-bot/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes health and poller status over HTTP
type Server struct {
	cfg    *config.Config
	poller *pollerService.Service
	logger *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, poller *pollerService.Service) *Server {
	return &Server{
		cfg:    cfg,
		poller: poller,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /health", s.handleHealth)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Status server starting", "addr", addr)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		pollerService.Status
		FeedURL       string `json:"feed_url"`
		CheckInterval int    `json:"check_interval"`
	}{
		Status:        s.poller.Status(),
		FeedURL:       s.cfg.FeedURL,
		CheckInterval: s.cfg.CheckInterval,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Error marshaling status", "error", err)
		http.Error(w, "Failed to build status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
