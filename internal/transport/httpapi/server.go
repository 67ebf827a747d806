package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sandevgo/medicbot/internal/config"
	"github.com/sandevgo/medicbot/internal/core"
	"github.com/sandevgo/medicbot/pkg/log"
)

// Answerer runs free-text questions within a conversation.
type Answerer interface {
	Answer(ctx context.Context, conversationID, question string, opts core.GenOptions) (string, error)
}

type qaRequest struct {
	Question    string  `json:"question"`
	Temperature float64 `json:"temperature"`
	MaxLength   int     `json:"max_length"`
	TopK        int     `json:"top_k"`
	// ConfidenceThreshold is accepted for compatibility and ignored.
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	SessionID           string  `json:"session_id,omitempty"`
}

func newQARequest() qaRequest {
	return qaRequest{
		Temperature:         0.7,
		MaxLength:           500,
		TopK:                3,
		ConfidenceThreshold: 0.5,
	}
}

func (r qaRequest) options() core.GenOptions {
	temperature := r.Temperature
	return core.GenOptions{
		Temperature: &temperature,
		MaxTokens:   r.MaxLength,
		TopK:        r.TopK,
	}
}

type qaResponse struct {
	Answer         string   `json:"answer"`
	Links          []string `json:"links"`
	RequestID      string   `json:"request_id"`
	ProcessingTime float64  `json:"processing_time"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Server struct {
	cfg    *config.HTTPConfig
	answer Answerer
	server *http.Server
	now    func() time.Time
}

func NewServer(ctx context.Context, cfg *config.HTTPConfig, answer Answerer) *Server {
	s := &Server{
		cfg:    cfg,
		answer: answer,
		now:    time.Now,
	}

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return log.WithComponent(ctx, "http")
		},
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /qa", s.handleQA)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("starting http server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleQA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.FromCtx(ctx)
	start := s.now()

	req := newQARequest()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request: %w", err))
		return
	}
	if req.Question == "" {
		writeError(w, errors.New("question is required"))
		return
	}

	answer, err := s.answer.Answer(ctx, req.SessionID, req.Question, req.options())
	if err != nil {
		logger.Error().Err(err).Msg("qa failed")
		writeError(w, err)
		return
	}

	elapsed := s.now().Sub(start).Seconds()
	writeJSON(w, http.StatusOK, qaResponse{
		Answer:         answer,
		Links:          []string{},
		RequestID:      uuid.NewString(),
		ProcessingTime: math.Round(elapsed*100) / 100,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC().Format("2006-01-02T15:04:05Z"),
	})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error: err.Error(),
		Code:  http.StatusInternalServerError,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
