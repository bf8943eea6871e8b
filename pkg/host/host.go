// Package host exposes panel scenes to connecting clients over HTTP.
//
// The host is the session boundary of the system: each client connection
// becomes a session with its own in-memory scene backend, and every scene
// operation the application performs is journaled so the client can replay
// it. The layout core itself knows nothing about sessions; the host simply
// builds a scene per session by invoking the registered App with the
// client-supplied parameters.
//
// # Endpoints
//
//	POST   /sessions              create a session (body: {"params": {...}})
//	GET    /sessions/{id}         session summary
//	GET    /sessions/{id}/journal recorded scene operations
//	DELETE /sessions/{id}         drop a session
//	GET    /healthz               liveness probe
package host

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/panelgrid/panelgrid/pkg/errors"
	"github.com/panelgrid/panelgrid/pkg/scene/memory"
)

// Session is one client's scene: a private backend, its journal, and the
// parameters the client supplied at connection time.
type Session struct {
	ID        uuid.UUID
	Params    map[string]string
	Backend   *memory.Backend
	Journal   *Journal
	CreatedAt time.Time
}

// App composes a scene for a newly created session. Returning an error
// aborts session creation and surfaces the failure to the client unchanged.
type App func(sess *Session) error

// Server manages sessions and serves the HTTP surface.
//
// Scene graphs are single-threaded by contract, so the server serializes all
// session work behind one mutex rather than locking inside the scene model.
type Server struct {
	app    App
	logger *log.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewServer creates a host that builds each session's scene with app.
func NewServer(app App, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		app:      app,
		logger:   logger,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Handler returns the HTTP handler for the host surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/sessions", s.handleCreateSession)
	r.Get("/sessions/{id}", s.handleGetSession)
	r.Get("/sessions/{id}/journal", s.handleGetJournal)
	r.Delete("/sessions/{id}", s.handleDeleteSession)

	return r
}

// CreateSession builds a new journaled session and runs the app against it.
func (s *Server) CreateSession(params map[string]string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.New(),
		Params:    params,
		Backend:   memory.New(),
		Journal:   NewJournal(),
		CreatedAt: time.Now(),
	}
	sess.Backend.SetObserver(sess.Journal)

	if s.app != nil {
		if err := s.app(sess); err != nil {
			return nil, err
		}
	}

	s.sessions[sess.ID] = sess
	s.logger.Info("session created", "id", sess.ID, "ops", sess.Journal.Len())
	return sess, nil
}

// Session returns the session with the given id.
func (s *Server) Session(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %s not found", id)
	}
	return sess, nil
}

// DropSession removes a session. Dropping an unknown session is a no-op.
func (s *Server) DropSession(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

type createSessionRequest struct {
	Params map[string]string `json:"params"`
}

type sessionSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Nodes     int       `json:"nodes"`
	Ops       int       `json:"ops"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
			return
		}
	}

	sess, err := s.CreateSession(req.Params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.summarize(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.summarize(sess))
}

func (s *Server) handleGetJournal(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	ops := sess.Journal.Ops()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"ops": ops})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse session id"))
		return
	}
	s.DropSession(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse session id"))
		return nil, false
	}
	sess, err := s.Session(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) summarize(sess *Session) sessionSummary {
	return sessionSummary{
		ID:        sess.ID.String(),
		CreatedAt: sess.CreatedAt,
		Nodes:     len(sess.Backend.Nodes()),
		Ops:       sess.Journal.Len(),
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"code":  string(errors.GetCode(err)),
		"error": errors.UserMessage(err),
	})
}
