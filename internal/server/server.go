package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/alexisbeaulieu97/brutalist/internal/components"
	"github.com/alexisbeaulieu97/brutalist/internal/document"
	"github.com/alexisbeaulieu97/brutalist/internal/events"
	"github.com/alexisbeaulieu97/brutalist/internal/logger"
	"github.com/alexisbeaulieu97/brutalist/internal/theme"
	"github.com/alexisbeaulieu97/brutalist/internal/utility"
)

const maxBodyBytes = 1 << 20

// Server exposes the active theme, the utility engine and a live preview
// channel over HTTP.
type Server struct {
	provider    *theme.Provider
	doc         *document.Document
	log         *logger.Logger
	ws          *WSConnectionManager
	upgrader    websocket.Upgrader
	unsubscribe func()
	eventSub    events.Subscription

	galleryOnce sync.Once
	gallery     map[components.Variant]*utility.Instance
}

// New wires a server to provider and doc. Every document change is
// broadcast to connected websocket clients until Close.
func New(provider *theme.Provider, doc *document.Document, log *logger.Logger) *Server {
	s := &Server{
		provider: provider,
		doc:      doc,
		log:      log.Component("server"),
		ws:       NewWSConnectionManager(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.unsubscribe = doc.Subscribe(func(change document.Change) {
		s.ws.Broadcast(change)
	})
	return s
}

// eventMessage is the websocket frame for a theme event.
type eventMessage struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// ForwardEvents relays every theme event from pub to preview clients until
// Close. Events arrive after the document changes they describe.
func (s *Server) ForwardEvents(pub events.Publisher) {
	if pub == nil {
		return
	}
	if s.eventSub != nil {
		s.eventSub.Unsubscribe()
	}
	s.eventSub = pub.Subscribe(events.AllEvents, func(_ context.Context, e events.Event) error {
		s.ws.Broadcast(eventMessage{Type: e.EventType(), Payload: e.Payload()})
		return nil
	})
}

// Register mounts the API on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/themes", s.handleThemes)
	mux.HandleFunc("GET /api/themes/{id}", s.handleThemeByID)
	mux.HandleFunc("GET /api/theme", s.handleCurrentTheme)
	mux.HandleFunc("PUT /api/theme", s.handleSetTheme)
	mux.HandleFunc("POST /api/theme/select/{id}", s.handleSelectTheme)
	mux.HandleFunc("POST /api/theme/random", s.handleRandomTheme)
	mux.HandleFunc("POST /api/theme/reset", s.handleResetTheme)
	mux.HandleFunc("GET /api/theme/css", s.handleThemeCSS)
	mux.HandleFunc("GET /api/theme/export", s.handleThemeExport)
	mux.HandleFunc("POST /api/utilities/resolve", s.handleResolveUtilities)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// Handler returns a mux with every route registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

// Close stops broadcasting and disconnects preview clients.
func (s *Server) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.eventSub != nil {
		s.eventSub.Unsubscribe()
		s.eventSub = nil
	}
	s.closeGallery()
	s.ws.CloseAll()
}

// ListenAndServe runs the server on addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("preview server listening", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down preview server")
	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type themeResponse struct {
	Theme  theme.Theme `json:"theme"`
	Source string      `json:"source"`
	Status string      `json:"status"`
}

type themeListEntry struct {
	theme.Theme
	Active bool `json:"active"`
}

type resolveRequest struct {
	ClassName string            `json:"className"`
	Style     map[string]string `json:"style"`
	Base      []string          `json:"base"`
}

type resolveResponse struct {
	ClassName string            `json:"className"`
	Style     map[string]string `json:"style"`
	CSS       string            `json:"css"`
	Scope     string            `json:"scope,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"theme":   s.provider.Current().ID,
		"clients": s.ws.Count(),
	})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	active := s.provider.Current()
	builtins := theme.BuiltinThemes()
	out := make([]themeListEntry, 0, len(builtins))
	for _, t := range builtins {
		out = append(out, themeListEntry{Theme: t, Active: t.Equal(active)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleThemeByID(w http.ResponseWriter, r *http.Request) {
	t, ok := theme.GetThemeByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown theme id")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleCurrentTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.currentTheme())
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read body")
		return
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !s.provider.SetTheme(r.Context(), json.RawMessage(body)) {
		writeError(w, http.StatusUnprocessableEntity, "invalid theme")
		return
	}
	writeJSON(w, http.StatusOK, s.currentTheme())
}

func (s *Server) handleSelectTheme(w http.ResponseWriter, r *http.Request) {
	if !s.provider.SetThemeByID(r.Context(), r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "unknown theme id")
		return
	}
	writeJSON(w, http.StatusOK, s.currentTheme())
}

func (s *Server) handleRandomTheme(w http.ResponseWriter, r *http.Request) {
	s.provider.RandomizeTheme(r.Context())
	writeJSON(w, http.StatusOK, s.currentTheme())
}

func (s *Server) handleResetTheme(w http.ResponseWriter, r *http.Request) {
	s.provider.ResetToDefault(r.Context())
	writeJSON(w, http.StatusOK, s.currentTheme())
}

func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, theme.GenerateCSSVariables(s.provider.Current())+"\n")
}

func (s *Server) handleThemeExport(w http.ResponseWriter, r *http.Request) {
	current := s.provider.Current()
	component := r.URL.Query().Get("component")
	if component != "" && !theme.ValidComponentName(component) {
		writeError(w, http.StatusBadRequest, "invalid component name")
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "object":
		writeText(w, "application/javascript; charset=utf-8", theme.GenerateThemeObject(current))
	case "react":
		writeText(w, "text/plain; charset=utf-8", theme.GenerateReactScaffold(current, component))
	case "project":
		writeJSON(w, http.StatusOK, theme.GenerateProjectFiles(current, component))
	default:
		writeError(w, http.StatusBadRequest, "unknown export format "+format)
	}
}

func (s *Server) handleResolveUtilities(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	inst := utility.NewInstance(s.doc, utility.WithLogger(s.log))
	res := inst.Resolve(req.ClassName, utility.Style(req.Style), req.Base...)
	inst.Close()

	resp := resolveResponse{
		ClassName: res.ClassName,
		Style:     res.Style,
		CSS:       res.CSS,
	}
	if res.CSS != "" {
		resp.Scope = inst.Scope()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}
	s.ws.Add(conn)
	s.log.Debug("preview client connected", map[string]any{"remote": r.RemoteAddr})

	for _, change := range s.doc.Snapshot() {
		if err := s.ws.WriteJSON(conn, change); err != nil {
			s.ws.Remove(conn)
			return
		}
	}

	go s.readLoop(conn)
}

// readLoop drains client frames so close and ping control messages are processed.
func (s *Server) readLoop(conn *websocket.Conn) {
	defer s.ws.Remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) currentTheme() themeResponse {
	return themeResponse{
		Theme:  s.provider.Current(),
		Source: string(s.provider.Source()),
		Status: s.provider.Status().String(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeText(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}
