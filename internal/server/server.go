// Package server is the local development server: it owns an engine, takes
// directives over HTTP or from a watched file, and pushes scene and camera
// updates to renderers over a websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/camera"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/engine"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/labels"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/scene2d"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/validation"
)

const maxBodyBytes = 1 << 20

// Options configures a Server.
type Options struct {
	Addr      string
	FrameRate int    // camera ticks per second
	Watch     string // directive file to reload on change, optional
	Logger    *slog.Logger
}

// Server serves one engine over HTTP.
type Server struct {
	opts   Options
	log    *slog.Logger
	router *mux.Router
	slot   *Slot
	hub    *hub

	mu     sync.Mutex // guards engine
	engine *engine.Engine
}

// New creates a server around eng.
func New(eng *engine.Engine, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}
	s := &Server{
		opts:   opts,
		log:    opts.Logger,
		router: mux.NewRouter(),
		slot:   NewSlot(),
		hub:    newHub(opts.Logger),
		engine: eng,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWebSocket).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/scene", s.handleScene).Methods(http.MethodGet)
	api.HandleFunc("/plan", s.handlePlan).Methods(http.MethodGet)
	api.HandleFunc("/directive", s.handleDirective).Methods(http.MethodPost)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/labels", s.handleLabels).Methods(http.MethodPost)
	api.HandleFunc("/camera", s.handleCamera).Methods(http.MethodGet)
	api.HandleFunc("/camera/interaction", s.handleInteraction).Methods(http.MethodPost)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled. It starts the directive applier, the
// camera ticker and, when configured, the file watcher.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.opts.Watch != "" {
		if err := s.watch(ctx, s.opts.Watch); err != nil {
			return err
		}
	}
	go s.applyLoop(ctx)
	go s.tickLoop(ctx)

	srv := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", s.opts.Addr, "frame_rate", s.opts.FrameRate, "watch", s.opts.Watch)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", s.opts.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

func (s *Server) applyLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.slot.Ready():
			s.ApplyPending()
		}
	}
}

func (s *Server) tickLoop(ctx context.Context) {
	dt := 1 / float64(s.opts.FrameRate)
	t := time.NewTicker(time.Second / time.Duration(s.opts.FrameRate))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Tick(dt)
		}
	}
}

// ApplyPending applies the directive in the slot, if any, and broadcasts
// the new scene. It reports whether a directive was applied.
func (s *Server) ApplyPending() bool {
	d, ok := s.slot.Take()
	if !ok {
		return false
	}
	s.mu.Lock()
	res := s.engine.Apply(d)
	s.mu.Unlock()

	if res.Rebuilt || !res.Diff.Empty() {
		s.hub.broadcast(sceneMessage(res))
	}
	s.hub.broadcast(Message{Type: "camera", Payload: res.Camera})
	return true
}

// Tick advances the camera by dt seconds and broadcasts it while it moves.
func (s *Server) Tick(dt float64) {
	s.mu.Lock()
	before := s.engine.Camera()
	after := s.engine.Frame(dt)
	s.mu.Unlock()
	if after.Live != before.Live {
		s.hub.broadcast(Message{Type: "camera", Payload: after})
	}
}

func sceneMessage(res engine.Result) Message {
	return Message{Type: "scene", Payload: map[string]any{
		"config":  res.Config,
		"diff":    res.Diff,
		"changed": res.Diff.Changed(),
		"report":  res.Report,
	}}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	key := s.engine.Config().Key
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "key": key, "clients": s.hub.count()})
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	c := s.engine.Config()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handlePlan(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	c := s.engine.Config()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, scene2d.Assemble2D(c))
}

func (s *Server) handleDirective(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("reading body: %w", err))
		return
	}
	report := validation.ValidateSchema(body)
	if !report.Valid {
		writeJSON(w, http.StatusBadRequest, map[string]any{"queued": false, "report": report})
		return
	}
	var d directive.Directive
	if err := json.Unmarshal(body, &d); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding directive: %w", err))
		return
	}

	s.mu.Lock()
	known := s.engine.Config().ZoneIDs()
	s.mu.Unlock()
	report.Merge(validation.ValidateDirective(&d, known))

	replaced := s.slot.Put(d)
	s.log.Debug("directive queued", "replaced", replaced, "findings", report.Summary, "paths", report.Paths())
	writeJSON(w, http.StatusAccepted, map[string]any{"queued": true, "replaced": replaced, "report": report})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	res := s.engine.Reset()
	s.mu.Unlock()
	s.hub.broadcast(sceneMessage(res))
	s.hub.broadcast(Message{Type: "camera", Payload: res.Camera})
	writeJSON(w, http.StatusOK, map[string]any{"key": res.Config.Key, "diff": res.Diff})
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	var in []labels.Label
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding labels: %w", err))
		return
	}
	s.mu.Lock()
	out := s.engine.Labels(in)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCamera(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	st := s.engine.Camera()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, st)
}

// interaction is a user camera event: begin, update (with live) or end.
type interaction struct {
	Action string            `json:"action"`
	Live   *camera.Transform `json:"live,omitempty"`
}

func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	var in interaction
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding interaction: %w", err))
		return
	}
	st, err := s.interact(in)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) interact(in interaction) (camera.State, error) {
	s.mu.Lock()
	var st camera.State
	switch in.Action {
	case "begin":
		st = s.engine.BeginInteraction()
	case "update":
		if in.Live == nil {
			s.mu.Unlock()
			return camera.State{}, errors.New("update requires live")
		}
		st = s.engine.MoveCamera(*in.Live)
	case "end":
		st = s.engine.EndInteraction()
	default:
		s.mu.Unlock()
		return camera.State{}, fmt.Errorf("unknown action %q", in.Action)
	}
	s.mu.Unlock()
	s.hub.broadcast(Message{Type: "camera", Payload: st})
	return st, nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	snapshot := func() []Message {
		s.mu.Lock()
		defer s.mu.Unlock()
		return []Message{
			{Type: "scene", Payload: map[string]any{"config": s.engine.Config()}},
			{Type: "camera", Payload: s.engine.Camera()},
		}
	}
	s.hub.serve(w, r, snapshot, s.handleClientMessage)
}

// handleClientMessage accepts camera interaction events from renderers.
func (s *Server) handleClientMessage(data []byte) {
	var in interaction
	if err := json.Unmarshal(data, &in); err != nil {
		s.log.Debug("ignoring client message", "err", err)
		return
	}
	if _, err := s.interact(in); err != nil {
		s.log.Debug("ignoring client interaction", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("writing response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
