// Package server exposes the registered simulations over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"antgrid/internal/core"
	"antgrid/internal/render"
	"antgrid/internal/sims/ant"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

const (
	contentTypeProto = "application/x-protobuf"
	shutdownTimeout  = 5 * time.Second
)

// tracer is implemented by sims that can report individual steps.
type tracer interface {
	SetTrace(ant.TraceFunc)
}

// Server serves simulation runs. Every request runs on its own grid.
type Server struct {
	cfg   Config
	log   *log.Logger
	http  *http.Server
	newID func() string
}

// New constructs a Server for cfg logging to logger.
func New(cfg Config, logger *log.Logger) *Server {
	s := &Server{
		cfg:   cfg,
		log:   logger,
		newID: uuid.NewString,
	}
	s.http = &http.Server{
		Addr:           cfg.Listen,
		Handler:        s.Handler(),
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 16,
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/simulations/", s.listSimulations).Methods("GET")
	router.HandleFunc("/simulations/{sim}", s.runSimulation).Methods("PUT")
	router.PathPrefix("/").Handler(http.NotFoundHandler())
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Printf("Listening on http://%s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type simulationInfo struct {
	Name       string                  `json:"name"`
	Parameters *core.ParameterSnapshot `json:"parameters,omitempty"`
}

func (s *Server) listSimulations(w http.ResponseWriter, r *http.Request) {
	items := []simulationInfo{}
	for _, name := range core.Names() {
		info := simulationInfo{Name: name}
		if p, ok := core.Sims()[name](nil).(core.ParameterProvider); ok {
			snap := p.Parameters()
			info.Parameters = &snap
		}
		items = append(items, info)
	}
	s.jsonResponse(w, r, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) runSimulation(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["sim"]
	factory, ok := core.Sims()[name]
	if !ok {
		s.textResponse(w, r, http.StatusNotFound, fmt.Sprintf("Unknown simulation %q.", name))
		return
	}

	query := r.URL.Query()
	steps, err := s.parseSteps(query.Get("steps"))
	if err != nil {
		s.textResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	params := make(map[string]string, len(query))
	for key, values := range query {
		if key != "steps" && len(values) > 0 {
			params[key] = values[0]
		}
	}

	sim := factory(params)
	sim.Reset(0)
	if t, ok := sim.(tracer); ok && s.cfg.Debug {
		t.SetTrace(func(step int, from, dir, to core.Vector) {
			s.log.Printf("[Step %d] Moving from %v in the direction %v to %v", step, from, dir, to)
		})
	}
	res, err := render.Run(sim, steps, s.newID(), s.cfg.MaxRenderCells)
	if errors.Is(err, render.ErrTooLarge) {
		s.textResponse(w, r, http.StatusUnprocessableEntity,
			fmt.Sprintf("Rendered grid exceeds %d cells.", s.cfg.MaxRenderCells))
		return
	}
	if err != nil {
		s.textResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if s.cfg.Debug {
		b := res.Bounds
		s.log.Printf("[Draw] Grid corners - Top left: (%d, %d) - Bottom right: (%d, %d)",
			b.MinX, b.MaxY, b.MaxX, b.MinY)
	}

	if wantsProto(r) {
		s.writeAttachment(w, r, contentTypeProto, res.Filename(), res.MarshalProto())
		return
	}
	var body bytes.Buffer
	if err := render.WriteText(&body, res.Rows); err != nil {
		s.textResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeAttachment(w, r, "application/octet-stream", res.Filename(), body.Bytes())
}

// parseSteps applies the default and the configured bounds to the raw steps
// query value.
func (s *Server) parseSteps(raw string) (int, error) {
	if raw == "" {
		return s.cfg.DefaultSteps, nil
	}
	steps, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("Steps must be a valid integer greater than zero.")
	}
	if steps < 1 {
		return 0, errors.New("Steps must be greater than zero.")
	}
	if steps > s.cfg.MaxSteps {
		return 0, fmt.Errorf("Steps must not exceed %d.", s.cfg.MaxSteps)
	}
	return steps, nil
}

func wantsProto(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if mediaType == contentTypeProto {
			return true
		}
	}
	return false
}

func (s *Server) writeAttachment(w http.ResponseWriter, r *http.Request, contentType, filename string, body []byte) {
	s.log.Printf("%d %s", http.StatusOK, r.URL.Path)
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Disposition", "attachment; filename="+filename)
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.log.Printf("write %s: %v", r.URL.Path, err)
	}
}

func (s *Server) textResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.log.Printf("%d %s: %s", status, r.URL.Path, msg)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(msg)); err != nil {
		s.log.Printf("write %s: %v", r.URL.Path, err)
	}
}

func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.log.Printf("%d %s", status, r.URL.Path)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Printf("encode %s: %v", r.URL.Path, err)
	}
}
