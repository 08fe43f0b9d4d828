// Package server exposes dungeon generation over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/bspdungeon/internal/dungeon"
	"github.com/samdwyer/bspdungeon/internal/export"
	"github.com/samdwyer/bspdungeon/internal/presets"
	"github.com/samdwyer/bspdungeon/internal/render"
	"github.com/samdwyer/bspdungeon/internal/rng"
	"github.com/samdwyer/bspdungeon/internal/telemetry"
	"github.com/samdwyer/bspdungeon/internal/world"
)

// Server holds shared state for HTTP handlers.
type Server struct {
	registry *presets.Registry
}

// New creates a Server serving the given presets.
func New(registry *presets.Registry) *Server {
	return &Server{registry: registry}
}

// RegisterRoutes sets up all API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/level", s.handleLevel)
	mux.HandleFunc("/api/presets", s.handlePresets)
	mux.HandleFunc("/healthz", s.handleHealth)
}

// Handler returns a mux with every route registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return mux
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, span := telemetry.Tracer("server").Start(r.Context(), "server.level")
	defer span.End()

	q := r.URL.Query()
	preset, err := s.registry.Lookup(strings.TrimSpace(q.Get("preset")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	seed, err := rng.ResolveSeed(strings.TrimSpace(q.Get("seed")), q.Get("text"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfg, err := preset.Config(seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	lvl, err := dungeon.Generate(ctx, cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dungeon.ErrInvalidSize) || errors.Is(err, rng.ErrShortSeed) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	format := q.Get("format")
	if format == "" {
		format = "json"
	}
	span.SetAttributes(
		attribute.String("level.preset", preset.ID),
		attribute.String("level.format", format),
	)

	body, contentType, err := encode(lvl, preset, format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("ETag", strconv.Quote(strconv.FormatUint(lvl.Fingerprint(), 16)))
	w.Header().Set("X-Dungeon-Seed", seed)
	_, _ = w.Write(body)
}

func encode(lvl *world.Level, preset *presets.Preset, format string) ([]byte, string, error) {
	var buf bytes.Buffer

	switch format {
	case "json":
		if err := export.WriteJSON(&buf, lvl); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "application/json", nil
	case "txt", "text":
		buf.WriteString(lvl.String())
		return buf.Bytes(), "text/plain; charset=utf-8", nil
	case "png":
		opts, err := preset.RenderOptions()
		if err != nil {
			return nil, "", err
		}
		if err := render.PNG(&buf, lvl, opts); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/png", nil
	default:
		return nil, "", fmt.Errorf("unknown format %q", format)
	}
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.registry.All())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
