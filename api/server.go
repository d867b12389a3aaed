// Package api serves a live preview of the frames being rendered.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/matt-g-everett/mathanim/internal/logging"
	"github.com/matt-g-everett/mathanim/render"
	"github.com/matt-g-everett/mathanim/stream"
)

// Config for the preview server.
type Config struct {
	Addr   string `yaml:"addr"`
	Static string `yaml:"static"`
}

// Enabled reports whether the preview server was configured.
func (c Config) Enabled() bool {
	return c.Addr != ""
}

// Api keeps the latest frame and serves it over HTTP.
type Api struct {
	config Config
	raster *render.Rasterizer

	mu    sync.RWMutex
	frame *stream.Frame
}

// NewApi creates a preview server. raster is used for /frame.png and may
// be nil, in which case only the JSON view is served.
func NewApi(config Config, raster *render.Rasterizer) *Api {
	a := new(Api)
	a.config = config
	a.raster = raster
	return a
}

// RenderFrame records f as the latest frame.
func (a *Api) RenderFrame(f *stream.Frame) error {
	a.mu.Lock()
	a.frame = f
	a.mu.Unlock()
	return nil
}

// Latest returns the most recent frame, or nil before the first one.
func (a *Api) Latest() *stream.Frame {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frame
}

// Handler returns the HTTP routes of the preview.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /frame", a.handleFrame)
	if a.raster != nil {
		mux.HandleFunc("GET /frame.png", a.handleImage)
	}
	if a.config.Static != "" {
		mux.Handle("/", http.FileServer(http.Dir(a.config.Static)))
	}
	return mux
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	f := a.Latest()
	if f == nil {
		http.Error(w, "no frame rendered yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(f); err != nil {
		logging.Logger().Warn("preview write failed", "path", r.URL.Path, "err", err)
	}
}

func (a *Api) handleImage(w http.ResponseWriter, r *http.Request) {
	f := a.Latest()
	if f == nil {
		http.Error(w, "no frame rendered yet", http.StatusNotFound)
		return
	}
	img, err := a.raster.Rasterize(f)
	if err != nil {
		logging.Logger().Warn("preview drawn with errors", "frame", f.Index, "err", err)
	}
	w.Header().Set("Content-Type", "image/png")
	if err := render.EncodePNG(w, img); err != nil {
		logging.Logger().Warn("preview write failed", "path", r.URL.Path, "err", err)
	}
}

// Serve listens on the configured address until ctx is done.
func (a *Api) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.config.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	logging.Logger().Info("preview listening", "addr", a.config.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
