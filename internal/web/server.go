// Package web serves the browser shell of the menu editor.
//
// The shell renders the menu form, the inventory grid and the generated
// configuration server side. Every mutation is a form POST answered with a
// redirect back to the page, so the Editor stays the only owner of state.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/menusmith/internal/metrics"
	"github.com/aretw0/menusmith/internal/platform"
	"github.com/aretw0/menusmith/pkg/adapters/fs"
	"github.com/aretw0/menusmith/pkg/core"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	// WelcomeMessage greets the first page load.
	WelcomeMessage = "Welcome to Deluxe Menu Editor! 🎨"

	// Copy button outcomes, shown by the page script.
	CopySuccessMessage = "Copied to clipboard!"
	CopyFailureMessage = "Copy failed. Please try again."

	shutdownTimeout = 5 * time.Second
	maxUploadBytes  = 1 << 20
)

// Server is the HTTP shell around a single Editor.
type Server struct {
	editor     *core.Editor
	exporter   *fs.Exporter
	exportName string
	logger     *slog.Logger
	notes      *notifier
	page       *template.Template
	router     chi.Router
	started    time.Time
}

// NewServer creates the shell for app and queues the welcome notification.
func NewServer(app *platform.App) (*Server, error) {
	page, err := template.New("index.html").ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		editor:     app.Editor,
		exporter:   app.Exporter,
		exportName: app.ExportName,
		logger:     app.Logger,
		notes:      newNotifier(app.NotificationTTL),
		page:       page,
		started:    time.Now(),
	}
	s.router = s.routes()
	s.notes.push(KindInfo, WelcomeMessage)
	s.observe()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/menu", s.handleMenu)

	r.Post("/slots/{slot}", s.handleSlot)
	r.Route("/items", func(r chi.Router) {
		r.Post("/new", s.handleNewItem)
		r.Post("/save", s.handleSaveItem)
		r.Post("/cancel", s.handleCancelItem)
		r.Post("/{index}/edit", s.handleEditItem)
		r.Post("/{index}/delete", s.handleDeleteItem)
	})

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(60, time.Minute))
		r.Get("/export", s.handleDownload(fs.DefaultExportName))
		r.Get("/export.json", s.handleDownload("menu.json"))
		r.Post("/export/save", s.handleSaveExport)
		r.Post("/import", s.handleImport)
	})

	r.Get("/preview.yml", s.handlePreview)
	r.Get("/api/menu", s.handleAPIMenu)
	r.Get("/debug/state", s.handleState)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Handler returns the HTTP handler of the shell.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lifecycle.Go(ctx, func(gctx context.Context) error {
		select {
		case <-ctx.Done():
		case <-gctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	s.logger.Info("menu editor listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("menu editor stopped")
	return nil
}

func (s *Server) observe() {
	m := s.editor.Snapshot()
	metrics.ObserveMenu(m.Size, len(m.Items))
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
