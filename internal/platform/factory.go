package platform

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/menusmith/pkg/adapters/fs"
	"github.com/aretw0/menusmith/pkg/core"
)

// App wires the editor with its exporter and shell settings.
type App struct {
	Editor          *core.Editor
	Exporter        *fs.Exporter
	Logger          *slog.Logger
	ExportName      string
	NotificationTTL time.Duration
}

// New builds an App from functional options.
//
//	app, err := menusmith.New(menusmith.WithTitle("Shop"), menusmith.WithSize(54))
func New(opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if !core.ValidSize(o.menu.Size) {
		return nil, fmt.Errorf("size %d: %w", o.menu.Size, core.ErrInvalidSize)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.notificationTTL <= 0 {
		o.notificationTTL = DefaultNotificationTTL
	}
	if o.exportName == "" {
		o.exportName = fs.DefaultExportName
	}

	exporter := fs.NewExporter(fs.Config{
		Dir:         o.exportDir,
		Logger:      o.logger,
		Serializers: o.serializers,
	})
	if _, _, err := exporter.Render(o.menu, o.exportName); err != nil {
		return nil, fmt.Errorf("export name %q: %w", o.exportName, err)
	}

	return &App{
		Editor:          core.NewEditor(o.menu, o.logger),
		Exporter:        exporter,
		Logger:          o.logger,
		ExportName:      o.exportName,
		NotificationTTL: o.notificationTTL,
	}, nil
}
