package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/menusmith/pkg/adapters/fs"
	"github.com/aretw0/menusmith/pkg/core"
)

// DefaultNotificationTTL is how long a notification stays visible.
const DefaultNotificationTTL = 3 * time.Second

// options holds the internal configuration for a menusmith application.
type options struct {
	logger          *slog.Logger
	menu            core.Menu
	exportDir       string
	exportName      string
	notificationTTL time.Duration
	serializers     map[string]fs.Serializer
}

// Option defines a functional option for configuring menusmith.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		menu:            core.NewMenu(),
		exportDir:       ".",
		exportName:      fs.DefaultExportName,
		notificationTTL: DefaultNotificationTTL,
	}
}

// WithLogger sets the logger shared by the editor, exporter and shells.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTitle sets the initial menu title. Empty keeps the default.
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.menu.Title = title
		}
	}
}

// WithOpenCommand sets the initial open command.
func WithOpenCommand(cmd string) Option {
	return func(o *options) {
		o.menu.OpenCommand = cmd
	}
}

// WithSize sets the initial slot count. It must be a multiple of 9 between 9 and 54.
func WithSize(size int) Option {
	return func(o *options) {
		o.menu.Size = size
	}
}

// WithOpenRequirement sets the initial open requirement block.
func WithOpenRequirement(req string) Option {
	return func(o *options) {
		o.menu.OpenRequirement = req
	}
}

// WithExportDir sets where exports are written. Defaults to the working directory.
func WithExportDir(dir string) Option {
	return func(o *options) {
		o.exportDir = dir
	}
}

// WithExportName sets the default export file name. Defaults to "menu.yml".
func WithExportName(name string) Option {
	return func(o *options) {
		o.exportName = name
	}
}

// WithNotificationTTL sets how long shell notifications stay visible.
// Zero means default (3s).
func WithNotificationTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.notificationTTL = ttl
	}
}

// WithSerializer registers an additional serializer for a file extension (e.g. ".yml").
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		if o.serializers == nil {
			o.serializers = fs.DefaultSerializers()
		}
		o.serializers[ext] = s
	}
}
