package menusmith

import (
	"log/slog"
	"time"

	"github.com/aretw0/menusmith/internal/platform"
	"github.com/aretw0/menusmith/pkg/adapters/fs"
	"github.com/aretw0/menusmith/pkg/core"
)

// --- Types ---

// Menu is a public alias for the core menu document.
type Menu = core.Menu

// Item is a public alias for a slot assignment.
type Item = core.Item

// Editor is a public alias for the menu editor.
type Editor = core.Editor

// App bundles the editor with its exporter and shell settings.
type App = platform.App

// --- Configuration ---

// Option defines a functional option for configuring menusmith.
type Option = platform.Option

// WithLogger sets the logger for the editor and exporter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithTitle sets the initial menu title.
func WithTitle(title string) Option {
	return platform.WithTitle(title)
}

// WithOpenCommand sets the initial open command.
func WithOpenCommand(cmd string) Option {
	return platform.WithOpenCommand(cmd)
}

// WithSize sets the initial slot count.
func WithSize(size int) Option {
	return platform.WithSize(size)
}

// WithOpenRequirement sets the initial open requirement block.
func WithOpenRequirement(req string) Option {
	return platform.WithOpenRequirement(req)
}

// WithExportDir sets the directory exports are written to.
func WithExportDir(dir string) Option {
	return platform.WithExportDir(dir)
}

// WithExportName sets the default export file name.
func WithExportName(name string) Option {
	return platform.WithExportName(name)
}

// WithNotificationTTL sets how long shell notifications stay visible.
func WithNotificationTTL(ttl time.Duration) Option {
	return platform.WithNotificationTTL(ttl)
}

// WithSerializer registers a serializer for a file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// --- Factory ---

// New creates a menusmith application holding a fresh menu.
func New(opts ...Option) (*App, error) {
	return platform.New(opts...)
}

// --- Serialization ---

// Serialize renders a menu as a DeluxeMenus YAML configuration.
func Serialize(m Menu) ([]byte, error) {
	return fs.Serialize(m)
}
