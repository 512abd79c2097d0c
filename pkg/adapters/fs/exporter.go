package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/menusmith/pkg/core"
)

// DefaultExportName is the file name used when none is given.
const DefaultExportName = "menu.yml"

// Config holds the configuration for the filesystem exporter.
type Config struct {
	Dir         string
	Logger      *slog.Logger
	Serializers map[string]Serializer // keyed by extension; DefaultSerializers when nil
	Perm        os.FileMode           // 0644 when zero
}

// Exporter writes menu snapshots into a directory.
type Exporter struct {
	config Config

	mu         sync.RWMutex
	exports    int
	lastPath   string
	lastExport *time.Time
}

// NewExporter creates a filesystem exporter.
func NewExporter(config Config) *Exporter {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Serializers == nil {
		config.Serializers = DefaultSerializers()
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	return &Exporter{config: config}
}

// Render serializes m in the format implied by name's extension.
func (x *Exporter) Render(m core.Menu, name string) ([]byte, Serializer, error) {
	if name == "" {
		name = DefaultExportName
	}
	s, err := SerializerFor(x.config.Serializers, name)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.Serialize(m)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to serialize menu: %w", err)
	}
	return data, s, nil
}

// Export writes m to Dir/name atomically and returns the written path.
func (x *Exporter) Export(ctx context.Context, m core.Menu, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" {
		name = DefaultExportName
	}
	if filepath.Base(name) != name {
		return "", fmt.Errorf("export name must be a plain file name: %q", name)
	}

	data, _, err := x.Render(m, name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(x.config.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(x.config.Dir, name)
	if err := writeFileAtomic(path, data, x.config.Perm); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	x.record(path)
	x.config.Logger.Info("menu exported", "path", path, "items", len(m.Items), "bytes", len(data))
	return path, nil
}

func (x *Exporter) record(path string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	now := time.Now()
	x.exports++
	x.lastPath = path
	x.lastExport = &now
}
