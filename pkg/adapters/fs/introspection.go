package fs

import (
	"sort"
	"time"

	"github.com/aretw0/introspection"
)

// ExporterState exposes internal state for observability.
type ExporterState struct {
	Dir         string     `json:"dir"`
	Serializers []string   `json:"serializers"`
	Exports     int        `json:"exports"`
	LastPath    string     `json:"last_path,omitempty"`
	LastExport  *time.Time `json:"last_export,omitempty"`
}

// State implements introspection.Introspectable.
func (x *Exporter) State() any {
	x.mu.RLock()
	defer x.mu.RUnlock()

	serializers := make([]string, 0, len(x.config.Serializers))
	for ext := range x.config.Serializers {
		serializers = append(serializers, ext)
	}
	sort.Strings(serializers)

	return ExporterState{
		Dir:         x.config.Dir,
		Serializers: serializers,
		Exports:     x.exports,
		LastPath:    x.lastPath,
		LastExport:  x.lastExport,
	}
}

// ComponentType implements introspection.Component.
func (x *Exporter) ComponentType() string {
	return "exporter"
}

var _ introspection.Introspectable = (*Exporter)(nil)
var _ introspection.Component = (*Exporter)(nil)
