package web

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServerState exposes internal state for observability.
type ServerState struct {
	Uptime        string `json:"uptime"`
	ExportName    string `json:"export_name"`
	Notifications int    `json:"notifications"`
	Editor        any    `json:"editor"`
	Exporter      any    `json:"exporter"`
}

// State implements introspection.Introspectable.
func (s *Server) State() any {
	return ServerState{
		Uptime:        time.Since(s.started).Round(time.Second).String(),
		ExportName:    s.exportName,
		Notifications: len(s.notes.active()),
		Editor:        s.editor.State(),
		Exporter:      s.exporter.State(),
	}
}

// ComponentType implements introspection.Component.
func (s *Server) ComponentType() string {
	return "web"
}

var _ introspection.Introspectable = (*Server)(nil)
var _ introspection.Component = (*Server)(nil)
