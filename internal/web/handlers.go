package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/menusmith/internal/metrics"
	"github.com/aretw0/menusmith/pkg/adapters/fs"
	"github.com/aretw0/menusmith/pkg/core"
)

// entry is one row of the item list.
type entry struct {
	Index   int
	Item    core.Item
	Icon    string
	Details string
}

// pageData is the view model of the editor page.
type pageData struct {
	Menu          core.Menu
	Cells         []core.Cell
	Rows          int
	Sizes         []int
	Materials     []core.Material
	Entries       []entry
	OutOfRange    []core.Item
	Draft         *core.ItemDraft
	Editing       bool
	Notifications []Notification
	YAML          string
	CopyOK        string
	CopyFailed    string
	NotifyTTL     int64 // milliseconds
}

func (s *Server) view() pageData {
	m := s.editor.Snapshot()
	d := pageData{
		Menu:          m,
		Cells:         core.Grid(m),
		Rows:          core.Rows(m.Size),
		Sizes:         core.Sizes(),
		Materials:     core.Materials(),
		OutOfRange:    s.editor.OutOfRange(),
		Notifications: s.notes.active(),
		CopyOK:        CopySuccessMessage,
		CopyFailed:    CopyFailureMessage,
		NotifyTTL:     s.notes.ttl.Milliseconds(),
	}
	if doc, err := fs.Serialize(m); err != nil {
		s.logger.Error("render yaml", "error", err)
		d.YAML = "# " + err.Error()
	} else {
		d.YAML = string(doc)
	}
	for i, it := range m.Items {
		d.Entries = append(d.Entries, entry{
			Index:   i,
			Item:    it,
			Icon:    core.Icon(it.Material),
			Details: fmt.Sprintf("Slot: %d | Material: %s", it.Slot, it.Material),
		})
	}
	if draft, ok := s.editor.Draft(); ok {
		d.Draft = &draft
		if sess, ok := s.editor.Session(); ok {
			d.Editing = sess.Editing()
		}
	}
	return d
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, s.view()); err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	if _, ok := r.PostForm[core.FieldTitle]; ok {
		s.editor.SetTitle(r.PostFormValue(core.FieldTitle))
	}
	if _, ok := r.PostForm[core.FieldOpenCommand]; ok {
		s.editor.SetOpenCommand(r.PostFormValue(core.FieldOpenCommand))
	}
	if _, ok := r.PostForm[core.FieldOpenRequirement]; ok {
		s.editor.SetOpenRequirement(r.PostFormValue(core.FieldOpenRequirement))
	}
	if raw, ok := r.PostForm[core.FieldSize]; ok {
		size, err := strconv.Atoi(strings.TrimSpace(raw[0]))
		if err != nil || !core.ValidSize(size) {
			s.notes.push(KindError, core.ErrInvalidSize.Error())
		} else {
			s.editor.SetSize(size)
			if out := s.editor.OutOfRange(); len(out) > 0 {
				s.notes.push(KindInfo, fmt.Sprintf("%d item(s) are outside the menu and will not be shown.", len(out)))
			}
		}
	}

	s.observe()
	s.redirect(w, r)
}

func (s *Server) handleSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		http.Error(w, "Invalid slot", http.StatusBadRequest)
		return
	}
	s.editor.SelectSlot(slot)
	s.redirect(w, r)
}

func (s *Server) handleNewItem(w http.ResponseWriter, r *http.Request) {
	s.editor.BeginAdd()
	s.redirect(w, r)
}

func (s *Server) handleEditItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "Invalid index", http.StatusBadRequest)
		return
	}
	if err := s.editor.BeginEdit(index); err != nil {
		s.notes.push(KindError, "Item not found.")
	}
	s.redirect(w, r)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "Invalid index", http.StatusBadRequest)
		return
	}
	if s.editor.RemoveItem(index) {
		metrics.ItemsRemovedTotal.Inc()
		s.notes.push(KindSuccess, "Item deleted successfully!")
	}
	s.observe()
	s.redirect(w, r)
}

func (s *Server) handleCancelItem(w http.ResponseWriter, r *http.Request) {
	s.editor.Cancel()
	s.redirect(w, r)
}

func (s *Server) handleSaveItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	slot, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("slot")))
	if err != nil {
		s.notes.push(KindError, "Slot must be a number.")
		s.redirect(w, r)
		return
	}
	material := r.PostFormValue("material")
	if material == "" {
		material = core.DefaultMaterial
	}

	_, updated, err := s.editor.SaveDraft(core.ItemDraft{
		Slot:        slot,
		Material:    material,
		DisplayName: r.PostFormValue("display_name"),
		Lore:        r.PostFormValue("lore"),
		Actions:     r.PostFormValue("actions"),
	})
	switch {
	case err == nil:
		op := "add"
		if updated {
			op = "update"
		}
		metrics.ItemsSavedTotal.WithLabelValues(op).Inc()
		s.notes.push(KindSuccess, "Item saved successfully!")
	case errors.Is(err, core.ErrSlotOutOfRange):
		s.notes.push(KindError, fmt.Sprintf("Slot %d is outside this %d-slot menu.", slot, s.editor.Snapshot().Size))
	default:
		s.logger.Warn("save item", "error", err)
		s.notes.push(KindError, "Failed to save item.")
	}

	s.observe()
	s.redirect(w, r)
}

func (s *Server) handleDownload(name string) http.HandlerFunc {
	format := strings.TrimPrefix(filepath.Ext(name), ".")
	return func(w http.ResponseWriter, r *http.Request) {
		data, ser, err := s.exporter.Render(s.editor.Snapshot(), name)
		metrics.ExportsTotal.WithLabelValues(format, metrics.Result(err)).Inc()
		if err != nil {
			s.logger.Error("export menu", "error", err)
			s.notes.push(KindError, "Failed to export menu.")
			http.Error(w, "Export failed", http.StatusInternalServerError)
			return
		}

		s.notes.push(KindSuccess, "Menu exported successfully!")
		w.Header().Set("Content-Type", ser.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		_, _ = w.Write(data)
	}
}

func (s *Server) handleSaveExport(w http.ResponseWriter, r *http.Request) {
	path, err := s.exporter.Export(r.Context(), s.editor.Snapshot(), s.exportName)
	metrics.ExportsTotal.WithLabelValues(strings.TrimPrefix(filepath.Ext(s.exportName), "."), metrics.Result(err)).Inc()
	if err != nil {
		s.logger.Error("export menu", "error", err)
		s.notes.push(KindError, "Failed to export menu.")
	} else {
		s.notes.push(KindSuccess, "Menu exported to "+path)
	}
	s.redirect(w, r)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			s.redirect(w, r)
			return
		}
		metrics.ImportsTotal.WithLabelValues(metrics.ResultError).Inc()
		s.notes.push(KindError, "Failed to import menu file.")
		s.redirect(w, r)
		return
	}
	defer file.Close()

	err = fs.Import(file)
	metrics.ImportsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		s.logger.Warn("import menu", "error", err)
		s.notes.push(KindError, "Failed to import menu file.")
	} else {
		s.notes.push(KindSuccess, "Menu imported successfully!")
	}
	s.redirect(w, r)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, err := fs.Serialize(s.editor.Snapshot())
	if err != nil {
		s.logger.Error("render yaml", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(doc)
}

// menuResponse is the JSON view served to non-HTML shells.
type menuResponse struct {
	Menu  core.Menu   `json:"menu"`
	Rows  int         `json:"rows"`
	Cells []core.Cell `json:"cells"`
}

func (s *Server) handleAPIMenu(w http.ResponseWriter, r *http.Request) {
	m := s.editor.Snapshot()
	writeJSON(w, menuResponse{Menu: m, Rows: core.Rows(m.Size), Cells: core.Grid(m)})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.State())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
