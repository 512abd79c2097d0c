// Package metrics provides Prometheus metrics for the menu editor shells.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labels are kept to small fixed sets (no slot numbers, no file names).

var (
	// ItemsSavedTotal counts item form saves, by operation (add/update).
	ItemsSavedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "menusmith_items_saved_total",
		Help: "Total number of items saved from the item editor, by operation.",
	}, []string{"op"})

	// ItemsRemovedTotal counts item deletions.
	ItemsRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menusmith_items_removed_total",
		Help: "Total number of items removed from the menu.",
	})

	// ExportsTotal counts generated menu documents, by format and result.
	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "menusmith_exports_total",
		Help: "Total number of menu exports, by format and result.",
	}, []string{"format", "result"})

	// ImportsTotal counts uploaded menu files, by result.
	ImportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "menusmith_imports_total",
		Help: "Total number of menu file uploads, by result.",
	}, []string{"result"})

	// MenuSlots tracks the current menu size.
	MenuSlots = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "menusmith_menu_slots",
		Help: "Slot count of the menu being edited.",
	})

	// MenuItems tracks the number of items in the menu.
	MenuItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "menusmith_menu_items",
		Help: "Number of items in the menu being edited.",
	})
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// ObserveMenu updates the menu gauges.
func ObserveMenu(slots, items int) {
	MenuSlots.Set(float64(slots))
	MenuItems.Set(float64(items))
}

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
