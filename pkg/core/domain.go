// Menu is the central entity of the domain.
package core

import "strings"

const (
	// DefaultTitle replaces an empty menu title.
	DefaultTitle = "My Custom Menu"
	// DefaultOpenCommand is the command a fresh menu opens with.
	DefaultOpenCommand = "/mymenu"
	// DefaultSize is the slot count of a fresh menu (three rows).
	DefaultSize = 27

	// RowWidth is the number of slots in one inventory row.
	RowWidth = 9
	// MaxSize is the largest chest inventory (six rows).
	MaxSize = 54
)

// Item is a single slot assignment inside a menu.
// It is identified by ID, not by Slot: editing an item may move it to another slot.
type Item struct {
	ID          string   `json:"id"`
	Slot        int      `json:"slot"`
	Material    string   `json:"material"`
	DisplayName string   `json:"display_name,omitempty"`
	Lore        []string `json:"lore,omitempty"`
	Actions     []string `json:"actions,omitempty"`
}

// Label is the text shown for the item in lists: its display name, or the material.
func (i Item) Label() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Material
}

func (i Item) clone() Item {
	c := i
	if i.Lore != nil {
		c.Lore = append([]string(nil), i.Lore...)
	}
	if i.Actions != nil {
		c.Actions = append([]string(nil), i.Actions...)
	}
	return c
}

// Menu represents an inventory menu configuration.
// Items are kept in insertion order; at most one item occupies a slot
// as long as writes go through Editor.
type Menu struct {
	Title           string `json:"title"`
	OpenCommand     string `json:"open_command"`
	Size            int    `json:"size"`
	OpenRequirement string `json:"open_requirement,omitempty"`
	Items           []Item `json:"items"`
}

// NewMenu returns a menu populated with the startup defaults.
func NewMenu() Menu {
	return Menu{
		Title:       DefaultTitle,
		OpenCommand: DefaultOpenCommand,
		Size:        DefaultSize,
		Items:       []Item{},
	}
}

// Clone returns a deep copy of the menu.
func (m Menu) Clone() Menu {
	c := m
	c.Items = make([]Item, len(m.Items))
	for i, it := range m.Items {
		c.Items[i] = it.clone()
	}
	return c
}

// ValidSize reports whether size is a whole number of rows between one and six.
func ValidSize(size int) bool {
	return size >= RowWidth && size <= MaxSize && size%RowWidth == 0
}

// Sizes lists every supported menu size in ascending order.
func Sizes() []int {
	sizes := make([]int, 0, MaxSize/RowWidth)
	for s := RowWidth; s <= MaxSize; s += RowWidth {
		sizes = append(sizes, s)
	}
	return sizes
}

// SplitLines splits multi-line form input and drops blank lines.
// Kept lines are not trimmed; only a trailing carriage return is removed.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
