package core

// Cell is one inventory slot of the grid preview.
type Cell struct {
	Slot     int    `json:"slot"`
	Occupied bool   `json:"occupied"`
	Icon     string `json:"icon,omitempty"`
	Label    string `json:"label,omitempty"`
	// Index is the position of the occupant in Menu.Items, -1 when empty.
	Index int `json:"index"`
}

// Rows returns how many inventory rows a menu of the given size spans.
func Rows(size int) int {
	if size <= 0 {
		return 0
	}
	return (size + RowWidth - 1) / RowWidth
}

// Grid lays out exactly m.Size cells. A cell is occupied iff an item is
// assigned to its slot; items outside the grid are ignored.
func Grid(m Menu) []Cell {
	if m.Size <= 0 {
		return []Cell{}
	}
	cells := make([]Cell, m.Size)
	for i := range cells {
		cells[i] = Cell{Slot: i, Index: -1}
	}
	for idx, it := range m.Items {
		if it.Slot < 0 || it.Slot >= m.Size || cells[it.Slot].Occupied {
			continue
		}
		cells[it.Slot] = Cell{
			Slot:     it.Slot,
			Occupied: true,
			Icon:     Icon(it.Material),
			Label:    it.Label(),
			Index:    idx,
		}
	}
	return cells
}
