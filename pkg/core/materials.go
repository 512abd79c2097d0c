package core

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultMaterial is preselected for new items.
const DefaultMaterial = "STONE"

// FallbackIcon is shown for materials outside the vocabulary.
const FallbackIcon = "📦"

// Material is an entry of the editor's material vocabulary.
type Material struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var materials = []Material{
	{Name: "STONE", Icon: "🪨"},
	{Name: "GRASS_BLOCK", Icon: "🟫"},
	{Name: "DIAMOND", Icon: "💎"},
	{Name: "IRON_INGOT", Icon: "🔩"},
	{Name: "GOLD_INGOT", Icon: "🟨"},
	{Name: "EMERALD", Icon: "💚"},
	{Name: "REDSTONE", Icon: "🔴"},
	{Name: "BOOK", Icon: "📖"},
	{Name: "PAPER", Icon: "📄"},
	{Name: "COMPASS", Icon: "🧭"},
	{Name: "CLOCK", Icon: "🕐"},
	{Name: "BARRIER", Icon: "🚫"},
}

// Materials returns the vocabulary in display order.
func Materials() []Material {
	return append([]Material(nil), materials...)
}

// KnownMaterial reports whether name belongs to the vocabulary.
func KnownMaterial(name string) bool {
	for _, m := range materials {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Icon returns the preview icon for a material.
func Icon(material string) string {
	for _, m := range materials {
		if m.Name == material {
			return m.Icon
		}
	}
	return FallbackIcon
}

// MatchMaterials returns the vocabulary entries whose name matches a glob pattern
// such as "*_INGOT". An empty pattern matches everything.
func MatchMaterials(pattern string) ([]Material, error) {
	if pattern == "" {
		return Materials(), nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid material pattern %q", pattern)
	}
	var out []Material
	for _, m := range materials {
		ok, err := doublestar.Match(pattern, m.Name)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}
