package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/menusmith/pkg/core"
)

// Configuration keys of the generated menu file.
const (
	KeyMenuTitle         = "menu_title"
	KeyOpenCommand       = "open_command"
	KeySize              = "size"
	KeyOpenRequirement   = "open_requirement"
	KeyItems             = "items"
	KeyMaterial          = "material"
	KeyDisplayName       = "display_name"
	KeyLore              = "lore"
	KeyLeftClickCommands = "left_click_commands"
)

// Serializer defines how a menu is written in a specific file format.
type Serializer interface {
	// Serialize converts the menu to bytes.
	Serialize(m core.Menu) ([]byte, error)
	// ContentType is the MIME type used when the bytes are downloaded.
	ContentType() string
}

// DefaultSerializers returns the standard set of serializers keyed by file extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".yml":  NewYAMLSerializer(),
		".yaml": NewYAMLSerializer(),
		".json": NewJSONSerializer(),
	}
}

// SerializerFor picks a serializer from set by the extension of filename.
func SerializerFor(set map[string]Serializer, filename string) (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	s, ok := set[ext]
	if !ok {
		return nil, fmt.Errorf("no serializer for extension %q", ext)
	}
	return s, nil
}

// --- YAML Serializer ---

// YAMLSerializer writes the DeluxeMenus menu configuration.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Serialize(m core.Menu) ([]byte, error) {
	return Serialize(m)
}

func (s *YAMLSerializer) ContentType() string {
	return "application/yaml; charset=utf-8"
}

// Serialize renders m as a menu configuration. Output depends only on m:
// identical menus produce identical bytes.
//
// Text fields are single quoted, material is plain unless it needs quoting,
// and the open requirement block is copied line by line. Invalid UTF-8 is
// replaced with U+FFFD so the document always parses.
func Serialize(m core.Menu) ([]byte, error) {
	var buf bytes.Buffer

	head := mappingNode(
		keyNode(KeyMenuTitle), quotedNode(m.Title),
		keyNode(KeyOpenCommand), quotedNode(m.OpenCommand),
		keyNode(KeySize), intNode(m.Size),
	)
	if err := encodeNode(&buf, head); err != nil {
		return nil, err
	}

	if m.OpenRequirement != "" {
		writeRaw(&buf, KeyOpenRequirement, m.OpenRequirement)
	}

	if len(m.Items) == 0 {
		buf.WriteString(KeyItems + ":\n")
		return buf.Bytes(), nil
	}

	items := mappingNode()
	for _, it := range m.Items {
		fields := []*yaml.Node{keyNode(KeyMaterial), keyNode(it.Material)}
		if it.DisplayName != "" {
			fields = append(fields, keyNode(KeyDisplayName), quotedNode(it.DisplayName))
		}
		if len(it.Lore) > 0 {
			fields = append(fields, keyNode(KeyLore), quotedSeq(it.Lore))
		}
		if len(it.Actions) > 0 {
			fields = append(fields, keyNode(KeyLeftClickCommands), quotedSeq(it.Actions))
		}
		items.Content = append(items.Content, intNode(it.Slot), mappingNode(fields...))
	}
	if err := encodeNode(&buf, mappingNode(keyNode(KeyItems), items)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeNode(buf *bytes.Buffer, n *yaml.Node) error {
	encoder := yaml.NewEncoder(buf)
	encoder.SetIndent(len(Indent))
	if err := encoder.Encode(n); err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}
	return encoder.Close()
}

func mappingNode(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: content}
}

// keyNode is a plain string scalar; the encoder quotes it when plain would not round-trip.
func keyNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strings.ToValidUTF8(s, "\uFFFD")}
}

func quotedNode(s string) *yaml.Node {
	n := keyNode(s)
	n.Style = yaml.SingleQuotedStyle
	return n
}

func intNode(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

func quotedSeq(values []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, v := range values {
		seq.Content = append(seq.Content, quotedNode(v))
	}
	return seq
}

// --- JSON Serializer ---

// JSONSerializer writes an indented JSON snapshot of the menu.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Serialize(m core.Menu) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode menu: %w", err)
	}
	return append(data, '\n'), nil
}

func (s *JSONSerializer) ContentType() string {
	return "application/json"
}

// --- Import ---

// Import accepts a previously exported menu file. Its contents are read but
// not applied to any menu; only a failing reader is reported.
func Import(r io.Reader) error {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return fmt.Errorf("read menu file: %w", err)
	}
	return nil
}
