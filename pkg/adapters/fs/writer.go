package fs

import (
	"bytes"
	"strings"
)

// Indent is the nesting unit of the generated YAML.
const Indent = "  "

// writeRaw writes `key:` followed by every non-blank line of text, verbatim,
// one level deeper. The open requirement block is user-authored YAML and is
// spliced in as written.
func writeRaw(buf *bytes.Buffer, key, text string) {
	buf.WriteString(key + ":\n")
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		buf.WriteString(Indent + strings.ToValidUTF8(l, "\uFFFD") + "\n")
	}
}
