package fs

import (
	"bytes"
	"testing"
)

func TestWriteRaw(t *testing.T) {
	var buf bytes.Buffer
	writeRaw(&buf, "open_requirement", "x:\n\n  y: 1\r\n   \n")

	want := "open_requirement:\n" +
		"  x:\n" +
		"    y: 1\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}
