package document

import (
	"fmt"
	"io"
	"os"
)

// DefaultFileName is where LegacyEditor.SaveToFile writes
const DefaultFileName = "document.txt"

// LegacyEditor keeps content, rendering and file output in one type. Editor
// is the same behaviour split into elements and a persistence layer.
type LegacyEditor struct {
	segments []string
	rendered string
	path     string
}

// NewLegacyEditor creates an editor that saves to path (DefaultFileName when empty)
func NewLegacyEditor(path string) *LegacyEditor {
	if path == "" {
		path = DefaultFileName
	}
	return &LegacyEditor{path: path}
}

func (e *LegacyEditor) AddText(text string) {
	e.segments = append(e.segments, text)
	e.rendered = ""
}

func (e *LegacyEditor) AddImage(path string) {
	e.segments = append(e.segments, path)
	e.rendered = ""
}

// Render renders each segment on its own line
func (e *LegacyEditor) Render() string {
	if e.rendered == "" {
		e.rendered = RenderSegments(e.segments)
	}
	return e.rendered
}

// SaveToFile overwrites the target file and reports the outcome on w
func (e *LegacyEditor) SaveToFile(w io.Writer) error {
	if err := os.WriteFile(e.path, []byte(e.Render()), 0o644); err != nil {
		fmt.Fprintln(w, "Error: Unable to open file for writing.")
		return fmt.Errorf("write %s: %w", e.path, err)
	}
	fmt.Fprintf(w, "Document saved to %s\n", e.path)
	return nil
}
