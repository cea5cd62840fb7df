package document

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyEditor_RenderAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "document.txt")
	editor := NewLegacyEditor(path)

	editor.AddText("Hello, world!")
	editor.AddImage("picture.jpg")
	editor.AddText("This is a document editor.")

	expected := "Hello, world!\n[Image: picture.jpg]\nThis is a document editor.\n"
	assert.Equal(t, expected, editor.Render())

	var out bytes.Buffer
	require.NoError(t, editor.SaveToFile(&out))
	assert.Equal(t, "Document saved to "+path+"\n", out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expected, string(data))
}

func TestLegacyEditor_RenderTracksEdits(t *testing.T) {
	editor := NewLegacyEditor("")
	editor.AddText("a")
	assert.Equal(t, "a\n", editor.Render())

	editor.AddImage("b.png")
	assert.Equal(t, "a\n[Image: b.png]\n", editor.Render())
}

func TestLegacyEditor_SaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "document.txt")
	editor := NewLegacyEditor(path)
	editor.AddText("x")

	var out bytes.Buffer
	err := editor.SaveToFile(&out)
	assert.Error(t, err)
	assert.Equal(t, "Error: Unable to open file for writing.\n", out.String())
}
