// Package document contains two versions of a small document editor: a
// single-type LegacyEditor and an Editor split into elements, a document and
// a pluggable persistence layer.
package document

import "strings"

// Element is one renderable piece of a document
type Element interface {
	Render() string
}

// TextElement renders its text unchanged
type TextElement struct {
	Text string
}

func (e TextElement) Render() string { return e.Text }

// ImageElement renders an image placeholder
type ImageElement struct {
	Path string
}

func (e ImageElement) Render() string { return ImageMarker(e.Path) }

// NewLineElement renders a line break
type NewLineElement struct{}

func (NewLineElement) Render() string { return "\n" }

// TabSpaceElement renders a tab
type TabSpaceElement struct{}

func (TabSpaceElement) Render() string { return "\t" }

// ImageMarker wraps an image path the way both editors print images
func ImageMarker(path string) string {
	return "[Image: " + path + "]"
}

// IsImagePath reports whether a segment names a .jpg or .png file. The
// extension alone is not enough: the segment must be longer than four bytes.
func IsImagePath(segment string) bool {
	if len(segment) <= 4 {
		return false
	}
	return strings.HasSuffix(segment, ".jpg") || strings.HasSuffix(segment, ".png")
}

// RenderSegments renders each segment on its own line, wrapping image paths
func RenderSegments(segments []string) string {
	var b strings.Builder
	for _, segment := range segments {
		if IsImagePath(segment) {
			b.WriteString(ImageMarker(segment))
		} else {
			b.WriteString(segment)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
