package document

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Document is an ordered list of elements
type Document struct {
	elements []Element
}

// AddElement appends e to the document
func (d *Document) AddElement(e Element) {
	d.elements = append(d.elements, e)
}

// Elements returns the elements in insertion order
func (d *Document) Elements() []Element {
	return slices.Clone(d.elements)
}

// Render concatenates every element's rendering
func (d *Document) Render() string {
	var b strings.Builder
	for _, e := range d.elements {
		b.WriteString(e.Render())
	}
	return b.String()
}

// Persistence saves rendered documents
type Persistence interface {
	Save(ctx context.Context, name, content string) error
}

// Editor edits a Document and saves it through a Persistence
type Editor struct {
	mu       sync.Mutex
	name     string
	document *Document
	storage  Persistence
	rendered string
	dirty    bool
}

// NewEditor creates an editor for the named document
func NewEditor(name string, document *Document, storage Persistence) *Editor {
	if document == nil {
		document = &Document{}
	}
	return &Editor{
		name:     name,
		document: document,
		storage:  storage,
		dirty:    true,
	}
}

func (e *Editor) add(el Element) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.document.AddElement(el)
	e.dirty = true
}

func (e *Editor) AddText(text string) { e.add(TextElement{Text: text}) }
func (e *Editor) AddImage(path string) { e.add(ImageElement{Path: path}) }
func (e *Editor) AddNewLine() { e.add(NewLineElement{}) }
func (e *Editor) AddTabSpace() { e.add(TabSpaceElement{}) }
func (e *Editor) AddElement(el Element) { e.add(el) }

func (e *Editor) Name() string { return e.name }

// Document returns the document being edited
func (e *Editor) Document() *Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.document
}

// SetStorage swaps the persistence used by later saves
func (e *Editor) SetStorage(p Persistence) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.storage = p
}

// Render returns the rendered document, re-rendering only after edits
func (e *Editor) Render() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dirty {
		e.rendered = e.document.Render()
		e.dirty = false
	}
	return e.rendered
}

// Save persists the rendered document
func (e *Editor) Save(ctx context.Context) error {
	content := e.Render()

	e.mu.Lock()
	storage := e.storage
	e.mu.Unlock()

	if storage == nil {
		return fmt.Errorf("document %q has no storage configured", e.name)
	}
	if err := storage.Save(ctx, e.name, content); err != nil {
		return fmt.Errorf("save document %q: %w", e.name, err)
	}
	return nil
}
