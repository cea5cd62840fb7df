package service

import (
	"context"
	"strings"

	"designlab/internal/document"
	"designlab/internal/domain"
	"designlab/pkg/errors"
	"designlab/pkg/logger"
)

// documentLoader is implemented by storages that can read documents back
type documentLoader interface {
	Load(ctx context.Context, name string) (string, error)
}

// DocumentService renders and saves documents through the configured storage
type DocumentService struct {
	storage document.Persistence
	logger  *logger.Logger
}

// NewDocumentService creates a document service
func NewDocumentService(storage document.Persistence, logger *logger.Logger) *DocumentService {
	return &DocumentService{
		storage: storage,
		logger:  logger.Named("documents"),
	}
}

func toElement(el domain.DocumentElement) (document.Element, error) {
	switch strings.ToLower(el.Type) {
	case "text":
		return document.TextElement{Text: el.Value}, nil
	case "image":
		if el.Value == "" {
			return nil, errors.NewValidationError("Image path is required", nil)
		}
		return document.ImageElement{Path: el.Value}, nil
	case "newline":
		return document.NewLineElement{}, nil
	case "tab":
		return document.TabSpaceElement{}, nil
	default:
		return nil, errors.NewValidationError("Unknown element type", map[string]interface{}{
			"type": el.Type,
		})
	}
}

// Render builds the document from elements, saves it and returns the text
func (s *DocumentService) Render(ctx context.Context, name string, elements []domain.DocumentElement) (*domain.DocumentResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("Document name is required", nil)
	}

	editor := document.NewEditor(name, nil, s.storage)
	for _, el := range elements {
		element, err := toElement(el)
		if err != nil {
			return nil, err
		}
		editor.AddElement(element)
	}

	if err := editor.Save(ctx); err != nil {
		s.logger.WithError(err).WithField("document", name).Error("Failed to save document")
		return nil, errors.NewInternalError("Failed to save document", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"document": name,
		"elements": len(elements),
	}).Debug("Document saved")

	return &domain.DocumentResponse{
		Name:     name,
		Rendered: editor.Render(),
		Saved:    true,
	}, nil
}

// Load reads a saved document back, when the storage supports it
func (s *DocumentService) Load(ctx context.Context, name string) (*domain.DocumentResponse, error) {
	loader, ok := s.storage.(documentLoader)
	if !ok {
		return nil, errors.NewNotApplicableError("Document storage does not support reading", nil)
	}

	content, err := loader.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return &domain.DocumentResponse{
		Name:     name,
		Rendered: content,
		Saved:    true,
	}, nil
}

// LegacyRender renders segments the way the single-class editor does
func (s *DocumentService) LegacyRender(segments []string) *domain.DocumentResponse {
	return &domain.DocumentResponse{
		Rendered: document.RenderSegments(segments),
	}
}
