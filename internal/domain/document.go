package domain

// DocumentElement is one element of a document request
type DocumentElement struct {
	Type  string `json:"type"` // text, image, newline, tab
	Value string `json:"value,omitempty"`
}

// RenderDocumentRequest is the body of POST /api/documents/{name}
type RenderDocumentRequest struct {
	Elements []DocumentElement `json:"elements"`
}

// LegacyRenderRequest is the body of POST /api/documents/legacy
type LegacyRenderRequest struct {
	Segments []string `json:"segments"`
}

// DocumentResponse is the rendered document
type DocumentResponse struct {
	Name     string `json:"name,omitempty"`
	Rendered string `json:"rendered"`
	Saved    bool   `json:"saved"`
}
