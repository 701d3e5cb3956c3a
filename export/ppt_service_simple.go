package export

import (
	"context"
	"fmt"
	"strings"

	"respring/apperr"
	"respring/deck"
)

// Backend names a presentation writer.
type Backend string

const (
	BackendGoPPT  Backend = "goppt"
	BackendGooxml Backend = "gooxml"
)

// ParseBackend accepts a backend name case-insensitively. The empty string
// selects GoPPT.
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case "", BackendGoPPT:
		return BackendGoPPT, nil
	case BackendGooxml:
		return BackendGooxml, nil
	}
	return "", fmt.Errorf("unknown backend %q (want goppt or gooxml)", name)
}

// Renderer turns a document into PPTX bytes.
type Renderer interface {
	Render(doc *deck.Document) ([]byte, error)
}

// PPTExportService handles PowerPoint generation with the selected backend
type PPTExportService struct {
	backend Backend
	service Renderer
	logf    func(string)
}

// NewPPTExportService creates a new PPT export service. logf may be nil.
func NewPPTExportService(backend Backend, logf func(string)) *PPTExportService {
	s := &PPTExportService{backend: backend, logf: logf}
	switch backend {
	case BackendGooxml:
		s.service = NewGooxmlPPTService()
	default:
		s.backend = BackendGoPPT
		s.service = NewGoPPTService()
	}
	return s
}

// Backend returns the writer in use.
func (s *PPTExportService) Backend() Backend { return s.backend }

func (s *PPTExportService) log(format string, args ...interface{}) {
	if s.logf != nil {
		s.logf(fmt.Sprintf("[export] "+format, args...))
	}
}

// Render serialises doc without touching the filesystem.
func (s *PPTExportService) Render(doc *deck.Document) ([]byte, error) {
	data, err := s.service.Render(doc)
	if err != nil {
		return nil, apperr.WrapError("PPTExport", "Render", err)
	}
	s.log("rendered %d slides with %s (%d bytes)", len(doc.Slides), s.backend, len(data))
	return data, nil
}

// Persist renders doc and writes it to path atomically. It returns the
// number of bytes written. I/O failures are returned as they are, never
// retried.
func (s *PPTExportService) Persist(ctx context.Context, doc *deck.Document, path string) (int, error) {
	data, err := s.Render(doc)
	if err != nil {
		return 0, err
	}
	if err := WriteFileAtomic(ctx, path, data); err != nil {
		return 0, apperr.WrapError("PPTExport", "Persist", err)
	}
	s.log("wrote %s", path)
	return len(data), nil
}
