// ABOUTME: Document text extraction for PDF and plain-text sources
// ABOUTME: Produces a models.Document; failures wrap core.ErrExtraction
package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/harper/docrag/internal/core"
	"github.com/harper/docrag/internal/models"
	"github.com/ledongthuc/pdf"
)

// FromFile extracts the UTF-8 text of the document at path. PDF files are
// parsed; .txt and .md files are read as-is.
func FromFile(path string) (models.Document, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = pdfText(path)
	case ".txt", ".md":
		text, err = plainText(path)
	default:
		return models.Document{}, fmt.Errorf("%w: unsupported file type %q", core.ErrExtraction, filepath.Ext(path))
	}
	if err != nil {
		return models.Document{}, err
	}

	return models.Document{
		ID:   uuid.New().String(),
		Path: path,
		Text: text,
	}, nil
}

func pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", core.ErrExtraction, path, err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", core.ErrExtraction, path, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", core.ErrExtraction, path, err)
	}

	text := buf.String()
	if text == "" {
		// A PDF with no extractable text is almost always scanned or corrupt.
		return "", fmt.Errorf("%w: no text extracted from %s", core.ErrExtraction, path)
	}
	return text, nil
}

func plainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", core.ErrExtraction, path, err)
	}
	return string(data), nil
}
