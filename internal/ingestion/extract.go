package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrUnsupportedFormat indicates the uploaded document is in a format this
// service cannot extract text from. It is distinct from a valid-but-empty
// resume: unsupported input is a processing failure, empty text is not.
type ErrUnsupportedFormat struct {
	Extension string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Extension)
}

// ExtractText extracts cleaned plain text from an uploaded resume document,
// dispatching on the filename extension. Plain-text and markdown files pass
// through directly; HTML is reduced to its text content. Binary formats
// (PDF, DOCX) belong to the external extraction collaborator and are
// rejected with ErrUnsupportedFormat.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".md", ".text":
		return CleanText(string(data)), nil
	case ".html", ".htm":
		text, err := extractHTML(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	default:
		return "", &ErrUnsupportedFormat{Extension: ext}
	}
}

// extractHTML reduces an HTML document to the text of its body, with script
// and style content removed.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML document: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		parts = append(parts, sel.Text())
	})
	if len(parts) == 0 {
		// Fragments without a body element still carry text.
		parts = append(parts, doc.Text())
	}
	return strings.Join(parts, " "), nil
}
