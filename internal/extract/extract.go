package extract

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
)

// OCR recognizes text from a scanned PDF by rasterizing its pages. Optional;
// a nil OCR disables escalation entirely.
type OCR interface {
	ExtractPDF(ctx context.Context, data []byte) (string, error)
}

type Options struct {
	MaxChars    int // final truncation cap on extracted text
	OCRMinChars int // escalate to OCR below this many characters
	OCR         OCR
}

// Extractor turns an uploaded document into bounded plain text. Extraction
// never returns an error: any stage that fails contributes empty text, and
// the caller decides what an empty result means.
type Extractor struct {
	maxChars    int
	ocrMinChars int
	ocr         OCR
}

func New(opts Options) *Extractor {
	if opts.MaxChars <= 0 {
		opts.MaxChars = 16000
	}
	if opts.OCRMinChars <= 0 {
		opts.OCRMinChars = 50
	}
	return &Extractor{
		maxChars:    opts.MaxChars,
		ocrMinChars: opts.OCRMinChars,
		ocr:         opts.OCR,
	}
}

// Extract dispatches on the declared filename extension and post-processes
// the result. Scanned PDFs that yield almost no text escalate to OCR when
// an OCR engine is configured.
func (e *Extractor) Extract(ctx context.Context, filename string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))

	var text string
	switch ext {
	case ".pdf":
		text = pdfText(data)
	case ".docx":
		text = docxText(data)
	default:
		text = plainText(data)
	}

	if ext == ".pdf" && e.ocr != nil && len(strings.TrimSpace(text)) < e.ocrMinChars {
		if ocrText, err := e.ocr.ExtractPDF(ctx, data); err == nil && strings.TrimSpace(ocrText) != "" {
			text = ocrText
		}
	}

	return e.normalize(text)
}

var (
	pageArtifactRe = regexp.MustCompile(`\bPage\s+\d+\b`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

func (e *Extractor) normalize(s string) string {
	s = pageArtifactRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > e.maxChars {
		s = string(r[:e.maxChars])
	}
	return s
}

// plainText decodes bytes as UTF-8, dropping undecodable sequences.
func plainText(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}
