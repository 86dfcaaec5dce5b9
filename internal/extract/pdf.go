package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts text page by page, joining pages with newlines. Malformed
// documents yield an empty string; the pdf package panics on some corrupt
// inputs, so the whole pass runs under a recover.
func pdfText(data []byte) (text string) {
	if len(data) == 0 {
		return ""
	}
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, err := p.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		b.WriteString(pageText)
		b.WriteByte('\n')
	}
	return b.String()
}
