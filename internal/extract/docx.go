package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// docxText extracts paragraph text from a DOCX archive by streaming
// word/document.xml. Anything unreadable yields an empty string.
func docxText(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	var docFile *zip.File
	for _, f := range r.File {
		if strings.EqualFold(f.Name, "word/document.xml") {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return ""
	}
	rc, err := docFile.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()
	return docxTextFromXML(rc)
}

func docxTextFromXML(r io.Reader) string {
	dec := xml.NewDecoder(r)
	var buf bytes.Buffer
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t", "instrText":
				var text string
				if err := dec.DecodeElement(&text, &t); err == nil {
					buf.WriteString(text)
				}
			case "tab":
				buf.WriteByte('\t')
			case "br", "cr":
				buf.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}
