package ocr

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Tesseract runs the tesseract binary over page images produced by pdftoppm.
// Both binaries must be on PATH; Available reports whether they are.
type Tesseract struct {
	Lang    string
	DPI     int
	Timeout time.Duration // per external command
}

func NewTesseract() *Tesseract {
	return &Tesseract{Lang: "eng", DPI: 200, Timeout: 20 * time.Second}
}

func (t *Tesseract) Available() bool {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return false
	}
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return false
	}
	return true
}

// ExtractPDF rasterizes each page of the document and recognizes it,
// concatenating page texts with newlines. Pages that fail recognition are
// skipped rather than failing the whole document.
func (t *Tesseract) ExtractPDF(ctx context.Context, data []byte) (string, error) {
	if !t.Available() {
		return "", errors.New("tesseract or pdftoppm not found in PATH")
	}
	dir, err := os.MkdirTemp("", "ocr-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(src, data, 0o600); err != nil {
		return "", err
	}
	pages, err := t.rasterize(ctx, dir, src)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, page := range pages {
		text, err := t.recognize(ctx, page)
		if err != nil {
			continue
		}
		if s := strings.TrimSpace(text); s != "" {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func (t *Tesseract) rasterize(ctx context.Context, dir, src string) ([]string, error) {
	args := []string{"-png"}
	if t.DPI > 0 {
		args = append(args, "-r", strconv.Itoa(t.DPI))
	}
	args = append(args, src, filepath.Join(dir, "page"))
	if _, err := t.run(ctx, "pdftoppm", args...); err != nil {
		return nil, err
	}
	pages, err := filepath.Glob(filepath.Join(dir, "page-*.png"))
	if err != nil {
		return nil, err
	}
	sort.Strings(pages)
	if len(pages) == 0 {
		return nil, errors.New("no pages rasterized")
	}
	return pages, nil
}

func (t *Tesseract) recognize(ctx context.Context, imgPath string) (string, error) {
	args := []string{imgPath, "stdout"}
	if t.Lang != "" {
		args = append(args, "-l", t.Lang)
	}
	return t.run(ctx, "tesseract", args...)
}

func (t *Tesseract) run(ctx context.Context, name string, args ...string) (string, error) {
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, name, args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", err
	}
	return out.String(), nil
}
