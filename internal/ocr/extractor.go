package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Extractor is the PDF boundary: bytes in, menu text out. The pipeline
// treats it as a black box so the OCR engine can be swapped.
type Extractor interface {
	ExtractText(ctx context.Context, pdf []byte) (string, error)
}

// TesseractExtractor validates the PDF with pdfcpu, then shells out to
// tesseract. Requires the tesseract binary on PATH.
type TesseractExtractor struct {
	Languages string // tesseract -l value, e.g. "fra+eng"
}

func NewTesseractExtractor() *TesseractExtractor {
	return &TesseractExtractor{Languages: "fra+eng"}
}

func (t *TesseractExtractor) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	if err := api.Validate(bytes.NewReader(pdf), nil); err != nil {
		return "", fmt.Errorf("unreadable PDF: %w", err)
	}

	dir, err := os.MkdirTemp("", "menu-ocr-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "menu.pdf")
	if err := os.WriteFile(path, pdf, 0o600); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, "tesseract", path, "stdout", "-l", t.Languages)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w", err)
	}
	return string(out), nil
}
