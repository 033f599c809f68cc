package facades

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/metrics"
)

const engineOCR = "tesseract"

// TesseractFacade extracts text from images with the tesseract CLI.
type TesseractFacade struct {
	path    string
	lang    string
	timeout time.Duration
}

// NewTesseractFacade creates a facade running the binary at path.
// An empty lang lets tesseract use its default language.
func NewTesseractFacade(path, lang string, timeout time.Duration) *TesseractFacade {
	return &TesseractFacade{path: path, lang: lang, timeout: timeout}
}

// ExtractText runs OCR on the image file and returns the recognized text.
func (f *TesseractFacade) ExtractText(ctx context.Context, imagePath string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	args := []string{imagePath, "stdout"}
	if f.lang != "" {
		args = append(args, "-l", f.lang)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		err = fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	metrics.ObserveEngineCall(engineOCR, start, err)

	if err != nil {
		logger.FromContext(ctx).Errorw("ocr engine failed", "image", imagePath, "error", err)
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}
