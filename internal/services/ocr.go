package services

//go:generate mockgen -source=ocr.go -destination=ocr_mock.go -package=services

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// maxBaseNameBytes keeps <uuid>_<base name> under the 255 byte filename limit.
const maxBaseNameBytes = 200

// TextExtractor recognizes text in an image file.
type TextExtractor interface {
	ExtractText(ctx context.Context, imagePath string) (string, error)
}

// OCRService stores an uploaded image temporarily and extracts its text.
type OCRService struct {
	extractor TextExtractor
	uploadDir string
}

func NewOCRService(extractor TextExtractor, uploadDir string) *OCRService {
	return &OCRService{extractor: extractor, uploadDir: uploadDir}
}

// Extract saves the upload as <upload dir>/<uuid>_<base name>, runs OCR on it and
// removes the file before returning.
func (s *OCRService) Extract(ctx context.Context, filename string, content io.Reader) (string, error) {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if strings.TrimSpace(filename) == "" || base == "." || base == "/" || base == ".." {
		return "", fmt.Errorf("%w: no image selected", ErrInvalidInput)
	}

	path := filepath.Join(s.uploadDir, uuid.NewString()+"_"+shortenName(base, maxBaseNameBytes))
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.FromContext(ctx).Warnw("failed to remove upload", "path", path, "error", err)
		}
	}()

	if err := saveUpload(path, content); err != nil {
		logger.FromContext(ctx).Errorw("failed to store upload", "path", path, "error", err)
		return "", err
	}

	if err := checkImage(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	text, err := s.extractor.ExtractText(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return text, nil
}

// shortenName trims the stem of name so the result fits in limit bytes,
// keeping the extension and whole UTF-8 characters.
func shortenName(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	ext := filepath.Ext(name)
	if len(ext) >= limit {
		ext = ""
	}
	stem := strings.TrimSuffix(name, ext)
	cut := limit - len(ext)
	for cut > 0 && !utf8.RuneStart(stem[cut]) {
		cut--
	}
	return stem[:cut] + ext
}

func saveUpload(path string, content io.Reader) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func checkImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("cannot identify image file: %w", err)
	}
	return nil
}
