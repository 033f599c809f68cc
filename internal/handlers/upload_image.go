package handlers

//go:generate mockgen -source=upload_image.go -destination=upload_image_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-translator/internal/services"
)

// ImageTextExtractor extracts text from an uploaded image.
type ImageTextExtractor interface {
	Extract(ctx context.Context, filename string, content io.Reader) (string, error)
}

// UploadImageResponse holds the text found in the image
// swagger:model UploadImageResponse
type UploadImageResponse struct {
	// default: Hello
	ExtractedText string `json:"extracted_text"`
}

// NewUploadImageHandler runs OCR on the multipart field "image".
// @Summary Extract text from an image
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Success 200 {object} handlers.UploadImageResponse
// @Failure 400 {object} handlers.ErrorResponse "No file uploaded"
// @Failure 413 {object} handlers.ErrorResponse "Upload too large"
// @Failure 500 {object} handlers.ErrorResponse "OCR failed"
// @Router /upload_image [post]
// @Security CookieAuth
func NewUploadImageHandler(svc ImageTextExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Upload too large"})
				return
			}
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
			return
		}
		defer file.Close()

		if header.Filename == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No selected file"})
			return
		}

		text, err := svc.Extract(r.Context(), header.Filename, file)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No selected file"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "OCR failed: " + err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, UploadImageResponse{ExtractedText: text})
	}
}
