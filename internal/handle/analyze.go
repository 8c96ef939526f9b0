package handle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/kozuong/Car-AI/internal/analyze"
	"github.com/kozuong/Car-AI/internal/imageproc"
)

const (
	analyzeTimeout  = 180 * time.Second
	historyFreshFor = 24 * time.Hour
)

var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type analyzeResponse struct {
	Status         string            `json:"status"`
	Message        string            `json:"message"`
	ResultEN       analyze.CarRecord `json:"result_en"`
	ResultVI       analyze.CarRecord `json:"result_vi"`
	ImageProcessed bool              `json:"image_processed"`
	ProcessingTime float64           `json:"processing_time"`
}

// AnalyzeCar accepts a multipart car photo and returns the bilingual
// analysis.
func (h *Handle) AnalyzeCar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	start := time.Now()

	encoded, mime, err := h.readUpload(r)
	if err != nil {
		h.writeAnalyzeError(w, err)
		return
	}

	sum := sha256.Sum256(encoded)
	imageHash := hex.EncodeToString(sum[:])

	ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
	defer cancel()

	// A fresh history row for the same image skips the whole pipeline.
	if h.History != nil {
		if row, err := h.History.FindByHash(ctx, imageHash, historyFreshFor); err == nil {
			writeJSON(w, http.StatusOK, analyzeResponse{
				Status:         "success",
				Message:        "Successfully analyzed car",
				ResultEN:       row.Result.EN,
				ResultVI:       row.Result.VI,
				ImageProcessed: true,
				ProcessingTime: time.Since(start).Seconds(),
			})
			return
		}
	}

	result, err := h.Pipeline.Analyze(ctx, encoded, mime)
	if err != nil {
		h.writeAnalyzeError(w, err)
		return
	}

	if h.History != nil {
		if err := h.History.Upsert(ctx, imageHash, result); err != nil {
			log.Printf("[history] upsert: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Status:         "success",
		Message:        "Successfully analyzed car",
		ResultEN:       result.EN,
		ResultVI:       result.VI,
		ImageProcessed: true,
		ProcessingTime: time.Since(start).Seconds(),
	})
}

// readUpload pulls the multipart image out of the request and converts it
// to the JPEG payload the vision call expects. Every rejection is an
// *analyze.InputError carrying the localized text for the caller.
func (h *Handle) readUpload(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", &analyze.InputError{Reason: "No image provided", Message: "Vui lòng chọn ảnh để phân tích"}
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); !allowedExts[ext] {
		return nil, "", &analyze.InputError{
			Reason:  "Invalid file type",
			Message: "Định dạng file không hợp lệ. Vui lòng sử dụng ảnh PNG, JPG, JPEG hoặc GIF.",
		}
	}

	raw, err := io.ReadAll(io.LimitReader(file, int64(h.Encoder.MaxInputBytes)+1))
	if err != nil {
		return nil, "", &analyze.InputError{Reason: "Error reading file", Message: "Không thể đọc file ảnh"}
	}

	encoded, mime, err := h.Encoder.Encode(raw)
	if err != nil {
		switch {
		case errors.Is(err, imageproc.ErrTooLarge):
			return nil, "", &analyze.InputError{
				Reason:  "File too large",
				Message: "Kích thước file quá lớn. Vui lòng sử dụng ảnh nhỏ hơn 10MB.",
			}
		case errors.Is(err, imageproc.ErrEmptyFile):
			return nil, "", &analyze.InputError{Reason: "Empty file", Message: "File ảnh trống"}
		default:
			log.Printf("[analyze] image processing: %v", err)
			return nil, "", &analyze.InputError{Reason: "Image processing failed", Message: "Lỗi xử lý ảnh. Vui lòng thử lại."}
		}
	}
	return encoded, mime, nil
}

// writeAnalyzeError maps the engine's error taxonomy onto the API contract.
// Internal detail goes to the log, never to the caller.
func (h *Handle) writeAnalyzeError(w http.ResponseWriter, err error) {
	var input *analyze.InputError
	if errors.As(err, &input) {
		writeError(w, http.StatusBadRequest, input.Reason, input.Message)
		return
	}
	var incomplete *analyze.ExtractionIncompleteError
	if errors.As(err, &incomplete) {
		writeError(w, http.StatusUnprocessableEntity,
			"Thiếu trường tiếng Việt: "+strings.Join(incomplete.Missing, ", ")+
				". Vui lòng thử lại với ảnh rõ hơn hoặc prompt khác.",
			"missing_vi_fields")
		return
	}
	var collab *analyze.CollaboratorError
	if errors.As(err, &collab) {
		log.Printf("[analyze] collaborator %s: %v", collab.Collaborator, collab.Err)
		writeError(w, http.StatusBadRequest, "Error analyzing image",
			"Không thể phân tích ảnh. Vui lòng thử lại.")
		return
	}
	log.Printf("[analyze] unexpected: %v", err)
	writeError(w, http.StatusInternalServerError, "Unexpected error",
		"Đã xảy ra lỗi không mong muốn. Vui lòng thử lại sau.")
}
