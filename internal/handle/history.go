package handle

import (
	"log"
	"net/http"
	"strconv"
)

// History lists recent analyses for the client's history screen. 404 when
// no store is configured.
func (h *Handle) HistoryList(w http.ResponseWriter, r *http.Request) {
	if h.History == nil {
		writeError(w, http.StatusNotFound, "History not configured", "Chưa có lịch sử phân tích")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := h.History.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("[history] list: %v", err)
		writeError(w, http.StatusInternalServerError, "Error loading history", "Có lỗi xảy ra")
		return
	}

	type entry struct {
		ImageHash string `json:"image_hash"`
		CarName   string `json:"car_name"`
		CreatedAt string `json:"created_at"`
		LogoURL   string `json:"logo_url,omitempty"`
	}
	out := make([]entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entry{
			ImageHash: row.ImageHash,
			CarName:   row.CarName,
			CreatedAt: row.CreatedAt.Format("2006-01-02 15:04:05"),
			LogoURL:   row.Result.EN.LogoURL,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "history": out})
}
