package handle

import (
	"net/http"
	"time"
)

func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"pipeline":      "initialized",
		"image_encoder": "initialized",
	}
	if h.History != nil {
		services["history_store"] = "initialized"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	})
}
