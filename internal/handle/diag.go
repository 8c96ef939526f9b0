package handle

import (
	"context"
	"net/http"
	"time"
)

// Diagnostic endpoints. Each exercises one collaborator, bypassing the
// pipeline.

const diagTimeout = 30 * time.Second

func (h *Handle) TestLogoSearch(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")
	if brand == "" {
		brand = "Toyota"
	}
	ctx, cancel := context.WithTimeout(r.Context(), diagTimeout)
	defer cancel()

	logoURL := h.Resolver.ResolveLogo(ctx, brand)
	if logoURL == "" {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"status": "fail", "brand": brand, "logo_url": nil, "message": "No logo found",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success", "brand": brand, "logo_url": logoURL,
	})
}

func (h *Handle) TestNumberProduced(w http.ResponseWriter, r *http.Request) {
	carName := r.URL.Query().Get("car_name")
	if carName == "" {
		carName = "Toyota Corolla Hatchback"
	}
	ctx, cancel := context.WithTimeout(r.Context(), diagTimeout)
	defer cancel()

	count := h.Resolver.ResolveProductionCount(ctx, carName, "")
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success", "car_name": carName, "number_produced": count,
	})
}

func (h *Handle) TestAPI(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), diagTimeout)
	defer cancel()

	resp, err := h.Gen.GenerateText(ctx, "Hello, this is a test message.")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "response": resp})
}
