package handle

import (
	"encoding/json"
	"net/http"

	"github.com/kozuong/Car-AI/internal/analyze"
	"github.com/kozuong/Car-AI/internal/imageproc"
	"github.com/kozuong/Car-AI/internal/store"
)

type Handle struct {
	Pipeline *analyze.Pipeline
	Encoder  *imageproc.Encoder
	Resolver *analyze.Resolver
	Gen      analyze.TextGenerator

	// History is nil when no database is configured.
	History *store.HistoryRepo
}

func New(p *analyze.Pipeline, enc *imageproc.Encoder, res *analyze.Resolver, gen analyze.TextGenerator, hist *store.HistoryRepo) *Handle {
	return &Handle{
		Pipeline: p,
		Encoder:  enc,
		Resolver: res,
		Gen:      gen,
		History:  hist,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends the error envelope: message for operators, error for the
// localized text shown to the user.
func writeError(w http.ResponseWriter, code int, message, localized string) {
	writeJSON(w, code, map[string]any{
		"status":  "error",
		"message": message,
		"error":   localized,
	})
}
