package api

import (
	_ "embed"
	"net/http"
	"os"
	"strconv"
)

var (
	//go:embed web/index.html
	indexHTML []byte

	//go:embed web/placeholder.png
	placeholderPNG []byte
)

// index serves the single-page chat UI.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}

// placeholder serves the configured image, or a 1x1 PNG when none is
// configured or the file is missing.
func (h *Handler) placeholder(w http.ResponseWriter, r *http.Request) {
	if h.placeholderPath != "" {
		if fi, err := os.Stat(h.placeholderPath); err == nil && fi.Mode().IsRegular() {
			http.ServeFile(w, r, h.placeholderPath)
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(placeholderPNG)))
	w.WriteHeader(http.StatusOK)
	w.Write(placeholderPNG)
}

// health reports liveness.
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
