package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed web/*.html
var webFS embed.FS

var pages = template.Must(template.ParseFS(webFS, "web/*.html"))

// localTimeLayout renders times the way the landing page shows them, e.g. 2025/3/9 14:05:07.
const localTimeLayout = "2006/1/2 15:04:05"

type pageData struct {
	Version string
	Now     string
}

// IndexPageHandler godoc
// @Summary Landing page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *Handlers) IndexPageHandler(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "index.html", pageData{Version: h.version, Now: h.now().Local().Format(localTimeLayout)})
}

// LoginPageHandler godoc
// @Summary Login form
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /api/login [get]
func (h *Handlers) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "login.html", pageData{Version: h.version})
}

// DashboardPageHandler godoc
// @Summary Employee dashboard shell
// @Description Client-side script loads /health and /api/products.
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /dashboard [get]
func (h *Handlers) DashboardPageHandler(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "dashboard.html", pageData{Version: h.version})
}

func (h *Handlers) renderPage(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("failed to render page", zap.String("page", name), zap.Error(err))
		h.respond(w, http.StatusInternalServerError, ErrorResponse{Success: false, Message: msgInternalError})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page", zap.String("page", name), zap.Error(err))
	}
}
