package http

import (
	"bytes"
	"html"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	online  bool
	isDev   bool
	logger  *slog.Logger
}

func NewPageHandler(service *usecase.PageService, online, isDev bool, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		service: service,
		online:  online,
		isDev:   isDev,
		logger:  logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		serveError(w, http.StatusMethodNotAllowed, "Method Not Allowed", "", h.isDev)
		return
	}

	input := usecase.ServePageInput{
		RequestPath: req.URL.Path,
		Query:       core.Query{Image: req.URL.Query().Get("image")},
		Online:      h.online,
	}

	output := h.service.ServePage(req.Context(), input)

	if output.Error != nil {
		h.logger.Error("render page", "path", req.URL.Path, "error", output.Error)
		serveError(w, http.StatusInternalServerError, "Internal Server Error", output.Error.Error(), h.isDev)
		return
	}

	switch output.Action {
	case core.ActionNotFound:
		serveError(w, http.StatusNotFound, "Not Found", req.URL.Path, h.isDev)

	case core.ActionRenderGallery, core.ActionRenderLightbox:
		// Gallery order changes on every request, so pages carry no validator.
		w.Header().Set("Cache-Control", "no-cache")
		templ.Handler(output.Document,
			templ.WithStatus(output.Status),
			templ.WithErrorHandler(h.renderError),
		).ServeHTTP(w, req)
	}
}

func (h *PageHandler) renderError(_ *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Error("write page", "path", r.URL.Path, "error", err)
		serveError(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), h.isDev)
	})
}

func serveError(w http.ResponseWriter, status int, title, message string, isDev bool) {
	data := core.ErrorData{
		Status:  status,
		Title:   title,
		Message: message,
		IsDev:   isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
