package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/usecase"
)

// FileHandler serves page media under core.FilesPrefix.
type FileHandler struct {
	files  usecase.FileReader
	isDev  bool
	logger *slog.Logger
}

func NewFileHandler(files usecase.FileReader, isDev bool, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileHandler{
		files:  files,
		isDev:  isDev,
		logger: logger,
	}
}

func (h *FileHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	file, data, err := h.files.ReadFile(req.Context(), req.URL.EscapedPath())
	if err != nil {
		if errors.Is(err, core.ErrFileNotFound) {
			serveError(w, http.StatusNotFound, "Not Found", req.URL.Path, h.isDev)
			return
		}
		h.logger.Error("read file", "path", req.URL.Path, "error", err)
		serveError(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), h.isDev)
		return
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = core.GetContentType(file.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("ETag", core.ETag(data))
	if !h.isDev {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	http.ServeContent(w, req, file.Filename, time.Time{}, bytes.NewReader(data))
}
