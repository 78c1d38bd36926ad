package core

import (
	"path/filepath"
	"strings"
)

var contentTypes = map[string]string{
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".html": "text/html; charset=utf-8",
	".txt":  "text/plain; charset=utf-8",
	".md":   "text/markdown; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".avif": "image/avif",
	".svg":  "image/svg+xml",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".pdf":  "application/pdf",
	".ico":  "image/x-icon",
}

func GetContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

func FileTypeFor(path string) FileType {
	ct := GetContentType(path)
	switch {
	case ct == "image/x-icon":
		return FileOther
	case strings.HasPrefix(ct, "image/"):
		return FileImage
	case strings.HasPrefix(ct, "video/"):
		return FileVideo
	case strings.HasPrefix(ct, "audio/"):
		return FileAudio
	case strings.HasPrefix(ct, "text/"):
		return FileText
	default:
		return FileOther
	}
}
