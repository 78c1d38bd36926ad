package core

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

const FilesPrefix = "/files"

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidatePageURL(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// PageURLForDir maps a content directory ("." for the root) to its page URL.
func PageURLForDir(dir string) string {
	if dir == "." || dir == "" {
		return "/"
	}
	return NormalizePath(path.Clean(dir))
}

func FileURL(pageURL, filename string) string {
	return path.Join(FilesPrefix, NormalizePath(pageURL), url.PathEscape(filename))
}

// ExportPath is the slash-separated output file holding a page's HTML.
func ExportPath(pageURL string) string {
	p := strings.TrimPrefix(NormalizePath(pageURL), "/")
	return path.Join(p, "index.html")
}

func LightboxExportPath(pageURL, id string) string {
	p := strings.TrimPrefix(NormalizePath(pageURL), "/")
	return path.Join(p, "image", id, "index.html")
}

// LightboxExportURL is the link to a pre-rendered lightbox page.
func LightboxExportURL(pageURL, id string) string {
	base := NormalizePath(pageURL)
	if base == "/" {
		base = ""
	}
	return base + "/image/" + url.PathEscape(id) + "/"
}

// FileExportPath is the slash-separated output location of a page file.
func FileExportPath(pageURL, filename string) string {
	p := strings.TrimPrefix(NormalizePath(pageURL), "/")
	return path.Join(strings.TrimPrefix(FilesPrefix, "/"), p, filename)
}
