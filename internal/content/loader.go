// Package content loads a site's page tree from a file system. Every directory
// holding an index.md is a page; the other files next to it are the page's
// media.
package content

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/3-lines-studio/vitrine/internal/core"
)

const IndexFile = "index.md"

// Load reads every page under the root of fsys.
func Load(fsys fs.FS) (core.Content, error) {
	pages := core.Content{}
	dirs := map[string]string{}
	explicit := map[string]bool{}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != "." && skipName(d.Name()) {
			return fs.SkipDir
		}

		entries, err := fs.ReadDir(fsys, p)
		if err != nil {
			return fmt.Errorf("content: read dir %s: %w", p, err)
		}
		if !hasIndex(entries) {
			return nil
		}

		page, hasPages, err := loadPage(fsys, p, entries)
		if err != nil {
			return err
		}
		pages[page.URL] = page
		dirs[p] = page.URL
		explicit[page.URL] = hasPages
		return nil
	})
	if err != nil {
		return nil, err
	}

	for dir, url := range dirs {
		if explicit[url] {
			continue
		}
		pages[url].Pages = childPages(dir, dirs)
	}

	return pages, nil
}

func loadPage(fsys fs.FS, dir string, entries []fs.DirEntry) (*core.Page, bool, error) {
	file := path.Join(dir, IndexFile)
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, false, fmt.Errorf("content: read %s: %w", file, err)
	}

	fm, body := splitFrontMatter(string(data))
	front, err := parseFrontMatter(fm)
	if err != nil {
		return nil, false, fmt.Errorf("content: parse front matter %s: %w", file, err)
	}

	text, err := renderMarkdown(body)
	if err != nil {
		return nil, false, fmt.Errorf("content: render markdown %s: %w", file, err)
	}

	url := core.PageURLForDir(dir)
	page := &core.Page{
		Title:   strings.TrimSpace(front.Title),
		Name:    strings.TrimSpace(front.Name),
		URL:     url,
		Files:   pageFiles(url, entries),
		Ratio:   front.Ratio,
		Offline: strings.TrimSpace(front.Offline),
		Text:    text,
	}

	if page.Name == "" {
		page.Name = firstNonEmpty(page.Title, dirName(dir))
	}
	if page.Title == "" {
		page.Title = page.Name
	}

	for _, ref := range front.Pages {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		target := resolveRef(url, ref)
		if err := core.ValidatePageURL(target); err != nil {
			return nil, false, fmt.Errorf("content: %s: page %q: %w", file, ref, err)
		}
		page.Pages = append(page.Pages, core.PageRef{URL: target})
	}

	for _, src := range front.Sources {
		page.Sources = append(page.Sources, core.Source{
			Provider: strings.ToLower(strings.TrimSpace(src.Provider)),
			ID:       strings.TrimSpace(src.ID),
			URL:      strings.TrimSpace(src.URL),
			Title:    strings.TrimSpace(src.Title),
		})
	}

	if front.Setlist != nil {
		page.Setlist = &core.Setlist{Songs: front.Setlist.songs}
	}

	return page, front.Pages != nil, nil
}

func pageFiles(url string, entries []fs.DirEntry) map[string]core.File {
	files := make(map[string]core.File)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == IndexFile || skipName(name) {
			continue
		}
		files[name] = core.File{
			ID:          name,
			Type:        core.FileTypeFor(name),
			Filename:    name,
			URL:         core.FileURL(url, name),
			ContentType: core.GetContentType(name),
		}
	}
	return files
}

func childPages(dir string, dirs map[string]string) []core.PageRef {
	var children []string
	for d := range dirs {
		if d != dir && d != "." && path.Dir(d) == dir {
			children = append(children, d)
		}
	}
	sort.Sort(natural.StringSlice(children))

	refs := make([]core.PageRef, 0, len(children))
	for _, d := range children {
		refs = append(refs, core.PageRef{URL: dirs[d]})
	}
	return refs
}

func resolveRef(base, ref string) string {
	if strings.HasPrefix(ref, "/") {
		return core.NormalizePath(path.Clean(ref))
	}
	return core.NormalizePath(path.Join(base, ref))
}

func hasIndex(entries []fs.DirEntry) bool {
	for _, e := range entries {
		if !e.IsDir() && e.Name() == IndexFile {
			return true
		}
	}
	return false
}

func skipName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func dirName(dir string) string {
	if dir == "." || dir == "" {
		return "Index"
	}
	return path.Base(dir)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
