package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"

	"github.com/3-lines-studio/vitrine/internal/core"
)

const ManifestFile = "manifest.json"

type ExportInput struct {
	OutDir string
	Online bool
	// Clean removes OutDir before writing.
	Clean bool
}

type ExportOutput struct {
	Manifest   *core.Manifest
	Pages      int
	Lightboxes int
	Files      int
	Error      error
}

// ExportService writes every page of a site as static HTML. The renderer it
// is given decides how grid tiles link to the lightbox pages.
type ExportService struct {
	renderer   PageRenderer
	source     ContentSource
	files      FileReader
	fs         FileSystem
	output     CLIOutput
	stylesheet string
	logger     *slog.Logger
}

func NewExportService(renderer PageRenderer, source ContentSource, files FileReader, fs FileSystem, output CLIOutput) *ExportService {
	return &ExportService{
		renderer: renderer,
		source:   source,
		files:    files,
		fs:       fs,
		output:   output,
		logger:   slog.Default(),
	}
}

func (s *ExportService) SetStylesheet(href string) {
	s.stylesheet = href
}

func (s *ExportService) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("export: output directory is required")}
	}

	content, err := s.source.Content(ctx)
	if err != nil {
		return ExportOutput{Error: fmt.Errorf("export: load content: %w", err)}
	}

	if input.Clean {
		if err := s.fs.RemoveAll(input.OutDir); err != nil {
			return ExportOutput{Error: fmt.Errorf("export: clean %s: %w", input.OutDir, err)}
		}
	}

	urls := make([]string, 0, len(content))
	for u := range content {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	s.printStep("📄", "Exporting %d pages to %s", len(urls), input.OutDir)

	out := ExportOutput{Manifest: core.NewManifest()}
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			out.Error = err
			return out
		}

		entry, err := s.exportPage(ctx, input, content, content[u], &out)
		if err != nil {
			out.Error = err
			return out
		}
		out.Manifest.Pages[u] = entry
	}

	data, err := out.Manifest.Marshal()
	if err != nil {
		out.Error = fmt.Errorf("export: marshal manifest: %w", err)
		return out
	}
	if err := s.write(input.OutDir, ManifestFile, data); err != nil {
		out.Error = err
		return out
	}

	if s.output != nil {
		s.output.PrintSuccess("%d pages, %d lightboxes, %d files", out.Pages, out.Lightboxes, out.Files)
	}
	s.logger.Info("export complete", "dir", input.OutDir, "pages", out.Pages, "lightboxes", out.Lightboxes, "files", out.Files)
	return out
}

func (s *ExportService) exportPage(ctx context.Context, input ExportInput, content core.Content, page *core.Page, out *ExportOutput) (core.ManifestEntry, error) {
	entry := core.ManifestEntry{
		HTML:     core.ExportPath(page.URL),
		Title:    page.Title,
		HasVideo: page.HasSources(),
	}

	state := core.State{
		Page:    page,
		Content: content,
		Events:  core.DefaultEvents(),
		Online:  input.Online,
	}

	doc, err := s.renderDocument(ctx, state, page.Title)
	if err != nil {
		return entry, fmt.Errorf("export %s: %w", page.URL, err)
	}
	if err := s.write(input.OutDir, entry.HTML, []byte(doc)); err != nil {
		return entry, err
	}
	out.Pages++
	s.printFile(entry.HTML)

	ids := make([]string, 0, len(page.Files))
	for id := range page.Files {
		ids = append(ids, id)
	}
	sort.Sort(natural.StringSlice(ids))

	for _, id := range ids {
		file := page.Files[id]

		if file.Type == core.FileImage {
			lightbox := state
			lightbox.Query = core.Query{Image: id}
			doc, err := s.renderDocument(ctx, lightbox, page.Title+" / "+file.Filename)
			if err != nil {
				return entry, fmt.Errorf("export %s image %s: %w", page.URL, id, err)
			}
			rel := core.LightboxExportPath(page.URL, id)
			if err := s.write(input.OutDir, rel, []byte(doc)); err != nil {
				return entry, err
			}
			if entry.Images == nil {
				entry.Images = map[string]string{}
			}
			entry.Images[id] = rel
			out.Lightboxes++
		}

		if s.files == nil {
			continue
		}
		_, data, err := s.files.ReadFile(ctx, file.URL)
		if err != nil {
			s.logger.Warn("export: skipping file", "page", page.URL, "file", file.Filename, "error", err)
			s.printWarning("skipped %s: %v", file.URL, err)
			continue
		}
		rel := core.FileExportPath(page.URL, file.Filename)
		if err := s.write(input.OutDir, rel, data); err != nil {
			return entry, err
		}
		entry.Files = append(entry.Files, rel)
		out.Files++
	}

	return entry, nil
}

func (s *ExportService) renderDocument(ctx context.Context, state core.State, title string) (string, error) {
	tree, err := s.renderer.Render(state, nil)
	if err != nil {
		return "", err
	}
	return renderDocument(ctx, tree, title, s.stylesheet)
}

func (s *ExportService) write(outDir, rel string, data []byte) error {
	dst := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := s.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("export: create dir for %s: %w", rel, err)
	}
	if err := s.fs.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", rel, err)
	}
	return nil
}

func (s *ExportService) printStep(emoji, msg string, args ...any) {
	if s.output != nil {
		s.output.PrintStep(emoji, msg, args...)
	}
}

func (s *ExportService) printFile(path string) {
	if s.output != nil {
		s.output.PrintFile(path)
	}
}

func (s *ExportService) printWarning(msg string, args ...any) {
	if s.output != nil {
		s.output.PrintWarning(msg, args...)
	}
}
