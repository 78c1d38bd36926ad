package vitrine

import (
	"context"
	"fmt"

	"github.com/3-lines-studio/vitrine/internal/adapters/cli"
	"github.com/3-lines-studio/vitrine/internal/adapters/fs"
	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/usecase"
	"github.com/3-lines-studio/vitrine/internal/view"
)

type ExportOptions struct {
	Clean  bool
	Output *cli.Output
	// FileSystem defaults to the OS file system.
	FileSystem fs.FileSystem
}

// Export writes the whole site as static HTML under outDir. Grid tiles link
// to pre-rendered lightbox pages at <page>/image/<id>/.
func (a *App) Export(ctx context.Context, outDir string, opts ExportOptions) (*core.Manifest, error) {
	renderer := view.NewRenderer(a.viewOptions(
		view.WithImageHref(func(page *core.Page, f core.File) string {
			return core.LightboxExportURL(page.URL, f.ID)
		}),
	)...)

	target := opts.FileSystem
	if target == nil {
		target = fs.NewOSFileSystem()
	}

	var output usecase.CLIOutput
	if opts.Output != nil {
		output = opts.Output
	}

	service := usecase.NewExportService(renderer, a.site, a.site, target, output)
	service.SetStylesheet(a.stylesheet)
	service.SetLogger(a.logger)

	result := service.Export(ctx, usecase.ExportInput{
		OutDir: outDir,
		Online: a.online,
		Clean:  opts.Clean,
	})
	if result.Error != nil {
		return result.Manifest, fmt.Errorf("export %s: %w", outDir, result.Error)
	}
	return result.Manifest, nil
}
