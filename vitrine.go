// Package vitrine serves a gallery site from a content tree: one page per
// directory, rendered server side as a gallery or as a single image
// lightbox.
package vitrine

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	httpadapter "github.com/3-lines-studio/vitrine/internal/adapters/http"
	"github.com/3-lines-studio/vitrine/internal/content"
	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/events"
	"github.com/3-lines-studio/vitrine/internal/usecase"
	"github.com/3-lines-studio/vitrine/internal/vdom"
	"github.com/3-lines-studio/vitrine/internal/view"
)

type (
	State   = core.State
	Page    = core.Page
	File    = core.File
	Content = core.Content
	Query   = core.Query
	Events  = core.Events
	Emitter = core.Emitter
	VNode   = vdom.VNode
)

const requestTimeout = 30 * time.Second

type App struct {
	site       *content.Site
	renderer   *view.Renderer
	bus        *events.Bus
	pages      *usecase.PageService
	logger     *slog.Logger
	isDev      bool
	online     bool
	stylesheet string
	shuffle    func([]core.File) []core.File
}

type Option func(*App)

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithDev reloads the content tree on every request and shows error
// details in error pages.
func WithDev(dev bool) Option {
	return func(a *App) {
		a.isDev = dev
	}
}

// WithOnline controls whether video sources are embedded or replaced by the
// site's offline text.
func WithOnline(online bool) Option {
	return func(a *App) {
		a.online = online
	}
}

func WithStylesheet(href string) Option {
	return func(a *App) {
		a.stylesheet = href
	}
}

func WithShuffle(fn func([]core.File) []core.File) Option {
	return func(a *App) {
		a.shuffle = fn
	}
}

func New(fsys fs.FS, opts ...Option) *App {
	app := &App{
		logger: slog.Default(),
		online: true,
	}
	for _, opt := range opts {
		opt(app)
	}

	siteOpts := []content.SiteOption{content.WithLogger(app.logger)}
	if app.isDev {
		siteOpts = append(siteOpts, content.WithAutoReload())
	}
	app.site = content.NewSite(fsys, siteOpts...)

	app.renderer = view.NewRenderer(app.viewOptions()...)

	app.bus = events.NewBus(app.logger)
	app.bus.On(core.EventPushState, func(payload any) {
		app.logger.Debug("lightbox closed", "url", payload)
	})

	app.pages = usecase.NewPageService(app.renderer, app.site, app.bus.Emit,
		usecase.WithStylesheet(app.stylesheet),
		usecase.WithServiceLogger(app.logger),
	)

	return app
}

func (a *App) viewOptions(extra ...view.Option) []view.Option {
	opts := []view.Option{view.WithLogger(a.logger)}
	if a.shuffle != nil {
		opts = append(opts, view.WithShuffle(a.shuffle))
	}
	return append(opts, extra...)
}

// Reload re-reads the content tree.
func (a *App) Reload() error {
	return a.site.Reload()
}

// On subscribes to events emitted while rendering, such as
// core.EventPushState when a lightbox is closed.
func (a *App) On(name string, handler func(payload any)) {
	a.bus.On(name, handler)
}

func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(httpadapter.RequestLogger(a.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	files := httpadapter.NewFileHandler(a.site, a.isDev, a.logger)
	r.Method(http.MethodGet, core.FilesPrefix+"/*", files)
	r.Method(http.MethodHead, core.FilesPrefix+"/*", files)

	r.Handle("/*", httpadapter.NewPageHandler(a.pages, a.online, a.isDev, a.logger))

	return r
}

// Render renders a single state with the default renderer.
func Render(state State, emit Emitter) (*VNode, error) {
	return view.NewRenderer().Render(state, emit)
}
