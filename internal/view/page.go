// Package view renders a content page into a vdom tree: either the lightbox
// for a single image or the gallery layout with its optional video and
// setlist sections.
package view

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/maruel/natural"

	"github.com/3-lines-studio/vitrine/internal/components"
	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/shuffle"
	"github.com/3-lines-studio/vitrine/internal/vdom"
)

type Renderer struct {
	shuffle   func([]core.File) []core.File
	imageHref func(page *core.Page, f core.File) string
	logger    *slog.Logger
}

type Option func(*Renderer)

// WithShuffle replaces the per-render image permutation.
func WithShuffle(fn func([]core.File) []core.File) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.shuffle = fn
		}
	}
}

// WithImageHref changes where grid tiles link to. Static exports use it to
// point at pre-rendered lightbox pages instead of the query form.
func WithImageHref(fn func(page *core.Page, f core.File) string) Option {
	return func(r *Renderer) {
		r.imageHref = fn
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		shuffle: shuffle.Slice[core.File],
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render builds the tree for state.Page. The only side effect is the emit
// call made when the lightbox is closed.
func (r *Renderer) Render(state core.State, emit core.Emitter) (*vdom.VNode, error) {
	if err := validate(state.Page); err != nil {
		return nil, err
	}

	if core.DecideView(state) == core.ActionRenderLightbox {
		return r.renderLightbox(state, emit), nil
	}

	return r.renderGallery(state), nil
}

func validate(page *core.Page) error {
	if page == nil {
		return fmt.Errorf("render: %w: no current page", core.ErrMalformedPage)
	}
	if page.Files == nil {
		return fmt.Errorf("render %s: %w: files table missing", page.URL, core.ErrMalformedPage)
	}
	return nil
}

func (r *Renderer) renderLightbox(state core.State, emit core.Emitter) *vdom.VNode {
	page := state.Page
	props := components.LightboxProps{
		CloseURL: core.NormalizePath(page.URL),
	}

	if file, ok := page.File(state.Query.Image); ok {
		props.Image = &file
	} else {
		r.logger.Warn("lightbox image not found", "page", page.URL, "image", state.Query.Image)
	}

	event := state.Events.PushState
	if event == "" {
		event = core.EventPushState
	}
	target := page.URL
	props.HandleClick = func() {
		if emit != nil {
			emit(event, target)
		}
	}

	return components.ImageLightbox(props)
}

func (r *Renderer) renderGallery(state core.State) *vdom.VNode {
	page := state.Page
	images := r.shuffle(Images(page))

	var hrefFn func(core.File) string
	if r.imageHref != nil {
		hrefFn = func(f core.File) string { return r.imageHref(page, f) }
	}

	return vdom.Div(map[string]any{"class": "ttu"},
		header(page),
		r.navigation(state),
		videos(state),
		setlist(page),
		text(page),
		components.ImageGrid(components.GridProps{Images: images, Href: hrefFn}),
		listing(images),
	)
}

// Images returns the page's image files in natural id order.
func Images(page *core.Page) []core.File {
	if page == nil {
		return nil
	}
	ids := make([]string, 0, len(page.Files))
	for id, f := range page.Files {
		if f.Type == core.FileImage {
			ids = append(ids, id)
		}
	}
	sort.Sort(natural.StringSlice(ids))

	out := make([]core.File, 0, len(ids))
	for _, id := range ids {
		f := page.Files[id]
		if f.ID == "" {
			f.ID = id
		}
		out = append(out, f)
	}
	return out
}

func header(page *core.Page) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "page-header x xjb p0-5 fs2"},
		vdom.TextEl("div", map[string]any{"class": "p0-5"}, page.Title),
		vdom.Div(map[string]any{"class": "p0-5"},
			vdom.Anchor("/", map[string]any{"class": "tdn fc-white"}, vdom.Text("Index")),
		),
	)
}

func (r *Renderer) navigation(state core.State) *vdom.VNode {
	if len(state.Page.Pages) == 0 {
		return nil
	}
	links := make([]*vdom.VNode, 0, len(state.Page.Pages))
	for _, ref := range state.Page.Pages {
		sub, ok := state.Content.Lookup(ref.URL)
		if !ok {
			r.logger.Warn("sub-page not found", "page", state.Page.URL, "ref", ref.URL)
			continue
		}
		links = append(links, vdom.Anchor(sub.URL, map[string]any{"class": "p0-5"}, vdom.Text(sub.Name)))
	}
	return vdom.Div(map[string]any{"class": "page-nav x xw p0-5"}, links...)
}

func videos(state core.State) *vdom.VNode {
	page := state.Page
	if !page.HasSources() {
		return nil
	}
	opts := components.VideoOptions{
		TextOffline: state.Content.OfflineText(),
		Online:      state.Online,
		Ratio:       page.Ratio,
	}
	blocks := make([]*vdom.VNode, 0, len(page.Sources))
	for _, src := range page.Sources {
		blocks = append(blocks, components.Video(src, opts))
	}
	return vdom.Div(map[string]any{"class": "page-videos"}, blocks...)
}

func setlist(page *core.Page) *vdom.VNode {
	if !page.HasSetlist() {
		return nil
	}
	songs := make([]*vdom.VNode, 0, len(page.Setlist.Songs))
	for i, song := range page.Setlist.Songs {
		songs = append(songs, vdom.El("li", map[string]any{"class": "x c12"},
			vdom.TextEl("div", map[string]any{"class": "c4 px0-5"}, core.FormatIndex(i)),
			vdom.TextEl("div", map[string]any{"class": "c8 px0-5"}, song),
		))
	}
	return vdom.Div(map[string]any{"class": "page-setlist x c12 p0-5"},
		vdom.TextEl("div", map[string]any{"class": "c3 p0-5"}, "Setlist"),
		vdom.El("ol", map[string]any{"class": "c9 py0-5"}, songs...),
	)
}

func text(page *core.Page) *vdom.VNode {
	if page.Text == "" {
		return nil
	}
	return vdom.Raw("div", map[string]any{"class": "page-text p1 tn"}, page.Text)
}

func listing(images []core.File) *vdom.VNode {
	rows := make([]*vdom.VNode, 0, len(images))
	for i, f := range images {
		rows = append(rows, vdom.El("li", map[string]any{"class": "x"},
			vdom.TextEl("div", map[string]any{"class": "c2"}, core.FormatIndex(i)),
			vdom.TextEl("div", map[string]any{"class": "c10"}, f.Filename),
		))
	}
	return vdom.El("ol", map[string]any{"class": "page-listing p1"}, rows...)
}
