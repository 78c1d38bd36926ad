package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/vdom"
)

type ServePageInput struct {
	RequestPath string
	Query       core.Query
	Online      bool
}

// ServePageOutput carries the rendered page. Document is nil unless the
// renderer produced a tree.
type ServePageOutput struct {
	Action   core.PageAction
	Status   int
	Title    string
	Document templ.Component
	Tree     *vdom.VNode
	Page     *core.Page
	Error    error
}

type PageService struct {
	renderer   PageRenderer
	source     ContentSource
	emit       core.Emitter
	stylesheet string
	logger     *slog.Logger
}

type PageServiceOption func(*PageService)

func WithStylesheet(href string) PageServiceOption {
	return func(s *PageService) {
		s.stylesheet = href
	}
}

func WithServiceLogger(logger *slog.Logger) PageServiceOption {
	return func(s *PageService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewPageService(renderer PageRenderer, source ContentSource, emit core.Emitter, opts ...PageServiceOption) *PageService {
	s := &PageService{
		renderer: renderer,
		source:   source,
		emit:     emit,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	if s.renderer == nil || s.source == nil {
		return ServePageOutput{
			Action: core.ActionRenderGallery,
			Status: http.StatusInternalServerError,
			Error:  fmt.Errorf("page service not configured"),
		}
	}

	content, err := s.source.Content(ctx)
	if err != nil {
		return ServePageOutput{
			Action: core.ActionRenderGallery,
			Status: http.StatusInternalServerError,
			Error:  fmt.Errorf("load content: %w", err),
		}
	}

	page, ok := content.Lookup(input.RequestPath)
	decision := core.DecidePageAction(core.PageRequest{
		RequestPath: input.RequestPath,
		HasPage:     ok,
		Image:       input.Query.Image,
	})

	switch decision.Action {
	case core.ActionNotFound:
		return ServePageOutput{
			Action: core.ActionNotFound,
			Status: http.StatusNotFound,
		}

	case core.ActionRenderLightbox, core.ActionRenderGallery:
		state := core.State{
			Page:    page,
			Query:   core.Query{Image: decision.Image},
			Content: content,
			Events:  core.DefaultEvents(),
			Online:  input.Online,
		}
		return s.render(decision, state)

	default:
		return ServePageOutput{
			Action: decision.Action,
			Status: http.StatusInternalServerError,
			Error:  fmt.Errorf("unknown page action"),
		}
	}
}

func (s *PageService) render(decision core.PageDecision, state core.State) ServePageOutput {
	out := ServePageOutput{
		Action: decision.Action,
		Status: http.StatusOK,
		Page:   state.Page,
		Title:  state.Page.Title,
	}

	if decision.Action == core.ActionRenderLightbox {
		if file, ok := state.Page.File(decision.Image); ok {
			out.Title = state.Page.Title + " / " + file.Filename
		} else {
			out.Status = http.StatusNotFound
		}
	}

	tree, err := s.renderer.Render(state, s.emit)
	if err != nil {
		out.Status = http.StatusInternalServerError
		out.Error = err
		return out
	}
	out.Tree = tree
	out.Document = document(tree, out.Title, s.stylesheet)

	s.logger.Debug("page rendered", "path", decision.Path, "action", decision.Action.String(), "status", out.Status)
	return out
}

func document(tree *vdom.VNode, title, stylesheet string) templ.Component {
	return core.Document(core.DocumentProps{Title: title, Stylesheet: stylesheet}, vdom.Component(tree))
}

func renderDocument(ctx context.Context, tree *vdom.VNode, title, stylesheet string) (string, error) {
	var buf bytes.Buffer
	if err := document(tree, title, stylesheet).Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
