package core

type PageAction int

const (
	ActionRenderGallery PageAction = iota
	ActionRenderLightbox
	ActionNotFound
)

func (a PageAction) String() string {
	switch a {
	case ActionRenderGallery:
		return "gallery"
	case ActionRenderLightbox:
		return "lightbox"
	case ActionNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

type PageRequest struct {
	RequestPath string
	HasPage     bool
	Image       string
}

type PageDecision struct {
	Action PageAction
	Path   string
	Image  string
}

func DecidePageAction(req PageRequest) PageDecision {
	path := NormalizePath(req.RequestPath)
	if !req.HasPage {
		return PageDecision{Action: ActionNotFound, Path: path}
	}

	// The id is used verbatim; any non-empty value selects the lightbox.
	if req.Image != "" {
		return PageDecision{Action: ActionRenderLightbox, Path: path, Image: req.Image}
	}

	return PageDecision{Action: ActionRenderGallery, Path: path}
}

// DecideView picks the branch for an already resolved state.
func DecideView(state State) PageAction {
	return DecidePageAction(PageRequest{
		RequestPath: pageURL(state.Page),
		HasPage:     state.Page != nil,
		Image:       state.Query.Image,
	}).Action
}

func pageURL(p *Page) string {
	if p == nil {
		return "/"
	}
	return p.URL
}
