package components

import (
	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/vdom"
)

type LightboxProps struct {
	Image       *core.File
	CloseURL    string
	HandleClick func()
}

// ImageLightbox renders a full-screen overlay for one image. Clicking anywhere
// on the overlay closes it; the anchor keeps that working without scripts.
func ImageLightbox(p LightboxProps) *vdom.VNode {
	attrs := map[string]any{
		"class": "lightbox psf t0 l0 r0 b0 x xjc xac bg-black",
	}
	if p.HandleClick != nil {
		attrs["onClick"] = p.HandleClick
	}

	var body *vdom.VNode
	if p.Image == nil {
		body = vdom.TextEl("div", map[string]any{"class": "lightbox-missing fc-white p1"}, "Image not found")
	} else {
		body = vdom.NewVNode("img", map[string]any{
			"class": "lightbox-image",
			"src":   p.Image.URL,
			"alt":   p.Image.Filename,
		}, nil, "")
	}

	closeURL := p.CloseURL
	if closeURL == "" {
		closeURL = "/"
	}

	return vdom.Div(attrs,
		vdom.Anchor(closeURL, map[string]any{"class": "lightbox-close db", "aria-label": "Close"}, body),
	)
}
