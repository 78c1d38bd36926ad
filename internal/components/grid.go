package components

import (
	"net/url"

	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/vdom"
)

type GridProps struct {
	Images []core.File
	// Href builds the link for a tile; nil links to the lightbox query.
	Href func(core.File) string
}

func ImageGrid(p GridProps) *vdom.VNode {
	href := p.Href
	if href == nil {
		href = func(f core.File) string { return "?image=" + url.QueryEscape(f.ID) }
	}

	tiles := make([]*vdom.VNode, 0, len(p.Images))
	for _, img := range p.Images {
		tiles = append(tiles, vdom.Div(map[string]any{"class": "image-grid-item c4 p0-5"},
			vdom.Anchor(href(img), map[string]any{"class": "db"},
				vdom.NewVNode("img", map[string]any{
					"src":     img.URL,
					"alt":     img.Filename,
					"loading": "lazy",
				}, nil, ""),
			),
		))
	}

	return vdom.Div(map[string]any{"class": "image-grid x xw p0-5"}, tiles...)
}
