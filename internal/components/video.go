package components

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/vdom"
)

const DefaultRatio = 56.25

type VideoOptions struct {
	TextOffline string
	Online      bool
	Ratio       float64
}

// Video renders one source inside a box that keeps the aspect ratio. Offline
// clients get the fallback text instead of an embed.
func Video(source core.Source, opts VideoOptions) *vdom.VNode {
	frame := map[string]any{
		"class": "video-frame psr",
		"style": "padding-bottom:" + formatPercent(RatioPercent(opts.Ratio)) + "%",
	}

	embed := ""
	if opts.Online {
		embed = EmbedURL(source)
	}

	var inner *vdom.VNode
	switch {
	case embed == "":
		inner = vdom.TextEl("div", map[string]any{"class": "video-offline psa t0 l0 r0 b0 x xjc xac"}, opts.TextOffline)
	case strings.EqualFold(source.Provider, "file"):
		inner = vdom.NewVNode("video", map[string]any{
			"class":    "psa t0 l0 w100 h100",
			"src":      embed,
			"controls": true,
			"preload":  "metadata",
		}, nil, "")
	default:
		inner = vdom.NewVNode("iframe", map[string]any{
			"class":           "psa t0 l0 w100 h100",
			"src":             embed,
			"title":           source.Title,
			"frameborder":     "0",
			"allow":           "autoplay; fullscreen; picture-in-picture",
			"allowfullscreen": true,
		}, nil, "")
	}

	return vdom.Div(map[string]any{"class": "video c12 p0-5"}, vdom.Div(frame, inner))
}

// RatioPercent accepts either a fraction (0.5625) or a percentage (56.25).
func RatioPercent(r float64) float64 {
	switch {
	case r <= 0:
		return DefaultRatio
	case r <= 1:
		return r * 100
	default:
		return r
	}
}

func EmbedURL(s core.Source) string {
	switch strings.ToLower(s.Provider) {
	case "youtube":
		if s.ID == "" {
			return s.URL
		}
		return "https://www.youtube-nocookie.com/embed/" + url.PathEscape(s.ID)
	case "vimeo":
		if s.ID == "" {
			return s.URL
		}
		return "https://player.vimeo.com/video/" + url.PathEscape(s.ID)
	default:
		return s.URL
	}
}

func formatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
