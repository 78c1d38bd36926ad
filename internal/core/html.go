package core

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const defaultTitle = "Vitrine"

type DocumentProps struct {
	Title      string
	Stylesheet string
}

// Document wraps body in the HTML page shell.
func Document(p DocumentProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if body == nil {
			return fmt.Errorf("document: missing body")
		}

		title := p.Title
		if title == "" {
			title = defaultTitle
		}

		if _, err := io.WriteString(w, "<!doctype html>\n<html lang=\"en\">\n  <head>\n    "+
			`<meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" />`+
			"<title>"+templ.EscapeString(title)+"</title>"); err != nil {
			return err
		}
		if p.Stylesheet != "" {
			if _, err := io.WriteString(w, `<link rel="stylesheet" href="`+templ.EscapeString(p.Stylesheet)+`" />`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n  </head>\n  <body>\n    <div id=\"app\">"); err != nil {
			return err
		}
		if err := body.Render(templ.ClearChildren(ctx), w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div>\n  </body>\n</html>\n")
		return err
	})
}
