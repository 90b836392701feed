// Package templates renders the bodies of outgoing parent emails.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// ParentAlertTemplate is the template used for parent-facing notifications.
const ParentAlertTemplate = "parent_alert"

// Body is a rendered email in both of its representations.
type Body struct {
	HTML string
	Text string
}

// Renderer executes the embedded email templates. Every template must exist
// as a name.html and name.txt pair.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	for _, name := range []string{ParentAlertTemplate} {
		if html.Lookup(name+".html") == nil || text.Lookup(name+".txt") == nil {
			return nil, fmt.Errorf("email template %s is incomplete", name)
		}
	}

	return &Renderer{html: html, text: text}, nil
}

// Render executes the named template pair.
func (r *Renderer) Render(name string, data any) (Body, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := r.html.ExecuteTemplate(&htmlBuf, name+".html", data); err != nil {
		return Body{}, fmt.Errorf("failed to render HTML template %s: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&textBuf, name+".txt", data); err != nil {
		return Body{}, fmt.Errorf("failed to render text template %s: %w", name, err)
	}
	return Body{HTML: htmlBuf.String(), Text: textBuf.String()}, nil
}

// ParentAlertData fills the parent_alert template. Title is the heading line of
// the notification and Lines the remaining message lines.
type ParentAlertData struct {
	AccountEmail string
	Title        string
	Lines        []string
	SentAt       string
}
