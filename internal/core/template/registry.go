package template

import (
	"fmt"

	"github.com/shopmart/backend/internal/core/domain"
)

// Definition is the raw source of one message template.
type Definition struct {
	Subject string
	HTML    string
	Text    string
}

// Rendered is the output of one registry render: all three message variants.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

type compiledTemplate struct {
	subject *Template
	html    *Template
	text    *Template
}

// Registry holds compiled templates keyed by id. It is built once at
// construction and never mutated afterwards, so concurrent renders need
// no locking.
type Registry struct {
	templates map[string]compiledTemplate
}

func NewRegistry(defs map[string]Definition) (*Registry, error) {
	templates := make(map[string]compiledTemplate, len(defs))
	for id, def := range defs {
		subject, err := Parse(def.Subject)
		if err != nil {
			return nil, fmt.Errorf("template %q subject: %w", id, err)
		}
		html, err := Parse(def.HTML)
		if err != nil {
			return nil, fmt.Errorf("template %q html: %w", id, err)
		}
		text, err := Parse(def.Text)
		if err != nil {
			return nil, fmt.Errorf("template %q text: %w", id, err)
		}
		templates[id] = compiledTemplate{subject: subject, html: html, text: text}
	}
	return &Registry{templates: templates}, nil
}

// Render evaluates the template with the given id against data.
func (r *Registry) Render(id string, data map[string]any) (*Rendered, error) {
	ct, ok := r.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, id)
	}
	return &Rendered{
		Subject: ct.subject.Render(data),
		HTML:    ct.html.Render(data),
		Text:    ct.text.Render(data),
	}, nil
}
