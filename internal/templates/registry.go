// Package templates holds the fixed set of prompt templates offered to callers.
package templates

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// DefaultID is the template used when a request names none.
const DefaultID = "quickwriter"

// Defaults for optional prompt fields.
const (
	DefaultContentType = "article"
	DefaultTone        = "professional"
	DefaultLength      = "medium"
	DefaultLanguage    = "english"
)

// ErrNotFound is returned when a template identifier is not registered.
var ErrNotFound = errors.New("template not found")

// Template is a named prompt pattern plus display metadata.
type Template struct {
	ID          string
	Name        string
	Description string
	Prompt      string
}

// Info is the public view of a template. The prompt pattern is never exposed.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Params are the values substituted into a prompt pattern.
type Params struct {
	ContentType string
	Topic       string
	Tone        string
	Length      string
	Language    string
}

// WithDefaults fills empty optional fields. Topic is left as is.
func (p Params) WithDefaults() Params {
	p.ContentType = orDefault(p.ContentType, DefaultContentType)
	p.Tone = orDefault(p.Tone, DefaultTone)
	p.Length = orDefault(p.Length, DefaultLength)
	p.Language = orDefault(p.Language, DefaultLanguage)

	return p
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// Registry is a read-only lookup of templates by identifier.
// It has no writers after construction and is safe for concurrent use.
type Registry struct {
	byID map[string]Template
}

// NewRegistry builds a registry from the given templates.
// Later entries with a duplicate ID replace earlier ones.
func NewRegistry(tmpls ...Template) *Registry {
	byID := make(map[string]Template, len(tmpls))
	for _, t := range tmpls {
		byID[t.ID] = t
	}

	return &Registry{byID: byID}
}

// Default returns the registry of built-in templates.
func Default() *Registry {
	return defaultRegistry
}

// Get returns the template registered under id.
func (r *Registry) Get(id string) (Template, error) {
	t, ok := r.byID[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	return t, nil
}

// Has reports whether id names a registered template.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// IDs returns every registered identifier in sorted order.
func (r *Registry) IDs() []string {
	ids := maps.Keys(r.byID)
	slices.Sort(ids)

	return ids
}

// List returns the identifier → metadata listing for every template.
func (r *Registry) List() map[string]Info {
	out := make(map[string]Info, len(r.byID))
	for id, t := range r.byID {
		out[id] = Info{Name: t.Name, Description: t.Description}
	}

	return out
}

// Render fills the template's placeholders with p.
// Substituted values are not rescanned, so a topic containing "{tone}" stays literal.
func (t Template) Render(p Params) string {
	replacer := strings.NewReplacer(
		"{content_type}", p.ContentType,
		"{topic}", p.Topic,
		"{tone}", p.Tone,
		"{length}", p.Length,
		"{language}", p.Language,
	)

	return replacer.Replace(t.Prompt)
}
