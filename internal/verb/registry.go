// Package verb declares syntax templates and a reference set of verb
// handlers that exercise the command pipeline end to end, including its
// auto-take path; no template uses the TryTake LocMask bit. Room/object content
// (the actual game world) is authored separately; this package only
// supplies the verbs that act on it.
package verb

import "github.com/ashgrove/grue/internal/parse"

// Registry is the syntax-template and handler table the pipeline consults
// for C4 (Templates) and C8 (Handler). It implements parse.Registry and
// parse.HandlerLookup.
type Registry struct {
	templates map[string][]parse.Template
	verbWords map[string][]string
	prepWords map[string][]string
	handlers  map[string]parse.Handler
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string][]parse.Template),
		verbWords: make(map[string][]string),
		prepWords: make(map[string][]string),
		handlers:  make(map[string]parse.Handler),
	}
}

// AddVerb registers a verb's surface words and the syntax templates it can
// match against, in definition order (GWIM/template-selection order follows
// this order per spec.md §4.4/§7).
func (r *Registry) AddVerb(id string, words []string, templates ...parse.Template) {
	r.verbWords[id] = words
	r.templates[id] = append(r.templates[id], templates...)
}

// AddPrep registers a preposition's surface words.
func (r *Registry) AddPrep(id string, words []string) {
	r.prepWords[id] = words
}

// AddHandler binds an action id (a template's Action) to its handler.
func (r *Registry) AddHandler(action string, h parse.Handler) {
	r.handlers[action] = h
}

func (r *Registry) Templates(verb string) []parse.Template { return r.templates[verb] }

func (r *Registry) VerbWords() map[string][]string { return r.verbWords }

func (r *Registry) PrepWords() map[string][]string { return r.prepWords }

func (r *Registry) Handler(action string) (parse.Handler, bool) {
	h, ok := r.handlers[action]
	return h, ok
}
