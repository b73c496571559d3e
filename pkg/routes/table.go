package routes

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/wordmap/pkg/openapi"
)

// Reverser builds URLs from route names.
type Reverser interface {
	Reverse(name string, args ...any) (string, error)
}

// Entry is a flattened route: its full path relative to the table base path.
type Entry struct {
	Method  string
	Path    string
	Name    string
	Tags    []string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Pattern returns the ServeMux pattern for the entry. Paths ending in "/"
// match exactly rather than as a subtree.
func (e Entry) Pattern() string {
	p := e.Method + " " + e.Path
	if strings.HasSuffix(e.Path, "/") {
		p += "{$}"
	}
	return p
}

// Table is an ordered set of named routes mounted under a base path.
type Table struct {
	basePath string
	entries  []Entry
	byName   map[string]int
	byKey    map[string]int
}

// NewTable creates an empty table. basePath is prepended by Reverse and AddToSpec
// but not by Handler, which expects the base path to be stripped already.
func NewTable(basePath string) *Table {
	return &Table{
		basePath: strings.TrimSuffix(basePath, "/"),
		byName:   make(map[string]int),
		byKey:    make(map[string]int),
	}
}

// BasePath returns the base path the table is mounted under.
func (t *Table) BasePath() string {
	return t.basePath
}

// Add flattens groups into the table. It stops at the first entry whose
// (method, path) or non-empty name is already present.
func (t *Table) Add(groups ...Group) error {
	for _, g := range groups {
		if err := t.addGroup("", nil, g); err != nil {
			return err
		}
	}
	return nil
}

// Entries returns the table entries in registration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the entry registered under name.
func (t *Table) Lookup(name string) (Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Handler builds a ServeMux with every entry registered.
func (t *Table) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, e := range t.entries {
		mux.HandleFunc(e.Pattern(), e.Handler)
	}
	return mux
}

// Reverse returns the full path for name with its {param} segments replaced
// by args in order. Arguments are formatted with fmt and path-escaped.
func (t *Table) Reverse(name string, args ...any) (string, error) {
	e, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownName, name)
	}

	segments := strings.Split(e.Path, "/")
	n := 0
	for i, seg := range segments {
		if !isParam(seg) {
			continue
		}
		if n >= len(args) {
			return "", fmt.Errorf("%w: %s expects more than %d", ErrArgCount, name, len(args))
		}
		segments[i] = url.PathEscape(fmt.Sprint(args[n]))
		n++
	}

	if n != len(args) {
		return "", fmt.Errorf("%w: %s expects %d, got %d", ErrArgCount, name, n, len(args))
	}

	return t.basePath + strings.Join(segments, "/"), nil
}

// AddToSpec adds every entry with an OpenAPI operation to spec under the base path.
// Entries inherit group tags unless the operation sets its own, and the
// route name becomes the operationId when none is set.
func (t *Table) AddToSpec(spec *openapi.Spec) {
	for _, e := range t.entries {
		if e.OpenAPI == nil {
			continue
		}

		op := *e.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = e.Tags
		}
		if op.OperationID == "" {
			op.OperationID = e.Name
		}

		path := t.basePath + e.Path
		item, ok := spec.Paths[path]
		if !ok {
			item = &openapi.PathItem{}
			spec.Paths[path] = item
		}

		switch e.Method {
		case http.MethodGet:
			item.Get = &op
		case http.MethodPost:
			item.Post = &op
		case http.MethodPut:
			item.Put = &op
		case http.MethodPatch:
			item.Patch = &op
		case http.MethodDelete:
			item.Delete = &op
		}
	}
}

func (t *Table) addGroup(prefix string, tags []string, g Group) error {
	prefix += g.Prefix
	if len(g.Tags) > 0 {
		tags = g.Tags
	}

	for _, r := range g.Routes {
		if err := t.addRoute(prefix, tags, r); err != nil {
			return err
		}
	}

	for _, child := range g.Children {
		if err := t.addGroup(prefix, tags, child); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) addRoute(prefix string, tags []string, r Route) error {
	path := prefix + r.Pattern
	if !strings.HasPrefix(path, "/") || r.Method == "" || r.Handler == nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidPattern, r.Method, path)
	}

	key := r.Method + " " + shape(path)
	if _, ok := t.byKey[key]; ok {
		return fmt.Errorf("%w: %s %s", ErrDuplicatePattern, r.Method, path)
	}
	if r.Name != "" {
		if _, ok := t.byName[r.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}
	}

	t.entries = append(t.entries, Entry{
		Method:  r.Method,
		Path:    path,
		Name:    r.Name,
		Tags:    tags,
		Handler: r.Handler,
		OpenAPI: r.OpenAPI,
	})

	idx := len(t.entries) - 1
	t.byKey[key] = idx
	if r.Name != "" {
		t.byName[r.Name] = idx
	}

	return nil
}

func isParam(seg string) bool {
	return len(seg) > 2 && seg[0] == '{' && seg[len(seg)-1] == '}'
}

// shape replaces parameter names so "/a/{id}/" and "/a/{key}/" compare equal.
func shape(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if isParam(seg) {
			segments[i] = "{}"
		}
	}
	return strings.Join(segments, "/")
}
