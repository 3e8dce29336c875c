// Package router maps request paths to the application's views.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var (
	ErrNoRoute      = errors.New("no route matches path")
	ErrRedirectLoop = errors.New("too many redirects")
	ErrInvalidRoute = errors.New("invalid route")
	ErrViewMissing  = errors.New("no view for route")
)

const maxRedirectHops = 10

// Route is either a named view or a redirect to another path.
type Route struct {
	Path     string
	Name     string
	Redirect string
}

// Routes is the application's route table.
var Routes = []Route{
	{Path: "/", Redirect: "/home"},
	{Path: "/home", Name: "home"},
	{Path: "/reviews", Name: "reviews"},
}

// Resolution is the outcome of resolving a path.
type Resolution struct {
	Path      string   // path of the matched named route
	Name      string   // view name
	Redirects []string // paths redirected away from, in order
}

type Router struct {
	base   string
	routes []Route
}

// New validates routes and roots them at base. An empty base or "/" mounts
// the table at the server root.
func New(base string, routes []Route) (*Router, error) {
	base = strings.TrimRight(base, "/")
	if base != "" && !strings.HasPrefix(base, "/") {
		return nil, fmt.Errorf("%w: base path %q must start with /", ErrInvalidRoute, base)
	}

	paths := make(map[string]bool, len(routes))
	for _, rt := range routes {
		if !strings.HasPrefix(rt.Path, "/") {
			return nil, fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, rt.Path)
		}
		if (rt.Name == "") == (rt.Redirect == "") {
			return nil, fmt.Errorf("%w: %q needs exactly one of name or redirect", ErrInvalidRoute, rt.Path)
		}
		paths[rt.Path] = true
	}
	for _, rt := range routes {
		if rt.Redirect != "" && !paths[rt.Redirect] {
			return nil, fmt.Errorf("%w: %q redirects to unknown path %q", ErrInvalidRoute, rt.Path, rt.Redirect)
		}
	}

	return &Router{base: base, routes: routes}, nil
}

func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Href returns the browser path of a route path.
func (r *Router) Href(path string) string {
	if r.base == "" {
		return path
	}
	if path == "/" {
		return r.base + "/"
	}
	return r.base + path
}

// Resolve matches a browser path against the table, following redirects.
func (r *Router) Resolve(path string) (Resolution, error) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	rel, ok := r.strip(path)
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrNoRoute, path)
	}

	var res Resolution
	for hop := 0; hop <= maxRedirectHops; hop++ {
		rt, ok := r.match(rel)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: %s", ErrNoRoute, path)
		}
		if rt.Redirect == "" {
			res.Path = rt.Path
			res.Name = rt.Name
			return res, nil
		}
		res.Redirects = append(res.Redirects, rt.Path)
		rel = rt.Redirect
	}
	return Resolution{}, fmt.Errorf("%w: %s", ErrRedirectLoop, path)
}

// Register mounts the table on mux. Every named route needs a view.
// Trailing slashes are not matched; mount middleware.StripSlashes on mux
// to accept them.
func (r *Router) Register(mux chi.Router, views map[string]http.Handler) error {
	for _, rt := range r.routes {
		if rt.Name != "" && views[rt.Name] == nil {
			return fmt.Errorf("%w: %q", ErrViewMissing, rt.Name)
		}
	}

	mount := func(sub chi.Router) {
		for _, rt := range r.routes {
			if rt.Redirect != "" {
				sub.Get(rt.Path, http.RedirectHandler(r.Href(rt.Redirect), http.StatusFound).ServeHTTP)
				continue
			}
			sub.Handle(rt.Path, views[rt.Name])
		}
	}

	if r.base == "" {
		mux.Group(mount)
		return nil
	}
	mux.Route(r.base, mount)
	return nil
}

func (r *Router) strip(path string) (string, bool) {
	if path == "" {
		path = "/"
	}
	if r.base != "" {
		if path != r.base && !strings.HasPrefix(path, r.base+"/") {
			return "", false
		}
		path = strings.TrimPrefix(path, r.base)
	}
	if path == "" {
		return "/", true
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path, true
}

func (r *Router) match(path string) (Route, bool) {
	for _, rt := range r.routes {
		if rt.Path == path {
			return rt, true
		}
	}
	return Route{}, false
}
