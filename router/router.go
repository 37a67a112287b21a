// Package router mounts a declarative route tree onto a http.ServeMux. The
// tree is plain data: each node carries at most one handler per method and a
// mapping of path segment to child node, where a segment may be a {wildcard}
// captured as a positional string parameter. The tree is walked once at
// startup; there is no runtime registration.
package router

import "net/http"

type Route struct {
	Get    http.HandlerFunc
	Post   http.HandlerFunc
	Put    http.HandlerFunc
	Delete http.HandlerFunc

	Children map[string]*Route
}

func Build(root *Route) *http.ServeMux {
	mux := http.NewServeMux()
	mount(mux, "", root)
	return mux
}

func mount(mux *http.ServeMux, prefix string, r *Route) {
	pattern := prefix
	if pattern == "" {
		// "/" alone would match the whole subtree; {$} pins it to the root.
		pattern = "/{$}"
	}
	register(mux, http.MethodGet, pattern, r.Get)
	register(mux, http.MethodPost, pattern, r.Post)
	register(mux, http.MethodPut, pattern, r.Put)
	register(mux, http.MethodDelete, pattern, r.Delete)

	for segment, child := range r.Children {
		mount(mux, prefix+"/"+segment, child)
	}
}

func register(mux *http.ServeMux, method, pattern string, h http.HandlerFunc) {
	if h == nil {
		return
	}
	mux.HandleFunc(method+" "+pattern, h)
}
