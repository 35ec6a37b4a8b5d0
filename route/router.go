// Package route carries the navigation signal: the current route identifier
// and an ordered list of subscribers notified when it commits.
package route

import "fmt"

// Well-known routes
const (
	Home       = "/"
	About      = "/about"
	Experience = "/experience"
	Projects   = "/projects"
)

// Order is the Tab cycle order and the numeric key mapping (1-based)
var Order = []string{Home, About, Experience, Projects}

// IsHome reports whether path is the landing route
func IsHome(path string) bool { return path == Home }

// Title returns a display label for path
func Title(path string) string {
	switch path {
	case Home:
		return "Home"
	case About:
		return "About"
	case Experience:
		return "Experience"
	case Projects:
		return "Projects"
	}
	return path
}

// Listener receives committed route changes
type Listener func(from, to string)

// Router holds the requested route
// Commit is called by the page choreographer when navigation is requested, the page mounts later
type Router struct {
	current   string
	history   []string
	listeners []Listener
	known     map[string]bool
}

// NewRouter starts on initial, which must be a known route
func NewRouter(initial string) (*Router, error) {
	r := &Router{known: make(map[string]bool, len(Order))}
	for _, p := range Order {
		r.known[p] = true
	}
	if !r.known[initial] {
		return nil, fmt.Errorf("unknown initial route %q", initial)
	}
	r.current = initial
	r.history = []string{initial}
	return r, nil
}

func (r *Router) Current() string { return r.current }

// Known reports whether path is routable
func (r *Router) Known(path string) bool { return r.known[path] }

// Subscribe appends l; listeners run in subscription order
func (r *Router) Subscribe(l Listener) {
	r.listeners = append(r.listeners, l)
}

// Commit makes path current and notifies listeners, a repeat of the current route is ignored
func (r *Router) Commit(path string) error {
	if !r.known[path] {
		return fmt.Errorf("unknown route %q", path)
	}
	if path == r.current {
		return nil
	}
	from := r.current
	r.current = path
	r.history = append(r.history, path)
	for _, l := range r.listeners {
		l(from, path)
	}
	return nil
}

// History returns committed routes oldest first
func (r *Router) History() []string {
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Next returns the route after current in the Tab cycle
func (r *Router) Next() string {
	for i, p := range Order {
		if p == r.current {
			return Order[(i+1)%len(Order)]
		}
	}
	return Home
}

// ByIndex maps a 1-based key to a route
func ByIndex(n int) (string, bool) {
	if n < 1 || n > len(Order) {
		return "", false
	}
	return Order[n-1], true
}
