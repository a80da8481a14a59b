package route

import (
	"errors"
	"fmt"
	"log"
)

// ErrUnknownRoute is returned for paths outside the route table
var ErrUnknownRoute = errors.New("unknown route")

// ChangeFunc observes a page change
type ChangeFunc func(from, to Page)

// Router tracks the current page and its history
//
// Architecture:
//   - Single-threaded, the host calls it from its event goroutine
//   - Listeners run synchronously in registration order
//   - A listener may navigate again; the nested change is applied after the
//     current dispatch completes
type Router struct {
	current   Page
	history   []Page
	listeners []ChangeFunc

	dispatching bool
	queued      []string
}

// NewRouter starts at path, falling back to Home
func NewRouter(path string) *Router {
	p, ok := Lookup(path)
	if !ok {
		p, _ = Lookup(Home)
	}
	return &Router{current: p}
}

// OnChange registers a listener
func (r *Router) OnChange(fn ChangeFunc) {
	r.listeners = append(r.listeners, fn)
}

// Current returns the current page
func (r *Router) Current() Page {
	return r.current
}

// Depth returns the number of pages behind the current one
func (r *Router) Depth() int {
	return len(r.history)
}

// Go moves to path; navigating to the current page is a no-op
func (r *Router) Go(path string) error {
	if _, ok := Lookup(path); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}
	if r.dispatching {
		r.queued = append(r.queued, path)
		return nil
	}
	r.apply(path, true)
	for len(r.queued) > 0 {
		next := r.queued[0]
		r.queued = r.queued[1:]
		r.apply(next, true)
	}
	return nil
}

// Navigate is Go without an error result, unknown paths are logged
func (r *Router) Navigate(path string) {
	if err := r.Go(path); err != nil {
		log.Printf("route: %v", err)
	}
}

// Back returns to the previous page, false when there is none
func (r *Router) Back() bool {
	if len(r.history) == 0 || r.dispatching {
		return false
	}
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.apply(prev.Path, false)
	return true
}

func (r *Router) apply(path string, push bool) {
	to, _ := Lookup(path)
	from := r.current
	if to.Path == from.Path {
		return
	}
	if push {
		r.history = append(r.history, from)
	}
	r.current = to
	log.Printf("route: %s -> %s", from.Path, to.Path)

	r.dispatching = true
	for _, fn := range r.listeners {
		fn(from, to)
	}
	r.dispatching = false
}
