// Package session keeps one form controller per page session. Sessions expire
// after a period without reads; expiry, deletion and shutdown all close the
// controller, which cancels its in-flight lookup.
package session

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"carpark-finder/internal/form"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// Factory builds the controller for a new session.
type Factory func() *form.Controller

// Registry maps session IDs to controllers.
type Registry struct {
	store   *cache.Cache
	ttl     time.Duration
	factory Factory
}

// NewRegistry creates a registry whose sessions live for ttl after their last use.
func NewRegistry(ttl time.Duration, factory Factory) *Registry {
	store := cache.New(ttl, cleanupInterval(ttl))
	store.OnEvicted(func(id string, v interface{}) {
		if ctrl, ok := v.(*form.Controller); ok {
			ctrl.Close()
		}
		log.Printf("session %s closed", id)
	})

	return &Registry{
		store:   store,
		ttl:     ttl,
		factory: factory,
	}
}

func cleanupInterval(ttl time.Duration) time.Duration {
	interval := ttl / 2
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}
	return interval
}

// Create starts a new session and returns its ID and controller.
func (r *Registry) Create() (string, *form.Controller) {
	id := uuid.New().String()
	ctrl := r.factory()
	r.store.Set(id, ctrl, r.ttl)
	return id, ctrl
}

// Get returns the controller for id and extends the session's lifetime.
func (r *Registry) Get(id string) (*form.Controller, error) {
	v, found := r.store.Get(id)
	if !found {
		return nil, ErrNotFound
	}
	ctrl := v.(*form.Controller)
	if err := r.touch(id, ctrl); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// touch extends the lifetime of a session that is still registered. A session
// deleted or expired since it was read stays gone.
func (r *Registry) touch(id string, ctrl *form.Controller) error {
	if err := r.store.Replace(id, ctrl, r.ttl); err != nil {
		return ErrNotFound
	}
	return nil
}

// Delete ends a session.
func (r *Registry) Delete(id string) error {
	if _, found := r.store.Get(id); !found {
		return ErrNotFound
	}
	r.store.Delete(id)
	return nil
}

// Len reports the number of live sessions. Expired sessions the janitor has
// not yet collected are not counted.
func (r *Registry) Len() int {
	return len(r.store.Items())
}

// Close ends every session.
func (r *Registry) Close() {
	for id := range r.store.Items() {
		r.store.Delete(id)
	}
}
