package form

import (
	"context"
	"errors"
	"log"
	"sync"

	"carpark-finder/internal/finder"
	"carpark-finder/internal/model"
)

// Messages shown to the user when a lookup fails.
const (
	UnknownErrorMessage      = "An unknown error occurred."
	ConnectivityErrorMessage = "Could not connect to the server or an unexpected error occurred."
)

var (
	// ErrSubmitInFlight is returned when a submission arrives while another is
	// still pending. No request is dispatched.
	ErrSubmitInFlight = errors.New("a search is already in progress")
	// ErrClosed is returned by submissions after Close.
	ErrClosed = errors.New("form is closed")
)

// Finder looks up the nearest carpark for a postcode.
type Finder interface {
	FindCarpark(ctx context.Context, postcode string) (*model.CarparkResult, error)
}

// Controller owns the view-state of one mounted form.
type Controller struct {
	finder Finder

	mu       sync.Mutex
	postcode string
	state    State
	gen      uint64
	cancel   context.CancelFunc
	closed   bool
	onChange func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers a callback invoked after every state transition.
// It runs outside the controller's lock.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// New creates a controller in the Idle state.
func New(f Finder, opts ...Option) *Controller {
	c := &Controller{
		finder: f,
		state:  Idle{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetPostcode records the current input text.
func (c *Controller) SetPostcode(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.postcode = s
}

// Postcode returns the current input text.
func (c *Controller) Postcode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.postcode
}

// State returns a snapshot of the view-state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether a lookup is outstanding.
func (c *Controller) Loading() bool {
	_, pending := c.State().(Pending)
	return pending
}

// View returns the render model for the current input and state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return NewView(c.postcode, c.state)
}

// Submit validates postcode, performs the lookup and blocks until it settles.
// The settled state is returned. Validation failures, ErrSubmitInFlight and
// ErrClosed leave the state untouched.
func (c *Controller) Submit(ctx context.Context, postcode string) (State, error) {
	reqCtx, gen, err := c.begin(ctx, postcode)
	if err != nil {
		return c.State(), err
	}
	return c.run(reqCtx, gen, postcode), nil
}

// SubmitAsync validates postcode and enters Pending before returning; the
// lookup settles in the background. ctx bounds the lookup, not the call.
func (c *Controller) SubmitAsync(ctx context.Context, postcode string) error {
	reqCtx, gen, err := c.begin(ctx, postcode)
	if err != nil {
		return err
	}
	go c.run(reqCtx, gen, postcode)
	return nil
}

// Close tears the form down: any in-flight lookup is cancelled and its
// outcome discarded. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = Idle{}
	c.mu.Unlock()

	c.notify(Idle{})
}

// begin moves the form to Pending and hands back the request context and the
// generation that owns it.
func (c *Controller) begin(ctx context.Context, postcode string) (context.Context, uint64, error) {
	if err := ValidatePostcode(postcode); err != nil {
		return nil, 0, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, 0, ErrClosed
	}
	if _, pending := c.state.(Pending); pending {
		c.mu.Unlock()
		return nil, 0, ErrSubmitInFlight
	}

	reqCtx, cancel := context.WithCancel(ctx)
	c.gen++
	c.cancel = cancel
	c.postcode = postcode
	c.state = Pending{Postcode: postcode}
	gen := c.gen
	c.mu.Unlock()

	c.notify(Pending{Postcode: postcode})
	return reqCtx, gen, nil
}

// run performs the lookup for generation gen. The form always leaves Pending
// when run returns, including when the finder panics.
func (c *Controller) run(ctx context.Context, gen uint64, postcode string) (next State) {
	next = Failed{Message: ConnectivityErrorMessage}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("carpark lookup for %q panicked: %v", postcode, r)
			next = Failed{Message: ConnectivityErrorMessage}
		}
		next = c.settle(gen, next)
	}()

	result, err := c.finder.FindCarpark(ctx, postcode)
	next = outcome(postcode, result, err)
	return next
}

// settle applies next unless gen has been superseded, and returns the state
// the form ends up in.
func (c *Controller) settle(gen uint64, next State) State {
	c.mu.Lock()
	if gen != c.gen {
		current := c.state
		c.mu.Unlock()
		return current
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = next
	c.mu.Unlock()

	c.notify(next)
	return next
}

func (c *Controller) notify(s State) {
	if c.onChange != nil {
		c.onChange(s)
	}
}

// outcome maps a lookup result onto the two display branches.
func outcome(postcode string, result *model.CarparkResult, err error) State {
	if err == nil {
		if result == nil {
			log.Printf("carpark lookup for %q returned no result", postcode)
			return Failed{Message: ConnectivityErrorMessage}
		}
		return Succeeded{Result: *result}
	}

	var backendErr *finder.BackendError
	if errors.As(err, &backendErr) {
		if backendErr.Message != "" {
			return Failed{Message: backendErr.Message}
		}
		return Failed{Message: UnknownErrorMessage}
	}

	log.Printf("carpark lookup for %q failed: %v", postcode, err)
	return Failed{Message: ConnectivityErrorMessage}
}
