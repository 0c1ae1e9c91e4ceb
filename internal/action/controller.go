package action

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Phase is the lifecycle position of a controller.
type Phase int

const (
	Idle Phase = iota
	Pending
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the render-ready snapshot. Result is set only when Succeeded and
// ErrorMessage only when Failed.
type State[T any] struct {
	Label        string
	Phase        Phase
	Result       *T
	ErrorMessage string
}

// Request performs the underlying call.
type Request[T any] func(ctx context.Context) (T, error)

// Done carries a finished request back to the controller that issued it.
type Done[T any] struct {
	Controller uuid.UUID
	Generation uint64
	Label      string
	Value      T
	Err        error // underlying cause; never copied into State
}

// Controller runs one request at a time and tracks its lifecycle. Each Start
// bumps the generation; a completion whose generation is no longer current
// is dropped, so the most recent Start always wins regardless of arrival
// order.
//
// A Controller is driven from a single event loop (a Bubble Tea Update) and
// is not safe for concurrent use.
type Controller[T any] struct {
	id      uuid.UUID
	failure string
	finish  func(T) T
	gen     uint64
	state   State[T]
}

// New returns an idle controller. failure is the fixed message shown for
// any failed request; finish, when non-nil, normalizes successful values.
func New[T any](failure string, finish func(T) T) *Controller[T] {
	return &Controller[T]{
		id:      uuid.New(),
		failure: failure,
		finish:  finish,
	}
}

// ID identifies the controller in Done messages.
func (c *Controller[T]) ID() uuid.UUID {
	return c.id
}

// Generation returns the current generation token.
func (c *Controller[T]) Generation() uint64 {
	return c.gen
}

// State returns the current snapshot.
func (c *Controller[T]) State() State[T] {
	return c.state
}

// Start moves to Pending and returns the command that performs req. The
// command's Done message must be handed back through Apply.
//
// No timeout is added: a request that never returns leaves the controller
// Pending until the next Start or Reset.
func (c *Controller[T]) Start(ctx context.Context, label string, req Request[T]) tea.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	c.gen++
	c.state = State[T]{Label: label, Phase: Pending}

	id, gen := c.id, c.gen
	return func() tea.Msg {
		value, err := run(ctx, req)
		return Done[T]{Controller: id, Generation: gen, Label: label, Value: value, Err: err}
	}
}

// Apply folds a completion into the state. It reports false, leaving the
// state untouched, for completions from another controller or a superseded
// generation.
func (c *Controller[T]) Apply(msg Done[T]) bool {
	if msg.Controller != c.id || msg.Generation != c.gen || c.state.Phase != Pending {
		return false
	}
	if msg.Err != nil {
		c.state = State[T]{Label: c.state.Label, Phase: Failed, ErrorMessage: c.failure}
		return true
	}
	value := msg.Value
	if c.finish != nil {
		value = c.finish(value)
	}
	c.state = State[T]{Label: c.state.Label, Phase: Succeeded, Result: &value}
	return true
}

// Reset discards the state and any interest in the in-flight request. The
// request itself is not aborted.
func (c *Controller[T]) Reset() {
	c.gen++
	c.state = State[T]{}
}

// Await starts req and blocks for its result, for callers without an event
// loop.
func (c *Controller[T]) Await(ctx context.Context, label string, req Request[T]) State[T] {
	cmd := c.Start(ctx, label, req)
	if done, ok := cmd().(Done[T]); ok {
		c.Apply(done)
	}
	return c.State()
}

func run[T any](ctx context.Context, req Request[T]) (value T, err error) {
	if req == nil {
		return value, fmt.Errorf("request is nil")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("request panicked: %v", r)
		}
	}()
	return req(ctx)
}
