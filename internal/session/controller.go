package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Design-Arena-Gens/darklock/internal/catalog"
	"github.com/Design-Arena-Gens/darklock/internal/logging"
	"github.com/Design-Arena-Gens/darklock/internal/sequencer"
)

// Subscription errors.
var (
	ErrSubscriberExists   = errors.New("subscriber id already registered")
	ErrSubscriberNotFound = errors.New("subscriber id not registered")
)

// Change describes a single session state transition.
type Change struct {
	Previous  State
	Current   State
	Timestamp time.Time
}

// Subscriber receives session state changes.
type Subscriber interface {
	OnSessionChange(change Change)
}

type subscriberFunc func(Change)

func (f subscriberFunc) OnSessionChange(change Change) { f(change) }

// Controller mediates all user intents against the session state and routes
// sequencer callbacks back into it. It is the single writer of State.
//
// notifyMu serializes each transition with the delivery of its change, so
// subscribers observe changes in exactly the order the transitions happened.
// It is never held while calling into the sequencer.
type Controller struct {
	catalog *catalog.Catalog
	script  []catalog.Beat
	seq     *sequencer.Sequencer
	logger  zerolog.Logger

	notifyMu sync.Mutex
	mu       sync.Mutex
	state    State
	subs     map[string]Subscriber
}

// NewController creates a controller over a validated catalog and narration
// script. The session starts at rest: idle, light preview, beat zero.
func NewController(cat *catalog.Catalog, script []catalog.Beat) *Controller {
	c := &Controller{
		catalog: cat,
		script:  script,
		state:   Initial(),
		subs:    make(map[string]Subscriber),
		logger: logging.Component("session").With().
			Str("session_id", uuid.NewString()).Logger(),
	}
	c.seq = sequencer.New(cat, sequencer.Callbacks{
		OnStep:     c.onSequenceStep,
		OnComplete: c.onSequenceComplete,
	})
	return c
}

// State returns a snapshot of the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Catalog returns the step catalog this session plays.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Script returns the narration script.
func (c *Controller) Script() []catalog.Beat {
	return c.script
}

// Subscribe registers a subscriber under a unique id.
func (c *Controller) Subscribe(id string, sub Subscriber) error {
	if sub == nil {
		return errors.New("subscriber is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.subs[id]; exists {
		return ErrSubscriberExists
	}
	c.subs[id] = sub
	return nil
}

// SubscribeFunc registers a plain function as a subscriber.
func (c *Controller) SubscribeFunc(id string, fn func(Change)) error {
	if fn == nil {
		return errors.New("subscriber function is required")
	}
	return c.Subscribe(id, subscriberFunc(fn))
}

// Unsubscribe removes a subscriber by id.
func (c *Controller) Unsubscribe(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.subs[id]; !exists {
		return ErrSubscriberNotFound
	}
	delete(c.subs, id)
	return nil
}

// StartUnlock begins a new unlock run. Ignored while a run is in progress.
// Starting from Complete supersedes the finished run with a fresh token.
func (c *Controller) StartUnlock() {
	c.notifyMu.Lock()
	c.mu.Lock()
	next, ok := StartUnlock(c.state)
	if !ok {
		c.mu.Unlock()
		c.notifyMu.Unlock()
		c.logger.Debug().Msg("start ignored, run already in progress")
		return
	}
	prev := c.state
	c.state = next
	token := next.RunToken
	c.mu.Unlock()
	c.dispatch(prev, next)
	c.notifyMu.Unlock()

	c.logger.Info().Uint64("token", token).Int("steps", c.catalog.Len()).Msg("unlock run started")
	c.seq.Start(token)
}

// ResetUnlock cancels any in-flight run and returns the session to rest.
func (c *Controller) ResetUnlock() {
	c.notifyMu.Lock()
	c.mu.Lock()
	prev := c.state
	token := prev.RunToken
	c.state = ResetUnlock(prev)
	next := c.state
	c.mu.Unlock()
	c.dispatch(prev, next)
	c.notifyMu.Unlock()

	c.seq.Cancel(token)
	c.logger.Info().Uint64("token", token).Msg("session reset")
}

// TogglePreview flips the device preview in any phase.
func (c *Controller) TogglePreview() {
	c.apply(TogglePreview)
}

// NextBeat advances the narration, wrapping at the end of the script.
func (c *Controller) NextBeat() {
	c.apply(func(s State) State { return NextBeat(s, len(c.script)) })
}

// PreviousBeat rewinds the narration, wrapping at the start of the script.
func (c *Controller) PreviousBeat() {
	c.apply(func(s State) State { return PreviousBeat(s, len(c.script)) })
}

// Close cancels pending timers and drops all subscribers. Taking notifyMu
// waits out any in-flight delivery, so no change is observable after Close
// returns.
func (c *Controller) Close() {
	c.seq.Shutdown()

	c.notifyMu.Lock()
	c.mu.Lock()
	c.subs = make(map[string]Subscriber)
	c.mu.Unlock()
	c.notifyMu.Unlock()
}

func (c *Controller) apply(fn func(State) State) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	prev := c.state
	next := fn(prev)
	if next == prev {
		c.mu.Unlock()
		return
	}
	c.state = next
	c.mu.Unlock()
	c.dispatch(prev, next)
}

// onSequenceStep handles sequencer step callbacks. Callbacks carrying a
// stale token, or arriving outside a running phase, are dropped.
func (c *Controller) onSequenceStep(token uint64, index, progress int) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if token != c.state.RunToken || c.state.Phase != PhaseRunning {
		c.mu.Unlock()
		c.logger.Debug().Uint64("token", token).Int("index", index).Msg("dropping stale step callback")
		return
	}
	prev := c.state
	c.state = ApplyStep(prev, index, progress, len(c.script))
	next := c.state
	c.mu.Unlock()

	c.logger.Debug().Uint64("token", token).Int("index", index).Int("progress", progress).Msg("step entered")
	c.dispatch(prev, next)
}

// onSequenceComplete handles the sequencer completion callback, subject to
// the same staleness guard as step callbacks.
func (c *Controller) onSequenceComplete(token uint64) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if token != c.state.RunToken || c.state.Phase != PhaseRunning {
		c.mu.Unlock()
		c.logger.Debug().Uint64("token", token).Msg("dropping stale completion callback")
		return
	}
	prev := c.state
	c.state = ApplyComplete(prev, len(c.script))
	next := c.state
	c.mu.Unlock()

	c.logger.Info().Uint64("token", token).Msg("dark mode unlocked")
	c.dispatch(prev, next)
}

// dispatch delivers a change to the current subscribers. Callers hold
// notifyMu, so delivery order matches transition order.
func (c *Controller) dispatch(prev, next State) {
	c.mu.Lock()
	subs := make([]Subscriber, 0, len(c.subs))
	for _, sub := range c.subs {
		subs = append(subs, sub)
	}
	c.mu.Unlock()

	change := Change{Previous: prev, Current: next, Timestamp: time.Now().UTC()}
	for _, sub := range subs {
		sub.OnSessionChange(change)
	}
}
