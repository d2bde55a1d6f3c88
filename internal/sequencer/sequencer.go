// Package sequencer drives timed playback of the unlock step catalog.
package sequencer

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Design-Arena-Gens/darklock/internal/catalog"
	"github.com/Design-Arena-Gens/darklock/internal/logging"
)

// CompleteProgress is the progress value reported once the whole sequence
// has finished.
const CompleteProgress = 100

// progressCeiling is the highest value an intermediate step may reach; the
// top 10% of the bar is reserved for the completion event itself.
const progressCeiling = 90

// ProgressAt returns the coarse progress percentage while step index
// (0-based) of total steps is playing.
func ProgressAt(index, total int) int {
	return int(math.Round(float64(index+1) / float64(total+1) * progressCeiling))
}

// Callbacks receive playback notifications. The token identifies the run a
// notification belongs to; receivers must drop stale tokens.
type Callbacks struct {
	OnStep     func(token uint64, index, progress int)
	OnComplete func(token uint64)
}

type timerHandle interface {
	Stop() bool
}

type timerFactory func(d time.Duration, fn func()) timerHandle

func realTimer(d time.Duration, fn func()) timerHandle {
	return time.AfterFunc(d, fn)
}

// Sequencer plays a step catalog once, front to back, advancing on a single
// cancellable timer. At most one run is active at a time; runs are tagged
// with a caller-supplied token so pending timers from a superseded run can
// never mutate anything.
type Sequencer struct {
	steps     []catalog.Step
	callbacks Callbacks
	newTimer  timerFactory
	logger    zerolog.Logger

	mu    sync.Mutex
	token uint64 // active run token; zero means no run
	next  int    // index of the next step to enter
	timer timerHandle
}

// New creates a sequencer over the catalog's steps.
func New(cat *catalog.Catalog, callbacks Callbacks) *Sequencer {
	return &Sequencer{
		steps:     cat.Steps,
		callbacks: callbacks,
		newTimer:  realTimer,
		logger:    logging.Component("sequencer"),
	}
}

// Start begins playback tagged with token. Any run already in flight is
// cancelled first. Step 0 is entered synchronously; each later step is
// entered when the previous step's full duration has elapsed.
func (s *Sequencer) Start(token uint64) {
	s.mu.Lock()
	s.stopTimerLocked()
	s.token = token
	s.next = 0
	s.mu.Unlock()

	s.logger.Debug().Uint64("token", token).Int("steps", len(s.steps)).Msg("run starting")
	s.advance(token)
}

// Cancel stops the pending delay for token and prevents any further
// advancement or completion for that run. Safe to call when no run is
// active or when the token is stale.
func (s *Sequencer) Cancel(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == 0 || token != s.token {
		return
	}
	s.stopTimerLocked()
	s.token = 0
	s.logger.Debug().Uint64("token", token).Msg("run cancelled")
}

// Shutdown cancels whichever run is active. Used on teardown.
func (s *Sequencer) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.token = 0
}

// Active reports whether a run with the given token is still advancing.
func (s *Sequencer) Active(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token != 0 && token == s.token
}

func (s *Sequencer) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// advance enters the next step of the run identified by token, or completes
// the run when no steps remain. Timer callbacks from cancelled or superseded
// runs fail the token check and return without effect.
//
// The step notification is delivered before the next timer is armed, so a
// slow receiver can never observe step i+1 ahead of step i: the timer that
// leads to step i+1 does not exist until the step i callback has returned.
func (s *Sequencer) advance(token uint64) {
	s.mu.Lock()
	if token == 0 || token != s.token {
		s.mu.Unlock()
		return
	}

	index := s.next
	if index >= len(s.steps) {
		s.token = 0
		s.timer = nil
		s.mu.Unlock()

		s.logger.Debug().Uint64("token", token).Msg("run complete")
		if s.callbacks.OnComplete != nil {
			s.callbacks.OnComplete(token)
		}
		return
	}

	step := s.steps[index]
	s.next = index + 1
	s.mu.Unlock()

	if s.callbacks.OnStep != nil {
		s.callbacks.OnStep(token, index, ProgressAt(index, len(s.steps)))
	}

	// Re-check the token before arming: a Cancel or superseding Start issued
	// while the callback ran must win.
	s.mu.Lock()
	if token != s.token {
		s.mu.Unlock()
		return
	}
	s.timer = s.newTimer(step.Duration(), func() { s.advance(token) })
	s.mu.Unlock()
}
