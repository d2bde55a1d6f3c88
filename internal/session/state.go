// Package session owns the unlock demo session state machine.
package session

import "github.com/Design-Arena-Gens/darklock/internal/sequencer"

// Phase is the top-level state of a session.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhaseComplete Phase = "complete"
)

// PreviewMode selects which content set the device preview renders.
type PreviewMode string

const (
	PreviewLight PreviewMode = "light"
	PreviewDark  PreviewMode = "dark"
)

// State is the full observable session state. Transitions take a State and
// return a new one; nothing here mutates in place, so the machine is
// testable without a rendering surface.
type State struct {
	Phase     Phase
	Preview   PreviewMode
	Beat      int
	RunToken  uint64
	StepIndex int // -1 until the first step of a run begins
	Progress  int // 0..100
}

// Initial returns the rest state of a fresh session.
func Initial() State {
	return State{
		Phase:     PhaseIdle,
		Preview:   PreviewLight,
		StepIndex: -1,
	}
}

// StartUnlock begins a new run: playback position cleared, preview back to
// light, narration rewound, and a fresh run token minted. It reports false,
// unchanged, when a run is already in progress.
func StartUnlock(s State) (State, bool) {
	if s.Phase == PhaseRunning {
		return s, false
	}
	s.Phase = PhaseRunning
	s.Preview = PreviewLight
	s.Beat = 0
	s.RunToken++
	s.StepIndex = -1
	s.Progress = 0
	return s, true
}

// ResetUnlock returns the session to its rest state. The run token is
// preserved so timers from the cancelled run stay distinguishable.
func ResetUnlock(s State) State {
	token := s.RunToken
	s = Initial()
	s.RunToken = token
	return s
}

// TogglePreview flips the device preview between light and dark. Phase and
// playback position are untouched.
func TogglePreview(s State) State {
	if s.Preview == PreviewDark {
		s.Preview = PreviewLight
	} else {
		s.Preview = PreviewDark
	}
	return s
}

// ApplyStep records the sequencer entering step index with the given coarse
// progress. Narration tracks the playing step, clamped to the script length.
// Outside of a running phase the transition is a no-op.
func ApplyStep(s State, index, progress, beats int) State {
	if s.Phase != PhaseRunning {
		return s
	}
	s.StepIndex = index
	s.Progress = progress
	s.Beat = clampBeat(index, beats)
	return s
}

// ApplyComplete seals a finished run: the preview is forced dark and the
// narration jumps to its final beat.
func ApplyComplete(s State, beats int) State {
	if s.Phase != PhaseRunning {
		return s
	}
	s.Phase = PhaseComplete
	s.Preview = PreviewDark
	s.Progress = sequencer.CompleteProgress
	if beats > 0 {
		s.Beat = beats - 1
	}
	return s
}

// NextBeat advances the narration beat, wrapping past the last beat.
func NextBeat(s State, beats int) State {
	if beats <= 0 {
		return s
	}
	s.Beat = (s.Beat + 1) % beats
	return s
}

// PreviousBeat rewinds the narration beat, wrapping before the first beat.
func PreviousBeat(s State, beats int) State {
	if beats <= 0 {
		return s
	}
	s.Beat = (s.Beat - 1 + beats) % beats
	return s
}

func clampBeat(index, beats int) int {
	if beats <= 0 || index < 0 {
		return 0
	}
	if index >= beats {
		return beats - 1
	}
	return index
}
