package session

import "testing"

func TestInitial(t *testing.T) {
	s := Initial()

	if s.Phase != PhaseIdle {
		t.Fatalf("expected idle, got %s", s.Phase)
	}
	if s.Preview != PreviewLight {
		t.Fatalf("expected light preview, got %s", s.Preview)
	}
	if s.StepIndex != -1 {
		t.Fatalf("expected step index -1, got %d", s.StepIndex)
	}
	if s.Beat != 0 || s.Progress != 0 || s.RunToken != 0 {
		t.Fatalf("expected zeroed beat/progress/token, got %+v", s)
	}
}

func TestStartUnlock(t *testing.T) {
	s, ok := StartUnlock(Initial())
	if !ok {
		t.Fatal("expected start from idle to succeed")
	}
	if s.Phase != PhaseRunning || s.RunToken != 1 {
		t.Fatalf("unexpected state after start: %+v", s)
	}

	// A second start while running is refused.
	if _, ok := StartUnlock(s); ok {
		t.Fatal("expected start while running to be refused")
	}

	// Restarting after completion mints a new token and rewinds playback.
	s.Phase = PhaseComplete
	s.Preview = PreviewDark
	s.StepIndex = 4
	s.Progress = 100
	s.Beat = 5

	s, ok = StartUnlock(s)
	if !ok {
		t.Fatal("expected start from complete to succeed")
	}
	if s.RunToken != 2 {
		t.Fatalf("expected token 2, got %d", s.RunToken)
	}
	if s.Preview != PreviewLight || s.StepIndex != -1 || s.Progress != 0 || s.Beat != 0 {
		t.Fatalf("playback not rewound: %+v", s)
	}
}

func TestResetUnlockPreservesToken(t *testing.T) {
	s, _ := StartUnlock(Initial())
	s = ApplyStep(s, 2, 45, 6)

	s = ResetUnlock(s)

	want := Initial()
	want.RunToken = 1
	if s != want {
		t.Fatalf("expected %+v, got %+v", want, s)
	}
}

func TestTogglePreview(t *testing.T) {
	s := Initial()

	s = TogglePreview(s)
	if s.Preview != PreviewDark {
		t.Fatalf("expected dark, got %s", s.Preview)
	}
	s = TogglePreview(s)
	if s.Preview != PreviewLight {
		t.Fatalf("expected light, got %s", s.Preview)
	}

	// Toggling never touches phase or playback position.
	running, _ := StartUnlock(Initial())
	running = ApplyStep(running, 1, 30, 6)
	toggled := TogglePreview(running)
	if toggled.Phase != running.Phase || toggled.StepIndex != running.StepIndex || toggled.Progress != running.Progress {
		t.Fatalf("toggle altered playback: %+v", toggled)
	}
}

func TestApplyStep(t *testing.T) {
	s, _ := StartUnlock(Initial())

	s = ApplyStep(s, 0, 15, 6)
	if s.StepIndex != 0 || s.Progress != 15 || s.Beat != 0 {
		t.Fatalf("unexpected state: %+v", s)
	}

	// Narration is clamped to the script length.
	s = ApplyStep(s, 9, 75, 6)
	if s.Beat != 5 {
		t.Fatalf("expected clamped beat 5, got %d", s.Beat)
	}

	// Outside of a running phase the transition is a no-op.
	idle := Initial()
	if got := ApplyStep(idle, 1, 30, 6); got != idle {
		t.Fatalf("expected no-op, got %+v", got)
	}
}

func TestApplyComplete(t *testing.T) {
	s, _ := StartUnlock(Initial())
	s = ApplyStep(s, 4, 75, 6)

	s = ApplyComplete(s, 6)
	if s.Phase != PhaseComplete {
		t.Fatalf("expected complete, got %s", s.Phase)
	}
	if s.Preview != PreviewDark {
		t.Fatal("completion must force the dark preview")
	}
	if s.Progress != 100 {
		t.Fatalf("expected progress 100, got %d", s.Progress)
	}
	if s.Beat != 5 {
		t.Fatalf("expected final beat, got %d", s.Beat)
	}

	// Completing a non-running session changes nothing.
	idle := Initial()
	if got := ApplyComplete(idle, 6); got != idle {
		t.Fatalf("expected no-op, got %+v", got)
	}
}

func TestBeatNavigationWraps(t *testing.T) {
	const beats = 6

	s := Initial()
	s = PreviousBeat(s, beats)
	if s.Beat != beats-1 {
		t.Fatalf("expected wrap to %d, got %d", beats-1, s.Beat)
	}
	s = NextBeat(s, beats)
	if s.Beat != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.Beat)
	}

	for i := 1; i <= beats; i++ {
		s = NextBeat(s, beats)
		if s.Beat != i%beats {
			t.Fatalf("step %d: expected beat %d, got %d", i, i%beats, s.Beat)
		}
	}

	// Empty scripts are inert.
	if got := NextBeat(Initial(), 0); got != Initial() {
		t.Fatalf("expected no-op on empty script, got %+v", got)
	}
}
