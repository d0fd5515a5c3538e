package sprite

import (
	"reflect"
	"testing"
	"time"
)

func TestAnimatePlaysOnceAndCompletes(t *testing.T) {
	e, surf, loop := newBoundEntity(t, 5, 3, WithFrames(5))
	surf.resetFrames()

	completed := 0
	err := e.Animate(AnimateConfig{
		Mode:       ModeNone,
		From:       1,
		To:         5,
		Interval:   tick,
		OnComplete: func() { completed++ },
	})
	if err != nil {
		t.Fatalf("Animate failed: %v", err)
	}

	loop.Advance(10 * tick)

	expected := []int{1, 2, 3, 4, 5}
	if got := surf.frames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("rendered frames = %v, expected %v", got, expected)
	}
	if completed != 1 {
		t.Errorf("OnComplete called %d times, expected 1", completed)
	}
	if e.Animating() {
		t.Error("animation should have stopped")
	}
	if e.Frame() != 5 {
		t.Errorf("Frame() = %d, expected 5", e.Frame())
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", loop.Pending())
	}
}

func TestAnimateRendersFromImmediately(t *testing.T) {
	e, surf, _ := newBoundEntity(t, 5, 3, WithFrames(5))
	surf.resetFrames()

	if err := e.Animate(AnimateConfig{From: 3, To: 5, Interval: tick}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}

	if got := surf.frames(); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("rendered frames = %v, expected [3]", got)
	}
	if surf.offsets[0] != -10 {
		t.Errorf("background offset = %d, expected -10", surf.offsets[0])
	}
}

func TestAnimateLoopRestartsAtFrom(t *testing.T) {
	e, surf, loop := newBoundEntity(t, 3, 3, WithFrames(3))
	surf.resetFrames()

	completed := false
	err := e.Animate(AnimateConfig{
		Mode:       ModeLoop,
		From:       1,
		To:         3,
		Interval:   tick,
		OnComplete: func() { completed = true },
	})
	if err != nil {
		t.Fatalf("Animate failed: %v", err)
	}

	loop.Advance(6 * tick)

	expected := []int{1, 2, 3, 2, 3, 2, 3}
	if got := surf.frames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("rendered frames = %v, expected %v", got, expected)
	}
	if completed {
		t.Error("loop animation should never complete")
	}
	if !e.Animating() {
		t.Error("loop animation should still be running")
	}
}

func TestAnimateLoopFrameIndexAfterWrap(t *testing.T) {
	e, surf, loop := newBoundEntity(t, 3, 3, WithFrames(3))
	if err := e.Animate(AnimateConfig{Mode: ModeLoop, From: 1, To: 3, Interval: tick}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}

	loop.Advance(2 * tick)
	shown := surf.frames()
	if last := shown[len(shown)-1]; last != 3 {
		t.Errorf("shown frame = %d, expected 3", last)
	}
	if e.Frame() != 1 {
		t.Errorf("Frame() = %d, expected From after the wrap", e.Frame())
	}

	loop.Advance(tick)
	if e.Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2", e.Frame())
	}
}

func TestAnimateCircleReverses(t *testing.T) {
	e, surf, loop := newBoundEntity(t, 3, 3, WithFrames(3))
	surf.resetFrames()

	completed := false
	err := e.Animate(AnimateConfig{
		Mode:       ModeCircle,
		From:       1,
		To:         3,
		Interval:   tick,
		OnComplete: func() { completed = true },
	})
	if err != nil {
		t.Fatalf("Animate failed: %v", err)
	}

	loop.Advance(8 * tick)

	expected := []int{1, 2, 3, 2, 1, 2, 3, 2, 1}
	if got := surf.frames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("rendered frames = %v, expected %v", got, expected)
	}
	if completed {
		t.Error("circle animation should never complete")
	}
	if loop.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", loop.Pending())
	}
}

func TestAnimateBackwardCircle(t *testing.T) {
	e, surf, loop := newBoundEntity(t, 3, 3, WithFrames(5))
	surf.resetFrames()

	if err := e.Animate(AnimateConfig{Mode: ModeCircle, From: 4, To: 2, Interval: tick}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	loop.Advance(5 * tick)

	expected := []int{4, 3, 2, 3, 4, 3}
	if got := surf.frames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("rendered frames = %v, expected %v", got, expected)
	}
}

func TestAnimateBackwardOnce(t *testing.T) {
	e, surf, loop := newBoundEntity(t, 3, 3, WithFrames(5), WithStartFrame(5))
	surf.resetFrames()

	done := false
	err := e.Animate(AnimateConfig{From: 5, To: 1, Interval: tick, OnComplete: func() { done = true }})
	if err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	loop.Advance(4 * tick)

	expected := []int{5, 4, 3, 2, 1}
	if got := surf.frames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("rendered frames = %v, expected %v", got, expected)
	}
	if !done {
		t.Error("OnComplete not called")
	}
}

func TestAnimateDefaultsFromCurrentFrame(t *testing.T) {
	e, surf, loop := newBoundEntity(t, 3, 3, WithFrames(5))
	if err := e.ShowFrame(3); err != nil {
		t.Fatalf("ShowFrame failed: %v", err)
	}
	surf.resetFrames()

	if err := e.Animate(AnimateConfig{Interval: tick}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	loop.Advance(5 * tick)

	expected := []int{3, 4, 5}
	if got := surf.frames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("rendered frames = %v, expected %v", got, expected)
	}
}

func TestAnimateWhileRunningStartsFromStartFrame(t *testing.T) {
	e, _, loop := newBoundEntity(t, 3, 3, WithFrames(5), WithStartFrame(2))

	if err := e.Animate(AnimateConfig{Mode: ModeLoop, From: 3, To: 5, Interval: tick}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	loop.Advance(tick)
	if e.Frame() != 4 {
		t.Fatalf("Frame() = %d, expected 4", e.Frame())
	}

	if err := e.Animate(AnimateConfig{To: 5, Interval: tick}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	if e.Frame() != 2 {
		t.Errorf("Frame() = %d, expected start frame 2", e.Frame())
	}
}

func TestAnimateReplacesRunningTimer(t *testing.T) {
	e, _, loop := newBoundEntity(t, 3, 3, WithFrames(5))

	for i := 0; i < 3; i++ {
		if err := e.Animate(AnimateConfig{Mode: ModeLoop, From: 1, To: 5, Interval: tick}); err != nil {
			t.Fatalf("Animate failed: %v", err)
		}
	}
	if loop.Pending() != 1 {
		t.Errorf("Pending() = %d, expected exactly 1 live timer", loop.Pending())
	}

	loop.Advance(tick)
	if e.Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2 after one tick", e.Frame())
	}
}

func TestAnimateIntervalOverride(t *testing.T) {
	e, surf, loop := newBoundEntity(t, 3, 3, WithFrames(5), WithInterval(10*time.Millisecond))
	surf.resetFrames()

	if err := e.Animate(AnimateConfig{From: 1, To: 5, Interval: 50 * time.Millisecond}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}

	loop.Advance(49 * time.Millisecond)
	if e.Frame() != 1 {
		t.Errorf("Frame() = %d after 49ms, expected 1", e.Frame())
	}
	loop.Advance(time.Millisecond)
	if e.Frame() != 2 {
		t.Errorf("Frame() = %d after 50ms, expected 2", e.Frame())
	}
}

func TestAnimateDefaultInterval(t *testing.T) {
	e, _, loop := newBoundEntity(t, 3, 3, WithFrames(5), WithInterval(30*time.Millisecond))

	if err := e.Animate(AnimateConfig{From: 1, To: 5}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	loop.Advance(60 * time.Millisecond)
	if e.Frame() != 3 {
		t.Errorf("Frame() = %d, expected 3", e.Frame())
	}
}

func TestAnimateCompleteCanChain(t *testing.T) {
	e, surf, loop := newBoundEntity(t, 3, 3, WithFrames(4))
	surf.resetFrames()

	var chain func()
	chain = func() {
		if err := e.Animate(AnimateConfig{From: 4, To: 1, Interval: tick}); err != nil {
			t.Errorf("chained Animate failed: %v", err)
		}
	}
	if err := e.Animate(AnimateConfig{From: 1, To: 4, Interval: tick, OnComplete: chain}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	loop.Advance(10 * tick)

	expected := []int{1, 2, 3, 4, 4, 3, 2, 1}
	if got := surf.frames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("rendered frames = %v, expected %v", got, expected)
	}
	if e.Animating() {
		t.Error("chained animation should have finished")
	}
}

func TestStopAnimationResetsToStartFrame(t *testing.T) {
	e, _, loop := newBoundEntity(t, 3, 3, WithFrames(5), WithStartFrame(2))

	completed := false
	err := e.Animate(AnimateConfig{From: 3, To: 5, Interval: tick, OnComplete: func() { completed = true }})
	if err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	loop.Advance(tick)

	if err := e.StopAnimation(); err != nil {
		t.Fatalf("StopAnimation failed: %v", err)
	}
	loop.Advance(10 * tick)

	if e.Frame() != 2 {
		t.Errorf("Frame() = %d, expected start frame 2", e.Frame())
	}
	if completed {
		t.Error("stopped animation should not complete")
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", loop.Pending())
	}
}

func TestStopAnimationIdleKeepsFrame(t *testing.T) {
	e, _, _ := newBoundEntity(t, 3, 3, WithFrames(5))
	if err := e.ShowFrame(4); err != nil {
		t.Fatalf("ShowFrame failed: %v", err)
	}
	if err := e.StopAnimation(); err != nil {
		t.Fatalf("StopAnimation failed: %v", err)
	}
	if e.Frame() != 4 {
		t.Errorf("Frame() = %d, expected 4", e.Frame())
	}
}

func TestAnimateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   AnimateConfig
		field string
	}{
		{"from past sheet", AnimateConfig{From: 6, To: 2}, "from"},
		{"negative from", AnimateConfig{From: -1, To: 2}, "from"},
		{"to past sheet", AnimateConfig{From: 1, To: 9}, "to"},
		{"from equals to", AnimateConfig{From: 3, To: 3}, "to"},
		{"negative interval", AnimateConfig{From: 1, To: 5, Interval: -tick}, "interval"},
		{"unknown mode", AnimateConfig{Mode: Mode(7), From: 1, To: 5}, "mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, surf, loop := newBoundEntity(t, 3, 3, WithFrames(5))
			if err := e.Animate(AnimateConfig{Mode: ModeLoop, From: 2, To: 4, Interval: tick}); err != nil {
				t.Fatalf("Animate failed: %v", err)
			}
			surf.resetFrames()

			assertConfigError(t, e.Animate(tt.cfg), tt.field)

			if !e.Animating() || loop.Pending() != 1 {
				t.Error("a rejected Animate must leave the running animation alone")
			}
			if e.Frame() != 2 || len(surf.offsets) != 0 {
				t.Errorf("a rejected Animate must not render, frame=%d renders=%d", e.Frame(), len(surf.offsets))
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeNone, false},
		{"none", ModeNone, false},
		{"loop", ModeLoop, false},
		{"circle", ModeCircle, false},
		{"bounce", ModeNone, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, expected %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("Mode.String() = %q, expected %q", got.String(), tt.in)
		}
	}
}
