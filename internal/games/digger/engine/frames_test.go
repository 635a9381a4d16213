package engine

import "testing"

func TestFrameIndex(t *testing.T) {
	if got := FrameIndex(0); got != 0 {
		t.Errorf("Expected frame 0 at start, got %d", got)
	}
	if got := FrameIndex(1.0); got != FramesPerSecond {
		t.Errorf("Expected frame %d after one second, got %d", FramesPerSecond, got)
	}
	if got := FrameIndex(-3); got != 0 {
		t.Errorf("Expected frame 0 for a negative clock, got %d", got)
	}
}

func TestFrameForCycles(t *testing.T) {
	a := FrameFor(KindPlayer, AnimRunning, 0)
	b := FrameFor(KindPlayer, AnimRunning, 1)
	if a == b {
		t.Error("Expected running frames to differ")
	}
	if got := FrameFor(KindPlayer, AnimRunning, 2); got != a {
		t.Errorf("Expected frame index to wrap, got %v", got)
	}
	if got := FrameFor(KindPlayer, AnimRunning, -1); got != b {
		t.Errorf("Expected negative index to mirror, got %v", got)
	}
}

func TestFrameForEveryState(t *testing.T) {
	for _, kind := range []Kind{KindPlayer, KindGuard} {
		for anim := AnimStanding; anim <= AnimDigging; anim++ {
			f := FrameFor(kind, anim, 0)
			if f == fallbackFrame {
				t.Errorf("Kind %d anim %s has no frame", kind, anim)
			}
		}
	}

	// Guards never dig; they fall back to standing.
	if FrameFor(KindGuard, AnimDigging, 0) != FrameFor(KindGuard, AnimStanding, 0) {
		t.Error("Expected digging guard to use the standing frame")
	}
}

func TestGuardFramePalette(t *testing.T) {
	g := Guard{}
	g.Anim = AnimRunning
	if got := GuardFrame(&g, 0).Palette; got != PaletteGuard {
		t.Errorf("Expected guard palette, got %d", got)
	}

	g.CarriesGold = true
	f := GuardFrame(&g, 0)
	if f.Palette != PaletteGuardGold {
		t.Errorf("Expected gold palette, got %d", f.Palette)
	}
	if f.Glyphs != FrameFor(KindGuard, AnimRunning, 0).Glyphs {
		t.Error("Expected carrying to change only the palette")
	}
}
