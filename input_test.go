package uibridge_test

import (
	"testing"

	"github.com/go-theft-auto/uibridge"
)

// declare runs a no-op window declaration, which triggers input forwarding
// on the first call of a frame.
func declare(ctx *uibridge.Context, id uibridge.WindowID) bool {
	return ctx.Window(id, uibridge.Vec2{X: 10, Y: 10}, uibridge.Vec2{X: 100, Y: 100}, nil, nil)
}

func TestInputForwardedOncePerFrame(t *testing.T) {
	ctx, ui, host, _ := newTestContext(t)

	host.mousePos = uibridge.Vec2{X: 5, Y: 5}

	declare(ctx, 1)
	declare(ctx, 2)
	declare(ctx, 3)

	if len(ui.moves) != 1 {
		t.Errorf("3 window declarations forwarded %d pointer moves, want 1", len(ui.moves))
	}

	// Flush re-arms the forwarder for the next frame.
	ctx.Flush()
	declare(ctx, 1)
	if len(ui.moves) != 2 {
		t.Errorf("after flush, expected forwarding to run again, got %d moves", len(ui.moves))
	}
}

func TestPointerButtonEdgesForwarded(t *testing.T) {
	ctx, ui, host, _ := newTestContext(t)

	host.mousePos = uibridge.Vec2{X: 30, Y: 40}
	host.mousePressed[uibridge.MouseButtonLeft] = true
	declare(ctx, 1)

	if len(ui.downs) != 1 || ui.downs[0] != host.mousePos {
		t.Errorf("press edge not forwarded: downs=%v", ui.downs)
	}
	if len(ui.ups) != 0 {
		t.Errorf("no release this frame, got ups=%v", ui.ups)
	}

	// Next frame: button released.
	ctx.Flush()
	host.mousePressed[uibridge.MouseButtonLeft] = false
	host.mouseReleased[uibridge.MouseButtonLeft] = true
	declare(ctx, 1)

	if len(ui.downs) != 1 {
		t.Errorf("held button must not re-fire a press, downs=%v", ui.downs)
	}
	if len(ui.ups) != 1 {
		t.Errorf("release edge not forwarded: ups=%v", ui.ups)
	}
}

func TestTypedCharsForwarded(t *testing.T) {
	ctx, ui, host, _ := newTestContext(t)

	host.chars = []rune{'h', 'i'}
	declare(ctx, 1)

	if string(ui.chars) != "hi" {
		t.Errorf("typed chars = %q, want %q", string(ui.chars), "hi")
	}
}

func TestTypedCharsSuppressedWhileControlHeld(t *testing.T) {
	ctx, ui, host, _ := newTestContext(t)

	host.chars = []rune{'c'}
	host.keysDown[uibridge.KeyLeftControl] = true
	declare(ctx, 1)

	if len(ui.chars) != 0 {
		t.Errorf("chars must be suppressed during control combos, got %q", string(ui.chars))
	}

	// The queue is still drained: releasing control next frame must not
	// deliver the stale character.
	ctx.Flush()
	host.keysDown[uibridge.KeyLeftControl] = false
	declare(ctx, 1)
	if len(ui.chars) != 0 {
		t.Errorf("stale chars delivered after control released: %q", string(ui.chars))
	}
}

func TestAllowListedKeyFiresOnPressOrHeld(t *testing.T) {
	ctx, ui, host, _ := newTestContext(t)

	// Held but not freshly pressed: still fires, every frame.
	host.keysDown[uibridge.KeyLeft] = true
	declare(ctx, 1)
	ctx.Flush()
	declare(ctx, 1)

	var leftEvents int
	for _, ev := range ui.keys {
		if ev.key == uibridge.KeyLeft {
			leftEvents++
		}
	}
	if leftEvents != 2 {
		t.Errorf("held key fired %d times over 2 frames, want 2 (re-fires while held)", leftEvents)
	}
}

func TestKeyEventsCarryModifierState(t *testing.T) {
	ctx, ui, host, _ := newTestContext(t)

	host.keysPressed[uibridge.KeyC] = true
	host.keysDown[uibridge.KeyRightShift] = true
	host.keysDown[uibridge.KeyRightControl] = true
	declare(ctx, 1)

	var found bool
	for _, ev := range ui.keys {
		if ev.key == uibridge.KeyC {
			found = true
			if !ev.shift || !ev.ctrl {
				t.Errorf("KeyC event modifiers = shift:%v ctrl:%v, want both true", ev.shift, ev.ctrl)
			}
		}
	}
	if !found {
		t.Fatal("pressed allow-listed key was not forwarded")
	}
}

func TestNonAllowListedKeyNotForwarded(t *testing.T) {
	ctx, ui, host, _ := newTestContext(t)

	// Physical shift keys are modifier state, not forwarded events.
	host.keysDown[uibridge.KeyLeftShift] = true
	declare(ctx, 1)

	for _, ev := range ui.keys {
		if ev.key == uibridge.KeyLeftShift {
			t.Error("physical modifier key must not be forwarded as a key event")
		}
	}
}

func TestSyntheticControlKeyForwarded(t *testing.T) {
	ctx, ui, host, _ := newTestContext(t)

	host.keysDown[uibridge.KeyRightControl] = true
	declare(ctx, 1)

	var controls int
	for _, ev := range ui.keys {
		if ev.key == uibridge.KeyControl {
			controls++
			if !ev.ctrl {
				t.Error("synthetic Control event should carry ctrl=true")
			}
		}
	}
	if controls != 1 {
		t.Errorf("expected 1 synthetic Control event, got %d", controls)
	}
}

func TestScrollDeltaYInverted(t *testing.T) {
	ctx, ui, host, _ := newTestContext(t)

	host.wheel = uibridge.Vec2{X: 0, Y: 5}
	declare(ctx, 1)

	if len(ui.wheels) != 1 {
		t.Fatalf("expected 1 wheel event, got %d", len(ui.wheels))
	}
	if got := ui.wheels[0]; got.X != 0 || got.Y != -5 {
		t.Errorf("wheel forwarded as (%v, %v), want (0, -5)", got.X, got.Y)
	}
}
