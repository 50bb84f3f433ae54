package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/ringball/internal/application/render"
	"github.com/younwookim/ringball/internal/application/scene"
	"github.com/younwookim/ringball/internal/application/system"
)

// Host runs a scene in a terminal.
// The screen's event pump runs on its own goroutine and hands events to
// the loop over a channel; scenes are only touched by the loop.
type Host struct {
	screen  tcell.Screen
	sink    *Sink
	current scene.Scene
	holds   *HoldTracker
	tps     int

	frame   *render.Recorder
	pressed []system.Key
	now     func() time.Time
}

// NewHost creates a host drawing sprites of spriteSize pixels on screen.
// The screen must already be initialized.
func NewHost(screen tcell.Screen, initial scene.Scene, spriteSize float64, ballSprite string, tps int) *Host {
	return &Host{
		screen:  screen,
		sink:    NewSink(screen, spriteSize, ballSprite),
		current: initial,
		holds:   NewHoldTracker(DefaultHoldWindow),
		tps:     tps,
		frame:   render.NewRecorder(),
		now:     time.Now,
	}
}

// Run enters the scene and steps it at the host's tick rate until the
// context is done or the player quits with Esc or Ctrl-C
func (h *Host) Run(ctx context.Context) error {
	if err := h.current.OnEnter(); err != nil {
		return fmt.Errorf("failed to enter initial scene: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.tps))
	defer ticker.Stop()

	last := h.now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			now := h.now()
			dt := now.Sub(last).Seconds()
			last = now
			if err := h.Step(dt); err != nil {
				return err
			}
		}
	}
}

// handleEvent records key presses; it returns false when the player quits
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if key, ok := KeyFor(ev.Key(), ev.Rune()); ok {
			h.press(key, h.now())
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}

	return true
}

func (h *Host) press(k system.Key, now time.Time) {
	if h.holds.Press(k, now) {
		h.pressed = append(h.pressed, k)
	}
}

// input builds this frame's input and consumes the pending presses
func (h *Host) input() system.InputState {
	now := h.now()
	in := system.InputState{
		Pressed: h.pressed,
		Left:    h.holds.Held(system.KeyLeft, now),
		Right:   h.holds.Held(system.KeyRight, now),
	}
	h.pressed = nil
	return in
}

// Step advances the current scene by dt and shows its frame.
// A frame without draw calls leaves the screen as it was.
func (h *Host) Step(dt float64) error {
	h.frame.Reset()
	next, err := h.current.Update(dt, h.input(), h.frame)
	if err != nil {
		return err
	}

	if len(h.frame.Calls) > 0 {
		h.sink.Begin()
		h.frame.Replay(h.sink)
		h.sink.End()
	}

	// Handle scene transition
	if next != nil {
		h.current.OnExit()
		h.current = next
		if err := h.current.OnEnter(); err != nil {
			return fmt.Errorf("failed to enter scene: %w", err)
		}
	}

	return nil
}

// KeyFor maps a terminal key to a logical key. Arrows and WASD steer,
// space jumps.
func KeyFor(k tcell.Key, r rune) (system.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return system.KeyUp, true
	case tcell.KeyDown:
		return system.KeyDown, true
	case tcell.KeyLeft:
		return system.KeyLeft, true
	case tcell.KeyRight:
		return system.KeyRight, true
	case tcell.KeyF1:
		return system.KeyF1, true
	case tcell.KeyEnter:
		return system.KeyEnter, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W', ' ':
			return system.KeyUp, true
		case 's', 'S':
			return system.KeyDown, true
		case 'a', 'A':
			return system.KeyLeft, true
		case 'd', 'D':
			return system.KeyRight, true
		}
	}
	return 0, false
}
